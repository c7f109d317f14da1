package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// UnmarshalJSON decodes one API record leniently. Numbers and booleans are
// kept as their text, null or nested values become "", and anything that is
// not an object decodes to an empty record. It never fails.
func (b *Brewery) UnmarshalJSON(data []byte) error {
	*b = Brewery{}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return nil
	}

	b.ID = fieldText(fields["id"])
	b.Name = fieldText(fields["name"])
	b.BreweryType = fieldText(fields["brewery_type"])
	b.Street = fieldText(fields["street"])
	b.City = fieldText(fields["city"])
	b.State = fieldText(fields["state"])
	b.PostalCode = fieldText(fields["postal_code"])
	b.Country = fieldText(fields["country"])
	b.Phone = fieldText(fields["phone"])
	b.WebsiteURL = fieldText(fields["website_url"])
	return nil
}

func fieldText(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
