package model

// Brewery is a single record returned by the Open Brewery DB API.
// Every field is optional; absent and null values decode to "".
type Brewery struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BreweryType string `json:"brewery_type"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	WebsiteURL  string `json:"website_url"`
}

// TypeCount is the number of breweries sharing one brewery_type.
type TypeCount struct {
	Type  string
	Count int
}

// CountByType groups records by brewery_type, preserving first-seen order.
// Records without a type are counted under "N/A".
func CountByType(records []Brewery) []TypeCount {
	index := make(map[string]int)
	var out []TypeCount
	for _, r := range records {
		t := r.BreweryType
		if t == "" {
			t = "N/A"
		}
		i, ok := index[t]
		if !ok {
			i = len(out)
			index[t] = i
			out = append(out, TypeCount{Type: t})
		}
		out[i].Count++
	}
	return out
}
