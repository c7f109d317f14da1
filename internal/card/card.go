// Package card turns brewery records into display cards.
package card

import (
	"strings"

	"github.com/tinytelemetry/brewdeck/internal/model"
)

// Placeholder texts for missing fields.
const (
	UnnamedBrewery = "Unnamed Brewery"
	TypeMissing    = "Type: N/A"
	AddressMissing = "Address: N/A"
	WebsiteMissing = "Website: N/A"
	WebsiteLabel   = "Visit website"
)

// AddressSeparator joins the street with the city/state/postal group.
const AddressSeparator = " • "

// Link opens in a new browsing context with no reference back to the opener.
type Link struct {
	Href   string
	Label  string
	Target string
	Rel    string
}

// Card is the display form of one brewery.
type Card struct {
	Name    string
	Type    string
	Address string
	// Website is nil when the record has no website_url; WebsiteText is then shown.
	Website     *Link
	WebsiteText string
}

// Render builds the card for b. It never fails: missing fields become placeholders.
func Render(b model.Brewery) Card {
	c := Card{
		Name:    b.Name,
		Type:    TypeMissing,
		Address: formatAddress(b),
	}
	if c.Name == "" {
		c.Name = UnnamedBrewery
	}
	if b.BreweryType != "" {
		c.Type = "Type: " + b.BreweryType
	}
	if b.WebsiteURL != "" {
		c.Website = &Link{
			Href:   b.WebsiteURL,
			Label:  WebsiteLabel,
			Target: "_blank",
			Rel:    "noopener noreferrer",
		}
	} else {
		c.WebsiteText = WebsiteMissing
	}
	return c
}

// RenderAll renders records in order.
func RenderAll(records []model.Brewery) []Card {
	cards := make([]Card, len(records))
	for i, r := range records {
		cards[i] = Render(r)
	}
	return cards
}

func formatAddress(b model.Brewery) string {
	var lines []string
	if b.Street != "" {
		lines = append(lines, b.Street)
	}

	var locality []string
	for _, part := range []string{b.City, b.State, b.PostalCode} {
		if part != "" {
			locality = append(locality, part)
		}
	}
	if len(locality) > 0 {
		lines = append(lines, strings.Join(locality, ", "))
	}

	if len(lines) == 0 {
		return AddressMissing
	}
	return strings.Join(lines, AddressSeparator)
}
