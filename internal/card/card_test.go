package card

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tinytelemetry/brewdeck/internal/model"
)

func TestRender_FullRecord(t *testing.T) {
	t.Parallel()

	c := Render(model.Brewery{
		Name:        "Angel City Brewery",
		BreweryType: "micro",
		Street:      "123 Main St",
		City:        "Los Angeles",
		State:       "CA",
		PostalCode:  "90001",
		WebsiteURL:  "http://www.angelcitybrewery.com",
	})

	require.Equal(t, "Angel City Brewery", c.Name)
	require.Equal(t, "Type: micro", c.Type)
	require.Equal(t, "123 Main St • Los Angeles, CA, 90001", c.Address)
	require.NotNil(t, c.Website)
	require.Equal(t, "http://www.angelcitybrewery.com", c.Website.Href)
	require.Equal(t, "Visit website", c.Website.Label)
	require.Equal(t, "_blank", c.Website.Target)
	require.Equal(t, "noopener noreferrer", c.Website.Rel)
	require.Empty(t, c.WebsiteText)
}

func TestRender_EmptyRecord(t *testing.T) {
	t.Parallel()

	c := Render(model.Brewery{})

	require.Equal(t, "Unnamed Brewery", c.Name)
	require.Equal(t, "Type: N/A", c.Type)
	require.Equal(t, "Address: N/A", c.Address)
	require.Nil(t, c.Website)
	require.Equal(t, "Website: N/A", c.WebsiteText)
}

func TestRender_PartialAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   model.Brewery
		want string
	}{
		{"street only", model.Brewery{Street: "1 Alley"}, "1 Alley"},
		{"city only", model.Brewery{City: "Los Angeles"}, "Los Angeles"},
		{"city and zip", model.Brewery{City: "Los Angeles", PostalCode: "90012"}, "Los Angeles, 90012"},
		{"street and state", model.Brewery{Street: "1 Alley", State: "California"}, "1 Alley • California"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Render(tt.in).Address)
		})
	}
}

func TestRenderAll_PreservesOrder(t *testing.T) {
	t.Parallel()

	cards := RenderAll([]model.Brewery{{Name: "b"}, {Name: "a"}, {}})
	require.Len(t, cards, 3)
	require.Equal(t, "b", cards[0].Name)
	require.Equal(t, "a", cards[1].Name)
	require.Equal(t, UnnamedBrewery, cards[2].Name)
}

func TestOpacityAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    float64
		want float64
	}{
		{80, 0},
		{40, 0},
		{20, 0.5},
		{0, 1},
		{-10, 0.75},
		{-100, 0},
	}
	for _, tt := range tests {
		require.InDelta(t, tt.want, OpacityAt(tt.v), 1e-9, "v=%v", tt.v)
	}
}

func TestViewStates(t *testing.T) {
	t.Parallel()

	require.Equal(t, ViewState{Offset: 40, Opacity: 0}, InitialState())
	require.Equal(t, ViewState{Offset: 0, Opacity: 1}, FinalState())
	require.Equal(t, FinalState(), StateAt(0))
}
