package model

import "context"

// BreweryFetcher loads one page of breweries for a fixed set of filters.
type BreweryFetcher interface {
	FetchBreweries(ctx context.Context) ([]Brewery, error)
}
