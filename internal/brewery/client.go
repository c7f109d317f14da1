// Package brewery fetches brewery records from the Open Brewery DB REST API.
package brewery

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tinytelemetry/brewdeck/internal/model"
)

// Options fixes the endpoint and filters for every fetch made by a Client.
type Options struct {
	BaseURL string
	City    string
	State   string
	PerPage int
	Timeout time.Duration // 0 = no timeout
}

func (o Options) withDefaults() Options {
	if o.BaseURL == "" {
		o.BaseURL = model.DefaultBaseURL
	}
	if o.City == "" {
		o.City = model.DefaultCity
	}
	if o.State == "" {
		o.State = model.DefaultState
	}
	if o.PerPage <= 0 {
		o.PerPage = model.DefaultPerPage
	}
	return o
}

// Client issues single-attempt GET requests for one page of breweries.
type Client struct {
	opts Options
	Http *resty.Client
}

// NewClient builds a Client. Zero-valued options fall back to the Los Angeles defaults.
func NewClient(opts Options) *Client {
	opts = opts.withDefaults()

	client := resty.New()
	client.SetHeader("Accept", "application/json")
	client.SetRetryCount(0)
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	return &Client{opts: opts, Http: client}
}

// Options returns the endpoint and filters this client was built with.
func (c *Client) Options() Options { return c.opts }

// FetchBreweries performs one round trip. Errors are *TransportError,
// *APIError or *ParseError.
func (c *Client) FetchBreweries(ctx context.Context) ([]model.Brewery, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"by_city":  c.opts.City,
			"by_state": c.opts.State,
			"per_page": strconv.Itoa(c.opts.PerPage),
		}).
		Get(c.opts.BaseURL)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if !res.IsSuccess() {
		return nil, &APIError{Status: res.StatusCode()}
	}

	// Only a body that is not an array fails; each element decodes leniently.
	var records []model.Brewery
	if err := json.Unmarshal(res.Body(), &records); err != nil {
		return nil, &ParseError{Err: err}
	}
	if records == nil {
		records = []model.Brewery{}
	}
	return records, nil
}
