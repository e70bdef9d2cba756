package eodhd

import (
	"context"
	"math"
	"net/url"

	"github.com/etnz/optimaxx/date"
)

var nan = math.NaN()

// SearchResult matches the structure of a single item in the EODHD search API response.
type SearchResult struct {
	Code              string    `json:"Code"`
	Exchange          string    `json:"Exchange"`
	Name              string    `json:"Name"`
	Type              string    `json:"Type"`
	Country           string    `json:"Country"`
	Currency          string    `json:"Currency"`
	ISIN              string    `json:"ISIN"`
	PreviousClose     float64   `json:"previousClose"`
	PreviousCloseDate date.Date `json:"previousCloseDate"`
}

// Symbol returns the ticker to use in a catalog.
func (r SearchResult) Symbol() string {
	if r.Exchange == DefaultExchange {
		return r.Code
	}
	return r.Code + "." + r.Exchange
}

// Search searches for instruments by name, ticker or isin.
func (c *Client) Search(ctx context.Context, term string) ([]SearchResult, error) {
	var results []SearchResult
	if err := c.get(ctx, "/search/"+url.PathEscape(term), url.Values{}, &results); err != nil {
		return nil, err
	}
	return results, nil
}
