// Package eodhd implements a price provider on top of the EOD Historical Data API.
//
// See https://eodhd.com/financial-apis/api-for-historical-data-and-volumes
package eodhd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/etnz/optimaxx"
	"github.com/etnz/optimaxx/date"
	"github.com/etnz/optimaxx/httpcache"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the EODHD api root.
const DefaultBaseURL = "https://eodhd.com/api"

// DefaultExchange is appended to symbols that do not carry an exchange code.
const DefaultExchange = "US"

// Client fetches prices from EODHD. It implements optimaxx.PriceProvider.
type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

// New returns a client for the given api key, using http to reach the api.
func New(apiKey string, http *http.Client) *Client {
	return &Client{APIKey: apiKey, BaseURL: DefaultBaseURL, HTTP: http}
}

// Ticker returns the EODHD ticker for a symbol, in the format "SYMBOL.EXCHANGECODE".
func Ticker(symbol string) string {
	if strings.Contains(symbol, ".") {
		return symbol
	}
	return symbol + "." + DefaultExchange
}

func (c *Client) get(ctx context.Context, path string, query url.Values, data any) error {
	if c.APIKey == "" {
		return errors.New("eodhd requires an api key, use -eodhd-api-key or EODHD_API_KEY")
	}
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	client := c.HTTP
	if client == nil {
		client = httpcache.NewClient()
	}
	query.Set("fmt", "json")
	query.Set("api_token", c.APIKey)
	return httpcache.GetJSON(ctx, client, base+path+"?"+query.Encode(), data)
}

// AdjustedClose returns the daily adjusted close of symbol within window.
//
// Days without an adjusted close are returned as NaN.
func (c *Client) AdjustedClose(ctx context.Context, symbol string, window date.Range) (*optimaxx.PriceSeries, error) {
	// https://eodhd.com/api/eod/MCD.US?api_token=demo&fmt=json&from=2017-01-05&to=2017-02-10
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },
	// bounds are included in the response.
	type Info struct {
		Date          date.Date           `json:"date"`
		AdjustedClose decimal.NullDecimal `json:"adjusted_close"`
	}

	query := url.Values{}
	query.Set("from", window.From.String())
	query.Set("to", window.To.String())

	content := make([]Info, 0)
	err := c.get(ctx, "/eod/"+url.PathEscape(Ticker(symbol)), query, &content)
	var serr *httpcache.StatusError
	if errors.As(err, &serr) && serr.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s is unknown to eodhd", optimaxx.ErrInvalidSymbol, symbol)
	}
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: eodhd has no prices for %s in %v", optimaxx.ErrNoData, symbol, window)
	}

	series := optimaxx.NewPriceSeries(symbol)
	for _, info := range content {
		if !info.AdjustedClose.Valid {
			series.Append(info.Date, nan)
			continue
		}
		series.Append(info.Date, info.AdjustedClose.Decimal.InexactFloat64())
	}
	return series, nil
}
