// Package yahoo implements a price provider on top of the Yahoo Finance chart api.
//
// It requires no api key and is the default provider.
package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/optimaxx"
	"github.com/etnz/optimaxx/date"
	"github.com/etnz/optimaxx/httpcache"
)

// DefaultBaseURL is the Yahoo Finance api root.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// userAgent mimics a browser, the api rejects the default go client.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Client fetches prices from Yahoo Finance. It implements optimaxx.PriceProvider.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a client using http to reach the api.
func New(http *http.Client) *Client {
	return &Client{BaseURL: DefaultBaseURL, HTTP: http}
}

// chart is the subset of the v8 chart response used here.
type chart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency  string `json:"currency"`
				Symbol    string `json:"symbol"`
				GMTOffset int64  `json:"gmtoffset"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				// Null values are kept as nil.
				AdjClose []struct {
					AdjClose []*float64 `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
	} `json:"chart"`
}

// AdjustedClose returns the daily adjusted close of symbol within window.
//
// Days without an adjusted close are returned as NaN.
func (c *Client) AdjustedClose(ctx context.Context, symbol string, window date.Range) (*optimaxx.PriceSeries, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	client := c.HTTP
	if client == nil {
		client = httpcache.NewClient()
	}

	query := url.Values{}
	query.Set("interval", "1d")
	query.Set("events", "div,splits")
	query.Set("period1", fmt.Sprint(window.From.Time().Unix()))
	// period2 is exclusive.
	query.Set("period2", fmt.Sprint(window.To.Add(1).Time().Unix()))
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?%s", base, url.PathEscape(symbol), query.Encode())

	var raw json.RawMessage
	err := httpcache.GetJSON(ctx, client, addr, &raw, "User-Agent", userAgent)
	var serr *httpcache.StatusError
	if errors.As(err, &serr) {
		raw = serr.Body
	} else if err != nil {
		return nil, err
	}
	if err := chartError(symbol, raw); err != nil {
		return nil, err
	}
	if serr != nil {
		return nil, serr
	}

	var content chart
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, fmt.Errorf("cannot parse yahoo chart for %s: %w", symbol, err)
	}
	if len(content.Chart.Result) == 0 {
		return nil, fmt.Errorf("%w: yahoo returned no chart for %s", optimaxx.ErrNoData, symbol)
	}
	result := content.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.AdjClose) == 0 {
		return nil, fmt.Errorf("%w: yahoo has no adjusted close for %s in %v", optimaxx.ErrNoData, symbol, window)
	}
	values := result.Indicators.AdjClose[0].AdjClose
	if len(values) != len(result.Timestamp) {
		return nil, fmt.Errorf("yahoo chart for %s has %d timestamps but %d adjusted closes", symbol, len(result.Timestamp), len(values))
	}

	series := optimaxx.NewPriceSeries(symbol)
	for i, ts := range result.Timestamp {
		// timestamps are the market open, shift them to the exchange timezone before taking the day.
		on := date.FromTime(time.Unix(ts+result.Meta.GMTOffset, 0).UTC())
		v := math.NaN()
		if values[i] != nil {
			v = *values[i]
		}
		series.Append(on, v)
	}
	return series, nil
}

// chartError extracts the error reported in the chart payload, if any.
//
//	{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}
func chartError(symbol string, raw []byte) error {
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		// not json, the caller reports the status.
		return nil
	}
	jval, err := jsonpath.Get("$.chart.error", jobj)
	if err != nil || jval == nil {
		return nil
	}
	code, _ := jsonpath.Get("$.chart.error.code", jobj)
	description, _ := jsonpath.Get("$.chart.error.description", jobj)
	if code == "Not Found" {
		return fmt.Errorf("%w: %s: %v", optimaxx.ErrInvalidSymbol, symbol, description)
	}
	return fmt.Errorf("yahoo error for %s: %v: %v", symbol, code, description)
}
