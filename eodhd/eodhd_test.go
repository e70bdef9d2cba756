package eodhd

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/optimaxx"
	"github.com/etnz/optimaxx/date"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New("test-key", srv.Client())
	c.BaseURL = srv.URL
	return c
}

func TestAdjustedClose(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/eod/SPY.US" {
			t.Errorf("path = %q want /eod/SPY.US", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("from") != "2024-01-01" || q.Get("to") != "2024-01-31" || q.Get("api_token") != "test-key" {
			t.Errorf("unexpected query %v", q)
		}
		w.Write([]byte(`[
			{"date":"2024-01-02","close":472.65,"adjusted_close":465.12},
			{"date":"2024-01-03","close":468.79,"adjusted_close":null},
			{"date":"2024-01-04","close":467.28,"adjusted_close":459.84}
		]`))
	})

	window := date.NewRange(date.New(2024, 1, 1), date.New(2024, 1, 31))
	series, err := optimaxx.Retrieve(context.Background(), c, "SPY", window)
	if err != nil {
		t.Fatalf("Retrieve() unexpected error = %v", err)
	}
	got := series.Prices()
	want := []float64{465.12, 459.84}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Retrieve() prices = %v want %v", got, want)
	}
}

func TestAdjustedCloseErrors(t *testing.T) {
	window := date.NewRange(date.New(2024, 1, 1), date.New(2024, 1, 31))
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unknown ticker", http.StatusNotFound, `"Ticker Not Found."`, optimaxx.ErrInvalidSymbol},
		{"empty", http.StatusOK, `[]`, optimaxx.ErrNoData},
		{"only nulls", http.StatusOK, `[{"date":"2024-01-02","adjusted_close":null}]`, optimaxx.ErrNoData},
		{"server error", http.StatusInternalServerError, `oops`, optimaxx.ErrProvider},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			_, err := optimaxx.Retrieve(context.Background(), c, "XXX", window)
			if !errors.Is(err, tt.want) {
				t.Errorf("Retrieve() error = %v want %v", err, tt.want)
			}
		})
	}
}

func TestMissingAPIKey(t *testing.T) {
	c := New("", nil)
	_, err := c.AdjustedClose(context.Background(), "SPY", date.NewRange(date.New(2024, 1, 1), date.New(2024, 1, 31)))
	if err == nil {
		t.Error("AdjustedClose() without api key should fail")
	}
}

func TestTicker(t *testing.T) {
	for symbol, want := range map[string]string{
		"SPY":        "SPY.US",
		"NAFTRAC.MX": "NAFTRAC.MX",
	} {
		if got := Ticker(symbol); got != want {
			t.Errorf("Ticker(%q) = %q want %q", symbol, got, want)
		}
	}
}

func TestSearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/S&P 500" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`[
			{"Code":"SPY","Exchange":"US","Name":"SPDR S&P 500 ETF Trust","Type":"ETF","ISIN":"US78462F1030","previousClose":571.3,"previousCloseDate":"2024-10-01"},
			{"Code":"IVV","Exchange":"MX","Name":"iShares Core S&P 500 ETF","Type":"ETF"}
		]`))
	})
	results, err := c.Search(context.Background(), "S&P 500")
	if err != nil {
		t.Fatalf("Search() unexpected error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Search() returned %d results want 2", len(results))
	}
	if got := results[0].Symbol(); got != "SPY" {
		t.Errorf("Symbol() = %q want SPY", got)
	}
	if got := results[1].Symbol(); got != "IVV.MX" {
		t.Errorf("Symbol() = %q want IVV.MX", got)
	}
	if got := results[0].PreviousCloseDate; got != date.New(2024, 10, 1) {
		t.Errorf("PreviousCloseDate = %v", got)
	}
}
