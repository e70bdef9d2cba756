package optimaxx

import (
	"math"

	"github.com/etnz/optimaxx/date"
)

// PriceSeries is the chronological adjusted-close price history of a symbol.
type PriceSeries struct {
	Symbol string
	prices date.History[float64]
}

// NewPriceSeries returns an empty series for symbol.
func NewPriceSeries(symbol string) *PriceSeries {
	return &PriceSeries{Symbol: symbol}
}

// Append adds a price. Missing values are appended as NaN and removed by Clean.
func (s *PriceSeries) Append(on date.Date, price float64) *PriceSeries {
	s.prices.Append(on, price)
	return s
}

// Len returns the number of prices.
func (s *PriceSeries) Len() int { return s.prices.Len() }

// Clean removes missing (NaN) and infinite prices and returns how many were removed.
func (s *PriceSeries) Clean() int {
	return s.prices.DeleteFunc(func(_ date.Date, v float64) bool {
		return math.IsNaN(v) || math.IsInf(v, 0)
	})
}

// Restrict removes the prices outside r.
func (s *PriceSeries) Restrict(r date.Range) int {
	return s.prices.DeleteFunc(func(on date.Date, _ float64) bool { return !r.Contains(on) })
}

// Prices returns the prices in chronological order.
func (s *PriceSeries) Prices() []float64 { return s.prices.Slice() }

// History returns the underlying history.
func (s *PriceSeries) History() *date.History[float64] { return &s.prices }

// Range returns the dates of the first and last prices.
func (s *PriceSeries) Range() date.Range {
	from, _ := s.prices.First()
	to, _ := s.prices.Latest()
	return date.NewRange(from, to)
}

// Rebased returns the series scaled so that its first price is 100.
func (s *PriceSeries) Rebased() *date.History[float64] {
	rebased := new(date.History[float64])
	_, base := s.prices.First()
	for on, v := range s.prices.Values() {
		rebased.Append(on, v/base*100)
	}
	return rebased
}
