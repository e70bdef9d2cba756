package optimaxx

import (
	"context"
	"fmt"

	"github.com/etnz/optimaxx/date"
)

// StaticProvider serves fixed price series from memory, it is used for tests and offline runs.
type StaticProvider struct {
	series map[string]*PriceSeries
	errs   map[string]error
}

// NewStaticProvider returns an empty StaticProvider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		series: make(map[string]*PriceSeries),
		errs:   make(map[string]error),
	}
}

// Daily adds consecutive daily prices for symbol starting on 'from'.
func (p *StaticProvider) Daily(symbol string, from date.Date, prices ...float64) *StaticProvider {
	s := NewPriceSeries(symbol)
	for i, v := range prices {
		s.Append(from.Add(i), v)
	}
	p.series[symbol] = s
	return p
}

// Fail makes every request for symbol fail with err.
func (p *StaticProvider) Fail(symbol string, err error) *StaticProvider {
	p.errs[symbol] = err
	return p
}

// AdjustedClose returns a copy of the prices of symbol in the window.
// Unknown symbols are reported as ErrInvalidSymbol.
func (p *StaticProvider) AdjustedClose(ctx context.Context, symbol string, window date.Range) (*PriceSeries, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := p.errs[symbol]; ok {
		return nil, err
	}
	s, ok := p.series[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}
	out := NewPriceSeries(symbol)
	for on, v := range s.prices.Values() {
		if window.Contains(on) {
			out.Append(on, v)
		}
	}
	return out, nil
}
