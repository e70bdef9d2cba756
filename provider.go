package optimaxx

import (
	"context"
	"errors"
	"fmt"

	"github.com/etnz/optimaxx/date"
)

// PriceProvider is a source of historical adjusted-close prices.
//
// Implementations return ErrInvalidSymbol when the symbol is unknown and
// ErrNoData when there is no adjusted close at all. Missing values can be
// returned as NaN, they are cleaned by Retrieve.
type PriceProvider interface {
	AdjustedClose(ctx context.Context, symbol string, window date.Range) (*PriceSeries, error)
}

// ProviderFunc adapts a function into a PriceProvider.
type ProviderFunc func(ctx context.Context, symbol string, window date.Range) (*PriceSeries, error)

func (f ProviderFunc) AdjustedClose(ctx context.Context, symbol string, window date.Range) (*PriceSeries, error) {
	return f(ctx, symbol, window)
}

// Retrieve fetches the adjusted-close prices of symbol over the inclusive window and cleans them.
//
// The returned series is never empty: no usable price is reported as ErrNoData.
// Provider errors other than ErrNoData and ErrInvalidSymbol are wrapped in ErrProvider.
func Retrieve(ctx context.Context, p PriceProvider, symbol string, window date.Range) (*PriceSeries, error) {
	series, err := p.AdjustedClose(ctx, symbol, window)
	switch {
	case errors.Is(err, ErrNoData), errors.Is(err, ErrInvalidSymbol):
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("%w for %s: %w", ErrProvider, symbol, err)
	case series == nil || series.Len() == 0:
		return nil, fmt.Errorf("%w: no prices for %s in %v", ErrNoData, symbol, window)
	}

	series.Clean()
	series.Restrict(window)
	if series.Len() == 0 {
		return nil, fmt.Errorf("%w: no valid prices for %s in %v", ErrNoData, symbol, window)
	}
	return series, nil
}
