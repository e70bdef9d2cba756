package optimaxx

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Rhymond/go-money"
	"github.com/etnz/optimaxx/date"
)

const (
	// MinimumCapital is the smallest amount that can be simulated.
	MinimumCapital = 500_000
	// CapitalStep is the suggested increment when entering a capital.
	CapitalStep = 100_000
	// MinHorizon and MaxHorizon bound the investment horizon, in years.
	MinHorizon = 1
	MaxHorizon = 10
)

// DefaultEnd is the default last day of the price window.
var DefaultEnd = date.New(2024, 10, 1)

// Request holds the user inputs of a simulation.
type Request struct {
	Capital     Money     `json:"capital"`
	Horizon     int       `json:"horizon"`     // in years
	Instruments []string  `json:"instruments"` // names in the catalog, in selection order
	Method      Method    `json:"method"`
	End         date.Date `json:"end"` // last day of the price window, DefaultEnd if zero
}

// Window returns the price window: from January 1st, Horizon years before End, to End included.
func (r Request) Window() date.Range {
	end := r.End
	if end.IsZero() {
		end = DefaultEnd
	}
	return date.YearsUntil(end, r.Horizon)
}

// Selection returns the instrument names with duplicates removed, keeping the first occurrence.
func (r Request) Selection() []string {
	selection := make([]string, 0, len(r.Instruments))
	for _, name := range r.Instruments {
		if !slices.Contains(selection, name) {
			selection = append(selection, name)
		}
	}
	return selection
}

// Validate checks 'r' against the catalog and returns an error with all validation failures.
func (r Request) Validate(c *Catalog) error {
	var errs []error
	if money.GetCurrency(r.Capital.Currency()) == nil {
		errs = append(errs, fmt.Errorf("unknown currency %q", r.Capital.Currency()))
	}
	if r.Capital.LessThan(M(MinimumCapital, r.Capital.Currency())) {
		errs = append(errs, fmt.Errorf("capital %v is below the minimum of %v", r.Capital, M(MinimumCapital, r.Capital.Currency())))
	}
	if r.Horizon < MinHorizon || r.Horizon > MaxHorizon {
		errs = append(errs, fmt.Errorf("horizon %d is not between %d and %d years", r.Horizon, MinHorizon, MaxHorizon))
	}
	if r.Method != Geometric && r.Method != Arithmetic {
		errs = append(errs, fmt.Errorf("unknown return method %d", r.Method))
	}
	for _, name := range r.Instruments {
		if !c.Has(name) {
			errs = append(errs, fmt.Errorf("unknown instrument %q", name))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, errors.Join(errs...))
	}
	return nil
}
