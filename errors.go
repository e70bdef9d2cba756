package optimaxx

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNoData is returned when a provider has no usable adjusted-close price for a symbol and range.
	ErrNoData = errors.New("no data")

	// ErrInvalidSymbol is returned when a provider cannot resolve a symbol.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrProvider wraps any other failure of a market-data provider.
	ErrProvider = errors.New("provider failure")

	// ErrCalculation is returned when a price series is too short or too degenerate to compute a return.
	ErrCalculation = errors.New("calculation impossible")

	// ErrNoValidData is returned when no instrument produced a usable return.
	ErrNoValidData = errors.New("no valid data")

	// ErrInvalidRequest is returned when a simulation request is rejected.
	ErrInvalidRequest = errors.New("invalid request")
)

// WarningKind classifies why an instrument was skipped.
type WarningKind int

const (
	// NoData means the provider returned nothing usable.
	NoData WarningKind = iota
	// InvalidSymbol means the provider does not know the symbol.
	InvalidSymbol
	// ProviderFailure is any other provider error.
	ProviderFailure
	// CalculationImpossible means the price series was degenerate.
	CalculationImpossible
)

func (k WarningKind) String() string {
	switch k {
	case NoData:
		return "no-data"
	case InvalidSymbol:
		return "invalid-symbol"
	case ProviderFailure:
		return "provider-failure"
	case CalculationImpossible:
		return "calculation-impossible"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k WarningKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// IsError reports whether the warning should be presented as an error rather than a warning.
func (k WarningKind) IsError() bool { return k == InvalidSymbol || k == ProviderFailure }

// kindOf classifies an error returned by the retrieval or calculation steps.
func kindOf(err error) WarningKind {
	switch {
	case errors.Is(err, ErrInvalidSymbol):
		return InvalidSymbol
	case errors.Is(err, ErrNoData):
		return NoData
	case errors.Is(err, ErrCalculation):
		return CalculationImpossible
	default:
		return ProviderFailure
	}
}

// Warning reports an instrument that has been excluded from the simulation.
type Warning struct {
	Instrument Instrument  `json:"instrument"`
	Kind       WarningKind `json:"kind"`
	Err        error       `json:"-"`
}

// Message returns the warning text.
func (w Warning) Message() string {
	return fmt.Sprintf("%s (%s): %v", w.Instrument.Name, w.Instrument.Symbol, w.Err)
}

// MarshalJSON adds the error message to the json representation.
func (w Warning) MarshalJSON() ([]byte, error) {
	type plain Warning
	return json.Marshal(struct {
		plain
		Message string `json:"message"`
	}{plain(w), w.Message()})
}
