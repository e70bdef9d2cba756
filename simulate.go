package optimaxx

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/etnz/optimaxx/date"
)

// Status is the overall outcome of a simulation.
type Status int

const (
	// StatusOK means at least one instrument produced a return.
	StatusOK Status = iota
	// StatusEmptySelection means no instrument was selected and nothing was computed.
	StatusEmptySelection
	// StatusNoValidData means every selected instrument was skipped.
	StatusNoValidData
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmptySelection:
		return "empty-selection"
	case StatusNoValidData:
		return "no-valid-data"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// InstrumentReturn is the computed return of one instrument.
type InstrumentReturn struct {
	Instrument  Instrument   `json:"instrument"`
	DailyReturn float64      `json:"dailyReturn"`
	Annualized  Percent      `json:"annualizedReturn"`
	Points      int          `json:"points"`
	Series      *PriceSeries `json:"-"`
}

// Result is the outcome of a simulation.
//
// Average, FinalCapital and Cumulative are only meaningful when Status is StatusOK.
type Result struct {
	Request      Request            `json:"request"`
	Window       date.Range         `json:"window"`
	Status       Status             `json:"status"`
	Returns      []InstrumentReturn `json:"returns"`
	Average      Percent            `json:"averageAnnualizedReturn"`
	FinalCapital Money              `json:"finalCapital"`
	Cumulative   Percent            `json:"cumulativeReturn"`
	Warnings     []Warning          `json:"warnings"`
}

// Simulator runs simulation requests against a catalog and a price provider.
type Simulator struct {
	Catalog  *Catalog
	Provider PriceProvider
}

// NewSimulator returns a Simulator.
func NewSimulator(c *Catalog, p PriceProvider) *Simulator {
	return &Simulator{Catalog: c, Provider: p}
}

// Simulate runs the request: instruments are processed sequentially in selection order,
// the ones without usable prices are reported in Result.Warnings and excluded from the average.
//
// Only an invalid request returns an error.
func (s *Simulator) Simulate(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(s.Catalog); err != nil {
		return nil, err
	}
	res := &Result{
		Request:  req,
		Window:   req.Window(),
		Returns:  []InstrumentReturn{},
		Warnings: []Warning{},
	}
	selection := req.Selection()
	if len(selection) == 0 {
		res.Status = StatusEmptySelection
		return res, nil
	}

	strategy := req.Method.Strategy()
	annualized := make([]Percent, 0, len(selection))
	for _, name := range selection {
		inst, _ := s.Catalog.Get(name)
		ir, err := s.evaluate(ctx, strategy, inst, res.Window)
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{Instrument: inst, Kind: kindOf(err), Err: err})
			continue
		}
		res.Returns = append(res.Returns, ir)
		annualized = append(annualized, ir.Annualized)
	}

	avg, err := Aggregate(annualized...)
	if errors.Is(err, ErrNoValidData) {
		res.Status = StatusNoValidData
		return res, nil
	}
	res.Status = StatusOK
	res.Average = avg
	res.FinalCapital = Project(req.Capital, avg, req.Horizon)
	res.Cumulative = res.FinalCapital.ChangeFrom(req.Capital)
	return res, nil
}

// evaluate computes the return of a single instrument.
func (s *Simulator) evaluate(ctx context.Context, strategy ReturnStrategy, inst Instrument, window date.Range) (InstrumentReturn, error) {
	series, err := Retrieve(ctx, s.Provider, inst.Symbol, window)
	if err != nil {
		return InstrumentReturn{}, err
	}
	daily, err := strategy.DailyReturn(series.Prices())
	if err != nil {
		return InstrumentReturn{}, err
	}
	annualized := Annualize(daily)
	if a := float64(annualized); math.IsNaN(a) || math.IsInf(a, 0) {
		return InstrumentReturn{}, fmt.Errorf("%w: daily return %g cannot be annualized", ErrCalculation, daily)
	}
	return InstrumentReturn{
		Instrument:  inst,
		DailyReturn: daily,
		Annualized:  annualized,
		Points:      series.Len(),
		Series:      series,
	}, nil
}
