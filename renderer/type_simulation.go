package renderer

import (
	"github.com/etnz/optimaxx"
	"github.com/etnz/optimaxx/date"
)

// Simulation is a struct to represent a simulation result for rendering.
type Simulation struct {
	Capital      optimaxx.Money   `json:"capital"`
	Horizon      int              `json:"horizon"`
	Method       string           `json:"method"`
	Window       date.Range       `json:"window"`
	Selected     int              `json:"selected"`
	Status       string           `json:"status"`
	Average      optimaxx.Percent `json:"average"`
	FinalCapital optimaxx.Money   `json:"finalCapital"`
	Gain         optimaxx.Money   `json:"gain"`
	Cumulative   optimaxx.Percent `json:"cumulative"`
	Rows         []Row            `json:"rows"`
	Warnings     []Warning        `json:"warnings"`
	Chart        string           `json:"chart,omitempty"` // path to the chart image, if any
}

// Row is one instrument line of the breakdown table.
type Row struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Symbol      string           `json:"symbol"`
	Annualized  optimaxx.Percent `json:"annualized"`
	Points      int              `json:"points"`
}

// Warning is a skipped instrument.
type Warning struct {
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	Kind    string `json:"kind"`
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// OK reports whether the simulation produced a projection.
func (s *Simulation) OK() bool { return s.Status == optimaxx.StatusOK.String() }

// EmptySelection reports whether no instrument was selected.
func (s *Simulation) EmptySelection() bool {
	return s.Status == optimaxx.StatusEmptySelection.String()
}

// NoValidData reports whether every selected instrument was skipped.
func (s *Simulation) NoValidData() bool { return s.Status == optimaxx.StatusNoValidData.String() }

// NewSimulation converts a simulation result for rendering.
func NewSimulation(r *optimaxx.Result) *Simulation {
	s := &Simulation{
		Capital:      r.Request.Capital,
		Horizon:      r.Request.Horizon,
		Method:       r.Request.Method.String(),
		Window:       r.Window,
		Selected:     len(r.Request.Selection()),
		Status:       r.Status.String(),
		Average:      r.Average,
		FinalCapital: r.FinalCapital,
		Cumulative:   r.Cumulative,
		Rows:         make([]Row, 0, len(r.Returns)),
		Warnings:     make([]Warning, 0, len(r.Warnings)),
	}
	if r.Status == optimaxx.StatusOK {
		s.Gain = r.FinalCapital.Sub(r.Request.Capital)
	}
	for _, ir := range r.Returns {
		s.Rows = append(s.Rows, Row{
			Name:        ir.Instrument.Name,
			Description: ir.Instrument.Description,
			Symbol:      ir.Instrument.Symbol,
			Annualized:  ir.Annualized,
			Points:      ir.Points,
		})
	}
	for _, w := range r.Warnings {
		s.Warnings = append(s.Warnings, Warning{
			Name:    w.Instrument.Name,
			Symbol:  w.Instrument.Symbol,
			Kind:    w.Kind.String(),
			Error:   w.Kind.IsError(),
			Message: w.Message(),
		})
	}
	return s
}

// Catalog is the list of instruments for rendering.
type Catalog struct {
	Instruments []optimaxx.Instrument `json:"instruments"`
}

// NewCatalog converts a catalog for rendering.
func NewCatalog(c *optimaxx.Catalog) *Catalog {
	return &Catalog{Instruments: c.Instruments()}
}
