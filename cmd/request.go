package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/optimaxx"
	"github.com/etnz/optimaxx/date"
)

// requestFlags are the flags describing a simulation request.
type requestFlags struct {
	capital  float64
	currency string
	horizon  int
	method   string
	end      string
}

func (c *requestFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.capital, "capital", optimaxx.MinimumCapital, fmt.Sprintf("Capital to invest, at least %d", optimaxx.MinimumCapital))
	f.StringVar(&c.currency, "currency", optimaxx.DefaultCurrency, "Currency of the capital")
	f.IntVar(&c.horizon, "horizon", optimaxx.MinHorizon, fmt.Sprintf("Investment horizon in years, between %d and %d", optimaxx.MinHorizon, optimaxx.MaxHorizon))
	f.StringVar(&c.method, "method", optimaxx.Geometric.String(), "Return method, 'geometric' or 'arithmetic'")
	f.StringVar(&c.end, "end", optimaxx.DefaultEnd.String(), "Last day of the price window")
}

// request returns the simulation request for the instrument names.
func (c *requestFlags) request(names []string) (optimaxx.Request, error) {
	method, err := optimaxx.ParseMethod(strings.ToLower(c.method))
	if err != nil {
		return optimaxx.Request{}, err
	}
	currency := strings.ToUpper(c.currency)
	if money.GetCurrency(currency) == nil {
		return optimaxx.Request{}, fmt.Errorf("unknown -currency %q", c.currency)
	}
	end, err := date.Parse(c.end)
	if err != nil {
		return optimaxx.Request{}, fmt.Errorf("invalid -end date %q: %w", c.end, err)
	}
	return optimaxx.Request{
		Capital:     optimaxx.M(c.capital, currency),
		Horizon:     c.horizon,
		Instruments: names,
		Method:      method,
		End:         end,
	}, nil
}
