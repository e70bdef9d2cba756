package chart

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/etnz/optimaxx"
	"github.com/etnz/optimaxx/date"
	charts "github.com/vicanso/go-charts/v2"
)

func series(symbol string, from date.Date, prices ...float64) *optimaxx.PriceSeries {
	s := optimaxx.NewPriceSeries(symbol)
	for i, p := range prices {
		s.Append(from.Add(i), p)
	}
	return s
}

func TestTrend(t *testing.T) {
	jan2 := date.New(2024, 1, 2)
	returns := []optimaxx.InstrumentReturn{
		{Instrument: optimaxx.Instrument{Name: "Alpha", Symbol: "AAA"}, Series: series("AAA", jan2, 100, 110, 121, 133.1)},
		{Instrument: optimaxx.Instrument{Name: "Beta", Symbol: "BBB"}, Series: series("BBB", jan2.Add(1), 50, 49, 51)},
	}
	png, err := Trend(returns)
	if err != nil {
		t.Fatalf("Trend() unexpected error = %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("Trend() did not return a png image")
	}
}

func TestTrendMismatchedHistories(t *testing.T) {
	jan2 := date.New(2024, 1, 2)
	alpha := make([]float64, 200)
	for i := range alpha {
		alpha[i] = 100 + float64(i)
	}
	tests := []struct {
		name    string
		returns []optimaxx.InstrumentReturn
	}{
		{"single point instrument", []optimaxx.InstrumentReturn{
			{Instrument: optimaxx.Instrument{Name: "Alpha"}, Series: series("AAA", jan2, alpha...)},
			{Instrument: optimaxx.Instrument{Name: "Young"}, Series: series("YYY", jan2.Add(199), 42)},
		}},
		{"younger instrument", []optimaxx.InstrumentReturn{
			{Instrument: optimaxx.Instrument{Name: "Alpha"}, Series: series("AAA", jan2, alpha...)},
			{Instrument: optimaxx.Instrument{Name: "Young"}, Series: series("YYY", jan2.Add(150), 42, 43, 44)},
		}},
		{"disjoint", []optimaxx.InstrumentReturn{
			{Instrument: optimaxx.Instrument{Name: "Alpha"}, Series: series("AAA", jan2, 100, 101)},
			{Instrument: optimaxx.Instrument{Name: "Beta"}, Series: series("BBB", jan2.Add(5), 100, 101)},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			png, err := Trend(tt.returns)
			if err != nil {
				t.Fatalf("Trend() unexpected error = %v", err)
			}
			if !bytes.HasPrefix(png, []byte("\x89PNG")) {
				t.Errorf("Trend() did not return a png image")
			}
		})
	}
}

func TestTrendNotEnoughData(t *testing.T) {
	jan2 := date.New(2024, 1, 2)
	tests := []struct {
		name    string
		returns []optimaxx.InstrumentReturn
	}{
		{"none", nil},
		{"single day", []optimaxx.InstrumentReturn{
			{Instrument: optimaxx.Instrument{Name: "Alpha"}, Series: series("AAA", jan2, 100)},
			{Instrument: optimaxx.Instrument{Name: "Beta"}, Series: series("BBB", jan2.Add(3), 50)},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Trend(tt.returns); !errors.Is(err, ErrNotEnoughData) {
				t.Errorf("Trend() error = %v want %v", err, ErrNotEnoughData)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
	lo, hi := bounds([][]float64{{100, 110}, {90, 100}})
	if !near(lo, 89) || !near(hi, 111) {
		t.Errorf("bounds() = %v, %v want 89, 111", lo, hi)
	}
	lo, hi = bounds([][]float64{{100, 100}})
	if !near(lo, 95) || !near(hi, 105) {
		t.Errorf("bounds() = %v, %v want 95, 105", lo, hi)
	}
	lo, hi = bounds([][]float64{{charts.GetNullValue(), 100, 110}, {100, charts.GetNullValue()}})
	if !near(lo, 99.5) || !near(hi, 110.5) {
		t.Errorf("bounds() with gaps = %v, %v want 99.5, 110.5", lo, hi)
	}
}
