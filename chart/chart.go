// Package chart draws the relative performance of the simulated instruments.
package chart

import (
	"errors"
	"fmt"
	"math"

	"github.com/etnz/optimaxx"
	"github.com/etnz/optimaxx/date"
	charts "github.com/vicanso/go-charts/v2"
)

// Title of the trend chart.
const Title = "Relative performance (base 100)"

// ErrNotEnoughData is returned when no instrument has at least two prices.
var ErrNotEnoughData = errors.New("not enough prices to draw a trend")

// Trend renders a png line chart of each instrument rebased to 100 on its first price.
//
// Every instrument is drawn over its own dates: the x axis is the union of all dates,
// and the line has a gap where the instrument has no price.
// Instruments with fewer than two prices are not drawn.
func Trend(returns []optimaxx.InstrumentReturn) ([]byte, error) {
	names := make([]string, 0, len(returns))
	rebased := make([]*date.History[float64], 0, len(returns))
	for _, ir := range returns {
		if ir.Series == nil || ir.Series.Len() < 2 {
			continue
		}
		names = append(names, ir.Instrument.Name)
		rebased = append(rebased, ir.Series.Rebased())
	}
	if len(rebased) == 0 {
		return nil, fmt.Errorf("%w: no instrument with two prices or more", ErrNotEnoughData)
	}

	var labels []string
	values := make([][]float64, len(rebased))
	for day := range date.Union(rebased...) {
		labels = append(labels, day.String())
		for i, h := range rebased {
			v, ok := h.Get(day)
			if !ok {
				v = charts.GetNullValue()
			}
			values[i] = append(values[i], v)
		}
	}

	yMin, yMax := bounds(values)
	seriesList := charts.NewSeriesListDataFromValues(values, charts.ChartTypeLine)
	for i := range seriesList {
		seriesList[i].Name = names[i]
	}
	painter, err := charts.Render(charts.ChartOption{SeriesList: seriesList},
		charts.TitleTextOptionFunc(Title),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: split(len(labels))}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(1000),
		charts.HeightOptionFunc(600),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return painter.Bytes()
}

// bounds returns the y axis range with a 5% padding, missing values are ignored.
func bounds(values [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, vs := range values {
		for _, v := range vs {
			if v == charts.GetNullValue() {
				continue
			}
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = hi * 0.05
	}
	return lo - pad, hi + pad
}

// split returns the number of x labels.
func split(points int) int {
	if points <= 30 {
		return max(points/3, 2)
	}
	return 12
}
