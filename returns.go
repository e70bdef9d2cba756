package optimaxx

import (
	"fmt"
	"math"
)

// TradingDaysPerYear is the number of trading days used to annualize a daily return.
const TradingDaysPerYear = 252

// ReturnStrategy reduces a chronological price series to its average daily return.
type ReturnStrategy interface {
	DailyReturn(prices []float64) (float64, error)
}

// geometric is the compound growth rate per point over the whole series:
//
//	(last/first)^(1/n) - 1
type geometric struct{}

func (geometric) DailyReturn(prices []float64) (float64, error) {
	n := len(prices)
	if n == 0 {
		return 0, fmt.Errorf("%w: empty price series", ErrCalculation)
	}
	r := math.Pow(prices[n-1]/prices[0], 1/float64(n)) - 1
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, fmt.Errorf("%w: geometric return from %v to %v is undefined", ErrCalculation, prices[0], prices[n-1])
	}
	return r, nil
}

// arithmetic is the mean of the day-over-day percentage changes.
type arithmetic struct{}

func (arithmetic) DailyReturn(prices []float64) (float64, error) {
	sum, count := 0.0, 0
	for i := 1; i < len(prices); i++ {
		change := (prices[i] - prices[i-1]) / prices[i-1]
		if math.IsNaN(change) {
			continue
		}
		sum += change
		count++
	}
	if count == 0 {
		return 0, fmt.Errorf("%w: %d price(s) is not enough for a day-over-day change", ErrCalculation, len(prices))
	}
	r := sum / float64(count)
	if math.IsInf(r, 0) {
		return 0, fmt.Errorf("%w: arithmetic return is infinite", ErrCalculation)
	}
	return r, nil
}

// Annualize compounds a daily return over a trading year.
func Annualize(daily float64) Percent {
	return Percent((math.Pow(1+daily, TradingDaysPerYear) - 1) * 100)
}

// Aggregate returns the unweighted mean of the annualized returns.
//
// It returns ErrNoValidData if there is none.
func Aggregate(returns ...Percent) (Percent, error) {
	if len(returns) == 0 {
		return 0, ErrNoValidData
	}
	// running mean, a plain sum of large returns would overflow.
	var mean Percent
	for i, r := range returns {
		mean += (r - mean) / Percent(i+1)
	}
	return mean, nil
}

// Project returns the capital compounded yearly at the annualized rate over horizon years.
func Project(capital Money, annualized Percent, horizon int) Money {
	return capital.Grow(annualized, horizon)
}
