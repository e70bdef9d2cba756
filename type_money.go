package optimaxx

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of amounts when none is given.
const DefaultCurrency = "MXN"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns an amount of money in the given currency.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	var v decimal.Decimal
	switch x := any(value).(type) {
	case decimal.Decimal:
		v = x
	case float64:
		v = decimal.NewFromFloat(x)
	case int:
		v = decimal.NewFromInt(int64(x))
	case int64:
		v = decimal.NewFromInt(x)
	}
	return Money{value: v, cur: currency}
}

// currency returns the full currency description.
func (m Money) currency() money.Currency {
	// to get a never nil currency the Money constructor is required.
	return *money.New(0, m.cur).Currency()
}

// maxMinor is the largest amount of minor units go-money can format.
var maxMinor = decimal.NewFromInt(math.MaxInt64)

// String returns the amount formatted in its currency, rounded to its minor unit.
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	if minor.Abs().LessThanOrEqual(maxMinor) {
		return cur.Formatter().Format(minor.IntPart())
	}
	return format(cur.Formatter(), minor)
}

// format formats minor units too large for an int64 the way go-money's Formatter does.
func format(f *money.Formatter, minor decimal.Decimal) string {
	sa := minor.Abs().StringFixed(0)
	if len(sa) <= f.Fraction {
		sa = strings.Repeat("0", f.Fraction-len(sa)+1) + sa
	}
	if f.Thousand != "" {
		for i := len(sa) - f.Fraction - 3; i > 0; i -= 3 {
			sa = sa[:i] + f.Thousand + sa[i:]
		}
	}
	if f.Fraction > 0 {
		sa = sa[:len(sa)-f.Fraction] + f.Decimal + sa[len(sa)-f.Fraction:]
	}
	sa = strings.Replace(f.Template, "1", sa, 1)
	sa = strings.Replace(sa, "$", f.Grapheme, 1)
	if minor.IsNegative() {
		sa = "-" + sa
	}
	return sa
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

// Sub returns m - n in the currency of m.
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: m.cur} }

// AsFloat returns the inexact float value of the amount.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// Round returns the amount rounded to the currency minor unit.
func (m Money) Round() Money {
	return Money{value: m.value.Round(int32(m.currency().Fraction)), cur: m.cur}
}

// Grow returns the amount compounded yearly at rate for the given number of years.
func (m Money) Grow(rate Percent, years int) Money {
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(float64(rate)).Div(decimal.NewFromInt(100)))
	return Money{value: m.value.Mul(factor.Pow(decimal.NewFromInt(int64(years)))), cur: m.cur}
}

// ChangeFrom returns the relative change from 'initial' to m.
func (m Money) ChangeFrom(initial Money) Percent {
	if initial.value.IsZero() {
		return 0
	}
	change := m.value.Sub(initial.value).Div(initial.value).Mul(decimal.NewFromInt(100))
	return Percent(change.InexactFloat64())
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
		Text     string          `json:"text"`
	}{m.Round().value, m.cur, m.String()})
}

// UnmarshalJSON reads an {amount, currency} object, or a bare amount in the DefaultCurrency.
func (m *Money) UnmarshalJSON(b []byte) error {
	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(b); err == nil {
		*m = Money{value: amount, cur: DefaultCurrency}
		return nil
	}
	var v struct {
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("invalid money %s: %w", b, err)
	}
	if v.Currency == "" {
		v.Currency = DefaultCurrency
	}
	*m = Money{value: v.Amount, cur: v.Currency}
	return nil
}

