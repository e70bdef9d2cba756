package optimaxx

import "fmt"

// Percent is a percentage, 10 means 10%.
type Percent float64

// Equal compares two percentages with a precision of 1e-4.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// Rate returns the percentage as a ratio, 10% is 0.1.
func (p Percent) Rate() float64 { return float64(p) / 100 }

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString formats the percentage with an explicit sign.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" || res == "-0.00%" {
		return "0.00%"
	}
	return res
}
