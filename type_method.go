package optimaxx

import "fmt"

// Method defines how the average daily return of a price series is computed.
type Method int

const (
	// Geometric derives the daily return from the total compound growth over the window.
	Geometric Method = iota
	// Arithmetic averages the simple day-over-day percentage changes.
	Arithmetic
)

func (m Method) String() string {
	switch m {
	case Geometric:
		return "geometric"
	case Arithmetic:
		return "arithmetic"
	default:
		return "unknown"
	}
}

// ParseMethod parses a string into a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "geometric", "geometrico", "geo":
		return Geometric, nil
	case "arithmetic", "aritmetico", "arith":
		return Arithmetic, nil
	default:
		return 0, fmt.Errorf("unknown return method: %q", s)
	}
}

// Strategy returns the ReturnStrategy implementing the method.
func (m Method) Strategy() ReturnStrategy {
	switch m {
	case Arithmetic:
		return arithmetic{}
	default:
		return geometric{}
	}
}

func (m Method) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
