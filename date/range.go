package date

import "fmt"

// Range represents an inclusive range of dates.
type Range struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

// NewRange returns the range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// YearsUntil returns the range starting on January 1st, 'years' years before the year of 'end', and ending on 'end'.
func YearsUntil(end Date, years int) Range {
	return Range{From: end.StartOfYear(-years), To: end}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// IsValid reports whether From is not after To.
func (r Range) IsValid() bool { return !r.From.After(r.To) }

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
