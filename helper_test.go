package optimaxx

import "github.com/etnz/optimaxx/date"

// MXN is a helper for test to create peso money from const
func MXN(v float64) Money { return M(v, "MXN") }

// testCatalog is a small catalog used across tests.
func testCatalog() *Catalog {
	c, err := NewCatalog(
		Instrument{Name: "Alpha", Description: "steady growth", Symbol: "AAA"},
		Instrument{Name: "Beta", Description: "flat", Symbol: "BBB"},
		Instrument{Name: "Gamma", Description: "not listed", Symbol: "GGG"},
		Instrument{Name: "Delta", Description: "single point", Symbol: "DDD"},
	)
	if err != nil {
		panic(err)
	}
	return c
}

var jan2 = date.New(2023, 1, 2)
