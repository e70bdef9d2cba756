package optimaxx

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Instrument is a financial instrument that can be selected for a simulation.
//
// The json keys are the ones of the historical catalog files.
type Instrument struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Symbol      string `json:"simbolo"`
}

func (i Instrument) validate() error {
	switch {
	case strings.TrimSpace(i.Name) == "":
		return errors.New("instrument has no name")
	case strings.TrimSpace(i.Symbol) == "":
		return fmt.Errorf("instrument %q has no symbol", i.Name)
	}
	return nil
}

// Catalog is the read-only list of instruments available for selection, indexed by name.
type Catalog struct {
	instruments []Instrument
	index       map[string]int
}

// NewCatalog returns a catalog of the given instruments, in that order.
//
// Names must be unique and every instrument must have a symbol.
func NewCatalog(instruments ...Instrument) (*Catalog, error) {
	c := &Catalog{
		instruments: make([]Instrument, 0, len(instruments)),
		index:       make(map[string]int, len(instruments)),
	}
	for _, inst := range instruments {
		if err := inst.validate(); err != nil {
			return nil, err
		}
		if _, exists := c.index[inst.Name]; exists {
			return nil, fmt.Errorf("duplicate instrument name %q", inst.Name)
		}
		c.index[inst.Name] = len(c.instruments)
		c.instruments = append(c.instruments, inst)
	}
	return c, nil
}

// DecodeCatalog reads a catalog in JSONL format, one instrument per line.
// Blank lines are ignored.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	var instruments []Instrument
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var inst Instrument
		if err := json.Unmarshal(raw, &inst); err != nil {
			return nil, fmt.Errorf("catalog line %d: %w", line, err)
		}
		instruments = append(instruments, inst)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return NewCatalog(instruments...)
}

//go:embed catalog.jsonl
var defaultCatalog []byte

// DefaultCatalog returns the catalog embedded in the program.
func DefaultCatalog() *Catalog {
	c, err := DecodeCatalog(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded catalog: %v", err))
	}
	return c
}

// Get returns the instrument with that name.
func (c *Catalog) Get(name string) (Instrument, bool) {
	i, ok := c.index[name]
	if !ok {
		return Instrument{}, false
	}
	return c.instruments[i], true
}

// Has reports whether an instrument with that name exists.
func (c *Catalog) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Len returns the number of instruments.
func (c *Catalog) Len() int { return len(c.instruments) }

// Instruments returns a copy of all instruments in catalog order.
func (c *Catalog) Instruments() []Instrument {
	return append([]Instrument(nil), c.instruments...)
}

// Names returns all instrument names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.instruments))
	for i, inst := range c.instruments {
		names[i] = inst.Name
	}
	return names
}
