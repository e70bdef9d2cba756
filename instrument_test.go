package optimaxx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	require.Greater(t, c.Len(), 0)
	for _, name := range c.Names() {
		inst, ok := c.Get(name)
		require.True(t, ok, "Get(%q)", name)
		assert.NotEmpty(t, inst.Symbol, "instrument %q has no symbol", name)
		assert.NotEmpty(t, inst.Description, "instrument %q has no description", name)
	}
	spy, ok := c.Get("SPDR S&P 500")
	require.True(t, ok)
	assert.Equal(t, "SPY", spy.Symbol)
}

func TestDecodeCatalog(t *testing.T) {
	in := `{"nombre":"One","descripcion":"first","simbolo":"ONE"}

{"nombre":"Two","descripcion":"second","simbolo":"TWO"}
`
	c, err := DecodeCatalog(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"One", "Two"}, c.Names())
	assert.False(t, c.Has("Three"))

	two, ok := c.Get("Two")
	require.True(t, ok)
	assert.Equal(t, Instrument{Name: "Two", Description: "second", Symbol: "TWO"}, two)
}

func TestDecodeCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"invalid json", `{"nombre":`},
		{"duplicate", `{"nombre":"One","simbolo":"A"}` + "\n" + `{"nombre":"One","simbolo":"B"}`},
		{"no symbol", `{"nombre":"One","descripcion":"x"}`},
		{"no name", `{"simbolo":"A"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCatalog(strings.NewReader(tt.in))
			assert.Error(t, err)
		})
	}
}

func TestCatalogInstrumentsIsACopy(t *testing.T) {
	c := testCatalog()
	list := c.Instruments()
	list[0].Symbol = "changed"
	inst, _ := c.Get(list[0].Name)
	assert.Equal(t, "AAA", inst.Symbol)
}
