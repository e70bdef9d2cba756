// Package cmd implements the CLI application to simulate portfolio returns.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/optimaxx"
	"github.com/etnz/optimaxx/config"
	"github.com/etnz/optimaxx/eodhd"
	"github.com/etnz/optimaxx/httpcache"
	"github.com/etnz/optimaxx/yahoo"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&simulateCmd{}, "simulation")
	c.Register(&explainCmd{}, "simulation")
	c.Register(&assistCmd{}, "simulation")

	c.Register(&catalogCmd{}, "instruments")
	c.Register(&searchCmd{}, "instruments")

	c.Register(&serveCmd{}, "server")

	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
// Flags take precedence over the environment, see config.Load.

var providerFlag = flag.String("provider", "", "Price provider, 'yahoo' or 'eodhd'. This flag takes precedence over the OPTIMAXX_PROVIDER environment variable.")
var eodhdAPIKeyFlag = flag.String("eodhd-api-key", "", "EODHD API key to use for consuming EODHD.com API. This flag takes precedence over the EODHD_API_KEY environment variable. You can get one at https://eodhd.com/")
var catalogFlag = flag.String("catalog", "", "Path to an instrument catalog (JSONL format) replacing the built-in one. This flag takes precedence over the OPTIMAXX_CATALOG environment variable.")
var cacheFlag = flag.Bool("cache", false, "Cache the provider responses on disk for the day, also enabled by OPTIMAXX_CACHE=true.")

// settings returns the configuration with the flags applied.
var settings = sync.OnceValue(func() *config.Config {
	cfg := config.Load()
	if *providerFlag != "" {
		cfg.Provider = *providerFlag
	}
	if *eodhdAPIKeyFlag != "" {
		cfg.EODHDAPIKey = *eodhdAPIKeyFlag
	}
	if *catalogFlag != "" {
		cfg.Catalog = *catalogFlag
	}
	cfg.Cache = cfg.Cache || *cacheFlag
	return cfg
})

// LoadCatalog loads the catalog from the configured file, or the built-in one.
func LoadCatalog(cfg *config.Config) (*optimaxx.Catalog, error) {
	if cfg.Catalog == "" {
		return optimaxx.DefaultCatalog(), nil
	}
	f, err := os.Open(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("could not open catalog file %q: %w", cfg.Catalog, err)
	}
	defer f.Close()
	c, err := optimaxx.DecodeCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode catalog file %q: %w", cfg.Catalog, err)
	}
	return c, nil
}

// NewProvider returns the configured price provider.
func NewProvider(cfg *config.Config) (optimaxx.PriceProvider, error) {
	client := httpcache.NewClient()
	if cfg.Cache {
		client = httpcache.NewDailyCachingClient("")
	}
	switch cfg.Provider {
	case "yahoo":
		return yahoo.New(client), nil
	case "eodhd":
		if cfg.EODHDAPIKey == "" {
			return nil, errors.New("EODHD API key is not set. Use -eodhd-api-key flag or EODHD_API_KEY environment variable")
		}
		return eodhd.New(cfg.EODHDAPIKey, client), nil
	default:
		return nil, fmt.Errorf("unknown provider %q, use 'yahoo' or 'eodhd'", cfg.Provider)
	}
}

// newSimulator returns a simulator for the configured catalog and provider.
func newSimulator() (*optimaxx.Simulator, error) {
	cfg := settings()
	c, err := LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	p, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	return optimaxx.NewSimulator(c, p), nil
}

// renderMarkdown renders markdown for the terminal, or returns it unchanged if it cannot.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// printMarkdown prints markdown to the standard output.
func printMarkdown(md string) {
	fmt.Print(renderMarkdown(md))
}
