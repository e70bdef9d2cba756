// Package config loads the settings shared by the optimaxx commands from the
// environment, and from a .env file in the working directory.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the defaults of the command line flags.
type Config struct {
	Provider       string   // yahoo or eodhd
	EODHDAPIKey    string   // required by the eodhd provider
	Catalog        string   // path to a jsonl catalog, empty for the built-in one
	Cache          bool     // cache provider responses for the day
	Addr           string   // listen address of the http server
	AllowedOrigins []string // CORS origins of the http server
}

// Load reads configuration from environment variables and .env file.
//
// Variables already set in the environment take precedence over the .env file.
func Load() *Config {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	return &Config{
		Provider:       getEnv("OPTIMAXX_PROVIDER", "yahoo"),
		EODHDAPIKey:    getEnv("EODHD_API_KEY", ""),
		Catalog:        getEnv("OPTIMAXX_CATALOG", ""),
		Cache:          getBool("OPTIMAXX_CACHE", false),
		Addr:           getEnv("OPTIMAXX_ADDR", ":8080"),
		AllowedOrigins: getList("OPTIMAXX_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost"}),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getList reads a comma separated list.
func getList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var list []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list
}
