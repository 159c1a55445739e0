// Package config handles configuration for the storefront CLI, including
// defaults, JSON overlay and command-line flags.
package config

import "time"

// Config holds runtime settings for the storefront client.
//
// Fields:
//   - ServerURL: base URL of the backend API (e.g. "http://127.0.0.1:5001").
//   - DatabasePath: path of the local SQLite database holding the cart.
//   - RequestTimeout: per-request bound for API calls.
type Config struct {
	ServerURL      string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5001"
	c.DatabasePath = "storefront.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
