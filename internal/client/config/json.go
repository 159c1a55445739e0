package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/sagarm/storefront/internal/flagx"
)

// JsonConfig is the DTO used for reading JSON configuration files. Timeout
// values are expressed in whole seconds.
type JsonConfig struct {
	ServerURL             string `json:"server_url"`
	DatabasePath          string `json:"database_path"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config. The file path is taken from the -c/-config flags; when neither is
// set, no JSON file is loaded. Unset JSON fields leave the current value
// untouched. A missing or malformed file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ServerURL != "" {
		config.ServerURL = c.ServerURL
	}
	if c.DatabasePath != "" {
		config.DatabasePath = c.DatabasePath
	}
	if c.RequestTimeoutSeconds > 0 {
		config.RequestTimeout = time.Duration(c.RequestTimeoutSeconds) * time.Second
	}
}
