package config

import (
	"encoding/json"
	"os"

	"github.com/sagarm/storefront/internal/flagx"
)

// JsonConfig is the DTO used for reading JSON configuration files.
type JsonConfig struct {
	Addr        string `json:"address"`
	DatabaseDSN string `json:"database_dsn"`
	SecretKey   string `json:"secret_key"`
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

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
}
