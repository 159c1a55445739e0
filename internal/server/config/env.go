package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration values from the environment. A .env
// file in the working directory is loaded first when present; missing
// files are not an error.
//
// Recognized variables:
//
//	ADDRESS       HTTP bind address (e.g., ":5001")
//	DATABASE_DSN  PostgreSQL DSN
//	SECRET_KEY    HMAC secret for bearer tokens
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.Addr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
}
