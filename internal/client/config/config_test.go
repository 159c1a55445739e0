package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"client"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	assert.Equal(t, "http://127.0.0.1:5001", cfg.ServerURL)
	assert.Equal(t, "storefront.db", cfg.DatabasePath)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", "http://api.local:9000", "-f", "/tmp/cart.db", "-t", "3")

	cfg := LoadConfig()
	assert.Equal(t, "http://api.local:9000", cfg.ServerURL)
	assert.Equal(t, "/tmp/cart.db", cfg.DatabasePath)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_url": "http://json.local:7000",
		"request_timeout_seconds": 5
	}`), 0o600))

	withArgs(t, "-c", path)

	cfg := LoadConfig()
	assert.Equal(t, "http://json.local:7000", cfg.ServerURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "storefront.db", cfg.DatabasePath, "unset JSON field keeps default")
}

func TestLoadConfig_FlagsBeatJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_url": "http://json.local:7000"}`), 0o600))

	withArgs(t, "-c", path, "-a", "http://flag.local:8000")

	cfg := LoadConfig()
	assert.Equal(t, "http://flag.local:8000", cfg.ServerURL)
}
