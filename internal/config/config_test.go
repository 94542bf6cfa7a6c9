package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every PASSKEEP_ env var that Load() reads.
var allConfigKeys = []string{
	"PASSKEEP_DB_PATH",
	"PASSKEEP_KEY_PATH",
	"PASSKEEP_LOG_LEVEL",
}

// isolateConfigEnv saves and unsets all PASSKEEP_ env vars so tests don't
// inherit values from the host environment. t.Cleanup restores original
// values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "passkeep.db", cfg.DBPath)
	assert.Equal(t, "passkeep.key", cfg.KeyPath)
	assert.Equal(t, 0, cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PASSKEEP_DB_PATH", "/tmp/test.db")
	t.Setenv("PASSKEEP_KEY_PATH", "/tmp/test.key")
	t.Setenv("PASSKEEP_LOG_LEVEL", "-4")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "/tmp/test.key", cfg.KeyPath)
	assert.Equal(t, -4, cfg.LogLevel)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PASSKEEP_LOG_LEVEL", "not-a-number")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
}
