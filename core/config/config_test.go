package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "data/catalog.db", cfg.Database.Path)
	assert.Equal(t, 5000, cfg.Database.BusyTimeoutMillis)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 2, cfg.Watch.IntervalSeconds)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/other.db")
	t.Setenv("WATCH_INTERVAL_SECONDS", "7")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, 7, cfg.Watch.IntervalSeconds)
	assert.Equal(t, "debug", cfg.Log.Level)
}
