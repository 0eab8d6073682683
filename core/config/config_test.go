package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 30, cfg.Database.TimeoutSeconds)
	assert.Equal(t, "sectionkit", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Adapter.StrictThread)
	assert.False(t, cfg.Adapter.AnimateInvisible)
	assert.Equal(t, 375.0, cfg.Adapter.CalculationWidth)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ADAPTER_STRICT_THREAD", "false")
	t.Setenv("ADAPTER_CALCULATION_WIDTH", "414")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.Adapter.StrictThread)
	assert.Equal(t, 414.0, cfg.Adapter.CalculationWidth)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nADAPTER_ANIMATE_INVISIBLE=true\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("ADAPTER_ANIMATE_INVISIBLE")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Adapter.AnimateInvisible)
}
