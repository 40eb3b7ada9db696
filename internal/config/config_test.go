package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/graphrank/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("GRAPHRANK_LOG_LEVEL", "debug")
	t.Setenv("GRAPHRANK_METRICS_ADDR", "127.0.0.1:9100")
	t.Setenv("GRAPHRANK_SUMMARY", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:9100", cfg.MetricsAddr)
	assert.True(t, cfg.Summary)
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"GRAPHRANK_LOG_FORMAT=json\nGRAPHRANK_LOG_LEVEL=error\n"), 0o600))

	t.Setenv("GRAPHRANK_LOG_LEVEL", "info")
	// godotenv sets variables process-wide; register cleanup for the one it adds.
	t.Setenv("GRAPHRANK_LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("GRAPHRANK_LOG_FORMAT"))

	cfg, err := config.Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("GRAPHRANK_SUMMARY", "maybe")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogLevel = "loud"
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidLogLevel)

	cfg = config.DefaultConfig()
	cfg.LogFormat = "xml"
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidLogFormat)

	cfg = config.DefaultConfig()
	cfg.Input = ""
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidInput)
}

func TestValidate_AcceptsLoggerAliases(t *testing.T) {
	for _, level := range []string{"warning", "off", "", "INFO"} {
		cfg := config.DefaultConfig()
		cfg.LogLevel = level
		assert.NoError(t, cfg.Validate(), level)
	}
	for _, format := range []string{"text", "", "JSON"} {
		cfg := config.DefaultConfig()
		cfg.LogFormat = format
		assert.NoError(t, cfg.Validate(), format)
	}
}
