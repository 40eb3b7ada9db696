// SPDX-License-Identifier: MIT

// Package config loads process settings from the environment (prefix
// GRAPHRANK_), optionally seeded from .env files. The vertex count N and the
// ranking capacity K are not settings: they come from the input header.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/graphrank/internal/logging"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the environment variable prefix, e.g. GRAPHRANK_LOG_LEVEL.
const EnvPrefix = "GRAPHRANK"

// StdinInput selects standard input as the request stream.
const StdinInput = "-"

// Config validation errors.
var (
	ErrInvalidLogLevel  = errors.New("log_level must be debug, info, warn, error or disabled")
	ErrInvalidLogFormat = errors.New("log_format must be 'json' or 'console'")
	ErrInvalidInput     = errors.New("input cannot be empty")
)

// Config holds every process-level setting.
type Config struct {
	Input       string `envconfig:"INPUT" default:"-"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"console"`
	MetricsAddr string `envconfig:"METRICS_ADDR" default:""` // empty disables the metrics server
	Summary     bool   `envconfig:"SUMMARY" default:"false"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Input:     StdinInput,
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// Load reads the given .env files (missing ones are skipped; existing
// environment variables win), then processes the environment into a Config.
// The result is not validated; call Validate after applying flag overrides.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Validate checks cfg and returns the first violation.
func (c *Config) Validate() error {
	if c.Input == "" {
		return ErrInvalidInput
	}
	// Accept exactly what the logger accepts, aliases included.
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}

	return nil
}
