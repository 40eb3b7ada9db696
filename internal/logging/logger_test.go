package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/graphrank/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Config{Level: "warn", Format: logging.FormatJSON, Output: &buf})
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Int("graph_id", 3).Msg("shown")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "shown", rec["message"])
	assert.Equal(t, "warn", rec["level"])
	assert.EqualValues(t, 3, rec["graph_id"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Config{Level: "debug", Format: logging.FormatConsole, Output: &buf})
	require.NoError(t, err)

	logger.Debug().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New(logging.Config{Level: "loud"})
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)

	_, err = logging.New(logging.Config{Level: "info", Format: "xml"})
	assert.ErrorIs(t, err, logging.ErrUnknownFormat)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]string{
		"json":    logging.FormatJSON,
		"":        logging.FormatJSON,
		"Console": logging.FormatConsole,
		"text":    logging.FormatConsole,
	}
	for in, want := range cases {
		got, err := logging.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseFormat("xml")
	assert.ErrorIs(t, err, logging.ErrUnknownFormat)
}
