package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"offerengine/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"debug+2", slog.LevelDebug + 2},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNew_TagsServiceAndEnv(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "offerengine"
	cfg.Env.Env = "staging"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := newLogger(cfg, &buf)
	require.NoError(t, err)

	logger.Debug("filtered")
	logger.Info("redemption logged", slog.Int("points", 1))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "redemption logged", record["msg"])
	assert.Equal(t, "offerengine", record["service"])
	assert.Equal(t, "staging", record["env"])
	assert.NotContains(t, record, "source")
}

func TestNew_PrettyOutput(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Pretty = true
	cfg.Env.Debug = true

	var buf bytes.Buffer
	logger, err := newLogger(cfg, &buf)
	require.NoError(t, err)

	logger.Info("ready")

	assert.Contains(t, buf.String(), "msg=ready")
	assert.Contains(t, buf.String(), "source=")
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := New(Params{Config: cfg})
	assert.Error(t, err)
}
