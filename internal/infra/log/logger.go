package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"offerengine/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the root logger. Every record carries the service and
// environment names so engine and worker logs can be told apart downstream.
func New(params Params) (*slog.Logger, error) {
	return newLogger(params.Config, os.Stdout)
}

func newLogger(cfg *config.Config, out io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: cfg.Env.Debug}

	var handler slog.Handler = slog.NewJSONHandler(out, opts)
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(out, opts)
	}

	var attrs []slog.Attr
	if cfg.Env.ServiceName != "" {
		attrs = append(attrs, slog.String("service", cfg.Env.ServiceName))
	}
	if cfg.Env.Env != "" {
		attrs = append(attrs, slog.String("env", cfg.Env.Env))
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return slog.New(handler), nil
}

// parseLogLevel accepts slog level names in any case ("warn", "DEBUG", "error+2"). Empty means info.
func parseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(raw) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "parse log level %q", raw)
	}

	return level, nil
}
