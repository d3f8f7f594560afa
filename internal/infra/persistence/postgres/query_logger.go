package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"offerengine/config"
	deliverycontext "offerengine/internal/delivery/context"
	"offerengine/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQuery = 200 * time.Millisecond

// queryLogger routes gorm output through slog. It logs with the request-scoped
// logger when one is bound, so SQL lines carry the request and account ids.
type queryLogger struct {
	base  *slog.Logger
	level gormlogger.LogLevel
	slow  time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	l := &queryLogger{base: base, level: gormlogger.Warn, slow: defaultSlowQuery}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = gormlogger.Info
	}
	if cfg.Env.Log.SlowQuery > 0 {
		l.slow = cfg.Env.Log.SlowQuery
	}

	return l
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) printf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, msg string, args []any) {
	if l.base == nil || l.level < threshold {
		return
	}

	l.logger(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements, then slow ones, then (in debug) everything.
// A missing row is an expected outcome for lookups and never logs as a failure.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	var (
		level slog.Level
		msg   string
	)
	switch {
	case failed && l.level >= gormlogger.Error:
		level, msg = slog.LevelError, "SQL failed"
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		level, msg = slog.LevelWarn, "SQL slow"
	case l.level >= gormlogger.Info:
		level, msg = slog.LevelDebug, "SQL"
	default:
		return
	}

	statement, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", statement),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if failed {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.logger(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *queryLogger) logger(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
