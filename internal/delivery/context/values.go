// Package context carries request-scoped values shared by the HTTP and push delivery layers.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type valueKey uint8

const (
	requestIDKey valueKey = iota + 1
	loggerKey
	accountIDKey
)

// HeaderXRequestID is echoed on every response and forwarded by the push worker.
const HeaderXRequestID = echo.HeaderXRequestID

// echo.Context store key for the request id.
const echoRequestIDKey = "request_id"

// SetRequestID records the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestID returns the id bound by the request id middleware. Handlers
// invoked without it (unit tests, the error handler on early failures) get the
// id from the request context or, failing that, a fresh one.
func GetRequestID(c echo.Context) string {
	if id, _ := c.Get(echoRequestIDKey).(string); id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.NewString()
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the logger bound to ctx, or fallback when none is.
// Usecases log through it so every line carries the request and account ids.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithAccount binds the authenticated retailer account to ctx and tags the
// bound logger (or fallback) with its id.
func WithAccount(ctx context.Context, accountID uuid.UUID, fallback *slog.Logger) context.Context {
	logger := GetLoggerOrDefault(ctx, fallback).With(slog.String("account_id", accountID.String()))
	ctx = context.WithValue(ctx, accountIDKey, accountID)

	return WithLogger(ctx, logger)
}

// AccountFromContext returns the account bound by WithAccount.
func AccountFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(accountIDKey).(uuid.UUID)

	return id, ok && id != uuid.Nil
}
