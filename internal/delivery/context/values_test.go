package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRequestID(t *testing.T) {
	e := echo.New()

	t.Run("echo context value wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "from-ctx"))
		c := e.NewContext(req, httptest.NewRecorder())
		SetRequestID(c, "from-echo")

		assert.Equal(t, "from-echo", GetRequestID(c))
	})

	t.Run("falls back to request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "from-ctx"))
		c := e.NewContext(req, httptest.NewRecorder())

		assert.Equal(t, "from-ctx", GetRequestID(c))
	})

	t.Run("mints one when absent", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		_, err := uuid.Parse(GetRequestID(c))
		assert.NoError(t, err)
	})
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	bound := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, bound, GetLoggerOrDefault(WithLogger(context.Background(), bound), fallback))
}

func TestWithAccount(t *testing.T) {
	var buf bytes.Buffer
	fallback := slog.New(slog.NewJSONHandler(&buf, nil))
	accountID := uuid.New()

	_, ok := AccountFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithAccount(context.Background(), accountID, fallback)

	got, ok := AccountFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, accountID, got)

	GetLoggerOrDefault(ctx, fallback).Info("redeemed")
	assert.Contains(t, buf.String(), `"account_id":"`+accountID.String()+`"`)
}
