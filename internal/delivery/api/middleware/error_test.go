package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"offerengine/internal/delivery/api/response"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantCode      string
		wantRetryable bool
	}{
		{
			name:       "app error",
			err:        errors.Wrap(domainerrors.ErrAlreadyRedeemed, "redeem"),
			wantStatus: http.StatusConflict,
			wantCode:   "ALREADY_REDEEMED",
		},
		{
			name:          "transient store error",
			err:           domainerrors.ErrTransientStore,
			wantStatus:    http.StatusServiceUnavailable,
			wantCode:      domainerrors.ErrTransientStore.ErrorCode(),
			wantRetryable: true,
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	m := NewErrorMiddleware(discardLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantRetryable, body.Error.Retryable)
			assert.Nil(t, body.Error.Details)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(discardLogger())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusAccepted))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}
