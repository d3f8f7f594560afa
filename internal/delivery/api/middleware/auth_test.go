package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"offerengine/internal/domain/constants"
	"offerengine/internal/domain/service"
	mockSvc "offerengine/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	accountID := uuid.New()

	tests := []struct {
		name       string
		setup      func(req *http.Request, tokens *mockSvc.MockTokenService)
		wantStatus int
	}{
		{
			name: "valid bearer token",
			setup: func(req *http.Request, tokens *mockSvc.MockTokenService) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer good")
				tokens.EXPECT().ValidateToken("good").
					Return(&service.Claims{AccountID: accountID, Roles: []string{constants.RoleRetailer}}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "missing header",
			setup:      func(*http.Request, *mockSvc.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "rejected token",
			setup: func(req *http.Request, tokens *mockSvc.MockTokenService) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
				tokens.EXPECT().ValidateToken("expired").Return(nil, assert.AnError)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "query token ignored outside websocket upgrades",
			setup: func(req *http.Request, _ *mockSvc.MockTokenService) {
				req.URL.RawQuery = "access_token=good"
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "query token accepted on websocket upgrade",
			setup: func(req *http.Request, tokens *mockSvc.MockTokenService) {
				req.URL.RawQuery = "access_token=good"
				req.Header.Set("Connection", "Upgrade")
				req.Header.Set("Upgrade", "websocket")
				tokens.EXPECT().ValidateToken("good").
					Return(&service.Claims{AccountID: accountID, Roles: []string{constants.RoleRetailer}}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			m := NewAuthMiddleware(tokens, discardLogger())

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard/me", nil)
			tt.setup(req, tokens)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, m.Authenticate(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusNoContent {
				got, ok := GetAccountID(c)
				require.True(t, ok)
				assert.Equal(t, accountID, got)
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), discardLogger())
	guarded := m.RequireRole(constants.RoleRetailer)(okHandler)

	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	c.Set(constants.ContextKeyRoles, []string{"shopper"})
	require.NoError(t, guarded(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	c.Set(constants.ContextKeyRoles, []string{constants.RoleRetailer})
	require.NoError(t, guarded(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
