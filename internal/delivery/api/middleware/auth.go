package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"offerengine/internal/delivery/api/response"
	deliverycontext "offerengine/internal/delivery/context"
	"offerengine/internal/domain/constants"
	"offerengine/internal/domain/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix = "Bearer "

	// Browsers cannot set headers on websocket handshakes
	websocketTokenParam = "access_token"
)

// AuthMiddleware authenticates retailer accounts with access tokens issued by the identity provider.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer token and puts the account id and roles on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header must carry a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Rejected access token",
				slog.Any("error", err),
			)

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(constants.ContextKeyAccountID, claims.AccountID)
		c.Set(constants.ContextKeyRoles, claims.Roles)

		ctx := deliverycontext.WithAccount(c.Request().Context(), claims.AccountID, m.logger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole checks the authenticated account's roles. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok || !slices.Contains(roles, requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, found := strings.CutPrefix(header, bearerPrefix); found && token != "" {
		return token, true
	}

	if websocket.IsWebSocketUpgrade(c.Request()) {
		if token := c.QueryParam(websocketTokenParam); token != "" {
			return token, true
		}
	}

	return "", false
}

// GetAccountID returns the authenticated account id.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	accountID, ok := c.Get(constants.ContextKeyAccountID).(uuid.UUID)

	return accountID, ok && accountID != uuid.Nil
}

// GetRoles returns the authenticated account's roles.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(constants.ContextKeyRoles).([]string)

	return roles, ok
}
