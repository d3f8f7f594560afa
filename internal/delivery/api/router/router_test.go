package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"offerengine/config"
	"offerengine/internal/delivery/api/middleware"
	"offerengine/internal/delivery/api/router/handler"
	"offerengine/internal/domain/constants"
	"offerengine/internal/domain/entity"
	"offerengine/internal/domain/service"
	mockSvc "offerengine/internal/mocks/service"
	mockUsecase "offerengine/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixtures struct {
	echo        *echo.Echo
	tokens      *mockSvc.MockTokenService
	leaderboard *mockUsecase.MockLeaderboardUsecase
}

func newTestRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}

	tokens := mockSvc.NewMockTokenService(t)
	leaderboard := mockUsecase.NewMockLeaderboardUsecase(t)

	r := NewRouter(RouterParams{
		OfferHandler: handler.NewOfferHandler(handler.OfferHandlerParams{
			EligibilityUC: mockUsecase.NewMockEligibilityUsecase(t),
			Planner:       mockUsecase.NewMockRotationPlanner(t),
			Logger:        logger,
		}),
		ImpressionHandler: handler.NewImpressionHandler(handler.ImpressionHandlerParams{
			ImpressionUC: mockUsecase.NewMockImpressionUsecase(t),
			Logger:       logger,
		}),
		RedemptionHandler: handler.NewRedemptionHandler(handler.RedemptionHandlerParams{
			CodeUC:       mockUsecase.NewMockRedemptionCodeUsecase(t),
			RedemptionUC: mockUsecase.NewMockRedemptionUsecase(t),
			CatalogUC:    mockUsecase.NewMockCatalogUsecase(t),
			Logger:       logger,
		}),
		LeaderboardHandler: handler.NewLeaderboardHandler(leaderboard),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
			CatalogUC: mockUsecase.NewMockCatalogUsecase(t),
			Logger:    logger,
		}),
		DeviceHandler: handler.NewDeviceHandler(handler.DeviceHandlerParams{
			DeviceUC: mockUsecase.NewMockDeviceUsecase(t),
			Logger:   logger,
		}),
		RealtimeHandler: handler.NewRealtimeHandler(handler.RealtimeHandlerParams{Config: cfg, Logger: logger}),
		AuthMiddleware:  middleware.NewAuthMiddleware(tokens, logger),
		Config:          cfg,
	})

	e := echo.New()
	r.RegisterRoutes(e)

	return routerFixtures{echo: e, tokens: tokens, leaderboard: leaderboard}
}

func serve(e *echo.Echo, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRouter_HealthIsPublic(t *testing.T) {
	fx := newTestRouter(t)

	rec := serve(fx.echo, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_PublicLeaderboard(t *testing.T) {
	fx := newTestRouter(t)
	fx.leaderboard.EXPECT().Top(mock.Anything, 0).Return([]*entity.LeaderboardScore{}, nil)

	rec := serve(fx.echo, http.MethodGet, "/api/v1/leaderboard", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RetailerRoutesRequireToken(t *testing.T) {
	fx := newTestRouter(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/redemptions"},
		{http.MethodGet, "/api/v1/redemptions"},
		{http.MethodPost, "/api/v1/offers"},
		{http.MethodGet, "/api/v1/leaderboard/me"},
	} {
		rec := serve(fx.echo, route.method, route.path, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}
}

func TestRouter_RetailerRoleIsEnforced(t *testing.T) {
	fx := newTestRouter(t)
	shopper := uuid.New()
	fx.tokens.EXPECT().ValidateToken("shopper-token").
		Return(&service.Claims{AccountID: shopper, Roles: []string{"shopper"}}, nil)

	rec := serve(fx.echo, http.MethodGet, "/api/v1/leaderboard/me", "shopper-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_RetailerScore(t *testing.T) {
	fx := newTestRouter(t)
	retailer := uuid.New()
	fx.tokens.EXPECT().ValidateToken("retailer-token").
		Return(&service.Claims{AccountID: retailer, Roles: []string{constants.RoleRetailer}}, nil)
	fx.leaderboard.EXPECT().GetScore(mock.Anything, retailer).
		Return(&entity.LeaderboardScore{AccountID: retailer, Points: 5}, nil)

	rec := serve(fx.echo, http.MethodGet, "/api/v1/leaderboard/me", "retailer-token")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_WebsocketDisabledWithoutHub(t *testing.T) {
	fx := newTestRouter(t)

	rec := serve(fx.echo, http.MethodGet, "/ws", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
