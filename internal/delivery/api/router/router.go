// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"offerengine/config"
	"offerengine/internal/delivery/api/middleware"
	"offerengine/internal/delivery/api/router/handler"
	"offerengine/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OfferHandler       *handler.OfferHandler
	ImpressionHandler  *handler.ImpressionHandler
	RedemptionHandler  *handler.RedemptionHandler
	LeaderboardHandler *handler.LeaderboardHandler
	CatalogHandler     *handler.CatalogHandler
	DeviceHandler      *handler.DeviceHandler
	RealtimeHandler    *handler.RealtimeHandler
	AuthMiddleware     *middleware.AuthMiddleware
	MetricsHandler     http.Handler `name:"metricsHandler" optional:"true"`
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	offerHandler       *handler.OfferHandler
	impressionHandler  *handler.ImpressionHandler
	redemptionHandler  *handler.RedemptionHandler
	leaderboardHandler *handler.LeaderboardHandler
	catalogHandler     *handler.CatalogHandler
	deviceHandler      *handler.DeviceHandler
	realtimeHandler    *handler.RealtimeHandler
	authMiddleware     *middleware.AuthMiddleware
	metricsHandler     http.Handler
	config             *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		offerHandler:       params.OfferHandler,
		impressionHandler:  params.ImpressionHandler,
		redemptionHandler:  params.RedemptionHandler,
		leaderboardHandler: params.LeaderboardHandler,
		catalogHandler:     params.CatalogHandler,
		deviceHandler:      params.DeviceHandler,
		realtimeHandler:    params.RealtimeHandler,
		authMiddleware:     params.AuthMiddleware,
		metricsHandler:     params.MetricsHandler,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metricsHandler != nil {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metricsHandler))
	}

	authenticate := r.authMiddleware.Authenticate
	retailer := r.authMiddleware.RequireRole(constants.RoleRetailer)

	if r.realtimeHandler.Enabled() {
		e.GET("/ws", r.realtimeHandler.Serve, authenticate)
	}

	apiV1 := e.Group("/api/v1")

	// Display surfaces and customers
	apiV1.GET("/locations/:id", r.catalogHandler.GetLocation)
	apiV1.GET("/locations/:id/offers", r.offerHandler.ListOffers)
	apiV1.GET("/locations/:id/rotation", r.offerHandler.PlanRotation)
	apiV1.POST("/impressions", r.impressionHandler.RecordImpression)
	apiV1.POST("/codes", r.redemptionHandler.IssueCode)
	apiV1.GET("/codes/:code/qr", r.redemptionHandler.CouponQR)
	apiV1.GET("/leaderboard", r.leaderboardHandler.Top)

	// Retailer accounts
	retailerGroup := apiV1.Group("", authenticate, retailer)
	{
		retailerGroup.POST("/locations", r.catalogHandler.CreateLocation)
		retailerGroup.POST("/locations/:id/subscriptions", r.catalogHandler.SubscribeOpenOffer)
		retailerGroup.POST("/offers", r.catalogHandler.CreateOffer)
		retailerGroup.GET("/offers/:id/stats", r.impressionHandler.GetOfferStats)
		retailerGroup.POST("/partnerships", r.catalogHandler.CreatePartnership)
		retailerGroup.POST("/partnerships/:id/approve", r.catalogHandler.ApprovePartnership)

		retailerGroup.POST("/redemptions", r.redemptionHandler.Redeem)
		retailerGroup.GET("/redemptions", r.redemptionHandler.ListRedemptions)

		retailerGroup.GET("/leaderboard/me", r.leaderboardHandler.MyScore)
		retailerGroup.POST("/leaderboard/referrals", r.leaderboardHandler.ClaimReferral)

		retailerGroup.POST("/devices", r.deviceHandler.RegisterDevice)
		retailerGroup.GET("/devices", r.deviceHandler.GetAccountDevices)
	}
}
