package handler

import (
	"log/slog"
	"time"

	"offerengine/config"
	"offerengine/internal/delivery/api/middleware"
	"offerengine/internal/delivery/api/response"
	deliverycontext "offerengine/internal/delivery/context"
	"offerengine/internal/infra/realtime"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RealtimeHandlerParams holds dependencies for RealtimeHandler, injected by Fx.
type RealtimeHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Hub    *realtime.Hub `optional:"true"`
}

// RealtimeHandler upgrades dashboard connections to the websocket channel
type RealtimeHandler struct {
	hub          *realtime.Hub
	upgrader     websocket.Upgrader
	pingInterval time.Duration
	logger       *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler
func NewRealtimeHandler(params RealtimeHandlerParams) *RealtimeHandler {
	var pingInterval time.Duration
	if params.Config.Realtime != nil {
		pingInterval = params.Config.Realtime.PingInterval
	}

	return &RealtimeHandler{
		hub:          params.Hub,
		upgrader:     realtime.Upgrader(params.Config),
		pingInterval: pingInterval,
		logger:       params.Logger,
	}
}

// Enabled reports whether a hub is running
func (h *RealtimeHandler) Enabled() bool {
	return h.hub != nil
}

// Serve handles GET /ws and blocks until the connection closes
func (h *RealtimeHandler) Serve(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	if err := h.hub.Serve(h.upgrader, c.Response(), c.Request(), accountID, h.pingInterval); err != nil {
		// The upgrader has already written the handshake failure
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Debug("Websocket upgrade rejected",
			slog.String("account_id", accountID.String()),
			slog.Any("error", err),
		)
	}

	return nil
}
