package handler

import (
	"log/slog"
	"net/http"

	"offerengine/internal/delivery/api/response"
	"offerengine/internal/delivery/api/validator"
	deliverycontext "offerengine/internal/delivery/context"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ImpressionHandlerParams holds dependencies for ImpressionHandler, injected by Fx.
type ImpressionHandlerParams struct {
	fx.In

	ImpressionUC usecase.ImpressionUsecase
	Logger       *slog.Logger
}

// ImpressionHandler records offer views and reports offer stats
type ImpressionHandler struct {
	impressionUC usecase.ImpressionUsecase
	logger       *slog.Logger
}

// NewImpressionHandler is the constructor for ImpressionHandler
func NewImpressionHandler(params ImpressionHandlerParams) *ImpressionHandler {
	return &ImpressionHandler{
		impressionUC: params.ImpressionUC,
		logger:       params.Logger,
	}
}

// RecordImpression handles POST /impressions. The write is asynchronous, so the answer is 202.
func (h *ImpressionHandler) RecordImpression(c echo.Context) error {
	var req usecase.RecordImpressionInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid impression input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	ctx := c.Request().Context()
	status, err := h.impressionUC.RecordImpression(ctx, &req)
	if err != nil {
		if !domainerrors.IsTransient(err) {
			return response.HandleAppError(c, err)
		}
		// Views are best-effort; a store outage never reaches the display surface.
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Impression not recorded", slog.Any("error", err))
		status = usecase.ImpressionAccepted
	}

	return response.Success(c, http.StatusAccepted, map[string]usecase.ImpressionStatus{"status": status})
}

// GetOfferStats handles GET /offers/:id/stats
func (h *ImpressionHandler) GetOfferStats(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer ID")
	}

	stats, err := h.impressionUC.GetOfferStats(c.Request().Context(), offerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
