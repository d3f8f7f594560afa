package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"offerengine/internal/delivery/api/response"
	deliverycontext "offerengine/internal/delivery/context"
	"offerengine/internal/domain/entity"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/errors"
	"offerengine/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	EligibilityUC usecase.EligibilityUsecase
	Planner       usecase.RotationPlanner
	Logger        *slog.Logger
}

// OfferHandler serves the offers a display location may show
type OfferHandler struct {
	eligibilityUC usecase.EligibilityUsecase
	planner       usecase.RotationPlanner
	logger        *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		eligibilityUC: params.EligibilityUC,
		planner:       params.Planner,
		logger:        params.Logger,
	}
}

// OffersResponse is the resolved offer set. Retryable marks a degraded, empty result.
type OffersResponse struct {
	*usecase.EligibleOffers
	Retryable bool `json:"retryable"`
}

// RotationResponse is a planned display sequence
type RotationResponse struct {
	LocationID uuid.UUID               `json:"location_id"`
	Surface    usecase.Surface         `json:"surface"`
	Owner      []*entity.EligibleOffer `json:"owner"`
	Sequence   []*entity.EligibleOffer `json:"sequence"`
	Retryable  bool                    `json:"retryable"`
}

// ListOffers handles GET /locations/:id/offers
func (h *OfferHandler) ListOffers(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	offers, retryable, err := h.resolve(c, locationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, OffersResponse{EligibleOffers: offers, Retryable: retryable})
}

// PlanRotation handles GET /locations/:id/rotation?surface=&seed=
func (h *OfferHandler) PlanRotation(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	opts := usecase.PlanOptions{Surface: usecase.SurfaceRotation}
	if surface := c.QueryParam("surface"); surface != "" {
		opts.Surface = usecase.Surface(surface)
		if !opts.Surface.Valid() {
			return response.BadRequest(c, "INVALID_SURFACE", "surface must be rotation, proximity or partner")
		}
	}
	if rawSeed := c.QueryParam("seed"); rawSeed != "" {
		seed, err := strconv.ParseInt(rawSeed, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_SEED", "seed must be an integer")
		}
		opts.Seed = &seed
	}

	offers, retryable, err := h.resolve(c, locationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RotationResponse{
		LocationID: locationID,
		Surface:    opts.Surface,
		Owner:      offers.Owner,
		Sequence:   h.planner.Plan(offers.Owner, offers.Partner, offers.Open, opts),
		Retryable:  retryable,
	})
}

// resolve degrades every failure except an unknown location to an empty, retryable offer set.
func (h *OfferHandler) resolve(c echo.Context, locationID uuid.UUID) (*usecase.EligibleOffers, bool, error) {
	ctx := c.Request().Context()

	offers, err := h.eligibilityUC.ResolveEligibleOffers(ctx, locationID)
	if err == nil {
		return offers, false, nil
	}
	if errors.Is(err, domainerrors.ErrLocationNotFound) {
		return nil, false, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Serving empty offer set",
		slog.String("location_id", locationID.String()),
		slog.Any("error", err),
	)

	return &usecase.EligibleOffers{
		LocationID: locationID,
		Owner:      []*entity.EligibleOffer{},
		Partner:    []*entity.EligibleOffer{},
		Open:       []*entity.EligibleOffer{},
		ResolvedAt: time.Now().UTC(),
	}, true, nil
}
