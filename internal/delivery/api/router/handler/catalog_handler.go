package handler

import (
	"log/slog"
	"net/http"

	"offerengine/internal/delivery/api/middleware"
	"offerengine/internal/delivery/api/response"
	"offerengine/internal/delivery/api/validator"
	"offerengine/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler manages locations, offers, partnerships and Open Offer subscriptions
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreatePartnershipRequest invites another account; the partnership starts pending
type CreatePartnershipRequest struct {
	PartnerAccountID uuid.UUID `json:"partner_account_id" validate:"required"`
}

// SubscribeOpenOfferRequest picks an Open Offer to show at a location
type SubscribeOpenOfferRequest struct {
	OfferID uuid.UUID `json:"offer_id" validate:"required"`
}

// CreateLocation handles POST /locations
func (h *CatalogHandler) CreateLocation(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req usecase.CreateLocationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	location, err := h.catalogUC.CreateLocation(c.Request().Context(), accountID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, location)
}

// GetLocation handles GET /locations/:id
func (h *CatalogHandler) GetLocation(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	location, err := h.catalogUC.GetLocation(c.Request().Context(), locationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location)
}

// CreateOffer handles POST /offers
func (h *CatalogHandler) CreateOffer(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req usecase.CreateOfferInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid offer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	offer, err := h.catalogUC.CreateOffer(c.Request().Context(), accountID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, offer)
}

// CreatePartnership handles POST /partnerships
func (h *CatalogHandler) CreatePartnership(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req CreatePartnershipRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid partnership input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	partnership, err := h.catalogUC.CreatePartnership(c.Request().Context(), accountID, req.PartnerAccountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, partnership)
}

// ApprovePartnership handles POST /partnerships/:id/approve
func (h *CatalogHandler) ApprovePartnership(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	partnershipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid partnership ID")
	}

	partnership, err := h.catalogUC.ApprovePartnership(c.Request().Context(), accountID, partnershipID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, partnership)
}

// SubscribeOpenOffer handles POST /locations/:id/subscriptions
func (h *CatalogHandler) SubscribeOpenOffer(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	var req SubscribeOpenOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	subscription, err := h.catalogUC.SubscribeOpenOffer(c.Request().Context(), accountID, locationID, req.OfferID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription)
}
