package handler

import (
	"log/slog"
	"net/http"

	"offerengine/internal/delivery/api/middleware"
	"offerengine/internal/delivery/api/response"
	"offerengine/internal/delivery/api/validator"
	"offerengine/internal/domain/entity"
	"offerengine/internal/usecase"
	"offerengine/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultRedemptionListLimit = 50

// RedemptionHandlerParams holds dependencies for RedemptionHandler, injected by Fx.
type RedemptionHandlerParams struct {
	fx.In

	CodeUC       usecase.RedemptionCodeUsecase
	RedemptionUC usecase.RedemptionUsecase
	CatalogUC    usecase.CatalogUsecase
	Logger       *slog.Logger
}

// RedemptionHandler issues and redeems codes
type RedemptionHandler struct {
	codeUC       usecase.RedemptionCodeUsecase
	redemptionUC usecase.RedemptionUsecase
	catalogUC    usecase.CatalogUsecase
	logger       *slog.Logger
}

// NewRedemptionHandler is the constructor for RedemptionHandler
func NewRedemptionHandler(params RedemptionHandlerParams) *RedemptionHandler {
	return &RedemptionHandler{
		codeUC:       params.CodeUC,
		redemptionUC: params.RedemptionUC,
		catalogUC:    params.CatalogUC,
		logger:       params.Logger,
	}
}

// IssueCodeRequest asks for the code of an offer shown at a display location
type IssueCodeRequest struct {
	OfferID           uuid.UUID `json:"offer_id" validate:"required"`
	DisplayLocationID uuid.UUID `json:"display_location_id" validate:"required"`
}

// RedeemRequest consumes a code at one of the caller's locations
type RedeemRequest struct {
	Code                string    `json:"code" validate:"required,max=64"`
	RedeemingLocationID uuid.UUID `json:"redeeming_location_id" validate:"required"`
}

// IssueCode handles POST /codes
func (h *RedemptionHandler) IssueCode(c echo.Context) error {
	var req IssueCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid code request")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	code, err := h.codeUC.IssueRedemptionCode(c.Request().Context(), req.OfferID, req.DisplayLocationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, code)
}

// CouponQR handles GET /codes/:code/qr
func (h *RedemptionHandler) CouponQR(c echo.Context) error {
	png, err := h.codeUC.RenderCouponQR(c.Request().Context(), c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// Redeem handles POST /redemptions. Only the owner of the redeeming location may redeem there.
func (h *RedemptionHandler) Redeem(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req RedeemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid redemption input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	ctx := c.Request().Context()
	if _, err := h.catalogUC.RequireLocationOwner(ctx, accountID, req.RedeemingLocationID); err != nil {
		return response.HandleAppError(c, err)
	}

	redemption, err := h.redemptionUC.Redeem(ctx, req.Code, req.RedeemingLocationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, redemption)
}

// ListRedemptions handles GET /redemptions?direction=inbound|outbound&limit=
func (h *RedemptionHandler) ListRedemptions(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	direction := entity.RedemptionDirection(c.QueryParam("direction"))
	if direction == "" {
		direction = entity.DirectionInbound
	}

	limit, err := util.ParseLimit(c.QueryParam("limit"), defaultRedemptionListLimit)
	if err != nil {
		return response.BadRequest(c, "INVALID_LIMIT", "limit must be a positive integer")
	}

	redemptions, err := h.redemptionUC.ListRedemptions(c.Request().Context(), accountID, direction, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, redemptions)
}
