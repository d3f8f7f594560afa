package handler

import (
	"net/http"

	"offerengine/internal/delivery/api/middleware"
	"offerengine/internal/delivery/api/response"
	"offerengine/internal/delivery/api/validator"
	"offerengine/internal/usecase"
	"offerengine/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// LeaderboardHandler exposes retailer rankings
type LeaderboardHandler struct {
	leaderboardUC usecase.LeaderboardUsecase
}

// NewLeaderboardHandler is the constructor for LeaderboardHandler
func NewLeaderboardHandler(leaderboardUC usecase.LeaderboardUsecase) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardUC: leaderboardUC}
}

// ClaimReferralRequest names the account that referred the caller
type ClaimReferralRequest struct {
	ReferrerAccountID uuid.UUID `json:"referrer_account_id" validate:"required"`
}

// Top handles GET /leaderboard?limit=
func (h *LeaderboardHandler) Top(c echo.Context) error {
	// Zero lets the usecase apply its default page size
	limit, err := util.ParseLimit(c.QueryParam("limit"), 0)
	if err != nil {
		return response.BadRequest(c, "INVALID_LIMIT", "limit must be a positive integer")
	}

	scores, err := h.leaderboardUC.Top(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, scores)
}

// MyScore handles GET /leaderboard/me
func (h *LeaderboardHandler) MyScore(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	score, err := h.leaderboardUC.GetScore(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, score)
}

// ClaimReferral handles POST /leaderboard/referrals. The caller is the newly signed-up account.
func (h *LeaderboardHandler) ClaimReferral(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req ClaimReferralRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid referral input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	applied, err := h.leaderboardUC.RecordSignupReferral(c.Request().Context(), req.ReferrerAccountID, accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"applied": applied})
}
