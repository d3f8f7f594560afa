package usecase

import (
	"context"

	"offerengine/internal/domain/entity"

	"github.com/google/uuid"
)

// RedemptionCodeUsecase issues redemption codes
type RedemptionCodeUsecase interface {
	// IssueRedemptionCode returns the active code of the (offer, display location) pair, minting one when absent
	IssueRedemptionCode(ctx context.Context, offerID, displayLocationID uuid.UUID) (*entity.RedemptionCode, error)

	// RenderCouponQR renders an active code as a PNG QR image
	RenderCouponQR(ctx context.Context, code string) ([]byte, error)
}

// RedemptionUsecase consumes codes and reports on redemptions
type RedemptionUsecase interface {
	// Redeem consumes a code at a redeeming location and records the attribution
	Redeem(ctx context.Context, code string, redeemingLocationID uuid.UUID) (*entity.Redemption, error)

	// ListRedemptions lists an account's inbound or outbound redemptions, newest first
	ListRedemptions(ctx context.Context, accountID uuid.UUID, direction entity.RedemptionDirection, limit int) ([]*entity.Redemption, error)
}
