package repository

import (
	"context"

	"offerengine/internal/domain/entity"
	"offerengine/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for redemption persistence.
var (
	// ErrRedemptionCodeNotFound is returned when no code matches.
	ErrRedemptionCodeNotFound = errors.New("redemption code not found")
	// ErrCodeAlreadyRedeemed is returned when the conditional transition finds the code already consumed.
	ErrCodeAlreadyRedeemed = errors.New("redemption code already redeemed")
	// ErrDuplicateRedemption is returned when a redemption fact already exists for the code.
	ErrDuplicateRedemption = errors.New("redemption already recorded")
)

// RedemptionCodeRepository stores codes bound to (offer, display location).
type RedemptionCodeRepository interface {
	// FindActiveCode retrieves the active code of an (offer, display location) pair.
	FindActiveCode(ctx context.Context, offerID, displayLocationID uuid.UUID) (*entity.RedemptionCode, error)

	// FindCodeByValue retrieves a code by its string value in any status.
	FindCodeByValue(ctx context.Context, code string) (*entity.RedemptionCode, error)

	// InsertCodeIfAbsent inserts the code unless it conflicts with an existing active code for the
	// pair or an existing code value. It reports whether the row was inserted.
	InsertCodeIfAbsent(ctx context.Context, code *entity.RedemptionCode) (bool, error)

	// MarkRedeemed stores a code that RedemptionCode.Redeem moved to redeemed. It returns
	// ErrCodeAlreadyRedeemed when the stored row was not active at update time.
	MarkRedeemed(ctx context.Context, code *entity.RedemptionCode) error

	// CountCodesByOffer returns how many codes were ever issued for an offer.
	CountCodesByOffer(ctx context.Context, offerID uuid.UUID) (int64, error)
}

// RedemptionRepository stores immutable redemption facts.
type RedemptionRepository interface {
	// CreateRedemption writes the fact; one per code.
	CreateRedemption(ctx context.Context, redemption *entity.Redemption) error

	// FindRedemptionByCodeID retrieves the fact written for a code.
	FindRedemptionByCodeID(ctx context.Context, codeID uuid.UUID) (*entity.Redemption, error)

	// ListRedemptions lists redemptions involving an account in the given direction, newest first.
	ListRedemptions(ctx context.Context, accountID uuid.UUID, direction entity.RedemptionDirection, limit int) ([]*entity.Redemption, error)

	// CountRedemptionsByOffer counts redemptions of an offer.
	CountRedemptionsByOffer(ctx context.Context, offerID uuid.UUID) (int64, error)
}
