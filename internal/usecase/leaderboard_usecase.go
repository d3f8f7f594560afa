package usecase

import (
	"context"

	"offerengine/internal/domain/entity"

	"github.com/google/uuid"
)

// LeaderboardUsecase credits and ranks retailer accounts
type LeaderboardUsecase interface {
	// ApplyEvent credits a score event once; applied is false for a redelivery
	ApplyEvent(ctx context.Context, event *entity.ScoreEvent) (applied bool, err error)

	// Top returns the ranked leaderboard
	Top(ctx context.Context, limit int) ([]*entity.LeaderboardScore, error)

	// GetScore returns an account's total; accounts without points have a zero score
	GetScore(ctx context.Context, accountID uuid.UUID) (*entity.LeaderboardScore, error)

	// RecordSignupReferral credits the referrer once per referred account
	RecordSignupReferral(ctx context.Context, referrerAccountID, referredAccountID uuid.UUID) (applied bool, err error)
}
