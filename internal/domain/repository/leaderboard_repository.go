package repository

import (
	"context"
	"time"

	"offerengine/internal/domain/entity"
	"offerengine/internal/errors"

	"github.com/google/uuid"
)

// ErrScoreNotFound is returned when an account has not accrued any points.
var ErrScoreNotFound = errors.New("leaderboard score not found")

// LeaderboardRepository stores the score ledger and running totals.
type LeaderboardRepository interface {
	// InsertEventIfAbsent records the event and reports whether it was new.
	InsertEventIfAbsent(ctx context.Context, event *entity.ScoreEvent) (bool, error)

	// AddPoints increments an account's total, creating the row on first accrual.
	AddPoints(ctx context.Context, accountID uuid.UUID, points int64, at time.Time) (*entity.LeaderboardScore, error)

	// FindScore retrieves an account's total.
	FindScore(ctx context.Context, accountID uuid.UUID) (*entity.LeaderboardScore, error)

	// Top returns the highest totals ordered by points desc, last accrual asc, account id asc.
	Top(ctx context.Context, limit int) ([]*entity.LeaderboardScore, error)
}
