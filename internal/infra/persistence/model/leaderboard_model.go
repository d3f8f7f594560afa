package model

import (
	"time"

	"github.com/google/uuid"
)

// ScoreEventModel is the GORM-specific struct for the 'score_events' ledger.
// The primary key doubles as the idempotency key of the event.
type ScoreEventModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind       string    `gorm:"type:varchar(32);not null"`
	AccountID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Points     int64     `gorm:"not null"`
	SourceID   uuid.UUID `gorm:"type:uuid;not null"`
	OccurredAt time.Time `gorm:"not null"`
	AppliedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ScoreEventModel) TableName() string {
	return "score_events"
}

// LeaderboardScoreModel is the GORM-specific struct for the 'leaderboard_scores' table.
type LeaderboardScoreModel struct {
	AccountID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Points         int64     `gorm:"not null;index:idx_leaderboard_rank,priority:1,sort:desc"`
	FirstAccruedAt time.Time `gorm:"not null"`
	LastAccruedAt  time.Time `gorm:"not null;index:idx_leaderboard_rank,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (LeaderboardScoreModel) TableName() string {
	return "leaderboard_scores"
}
