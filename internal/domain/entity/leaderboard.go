package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScoreEventKind enumerates leaderboard point sources.
type ScoreEventKind string

const (
	ScoreImpression             ScoreEventKind = "impression"
	ScoreRedemptionLogged       ScoreEventKind = "redemption_logged"
	ScoreReferredRedemption     ScoreEventKind = "referred_redemption"
	ScoreRetailerSignupReferral ScoreEventKind = "retailer_signup_referral"
)

// scoreEventNamespace scopes deterministic event ids.
var scoreEventNamespace = uuid.MustParse("0b6f5f0e-6a5e-4c1b-9d0e-3c2a7f4e9b11")

// Points returns the fixed point value of the event kind, or 0 for unknown kinds.
func (k ScoreEventKind) Points() int64 {
	switch k {
	case ScoreImpression, ScoreRedemptionLogged:
		return 1
	case ScoreRetailerSignupReferral:
		return 3
	case ScoreReferredRedemption:
		return 5
	default:
		return 0
	}
}

// ScoreEvent credits points to an account. ID is derived from the source so that
// redelivered events are applied once.
type ScoreEvent struct {
	ID         uuid.UUID      `json:"id"`
	Kind       ScoreEventKind `json:"kind"`
	AccountID  uuid.UUID      `json:"account_id"`
	Points     int64          `json:"points"`
	SourceID   uuid.UUID      `json:"source_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	RequestID  string         `json:"request_id,omitempty"`
}

// NewScoreEvent builds an event whose id is stable for (kind, source).
func NewScoreEvent(kind ScoreEventKind, accountID, sourceID uuid.UUID, at time.Time) *ScoreEvent {
	return &ScoreEvent{
		ID:         uuid.NewSHA1(scoreEventNamespace, []byte(string(kind)+":"+sourceID.String())),
		Kind:       kind,
		AccountID:  accountID,
		Points:     kind.Points(),
		SourceID:   sourceID,
		OccurredAt: at,
	}
}

// LeaderboardScore is an account's running total.
type LeaderboardScore struct {
	AccountID      uuid.UUID `json:"account_id"`
	Points         int64     `json:"points"`
	FirstAccruedAt time.Time `json:"first_accrued_at"`
	LastAccruedAt  time.Time `json:"last_accrued_at"` // When the current total was reached; earlier ranks first on ties.
	Rank           int       `json:"rank,omitempty"`
}
