package service

import (
	"context"

	"offerengine/internal/domain/entity"
)

// EventPublisher defines the interface for publishing score events to the leaderboard
type EventPublisher interface {
	// PublishScoreEvent hands a score event to the transport; delivery may be asynchronous
	PublishScoreEvent(ctx context.Context, event *entity.ScoreEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// ScoreEventHandler consumes score events. The leaderboard implements it; the inline publisher and the
// worker push endpoint call it.
type ScoreEventHandler interface {
	// ApplyEvent credits the event once; applied is false for a redelivered event
	ApplyEvent(ctx context.Context, event *entity.ScoreEvent) (applied bool, err error)
}
