package usecase

import (
	"context"

	"offerengine/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordImpressionInput describes one offer view
type RecordImpressionInput struct {
	OfferID             uuid.UUID      `json:"offer_id" validate:"required"`
	OfferHomeLocationID uuid.UUID      `json:"offer_home_location_id" validate:"required"`
	DisplayLocationID   uuid.UUID      `json:"display_location_id" validate:"required"`
	Channel             entity.Channel `json:"channel" validate:"required,oneof=carousel in_store qr mobile_coupon"`
	SessionID           string         `json:"session_id" validate:"required,max=128"`
}

// ImpressionStatus reports what happened to a view report
type ImpressionStatus string

const (
	ImpressionAccepted  ImpressionStatus = "accepted"
	ImpressionDuplicate ImpressionStatus = "duplicate"
)

// ImpressionUsecase records offer views
type ImpressionUsecase interface {
	// RecordImpression dedups the view per session and queues the write; it never blocks on storage
	RecordImpression(ctx context.Context, input *RecordImpressionInput) (ImpressionStatus, error)

	// GetOfferStats aggregates views, issued codes and redemptions of an offer
	GetOfferStats(ctx context.Context, offerID uuid.UUID) (*entity.OfferStats, error)
}
