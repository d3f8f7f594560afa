package repository

import (
	"context"

	"offerengine/internal/domain/entity"

	"github.com/google/uuid"
)

// ImpressionRepository is append-only.
type ImpressionRepository interface {
	// CreateImpression appends one impression row.
	CreateImpression(ctx context.Context, impression *entity.Impression) error

	// CountImpressionsByOffer returns total impressions and the number of distinct display locations.
	CountImpressionsByOffer(ctx context.Context, offerID uuid.UUID) (total, locations int64, err error)
}
