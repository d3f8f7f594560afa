package repository

import (
	"context"

	"offerengine/internal/domain/entity"
	"offerengine/internal/errors"

	"github.com/google/uuid"
)

// ErrOfferNotFound is returned when an offer does not exist.
var ErrOfferNotFound = errors.New("offer not found")

// OfferRepository defines offer persistence operations. Expiry is evaluated by callers,
// queries only filter on the stored active flag.
type OfferRepository interface {
	// CreateOffer persists a new offer.
	CreateOffer(ctx context.Context, offer *entity.Offer) error

	// FindOfferByID retrieves an offer regardless of its state.
	FindOfferByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// FindFlaggedActiveOffersByOwners retrieves offers with the active flag set owned by any of the accounts.
	FindFlaggedActiveOffersByOwners(ctx context.Context, accountIDs []uuid.UUID) ([]*entity.Offer, error)

	// FindFlaggedActiveOffersByIDs retrieves offers with the active flag set among ids.
	FindFlaggedActiveOffersByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Offer, error)
}
