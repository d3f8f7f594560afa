package repository

import (
	"context"

	"offerengine/internal/domain/entity"
	"offerengine/internal/errors"

	"github.com/google/uuid"
)

// ErrPartnershipNotFound is returned when a partnership does not exist.
var ErrPartnershipNotFound = errors.New("partnership not found")

// PartnershipRepository defines partnership and open-offer subscription persistence.
type PartnershipRepository interface {
	// CreatePartnership persists a partnership in its current status.
	CreatePartnership(ctx context.Context, partnership *entity.Partnership) error

	// FindPartnershipByID retrieves a partnership in any status.
	FindPartnershipByID(ctx context.Context, id uuid.UUID) (*entity.Partnership, error)

	// UpdatePartnershipStatus moves a partnership to partnership.Status only while the stored status
	// is still from. It reports false when another request changed the status first.
	UpdatePartnershipStatus(ctx context.Context, partnership *entity.Partnership, from entity.PartnershipStatus) (bool, error)

	// FindApprovedPartnerships retrieves approved partnerships where the account is either side.
	FindApprovedPartnerships(ctx context.Context, accountID uuid.UUID) ([]*entity.Partnership, error)

	// CreateOpenOfferSubscription persists a location's subscription to an Open Offer.
	CreateOpenOfferSubscription(ctx context.Context, subscription *entity.OpenOfferSubscription) error

	// FindActiveOpenOfferSubscriptions retrieves active subscriptions of a display location.
	FindActiveOpenOfferSubscriptions(ctx context.Context, locationID uuid.UUID) ([]*entity.OpenOfferSubscription, error)
}
