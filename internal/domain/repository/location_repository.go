package repository

import (
	"context"

	"offerengine/internal/domain/entity"
	"offerengine/internal/errors"

	"github.com/google/uuid"
)

// ErrLocationNotFound is returned when a location does not exist or was soft-disabled.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines storefront persistence operations.
type LocationRepository interface {
	// CreateLocation persists a new storefront.
	CreateLocation(ctx context.Context, location *entity.Location) error

	// FindLocationByID retrieves an active location.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// FindLocationsByIDs retrieves active locations keyed by id; unknown ids are omitted.
	FindLocationsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Location, error)

	// FindLocationsByOwner retrieves all active locations of an account.
	FindLocationsByOwner(ctx context.Context, accountID uuid.UUID) ([]*entity.Location, error)
}
