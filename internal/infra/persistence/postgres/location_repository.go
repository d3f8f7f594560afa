package postgres

import (
	"context"

	"offerengine/internal/domain/entity"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/domain/repository"
	"offerengine/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.Location) error {
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

func (repo *locationRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find location by id")
	}

	return toLocationDomain(&locationM), nil
}

func (repo *locationRepository) FindLocationsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Location, error) {
	locations := make(map[uuid.UUID]*entity.Location, len(ids))
	if len(ids) == 0 {
		return locations, nil
	}

	var locationModels []*model.LocationModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&locationModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find locations by ids")
	}

	for _, locationM := range locationModels {
		locations[locationM.ID] = toLocationDomain(locationM)
	}

	return locations, nil
}

func (repo *locationRepository) FindLocationsByOwner(ctx context.Context, accountID uuid.UUID) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("owner_account_id = ? AND is_active = ?", accountID, true).
		Order("created_at ASC").
		Find(&locationModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find locations by owner")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:             data.ID,
		OwnerAccountID: data.OwnerAccountID,
		Name:           data.Name,
		Address:        data.Address,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Category:       data.Category,
		OpenOfferOnly:  data.OpenOfferOnly,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:             data.ID,
		OwnerAccountID: data.OwnerAccountID,
		Name:           data.Name,
		Address:        data.Address,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Category:       data.Category,
		OpenOfferOnly:  data.OpenOfferOnly,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
