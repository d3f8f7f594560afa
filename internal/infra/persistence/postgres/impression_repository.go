package postgres

import (
	"context"

	"offerengine/internal/domain/entity"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/domain/repository"
	"offerengine/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type impressionRepository struct {
	db *gorm.DB
}

// NewImpressionRepository is the constructor for impressionRepository.
func NewImpressionRepository(db *gorm.DB) repository.ImpressionRepository {
	return &impressionRepository{db: db}
}

func (repo *impressionRepository) CreateImpression(ctx context.Context, impression *entity.Impression) error {
	if impression.ID == uuid.Nil {
		impression.ID = uuid.New()
	}
	impressionM := &model.ImpressionModel{
		ID:                  impression.ID,
		OfferID:             impression.OfferID,
		OfferHomeLocationID: impression.OfferHomeLocationID,
		DisplayLocationID:   impression.DisplayLocationID,
		Channel:             string(impression.Channel),
		SessionID:           impression.SessionID,
		CreatedAt:           impression.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(impressionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create impression")
	}
	impression.CreatedAt = impressionM.CreatedAt

	return nil
}

func (repo *impressionRepository) CountImpressionsByOffer(ctx context.Context, offerID uuid.UUID) (total, locations int64, err error) {
	base := repo.db.WithContext(ctx).Model(&model.ImpressionModel{}).Where("offer_id = ?", offerID)

	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count impressions")
	}

	if err := base.Session(&gorm.Session{}).Distinct("display_location_id").Count(&locations).Error; err != nil {
		return 0, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count impression locations")
	}

	return total, locations, nil
}
