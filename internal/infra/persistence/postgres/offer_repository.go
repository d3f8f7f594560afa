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

type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{db: db}
}

func (repo *offerRepository) CreateOffer(ctx context.Context, offer *entity.Offer) error {
	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrLocationNotFound.WithDetails("offer home location does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}
	offer.CreatedAt = offerM.CreatedAt

	return nil
}

func (repo *offerRepository) FindOfferByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find offer by id")
	}

	return toOfferDomain(&offerM), nil
}

func (repo *offerRepository) FindFlaggedActiveOffersByOwners(ctx context.Context, accountIDs []uuid.UUID) ([]*entity.Offer, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}

	return repo.findActive(ctx, "owner_account_id IN ?", accountIDs)
}

func (repo *offerRepository) FindFlaggedActiveOffersByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Offer, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	return repo.findActive(ctx, "id IN ?", ids)
}

func (repo *offerRepository) findActive(ctx context.Context, cond string, ids []uuid.UUID) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where(cond, ids).
		Where("active = ?", true).
		Order("created_at ASC, id ASC").
		Find(&offerModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find active offers")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers, nil
}

// --- Mapper Functions ---

func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	return &entity.Offer{
		ID:                      data.ID,
		OwnerAccountID:          data.OwnerAccountID,
		LocationID:              data.LocationID,
		Title:                   data.Title,
		CallToAction:            data.CallToAction,
		CodeSeed:                data.CodeSeed,
		AvailableForPartnership: data.AvailableForPartnership,
		IsOpenOffer:             data.IsOpenOffer,
		Active:                  data.Active,
		ExpiresAt:               data.ExpiresAt,
		CreatedAt:               data.CreatedAt,
	}
}

func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	return &model.OfferModel{
		ID:                      data.ID,
		OwnerAccountID:          data.OwnerAccountID,
		LocationID:              data.LocationID,
		Title:                   data.Title,
		CallToAction:            data.CallToAction,
		CodeSeed:                data.CodeSeed,
		AvailableForPartnership: data.AvailableForPartnership,
		IsOpenOffer:             data.IsOpenOffer,
		Active:                  data.Active,
		ExpiresAt:               data.ExpiresAt,
		CreatedAt:               data.CreatedAt,
	}
}
