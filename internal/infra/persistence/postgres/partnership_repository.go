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

type partnershipRepository struct {
	db *gorm.DB
}

// NewPartnershipRepository is the constructor for partnershipRepository.
func NewPartnershipRepository(db *gorm.DB) repository.PartnershipRepository {
	return &partnershipRepository{db: db}
}

func (repo *partnershipRepository) CreatePartnership(ctx context.Context, partnership *entity.Partnership) error {
	if partnership.ID == uuid.Nil {
		partnership.ID = uuid.New()
	}
	partnershipM := &model.PartnershipModel{
		ID:         partnership.ID,
		AccountAID: partnership.AccountAID,
		AccountBID: partnership.AccountBID,
		Status:     string(partnership.Status),
	}

	if err := repo.db.WithContext(ctx).Create(partnershipM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create partnership")
	}
	partnership.CreatedAt = partnershipM.CreatedAt
	partnership.UpdatedAt = partnershipM.UpdatedAt

	return nil
}

func (repo *partnershipRepository) FindPartnershipByID(ctx context.Context, id uuid.UUID) (*entity.Partnership, error) {
	var partnershipM model.PartnershipModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&partnershipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnershipNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find partnership")
	}

	return toPartnershipDomain(&partnershipM), nil
}

func (repo *partnershipRepository) UpdatePartnershipStatus(
	ctx context.Context,
	partnership *entity.Partnership,
	from entity.PartnershipStatus,
) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PartnershipModel{}).
		Where("id = ? AND status = ?", partnership.ID, string(from)).
		Updates(map[string]any{
			"status":     string(partnership.Status),
			"updated_at": partnership.UpdatedAt,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update partnership status")
	}

	return result.RowsAffected == 1, nil
}

func (repo *partnershipRepository) FindApprovedPartnerships(ctx context.Context, accountID uuid.UUID) ([]*entity.Partnership, error) {
	var partnershipModels []*model.PartnershipModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.PartnershipApproved)).
		Where("account_a_id = ? OR account_b_id = ?", accountID, accountID).
		Find(&partnershipModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find approved partnerships")
	}

	partnerships := make([]*entity.Partnership, 0, len(partnershipModels))
	for _, m := range partnershipModels {
		partnerships = append(partnerships, toPartnershipDomain(m))
	}

	return partnerships, nil
}

func toPartnershipDomain(m *model.PartnershipModel) *entity.Partnership {
	return &entity.Partnership{
		ID:         m.ID,
		AccountAID: m.AccountAID,
		AccountBID: m.AccountBID,
		Status:     entity.PartnershipStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (repo *partnershipRepository) CreateOpenOfferSubscription(ctx context.Context, subscription *entity.OpenOfferSubscription) error {
	if subscription.ID == uuid.Nil {
		subscription.ID = uuid.New()
	}
	subscriptionM := &model.OpenOfferSubscriptionModel{
		ID:         subscription.ID,
		LocationID: subscription.LocationID,
		OfferID:    subscription.OfferID,
		Active:     subscription.Active,
	}

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("location is already subscribed to this offer")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create open offer subscription")
	}
	subscription.CreatedAt = subscriptionM.CreatedAt

	return nil
}

func (repo *partnershipRepository) FindActiveOpenOfferSubscriptions(ctx context.Context, locationID uuid.UUID) ([]*entity.OpenOfferSubscription, error) {
	var subscriptionModels []*model.OpenOfferSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("location_id = ? AND active = ?", locationID, true).
		Order("created_at ASC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find open offer subscriptions")
	}

	subscriptions := make([]*entity.OpenOfferSubscription, 0, len(subscriptionModels))
	for _, m := range subscriptionModels {
		subscriptions = append(subscriptions, &entity.OpenOfferSubscription{
			ID:         m.ID,
			LocationID: m.LocationID,
			OfferID:    m.OfferID,
			Active:     m.Active,
			CreatedAt:  m.CreatedAt,
		})
	}

	return subscriptions, nil
}
