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

const defaultRedemptionListLimit = 50

type redemptionRepository struct {
	db *gorm.DB
}

// NewRedemptionRepository is the constructor for redemptionRepository.
func NewRedemptionRepository(db *gorm.DB) repository.RedemptionRepository {
	return &redemptionRepository{db: db}
}

func (repo *redemptionRepository) CreateRedemption(ctx context.Context, redemption *entity.Redemption) error {
	if redemption.ID == uuid.Nil {
		redemption.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(fromRedemptionDomain(redemption)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRedemption
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create redemption")
	}

	return nil
}

func (repo *redemptionRepository) FindRedemptionByCodeID(ctx context.Context, codeID uuid.UUID) (*entity.Redemption, error) {
	var redemptionM model.RedemptionModel

	if err := repo.db.WithContext(ctx).Where("code_id = ?", codeID).First(&redemptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRedemptionCodeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find redemption by code")
	}

	return toRedemptionDomain(&redemptionM), nil
}

// ListRedemptions returns inbound redemptions of the account's own offers, or outbound redemptions
// the account referred from one of its display locations.
func (repo *redemptionRepository) ListRedemptions(
	ctx context.Context,
	accountID uuid.UUID,
	direction entity.RedemptionDirection,
	limit int,
) ([]*entity.Redemption, error) {
	if limit <= 0 {
		limit = defaultRedemptionListLimit
	}

	query := repo.db.WithContext(ctx).Model(&model.RedemptionModel{})
	switch direction {
	case entity.DirectionInbound:
		query = query.Where("offer_owner_account_id = ? AND inbound = ?", accountID, true)
	case entity.DirectionOutbound:
		query = query.Where("referrer_account_id = ? AND outbound = ?", accountID, true)
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown redemption direction")
	}

	var redemptionModels []*model.RedemptionModel
	if err := query.Order("redeemed_at DESC, id ASC").Limit(limit).Find(&redemptionModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list redemptions")
	}

	redemptions := make([]*entity.Redemption, 0, len(redemptionModels))
	for _, m := range redemptionModels {
		redemptions = append(redemptions, toRedemptionDomain(m))
	}

	return redemptions, nil
}

func (repo *redemptionRepository) CountRedemptionsByOffer(ctx context.Context, offerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RedemptionModel{}).
		Where("offer_id = ?", offerID).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count redemptions")
	}

	return count, nil
}

// --- Mapper Functions ---

func toRedemptionDomain(data *model.RedemptionModel) *entity.Redemption {
	if data == nil {
		return nil
	}

	return &entity.Redemption{
		ID:                  data.ID,
		CodeID:              data.CodeID,
		Code:                data.Code,
		OfferID:             data.OfferID,
		OfferOwnerAccountID: data.OfferOwnerAccountID,
		RedeemingLocationID: data.RedeemingLocationID,
		RedeemingAccountID:  data.RedeemingAccountID,
		DisplayLocationID:   data.DisplayLocationID,
		ReferrerAccountID:   data.ReferrerAccountID,
		Inbound:             data.Inbound,
		Outbound:            data.Outbound,
		RedeemedAt:          data.RedeemedAt,
	}
}

func fromRedemptionDomain(data *entity.Redemption) *model.RedemptionModel {
	if data == nil {
		return nil
	}

	return &model.RedemptionModel{
		ID:                  data.ID,
		CodeID:              data.CodeID,
		Code:                data.Code,
		OfferID:             data.OfferID,
		OfferOwnerAccountID: data.OfferOwnerAccountID,
		RedeemingLocationID: data.RedeemingLocationID,
		RedeemingAccountID:  data.RedeemingAccountID,
		DisplayLocationID:   data.DisplayLocationID,
		ReferrerAccountID:   data.ReferrerAccountID,
		Inbound:             data.Inbound,
		Outbound:            data.Outbound,
		RedeemedAt:          data.RedeemedAt,
	}
}
