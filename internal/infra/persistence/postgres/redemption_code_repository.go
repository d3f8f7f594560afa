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
	"gorm.io/gorm/clause"
)

type redemptionCodeRepository struct {
	db *gorm.DB
}

// NewRedemptionCodeRepository is the constructor for redemptionCodeRepository.
func NewRedemptionCodeRepository(db *gorm.DB) repository.RedemptionCodeRepository {
	return &redemptionCodeRepository{db: db}
}

func (repo *redemptionCodeRepository) FindActiveCode(ctx context.Context, offerID, displayLocationID uuid.UUID) (*entity.RedemptionCode, error) {
	var codeM model.RedemptionCodeModel

	if err := repo.db.WithContext(ctx).
		Where("offer_id = ? AND display_location_id = ? AND status = ?", offerID, displayLocationID, string(entity.CodeStatusActive)).
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRedemptionCodeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find active redemption code")
	}

	return toRedemptionCodeDomain(&codeM), nil
}

func (repo *redemptionCodeRepository) FindCodeByValue(ctx context.Context, code string) (*entity.RedemptionCode, error) {
	var codeM model.RedemptionCodeModel

	if err := repo.db.WithContext(ctx).Where("code = ?", code).First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRedemptionCodeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find redemption code")
	}

	return toRedemptionCodeDomain(&codeM), nil
}

// InsertCodeIfAbsent relies on the partial unique index over active (offer, display location)
// pairs and the unique code column; either conflict leaves the table unchanged.
func (repo *redemptionCodeRepository) InsertCodeIfAbsent(ctx context.Context, code *entity.RedemptionCode) (bool, error) {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	codeM := fromRedemptionCodeDomain(code)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(codeM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return false, nil
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to insert redemption code")
	}

	return result.RowsAffected == 1, nil
}

// MarkRedeemed is a conditional update; only one caller can move a given code out of active.
func (repo *redemptionCodeRepository) MarkRedeemed(ctx context.Context, code *entity.RedemptionCode) error {
	if code.Status != entity.CodeStatusRedeemed || code.RedeemedAt == nil {
		return errors.Errorf("code %s has not been redeemed", code.ID)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RedemptionCodeModel{}).
		Where("id = ? AND status = ?", code.ID, string(entity.CodeStatusActive)).
		Updates(map[string]any{
			"status":      string(code.Status),
			"redeemed_at": *code.RedeemedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark redemption code redeemed")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCodeAlreadyRedeemed
	}

	return nil
}

func (repo *redemptionCodeRepository) CountCodesByOffer(ctx context.Context, offerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RedemptionCodeModel{}).
		Where("offer_id = ?", offerID).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count redemption codes")
	}

	return count, nil
}

// --- Mapper Functions ---

func toRedemptionCodeDomain(data *model.RedemptionCodeModel) *entity.RedemptionCode {
	if data == nil {
		return nil
	}

	return &entity.RedemptionCode{
		ID:                data.ID,
		Code:              data.Code,
		OfferID:           data.OfferID,
		DisplayLocationID: data.DisplayLocationID,
		Status:            entity.CodeStatus(data.Status),
		IssuedAt:          data.IssuedAt,
		RedeemedAt:        data.RedeemedAt,
	}
}

func fromRedemptionCodeDomain(data *entity.RedemptionCode) *model.RedemptionCodeModel {
	if data == nil {
		return nil
	}

	return &model.RedemptionCodeModel{
		ID:                data.ID,
		Code:              data.Code,
		OfferID:           data.OfferID,
		DisplayLocationID: data.DisplayLocationID,
		Status:            string(data.Status),
		IssuedAt:          data.IssuedAt,
		RedeemedAt:        data.RedeemedAt,
	}
}
