// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"offerengine/internal/domain/entity"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/domain/repository"
	"offerengine/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// UpsertDevice registers a device for an account, refreshing the token of an existing (account, device id) pair.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.AccountDevice) error {
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}
	now := time.Now().UTC()
	deviceM := fromDeviceDomain(device)
	deviceM.CreatedAt = now
	deviceM.UpdatedAt = now

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}, {Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"fcm_token", "platform", "is_active", "updated_at"}),
		}).
		Create(deviceM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	var stored model.AccountDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("account_id = ? AND device_id = ?", device.AccountID, device.DeviceID).
		First(&stored).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to reload device")
	}
	*device = *toDeviceDomain(&stored)

	return nil
}

// FindActiveDevicesByAccount retrieves all active devices for an account.
func (repo *deviceRepository) FindActiveDevicesByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.AccountDevice, error) {
	var deviceModels []*model.AccountDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ? AND is_active = ?", accountID, true).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find active devices by account")
	}

	devices := make([]*entity.AccountDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// DeactivateDevice marks a device inactive.
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountDeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now().UTC()})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDeviceDomain(data *model.AccountDeviceModel) *entity.AccountDevice {
	if data == nil {
		return nil
	}

	return &entity.AccountDevice{
		ID:        data.ID,
		AccountID: data.AccountID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.AccountDevice) *model.AccountDeviceModel {
	if data == nil {
		return nil
	}

	return &model.AccountDeviceModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
