package impl

import (
	"context"
	"strings"

	"offerengine/internal/domain/entity"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/domain/repository"
	"offerengine/internal/errors"
	"offerengine/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or refreshes the token of an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, accountID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.AccountDevice, error) {
	if deviceInfo == nil || strings.TrimSpace(deviceInfo.FCMToken) == "" || strings.TrimSpace(deviceInfo.DeviceID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm token and device id are required")
	}

	device := &entity.AccountDevice{
		AccountID: accountID,
		FCMToken:  strings.TrimSpace(deviceInfo.FCMToken),
		DeviceID:  strings.TrimSpace(deviceInfo.DeviceID),
		Platform:  deviceInfo.Platform,
		IsActive:  true,
	}

	// The repository reloads the stored row, so an existing device keeps its id.
	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	return device, nil
}

// GetAccountDevices retrieves all active devices of an account
func (s *deviceService) GetAccountDevices(ctx context.Context, accountID uuid.UUID) ([]*entity.AccountDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by account")
	}

	return devices, nil
}
