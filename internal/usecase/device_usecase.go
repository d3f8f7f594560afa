package usecase

import (
	"context"

	"offerengine/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of an existing one
	RegisterDevice(ctx context.Context, accountID uuid.UUID, deviceInfo *DeviceInfo) (*entity.AccountDevice, error)

	// GetAccountDevices retrieves all active devices of an account
	GetAccountDevices(ctx context.Context, accountID uuid.UUID) ([]*entity.AccountDevice, error)
}
