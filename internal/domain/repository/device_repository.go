// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"offerengine/internal/domain/entity"
	"offerengine/internal/errors"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores push tokens of retailer accounts.
type DeviceRepository interface {
	// UpsertDevice registers a device or refreshes its token when (account, device id) already exists.
	UpsertDevice(ctx context.Context, device *entity.AccountDevice) error

	// FindActiveDevicesByAccount retrieves all active devices of an account.
	FindActiveDevicesByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.AccountDevice, error)

	// DeactivateDevice marks a device inactive, typically after the token was rejected.
	DeactivateDevice(ctx context.Context, id uuid.UUID) error
}
