package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountDeviceModel is the GORM-specific struct for the 'account_devices' table.
type AccountDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_account_devices_device,priority:1"`
	FCMToken  string    `gorm:"type:varchar(255);not null"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_account_devices_device,priority:2"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountDeviceModel) TableName() string {
	return "account_devices"
}
