package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountDevice is a retailer device that receives score and redemption pushes.
// DeviceID is client-chosen and unique per account; re-registering it replaces
// the FCM token and reactivates the device.
type AccountDevice struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	DeviceID  string    `json:"device_id"`
	FCMToken  string    `json:"fcm_token"`
	Platform  string    `json:"platform"` // ios, android or web
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
