package model

import (
	"time"

	"github.com/google/uuid"
)

// RedemptionCodeModel is the GORM-specific struct for the 'redemption_codes' table.
// At most one active code exists per (offer, display location); code values are globally unique.
type RedemptionCodeModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code              string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	OfferID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_redemption_codes_active_pair,priority:1,where:status = 'active'"`
	DisplayLocationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_redemption_codes_active_pair,priority:2,where:status = 'active'"`
	Status            string    `gorm:"type:varchar(16);not null"`
	IssuedAt          time.Time `gorm:"not null"`
	RedeemedAt        *time.Time
}

// TableName explicitly sets the table name for GORM.
func (RedemptionCodeModel) TableName() string {
	return "redemption_codes"
}

// RedemptionModel is the GORM-specific struct for the immutable 'redemptions' table.
type RedemptionModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CodeID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Code                string    `gorm:"type:varchar(32);not null"`
	OfferID             uuid.UUID `gorm:"type:uuid;not null;index"`
	OfferOwnerAccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	RedeemingLocationID uuid.UUID `gorm:"type:uuid;not null"`
	RedeemingAccountID  uuid.UUID `gorm:"type:uuid;not null"`
	DisplayLocationID   uuid.UUID `gorm:"type:uuid;not null"`
	ReferrerAccountID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Inbound             bool      `gorm:"not null"`
	Outbound            bool      `gorm:"not null"`
	RedeemedAt          time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RedemptionModel) TableName() string {
	return "redemptions"
}
