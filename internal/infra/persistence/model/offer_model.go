package model

import (
	"time"

	"github.com/google/uuid"
)

// OfferModel is the GORM-specific struct for the 'offers' table.
type OfferModel struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerAccountID          uuid.UUID `gorm:"type:uuid;not null;index:idx_offers_owner_active,priority:1"`
	LocationID              uuid.UUID `gorm:"type:uuid;not null;index"`
	Title                   string    `gorm:"type:varchar(255);not null"`
	CallToAction            string    `gorm:"type:varchar(512);not null"`
	CodeSeed                string    `gorm:"type:varchar(32)"`
	AvailableForPartnership bool      `gorm:"not null"`
	IsOpenOffer             bool      `gorm:"not null"`
	Active                  bool      `gorm:"not null;index:idx_offers_owner_active,priority:2"`
	ExpiresAt               *time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
