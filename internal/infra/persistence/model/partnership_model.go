package model

import (
	"time"

	"github.com/google/uuid"
)

// PartnershipModel is the GORM-specific struct for the 'partnerships' table.
type PartnershipModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountAID uuid.UUID `gorm:"column:account_a_id;type:uuid;not null;index"`
	AccountBID uuid.UUID `gorm:"column:account_b_id;type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(16);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PartnershipModel) TableName() string {
	return "partnerships"
}

// OpenOfferSubscriptionModel is the GORM-specific struct for the 'open_offer_subscriptions' table.
type OpenOfferSubscriptionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_open_offer_subscriptions_pair,priority:1"`
	OfferID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_open_offer_subscriptions_pair,priority:2"`
	Active     bool      `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OpenOfferSubscriptionModel) TableName() string {
	return "open_offer_subscriptions"
}
