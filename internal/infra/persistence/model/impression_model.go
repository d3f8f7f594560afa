package model

import (
	"time"

	"github.com/google/uuid"
)

// ImpressionModel is the GORM-specific struct for the append-only 'impressions' table.
type ImpressionModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OfferID             uuid.UUID `gorm:"type:uuid;not null;index"`
	OfferHomeLocationID uuid.UUID `gorm:"type:uuid;not null"`
	DisplayLocationID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Channel             string    `gorm:"type:varchar(32);not null"`
	SessionID           string    `gorm:"type:varchar(128)"`
	CreatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (ImpressionModel) TableName() string {
	return "impressions"
}
