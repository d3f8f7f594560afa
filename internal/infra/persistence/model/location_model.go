// Package model contains the GORM row structs of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
type LocationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerAccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Address        string    `gorm:"type:varchar(512);not null"`
	Latitude       *float64
	Longitude      *float64
	Category       string `gorm:"type:varchar(64);not null;index"`
	OpenOfferOnly  bool   `gorm:"not null"`
	IsActive       bool   `gorm:"not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
