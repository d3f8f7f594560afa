// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Location is a retailer's physical storefront.
type Location struct {
	ID             uuid.UUID `json:"id"`               // The Global Unique Identifier (GUID) for the location.
	OwnerAccountID uuid.UUID `json:"owner_account_id"` // The retailer account that owns this storefront.
	Name           string    `json:"name"`             // Display name of the storefront.
	Address        string    `json:"address"`          // Postal address, used for geocoding when coordinates are missing.
	Latitude       *float64  `json:"latitude"`         // Optional latitude.
	Longitude      *float64  `json:"longitude"`        // Optional longitude.
	Category       string    `json:"category"`         // Retail category tag (cafe, salon, deli...).
	OpenOfferOnly  bool      `json:"open_offer_only"`  // Location only receives Open Offers, never Partner Offers.
	IsActive       bool      `json:"is_active"`        // Soft-disable flag.
	CreatedAt      time.Time `json:"created_at"`       // Timestamp of when the location was onboarded.
	UpdatedAt      time.Time `json:"updated_at"`       // Timestamp of the last modification.
}

// Coordinates returns the stored position as an orb.Point (lng, lat).
func (l *Location) Coordinates() (orb.Point, bool) {
	if l.Latitude == nil || l.Longitude == nil {
		return orb.Point{}, false
	}

	return orb.Point{*l.Longitude, *l.Latitude}, true
}

// SameCategory reports whether both locations carry the same non-empty category tag.
func (l *Location) SameCategory(other *Location) bool {
	a := strings.ToLower(strings.TrimSpace(l.Category))
	b := strings.ToLower(strings.TrimSpace(other.Category))

	return a != "" && a == b
}
