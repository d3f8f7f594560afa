package entity

import (
	"time"

	"github.com/google/uuid"
)

// OfferClass is assigned at resolution time relative to the display location.
type OfferClass string

const (
	OfferClassOwner   OfferClass = "owner"
	OfferClassPartner OfferClass = "partner"
	OfferClassOpen    OfferClass = "open"
)

// Offer is a single promotional unit. The engine never mutates offers.
type Offer struct {
	ID                      uuid.UUID  `json:"id"`                        // The Global Unique Identifier (GUID) for the offer.
	OwnerAccountID          uuid.UUID  `json:"owner_account_id"`          // The retailer account that created the offer.
	LocationID              uuid.UUID  `json:"location_id"`               // The offer's home location.
	Title                   string     `json:"title"`                     // Short headline.
	CallToAction            string     `json:"call_to_action"`            // Call-to-action text.
	CodeSeed                string     `json:"code_seed"`                 // Base redemption-code seed chosen by the owner.
	AvailableForPartnership bool       `json:"available_for_partnership"` // Shown at approved partners' locations.
	IsOpenOffer             bool       `json:"is_open_offer"`             // Published as an Open Offer.
	Active                  bool       `json:"active"`                    // Owner-controlled active flag.
	ExpiresAt               *time.Time `json:"expires_at"`                // Nil means the offer never expires.
	CreatedAt               time.Time  `json:"created_at"`                // Timestamp of when the offer was created.
}

// IsActiveAt reports whether the offer is active at the given instant.
func (o *Offer) IsActiveAt(now time.Time) bool {
	if !o.Active {
		return false
	}

	return o.ExpiresAt == nil || o.ExpiresAt.After(now)
}

// EligibleOffer is an offer resolved for a specific display location.
type EligibleOffer struct {
	Offer         *Offer     `json:"offer"`
	Class         OfferClass `json:"class"`
	HomeLocation  *Location  `json:"home_location"`
	DistanceMiles *float64   `json:"distance_miles,omitempty"` // Set for open offers only.
}
