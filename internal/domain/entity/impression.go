package entity

import (
	"time"

	"github.com/google/uuid"
)

// Channel identifies the surface an offer was displayed on.
type Channel string

const (
	ChannelCarousel     Channel = "carousel"
	ChannelInStore      Channel = "in_store"
	ChannelQR           Channel = "qr"
	ChannelMobileCoupon Channel = "mobile_coupon"
)

// Valid reports whether c is a known channel.
func (c Channel) Valid() bool {
	switch c {
	case ChannelCarousel, ChannelInStore, ChannelQR, ChannelMobileCoupon:
		return true
	default:
		return false
	}
}

// Impression is an immutable view fact.
type Impression struct {
	ID                  uuid.UUID `json:"id"`
	OfferID             uuid.UUID `json:"offer_id"`
	OfferHomeLocationID uuid.UUID `json:"offer_home_location_id"`
	DisplayLocationID   uuid.UUID `json:"display_location_id"`
	Channel             Channel   `json:"channel"`
	SessionID           string    `json:"session_id"`
	CreatedAt           time.Time `json:"created_at"`
}

// DedupKey is the per-session key identifying one logical viewing.
func (i *Impression) DedupKey() string {
	return ImpressionKey(i.OfferID, i.DisplayLocationID)
}

// ImpressionKey builds the "offerId:displayLocationId" dedup key.
func ImpressionKey(offerID, displayLocationID uuid.UUID) string {
	return offerID.String() + ":" + displayLocationID.String()
}

// OfferStats aggregates view and redemption counts for an offer.
type OfferStats struct {
	OfferID         uuid.UUID `json:"offer_id"`
	Impressions     int64     `json:"impressions"`
	Redemptions     int64     `json:"redemptions"`
	CodesIssued     int64     `json:"codes_issued"`
	UniqueLocations int64     `json:"unique_display_locations"`
}
