package entity

import (
	"time"

	"offerengine/internal/errors"

	"github.com/google/uuid"
)

// CodeStatus is the RedemptionCode state. redeemed is terminal.
type CodeStatus string

const (
	CodeStatusActive   CodeStatus = "active"
	CodeStatusRedeemed CodeStatus = "redeemed"
)

// ErrCodeNotActive is returned by RedemptionCode.Redeem on a terminal code.
var ErrCodeNotActive = errors.New("redemption code is not active")

// RedemptionCode binds an opaque code to an (offer, display location) pair.
type RedemptionCode struct {
	ID                uuid.UUID  `json:"id"`
	Code              string     `json:"code"`
	OfferID           uuid.UUID  `json:"offer_id"`
	DisplayLocationID uuid.UUID  `json:"display_location_id"` // Referring location captured at issue time.
	Status            CodeStatus `json:"status"`
	IssuedAt          time.Time  `json:"issued_at"`
	RedeemedAt        *time.Time `json:"redeemed_at,omitempty"`
}

// Redeem applies the active -> redeemed transition.
func (c *RedemptionCode) Redeem(now time.Time) error {
	if c.Status != CodeStatusActive {
		return ErrCodeNotActive
	}
	c.Status = CodeStatusRedeemed
	c.RedeemedAt = &now

	return nil
}

// Attribution classifies a redemption from both sides of the referral.
type Attribution struct {
	Inbound  bool // Offer owner redeemed its own offer at its own store.
	Outbound bool // The display location's owner referred the customer and is credited.
}

// Attribute classifies a redemption given the offer owner (A), the display location owner (B)
// and the redeeming location owner (C). ok is false when C is unrelated to both A and B.
func Attribute(offerOwner, displayOwner, redeemingOwner uuid.UUID) (attr Attribution, ok bool) {
	attr.Inbound = redeemingOwner == offerOwner
	attr.Outbound = offerOwner != displayOwner &&
		(redeemingOwner == offerOwner || redeemingOwner == displayOwner)

	return attr, attr.Inbound || attr.Outbound
}

// Redemption is the immutable fact written when a code is consumed.
type Redemption struct {
	ID                  uuid.UUID `json:"id"`
	CodeID              uuid.UUID `json:"code_id"`
	Code                string    `json:"code"`
	OfferID             uuid.UUID `json:"offer_id"`
	OfferOwnerAccountID uuid.UUID `json:"offer_owner_account_id"`
	RedeemingLocationID uuid.UUID `json:"redeeming_location_id"`
	RedeemingAccountID  uuid.UUID `json:"redeeming_account_id"`
	DisplayLocationID   uuid.UUID `json:"display_location_id"`
	ReferrerAccountID   uuid.UUID `json:"referrer_account_id"`
	Inbound             bool      `json:"inbound"`
	Outbound            bool      `json:"outbound"`
	RedeemedAt          time.Time `json:"redeemed_at"`
}

// RedemptionDirection filters analytics queries.
type RedemptionDirection string

const (
	DirectionInbound  RedemptionDirection = "inbound"
	DirectionOutbound RedemptionDirection = "outbound"
)
