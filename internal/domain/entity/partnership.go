package entity

import (
	"time"

	"offerengine/internal/errors"

	"github.com/google/uuid"
)

// PartnershipStatus is the lifecycle state of a bilateral partnership.
type PartnershipStatus string

const (
	PartnershipPending  PartnershipStatus = "pending"
	PartnershipApproved PartnershipStatus = "approved"
	PartnershipPaused   PartnershipStatus = "paused"
)

var (
	// ErrPartnershipNotPending is returned by Approve once the partnership left pending.
	ErrPartnershipNotPending = errors.New("partnership is not pending")
	// ErrNotInvitedAccount is returned by Approve when the caller is not AccountBID.
	ErrNotInvitedAccount = errors.New("only the invited account can approve a partnership")
)

// Partnership is a relationship between two retailer accounts. It is created
// pending by AccountAID and only counts for distribution once AccountBID approves.
type Partnership struct {
	ID         uuid.UUID         `json:"id"`           // The Global Unique Identifier (GUID) for the partnership.
	AccountAID uuid.UUID         `json:"account_a_id"` // Requesting account.
	AccountBID uuid.UUID         `json:"account_b_id"` // Accepting account.
	Status     PartnershipStatus `json:"status"`       // pending, approved or paused.
	CreatedAt  time.Time         `json:"created_at"`   // Timestamp of the request.
	UpdatedAt  time.Time         `json:"updated_at"`   // Timestamp of the last status change.
}

// Counterparty returns the other side of the partnership, or uuid.Nil if accountID is not a member.
func (p *Partnership) Counterparty(accountID uuid.UUID) uuid.UUID {
	switch accountID {
	case p.AccountAID:
		return p.AccountBID
	case p.AccountBID:
		return p.AccountAID
	default:
		return uuid.Nil
	}
}

// Approve applies the pending -> approved transition on behalf of accountID.
func (p *Partnership) Approve(accountID uuid.UUID, now time.Time) error {
	if accountID != p.AccountBID {
		return ErrNotInvitedAccount
	}
	if p.Status != PartnershipPending {
		return ErrPartnershipNotPending
	}
	p.Status = PartnershipApproved
	p.UpdatedAt = now

	return nil
}

// OpenOfferSubscription records that a location displays a specific Open Offer.
type OpenOfferSubscription struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the subscription.
	LocationID uuid.UUID `json:"location_id"` // The subscribing (display) location.
	OfferID    uuid.UUID `json:"offer_id"`    // The subscribed Open Offer.
	Active     bool      `json:"active"`      // Subscription can be paused without being removed.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of the subscription.
}
