package usecase

import (
	"context"
	"time"

	"offerengine/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLocationInput represents the input for onboarding a storefront
type CreateLocationInput struct {
	Name          string   `json:"name" validate:"required,max=255"`
	Address       string   `json:"address" validate:"required,max=512"`
	Latitude      *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Category      string   `json:"category" validate:"required,max=64"`
	OpenOfferOnly bool     `json:"open_offer_only"`
}

// CreateOfferInput represents the input for publishing an offer at one of the owner's locations
type CreateOfferInput struct {
	LocationID              uuid.UUID  `json:"location_id" validate:"required"`
	Title                   string     `json:"title" validate:"required,max=255"`
	CallToAction            string     `json:"call_to_action" validate:"required,max=512"`
	CodeSeed                string     `json:"code_seed" validate:"omitempty,alphanum,max=32"`
	AvailableForPartnership bool       `json:"available_for_partnership"`
	IsOpenOffer             bool       `json:"is_open_offer"`
	ExpiresAt               *time.Time `json:"expires_at,omitempty"`
}

// CatalogUsecase manages the locations, offers and relationships the engine distributes
type CatalogUsecase interface {
	CreateLocation(ctx context.Context, ownerAccountID uuid.UUID, input *CreateLocationInput) (*entity.Location, error)
	CreateOffer(ctx context.Context, ownerAccountID uuid.UUID, input *CreateOfferInput) (*entity.Offer, error)

	// CreatePartnership invites partnerAccountID; the partnership stays pending until the partner approves
	CreatePartnership(ctx context.Context, requesterAccountID, partnerAccountID uuid.UUID) (*entity.Partnership, error)

	// ApprovePartnership approves a pending partnership; only the invited account may call it
	ApprovePartnership(ctx context.Context, accountID, partnershipID uuid.UUID) (*entity.Partnership, error)

	// SubscribeOpenOffer lets a display location show an Open Offer
	SubscribeOpenOffer(ctx context.Context, ownerAccountID, locationID, offerID uuid.UUID) (*entity.OpenOfferSubscription, error)

	GetLocation(ctx context.Context, locationID uuid.UUID) (*entity.Location, error)

	// RequireLocationOwner returns the location when accountID owns it, otherwise Forbidden
	RequireLocationOwner(ctx context.Context, accountID, locationID uuid.UUID) (*entity.Location, error)
}
