package usecase

import (
	"context"
	"time"

	"offerengine/internal/domain/entity"

	"github.com/google/uuid"
)

// EligibleOffers is the resolved offer set of one display location
type EligibleOffers struct {
	LocationID uuid.UUID               `json:"location_id"`
	Owner      []*entity.EligibleOffer `json:"owner"`
	Partner    []*entity.EligibleOffer `json:"partner"`
	Open       []*entity.EligibleOffer `json:"open"`
	ResolvedAt time.Time               `json:"resolved_at"`
	Cached     bool                    `json:"cached"`
}

// Empty reports whether nothing can be shown at the location
func (e *EligibleOffers) Empty() bool {
	return len(e.Owner) == 0 && len(e.Partner) == 0 && len(e.Open) == 0
}

// Find returns the resolved entry of an offer, or nil when the offer is not eligible
func (e *EligibleOffers) Find(offerID uuid.UUID) *entity.EligibleOffer {
	for _, list := range [][]*entity.EligibleOffer{e.Owner, e.Partner, e.Open} {
		for _, offer := range list {
			if offer.Offer.ID == offerID {
				return offer
			}
		}
	}

	return nil
}

// EligibilityUsecase decides which offers a display location may show
type EligibilityUsecase interface {
	// ResolveEligibleOffers returns the owner, partner and open offers of a display location.
	// Results may be served from a short-lived cache.
	ResolveEligibleOffers(ctx context.Context, displayLocationID uuid.UUID) (*EligibleOffers, error)

	// CheckEligibility re-resolves without the cache and returns the offer's entry, or
	// OfferNotEligible when the location may not show it
	CheckEligibility(ctx context.Context, offerID, displayLocationID uuid.UUID) (*entity.EligibleOffer, error)
}
