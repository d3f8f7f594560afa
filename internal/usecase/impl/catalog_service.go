package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "offerengine/internal/delivery/context"
	"offerengine/internal/domain/entity"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/domain/repository"
	"offerengine/internal/domain/service"
	"offerengine/internal/errors"
	"offerengine/internal/usecase"

	"github.com/google/uuid"
)

type catalogService struct {
	locationRepo    repository.LocationRepository
	offerRepo       repository.OfferRepository
	partnershipRepo repository.PartnershipRepository
	cache           service.Cache
	logger          *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(
	locationRepo repository.LocationRepository,
	offerRepo repository.OfferRepository,
	partnershipRepo repository.PartnershipRepository,
	cache service.Cache,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		locationRepo:    locationRepo,
		offerRepo:       offerRepo,
		partnershipRepo: partnershipRepo,
		cache:           cache,
		logger:          logger,
	}
}

// CreateLocation onboards a storefront for an account
func (s *catalogService) CreateLocation(ctx context.Context, ownerAccountID uuid.UUID, input *usecase.CreateLocationInput) (*entity.Location, error) {
	if input == nil || (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude and longitude must be provided together")
	}

	now := time.Now().UTC()
	location := &entity.Location{
		ID:             uuid.New(),
		OwnerAccountID: ownerAccountID,
		Name:           strings.TrimSpace(input.Name),
		Address:        strings.TrimSpace(input.Address),
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Category:       strings.ToLower(strings.TrimSpace(input.Category)),
		OpenOfferOnly:  input.OpenOfferOnly,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.locationRepo.CreateLocation(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to create location")
	}

	return location, nil
}

// CreateOffer publishes an offer at one of the owner's locations
func (s *catalogService) CreateOffer(ctx context.Context, ownerAccountID uuid.UUID, input *usecase.CreateOfferInput) (*entity.Offer, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}

	if _, err := s.RequireLocationOwner(ctx, ownerAccountID, input.LocationID); err != nil {
		return nil, err
	}

	if input.ExpiresAt != nil && !input.ExpiresAt.After(time.Now()) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("expires_at must be in the future")
	}

	offer := &entity.Offer{
		ID:                      uuid.New(),
		OwnerAccountID:          ownerAccountID,
		LocationID:              input.LocationID,
		Title:                   strings.TrimSpace(input.Title),
		CallToAction:            strings.TrimSpace(input.CallToAction),
		CodeSeed:                strings.ToUpper(input.CodeSeed),
		AvailableForPartnership: input.AvailableForPartnership,
		IsOpenOffer:             input.IsOpenOffer,
		Active:                  true,
		ExpiresAt:               input.ExpiresAt,
		CreatedAt:               time.Now().UTC(),
	}

	if err := s.offerRepo.CreateOffer(ctx, offer); err != nil {
		return nil, errors.Wrap(err, "failed to create offer")
	}

	return offer, nil
}

// CreatePartnership invites another account. The partnership is always stored
// pending; it feeds distribution only after ApprovePartnership.
func (s *catalogService) CreatePartnership(ctx context.Context, requesterAccountID, partnerAccountID uuid.UUID) (*entity.Partnership, error) {
	if requesterAccountID == uuid.Nil || partnerAccountID == uuid.Nil || requesterAccountID == partnerAccountID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a partnership needs two different accounts")
	}

	now := time.Now().UTC()
	partnership := &entity.Partnership{
		ID:         uuid.New(),
		AccountAID: requesterAccountID,
		AccountBID: partnerAccountID,
		Status:     entity.PartnershipPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.partnershipRepo.CreatePartnership(ctx, partnership); err != nil {
		return nil, errors.Wrap(err, "failed to create partnership")
	}

	return partnership, nil
}

// ApprovePartnership lets the invited account accept a pending partnership and
// drops the cached offer sets of both accounts' locations.
func (s *catalogService) ApprovePartnership(ctx context.Context, accountID, partnershipID uuid.UUID) (*entity.Partnership, error) {
	partnership, err := s.partnershipRepo.FindPartnershipByID(ctx, partnershipID)
	if err != nil {
		if errors.Is(err, repository.ErrPartnershipNotFound) {
			return nil, domainerrors.ErrPartnershipNotFound
		}

		return nil, err
	}

	if err := partnership.Approve(accountID, time.Now().UTC()); err != nil {
		switch {
		case errors.Is(err, entity.ErrNotInvitedAccount):
			return nil, domainerrors.ErrForbidden.WithDetails("only the invited account can approve this partnership")
		case errors.Is(err, entity.ErrPartnershipNotPending):
			return nil, domainerrors.ErrPartnershipNotPending
		default:
			return nil, err
		}
	}

	updated, err := s.partnershipRepo.UpdatePartnershipStatus(ctx, partnership, entity.PartnershipPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to approve partnership")
	}
	if !updated {
		return nil, domainerrors.ErrPartnershipNotPending
	}

	s.invalidateAccountLocations(ctx, partnership.AccountAID, partnership.AccountBID)

	return partnership, nil
}

func (s *catalogService) invalidateAccountLocations(ctx context.Context, accountIDs ...uuid.UUID) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	for _, accountID := range accountIDs {
		locations, err := s.locationRepo.FindLocationsByOwner(ctx, accountID)
		if err != nil {
			logger.Warn("Failed to list locations for cache invalidation",
				slog.String("account_id", accountID.String()),
				slog.Any("error", err),
			)

			continue
		}
		for _, location := range locations {
			s.invalidateEligibility(ctx, location.ID)
		}
	}
}

func (s *catalogService) invalidateEligibility(ctx context.Context, locationID uuid.UUID) {
	if err := s.cache.Delete(ctx, eligibilityCacheKeyPrefix+locationID.String()); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to invalidate eligibility cache",
			slog.String("location_id", locationID.String()),
			slog.Any("error", err),
		)
	}
}

// SubscribeOpenOffer lets a display location show another retailer's Open Offer
func (s *catalogService) SubscribeOpenOffer(ctx context.Context, ownerAccountID, locationID, offerID uuid.UUID) (*entity.OpenOfferSubscription, error) {
	if _, err := s.RequireLocationOwner(ctx, ownerAccountID, locationID); err != nil {
		return nil, err
	}

	offer, err := s.offerRepo.FindOfferByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, domainerrors.ErrOfferNotFound
		}

		return nil, err
	}
	if !offer.IsOpenOffer || offer.OwnerAccountID == ownerAccountID {
		return nil, domainerrors.ErrOfferNotEligible.WithDetails("only other retailers' Open Offers can be subscribed")
	}

	subscription := &entity.OpenOfferSubscription{
		ID:         uuid.New(),
		LocationID: locationID,
		OfferID:    offerID,
		Active:     true,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.partnershipRepo.CreateOpenOfferSubscription(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to create open offer subscription")
	}

	s.invalidateEligibility(ctx, locationID)

	return subscription, nil
}

// GetLocation retrieves an active location
func (s *catalogService) GetLocation(ctx context.Context, locationID uuid.UUID) (*entity.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, err
	}

	return location, nil
}

// RequireLocationOwner returns the location when accountID owns it
func (s *catalogService) RequireLocationOwner(ctx context.Context, accountID, locationID uuid.UUID) (*entity.Location, error) {
	location, err := s.GetLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	if location.OwnerAccountID != accountID {
		return nil, domainerrors.ErrForbidden.WithDetails("location belongs to another account")
	}

	return location, nil
}
