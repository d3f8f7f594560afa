package impl

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"offerengine/config"
	"offerengine/internal/domain/entity"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/domain/geo"
	"offerengine/internal/domain/repository"
	"offerengine/internal/domain/service"
	"offerengine/internal/infra/cache"
	"offerengine/internal/infra/metrics"
	mockRepo "offerengine/internal/mocks/repository"
	mockSvc "offerengine/internal/mocks/service"
	"offerengine/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const milesPerLatDegree = geo.EarthRadiusMiles * math.Pi / 180

var manhattan = orb.Point{-74.0060, 40.7128}

type eligibilityFixtures struct {
	service         usecase.EligibilityUsecase
	locationRepo    *mockRepo.MockLocationRepository
	offerRepo       *mockRepo.MockOfferRepository
	partnershipRepo *mockRepo.MockPartnershipRepository
	geocoder        *mockSvc.MockGeocoder
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEngineConfig() *config.Config {
	return &config.Config{
		Engine: config.EngineConfig{
			OpenOfferRadiusMiles: 3,
			EligibilityCacheTTL:  time.Minute,
			GeocodeCacheTTL:      time.Hour,
			GeocodeFailureTTL:    time.Minute,
			OperationTimeout:     time.Second,
			CodeLength:           10,
			ImpressionSessionTTL: time.Hour,
			ImpressionWorkers:    1,
			ImpressionQueueSize:  16,
			MaxGeocodeWorkers:    2,
		},
	}
}

func createTestEligibilityService(t *testing.T, cacheStore service.Cache) eligibilityFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	partnershipRepo := mockRepo.NewMockPartnershipRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)

	if cacheStore == nil {
		cacheStore = cache.NewMemoryCache(time.Hour)
	}

	svc := NewEligibilityService(EligibilityParams{
		Config:          testEngineConfig(),
		Logger:          discardLogger(),
		LocationRepo:    locationRepo,
		OfferRepo:       offerRepo,
		PartnershipRepo: partnershipRepo,
		Geocoder:        geocoder,
		Cache:           cacheStore,
		Metrics:         metrics.NewRecorder(nil),
	})

	return eligibilityFixtures{
		service:         svc,
		locationRepo:    locationRepo,
		offerRepo:       offerRepo,
		partnershipRepo: partnershipRepo,
		geocoder:        geocoder,
	}
}

// locationAt places a location milesNorth of the reference point; nil coordinates when milesNorth < 0.
func locationAt(owner uuid.UUID, category string, milesNorth float64) *entity.Location {
	loc := &entity.Location{
		ID:             uuid.New(),
		OwnerAccountID: owner,
		Name:           category + " shop",
		Address:        uuid.NewString() + " Main St",
		Category:       category,
		IsActive:       true,
	}
	if milesNorth >= 0 {
		lat := manhattan.Lat() + milesNorth/milesPerLatDegree
		lng := manhattan.Lon()
		loc.Latitude = &lat
		loc.Longitude = &lng
	}

	return loc
}

func offerAt(loc *entity.Location, mutate func(*entity.Offer)) *entity.Offer {
	offer := &entity.Offer{
		ID:             uuid.New(),
		OwnerAccountID: loc.OwnerAccountID,
		LocationID:     loc.ID,
		Title:          "10% off",
		Active:         true,
	}
	if mutate != nil {
		mutate(offer)
	}

	return offer
}

func locationMap(locations ...*entity.Location) map[uuid.UUID]*entity.Location {
	out := make(map[uuid.UUID]*entity.Location, len(locations))
	for _, loc := range locations {
		out[loc.ID] = loc
	}

	return out
}

func offerIDs(offers []*entity.EligibleOffer) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(offers))
	for _, offer := range offers {
		ids = append(ids, offer.Offer.ID)
	}

	return ids
}

func TestEligibilityService_NoOwnOfferYieldsEmptySet(t *testing.T) {
	fx := createTestEligibilityService(t, nil)
	ctx := context.Background()

	joe := uuid.New()
	cafe := locationAt(joe, "cafe", 0)

	fx.locationRepo.EXPECT().FindLocationByID(mock.Anything, cafe.ID).Return(cafe, nil)
	expired := time.Now().Add(-time.Hour)
	fx.offerRepo.EXPECT().
		FindFlaggedActiveOffersByOwners(mock.Anything, []uuid.UUID{joe}).
		Return([]*entity.Offer{offerAt(cafe, func(o *entity.Offer) { o.ExpiresAt = &expired })}, nil)

	result, err := fx.service.ResolveEligibleOffers(ctx, cafe.ID)
	require.NoError(t, err)
	assert.True(t, result.Empty())
	assert.Empty(t, result.Partner)
	assert.Empty(t, result.Open)
}

func TestEligibilityService_UnknownLocation(t *testing.T) {
	fx := createTestEligibilityService(t, nil)
	id := uuid.New()

	fx.locationRepo.EXPECT().FindLocationByID(mock.Anything, id).Return(nil, repository.ErrLocationNotFound)

	_, err := fx.service.ResolveEligibleOffers(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestEligibilityService_ResolvesPartnerAndOpenOffers(t *testing.T) {
	fx := createTestEligibilityService(t, nil)
	ctx := context.Background()

	joe, sally, mike, ann, bob := uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()

	joeCafe := locationAt(joe, "cafe", 0)
	sallySalon := locationAt(sally, "salon", 1)
	mikeDeli := locationAt(mike, "deli", 10)
	annBakery := locationAt(ann, "bakery", -1)
	bobCafe := locationAt(bob, "Cafe", 0.5)

	joeOffer := offerAt(joeCafe, nil)
	sallyShared := offerAt(sallySalon, func(o *entity.Offer) { o.AvailableForPartnership = true })
	sallyPrivate := offerAt(sallySalon, nil)
	mikeOpen := offerAt(mikeDeli, func(o *entity.Offer) { o.IsOpenOffer = true })
	annOpen := offerAt(annBakery, func(o *entity.Offer) { o.IsOpenOffer = true })
	bobOpen := offerAt(bobCafe, func(o *entity.Offer) { o.IsOpenOffer = true })

	fx.locationRepo.EXPECT().FindLocationByID(mock.Anything, joeCafe.ID).Return(joeCafe, nil)
	fx.offerRepo.EXPECT().
		FindFlaggedActiveOffersByOwners(mock.Anything, []uuid.UUID{joe}).
		Return([]*entity.Offer{joeOffer}, nil)
	fx.partnershipRepo.EXPECT().
		FindApprovedPartnerships(mock.Anything, joe).
		Return([]*entity.Partnership{{ID: uuid.New(), AccountAID: sally, AccountBID: joe, Status: entity.PartnershipApproved}}, nil)
	fx.offerRepo.EXPECT().
		FindFlaggedActiveOffersByOwners(mock.Anything, []uuid.UUID{sally}).
		Return([]*entity.Offer{sallyShared, sallyPrivate}, nil)
	fx.partnershipRepo.EXPECT().
		FindActiveOpenOfferSubscriptions(mock.Anything, joeCafe.ID).
		Return([]*entity.OpenOfferSubscription{
			{OfferID: mikeOpen.ID, LocationID: joeCafe.ID, Active: true},
			{OfferID: annOpen.ID, LocationID: joeCafe.ID, Active: true},
			{OfferID: bobOpen.ID, LocationID: joeCafe.ID, Active: true},
		}, nil)
	fx.offerRepo.EXPECT().
		FindFlaggedActiveOffersByIDs(mock.Anything, []uuid.UUID{mikeOpen.ID, annOpen.ID, bobOpen.ID}).
		Return([]*entity.Offer{mikeOpen, annOpen, bobOpen}, nil)
	fx.locationRepo.EXPECT().
		FindLocationsByIDs(mock.Anything, mock.Anything).
		Return(locationMap(joeCafe, sallySalon, mikeDeli, annBakery, bobCafe), nil)
	fx.geocoder.EXPECT().
		Geocode(mock.Anything, annBakery.Address).
		Return(orb.Point{manhattan.Lon(), manhattan.Lat() + 2/milesPerLatDegree}, nil)

	result, err := fx.service.ResolveEligibleOffers(ctx, joeCafe.ID)
	require.NoError(t, err)
	assert.False(t, result.Cached)

	assert.Equal(t, []uuid.UUID{joeOffer.ID}, offerIDs(result.Owner))
	assert.Equal(t, []uuid.UUID{sallyShared.ID}, offerIDs(result.Partner))
	assert.Equal(t, entity.OfferClassPartner, result.Partner[0].Class)

	require.Len(t, result.Open, 1)
	assert.Equal(t, annOpen.ID, result.Open[0].Offer.ID)
	require.NotNil(t, result.Open[0].DistanceMiles)
	assert.InDelta(t, 2.0, *result.Open[0].DistanceMiles, 0.05)
}

func TestEligibilityService_OpenOffersSortedByDistance(t *testing.T) {
	fx := createTestEligibilityService(t, nil)

	joe := uuid.New()
	joeCafe := locationAt(joe, "cafe", 0)
	far := locationAt(uuid.New(), "florist", 2.5)
	near := locationAt(uuid.New(), "bakery", 0.8)
	edge := locationAt(uuid.New(), "books", 2.99)

	farOffer := offerAt(far, func(o *entity.Offer) { o.IsOpenOffer = true })
	nearOffer := offerAt(near, func(o *entity.Offer) { o.IsOpenOffer = true })
	edgeOffer := offerAt(edge, func(o *entity.Offer) { o.IsOpenOffer = true })

	fx.locationRepo.EXPECT().FindLocationByID(mock.Anything, joeCafe.ID).Return(joeCafe, nil)
	fx.offerRepo.EXPECT().
		FindFlaggedActiveOffersByOwners(mock.Anything, []uuid.UUID{joe}).
		Return([]*entity.Offer{offerAt(joeCafe, nil)}, nil)
	fx.partnershipRepo.EXPECT().FindApprovedPartnerships(mock.Anything, joe).Return(nil, nil)
	fx.partnershipRepo.EXPECT().
		FindActiveOpenOfferSubscriptions(mock.Anything, joeCafe.ID).
		Return([]*entity.OpenOfferSubscription{{OfferID: farOffer.ID}, {OfferID: nearOffer.ID}, {OfferID: edgeOffer.ID}}, nil)
	fx.offerRepo.EXPECT().
		FindFlaggedActiveOffersByIDs(mock.Anything, mock.Anything).
		Return([]*entity.Offer{farOffer, nearOffer, edgeOffer}, nil)
	fx.locationRepo.EXPECT().
		FindLocationsByIDs(mock.Anything, mock.Anything).
		Return(locationMap(joeCafe, far, near, edge), nil)

	result, err := fx.service.ResolveEligibleOffers(context.Background(), joeCafe.ID)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{nearOffer.ID, farOffer.ID, edgeOffer.ID}, offerIDs(result.Open))
}

func TestEligibilityService_OpenOfferOnlySkipsPartners(t *testing.T) {
	fx := createTestEligibilityService(t, nil)

	joe := uuid.New()
	joeCafe := locationAt(joe, "cafe", 0)
	joeCafe.OpenOfferOnly = true

	fx.locationRepo.EXPECT().FindLocationByID(mock.Anything, joeCafe.ID).Return(joeCafe, nil)
	fx.offerRepo.EXPECT().
		FindFlaggedActiveOffersByOwners(mock.Anything, []uuid.UUID{joe}).
		Return([]*entity.Offer{offerAt(joeCafe, nil)}, nil)
	fx.partnershipRepo.EXPECT().FindActiveOpenOfferSubscriptions(mock.Anything, joeCafe.ID).Return(nil, nil)
	fx.locationRepo.EXPECT().FindLocationsByIDs(mock.Anything, mock.Anything).Return(locationMap(joeCafe), nil)

	result, err := fx.service.ResolveEligibleOffers(context.Background(), joeCafe.ID)
	require.NoError(t, err)
	assert.Empty(t, result.Partner)
	fx.partnershipRepo.AssertNotCalled(t, "FindApprovedPartnerships", mock.Anything, mock.Anything)
}

func TestEligibilityService_SecondCallServedFromCache(t *testing.T) {
	fx := createTestEligibilityService(t, nil)

	joe := uuid.New()
	joeCafe := locationAt(joe, "cafe", 0)
	joeOffer := offerAt(joeCafe, nil)

	fx.locationRepo.EXPECT().FindLocationByID(mock.Anything, joeCafe.ID).Return(joeCafe, nil).Once()
	fx.offerRepo.EXPECT().
		FindFlaggedActiveOffersByOwners(mock.Anything, []uuid.UUID{joe}).
		Return([]*entity.Offer{joeOffer}, nil).Once()
	fx.partnershipRepo.EXPECT().FindApprovedPartnerships(mock.Anything, joe).Return(nil, nil).Once()
	fx.partnershipRepo.EXPECT().FindActiveOpenOfferSubscriptions(mock.Anything, joeCafe.ID).Return(nil, nil).Once()
	fx.locationRepo.EXPECT().FindLocationsByIDs(mock.Anything, mock.Anything).Return(locationMap(joeCafe), nil).Once()

	first, err := fx.service.ResolveEligibleOffers(context.Background(), joeCafe.ID)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := fx.service.ResolveEligibleOffers(context.Background(), joeCafe.ID)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, offerIDs(first.Owner), offerIDs(second.Owner))
}

func TestEligibilityService_CheckEligibility(t *testing.T) {
	joe, sally := uuid.New(), uuid.New()
	joeCafe := locationAt(joe, "cafe", 0)
	sallySalon := locationAt(sally, "salon", 1)
	joeOffer := offerAt(joeCafe, nil)
	sallyShared := offerAt(sallySalon, func(o *entity.Offer) { o.AvailableForPartnership = true })
	strangerOffer := offerAt(locationAt(uuid.New(), "gym", 1), nil)

	expectResolution := func(fx eligibilityFixtures) {
		fx.locationRepo.EXPECT().FindLocationByID(mock.Anything, joeCafe.ID).Return(joeCafe, nil)
		fx.offerRepo.EXPECT().
			FindFlaggedActiveOffersByOwners(mock.Anything, []uuid.UUID{joe}).
			Return([]*entity.Offer{joeOffer}, nil)
		fx.partnershipRepo.EXPECT().
			FindApprovedPartnerships(mock.Anything, joe).
			Return([]*entity.Partnership{{AccountAID: joe, AccountBID: sally, Status: entity.PartnershipApproved}}, nil)
		fx.offerRepo.EXPECT().
			FindFlaggedActiveOffersByOwners(mock.Anything, []uuid.UUID{sally}).
			Return([]*entity.Offer{sallyShared}, nil)
		fx.partnershipRepo.EXPECT().FindActiveOpenOfferSubscriptions(mock.Anything, joeCafe.ID).Return(nil, nil)
		fx.locationRepo.EXPECT().
			FindLocationsByIDs(mock.Anything, mock.Anything).
			Return(locationMap(joeCafe, sallySalon), nil)
	}

	t.Run("eligible partner offer", func(t *testing.T) {
		fx := createTestEligibilityService(t, nil)
		expectResolution(fx)

		eligible, err := fx.service.CheckEligibility(context.Background(), sallyShared.ID, joeCafe.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OfferClassPartner, eligible.Class)
		assert.Equal(t, sallySalon.ID, eligible.HomeLocation.ID)
	})

	t.Run("known but not eligible", func(t *testing.T) {
		fx := createTestEligibilityService(t, nil)
		expectResolution(fx)
		fx.offerRepo.EXPECT().FindOfferByID(mock.Anything, strangerOffer.ID).Return(strangerOffer, nil)

		_, err := fx.service.CheckEligibility(context.Background(), strangerOffer.ID, joeCafe.ID)
		assert.ErrorIs(t, err, domainerrors.ErrOfferNotEligible)
	})

	t.Run("unknown offer", func(t *testing.T) {
		fx := createTestEligibilityService(t, nil)
		expectResolution(fx)
		missing := uuid.New()
		fx.offerRepo.EXPECT().FindOfferByID(mock.Anything, missing).Return(nil, repository.ErrOfferNotFound)

		_, err := fx.service.CheckEligibility(context.Background(), missing, joeCafe.ID)
		assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
	})
}

func TestEligibilityService_CacheFailureFallsThrough(t *testing.T) {
	brokenCache := mockSvc.NewMockCache(t)
	brokenCache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrTransientStore)
	brokenCache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, time.Minute).Return(domainerrors.ErrTransientStore)

	fx := createTestEligibilityService(t, brokenCache)
	joe := uuid.New()
	joeCafe := locationAt(joe, "cafe", 0)

	fx.locationRepo.EXPECT().FindLocationByID(mock.Anything, joeCafe.ID).Return(joeCafe, nil)
	fx.offerRepo.EXPECT().
		FindFlaggedActiveOffersByOwners(mock.Anything, []uuid.UUID{joe}).
		Return([]*entity.Offer{offerAt(joeCafe, nil)}, nil)
	fx.partnershipRepo.EXPECT().FindApprovedPartnerships(mock.Anything, joe).Return(nil, nil)
	fx.partnershipRepo.EXPECT().FindActiveOpenOfferSubscriptions(mock.Anything, joeCafe.ID).Return(nil, nil)
	fx.locationRepo.EXPECT().FindLocationsByIDs(mock.Anything, mock.Anything).Return(locationMap(joeCafe), nil)

	result, err := fx.service.ResolveEligibleOffers(context.Background(), joeCafe.ID)
	require.NoError(t, err)
	assert.Len(t, result.Owner, 1)
}
