package impl

import (
	"context"
	"testing"
	"time"

	"offerengine/config"
	"offerengine/internal/domain/entity"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/domain/repository"
	"offerengine/internal/domain/service"
	"offerengine/internal/infra/cache"
	"offerengine/internal/infra/metrics"
	mockRepo "offerengine/internal/mocks/repository"
	mockSvc "offerengine/internal/mocks/service"
	"offerengine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type impressionFixtures struct {
	service        usecase.ImpressionUsecase
	lc             *fxtest.Lifecycle
	deduper        service.SessionDeduper
	impressionRepo *mockRepo.MockImpressionRepository
	locationRepo   *mockRepo.MockLocationRepository
	offerRepo      *mockRepo.MockOfferRepository
	codeRepo       *mockRepo.MockRedemptionCodeRepository
	redemptionRepo *mockRepo.MockRedemptionRepository
	publisher      *mockSvc.MockEventPublisher
}

func createTestImpressionService(t *testing.T, deduper service.SessionDeduper, mutate func(*config.Config)) impressionFixtures {
	cfg := testEngineConfig()
	if mutate != nil {
		mutate(cfg)
	}
	if deduper == nil {
		deduper = cache.NewMemoryCache(time.Hour)
	}

	fx := impressionFixtures{
		lc:             fxtest.NewLifecycle(t),
		deduper:        deduper,
		impressionRepo: mockRepo.NewMockImpressionRepository(t),
		locationRepo:   mockRepo.NewMockLocationRepository(t),
		offerRepo:      mockRepo.NewMockOfferRepository(t),
		codeRepo:       mockRepo.NewMockRedemptionCodeRepository(t),
		redemptionRepo: mockRepo.NewMockRedemptionRepository(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewImpressionService(ImpressionParams{
		Lc:             fx.lc,
		Config:         cfg,
		Logger:         discardLogger(),
		ImpressionRepo: fx.impressionRepo,
		LocationRepo:   fx.locationRepo,
		OfferRepo:      fx.offerRepo,
		CodeRepo:       fx.codeRepo,
		RedemptionRepo: fx.redemptionRepo,
		Deduper:        deduper,
		Publisher:      fx.publisher,
		Metrics:        metrics.NewRecorder(nil),
	})

	return fx
}

func newViewedOffer(ownerAccountID uuid.UUID) *entity.Offer {
	return &entity.Offer{ID: uuid.New(), OwnerAccountID: ownerAccountID, LocationID: uuid.New(), Active: true}
}

func newDisplayLocation(ownerAccountID uuid.UUID) *entity.Location {
	return &entity.Location{ID: uuid.New(), OwnerAccountID: ownerAccountID, IsActive: true}
}

func newImpressionInput(offer *entity.Offer, display *entity.Location, session string) *usecase.RecordImpressionInput {
	return &usecase.RecordImpressionInput{
		OfferID:             offer.ID,
		OfferHomeLocationID: offer.LocationID,
		DisplayLocationID:   display.ID,
		Channel:             entity.ChannelCarousel,
		SessionID:           session,
	}
}

// stubViewed makes the offer and the display location resolvable.
func (fx impressionFixtures) stubViewed(offer *entity.Offer, display *entity.Location) {
	fx.offerRepo.EXPECT().FindOfferByID(mock.Anything, offer.ID).Return(offer, nil).Maybe()
	fx.locationRepo.EXPECT().FindLocationByID(mock.Anything, display.ID).Return(display, nil).Maybe()
}

func TestImpressionService_RecordsOncePerSession(t *testing.T) {
	fx := createTestImpressionService(t, nil, nil)
	ctx := context.Background()

	joe, mike := uuid.New(), uuid.New()
	offer := newViewedOffer(mike)
	display := newDisplayLocation(joe)
	fx.stubViewed(offer, display)
	input := newImpressionInput(offer, display, "session-1")

	fx.impressionRepo.EXPECT().
		CreateImpression(mock.Anything, mock.MatchedBy(func(i *entity.Impression) bool {
			return i.OfferID == offer.ID && i.OfferHomeLocationID == offer.LocationID &&
				i.DisplayLocationID == display.ID && i.Channel == entity.ChannelCarousel
		})).
		Return(nil).Once()
	fx.publisher.EXPECT().
		PublishScoreEvent(mock.Anything, mock.MatchedBy(func(e *entity.ScoreEvent) bool {
			return e.Kind == entity.ScoreImpression && e.AccountID == joe && e.Points == 1
		})).
		Return(nil).Once()

	fx.lc.RequireStart()

	status, err := fx.service.RecordImpression(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.ImpressionAccepted, status)

	status, err = fx.service.RecordImpression(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.ImpressionDuplicate, status)

	fx.lc.RequireStop()
}

func TestImpressionService_OtherSessionCountsAgain(t *testing.T) {
	fx := createTestImpressionService(t, nil, nil)
	ctx := context.Background()

	offer := newViewedOffer(uuid.New())
	display := newDisplayLocation(uuid.New())
	fx.stubViewed(offer, display)
	input := newImpressionInput(offer, display, "session-1")

	fx.impressionRepo.EXPECT().CreateImpression(mock.Anything, mock.Anything).Return(nil).Times(2)
	fx.publisher.EXPECT().PublishScoreEvent(mock.Anything, mock.Anything).Return(nil).Times(2)

	fx.lc.RequireStart()

	_, err := fx.service.RecordImpression(ctx, input)
	require.NoError(t, err)

	other := *input
	other.SessionID = "session-2"
	status, err := fx.service.RecordImpression(ctx, &other)
	require.NoError(t, err)
	assert.Equal(t, usecase.ImpressionAccepted, status)

	fx.lc.RequireStop()
}

func TestImpressionService_OwnDisplayIsNotScored(t *testing.T) {
	fx := createTestImpressionService(t, nil, nil)

	joe := uuid.New()
	offer := newViewedOffer(joe)
	display := newDisplayLocation(joe)
	fx.stubViewed(offer, display)

	fx.impressionRepo.EXPECT().CreateImpression(mock.Anything, mock.Anything).Return(nil).Once()

	fx.lc.RequireStart()

	status, err := fx.service.RecordImpression(context.Background(), newImpressionInput(offer, display, "session-1"))
	require.NoError(t, err)
	assert.Equal(t, usecase.ImpressionAccepted, status)

	fx.lc.RequireStop()
	fx.publisher.AssertNotCalled(t, "PublishScoreEvent", mock.Anything, mock.Anything)
}

func TestImpressionService_FailedWriteReleasesKey(t *testing.T) {
	fx := createTestImpressionService(t, nil, nil)
	ctx := context.Background()

	offer := newViewedOffer(uuid.New())
	display := newDisplayLocation(uuid.New())
	fx.stubViewed(offer, display)
	input := newImpressionInput(offer, display, "session-1")

	fx.impressionRepo.EXPECT().
		CreateImpression(mock.Anything, mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to create impression")).
		Once()

	fx.lc.RequireStart()

	status, err := fx.service.RecordImpression(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.ImpressionAccepted, status)

	fx.lc.RequireStop()

	key := entity.ImpressionKey(input.OfferID, input.DisplayLocationID)
	claimed, err := fx.deduper.Claim(ctx, input.SessionID, key)
	require.NoError(t, err)
	assert.True(t, claimed, "a failed write must allow the view to be recorded again")
}

func TestImpressionService_FullQueueDropsAndReleases(t *testing.T) {
	fx := createTestImpressionService(t, nil, func(cfg *config.Config) {
		cfg.Engine.ImpressionQueueSize = 1
	})
	ctx := context.Background()

	offer := newViewedOffer(uuid.New())
	firstDisplay, secondDisplay := newDisplayLocation(uuid.New()), newDisplayLocation(uuid.New())
	fx.stubViewed(offer, firstDisplay)
	fx.stubViewed(offer, secondDisplay)

	// Workers are not started, so the first job occupies the only slot.
	first := newImpressionInput(offer, firstDisplay, "session-1")
	second := newImpressionInput(offer, secondDisplay, "session-1")

	status, err := fx.service.RecordImpression(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, usecase.ImpressionAccepted, status)

	status, err = fx.service.RecordImpression(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, usecase.ImpressionAccepted, status)

	claimed, err := fx.deduper.Claim(ctx, "session-1", entity.ImpressionKey(second.OfferID, second.DisplayLocationID))
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = fx.deduper.Claim(ctx, "session-1", entity.ImpressionKey(first.OfferID, first.DisplayLocationID))
	require.NoError(t, err)
	assert.False(t, claimed)
}

func TestImpressionService_RejectsInvalidInput(t *testing.T) {
	fx := createTestImpressionService(t, nil, nil)

	input := newImpressionInput(newViewedOffer(uuid.New()), newDisplayLocation(uuid.New()), "session-1")
	input.Channel = "billboard"

	_, err := fx.service.RecordImpression(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.RecordImpression(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestImpressionService_RejectsUnknownTargets(t *testing.T) {
	offer := newViewedOffer(uuid.New())
	display := newDisplayLocation(uuid.New())

	tests := []struct {
		name    string
		setup   func(fx impressionFixtures)
		input   func() *usecase.RecordImpressionInput
		wantErr error
	}{
		{
			name: "unknown offer",
			setup: func(fx impressionFixtures) {
				fx.offerRepo.EXPECT().FindOfferByID(mock.Anything, offer.ID).Return(nil, repository.ErrOfferNotFound)
			},
			input:   func() *usecase.RecordImpressionInput { return newImpressionInput(offer, display, "session-1") },
			wantErr: domainerrors.ErrOfferNotFound,
		},
		{
			name: "offer under another home location",
			setup: func(fx impressionFixtures) {
				fx.offerRepo.EXPECT().FindOfferByID(mock.Anything, offer.ID).Return(offer, nil)
			},
			input: func() *usecase.RecordImpressionInput {
				input := newImpressionInput(offer, display, "session-1")
				input.OfferHomeLocationID = uuid.New()

				return input
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "unknown display location",
			setup: func(fx impressionFixtures) {
				fx.offerRepo.EXPECT().FindOfferByID(mock.Anything, offer.ID).Return(offer, nil)
				fx.locationRepo.EXPECT().FindLocationByID(mock.Anything, display.ID).Return(nil, repository.ErrLocationNotFound)
			},
			input:   func() *usecase.RecordImpressionInput { return newImpressionInput(offer, display, "session-1") },
			wantErr: domainerrors.ErrLocationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deduper := mockSvc.NewMockSessionDeduper(t)
			fx := createTestImpressionService(t, deduper, nil)
			tt.setup(fx)

			status, err := fx.service.RecordImpression(context.Background(), tt.input())

			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, status)
			deduper.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything, mock.Anything)
			fx.publisher.AssertNotCalled(t, "PublishScoreEvent", mock.Anything, mock.Anything)
		})
	}
}

func TestImpressionService_StoreFailuresAreSwallowed(t *testing.T) {
	offer := newViewedOffer(uuid.New())
	display := newDisplayLocation(uuid.New())

	t.Run("dedup store down", func(t *testing.T) {
		deduper := mockSvc.NewMockSessionDeduper(t)
		deduper.EXPECT().Claim(mock.Anything, "session-1", mock.Anything).Return(false, errors.New("redis down"))

		fx := createTestImpressionService(t, deduper, nil)
		fx.stubViewed(offer, display)

		status, err := fx.service.RecordImpression(context.Background(), newImpressionInput(offer, display, "session-1"))
		require.NoError(t, err)
		assert.Equal(t, usecase.ImpressionAccepted, status)
	})

	t.Run("offer lookup fails", func(t *testing.T) {
		deduper := mockSvc.NewMockSessionDeduper(t)
		fx := createTestImpressionService(t, deduper, nil)
		fx.offerRepo.EXPECT().FindOfferByID(mock.Anything, offer.ID).
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to find offer"))

		status, err := fx.service.RecordImpression(context.Background(), newImpressionInput(offer, display, "session-1"))
		require.NoError(t, err)
		assert.Equal(t, usecase.ImpressionAccepted, status)
	})
}

func TestImpressionService_GetOfferStats(t *testing.T) {
	fx := createTestImpressionService(t, nil, nil)
	ctx := context.Background()
	offerID := uuid.New()

	fx.offerRepo.EXPECT().FindOfferByID(mock.Anything, offerID).Return(&entity.Offer{ID: offerID}, nil)
	fx.impressionRepo.EXPECT().CountImpressionsByOffer(mock.Anything, offerID).Return(int64(12), int64(3), nil)
	fx.codeRepo.EXPECT().CountCodesByOffer(mock.Anything, offerID).Return(int64(4), nil)
	fx.redemptionRepo.EXPECT().CountRedemptionsByOffer(mock.Anything, offerID).Return(int64(2), nil)

	stats, err := fx.service.GetOfferStats(ctx, offerID)
	require.NoError(t, err)
	assert.Equal(t, &entity.OfferStats{
		OfferID:         offerID,
		Impressions:     12,
		Redemptions:     2,
		CodesIssued:     4,
		UniqueLocations: 3,
	}, stats)

	missing := uuid.New()
	fx.offerRepo.EXPECT().FindOfferByID(mock.Anything, missing).Return(nil, repository.ErrOfferNotFound)

	_, err = fx.service.GetOfferStats(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
}
