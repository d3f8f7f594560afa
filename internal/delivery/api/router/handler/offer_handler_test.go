package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"offerengine/internal/domain/entity"
	domainerrors "offerengine/internal/domain/errors"
	mockUsecase "offerengine/internal/mocks/usecase"
	"offerengine/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type offerHandlerFixtures struct {
	handler     *OfferHandler
	eligibility *mockUsecase.MockEligibilityUsecase
	planner     *mockUsecase.MockRotationPlanner
}

func createTestOfferHandler(t *testing.T) offerHandlerFixtures {
	eligibility := mockUsecase.NewMockEligibilityUsecase(t)
	planner := mockUsecase.NewMockRotationPlanner(t)

	return offerHandlerFixtures{
		handler: NewOfferHandler(OfferHandlerParams{
			EligibilityUC: eligibility,
			Planner:       planner,
			Logger:        discardLogger(),
		}),
		eligibility: eligibility,
		planner:     planner,
	}
}

func TestOfferHandler_ListOffers(t *testing.T) {
	fx := createTestOfferHandler(t)
	locationID := uuid.New()
	owned := &entity.EligibleOffer{Offer: &entity.Offer{ID: uuid.New()}, Class: entity.OfferClassOwner}

	fx.eligibility.EXPECT().
		ResolveEligibleOffers(mock.Anything, locationID).
		Return(&usecase.EligibleOffers{LocationID: locationID, Owner: []*entity.EligibleOffer{owned}}, nil)

	c, rec := newContext(http.MethodGet, "/api/v1/locations/"+locationID.String()+"/offers", "", nil)
	c.SetParamNames("id")
	c.SetParamValues(locationID.String())

	require.NoError(t, fx.handler.ListOffers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body OffersResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
	assert.False(t, body.Retryable)
	require.Len(t, body.Owner, 1)
	assert.Equal(t, owned.Offer.ID, body.Owner[0].Offer.ID)
}

func TestOfferHandler_ListOffersDegradesOnStoreFailure(t *testing.T) {
	fx := createTestOfferHandler(t)
	locationID := uuid.New()

	fx.eligibility.EXPECT().
		ResolveEligibleOffers(mock.Anything, locationID).
		Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "failed to load offers"))

	c, rec := newContext(http.MethodGet, "/", "", nil)
	c.SetParamNames("id")
	c.SetParamValues(locationID.String())

	require.NoError(t, fx.handler.ListOffers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body OffersResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
	assert.True(t, body.Retryable)
	assert.Empty(t, body.Owner)
	assert.Empty(t, body.Partner)
	assert.Empty(t, body.Open)
}

func TestOfferHandler_ListOffersUnknownLocation(t *testing.T) {
	fx := createTestOfferHandler(t)
	locationID := uuid.New()

	fx.eligibility.EXPECT().
		ResolveEligibleOffers(mock.Anything, locationID).
		Return(nil, domainerrors.ErrLocationNotFound)

	c, rec := newContext(http.MethodGet, "/", "", nil)
	c.SetParamNames("id")
	c.SetParamValues(locationID.String())

	require.NoError(t, fx.handler.ListOffers(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "LOCATION_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestOfferHandler_ListOffersInvalidID(t *testing.T) {
	fx := createTestOfferHandler(t)

	c, rec := newContext(http.MethodGet, "/", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, fx.handler.ListOffers(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOfferHandler_PlanRotation(t *testing.T) {
	fx := createTestOfferHandler(t)
	locationID := uuid.New()
	partner := &entity.EligibleOffer{Offer: &entity.Offer{ID: uuid.New()}, Class: entity.OfferClassPartner}
	resolved := &usecase.EligibleOffers{LocationID: locationID, Partner: []*entity.EligibleOffer{partner}}

	fx.eligibility.EXPECT().ResolveEligibleOffers(mock.Anything, locationID).Return(resolved, nil)
	fx.planner.EXPECT().
		Plan(resolved.Owner, resolved.Partner, resolved.Open, mock.MatchedBy(func(opts usecase.PlanOptions) bool {
			return opts.Surface == usecase.SurfacePartner && opts.Seed != nil && *opts.Seed == 42
		})).
		Return([]*entity.EligibleOffer{partner})

	c, rec := newContext(http.MethodGet, "/?surface=partner&seed=42", "", nil)
	c.SetParamNames("id")
	c.SetParamValues(locationID.String())

	require.NoError(t, fx.handler.PlanRotation(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body RotationResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
	assert.Equal(t, usecase.SurfacePartner, body.Surface)
	require.Len(t, body.Sequence, 1)
	assert.Equal(t, partner.Offer.ID, body.Sequence[0].Offer.ID)
}

func TestOfferHandler_PlanRotationRejectsUnknownSurface(t *testing.T) {
	fx := createTestOfferHandler(t)

	c, rec := newContext(http.MethodGet, "/?surface=billboard", "", nil)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	require.NoError(t, fx.handler.PlanRotation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_SURFACE", decodeEnvelope(t, rec).Error.Code)
}
