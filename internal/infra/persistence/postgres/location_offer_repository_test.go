package postgres

import (
	"context"
	"testing"
	"time"

	"offerengine/internal/domain/entity"
	"offerengine/internal/domain/repository"
	"offerengine/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationRepository_FindActiveOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewLocationRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	active := seedLocation(t, db, owner, "cafe")
	inactive := seedLocation(t, db, owner, "deli")
	require.NoError(t, db.Model(&model.LocationModel{}).Where("id = ?", inactive.ID).Update("is_active", false).Error)

	found, err := repo.FindLocationByID(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, "cafe", found.Category)
	point, ok := found.Coordinates()
	require.True(t, ok)
	assert.InDelta(t, 37.7749, point.Lat(), 1e-9)

	_, err = repo.FindLocationByID(ctx, inactive.ID)
	assert.ErrorIs(t, err, repository.ErrLocationNotFound)

	byIDs, err := repo.FindLocationsByIDs(ctx, []uuid.UUID{active.ID, inactive.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, byIDs, 1)
	assert.Contains(t, byIDs, active.ID)

	owned, err := repo.FindLocationsByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, owned, 1)
}

func TestLocationRepository_CoordinatesAreOptional(t *testing.T) {
	db := newTestDB(t)
	repo := NewLocationRepository(db)

	location := &entity.Location{
		OwnerAccountID: uuid.New(),
		Name:           "No Pin",
		Address:        "2 Side St",
		Category:       "salon",
		IsActive:       true,
	}
	require.NoError(t, repo.CreateLocation(context.Background(), location))

	found, err := repo.FindLocationByID(context.Background(), location.ID)
	require.NoError(t, err)
	_, ok := found.Coordinates()
	assert.False(t, ok)
}

func TestOfferRepository_FindFlaggedActiveOffers(t *testing.T) {
	db := newTestDB(t)
	repo := NewOfferRepository(db)
	ctx := context.Background()

	ownerA := uuid.New()
	ownerB := uuid.New()
	storeA := seedLocation(t, db, ownerA, "cafe")
	storeB := seedLocation(t, db, ownerB, "deli")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := seedOffer(t, db, storeA, func(o *entity.Offer) { o.CreatedAt = base })
	second := seedOffer(t, db, storeB, func(o *entity.Offer) { o.CreatedAt = base.Add(time.Minute) })
	seedOffer(t, db, storeA, func(o *entity.Offer) { o.Active = false })

	offers, err := repo.FindFlaggedActiveOffersByOwners(ctx, []uuid.UUID{ownerA, ownerB})
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, first.ID, offers[0].ID)
	assert.Equal(t, second.ID, offers[1].ID)

	byIDs, err := repo.FindFlaggedActiveOffersByIDs(ctx, []uuid.UUID{second.ID})
	require.NoError(t, err)
	require.Len(t, byIDs, 1)
	assert.Equal(t, storeB.ID, byIDs[0].LocationID)

	empty, err := repo.FindFlaggedActiveOffersByOwners(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = repo.FindOfferByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrOfferNotFound)
}

func TestOfferRepository_ExpiryIsStored(t *testing.T) {
	db := newTestDB(t)
	store := seedLocation(t, db, uuid.New(), "cafe")
	expires := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	offer := seedOffer(t, db, store, func(o *entity.Offer) { o.ExpiresAt = &expires })

	found, err := NewOfferRepository(db).FindOfferByID(context.Background(), offer.ID)
	require.NoError(t, err)
	require.NotNil(t, found.ExpiresAt)
	assert.True(t, found.ExpiresAt.Equal(expires))
	assert.False(t, found.IsActiveAt(time.Now()))
}

func TestPartnershipRepository_ApprovedOnEitherSide(t *testing.T) {
	db := newTestDB(t)
	repo := NewPartnershipRepository(db)
	ctx := context.Background()

	me := uuid.New()
	approvedAsA := &entity.Partnership{AccountAID: me, AccountBID: uuid.New(), Status: entity.PartnershipApproved}
	approvedAsB := &entity.Partnership{AccountAID: uuid.New(), AccountBID: me, Status: entity.PartnershipApproved}
	pending := &entity.Partnership{AccountAID: me, AccountBID: uuid.New(), Status: entity.PartnershipPending}
	paused := &entity.Partnership{AccountAID: uuid.New(), AccountBID: me, Status: entity.PartnershipPaused}
	for _, p := range []*entity.Partnership{approvedAsA, approvedAsB, pending, paused} {
		require.NoError(t, repo.CreatePartnership(ctx, p))
	}

	partnerships, err := repo.FindApprovedPartnerships(ctx, me)
	require.NoError(t, err)
	require.Len(t, partnerships, 2)

	counterparties := map[uuid.UUID]bool{}
	for _, p := range partnerships {
		counterparties[p.Counterparty(me)] = true
	}
	assert.True(t, counterparties[approvedAsA.AccountBID])
	assert.True(t, counterparties[approvedAsB.AccountAID])
}

func TestPartnershipRepository_ApproveOnlyFromPending(t *testing.T) {
	db := newTestDB(t)
	repo := NewPartnershipRepository(db)
	ctx := context.Background()

	pending := &entity.Partnership{AccountAID: uuid.New(), AccountBID: uuid.New(), Status: entity.PartnershipPending}
	require.NoError(t, repo.CreatePartnership(ctx, pending))

	found, err := repo.FindPartnershipByID(ctx, pending.ID)
	require.NoError(t, err)
	require.NoError(t, found.Approve(found.AccountBID, time.Now().UTC()))

	updated, err := repo.UpdatePartnershipStatus(ctx, found, entity.PartnershipPending)
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = repo.UpdatePartnershipStatus(ctx, found, entity.PartnershipPending)
	require.NoError(t, err)
	assert.False(t, updated, "a second approval must not match the pending row")

	stored, err := repo.FindPartnershipByID(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PartnershipApproved, stored.Status)

	_, err = repo.FindPartnershipByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrPartnershipNotFound)
}

func TestPartnershipRepository_OpenOfferSubscriptions(t *testing.T) {
	db := newTestDB(t)
	repo := NewPartnershipRepository(db)
	ctx := context.Background()

	display := seedLocation(t, db, uuid.New(), "cafe")
	home := seedLocation(t, db, uuid.New(), "deli")
	offer := seedOffer(t, db, home, func(o *entity.Offer) { o.IsOpenOffer = true })
	other := seedOffer(t, db, home, func(o *entity.Offer) { o.IsOpenOffer = true })

	require.NoError(t, repo.CreateOpenOfferSubscription(ctx, &entity.OpenOfferSubscription{
		LocationID: display.ID, OfferID: offer.ID, Active: true,
	}))
	require.NoError(t, repo.CreateOpenOfferSubscription(ctx, &entity.OpenOfferSubscription{
		LocationID: display.ID, OfferID: other.ID, Active: false,
	}))

	err := repo.CreateOpenOfferSubscription(ctx, &entity.OpenOfferSubscription{
		LocationID: display.ID, OfferID: offer.ID, Active: true,
	})
	require.Error(t, err)

	subscriptions, err := repo.FindActiveOpenOfferSubscriptions(ctx, display.ID)
	require.NoError(t, err)
	require.Len(t, subscriptions, 1)
	assert.Equal(t, offer.ID, subscriptions[0].OfferID)
}
