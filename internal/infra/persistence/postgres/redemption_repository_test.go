package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"offerengine/internal/domain/entity"
	"offerengine/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedemptionCodeRepository_OneActiveCodePerPair(t *testing.T) {
	db := newTestDB(t)
	repo := NewRedemptionCodeRepository(db)
	ctx := context.Background()

	offerID, displayID := uuid.New(), uuid.New()

	inserted, err := repo.InsertCodeIfAbsent(ctx, newActiveCode("AAAA1111", offerID, displayID))
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.InsertCodeIfAbsent(ctx, newActiveCode("BBBB2222", offerID, displayID))
	require.NoError(t, err)
	assert.False(t, inserted, "second active code for the same pair must be rejected")

	active, err := repo.FindActiveCode(ctx, offerID, displayID)
	require.NoError(t, err)
	assert.Equal(t, "AAAA1111", active.Code)

	// Another display location gets its own code.
	inserted, err = repo.InsertCodeIfAbsent(ctx, newActiveCode("CCCC3333", offerID, uuid.New()))
	require.NoError(t, err)
	assert.True(t, inserted)

	count, err := repo.CountCodesByOffer(ctx, offerID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRedemptionCodeRepository_CodeValueIsUnique(t *testing.T) {
	db := newTestDB(t)
	repo := NewRedemptionCodeRepository(db)
	ctx := context.Background()

	inserted, err := repo.InsertCodeIfAbsent(ctx, newActiveCode("DUPL1CAT", uuid.New(), uuid.New()))
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = repo.InsertCodeIfAbsent(ctx, newActiveCode("DUPL1CAT", uuid.New(), uuid.New()))
	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestRedemptionCodeRepository_MarkRedeemedOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewRedemptionCodeRepository(db)
	ctx := context.Background()

	offerID, displayID := uuid.New(), uuid.New()
	code := newActiveCode("REDEEM01", offerID, displayID)
	_, err := repo.InsertCodeIfAbsent(ctx, code)
	require.NoError(t, err)

	assert.Error(t, repo.MarkRedeemed(ctx, code), "an active code must go through Redeem first")

	redeemed := *code
	require.NoError(t, redeemed.Redeem(time.Now().UTC()))
	require.NoError(t, repo.MarkRedeemed(ctx, &redeemed))
	assert.ErrorIs(t, repo.MarkRedeemed(ctx, &redeemed), repository.ErrCodeAlreadyRedeemed)

	stored, err := repo.FindCodeByValue(ctx, "REDEEM01")
	require.NoError(t, err)
	assert.Equal(t, entity.CodeStatusRedeemed, stored.Status)
	assert.NotNil(t, stored.RedeemedAt)

	_, err = repo.FindActiveCode(ctx, offerID, displayID)
	assert.ErrorIs(t, err, repository.ErrRedemptionCodeNotFound)

	// The pair is free again once its code is redeemed.
	inserted, err := repo.InsertCodeIfAbsent(ctx, newActiveCode("REDEEM02", offerID, displayID))
	require.NoError(t, err)
	assert.True(t, inserted)
}

func TestTransactionManager_ConcurrentRedemptionSucceedsOnce(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	code := newActiveCode("RACE0001", uuid.New(), uuid.New())
	_, err := NewRedemptionCodeRepository(db).InsertCodeIfAbsent(ctx, code)
	require.NoError(t, err)

	const attempts = 8
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
				now := time.Now().UTC()
				attempt := *code
				if err := attempt.Redeem(now); err != nil {
					return err
				}
				if err := factory.NewRedemptionCodeRepository().MarkRedeemed(ctx, &attempt); err != nil {
					return err
				}

				return factory.NewRedemptionRepository().CreateRedemption(ctx, &entity.Redemption{
					CodeID:              code.ID,
					Code:                code.Code,
					OfferID:             code.OfferID,
					OfferOwnerAccountID: uuid.New(),
					RedeemingLocationID: uuid.New(),
					RedeemingAccountID:  uuid.New(),
					DisplayLocationID:   code.DisplayLocationID,
					ReferrerAccountID:   uuid.New(),
					Inbound:             true,
					RedeemedAt:          now,
				})
			})
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, repository.ErrCodeAlreadyRedeemed):
			rejected++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)

	count, err := NewRedemptionRepository(db).CountRedemptionsByOffer(ctx, code.OfferID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	code := newActiveCode("ROLLBACK", uuid.New(), uuid.New())
	_, err := NewRedemptionCodeRepository(db).InsertCodeIfAbsent(ctx, code)
	require.NoError(t, err)

	err = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		redeemed := *code
		if err := redeemed.Redeem(time.Now().UTC()); err != nil {
			return err
		}
		if err := factory.NewRedemptionCodeRepository().MarkRedeemed(ctx, &redeemed); err != nil {
			return err
		}

		return repository.ErrDuplicateRedemption
	})
	require.ErrorIs(t, err, repository.ErrDuplicateRedemption)

	stored, err := NewRedemptionCodeRepository(db).FindCodeByValue(ctx, "ROLLBACK")
	require.NoError(t, err)
	assert.Equal(t, entity.CodeStatusActive, stored.Status)
}

func TestRedemptionRepository_DuplicateAndDirections(t *testing.T) {
	db := newTestDB(t)
	repo := NewRedemptionRepository(db)
	ctx := context.Background()

	offerOwner, referrer := uuid.New(), uuid.New()
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	outbound := &entity.Redemption{
		CodeID: uuid.New(), Code: "OUTB0001", OfferID: uuid.New(),
		OfferOwnerAccountID: offerOwner, RedeemingLocationID: uuid.New(), RedeemingAccountID: offerOwner,
		DisplayLocationID: uuid.New(), ReferrerAccountID: referrer,
		Inbound: true, Outbound: true, RedeemedAt: base,
	}
	ownStore := &entity.Redemption{
		CodeID: uuid.New(), Code: "INBD0001", OfferID: uuid.New(),
		OfferOwnerAccountID: offerOwner, RedeemingLocationID: uuid.New(), RedeemingAccountID: offerOwner,
		DisplayLocationID: uuid.New(), ReferrerAccountID: offerOwner,
		Inbound: true, RedeemedAt: base.Add(time.Hour),
	}
	require.NoError(t, repo.CreateRedemption(ctx, outbound))
	require.NoError(t, repo.CreateRedemption(ctx, ownStore))

	dup := *outbound
	dup.ID = uuid.Nil
	assert.ErrorIs(t, repo.CreateRedemption(ctx, &dup), repository.ErrDuplicateRedemption)

	inbound, err := repo.ListRedemptions(ctx, offerOwner, entity.DirectionInbound, 0)
	require.NoError(t, err)
	require.Len(t, inbound, 2)
	assert.Equal(t, ownStore.ID, inbound[0].ID, "newest first")

	referred, err := repo.ListRedemptions(ctx, referrer, entity.DirectionOutbound, 10)
	require.NoError(t, err)
	require.Len(t, referred, 1)
	assert.Equal(t, outbound.ID, referred[0].ID)

	_, err = repo.ListRedemptions(ctx, referrer, entity.RedemptionDirection("sideways"), 10)
	assert.Error(t, err)

	found, err := repo.FindRedemptionByCodeID(ctx, outbound.CodeID)
	require.NoError(t, err)
	assert.True(t, found.Outbound)
}

func TestImpressionRepository_Counts(t *testing.T) {
	db := newTestDB(t)
	repo := NewImpressionRepository(db)
	ctx := context.Background()

	offerID, home := uuid.New(), uuid.New()
	displays := []uuid.UUID{uuid.New(), uuid.New()}
	for i := range 3 {
		require.NoError(t, repo.CreateImpression(ctx, &entity.Impression{
			OfferID:             offerID,
			OfferHomeLocationID: home,
			DisplayLocationID:   displays[i%2],
			Channel:             entity.ChannelCarousel,
			SessionID:           "s",
		}))
	}

	total, locations, err := repo.CountImpressionsByOffer(ctx, offerID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, int64(2), locations)
}
