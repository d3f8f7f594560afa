package postgres

import (
	"context"
	"testing"
	"time"

	"offerengine/internal/domain/entity"
	"offerengine/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardRepository_EventIsInsertedOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaderboardRepository(db)
	ctx := context.Background()

	event := entity.NewScoreEvent(entity.ScoreImpression, uuid.New(), uuid.New(), time.Now().UTC())

	inserted, err := repo.InsertEventIfAbsent(ctx, event)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.InsertEventIfAbsent(ctx, event)
	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestLeaderboardRepository_AddPointsAccumulates(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaderboardRepository(db)
	ctx := context.Background()

	account := uuid.New()
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	score, err := repo.AddPoints(ctx, account, 1, first)
	require.NoError(t, err)
	assert.Equal(t, int64(1), score.Points)

	score, err = repo.AddPoints(ctx, account, 5, first.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(6), score.Points)
	assert.True(t, score.FirstAccruedAt.Equal(first))
	assert.True(t, score.LastAccruedAt.Equal(first.Add(time.Hour)))

	_, err = repo.FindScore(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrScoreNotFound)
}

func TestLeaderboardRepository_TopBreaksTiesByArrival(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaderboardRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	leader, early, late := uuid.New(), uuid.New(), uuid.New()

	_, err := repo.AddPoints(ctx, late, 5, base.Add(2*time.Hour))
	require.NoError(t, err)
	_, err = repo.AddPoints(ctx, early, 5, base.Add(time.Hour))
	require.NoError(t, err)
	_, err = repo.AddPoints(ctx, leader, 9, base.Add(3*time.Hour))
	require.NoError(t, err)

	top, err := repo.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, leader, top[0].AccountID)
	assert.Equal(t, early, top[1].AccountID)
	assert.Equal(t, late, top[2].AccountID)

	limited, err := repo.Top(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
