package postgres

import (
	"context"
	"testing"

	"offerengine/internal/domain/entity"
	"offerengine/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceRepository_UpsertRefreshesToken(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeviceRepository(db)
	ctx := context.Background()

	account := uuid.New()
	device := &entity.AccountDevice{AccountID: account, DeviceID: "pixel-1", FCMToken: "old", Platform: "android", IsActive: true}
	require.NoError(t, repo.UpsertDevice(ctx, device))
	firstID := device.ID

	again := &entity.AccountDevice{AccountID: account, DeviceID: "pixel-1", FCMToken: "new", Platform: "android", IsActive: true}
	require.NoError(t, repo.UpsertDevice(ctx, again))
	assert.Equal(t, firstID, again.ID)
	assert.Equal(t, "new", again.FCMToken)

	devices, err := repo.FindActiveDevicesByAccount(ctx, account)
	require.NoError(t, err)
	require.Len(t, devices, 1)

	require.NoError(t, repo.DeactivateDevice(ctx, firstID))
	devices, err = repo.FindActiveDevicesByAccount(ctx, account)
	require.NoError(t, err)
	assert.Empty(t, devices)

	assert.ErrorIs(t, repo.DeactivateDevice(ctx, uuid.New()), repository.ErrDeviceNotFound)
}
