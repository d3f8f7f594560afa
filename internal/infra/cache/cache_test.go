package cache

import (
	"context"
	"testing"
	"time"

	"offerengine/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend interface {
	service.Cache
	service.SessionDeduper
}

func newRedisBackend(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCache(client, "test", time.Hour), mr
}

func backends(t *testing.T) map[string]backend {
	redisCache, _ := newRedisBackend(t)

	return map[string]backend{
		"memory": NewMemoryCache(time.Hour),
		"redis":  redisCache,
	}
}

func TestCache_GetSetDelete(t *testing.T) {
	ctx := context.Background()

	for name, c := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := c.Get(ctx, "missing")
			assert.ErrorIs(t, err, service.ErrCacheMiss)

			require.NoError(t, c.Set(ctx, "eligibility:1", []byte(`{"ok":true}`), time.Minute))

			value, err := c.Get(ctx, "eligibility:1")
			require.NoError(t, err)
			assert.Equal(t, `{"ok":true}`, string(value))

			require.NoError(t, c.Delete(ctx, "eligibility:1"))
			_, err = c.Get(ctx, "eligibility:1")
			assert.ErrorIs(t, err, service.ErrCacheMiss)
		})
	}
}

func TestDeduper_ClaimIsOncePerSession(t *testing.T) {
	ctx := context.Background()

	for name, d := range backends(t) {
		t.Run(name, func(t *testing.T) {
			claimed, err := d.Claim(ctx, "session-1", "offer:display")
			require.NoError(t, err)
			assert.True(t, claimed)

			claimed, err = d.Claim(ctx, "session-1", "offer:display")
			require.NoError(t, err)
			assert.False(t, claimed)

			claimed, err = d.Claim(ctx, "session-2", "offer:display")
			require.NoError(t, err)
			assert.True(t, claimed, "another session records its own view")

			require.NoError(t, d.Release(ctx, "session-1", "offer:display"))
			claimed, err = d.Claim(ctx, "session-1", "offer:display")
			require.NoError(t, err)
			assert.True(t, claimed, "released key can be claimed again")
		})
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Minute)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 30*time.Second))
	claimed, err := c.Claim(ctx, "s", "k")
	require.NoError(t, err)
	require.True(t, claimed)

	now = now.Add(31 * time.Second)
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, service.ErrCacheMiss)

	claimed, err = c.Claim(ctx, "s", "k")
	require.NoError(t, err)
	assert.False(t, claimed, "session key still live")

	now = now.Add(time.Minute)
	claimed, err = c.Claim(ctx, "s", "k")
	require.NoError(t, err)
	assert.True(t, claimed, "session key expired")
}

func TestRedisCache_SessionTTL(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisBackend(t)

	claimed, err := c.Claim(ctx, "s", "k")
	require.NoError(t, err)
	require.True(t, claimed)

	assert.Equal(t, time.Hour, mr.TTL("test:impression_session:s:k"))

	mr.FastForward(time.Hour + time.Second)
	claimed, err = c.Claim(ctx, "s", "k")
	require.NoError(t, err)
	assert.True(t, claimed)
}
