package cache

import (
	"context"
	"sync"
	"time"

	"offerengine/internal/domain/service"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryCache is the single-process fallback for service.Cache and service.SessionDeduper.
// Expired entries are dropped lazily on access and during periodic sweeps on write.
type MemoryCache struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	sessionTTL time.Duration
	now        func() time.Time
	writes     int
}

const sweepEvery = 1024

// NewMemoryCache creates an empty cache.
func NewMemoryCache(sessionTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		entries:    make(map[string]memoryEntry),
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, service.ErrCacheMiss
	}
	if entry.expired(c.now()) {
		delete(c.entries, key)

		return nil, service.ErrCacheMiss
	}

	out := make([]byte, len(entry.value))
	copy(out, entry.value)

	return out, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	c.put(key, stored, ttl)

	return nil
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}

func (c *MemoryCache) Claim(_ context.Context, sessionID, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := sessionPrefix + ":" + sessionID + ":" + key
	if entry, ok := c.entries[k]; ok && !entry.expired(c.now()) {
		return false, nil
	}
	c.put(k, nil, c.sessionTTL)

	return true, nil
}

func (c *MemoryCache) Release(_ context.Context, sessionID, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, sessionPrefix+":"+sessionID+":"+key)

	return nil
}

// Len reports the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// put must be called with mu held.
func (c *MemoryCache) put(key string, value []byte, ttl time.Duration) {
	now := c.now()
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}
	c.entries[key] = entry

	c.writes++
	if c.writes%sweepEvery == 0 {
		for k, e := range c.entries {
			if e.expired(now) {
				delete(c.entries, k)
			}
		}
	}
}
