package service

import (
	"context"
	"time"

	"offerengine/internal/errors"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a byte-oriented TTL cache shared by the eligibility and geocode layers.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// SessionDeduper is the per-session set of impression keys already recorded.
type SessionDeduper interface {
	// Claim adds key for the session and reports whether it was newly added
	Claim(ctx context.Context, sessionID, key string) (bool, error)

	// Release removes key so that a later view can be recorded again
	Release(ctx context.Context, sessionID, key string) error
}
