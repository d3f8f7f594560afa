// Package cache provides the TTL caches and the impression session set.
package cache

import (
	"context"
	"time"

	"offerengine/config"
	"offerengine/internal/domain/service"
	"offerengine/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "offerengine"
	sessionPrefix    = "impression_session"
)

// RedisCache implements service.Cache and service.SessionDeduper on a single Redis client.
type RedisCache struct {
	client     redis.UniversalClient
	prefix     string
	sessionTTL time.Duration
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client redis.UniversalClient, keyPrefix string, sessionTTL time.Duration) *RedisCache {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}

	return &RedisCache{
		client:     client,
		prefix:     keyPrefix,
		sessionTTL: sessionTTL,
	}
}

// NewRedisClient builds the go-redis client from config.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis address is required")
	}

	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}), nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "redis get")
	}

	return value, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.Wrap(c.client.Set(ctx, c.key(key), value, ttl).Err(), "redis set")
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return errors.Wrap(c.client.Del(ctx, c.key(key)).Err(), "redis del")
}

// Claim uses SETNX so concurrent viewers of the same session race on one key.
func (c *RedisCache) Claim(ctx context.Context, sessionID, key string) (bool, error) {
	claimed, err := c.client.SetNX(ctx, c.sessionKey(sessionID, key), 1, c.sessionTTL).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis setnx")
	}

	return claimed, nil
}

func (c *RedisCache) Release(ctx context.Context, sessionID, key string) error {
	return errors.Wrap(c.client.Del(ctx, c.sessionKey(sessionID, key)).Err(), "redis del")
}

// Ping verifies connectivity.
func (c *RedisCache) Ping(ctx context.Context) error {
	return errors.Wrap(c.client.Ping(ctx).Err(), "redis ping")
}

// Close releases the client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) key(key string) string {
	return c.prefix + ":" + key
}

func (c *RedisCache) sessionKey(sessionID, key string) string {
	return c.prefix + ":" + sessionPrefix + ":" + sessionID + ":" + key
}
