package cache

import (
	"context"
	"log/slog"

	"offerengine/config"
	"offerengine/internal/domain/lifecycle"
	"offerengine/internal/domain/service"
	"offerengine/internal/errors"

	"go.uber.org/fx"
)

// Params defines the dependencies of the cache provider
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes one backend under both cache ports.
type Result struct {
	fx.Out

	Cache   service.Cache
	Deduper service.SessionDeduper
}

// New selects Redis when configured, otherwise an in-process cache.
func New(params Params) (Result, error) {
	sessionTTL := params.Config.Engine.ImpressionSessionTTL

	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		params.Logger.Info("Redis not configured, using in-memory cache")
		memory := NewMemoryCache(sessionTTL)

		return Result{Cache: memory, Deduper: memory}, nil
	}

	client, err := NewRedisClient(params.Config.Redis)
	if err != nil {
		return Result{}, err
	}
	redisCache := NewRedisCache(client, params.Config.Redis.KeyPrefix, sessionTTL)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := redisCache.Ping(ctx); err != nil {
				return errors.Wrap(err, "failed to connect to Redis")
			}
			params.Logger.Info("Redis cache connected", slog.String("addr", params.Config.Redis.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return redisCache.Close()
		},
	})

	return Result{Cache: redisCache, Deduper: redisCache}, nil
}
