package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"offerengine/internal/domain/geo"
	"offerengine/internal/domain/service"
	"offerengine/internal/errors"

	"github.com/paulmach/orb"
)

const cacheKeyPrefix = "geocode:"

// cachedPoint is the cache payload; Found=false memoizes a failed lookup.
type cachedPoint struct {
	Found bool    `json:"found"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

type cachedGeocoder struct {
	next       service.Geocoder
	cache      service.Cache
	logger     *slog.Logger
	ttl        time.Duration
	failureTTL time.Duration
}

// NewCachedGeocoder memoizes lookups by normalized address. Failed lookups are cached for failureTTL
// so that a bad address does not hit the upstream API on every eligibility resolution.
func NewCachedGeocoder(next service.Geocoder, cache service.Cache, logger *slog.Logger, ttl, failureTTL time.Duration) service.Geocoder {
	return &cachedGeocoder{
		next:       next,
		cache:      cache,
		logger:     logger,
		ttl:        ttl,
		failureTTL: failureTTL,
	}
}

func (g *cachedGeocoder) Geocode(ctx context.Context, address string) (orb.Point, error) {
	normalized := NormalizeAddress(address)
	if normalized == "" {
		return orb.Point{}, service.ErrAddressNotFound
	}
	key := cacheKeyPrefix + normalized

	if raw, err := g.cache.Get(ctx, key); err == nil {
		var hit cachedPoint
		if jsonErr := json.Unmarshal(raw, &hit); jsonErr == nil {
			if !hit.Found {
				return orb.Point{}, service.ErrAddressNotFound
			}

			return orb.Point{hit.Lng, hit.Lat}, nil
		}
	} else if !errors.Is(err, service.ErrCacheMiss) {
		g.logger.Warn("Geocode cache read failed", slog.Any("error", err))
	}

	point, err := g.next.Geocode(ctx, address)
	if err == nil && !geo.IsValid(point) {
		err = service.ErrAddressNotFound
	}

	entry := cachedPoint{Found: err == nil, Lat: point.Lat(), Lng: point.Lon()}
	ttl := g.ttl
	if err != nil {
		ttl = g.failureTTL
		// Context cancellation says nothing about the address.
		if ctx.Err() != nil {
			return orb.Point{}, err
		}
	}

	if raw, marshalErr := json.Marshal(entry); marshalErr == nil {
		if setErr := g.cache.Set(ctx, key, raw, ttl); setErr != nil {
			g.logger.Warn("Geocode cache write failed", slog.Any("error", setErr))
		}
	}

	if err != nil {
		return orb.Point{}, err
	}

	return point, nil
}

// NormalizeAddress lowercases and collapses whitespace.
func NormalizeAddress(address string) string {
	return strings.Join(strings.Fields(strings.ToLower(address)), " ")
}
