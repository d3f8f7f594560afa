// Package geocode resolves storefront addresses to coordinates.
package geocode

import (
	"context"

	"offerengine/internal/domain/service"
	"offerengine/internal/errors"

	"github.com/paulmach/orb"
	"googlemaps.github.io/maps"
)

type googleGeocoder struct {
	client *maps.Client
}

// NewGoogleGeocoder creates a geocoder backed by the Google Maps Geocoding API.
func NewGoogleGeocoder(apiKey string, rateLimit int) (service.Geocoder, error) {
	opts := []maps.ClientOption{maps.WithAPIKey(apiKey)}
	if rateLimit > 0 {
		opts = append(opts, maps.WithRateLimit(rateLimit))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Google Maps client")
	}

	return &googleGeocoder{client: client}, nil
}

func (g *googleGeocoder) Geocode(ctx context.Context, address string) (orb.Point, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "geocoding request failed")
	}
	if len(results) == 0 {
		return orb.Point{}, service.ErrAddressNotFound
	}

	location := results[0].Geometry.Location

	return orb.Point{location.Lng, location.Lat}, nil
}

type noopGeocoder struct{}

// NewNoopGeocoder returns a geocoder that never resolves an address.
func NewNoopGeocoder() service.Geocoder {
	return noopGeocoder{}
}

func (noopGeocoder) Geocode(context.Context, string) (orb.Point, error) {
	return orb.Point{}, service.ErrAddressNotFound
}
