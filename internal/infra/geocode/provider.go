package geocode

import (
	"log/slog"

	"offerengine/config"
	"offerengine/internal/domain/service"

	"go.uber.org/fx"
)

// Params defines the dependencies of the geocoder provider
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Cache  service.Cache
}

// New builds the cached geocoder; without an API key every lookup misses.
func New(params Params) (service.Geocoder, error) {
	var upstream service.Geocoder
	if params.Config.Geocoding == nil || params.Config.Geocoding.APIKey == "" {
		params.Logger.Info("Geocoding not configured, locations without coordinates are skipped")
		upstream = NewNoopGeocoder()
	} else {
		google, err := NewGoogleGeocoder(params.Config.Geocoding.APIKey, params.Config.Geocoding.RateLimit)
		if err != nil {
			return nil, err
		}
		upstream = google
	}

	engine := params.Config.Engine

	return NewCachedGeocoder(upstream, params.Cache, params.Logger, engine.GeocodeCacheTTL, engine.GeocodeFailureTTL), nil
}
