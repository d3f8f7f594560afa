package service

import (
	"context"

	"offerengine/internal/errors"

	"github.com/paulmach/orb"
)

// ErrAddressNotFound is returned when the geocoder has no result for an address.
var ErrAddressNotFound = errors.New("address not found")

// Geocoder resolves a postal address to a coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (orb.Point, error)
}
