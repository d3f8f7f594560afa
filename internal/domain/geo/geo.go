// Package geo provides the distance and ordering helpers used by offer eligibility and rotation.
package geo

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

const (
	// EarthRadiusMiles is the sphere radius used for all mile distances.
	EarthRadiusMiles = 3963.0

	metersPerMile = 1609.344

	// boundSlack widens the bounding-box prefilter so it never rejects a point the exact test accepts.
	boundSlack = 1.01
)

// HaversineMiles returns the great-circle distance between a and b in miles.
func HaversineMiles(a, b orb.Point) float64 {
	lat1 := deg2rad(a.Lat())
	lat2 := deg2rad(b.Lat())
	deltaLat := lat2 - lat1
	deltaLng := deg2rad(b.Lon() - a.Lon())

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMiles * c
}

// WithinRadius reports whether b lies within miles of a (inclusive) and returns the distance.
// A bounding box around a rejects far points before the trigonometric test.
func WithinRadius(a, b orb.Point, miles float64) (float64, bool) {
	if !IsValid(a) || !IsValid(b) || miles < 0 {
		return 0, false
	}

	bound := orbgeo.NewBoundAroundPoint(a, miles*metersPerMile*boundSlack)
	if !bound.Contains(b) {
		return HaversineMiles(a, b), false
	}

	distance := HaversineMiles(a, b)

	return distance, distance <= miles
}

// IsValid checks that p is a finite coordinate within Earth bounds.
func IsValid(p orb.Point) bool {
	lng, lat := p.Lon(), p.Lat()
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// Shuffle returns a uniformly random permutation of items without modifying the input.
func Shuffle[T any](items []T, rng *rand.Rand) []T {
	out := make([]T, len(items))
	copy(out, items)

	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
