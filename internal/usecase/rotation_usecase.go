package usecase

import "offerengine/internal/domain/entity"

// Surface selects how a planned sequence is composed
type Surface string

const (
	// SurfaceRotation interleaves partner and open offers for the carousel
	SurfaceRotation Surface = "rotation"
	// SurfaceProximity lists open offers closest first
	SurfaceProximity Surface = "proximity"
	// SurfacePartner lists partner offers in shuffled order
	SurfacePartner Surface = "partner"
)

// Valid reports whether s is a known surface
func (s Surface) Valid() bool {
	switch s {
	case SurfaceRotation, SurfaceProximity, SurfacePartner:
		return true
	default:
		return false
	}
}

// PlanOptions tunes a rotation plan
type PlanOptions struct {
	// Seed makes the partner shuffle reproducible; nil draws a fresh seed
	Seed *int64

	// Surface defaults to SurfaceRotation
	Surface Surface
}

// RotationPlanner orders eligible offers for display. Owner offers are never part of a plan.
type RotationPlanner interface {
	Plan(owner, partner, open []*entity.EligibleOffer, opts PlanOptions) []*entity.EligibleOffer
}
