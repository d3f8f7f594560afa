package impl

import (
	"math/rand"
	"time"

	"offerengine/internal/domain/entity"
	"offerengine/internal/domain/geo"
	"offerengine/internal/usecase"
)

type rotationPlanner struct {
	now func() time.Time
}

// NewRotationPlanner creates the display sequence planner
func NewRotationPlanner() usecase.RotationPlanner {
	return &rotationPlanner{now: time.Now}
}

// Plan orders partner and open offers for a surface. Inputs are never modified.
func (p *rotationPlanner) Plan(_, partner, open []*entity.EligibleOffer, opts usecase.PlanOptions) []*entity.EligibleOffer {
	surface := opts.Surface
	if surface == "" {
		surface = usecase.SurfaceRotation
	}

	switch surface {
	case usecase.SurfaceProximity:
		return closestFirst(open)
	case usecase.SurfacePartner:
		return geo.Shuffle(partner, p.rng(opts.Seed))
	default:
		return interleave(geo.Shuffle(partner, p.rng(opts.Seed)), closestFirst(open))
	}
}

func (p *rotationPlanner) rng(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed)) //nolint:gosec // display order only
	}

	return rand.New(rand.NewSource(p.now().UnixNano())) //nolint:gosec // display order only
}

func closestFirst(open []*entity.EligibleOffer) []*entity.EligibleOffer {
	sorted := make([]*entity.EligibleOffer, len(open))
	copy(sorted, open)
	sortByDistance(sorted)

	return sorted
}

// interleave yields P1, O1, P2, O2, ... followed by the longer list's remainder.
func interleave(partner, open []*entity.EligibleOffer) []*entity.EligibleOffer {
	out := make([]*entity.EligibleOffer, 0, len(partner)+len(open))

	for i := 0; i < len(partner) || i < len(open); i++ {
		if i < len(partner) {
			out = append(out, partner[i])
		}
		if i < len(open) {
			out = append(out, open[i])
		}
	}

	return out
}
