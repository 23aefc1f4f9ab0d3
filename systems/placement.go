package systems

import (
	"fmt"
	"math"
	"math/rand"
)

// Placement holds the initial state chosen for one particle.
type Placement struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// PlaceParticles chooses non-overlapping initial positions for the given
// radii inside the unit square using rejection sampling. Positions are
// uniform over the region where the whole circle fits; initial speed is
// 0.05*sqrt(U)+0.05 at a uniform heading.
//
// Each particle gets at most maxAttempts placement tries. Exhausting
// them means the configuration is geometrically infeasible (too many or
// too large circles for the domain) and an error is returned rather
// than looping forever.
func PlaceParticles(rng *rand.Rand, radii []float64, maxAttempts int) ([]Placement, error) {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	placed := make([]Placement, 0, len(radii))
	for i, r := range radii {
		if r <= 0 {
			return nil, fmt.Errorf("placement: particle %d has non-positive radius %g", i, r)
		}
		if 2*r >= 1 {
			return nil, fmt.Errorf("placement: particle %d with radius %g cannot fit in the unit square", i, r)
		}

		ok := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			x := r + (1-2*r)*rng.Float64()
			y := r + (1-2*r)*rng.Float64()

			if overlapsAny(placed, x, y, r) {
				continue
			}

			speed := 0.05*math.Sqrt(rng.Float64()) + 0.05
			phi := 2 * math.Pi * rng.Float64()
			placed = append(placed, Placement{
				X: x, Y: y,
				VX:     speed * math.Cos(phi),
				VY:     speed * math.Sin(phi),
				Radius: r,
			})
			ok = true
			break
		}
		if !ok {
			return nil, fmt.Errorf("placement: infeasible configuration: no room for particle %d (radius %g) after %d attempts", i, r, maxAttempts)
		}
	}
	return placed, nil
}

func overlapsAny(placed []Placement, x, y, r float64) bool {
	for _, p := range placed {
		if math.Hypot(p.X-x, p.Y-y) < p.Radius+r {
			return true
		}
	}
	return false
}

// UniformRadii returns n copies of radius, the common case where every
// particle shares a single configured radius.
func UniformRadii(n int, radius float64) []float64 {
	radii := make([]float64, n)
	for i := range radii {
		radii[i] = radius
	}
	return radii
}
