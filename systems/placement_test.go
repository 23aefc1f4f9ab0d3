package systems

import (
	"math"
	"math/rand"
	"strings"
	"testing"
)

func TestPlaceParticles(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	radii := UniformRadii(50, 0.01)

	placed, err := PlaceParticles(rng, radii, 10000)
	if err != nil {
		t.Fatalf("PlaceParticles: %v", err)
	}
	if len(placed) != 50 {
		t.Fatalf("placed %d particles, want 50", len(placed))
	}

	for i, p := range placed {
		// Whole circle inside the unit square.
		if p.X < p.Radius || p.X > 1-p.Radius || p.Y < p.Radius || p.Y > 1-p.Radius {
			t.Errorf("particle %d at (%v, %v) leaves the square", i, p.X, p.Y)
		}
		// Speed in [0.05, 0.1].
		speed := math.Hypot(p.VX, p.VY)
		if speed < 0.05-1e-12 || speed > 0.1+1e-12 {
			t.Errorf("particle %d speed %v outside [0.05, 0.1]", i, speed)
		}
	}

	// No pair overlaps.
	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			d := math.Hypot(placed[i].X-placed[j].X, placed[i].Y-placed[j].Y)
			if d < placed[i].Radius+placed[j].Radius {
				t.Errorf("particles %d and %d overlap (distance %v)", i, j, d)
			}
		}
	}
}

func TestPlaceParticlesDeterministic(t *testing.T) {
	radii := UniformRadii(20, 0.02)

	a, err := PlaceParticles(rand.New(rand.NewSource(7)), radii, 10000)
	if err != nil {
		t.Fatal(err)
	}
	b, err := PlaceParticles(rand.New(rand.NewSource(7)), radii, 10000)
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("particle %d differs across identical seeds: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestPlaceParticlesInfeasible(t *testing.T) {
	// Two radius-0.3 circles cannot avoid each other: centers are
	// confined to [0.3, 0.7] on each axis, so they are never more than
	// sqrt(0.32) apart, which is below the 0.6 needed.
	rng := rand.New(rand.NewSource(1))
	_, err := PlaceParticles(rng, []float64{0.3, 0.3}, 1000)
	if err == nil {
		t.Fatal("expected an error for an infeasible configuration")
	}
	if !strings.Contains(err.Error(), "infeasible") {
		t.Errorf("error = %q, want mention of infeasibility", err)
	}
}

func TestPlaceParticlesBadRadius(t *testing.T) {
	tests := []struct {
		name  string
		radii []float64
	}{
		{"zero radius", []float64{0}},
		{"negative radius", []float64{-0.1}},
		{"too large for the square", []float64{0.5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			if _, err := PlaceParticles(rng, tc.radii, 100); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestUniformRadii(t *testing.T) {
	radii := UniformRadii(3, 0.05)
	if len(radii) != 3 {
		t.Fatalf("len = %d, want 3", len(radii))
	}
	for _, r := range radii {
		if r != 0.05 {
			t.Errorf("radius = %v, want 0.05", r)
		}
	}
}
