package systems

import (
	"math"
	"testing"

	"github.com/achristensen56/principlesofsystemsneuro/components"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name   string
		pos    components.Position
		vel    components.Velocity
		radius float64
		dt     float64
		wantP  components.Position
		wantV  components.Velocity
	}{
		{
			name:   "straight drift",
			pos:    components.Position{X: 0.5, Y: 0.5},
			vel:    components.Velocity{X: 1, Y: -1},
			radius: 0.1,
			dt:     0.01,
			wantP:  components.Position{X: 0.51, Y: 0.49},
			// damp = 0.5 * 0.01 (mass) * 0.01 = 5e-5 off both components
			wantV: components.Velocity{X: 1 - 5e-5, Y: -1 - 5e-5},
		},
		{
			name:   "at rest still damps",
			pos:    components.Position{X: 0.2, Y: 0.8},
			vel:    components.Velocity{},
			radius: 0.2,
			dt:     0.01,
			wantP:  components.Position{X: 0.2, Y: 0.8},
			wantV:  components.Velocity{X: -2e-4, Y: -2e-4},
		},
		{
			name:   "zero dt is a no-op",
			pos:    components.Position{X: 0.3, Y: 0.3},
			vel:    components.Velocity{X: 2, Y: 3},
			radius: 0.05,
			dt:     0,
			wantP:  components.Position{X: 0.3, Y: 0.3},
			wantV:  components.Velocity{X: 2, Y: 3},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, vel := tc.pos, tc.vel
			body := components.NewBody(tc.radius)

			Advance(&pos, &vel, &body, tc.dt)

			if math.Abs(pos.X-tc.wantP.X) > 1e-12 || math.Abs(pos.Y-tc.wantP.Y) > 1e-12 {
				t.Errorf("pos = (%v, %v), want (%v, %v)", pos.X, pos.Y, tc.wantP.X, tc.wantP.Y)
			}
			if math.Abs(vel.X-tc.wantV.X) > 1e-12 || math.Abs(vel.Y-tc.wantV.Y) > 1e-12 {
				t.Errorf("vel = (%v, %v), want (%v, %v)", vel.X, vel.Y, tc.wantV.X, tc.wantV.Y)
			}
		})
	}
}

func TestAdvanceDampingScalesWithMass(t *testing.T) {
	// A heavier particle sheds more velocity per tick than a lighter one.
	light := components.NewBody(0.01)
	heavy := components.NewBody(0.1)

	posL, velL := components.Position{X: 0.5, Y: 0.5}, components.Velocity{X: 1}
	posH, velH := components.Position{X: 0.5, Y: 0.5}, components.Velocity{X: 1}

	Advance(&posL, &velL, &light, 0.01)
	Advance(&posH, &velH, &heavy, 0.01)

	if velH.X >= velL.X {
		t.Errorf("heavy particle kept more speed: heavy=%v light=%v", velH.X, velL.X)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 components.Position
		r1, r2 float64
		want   bool
	}{
		{"clearly apart", components.Position{X: 0.1, Y: 0.1}, components.Position{X: 0.9, Y: 0.9}, 0.05, 0.05, false},
		{"overlapping", components.Position{X: 0.50, Y: 0.5}, components.Position{X: 0.51, Y: 0.5}, 0.01, 0.01, true},
		{"exactly touching is not overlap", components.Position{X: 0.4, Y: 0.5}, components.Position{X: 0.6, Y: 0.5}, 0.1, 0.1, false},
		{"coincident centers", components.Position{X: 0.5, Y: 0.5}, components.Position{X: 0.5, Y: 0.5}, 0.01, 0.01, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b1 := components.NewBody(tc.r1)
			b2 := components.NewBody(tc.r2)
			if got := Overlaps(&tc.p1, &tc.p2, &b1, &b2); got != tc.want {
				t.Errorf("Overlaps = %v, want %v", got, tc.want)
			}
			// Symmetric in its arguments.
			if got := Overlaps(&tc.p2, &tc.p1, &b2, &b1); got != tc.want {
				t.Errorf("Overlaps (swapped) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBodyMassTracksRadius(t *testing.T) {
	b := components.NewBody(0.3)
	if math.Abs(b.Mass-0.09) > 1e-12 {
		t.Errorf("mass = %v, want 0.09", b.Mass)
	}

	b.SetRadius(0.5)
	if math.Abs(b.Mass-0.25) > 1e-12 {
		t.Errorf("mass after SetRadius = %v, want 0.25", b.Mass)
	}
}
