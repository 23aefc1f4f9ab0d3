package systems

import (
	"math"
	"testing"

	"github.com/achristensen56/principlesofsystemsneuro/components"
)

func TestReflect(t *testing.T) {
	tests := []struct {
		name        string
		pos         components.Position
		vel         components.Velocity
		radius      float64
		wantP       components.Position
		wantV       components.Velocity
		wantBounces int
	}{
		{
			name:        "interior untouched",
			pos:         components.Position{X: 0.5, Y: 0.5},
			vel:         components.Velocity{X: 1, Y: 1},
			radius:      0.01,
			wantP:       components.Position{X: 0.5, Y: 0.5},
			wantV:       components.Velocity{X: 1, Y: 1},
			wantBounces: 0,
		},
		{
			name:        "left wall",
			pos:         components.Position{X: 0.005, Y: 0.5},
			vel:         components.Velocity{X: -1, Y: 0},
			radius:      0.01,
			wantP:       components.Position{X: 0.01, Y: 0.5},
			wantV:       components.Velocity{X: 0.95, Y: 0},
			wantBounces: 1,
		},
		{
			name:        "right wall",
			pos:         components.Position{X: 0.999, Y: 0.5},
			vel:         components.Velocity{X: 2, Y: 0},
			radius:      0.01,
			wantP:       components.Position{X: 0.99, Y: 0.5},
			wantV:       components.Velocity{X: -1.9, Y: 0},
			wantBounces: 1,
		},
		{
			name:        "bottom wall",
			pos:         components.Position{X: 0.5, Y: -0.02},
			vel:         components.Velocity{X: 0, Y: -0.5},
			radius:      0.01,
			wantP:       components.Position{X: 0.5, Y: 0.01},
			wantV:       components.Velocity{X: 0, Y: 0.475},
			wantBounces: 1,
		},
		{
			name:        "corner hits both axes",
			pos:         components.Position{X: 0.001, Y: 0.999},
			vel:         components.Velocity{X: -1, Y: 1},
			radius:      0.01,
			wantP:       components.Position{X: 0.01, Y: 0.99},
			wantV:       components.Velocity{X: 0.95, Y: -0.95},
			wantBounces: 2,
		},
		{
			name:        "touching wall exactly is inside",
			pos:         components.Position{X: 0.01, Y: 0.5},
			vel:         components.Velocity{X: -1, Y: 0},
			radius:      0.01,
			wantP:       components.Position{X: 0.01, Y: 0.5},
			wantV:       components.Velocity{X: -1, Y: 0},
			wantBounces: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, vel := tc.pos, tc.vel
			body := components.NewBody(tc.radius)

			bounces := Reflect(&pos, &vel, &body, 0.95)

			if bounces != tc.wantBounces {
				t.Errorf("bounces = %d, want %d", bounces, tc.wantBounces)
			}
			if math.Abs(pos.X-tc.wantP.X) > 1e-12 || math.Abs(pos.Y-tc.wantP.Y) > 1e-12 {
				t.Errorf("pos = (%v, %v), want (%v, %v)", pos.X, pos.Y, tc.wantP.X, tc.wantP.Y)
			}
			if math.Abs(vel.X-tc.wantV.X) > 1e-12 || math.Abs(vel.Y-tc.wantV.Y) > 1e-12 {
				t.Errorf("vel = (%v, %v), want (%v, %v)", vel.X, vel.Y, tc.wantV.X, tc.wantV.Y)
			}
		})
	}
}

// TestReflectKeepsParticleInside drives a fast particle for many ticks
// and verifies it never escapes the unit square.
func TestReflectKeepsParticleInside(t *testing.T) {
	pos := components.Position{X: 0.5, Y: 0.5}
	vel := components.Velocity{X: 3.7, Y: -2.9}
	body := components.NewBody(0.05)

	for i := 0; i < 10000; i++ {
		Advance(&pos, &vel, &body, 0.01)
		Reflect(&pos, &vel, &body, 0.95)

		if pos.X-body.Radius < -1e-12 || pos.X+body.Radius > 1+1e-12 ||
			pos.Y-body.Radius < -1e-12 || pos.Y+body.Radius > 1+1e-12 {
			t.Fatalf("tick %d: particle escaped at (%v, %v)", i, pos.X, pos.Y)
		}
	}
}
