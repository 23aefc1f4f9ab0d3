package systems

import (
	"math"
	"testing"

	"github.com/achristensen56/principlesofsystemsneuro/components"
	"github.com/achristensen56/principlesofsystemsneuro/field"
)

// constantField returns the same sample everywhere.
type constantField float64

func (c constantField) Sample(x, y float64) float64 { return float64(c) }

type constantVectorField struct{ fx, fy float64 }

func (c constantVectorField) SampleVector(x, y float64) (float64, float64) { return c.fx, c.fy }

func TestApplyScalar(t *testing.T) {
	tests := []struct {
		name   string
		sample float64
		wantDV float64
	}{
		{"warm sample uses the high gain", 4.0, 0.075 * 4.0 * 0.01},
		{"cold sample uses the low gain", -4.0, 0.01 * -4.0 * 0.01},
		{"zero sample uses the low gain", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := components.Position{X: 0.5, Y: 0.5}
			vel := components.Velocity{}

			ApplyScalar(constantField(tc.sample), &pos, &vel, nil, 0.01)

			if math.Abs(vel.X-tc.wantDV) > 1e-12 || math.Abs(vel.Y-tc.wantDV) > 1e-12 {
				t.Errorf("vel = (%v, %v), want (%v, %v)", vel.X, vel.Y, tc.wantDV, tc.wantDV)
			}
		})
	}
}

func TestApplyScalarHeatsAgent(t *testing.T) {
	pos := components.Position{X: 0.5, Y: 0.5}
	vel := components.Velocity{}
	h := components.Homeostat{Temperature: 98}

	ApplyScalar(constantField(3.0), &pos, &vel, &h, 0.01)

	if math.Abs(h.Temperature-98.03) > 1e-12 {
		t.Errorf("temperature = %v, want 98.03", h.Temperature)
	}
}

func TestApplyVector(t *testing.T) {
	pos := components.Position{X: 0.5, Y: 0.5}
	vel := components.Velocity{X: 0.1, Y: 0.1}

	ApplyVector(constantVectorField{fx: 1, fy: -2}, &pos, &vel, 0.01)

	if math.Abs(vel.X-(0.1+2*1*0.01)) > 1e-12 {
		t.Errorf("vel.X = %v, want %v", vel.X, 0.1+2*1*0.01)
	}
	if math.Abs(vel.Y-(0.1+2*-2*0.01)) > 1e-12 {
		t.Errorf("vel.Y = %v, want %v", vel.Y, 0.1+2*-2*0.01)
	}
}

// TestApplyScalarSamplesAtPosition verifies the sample is taken at the
// particle's own position.
func TestApplyScalarSamplesAtPosition(t *testing.T) {
	n := 2
	g := field.NewGrid(n, []float64{
		0, 0, // column x=0
		0, 10, // column x=1
	})

	pos := components.Position{X: 0.9, Y: 0.9} // snaps to the hot corner
	vel := components.Velocity{}
	ApplyScalar(g, &pos, &vel, nil, 0.01)
	if vel.X == 0 {
		t.Error("hot-corner particle got no push")
	}

	pos = components.Position{X: 0.1, Y: 0.1}
	vel = components.Velocity{}
	ApplyScalar(g, &pos, &vel, nil, 0.01)
	if vel.X != 0 {
		t.Errorf("cold-corner particle got a push: %v", vel.X)
	}
}
