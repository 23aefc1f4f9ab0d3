package systems

import (
	"github.com/achristensen56/principlesofsystemsneuro/components"
	"github.com/achristensen56/principlesofsystemsneuro/field"
)

// Velocity response gains for a sampled scalar field. Warm (positive)
// samples push harder than cold ones, so particles drift toward and
// linger in warm regions.
const (
	WarmGain = 0.075
	ColdGain = 0.01

	// VectorGain scales a sampled vector field before it is added to a
	// particle's velocity.
	VectorGain = 2.0
)

// ApplyScalar perturbs a particle's velocity from a scalar field sample
// at its position. Agents (h != nil) additionally integrate the sample
// into their body temperature.
func ApplyScalar(f field.Scalar, pos *components.Position, vel *components.Velocity, h *components.Homeostat, dt float64) {
	s := f.Sample(pos.X, pos.Y)

	if h != nil {
		h.Temperature += s * dt
	}

	gain := ColdGain
	if s > 0 {
		gain = WarmGain
	}
	vel.X += gain * s * dt
	vel.Y += gain * s * dt
}

// ApplyVector adds the sampled vector field at the particle's position
// to its velocity, scaled by VectorGain and dt.
func ApplyVector(f field.Vector, pos *components.Position, vel *components.Velocity, dt float64) {
	fx, fy := f.SampleVector(pos.X, pos.Y)
	vel.X += VectorGain * fx * dt
	vel.Y += VectorGain * fy * dt
}
