// Package systems contains the per-tick physics and agent-policy
// building blocks of the simulation. Functions here are pure state
// mutations on components; orchestration lives in the sim package.
package systems

import (
	"math"

	"github.com/achristensen56/principlesofsystemsneuro/components"
)

// Advance integrates a particle forward by dt using explicit Euler and
// applies a linear damping term proportional to mass. The damping is
// subtracted from both velocity components uniformly.
func Advance(pos *components.Position, vel *components.Velocity, body *components.Body, dt float64) {
	pos.X += vel.X * dt
	pos.Y += vel.Y * dt

	damp := 0.5 * body.Mass * dt
	vel.X -= damp
	vel.Y -= damp
}

// Overlaps reports whether two circles overlap: the distance between
// centers is strictly less than the sum of radii. Symmetric in its
// arguments.
func Overlaps(p1, p2 *components.Position, b1, b2 *components.Body) bool {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y) < b1.Radius+b2.Radius
}
