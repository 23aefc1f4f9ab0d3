package systems

import "github.com/achristensen56/principlesofsystemsneuro/components"

// ResolveElastic applies the standard 2D elastic-collision velocity
// update to an overlapping pair, conserving total momentum and kinetic
// energy. Both velocities are replaced simultaneously: neither update
// sees the other's new value.
//
// Returns false without touching either velocity when the centers
// coincide exactly (the impulse direction is undefined); the caller
// skips the pair for this tick.
func ResolveElastic(p1, p2 *components.Position, v1, v2 *components.Velocity, b1, b2 *components.Body) bool {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	d := dx*dx + dy*dy
	if d == 0 {
		return false
	}

	m := b1.Mass + b2.Mass

	// u1 = v1 - (2 m2 / M) * ((v1-v2)·(r1-r2) / d) * (r1-r2)
	k1 := 2 * b2.Mass / m * ((v1.X-v2.X)*dx + (v1.Y-v2.Y)*dy) / d
	u1x := v1.X - k1*dx
	u1y := v1.Y - k1*dy

	// u2 = v2 - (2 m1 / M) * ((v2-v1)·(r2-r1) / d) * (r2-r1)
	k2 := 2 * b1.Mass / m * ((v2.X-v1.X)*-dx + (v2.Y-v1.Y)*-dy) / d
	u2x := v2.X + k2*dx
	u2y := v2.Y + k2*dy

	v1.X, v1.Y = u1x, u1y
	v2.X, v2.Y = u2x, u2y
	return true
}
