package systems

import "github.com/achristensen56/principlesofsystemsneuro/components"

// Reflect keeps a particle inside the unit square. Each axis is checked
// independently: if the particle's leading edge crosses a wall, the
// position is clamped to the wall-adjusted value and the velocity
// component is inverted, scaled by the restitution coefficient. A corner
// contact corrects both axes in the same call. Returns the number of
// wall contacts (0-2).
func Reflect(pos *components.Position, vel *components.Velocity, body *components.Body, restitution float64) int {
	bounces := 0

	if pos.X-body.Radius < 0 {
		pos.X = body.Radius
		vel.X = -restitution * vel.X
		bounces++
	} else if pos.X+body.Radius > 1 {
		pos.X = 1 - body.Radius
		vel.X = -restitution * vel.X
		bounces++
	}

	if pos.Y-body.Radius < 0 {
		pos.Y = body.Radius
		vel.Y = -restitution * vel.Y
		bounces++
	} else if pos.Y+body.Radius > 1 {
		pos.Y = 1 - body.Radius
		vel.Y = -restitution * vel.Y
		bounces++
	}

	return bounces
}
