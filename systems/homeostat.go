package systems

import (
	"math/rand"

	"github.com/achristensen56/principlesofsystemsneuro/components"
)

// PassiveDecay is the per-tick velocity decay an agent applies to
// itself while existing.
const PassiveDecay = 0.95

// Action identifies what the homeostatic policy did on a given tick.
type Action int

const (
	ActionNone Action = iota
	ActionConsume
	ActionMove
)

// Exist runs the passive part of an agent's tick: velocity decay, a
// zero-boost random-walk step, vitals logging, and the death check.
// Returns true if the agent is still alive afterwards.
//
// Death is terminal: the tombstone is set exactly when the food store
// drops below zero or the temperature leaves the survivable band, and
// the logs stay valid for post-mortem inspection.
func Exist(h *components.Homeostat, vel *components.Velocity, tomb *components.Tombstone, rng *rand.Rand, dt float64) bool {
	vel.X *= PassiveDecay
	vel.Y *= PassiveDecay

	Kick(h, vel, rng, 0, dt)

	h.TemperatureLog = append(h.TemperatureLog, h.Temperature)
	h.ResourceLog = append(h.ResourceLog, h.Resource)

	if h.Resource < 0 || h.Temperature < h.MinTemperature || h.Temperature > h.MaxTemperature {
		tomb.Dead = true
	}
	return !tomb.Dead
}

// Monitor returns the deviation of the agent's temperature from its
// homeostatic set point.
func Monitor(h *components.Homeostat) float64 {
	return h.Temperature - h.SetPoint
}

// Consume spends one unit of the food store; eating raises body
// temperature slightly.
func Consume(h *components.Homeostat) {
	h.Resource -= 1
	h.Temperature += 0.1
}

// Kick adds a bounded random velocity kick scaled by boost, charging the
// food store MoveCost resource per unit of boost per second. A zero
// boost still draws from the RNG so the random stream does not depend on
// the policy branch taken.
func Kick(h *components.Homeostat, vel *components.Velocity, rng *rand.Rand, boost, dt float64) {
	h.Resource -= h.MoveCost * boost * dt
	vel.X += (rng.Float64()*2 - 1) * boost
	vel.Y += (rng.Float64()*2 - 1) * boost
}

// StepHomeostat runs one tick of the agent policy: exist, then a
// three-way branch on the temperature deviation against the tolerance
// margin. Too cold: eat. Too hot: move and hope life gets better.
// Within the margin: nothing to do. Dead agents take no action.
func StepHomeostat(h *components.Homeostat, vel *components.Velocity, tomb *components.Tombstone, rng *rand.Rand, dt float64) Action {
	if tomb.Dead {
		return ActionNone
	}
	if !Exist(h, vel, tomb, rng, dt) {
		return ActionNone
	}

	delta := Monitor(h)
	switch {
	case delta < -h.Margin:
		Consume(h)
		return ActionConsume
	case delta > h.Margin:
		Kick(h, vel, rng, h.Boost, dt)
		return ActionMove
	default:
		return ActionNone
	}
}
