package components

// Homeostat holds the internal state of an agent particle: a depletable
// food store and a body temperature regulated toward a set point. It is
// attached as an extra component; the world runs the homeostatic policy
// only for entities that carry one.
type Homeostat struct {
	Resource    float64 // food store; death below zero
	Temperature float64
	SetPoint    float64 // target temperature
	Margin      float64 // tolerated deviation from the set point

	Boost    float64 // magnitude of the random move kick
	MoveCost float64 // resource charged per unit of boost per second (0 = free movement)

	// Absolute survivable temperature band, independent of the set point.
	MinTemperature float64
	MaxTemperature float64

	// Per-tick history, appended by the policy and kept after death for
	// post-mortem inspection.
	TemperatureLog []float64
	ResourceLog    []float64
}
