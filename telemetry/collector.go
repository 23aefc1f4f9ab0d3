package telemetry

// Collector accumulates events within time windows and produces
// WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64
	dt                  float64

	windowStartTick int64

	// Event counters for the current window
	deaths          int
	collisions      int
	degenerateSkips int
	wallBounces     int
	consumes        int
	moveKicks       int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds.
// dt: seconds per tick.
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int64(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordDeath records a particle reaped after its tombstone was set.
func (c *Collector) RecordDeath() { c.deaths++ }

// RecordCollision records one resolved pairwise collision.
func (c *Collector) RecordCollision() { c.collisions++ }

// RecordDegenerateSkip records a pair skipped for coincident centers.
func (c *Collector) RecordDegenerateSkip() { c.degenerateSkips++ }

// RecordWallBounces records n wall contacts from one boundary pass.
func (c *Collector) RecordWallBounces(n int) { c.wallBounces += n }

// RecordConsume records an agent eating from its food store.
func (c *Collector) RecordConsume() { c.consumes++ }

// RecordMoveKick records an agent taking a boosted move.
func (c *Collector) RecordMoveKick() { c.moveKicks++ }

// ShouldFlush returns true if enough ticks have passed to flush the
// window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Sample holds the per-particle values the collector aggregates at
// window end.
type Sample struct {
	Speeds        []float64
	KineticEnergy float64
	MomentumX     float64
	MomentumY     float64

	AgentTemperature float64
	AgentResource    float64
	AgentAlive       bool
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int64, live int, sample Sample) WindowStats {
	mean, p10, p50, p90 := ComputeSpeedStats(sample.Speeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Live:   live,
		Deaths: c.deaths,

		Collisions:      c.collisions,
		DegenerateSkips: c.degenerateSkips,
		WallBounces:     c.wallBounces,
		Consumes:        c.consumes,
		MoveKicks:       c.moveKicks,

		SpeedMean: mean,
		SpeedP10:  p10,
		SpeedP50:  p50,
		SpeedP90:  p90,

		KineticEnergy: sample.KineticEnergy,
		MomentumX:     sample.MomentumX,
		MomentumY:     sample.MomentumY,

		AgentTemperature: sample.AgentTemperature,
		AgentResource:    sample.AgentResource,
		AgentAlive:       sample.AgentAlive,
	}

	c.windowStartTick = currentTick
	c.deaths = 0
	c.collisions = 0
	c.degenerateSkips = 0
	c.wallBounces = 0
	c.consumes = 0
	c.moveKicks = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
