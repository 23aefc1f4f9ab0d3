package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	Live   int `csv:"live"`
	Deaths int `csv:"deaths"`

	// Events during window
	Collisions      int `csv:"collisions"`
	DegenerateSkips int `csv:"degenerate_skips"`
	WallBounces     int `csv:"wall_bounces"`
	Consumes        int `csv:"consumes"`
	MoveKicks       int `csv:"move_kicks"`

	// Speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	// Conservation observability
	KineticEnergy float64 `csv:"kinetic_energy"`
	MomentumX     float64 `csv:"momentum_x"`
	MomentumY     float64 `csv:"momentum_y"`

	// Agent vitals at window end (zero when no agent is alive)
	AgentTemperature float64 `csv:"agent_temperature"`
	AgentResource    float64 `csv:"agent_resource"`
	AgentAlive       bool    `csv:"agent_alive"`
}

// ComputeSpeedStats calculates mean and percentiles from speed values.
func ComputeSpeedStats(speeds []float64) (mean, p10, p50, p90 float64) {
	if len(speeds) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(speeds))
	copy(sorted, speeds)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, p10, p50, p90
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"live", s.Live,
		"deaths", s.Deaths,
		"collisions", s.Collisions,
		"degenerate_skips", s.DegenerateSkips,
		"wall_bounces", s.WallBounces,
		"consumes", s.Consumes,
		"move_kicks", s.MoveKicks,
		"speed_mean", s.SpeedMean,
		"speed_p10", s.SpeedP10,
		"speed_p50", s.SpeedP50,
		"speed_p90", s.SpeedP90,
		"kinetic_energy", s.KineticEnergy,
		"momentum_x", s.MomentumX,
		"momentum_y", s.MomentumY,
		"agent_temperature", s.AgentTemperature,
		"agent_resource", s.AgentResource,
		"agent_alive", s.AgentAlive,
	)
}
