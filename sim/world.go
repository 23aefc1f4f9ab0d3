// Package sim owns the particle world: construction, per-tick
// orchestration, and the read-only state it exposes to callers.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/achristensen56/principlesofsystemsneuro/components"
	"github.com/achristensen56/principlesofsystemsneuro/config"
	"github.com/achristensen56/principlesofsystemsneuro/field"
	"github.com/achristensen56/principlesofsystemsneuro/systems"
	"github.com/achristensen56/principlesofsystemsneuro/telemetry"
)

// Options configures world construction.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64 // 0 = use config value
	OutputDir      string
	Config         *config.Config // nil = use config.Cfg()
}

// World holds the complete simulation state.
type World struct {
	ecs *ecs.World
	cfg *config.Config
	rng *rand.Rand
	dt  float64

	particleMapper *ecs.Map4[components.Position, components.Velocity, components.Body, components.Tombstone]
	agentMapper    *ecs.Map5[components.Position, components.Velocity, components.Body, components.Tombstone, components.Homeostat]
	filter         *ecs.Filter4[components.Position, components.Velocity, components.Body, components.Tombstone]

	// Individual component mappers for pairwise lookups
	posMap   *ecs.Map1[components.Position]
	velMap   *ecs.Map1[components.Velocity]
	bodyMap  *ecs.Map1[components.Body]
	tombMap  *ecs.Map1[components.Tombstone]
	homeoMap *ecs.Map1[components.Homeostat]

	// External field, at most one kind active
	scalarField field.Scalar
	vectorField field.Vector

	// Optional broad-phase index for the overlap scan
	grid    *systems.SpatialGrid
	pairBuf [][2]int

	// Live entities in deterministic query order, rebuilt each tick
	order []ecs.Entity

	collector *telemetry.Collector
	vitals    *telemetry.VitalsLog
	output    *telemetry.OutputManager
	logStats  bool

	agent    ecs.Entity
	hasAgent bool

	tick      int64
	liveCount int
}

// New creates a world from the given options. Configuration problems
// (invalid radii, infeasible placement) are reported here, before any
// tick runs.
func New(opts Options) (*World, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	w := &World{
		ecs: world,
		cfg: cfg,
		rng: rand.New(rand.NewSource(opts.Seed)),
		dt:  cfg.Physics.DT,

		particleMapper: ecs.NewMap4[components.Position, components.Velocity, components.Body, components.Tombstone](world),
		agentMapper:    ecs.NewMap5[components.Position, components.Velocity, components.Body, components.Tombstone, components.Homeostat](world),
		filter:         ecs.NewFilter4[components.Position, components.Velocity, components.Body, components.Tombstone](world),

		posMap:   ecs.NewMap1[components.Position](world),
		velMap:   ecs.NewMap1[components.Velocity](world),
		bodyMap:  ecs.NewMap1[components.Body](world),
		tombMap:  ecs.NewMap1[components.Tombstone](world),
		homeoMap: ecs.NewMap1[components.Homeostat](world),

		vitals:   telemetry.NewVitalsLog(),
		logStats: opts.LogStats,
	}

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}
	w.collector = telemetry.NewCollector(statsWindow, w.dt)

	if err := w.initField(opts.Seed); err != nil {
		return nil, err
	}

	if cfg.Physics.Broadphase {
		cellSize := cfg.Physics.GridCellSize
		if cellSize < 2*cfg.MaxRadius() {
			return nil, fmt.Errorf("sim: broad-phase cell size %g is smaller than the largest particle diameter %g",
				cellSize, 2*cfg.MaxRadius())
		}
		w.grid = systems.NewSpatialGrid(cellSize)
	}

	if err := w.spawnInitialPopulation(); err != nil {
		return nil, err
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	w.output = om
	if err := w.output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	return w, nil
}

// initField builds the configured external field. The field generator
// gets its own RNG stream derived from the seed so field structure and
// particle placement stay independently reproducible.
func (w *World) initField(seed int64) error {
	fc := w.cfg.Field
	opts := field.BesselOptions{
		GridSize:    fc.GridSize,
		LengthScale: fc.LengthScale,
		Variance:    fc.Variance,
		Modes:       fc.Modes,
	}

	switch fc.Kind {
	case "", "none":
	case "scalar":
		w.scalarField = field.NewBesselField(seed+1, opts)
	case "vector":
		w.vectorField = field.NewBesselVectorField(seed+1, opts)
	case "simplex":
		w.scalarField = field.NewSimplexField(seed+1, opts)
	default:
		return fmt.Errorf("sim: unknown field kind %q", fc.Kind)
	}
	return nil
}

// spawnInitialPopulation places the plain particles by rejection
// sampling and then constructs the distinguished agent.
func (w *World) spawnInitialPopulation() error {
	pc := w.cfg.Particles

	radii := pc.Radii
	if len(radii) == 0 {
		radii = systems.UniformRadii(pc.Count, pc.Radius)
	}

	placed, err := systems.PlaceParticles(w.rng, radii, w.cfg.Placement.MaxAttempts)
	if err != nil {
		return err
	}

	for _, p := range placed {
		pos := components.Position{X: p.X, Y: p.Y}
		vel := components.Velocity{X: p.VX, Y: p.VY}
		body := components.NewBody(p.Radius)
		tomb := components.Tombstone{}
		w.particleMapper.NewEntity(&pos, &vel, &body, &tomb)
		w.liveCount++
	}

	ac := w.cfg.Agent
	if ac.Enabled {
		pos := components.Position{X: ac.X, Y: ac.Y}
		vel := components.Velocity{X: ac.VX, Y: ac.VY}
		body := components.NewBody(ac.Radius)
		tomb := components.Tombstone{}
		homeo := components.Homeostat{
			Resource:       ac.Resource,
			Temperature:    ac.Temperature,
			SetPoint:       ac.SetPoint,
			Margin:         ac.Margin,
			Boost:          ac.Boost,
			MoveCost:       ac.MoveCost,
			MinTemperature: ac.MinTemperature,
			MaxTemperature: ac.MaxTemperature,
		}
		w.agent = w.agentMapper.NewEntity(&pos, &vel, &body, &tomb, &homeo)
		w.hasAgent = true
		w.liveCount++
	}

	return nil
}

// Tick returns the current tick count.
func (w *World) TickCount() int64 { return w.tick }

// LiveCount returns the number of particles not yet reaped.
func (w *World) LiveCount() int { return w.liveCount }

// AgentAlive reports whether the distinguished agent exists and has not
// been tombstoned.
func (w *World) AgentAlive() bool {
	if !w.hasAgent {
		return false
	}
	tomb := w.tombMap.Get(w.agent)
	return tomb != nil && !tomb.Dead
}

// AgentState returns a copy of the agent's homeostat, including its
// vitals logs. The second return is false once the agent has been
// reaped or was never enabled.
func (w *World) AgentState() (components.Homeostat, bool) {
	if !w.hasAgent {
		return components.Homeostat{}, false
	}
	h := w.homeoMap.Get(w.agent)
	if h == nil {
		return components.Homeostat{}, false
	}
	return *h, true
}

// Vitals returns the per-tick agent vitals history. Valid after death.
func (w *World) Vitals() *telemetry.VitalsLog { return w.vitals }

// Close flushes output files.
func (w *World) Close() error {
	if err := w.output.WriteVitals(w.vitals); err != nil {
		return err
	}
	return w.output.Close()
}
