package sim

import (
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/achristensen56/principlesofsystemsneuro/systems"
	"github.com/achristensen56/principlesofsystemsneuro/telemetry"
)

// Tick advances the world by one fixed time step. The order is fixed:
// reap tombstoned particles, integrate and reflect every survivor,
// apply field forcing and the agent policy, then run one full
// collision pass over ascending pairs.
func (w *World) Tick() {
	w.reapDead()
	w.rebuildOrder()

	for _, e := range w.order {
		pos := w.posMap.Get(e)
		vel := w.velMap.Get(e)
		body := w.bodyMap.Get(e)

		systems.Advance(pos, vel, body, w.dt)
		bounces := systems.Reflect(pos, vel, body, w.cfg.Physics.Restitution)
		w.collector.RecordWallBounces(bounces)

		homeo := w.homeoMap.Get(e)
		if w.scalarField != nil {
			systems.ApplyScalar(w.scalarField, pos, vel, homeo, w.dt)
		}
		if w.vectorField != nil {
			systems.ApplyVector(w.vectorField, pos, vel, w.dt)
		}

		if homeo != nil {
			tomb := w.tombMap.Get(e)
			switch systems.StepHomeostat(homeo, vel, tomb, w.rng, w.dt) {
			case systems.ActionConsume:
				w.collector.RecordConsume()
			case systems.ActionMove:
				w.collector.RecordMoveKick()
			}
			w.vitals.Append(w.tick, homeo.Temperature, homeo.Resource)
		}
	}

	w.collisionPass()

	w.tick++
	if w.collector.ShouldFlush(w.tick) {
		w.flushStats()
	}
}

// reapDead removes entities whose tombstone was set on a previous tick.
// Removal happens in a second pass: mutating the world while a query is
// open is not allowed.
func (w *World) reapDead() {
	var dead []ecs.Entity

	query := w.filter.Query()
	for query.Next() {
		_, _, _, tomb := query.Get()
		if tomb.Dead {
			dead = append(dead, query.Entity())
		}
	}

	for _, e := range dead {
		if w.hasAgent && e == w.agent {
			w.hasAgent = false
		}
		w.ecs.RemoveEntity(e)
		w.liveCount--
		w.collector.RecordDeath()
	}
}

// rebuildOrder refreshes the live-entity slice in query order, which is
// stable for a fixed creation history and drives the deterministic
// pairwise scan.
func (w *World) rebuildOrder() {
	w.order = w.order[:0]
	query := w.filter.Query()
	for query.Next() {
		w.order = append(w.order, query.Entity())
	}
}

// collisionPass detects and resolves every overlapping pair exactly
// once, in ascending (i, j) order with sequential velocity updates.
// The broad-phase grid, when enabled, yields the same pair sequence.
func (w *World) collisionPass() {
	if w.grid != nil {
		w.collisionPassGrid()
		return
	}
	n := len(w.order)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w.resolvePair(w.order[i], w.order[j])
		}
	}
}

func (w *World) collisionPassGrid() {
	w.grid.Clear()
	for i, e := range w.order {
		pos := w.posMap.Get(e)
		w.grid.Insert(i, pos.X, pos.Y)
	}
	w.pairBuf = w.grid.CandidatePairs(w.pairBuf[:0])
	for _, p := range w.pairBuf {
		w.resolvePair(w.order[p[0]], w.order[p[1]])
	}
}

func (w *World) resolvePair(e1, e2 ecs.Entity) {
	p1, p2 := w.posMap.Get(e1), w.posMap.Get(e2)
	b1, b2 := w.bodyMap.Get(e1), w.bodyMap.Get(e2)
	if !systems.Overlaps(p1, p2, b1, b2) {
		return
	}

	v1, v2 := w.velMap.Get(e1), w.velMap.Get(e2)
	if systems.ResolveElastic(p1, p2, v1, v2, b1, b2) {
		w.collector.RecordCollision()
	} else {
		w.collector.RecordDegenerateSkip()
	}
}

// flushStats samples the population and emits one telemetry window.
func (w *World) flushStats() {
	sample := telemetry.Sample{}

	for _, e := range w.order {
		vel := w.velMap.Get(e)
		body := w.bodyMap.Get(e)
		if vel == nil || body == nil {
			continue
		}
		speed := math.Hypot(vel.X, vel.Y)
		sample.Speeds = append(sample.Speeds, speed)
		sample.KineticEnergy += 0.5 * body.Mass * speed * speed
		sample.MomentumX += body.Mass * vel.X
		sample.MomentumY += body.Mass * vel.Y
	}

	if h, ok := w.AgentState(); ok {
		sample.AgentTemperature = h.Temperature
		sample.AgentResource = h.Resource
		sample.AgentAlive = w.AgentAlive()
	}

	stats := w.collector.Flush(w.tick, w.liveCount, sample)
	if w.logStats {
		stats.LogStats()
	}
	if err := w.output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
}

// ParticleState is a read-only snapshot of one particle.
type ParticleState struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Dead   bool
	Agent  bool
}

// Snapshot returns the current state of every live particle in scan
// order.
func (w *World) Snapshot() []ParticleState {
	var out []ParticleState
	query := w.filter.Query()
	for query.Next() {
		pos, vel, body, tomb := query.Get()
		out = append(out, ParticleState{
			X: pos.X, Y: pos.Y,
			VX: vel.X, VY: vel.Y,
			Radius: body.Radius,
			Dead:   tomb.Dead,
			Agent:  w.homeoMap.Get(query.Entity()) != nil,
		})
	}
	return out
}
