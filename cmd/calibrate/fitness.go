package main

import (
	"log/slog"

	"github.com/achristensen56/principlesofsystemsneuro/config"
	"github.com/achristensen56/principlesofsystemsneuro/sim"
)

// FitnessEvaluator scores a parameter vector by running headless
// simulations and measuring how long the agent stays alive.
type FitnessEvaluator struct {
	params   *ParamVector
	maxTicks int64
	seeds    []int64
	baseCfg  *config.Config

	lastSurvival float64
}

// NewFitnessEvaluator creates an evaluator over the given seeds.
func NewFitnessEvaluator(params *ParamVector, maxTicks int64, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:   params,
		maxTicks: maxTicks,
		seeds:    seeds,
		baseCfg:  baseCfg,
	}
}

// Evaluate runs one simulation per seed with the given raw parameter
// values and returns the negated mean survival ticks, so longer lives
// minimize.
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	cfg := *fe.baseCfg
	fe.params.ApplyToConfig(&cfg, raw)

	var totalTicks float64
	for _, seed := range fe.seeds {
		totalTicks += float64(fe.runOne(seed, &cfg))
	}
	fe.lastSurvival = totalTicks / float64(len(fe.seeds))

	return -fe.lastSurvival
}

// runOne runs a single headless simulation until the agent dies or the
// tick cap is reached, returning the survival duration in ticks.
func (fe *FitnessEvaluator) runOne(seed int64, cfg *config.Config) int64 {
	w, err := sim.New(sim.Options{
		Seed:   seed,
		Config: cfg,
	})
	if err != nil {
		slog.Error("failed to build evaluation world", "seed", seed, "error", err)
		return 0
	}
	defer w.Close()

	for w.AgentAlive() && w.TickCount() < fe.maxTicks {
		w.Tick()
	}
	return w.TickCount()
}

// LastSurvival returns the mean survival ticks of the most recent
// evaluation.
func (fe *FitnessEvaluator) LastSurvival() float64 {
	return fe.lastSurvival
}
