package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/achristensen56/principlesofsystemsneuro/config"
	"github.com/achristensen56/principlesofsystemsneuro/sim"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = run until the agent dies)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	w, err := sim.New(sim.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
	})
	if err != nil {
		slog.Error("failed to build world", "error", err)
		os.Exit(1)
	}
	defer w.Close()

	slog.Info("starting simulation",
		"seed", rngSeed,
		"particles", w.LiveCount(),
		"max_ticks", *maxTicks,
	)

	for {
		w.Tick()

		if *maxTicks > 0 && int(w.TickCount()) >= *maxTicks {
			slog.Info("max ticks reached", "tick", w.TickCount())
			return
		}
		if *maxTicks == 0 && !w.AgentAlive() {
			slog.Info("agent died", "tick", w.TickCount())
			return
		}
	}
}
