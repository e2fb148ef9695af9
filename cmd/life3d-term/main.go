package main

import (
	"time"

	"life3d/internal/sims/life3d"
	"life3d/internal/view"

	"github.com/integrii/flaggy"
)

type envOptions struct {
	interactive bool
	seed        int64
	density     float64
	interval    time.Duration
	maxSteps    int
}

func main() {
	cfg := life3d.DefaultConfig()
	eo := envOptions{
		interactive: false,
		seed:        42,
		density:     0.2,
		interval:    150 * time.Millisecond,
		maxSteps:    1000,
	}

	flaggy.SetName("life3d-term")
	flaggy.SetDescription("terminal frontend for the 3D cellular automaton")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.GridSize, "x", "size", "Edge length of the cubic lattice")
	flaggy.Int(&cfg.BirthRule, "b", "birth", "Exact neighbor count for birth")
	flaggy.Int(&cfg.SurvivalMin, "l", "smin", "Survival range lower bound")
	flaggy.Int(&cfg.SurvivalMax, "u", "smax", "Survival range upper bound")
	flaggy.Bool(&cfg.Periodic, "w", "wrap", "Periodic (toroidal) boundaries")
	flaggy.Float64(&eo.density, "d", "density", "Live-cell probability for the initial grid")
	flaggy.Int64(&eo.seed, "e", "seed", "Random seed for the initial grid")
	flaggy.Duration(&eo.interval, "i", "interval", "Simulation speed (interval between steps), for example 150ms")
	flaggy.Int(&eo.maxSteps, "s", "maxSteps", "Limit the simulation to maxSteps")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Parse()

	if cfg.GridSize <= 0 {
		cfg.GridSize = life3d.DefaultConfig().GridSize
	}

	world := life3d.NewWorld(cfg, eo.density)
	world.Reset(eo.seed)

	if eo.interactive {
		runner := view.NewRunner(world, eo.interval, eo.maxSteps, nil)
		ui := view.NewTermUI(runner, eo.seed)
		runner.SetOnChange(ui.Refresh)
		ui.Start()
		runner.Stop()
		return
	}

	out := view.NewConsoleOut(world)
	out.PrintConfig(eo.interval, eo.maxSteps)
	out.Run(eo.interval, eo.maxSteps)
}
