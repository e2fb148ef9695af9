package view

import (
	"fmt"
	"time"

	"life3d/internal/sims/life3d"

	"github.com/logrusorgru/aurora"
)

// ConsoleOut runs a world to completion in batch mode, printing progress and
// a summary to stdout.
type ConsoleOut struct {
	world     *life3d.World
	startTime time.Time
}

// NewConsoleOut wraps a world for batch reporting.
func NewConsoleOut(w *life3d.World) *ConsoleOut {
	return &ConsoleOut{world: w}
}

// PrintConfig prints the running configuration.
func (c *ConsoleOut) PrintConfig(interval time.Duration, maxSteps int) {
	cfg := c.world.Engine().Config()
	boundaries := "clipped"
	if cfg.Periodic {
		boundaries = "periodic"
	}
	fmt.Println("Running configuration:")
	fmt.Printf("  Lattice: %v cells\n", aurora.Cyan(fmt.Sprintf("%d x %d x %d", cfg.GridSize, cfg.GridSize, cfg.GridSize)))
	fmt.Printf("  Rule: birth %v, survival %v, %v boundaries\n",
		aurora.Cyan(cfg.BirthRule),
		aurora.Cyan(fmt.Sprintf("%d-%d", cfg.SurvivalMin, cfg.SurvivalMax)),
		aurora.Cyan(boundaries))
	fmt.Printf("  Interval: %v\n", interval)
	fmt.Printf("  Max iterations: %v steps\n", maxSteps)
}

// Run steps the world until extinction, stagnation or the step limit,
// sleeping interval between generations. It returns the finish reason.
func (c *ConsoleOut) Run(interval time.Duration, maxSteps int) string {
	c.startTime = time.Now()
	fmt.Println("\nSimulation started...")

	reason := "step limit"
	for step := 1; maxSteps <= 0 || step <= maxSteps; step++ {
		c.world.Step()
		if step%10 == 0 {
			fmt.Printf("  Iterations done: %v (population %v)\n",
				step, aurora.Green(c.world.Grid().Population()))
		}
		if c.world.Grid().Population() == 0 {
			reason = "extinct"
			break
		}
		if !c.world.Changed() {
			reason = "frozen"
			break
		}
		if interval > 0 {
			time.Sleep(interval)
		}
	}

	totalTime := time.Since(c.startTime).Round(time.Millisecond)
	fmt.Println("\nFinished:")
	fmt.Printf("  Reason: %v\n", aurora.Yellow(reason))
	fmt.Printf("  Last iteration: %v\n", c.world.Generation())
	fmt.Printf("  Live cells: %v\n", c.world.Grid().Population())
	fmt.Printf("  Total time: %v\n", totalTime)
	return reason
}
