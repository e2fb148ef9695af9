package life3d

import (
	"fmt"
	"strconv"

	"life3d/internal/core"
)

// World holds the mutable simulation state the frontends drive: the current
// grid, the generation counter and the engine that produces the next
// generation. The engine itself stays pure; all bookkeeping lives here.
type World struct {
	engine     *Engine
	grid       *core.Grid
	generation int
	density    float64
	changed    bool
}

// NewWorld constructs a World around a fresh engine with the given config.
// Density is the live-cell probability used when the world is randomized.
func NewWorld(cfg Config, density float64) *World {
	e := New(cfg)
	return &World{engine: e, grid: e.EmptyGrid(), density: density, changed: true}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "life3d" }

// Engine exposes the underlying rule evaluator.
func (w *World) Engine() *Engine { return w.engine }

// Grid returns the current generation's grid. Callers treat it as read-only;
// painting goes through SetCell.
func (w *World) Grid() *core.Grid { return w.grid }

// Generation returns how many steps have been applied since the last reset.
func (w *World) Generation() int { return w.generation }

// Changed reports whether the most recent Step altered the grid. A false
// value means the pattern has frozen (still lifes only).
func (w *World) Changed() bool { return w.changed }

// Reset randomizes the grid using the provided seed and clears the counters.
func (w *World) Reset(seed int64) {
	w.engine.Reseed(seed)
	w.grid = w.engine.RandomGrid(w.density)
	w.generation = 0
	w.changed = true
}

// Clear kills every cell and resets the generation counter.
func (w *World) Clear() {
	w.grid = w.engine.EmptyGrid()
	w.generation = 0
	w.changed = true
}

// Step advances the world by one generation.
func (w *World) Step() {
	next := w.engine.Step(w.grid)
	w.changed = !next.Equal(w.grid)
	w.grid = next
	w.generation++
}

// SetCell writes a cell value at arbitrary coordinates; out-of-range
// coordinates are ignored, so UI painting needs no pre-validation.
func (w *World) SetCell(x, y, z int, v uint8) {
	w.grid.Set(x, y, z, v)
}

// ToggleCell inverts the cell under a UI cursor, ignoring out-of-range hits.
func (w *World) ToggleCell(x, y, z int) {
	if w.grid.Get(x, y, z) == 0 {
		w.grid.Set(x, y, z, 1)
	} else {
		w.grid.Set(x, y, z, 0)
	}
}

// UpdateConfig forwards a partial configuration change to the engine. When
// the lattice dimension changes the current grid is rebuilt empty, since
// grids of another size are undefined under the new configuration.
func (w *World) UpdateConfig(p ConfigPatch) {
	before := w.engine.Config().GridSize
	w.engine.UpdateConfig(p)
	if w.engine.Config().GridSize != before {
		w.Clear()
	}
}

// Parameters publishes the rule and lattice state for the status panels.
func (w *World) Parameters() core.ParameterSnapshot {
	cfg := w.engine.Config()
	boundaries := "clipped"
	if cfg.Periodic {
		boundaries = "periodic"
	}
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Rule",
				Params: []core.Parameter{
					{Key: "birth", Label: "Birth", Value: fmt.Sprintf("%d", cfg.BirthRule)},
					{Key: "survival", Label: "Survival", Value: fmt.Sprintf("%d-%d", cfg.SurvivalMin, cfg.SurvivalMax)},
					{Key: "boundaries", Label: "Boundaries", Value: boundaries},
				},
			},
			{
				Name: "Lattice",
				Params: []core.Parameter{
					{Key: "size", Label: "Size", Value: fmt.Sprintf("%d³", cfg.GridSize)},
					{Key: "generation", Label: "Generation", Value: fmt.Sprintf("%d", w.generation)},
					{Key: "population", Label: "Population", Value: fmt.Sprintf("%d", w.grid.Population())},
				},
			},
		},
	}
}

func init() {
	core.Register("life3d", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		density := 0.2
		if v, ok := cfg["density"]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				density = parsed
			}
		}
		return NewWorld(c, density)
	})
}
