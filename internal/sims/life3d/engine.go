package life3d

import (
	"life3d/internal/core"
)

// Engine evaluates the 3D automaton rule over 26-cell Moore neighborhoods.
// Every grid operation is pure: inputs are never mutated and the engine
// retains no reference to grids it returns. The only internal state is the
// configuration in effect and the seedable random source.
type Engine struct {
	cfg Config
	rng *core.RNG
}

// New constructs an Engine with the provided configuration.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg, rng: core.NewRNG(1)}
}

// Reseed replaces the random source so RandomGrid becomes deterministic for
// the given seed.
func (e *Engine) Reseed(seed int64) {
	e.rng = core.NewRNG(seed)
}

// Config returns a copy of the configuration currently in effect.
func (e *Engine) Config() Config { return e.cfg }

// UpdateConfig merges the supplied fields into the current configuration.
// It affects subsequent calls only; grids already produced are untouched.
func (e *Engine) UpdateConfig(p ConfigPatch) {
	e.cfg = e.cfg.merge(p)
}

// EmptyGrid constructs a grid of the configured dimension with every cell dead.
func (e *Engine) EmptyGrid() *core.Grid {
	return core.NewGrid(e.cfg.GridSize)
}

// RandomGrid constructs a grid of the configured dimension where each cell is
// independently alive with the given probability.
func (e *Engine) RandomGrid(density float64) *core.Grid {
	g := core.NewGrid(e.cfg.GridSize)
	core.FillDensity(e.rng.Source(), g.Cells(), density)
	return g
}

// CountNeighbors sums the live cells among the 26 lattice positions adjacent
// to (x, y, z). With periodic boundaries every axis wraps toroidally; without
// them, offsets outside the lattice are skipped so surface cells see fewer
// candidates. The caller supplies in-bounds coordinates.
func (e *Engine) CountNeighbors(g *core.Grid, x, y, z int) int {
	n := g.Size()
	cells := g.Cells()
	count := 0
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				nx, ny, nz := x+dx, y+dy, z+dz
				if e.cfg.Periodic {
					nx, ny, nz = g.Wrap(nx, ny, nz)
				} else if nx < 0 || nx >= n || ny < 0 || ny >= n || nz < 0 || nz >= n {
					continue
				}
				count += int(cells[(nz*n+ny)*n+nx])
			}
		}
	}
	return count
}

// NextCellState evaluates the rule for one cell: a dead cell is born on an
// exact BirthRule neighbor count, a live cell survives inside the inclusive
// [SurvivalMin, SurvivalMax] range.
func (e *Engine) NextCellState(alive bool, neighbors int) bool {
	if alive {
		return neighbors >= e.cfg.SurvivalMin && neighbors <= e.cfg.SurvivalMax
	}
	return neighbors == e.cfg.BirthRule
}

// Step produces the next generation as a new grid. Every cell's transition is
// evaluated against the grid as it existed before the step, so no cell
// observes another cell's already-updated state. The input grid is not
// modified.
func (e *Engine) Step(g *core.Grid) *core.Grid {
	n := g.Size()
	next := core.NewGrid(n)
	cells := g.Cells()
	out := next.Cells()
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				idx := (z*n+y)*n + x
				alive := cells[idx] == 1
				if e.NextCellState(alive, e.CountNeighbors(g, x, y, z)) {
					out[idx] = 1
				}
			}
		}
	}
	return next
}
