package life3d

import (
	"math"
	"testing"
)

func TestEmptyGridIsDead(t *testing.T) {
	e := New(DefaultConfig())
	g := e.EmptyGrid()
	if got := g.Size(); got != DefaultConfig().GridSize {
		t.Fatalf("grid edge = %d, want %d", got, DefaultConfig().GridSize)
	}
	if pop := g.Population(); pop != 0 {
		t.Fatalf("empty grid population = %d, want 0", pop)
	}
}

func TestRandomGridDensityConverges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 40
	e := New(cfg)
	e.Reseed(1337)

	const density = 0.3
	const trials = 5
	total := 0
	cells := cfg.GridSize * cfg.GridSize * cfg.GridSize
	for i := 0; i < trials; i++ {
		total += e.RandomGrid(density).Population()
	}
	observed := float64(total) / float64(trials*cells)
	if math.Abs(observed-density) > 0.01 {
		t.Fatalf("observed density %.4f, want %.2f ± 0.01", observed, density)
	}
}

func TestRandomGridClampsDensity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 8
	e := New(cfg)
	e.Reseed(7)

	if pop := e.RandomGrid(-0.5).Population(); pop != 0 {
		t.Fatalf("density below 0 produced %d live cells", pop)
	}
	full := e.RandomGrid(1.5)
	if pop := full.Population(); pop != len(full.Cells()) {
		t.Fatalf("density above 1 produced %d live cells, want %d", pop, len(full.Cells()))
	}
}

func TestCountNeighborsFullNeighborhood(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 5
	e := New(cfg)
	g := e.EmptyGrid()

	// Fill the full 3x3x3 block around the center.
	for z := 1; z <= 3; z++ {
		for y := 1; y <= 3; y++ {
			for x := 1; x <= 3; x++ {
				g.Set(x, y, z, 1)
			}
		}
	}
	if n := e.CountNeighbors(g, 2, 2, 2); n != 26 {
		t.Fatalf("full neighborhood count = %d, want 26", n)
	}
}

func TestCountNeighborsBoundaryPolicies(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 5
	cfg.Periodic = true
	e := New(cfg)

	g := e.EmptyGrid()
	g.Set(0, 0, 0, 1)

	// (4,4,4) is diagonally adjacent to (0,0,0) on the torus only.
	if n := e.CountNeighbors(g, 4, 4, 4); n != 1 {
		t.Fatalf("periodic corner count = %d, want 1", n)
	}

	wrap := false
	e.UpdateConfig(ConfigPatch{Periodic: &wrap})
	if n := e.CountNeighbors(g, 4, 4, 4); n != 0 {
		t.Fatalf("clipped corner count = %d, want 0", n)
	}

	// A clipped corner cell has only 7 candidate neighbors.
	full := e.EmptyGrid()
	for i := range full.Cells() {
		full.Cells()[i] = 1
	}
	if n := e.CountNeighbors(full, 0, 0, 0); n != 7 {
		t.Fatalf("clipped corner candidates = %d, want 7", n)
	}
}

func TestNextCellState(t *testing.T) {
	cfg := DefaultConfig() // birth 4, survival 4-5
	e := New(cfg)

	if !e.NextCellState(false, cfg.BirthRule) {
		t.Fatal("dead cell with exact birth count must be born")
	}
	if e.NextCellState(false, cfg.BirthRule+1) {
		t.Fatal("birth is an exact match, not a range")
	}
	if e.NextCellState(false, cfg.BirthRule-1) {
		t.Fatal("dead cell below the birth count must stay dead")
	}
	for n := 0; n <= 26; n++ {
		want := n >= cfg.SurvivalMin && n <= cfg.SurvivalMax
		if got := e.NextCellState(true, n); got != want {
			t.Fatalf("live cell with %d neighbors: next=%v, want %v", n, got, want)
		}
	}
}

func TestStepEmptyGridStaysEmpty(t *testing.T) {
	e := New(DefaultConfig())
	empty := e.EmptyGrid()
	next := e.Step(empty)
	if !next.Equal(empty) {
		t.Fatal("stepping an empty grid must yield an empty grid")
	}
}

func TestStepUnderpopulationKillsLoneCell(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 7
	e := New(cfg)

	g := e.EmptyGrid()
	g.Set(3, 3, 3, 1)
	next := e.Step(g)
	if next.Get(3, 3, 3) != 0 {
		t.Fatal("a lone cell with 0 neighbors must die")
	}
	if pop := next.Population(); pop != 0 {
		t.Fatalf("population after stepping a lone cell = %d, want 0", pop)
	}
	// The input grid stays untouched.
	if g.Get(3, 3, 3) != 1 {
		t.Fatal("Step mutated its input grid")
	}
}

func TestStepBirthOnExactCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 7
	e := New(cfg)

	// Four live cells around an empty center give it exactly BirthRule
	// neighbors.
	g := e.EmptyGrid()
	g.Set(2, 3, 3, 1)
	g.Set(4, 3, 3, 1)
	g.Set(3, 2, 3, 1)
	g.Set(3, 4, 3, 1)

	if n := e.CountNeighbors(g, 3, 3, 3); n != cfg.BirthRule {
		t.Fatalf("setup error: center has %d neighbors, want %d", n, cfg.BirthRule)
	}
	next := e.Step(g)
	if next.Get(3, 3, 3) != 1 {
		t.Fatal("center cell with exactly BirthRule neighbors must be born")
	}
}

func TestStepOverpopulationKills(t *testing.T) {
	cfg := DefaultConfig() // survival max 5
	cfg.GridSize = 7
	e := New(cfg)

	// Live center with 6 face-adjacent live neighbors.
	g := e.EmptyGrid()
	g.Set(3, 3, 3, 1)
	g.Set(2, 3, 3, 1)
	g.Set(4, 3, 3, 1)
	g.Set(3, 2, 3, 1)
	g.Set(3, 4, 3, 1)
	g.Set(3, 3, 2, 1)
	g.Set(3, 3, 4, 1)

	if n := e.CountNeighbors(g, 3, 3, 3); n != 6 {
		t.Fatalf("setup error: center has %d neighbors, want 6", n)
	}
	next := e.Step(g)
	if next.Get(3, 3, 3) != 0 {
		t.Fatal("live center exceeding SurvivalMax must die")
	}
}

func TestStepIsSimultaneous(t *testing.T) {
	// A sequential (in-place) update would let early transitions feed later
	// neighbor counts. Run a configuration where a live pair dies out and
	// verify the result against the rule applied to the prior grid only.
	cfg := DefaultConfig()
	cfg.GridSize = 5
	cfg.Periodic = false
	e := New(cfg)

	g := e.EmptyGrid()
	g.Set(1, 1, 1, 1)
	g.Set(2, 1, 1, 1)

	prior := g.Clone()
	next := e.Step(g)
	n := g.Size()
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				alive := prior.Get(x, y, z) == 1
				want := uint8(0)
				if e.NextCellState(alive, e.CountNeighbors(prior, x, y, z)) {
					want = 1
				}
				if next.Get(x, y, z) != want {
					t.Fatalf("cell (%d,%d,%d) = %d, want %d from the prior grid",
						x, y, z, next.Get(x, y, z), want)
				}
			}
		}
	}
}

func TestUpdateConfigMergeSemantics(t *testing.T) {
	e := New(DefaultConfig())

	birth := 6
	e.UpdateConfig(ConfigPatch{BirthRule: &birth})
	cfg := e.Config()
	if cfg.BirthRule != 6 {
		t.Fatalf("BirthRule = %d, want 6", cfg.BirthRule)
	}
	if cfg.GridSize != DefaultConfig().GridSize || cfg.SurvivalMin != DefaultConfig().SurvivalMin {
		t.Fatal("unpatched fields must retain their previous values")
	}

	// The returned config is a copy: mutating it must not leak back.
	cfg.GridSize = 99
	if e.Config().GridSize == 99 {
		t.Fatal("Config() must return a decoupled copy")
	}
}

func TestReseedDeterminism(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 10
	e := New(cfg)

	e.Reseed(42)
	a := e.RandomGrid(0.25)
	e.Reseed(42)
	b := e.RandomGrid(0.25)
	if !a.Equal(b) {
		t.Fatal("same seed must reproduce the same random grid")
	}

	e.Reseed(43)
	c := e.RandomGrid(0.25)
	if a.Equal(c) {
		t.Fatal("different seeds should not reproduce the same grid")
	}
}

func TestSurvivalRangeInversionKillsEverything(t *testing.T) {
	// SurvivalMin > SurvivalMax is accepted and simply makes survival
	// impossible; nothing validates the range.
	cfg := DefaultConfig()
	cfg.GridSize = 6
	cfg.SurvivalMin = 5
	cfg.SurvivalMax = 2
	e := New(cfg)
	for n := 0; n <= 26; n++ {
		if e.NextCellState(true, n) {
			t.Fatalf("inverted survival range let a cell with %d neighbors survive", n)
		}
	}
}
