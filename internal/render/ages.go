package render

import "life3d/internal/core"

// AgeField carries presentation-only per-cell age state. It is advanced by
// diffing successive logic grids, so the engine's grids stay free of any
// animation bookkeeping. Age 0 is dead; a newly born cell starts at 1 and
// survivors age up to the cap.
type AgeField struct {
	n    int
	ages []uint8
	cap  uint8
}

// NewAgeField allocates an age field for a cubic lattice of the given edge
// length. The cap bounds the stored age so palettes can index by it.
func NewAgeField(n int, ageCap uint8) *AgeField {
	if n <= 0 {
		n = 1
	}
	if ageCap == 0 {
		ageCap = 1
	}
	return &AgeField{n: n, ages: make([]uint8, n*n*n), cap: ageCap}
}

// Ages exposes the backing slice, indexed like the grid's cells.
func (f *AgeField) Ages() []uint8 { return f.ages }

// Cap returns the maximum stored age.
func (f *AgeField) Cap() uint8 { return f.cap }

// Reset clears all ages, seeding live cells of the given grid at age 1.
func (f *AgeField) Reset(g *core.Grid) {
	if g == nil || len(g.Cells()) != len(f.ages) {
		f.resize(g)
	}
	for i := range f.ages {
		f.ages[i] = 0
	}
	if g == nil {
		return
	}
	for i, v := range g.Cells() {
		if v != 0 {
			f.ages[i] = 1
		}
	}
}

// Advance updates ages from one generation to the next: births start at 1,
// survivors increment up to the cap, deaths drop to 0. The grids themselves
// are never written.
func (f *AgeField) Advance(next *core.Grid) {
	if next == nil {
		return
	}
	if len(next.Cells()) != len(f.ages) {
		f.resize(next)
		f.Reset(next)
		return
	}
	for i, v := range next.Cells() {
		switch {
		case v == 0:
			f.ages[i] = 0
		case f.ages[i] == 0:
			f.ages[i] = 1
		case f.ages[i] < f.cap:
			f.ages[i]++
		}
	}
}

// Sync reconciles ages with a grid edited outside of stepping (cell
// painting): painted-in cells start at age 1, painted-out cells drop to 0,
// and everything else keeps its age.
func (f *AgeField) Sync(g *core.Grid) {
	if g == nil {
		return
	}
	if len(g.Cells()) != len(f.ages) {
		f.resize(g)
		f.Reset(g)
		return
	}
	for i, v := range g.Cells() {
		switch {
		case v == 0:
			f.ages[i] = 0
		case f.ages[i] == 0:
			f.ages[i] = 1
		}
	}
}

// SliceAges copies the xy-plane of ages at depth z into dst in row-major
// order, allocating when dst is too small.
func (f *AgeField) SliceAges(z int, dst []uint8) []uint8 {
	plane := f.n * f.n
	if cap(dst) < plane {
		dst = make([]uint8, plane)
	}
	dst = dst[:plane]
	if z < 0 || z >= f.n {
		for i := range dst {
			dst[i] = 0
		}
		return dst
	}
	copy(dst, f.ages[z*plane:(z+1)*plane])
	return dst
}

func (f *AgeField) resize(g *core.Grid) {
	if g == nil {
		return
	}
	f.n = g.Size()
	f.ages = make([]uint8, len(g.Cells()))
}
