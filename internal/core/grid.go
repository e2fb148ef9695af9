package core

// Grid stores a cubic 3D lattice of byte-sized cell states in a flat slice.
// Cells are laid out plane-major: index = (z*n+y)*n + x.
type Grid struct {
	n    int
	data []uint8
}

// NewGrid allocates a cubic grid with the given edge length.
func NewGrid(n int) *Grid {
	if n <= 0 {
		n = 1
	}
	return &Grid{n: n, data: make([]uint8, n*n*n)}
}

// Size returns the edge length of the cube.
func (g *Grid) Size() int { return g.n }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y, z).
func (g *Grid) Index(x, y, z int) int { return (z*g.n+y)*g.n + x }

// InBounds reports whether (x, y, z) lies inside the lattice.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.n && y >= 0 && y < g.n && z >= 0 && z < g.n
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y, z int) (int, int, int) {
	x = (x%g.n + g.n) % g.n
	y = (y%g.n + g.n) % g.n
	z = (z%g.n + g.n) % g.n
	return x, y, z
}

// Get returns the cell value at (x, y, z), or 0 for out-of-range coordinates.
func (g *Grid) Get(x, y, z int) uint8 {
	if !g.InBounds(x, y, z) {
		return 0
	}
	return g.data[g.Index(x, y, z)]
}

// Set writes the cell value at (x, y, z). Out-of-range writes are ignored so
// callers such as cell painting can pass unvalidated coordinates.
func (g *Grid) Set(x, y, z int, v uint8) {
	if !g.InBounds(x, y, z) {
		return
	}
	g.data[g.Index(x, y, z)] = v
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Clone returns a fully independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{n: g.n, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids have the same edge length and identical
// cell values.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.n != o.n {
		return false
	}
	for i, v := range g.data {
		if v != o.data[i] {
			return false
		}
	}
	return true
}

// Population returns the number of live (non-zero) cells.
func (g *Grid) Population() int {
	count := 0
	for _, v := range g.data {
		if v != 0 {
			count++
		}
	}
	return count
}

// Slice copies the xy-plane at depth z into dst, allocating when dst is too
// small, and returns the plane in row-major order. Out-of-range z yields an
// all-dead plane.
func (g *Grid) Slice(z int, dst []uint8) []uint8 {
	plane := g.n * g.n
	if cap(dst) < plane {
		dst = make([]uint8, plane)
	}
	dst = dst[:plane]
	if z < 0 || z >= g.n {
		for i := range dst {
			dst[i] = 0
		}
		return dst
	}
	copy(dst, g.data[z*plane:(z+1)*plane])
	return dst
}
