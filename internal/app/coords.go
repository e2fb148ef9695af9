package app

// screenToCell maps window pixel coordinates to lattice cell coordinates.
// Integer division truncates toward zero, so cursors just left of or above
// the window would otherwise land on column or row zero; negative cursors
// map to -1 instead and the bounds-safe cell write drops them.
func screenToCell(mx, my, scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	if mx < 0 || my < 0 {
		return -1, -1
	}
	return mx / scale, my / scale
}
