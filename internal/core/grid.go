package core

// Lattice maps between linear row-major indices and (x, y) cell coordinates.
// All cell identity that crosses a function boundary goes through it.
type Lattice struct {
	W, H int
}

// NewLattice returns a lattice with the given dimensions, clamped to at least 1x1.
func NewLattice(w, h int) Lattice {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Lattice{W: w, H: h}
}

// Len returns the number of cells.
func (l Lattice) Len() int { return l.W * l.H }

// Contains reports whether (x, y) addresses a cell.
func (l Lattice) Contains(x, y int) bool {
	return x >= 0 && x < l.W && y >= 0 && y < l.H
}

// Index returns the linear slice index for coordinates (x, y). Callers must
// check Contains first.
func (l Lattice) Index(x, y int) int { return y*l.W + x }

// Coords returns the (x, y) coordinates of a linear index.
func (l Lattice) Coords(i int) (int, int) { return i % l.W, i / l.W }

// Size returns the lattice dimensions.
func (l Lattice) Size() Size { return Size{W: l.W, H: l.H} }

// CellAt converts a continuous pointer position into cell coordinates using a
// fixed cell size. ok is false when the position falls outside the lattice.
func (l Lattice) CellAt(px, py, cellSize int) (x, y int, ok bool) {
	if cellSize <= 0 {
		cellSize = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/cellSize, py/cellSize
	if !l.Contains(x, y) {
		return 0, 0, false
	}
	return x, y, true
}
