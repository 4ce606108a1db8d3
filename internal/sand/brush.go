package sand

import "sandspill/internal/core"

// MaxBrushSize bounds the brush edge length in cells.
const MaxBrushSize = 32

// Paint stamps a size x size square of particles with hue around the cell
// under the pointer. The square starts size/2 cells above and left of the
// center. Pointers outside the grid and off-grid cells are ignored.
func Paint(dst core.Spawner, cellSize, px, py int, hue core.Hue, size int) {
	if size <= 0 || hue == core.Empty {
		return
	}
	s := dst.Size()
	lat := core.NewLattice(s.W, s.H)
	cx, cy, ok := lat.CellAt(px, py, cellSize)
	if !ok {
		return
	}
	x0, y0 := cx-size/2, cy-size/2
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			dst.SpawnAt(x0+dx, y0+dy, hue)
		}
	}
}

// Brush carries the interactive painting state: stamp size, cell size used to
// map pointer coordinates, and the hue that cycles once per frame.
type Brush struct {
	Size     int
	CellSize int
	HueStep  int

	hue core.Hue
}

// NewBrush returns a brush starting at hue 1.
func NewBrush(cellSize, size, hueStep int) *Brush {
	b := &Brush{CellSize: cellSize, HueStep: hueStep, hue: 1}
	b.SetSize(size)
	return b
}

// Hue returns the hue the next stamp will use.
func (b *Brush) Hue() core.Hue { return b.hue }

// SetHue replaces the current hue, folding it into [1, 360].
func (b *Brush) SetHue(deg int) { b.hue = core.NormalizeHue(deg) }

// SetSize changes the stamp size, clamped to [1, MaxBrushSize].
func (b *Brush) SetSize(size int) {
	if size < 1 {
		size = 1
	}
	if size > MaxBrushSize {
		size = MaxBrushSize
	}
	b.Size = size
}

// Paint stamps the current hue at the pointer position.
func (b *Brush) Paint(dst core.Spawner, px, py int) {
	Paint(dst, b.CellSize, px, py, b.hue, b.Size)
}

// Advance moves the hue by HueStep, cycling 1 -> 360 -> 1.
func (b *Brush) Advance() {
	b.hue = core.NormalizeHue(int(b.hue) + b.HueStep)
}
