package render

import (
	"image/color"

	"sandspill/internal/core"
	"sandspill/internal/sand"
)

// Surface is the drawing target a frontend hands to the renderer. It only
// receives rectangle geometry and colors.
type Surface interface {
	Clear(c color.RGBA)
	FillRect(x, y, w, h int, c color.RGBA)
	Present()
}

// Background is the default clear color.
var Background = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// GridRenderer draws hue cells as filled squares of CellSize pixels.
type GridRenderer struct {
	CellSize   int
	Background color.RGBA
}

// NewGridRenderer returns a renderer with the default background.
func NewGridRenderer(cellSize int) *GridRenderer {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &GridRenderer{CellSize: cellSize, Background: Background}
}

// Draw clears s, fills one rectangle per occupied cell and presents the frame.
// It returns the number of rectangles drawn.
func (r *GridRenderer) Draw(s Surface, size core.Size, cells []core.Hue) int {
	s.Clear(r.Background)
	lat := core.NewLattice(size.W, size.H)
	n := 0
	if len(cells) == lat.Len() {
		for i, h := range cells {
			if h == core.Empty {
				continue
			}
			x, y := lat.Coords(i)
			s.FillRect(x*r.CellSize, y*r.CellSize, r.CellSize, r.CellSize, sand.HueToRGB(h))
			n++
		}
	}
	s.Present()
	return n
}
