package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const block = '█'

// shadeAmount is how far the right column of each cell is blended toward
// black in Lab space.
const shadeAmount = 0.15

// Surface renders grid rectangles as colored block glyphs. Coordinates are in
// grid cells, so sessions driving it use a cell size of 1.
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Clear paints every terminal cell with c.
func (s *Surface) Clear(c color.RGBA) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(rgb(c)))
}

// FillRect draws a w x h block of cells starting at cell (x, y). The last
// column of every cell is drawn slightly darker so neighbouring particles of
// close hue stay distinct. Cells outside the terminal are dropped by the screen.
func (s *Surface) FillRect(x, y, w, h int, c color.RGBA) {
	style := tcell.StyleDefault.Foreground(rgb(c))
	shaded := tcell.StyleDefault.Foreground(rgb(Shade(c)))
	for row := y; row < y+h; row++ {
		for col := x * ColumnsPerCell; col < (x+w)*ColumnsPerCell; col++ {
			st := style
			if col%ColumnsPerCell == ColumnsPerCell-1 {
				st = shaded
			}
			s.screen.SetContent(col, row, block, nil, st)
		}
	}
}

// Present flushes the frame to the terminal.
func (s *Surface) Present() {
	s.screen.Show()
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Shade returns c blended toward black by shadeAmount.
func Shade(c color.RGBA) color.RGBA {
	base, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	r, g, b := base.BlendLab(colorful.Color{}, shadeAmount).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}
