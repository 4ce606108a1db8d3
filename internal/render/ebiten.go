//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws onto an ebiten screen image. Ebiten presents the frame
// itself once Draw returns, so Present is a no-op.
type EbitenSurface struct {
	Screen *ebiten.Image
}

// Clear fills the screen with c.
func (s EbitenSurface) Clear(c color.RGBA) {
	s.Screen.Fill(c)
}

// FillRect draws an axis-aligned filled rectangle.
func (s EbitenSurface) FillRect(x, y, w, h int, c color.RGBA) {
	vector.DrawFilledRect(s.Screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

// Present is a no-op.
func (s EbitenSurface) Present() {}
