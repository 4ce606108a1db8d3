//go:build ebiten

package ui

import (
	"sandspill/internal/core"
	"sandspill/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay outlines the cells the brush would stamp under the cursor, drawn in
// the hue the next stamp will use. B toggles it.
type Overlay struct {
	brush *sand.Brush
	size  core.Size
	show  bool
}

// NewOverlay constructs a visible brush preview for a grid of the given size.
func NewOverlay(brush *sand.Brush, size core.Size) *Overlay {
	return &Overlay{brush: brush, size: size, show: true}
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.show = !o.show
	}
}

// Draw renders the preview outline onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	mx, my := ebiten.CursorPosition()
	r, ok := BrushRect(o.size, o.brush.CellSize, mx, my, o.brush.Size)
	if !ok || r.Empty() {
		return
	}
	c := sand.HueToRGB(o.brush.Hue())
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, c, false)
}
