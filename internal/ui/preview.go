package ui

import (
	"image"

	"sandspill/internal/core"
)

// BrushRect returns the on-screen pixel rectangle a brush stamp of brushSize
// cells would cover for a pointer at (px, py), clipped to the grid. It reports
// false when the pointer is off the grid.
func BrushRect(size core.Size, cellSize, px, py, brushSize int) (image.Rectangle, bool) {
	if cellSize <= 0 || brushSize <= 0 {
		return image.Rectangle{}, false
	}
	lat := core.NewLattice(size.W, size.H)
	cx, cy, ok := lat.CellAt(px, py, cellSize)
	if !ok {
		return image.Rectangle{}, false
	}
	x0, y0 := cx-brushSize/2, cy-brushSize/2
	r := image.Rect(x0, y0, x0+brushSize, y0+brushSize).Intersect(image.Rect(0, 0, size.W, size.H))
	return image.Rect(r.Min.X*cellSize, r.Min.Y*cellSize, r.Max.X*cellSize, r.Max.Y*cellSize), true
}
