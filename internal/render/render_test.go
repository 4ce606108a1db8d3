package render

import (
	"image/color"
	"testing"

	"sandspill/internal/core"
	"sandspill/internal/sand"
)

type recordingSurface struct {
	clears   int
	rects    [][4]int
	colors   []color.RGBA
	presents int
}

func (s *recordingSurface) Clear(color.RGBA) { s.clears++ }

func (s *recordingSurface) FillRect(x, y, w, h int, c color.RGBA) {
	s.rects = append(s.rects, [4]int{x, y, w, h})
	s.colors = append(s.colors, c)
}

func (s *recordingSurface) Present() { s.presents++ }

func TestGridRendererEmitsOneRectPerParticle(t *testing.T) {
	g := sand.New(4, 6, 0)
	g.SpawnAt(0, 0, 120)
	g.SpawnAt(5, 3, 240)

	surf := &recordingSurface{}
	r := NewGridRenderer(10)
	if n := r.Draw(surf, g.Size(), g.Cells()); n != 2 {
		t.Fatalf("expected 2 rects, got %d", n)
	}
	if surf.clears != 1 || surf.presents != 1 {
		t.Fatalf("expected one clear and one present, got %d/%d", surf.clears, surf.presents)
	}
	if surf.rects[0] != [4]int{0, 0, 10, 10} || surf.rects[1] != [4]int{50, 30, 10, 10} {
		t.Fatalf("unexpected rect geometry %v", surf.rects)
	}
	if surf.colors[0] != sand.HueToRGB(120) || surf.colors[1] != sand.HueToRGB(240) {
		t.Fatalf("unexpected colors %v", surf.colors)
	}
}

func TestGridRendererSkipsMismatchedCells(t *testing.T) {
	surf := &recordingSurface{}
	r := NewGridRenderer(4)
	if n := r.Draw(surf, core.Size{W: 3, H: 3}, make([]core.Hue, 4)); n != 0 {
		t.Fatalf("mismatched buffer should draw nothing, drew %d", n)
	}
	if surf.presents != 1 {
		t.Fatal("frame should still be presented")
	}
}

func TestImageSurfaceFillClips(t *testing.T) {
	s := NewImageSurface(20, 10)
	s.Clear(color.RGBA{A: 255})
	red := color.RGBA{R: 255, A: 255}
	s.FillRect(15, 5, 10, 10, red)
	s.FillRect(-30, -30, 5, 5, red)
	s.Present()

	img := s.Image()
	if got := img.RGBAAt(19, 9); got != red {
		t.Fatalf("expected clipped fill at (19,9), got %+v", got)
	}
	if got := img.RGBAAt(14, 5); got != (color.RGBA{A: 255}) {
		t.Fatalf("fill leaked left of rect: %+v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{A: 255}) {
		t.Fatalf("off-image rect must not draw: %+v", got)
	}
	if s.Frames() != 1 {
		t.Fatalf("expected 1 frame, got %d", s.Frames())
	}
}
