package render

import (
	"image"
	"image/color"
)

// ImageSurface draws into an in-memory RGBA image. Present counts frames.
type ImageSurface struct {
	img    *image.RGBA
	frames int
}

// NewImageSurface allocates a w x h image surface.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image exposes the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Frames reports how many times Present has been called.
func (s *ImageSurface) Frames() int { return s.frames }

// Clear fills the whole image with c.
func (s *ImageSurface) Clear(c color.RGBA) {
	b := s.img.Bounds()
	fillRGBA(s.img, b.Min.X, b.Min.Y, b.Max.X, b.Max.Y, c)
}

// FillRect fills the rectangle clipped to the image bounds.
func (s *ImageSurface) FillRect(x, y, w, h int, c color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	fillRGBA(s.img, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, c)
}

// Present marks the end of a frame.
func (s *ImageSurface) Present() { s.frames++ }

// fillRGBA writes c into the pixel bytes of [x0,x1) x [y0,y1).
func fillRGBA(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		base := img.PixOffset(x0, y)
		for x := x0; x < x1; x++ {
			img.Pix[base+0] = c.R
			img.Pix[base+1] = c.G
			img.Pix[base+2] = c.B
			img.Pix[base+3] = c.A
			base += 4
		}
	}
}
