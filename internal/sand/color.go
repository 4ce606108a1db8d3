package sand

import (
	"image/color"

	"github.com/crazy3lf/colorconv"

	"sandspill/internal/core"
)

// HueToRGB converts a hue at full saturation and value into an opaque color.
// Hue 360 wraps to red like hue 0.
func HueToRGB(h core.Hue) color.RGBA {
	// Saturation and value are fixed at 1 and the hue is folded below 360,
	// so the conversion cannot fail.
	r, g, b, _ := colorconv.HSVToRGB(float64(h%360), 1, 1)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
