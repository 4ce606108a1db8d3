//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBg     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBg    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonFg    = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonOffBg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonOffFg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD renders the parameter panel to the right of the grid.
type HUD struct {
	*Panel
	canvas     *ebiten.Image
	lastHeight int
	offsetX    int
}

// NewHUD constructs a HUD for target. A zero width disables it and returns nil.
func NewHUD(target Target, name string, width int) *HUD {
	if width <= 0 {
		return nil
	}
	return &HUD{Panel: NewPanel(target, name, width)}
}

// Update refreshes the snapshot and handles clicks on the +/- buttons. It
// reports whether the click landed inside the panel.
func (h *HUD) Update(offsetX int) bool {
	if h == nil {
		return false
	}
	h.offsetX = offsetX
	h.Refresh()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < offsetX {
		return false
	}
	h.Click(mx-offsetX, my)
	return true
}

// Draw paints the panel anchored at the configured horizontal offset.
func (h *HUD) Draw(screen *ebiten.Image, height int) {
	if h == nil || height <= 0 {
		return
	}
	if h.canvas == nil || h.lastHeight != height {
		h.canvas = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.canvas.Fill(panelBg)
	h.drawControls()
	h.drawStatus()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.canvas, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.canvas, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.canvas, state.control.Label, face, panelPadding, labelY, labelColor)

		value, valueColor := "--", dimColor
		if state.hasValue {
			value, valueColor = strconv.Itoa(state.value), labelColor
		}
		valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(h.canvas, value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.canAdjust(state, 1))
	}
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	for _, line := range h.status {
		if line.Top+statusHeight > h.lastHeight {
			return
		}
		baseline := line.Top + statusHeight - 3
		if line.Header {
			text.Draw(h.canvas, line.Label, face, panelPadding, baseline, titleColor)
			continue
		}
		text.Draw(h.canvas, line.Label, face, panelPadding+8, baseline, dimColor)
		x := h.width - panelPadding - text.BoundString(face, line.Value).Dx()
		text.Draw(h.canvas, line.Value, face, x, baseline, labelColor)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBg, buttonFg
	if !enabled {
		bg, fg = buttonOffBg, buttonOffFg
	}
	vector.DrawFilledRect(h.canvas, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.canvas, label, face, x, y, fg)
}
