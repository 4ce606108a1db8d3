//go:build ebiten

package app

import (
	"sandspill/internal/render"
	"sandspill/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = []struct {
	key ebiten.Key
	out Key
}{
	{ebiten.KeyR, KeyReset},
	{ebiten.KeyS, KeyReseed},
	{ebiten.KeySpace, KeyPause},
	{ebiten.KeyN, KeyStep},
	{ebiten.KeyBracketRight, KeyBrushGrow},
	{ebiten.KeyBracketLeft, KeyBrushShrink},
}

// ebitenInput translates ebiten's polled input state into session events.
type ebitenInput struct {
	gridW int
}

func (in *ebitenInput) Drain() []Event {
	var events []Event
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, Event{Kind: EventQuit})
	}
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			events = append(events, Event{Kind: EventKeyDown, Key: b.out})
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if mx, _ := ebiten.CursorPosition(); mx < in.gridW {
			events = append(events, Event{Kind: EventButtonDown})
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, Event{Kind: EventButtonUp})
	}
	return events
}

func (in *ebitenInput) Pointer() (int, int) {
	return ebiten.CursorPosition()
}

// Game adapts a Session to the ebiten.Game interface. ebiten owns the frame
// clock; the session's lag accumulator decides how many ticks each frame runs.
type Game struct {
	session *Session
	input   *ebitenInput
	hud     *ui.HUD
	overlay *ui.Overlay
	surface render.EbitenSurface
}

// New constructs a Game for the provided session with a HUD of hudWidth pixels.
func New(s *Session, hudWidth int) *Game {
	w, _ := s.PixelSize()
	return &Game{
		session: s,
		input:   &ebitenInput{gridW: w},
		hud:     ui.NewHUD(s, s.Grid().Name(), hudWidth),
		overlay: ui.NewOverlay(s.Brush(), s.Grid().Size()),
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	g.hud.Update(g.input.gridW)
	g.overlay.Update()
	g.session.Update(g.input)
	if g.session.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the grid, the brush preview and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Screen = screen
	g.session.Draw(&g.surface)
	g.overlay.Draw(screen)
	_, h := g.session.PixelSize()
	g.hud.Draw(screen, h)
}

// Layout returns the logical screen size: the grid plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.session.PixelSize()
	if g.hud != nil {
		w += g.hud.Width()
	}
	return w, h
}
