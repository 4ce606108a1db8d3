package app

import (
	"context"
	"strconv"
	"time"

	"sandspill/internal/core"
	"sandspill/internal/render"
	"sandspill/internal/sand"
)

// Session owns a grid and brush and runs the per-frame cadence: drain input,
// paint, run the ticks the lag accumulator allows, advance the hue, render
// once. Frontends that call Draw more often than Update keep one hue step per
// painted frame.
type Session struct {
	grid     core.Sim
	brush    *sand.Brush
	stepper  *core.FixedStep
	renderer *render.GridRenderer
	clock    core.Clock

	frameBudget time.Duration
	seed        int64

	painting bool
	paused   bool
	tickOnce bool
	quit     bool

	frames int
	ticks  int

	onReset func()
}

// NewSession wires a grid to a brush and tick controller using cfg.
func NewSession(grid core.Sim, cfg *Config, clock core.Clock) *Session {
	if clock == nil {
		clock = core.NewWallClock()
	}
	fps := cfg.FPS
	if fps <= 0 {
		fps = cfg.TPS
	}
	if fps <= 0 {
		fps = 30
	}
	return &Session{
		grid:        grid,
		brush:       sand.NewBrush(cfg.CellSize, cfg.BrushSize, cfg.HueStep),
		stepper:     core.NewFixedStep(cfg.TPS),
		renderer:    render.NewGridRenderer(cfg.CellSize),
		clock:       clock,
		frameBudget: time.Second / time.Duration(fps),
		seed:        cfg.Seed,
	}
}

// OnReset registers a callback invoked after the grid is cleared or reseeded.
func (s *Session) OnReset(fn func()) { s.onReset = fn }

// Grid returns the driven grid.
func (s *Session) Grid() core.Sim { return s.grid }

// Brush returns the painting brush.
func (s *Session) Brush() *sand.Brush { return s.brush }

// Done reports whether a quit event was received.
func (s *Session) Done() bool { return s.quit }

// Painting reports whether the pointer button is held.
func (s *Session) Painting() bool { return s.painting }

// Paused reports whether ticking is suspended.
func (s *Session) Paused() bool { return s.paused }

// Frames returns the number of rendered frames.
func (s *Session) Frames() int { return s.frames }

// Ticks returns the number of simulation steps run.
func (s *Session) Ticks() int { return s.ticks }

// PixelSize returns the grid extent in window pixels.
func (s *Session) PixelSize() (int, int) {
	size := s.grid.Size()
	return size.W * s.brush.CellSize, size.H * s.brush.CellSize
}

// HandleEvents applies queued input in order.
func (s *Session) HandleEvents(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventQuit:
			s.quit = true
		case EventButtonDown:
			s.painting = true
		case EventButtonUp:
			s.painting = false
		case EventKeyDown:
			s.handleKey(ev.Key)
		}
	}
}

func (s *Session) handleKey(k Key) {
	switch k {
	case KeyReset:
		s.grid.Clear()
		s.resetHook()
	case KeyReseed:
		s.grid.Reset(s.seed)
		s.resetHook()
	case KeyPause:
		s.paused = !s.paused
	case KeyStep:
		s.tickOnce = true
	case KeyBrushGrow:
		s.brush.SetSize(s.brush.Size + 1)
	case KeyBrushShrink:
		s.brush.SetSize(s.brush.Size - 1)
	}
}

func (s *Session) resetHook() {
	if s.onReset != nil {
		s.onReset()
	}
}

// Update drains input, paints while the button is held, runs the ticks owed
// by the lag accumulator and advances the brush hue. A quit event still
// completes the frame. It returns the number of ticks run.
func (s *Session) Update(in Input) int {
	s.HandleEvents(in.Drain())
	if s.painting {
		px, py := in.Pointer()
		s.brush.Paint(s.grid, px, py)
	}

	n := s.stepper.Advance(s.clock.Now())
	if s.paused {
		n = 0
		if s.tickOnce {
			n = 1
		}
	}
	s.tickOnce = false
	for i := 0; i < n; i++ {
		s.grid.Step()
	}
	s.ticks += n
	s.brush.Advance()
	return n
}

// Draw renders the settled grid once.
func (s *Session) Draw(surf render.Surface) {
	s.renderer.Draw(surf, s.grid.Size(), s.grid.Cells())
	s.frames++
}

// Frame runs one complete frame: Update followed by Draw.
func (s *Session) Frame(in Input, surf render.Surface) int {
	n := s.Update(in)
	s.Draw(surf)
	return n
}

// Run loops frames until quit, sleeping out the rest of each frame budget.
// The context is only checked between frames.
func Run(ctx context.Context, s *Session, in Input, surf render.Surface) error {
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := s.clock.Now()
		s.Frame(in, surf)
		if elapsed := s.clock.Now() - start; elapsed < s.frameBudget {
			s.clock.Sleep(s.frameBudget - elapsed)
		}
	}
	return nil
}

// Parameters merges the grid snapshot with the session's own values.
func (s *Session) Parameters() core.ParameterSnapshot {
	var snap core.ParameterSnapshot
	if p, ok := s.grid.(core.ParameterProvider); ok {
		snap = p.Parameters()
	}
	state := "running"
	if s.paused {
		state = "paused"
	}
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Session",
		Params: []core.Parameter{
			core.IntParam("brush_size", "Brush size", s.brush.Size),
			core.IntParam("hue_step", "Hue step", s.brush.HueStep),
			core.IntParam("hue", "Hue", int(s.brush.Hue())),
			core.IntParam("tps", "Ticks/sec", s.stepper.TPS()),
			core.TextParam("state", "State", state),
			core.TextParam("ticks", "Ticks", strconv.Itoa(s.ticks)),
		},
	})
	return snap
}

// ParameterControls lists the values adjustable from the HUD.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "brush_size", Label: "Brush size", Step: 1, Min: 1, Max: sand.MaxBrushSize},
		{Key: "hue_step", Label: "Hue step", Step: 1, Min: 1, Max: 60},
		{Key: "tps", Label: "Ticks/sec", Step: 5, Min: 1, Max: 240},
	}
}

// SetIntParameter applies a HUD adjustment.
func (s *Session) SetIntParameter(key string, value int) bool {
	for _, ctrl := range s.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case "brush_size":
			s.brush.SetSize(value)
		case "hue_step":
			s.brush.HueStep = value
		case "tps":
			s.stepper.SetTPS(value)
		}
		return true
	}
	return false
}
