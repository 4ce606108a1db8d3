package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"sandspill/internal/app"
)

const eventBuffer = 256

// Input pumps tcell events from a goroutine into a channel and translates
// them into session events on Drain. The pointer is reported in grid cells.
type Input struct {
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once
	px, py int
	held   bool
}

// NewInput starts pumping events from screen. The pump exits once Close is
// called or the screen is finalised and PollEvent returns nil, closing the
// event channel either way.
func NewInput(screen tcell.Screen) *Input {
	in := &Input{
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(in.events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case in.events <- ev:
			case <-in.done:
				return
			}
		}
	}()
	return in
}

// Close stops the pump without waiting for the buffer to drain. The pump
// still needs the screen finalised if it is parked in PollEvent.
func (in *Input) Close() {
	in.once.Do(func() { close(in.done) })
}

// Drain translates every event queued so far without blocking.
func (in *Input) Drain() []app.Event {
	var out []app.Event
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				return append(out, app.Event{Kind: app.EventQuit})
			}
			out = append(out, in.Translate(ev)...)
		default:
			return out
		}
	}
}

// Pointer returns the last mouse position in grid cells.
func (in *Input) Pointer() (int, int) {
	return in.px, in.py
}

// Translate maps one tcell event to session events, tracking the pointer and
// primary button state.
func (in *Input) Translate(ev tcell.Event) []app.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventMouse:
		col, row := ev.Position()
		in.px, in.py = col/ColumnsPerCell, row
		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down && !in.held:
			in.held = true
			return []app.Event{{Kind: app.EventButtonDown}}
		case !down && in.held:
			in.held = false
			return []app.Event{{Kind: app.EventButtonUp}}
		}
	}
	return nil
}

var runeKeys = map[rune]app.Key{
	'r': app.KeyReset,
	's': app.KeyReseed,
	' ': app.KeyPause,
	'n': app.KeyStep,
	']': app.KeyBrushGrow,
	'[': app.KeyBrushShrink,
}

func translateKey(ev *tcell.EventKey) []app.Event {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return []app.Event{{Kind: app.EventQuit}}
	case tcell.KeyRune:
		r := ev.Rune()
		if r == 'q' {
			return []app.Event{{Kind: app.EventQuit}}
		}
		if k, ok := runeKeys[r]; ok {
			return []app.Event{{Kind: app.EventKeyDown, Key: k}}
		}
	}
	return nil
}
