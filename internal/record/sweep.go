package record

import (
	"sandspill/internal/app"
	"sandspill/internal/core"
)

// sweep scripts a pointer stroke that runs back and forth along the top of
// the grid, one brush width per frame.
type sweep struct {
	frames   int
	cellSize int
	stride   int
	columns  int
	row      int
}

func newSweep(size core.Size, cellSize, brushSize, frames int) sweep {
	if brushSize < 1 {
		brushSize = 1
	}
	return sweep{
		frames:   frames,
		cellSize: cellSize,
		stride:   brushSize,
		columns:  size.W,
		row:      brushSize / 2,
	}
}

// column returns the grid column the stroke is over on frame.
func (s sweep) column(frame int) int {
	if s.columns <= 1 {
		return 0
	}
	span := s.columns - 1
	pos := (frame * s.stride) % (2 * span)
	if pos > span {
		pos = 2*span - pos
	}
	return pos
}

func (s sweep) script(frame int, in *app.QueueInput) {
	if s.frames <= 0 || frame > s.frames {
		return
	}
	if frame == s.frames {
		in.Push(app.Event{Kind: app.EventButtonUp})
		return
	}
	if frame == 0 {
		in.Push(app.Event{Kind: app.EventButtonDown})
	}
	half := s.cellSize / 2
	in.MoveTo(s.column(frame)*s.cellSize+half, s.row*s.cellSize+half)
}
