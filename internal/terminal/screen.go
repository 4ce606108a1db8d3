// Package terminal drives a session inside a terminal through tcell. Each grid
// cell occupies two terminal columns so particles stay roughly square.
package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ColumnsPerCell is the number of terminal columns drawn per grid cell.
const ColumnsPerCell = 2

// Open creates and initialises the terminal screen with mouse reporting on.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal screen")
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// GridFor returns the largest grid, in rows and columns, that fits screen.
func GridFor(screen tcell.Screen) (rows, columns int) {
	w, h := screen.Size()
	return h, w / ColumnsPerCell
}
