// Package record runs a grid headlessly, optionally painting a scripted
// stroke, and writes the frames to an MJPEG AVI plus a settle chart.
package record

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"strconv"
	"time"

	"github.com/icza/mjpeg"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"sandspill/internal/app"
	"sandspill/internal/core"
	"sandspill/internal/render"
	"sandspill/internal/sand"
)

// Options configures a recording.
type Options struct {
	Sand      sand.Config
	CellSize  int
	Ticks     int
	FPS       int
	BrushSize int
	HueStep   int
	// SweepFrames is how many frames the scripted stroke paints for. Zero
	// disables it.
	SweepFrames int
	Caption     bool
	Quality     int
	VideoPath   string
	ChartPath   string
}

// DefaultOptions returns a 10 second recording of the default grid with a
// sweep over the first three seconds.
func DefaultOptions() Options {
	return Options{
		Sand:        sand.DefaultConfig(),
		CellSize:    10,
		Ticks:       300,
		FPS:         30,
		BrushSize:   3,
		HueStep:     2,
		SweepFrames: 90,
		Caption:     true,
		Quality:     85,
	}
}

// Result summarises a finished recording.
type Result struct {
	Frames int
	Ticks  int
	Count  int
	// Moved holds the number of particles that moved on each tick.
	Moved []int
	// SettledAt is the last tick on which anything moved, or 0.
	SettledAt int
}

func (o Options) validate() error {
	if o.Ticks <= 0 {
		return errors.Errorf("ticks must be positive, got %d", o.Ticks)
	}
	if o.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", o.CellSize)
	}
	if o.FPS <= 0 {
		return errors.Errorf("fps must be positive, got %d", o.FPS)
	}
	return nil
}

// Run records opts.Ticks ticks, one per frame. The first frame only anchors
// the tick clock, so Frames is Ticks+1.
func Run(ctx context.Context, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	grid := sand.NewWithConfig(opts.Sand)
	cfg := app.NewConfig()
	cfg.CellSize = opts.CellSize
	cfg.TPS = opts.FPS
	cfg.FPS = opts.FPS
	cfg.BrushSize = opts.BrushSize
	cfg.HueStep = opts.HueStep
	cfg.Seed = opts.Sand.Seed

	clock := &core.ManualClock{}
	session := app.NewSession(grid, cfg, clock)
	w, h := session.PixelSize()

	surf := &frameSink{
		ImageSurface: render.NewImageSurface(w, h),
		ticks:        session.Ticks,
		caption:      opts.Caption,
		quality:      opts.Quality,
	}
	if opts.VideoPath != "" {
		aw, err := mjpeg.New(opts.VideoPath, int32(w), int32(h), int32(opts.FPS))
		if err != nil {
			return Result{}, errors.Wrap(err, "create video")
		}
		surf.video = aw
	}

	in := &app.QueueInput{}
	sweep := newSweep(grid.Size(), opts.CellSize, opts.BrushSize, opts.SweepFrames)
	step := time.Second / time.Duration(opts.FPS)
	res := Result{Moved: make([]int, 0, opts.Ticks)}

	var runErr error
	for frame := 0; res.Ticks < opts.Ticks; frame++ {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		sweep.script(frame, in)
		if frame > 0 {
			clock.Advance(step)
		}
		n := session.Frame(in, surf)
		for i := 0; i < n; i++ {
			res.Ticks++
			res.Moved = append(res.Moved, grid.Moved())
			if grid.Moved() > 0 {
				res.SettledAt = res.Ticks
			}
		}
		if surf.err != nil {
			runErr = surf.err
			break
		}
	}
	res.Frames = surf.Frames()
	res.Count = grid.Count()

	if surf.video != nil {
		if err := surf.video.Close(); err != nil && runErr == nil {
			runErr = errors.Wrap(err, "close video")
		}
	}
	if runErr != nil {
		return res, runErr
	}
	if opts.ChartPath != "" {
		if err := WriteChart(opts.ChartPath, res.Moved); err != nil {
			return res, err
		}
	}
	return res, nil
}

// frameSink is the render target for recordings. Each Present optionally
// stamps a caption and appends the frame to the video.
type frameSink struct {
	*render.ImageSurface
	video   mjpeg.AviWriter
	ticks   func() int
	caption bool
	quality int
	buf     bytes.Buffer
	err     error
}

func (s *frameSink) Present() {
	s.ImageSurface.Present()
	if s.caption {
		drawCaption(s.Image(), "tick "+strconv.Itoa(s.ticks()))
	}
	if s.video == nil || s.err != nil {
		return
	}
	s.buf.Reset()
	if err := jpeg.Encode(&s.buf, s.Image(), &jpeg.Options{Quality: s.quality}); err != nil {
		s.err = errors.Wrap(err, "encode frame")
		return
	}
	if err := s.video.AddFrame(s.buf.Bytes()); err != nil {
		s.err = errors.Wrap(err, "append frame")
	}
}

var captionColor = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF}

func drawCaption(img *image.RGBA, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(captionColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, 13),
	}
	d.DrawString(text)
}
