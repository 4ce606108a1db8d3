package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"sandspill/internal/app"
	"sandspill/internal/record"
	"sandspill/internal/sand"
)

func main() {
	opts := record.DefaultOptions()
	flag.IntVar(&opts.CellSize, "cell", opts.CellSize, "cell size in pixels")
	flag.IntVar(&opts.Ticks, "ticks", opts.Ticks, "ticks to record, one per frame")
	flag.IntVar(&opts.FPS, "fps", opts.FPS, "video frame rate")
	flag.IntVar(&opts.BrushSize, "brush", opts.BrushSize, "brush edge length in cells")
	flag.IntVar(&opts.HueStep, "hue-step", opts.HueStep, "hue advance per frame")
	flag.IntVar(&opts.SweepFrames, "sweep", opts.SweepFrames, "frames to paint the scripted stroke for (0 disables)")
	flag.BoolVar(&opts.Caption, "caption", opts.Caption, "stamp the tick number on each frame")
	flag.IntVar(&opts.Quality, "quality", opts.Quality, "JPEG quality 1-100")
	flag.StringVar(&opts.VideoPath, "out", "sand.avi", "MJPEG AVI output path (empty disables)")
	flag.StringVar(&opts.ChartPath, "chart", "", "moved-per-tick PNG chart path (empty disables)")
	var overrides app.KVList
	flag.Var(&overrides, "set", "grid option in key=value form (repeatable)")
	flag.Parse()

	opts.Sand = sand.FromMap(overrides.Map())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := record.Run(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("recorded %d frames over %d ticks: %d particles, last movement on tick %d",
		res.Frames, res.Ticks, res.Count, res.SettledAt)
}
