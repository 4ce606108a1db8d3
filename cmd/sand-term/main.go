package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"sandspill/internal/app"
	"sandspill/internal/audio"
	"sandspill/internal/core"
	_ "sandspill/internal/sand"
	"sandspill/internal/terminal"
)

func main() {
	cfg := app.NewConfig()
	cfg.Rows, cfg.Columns = 0, 0
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	screen, err := terminal.Open()
	if err != nil {
		log.Fatal(err)
	}
	rows, columns := terminal.GridFor(screen)
	if cfg.Rows <= 0 || cfg.Rows > rows {
		cfg.Rows = rows
	}
	if cfg.Columns <= 0 || cfg.Columns > columns {
		cfg.Columns = columns
	}
	cfg.CellSize = 1

	grid := factory(cfg.SimOptions())
	session := app.NewSession(grid, cfg, nil)

	if cfg.Sound {
		player, err := audio.Open()
		if err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
		defer player.Close()
		session.OnReset(player.Chime)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	input := terminal.NewInput(screen)
	err = app.Run(ctx, session, input, terminal.NewSurface(screen))
	input.Close()
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	log.Printf("%d frames, %d ticks, %d particles", session.Frames(), session.Ticks(), countOf(grid))
}

func countOf(sim core.Sim) int {
	n := 0
	for _, h := range sim.Cells() {
		if h != core.Empty {
			n++
		}
	}
	return n
}
