//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sandspill/internal/app"
	"sandspill/internal/audio"
	"sandspill/internal/core"
	_ "sandspill/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
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

	game := app.New(session, cfg.HUDWidth)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("sandspill - " + grid.Name())
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
