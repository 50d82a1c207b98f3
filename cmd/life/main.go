//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"life/internal/app"
	"life/pkg/core"
	_ "life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.SimNames())
	}
	ctrl, ok := factory(cfg.SimConfig()).(core.Controller)
	if !ok {
		log.Fatalf("sim %q is not interactive", cfg.Sim)
	}
	ctrl.Reset(cfg.Seed)

	game := app.New(ctrl, cfg)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
