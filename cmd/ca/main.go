//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"kernel-life/internal/app"
	"kernel-life/internal/core"
	_ "kernel-life/internal/sims/kernel"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	opts, err := cfg.SimOptions()
	if err != nil {
		log.Fatal(err)
	}
	sim, err := core.NewSim(cfg.Sim, opts)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("kernel-life — " + sim.Name())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
