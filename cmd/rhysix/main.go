//go:build ebiten

package main

import (
	"errors"
	"flag"

	"rhysix/internal/app"
	"rhysix/internal/core"
	_ "rhysix/internal/sims/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := core.NewLogger(cfg.LogLevel)

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		logger.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg, logger)
	w, h := game.ScreenSize()

	ebiten.SetWindowTitle("rhysix: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	logger.Infof("running %s %dx%d (tick %s)", sim.Name(), sim.Size().W, sim.Size().H, cfg.Tick)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatalf("%v", err)
	}
}
