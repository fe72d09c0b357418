//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"thermvox/internal/app"
	"thermvox/internal/server"
	"thermvox/internal/sim"
	"thermvox/internal/stress"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	seed := resolveSeed(cfg.Seed)

	if cfg.Headless {
		runHeadless(cfg, seed)
		return
	}

	world := sim.NewWorld()
	sim.SeedWorld(world)

	srv := server.New(world, float32(cfg.Dt))
	srv.Start()

	var grower *stress.Grower
	if cfg.Stress {
		grower = stress.NewGrower(srv, seed, cfg.Dt)
		go grower.Run()
	}

	game := app.New(srv)

	ebiten.SetWindowTitle("thermvox")
	ebiten.SetWindowSize(app.WindowW, app.WindowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	err := ebiten.RunGame(game)

	if grower != nil {
		grower.Stop()
	}
	srv.Stop()
	srv.Join()

	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
