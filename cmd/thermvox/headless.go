package main

import (
	"fmt"
	"os"
	"time"

	"thermvox/internal/app"
	"thermvox/internal/server"
	"thermvox/internal/sim"
	"thermvox/internal/stress"
)

// runHeadless runs without the renderer: the self-driving stress harness
// when -stress is set, otherwise a bare sim server reporting its frame
// counter once per second.
func runHeadless(cfg *app.Config, seed uint32) {
	if cfg.Stress {
		stress.RunHeadless(seed, cfg.Dt, os.Stdout)
		return
	}

	world := sim.NewWorld()
	sim.SeedWorld(world)

	srv := server.New(world, float32(cfg.Dt))
	srv.Start()

	fmt.Println("Sim server running headless. Press Ctrl+C to exit.")
	for {
		time.Sleep(time.Second)
		fmt.Printf("frames=%d\n", srv.Frames())
	}
}

// resolveSeed turns the flag value into a concrete seed, drawing one from
// the clock when unset so every run is reported with a reusable seed.
func resolveSeed(v uint) uint32 {
	if v != 0 {
		return uint32(v)
	}
	return uint32(time.Now().UnixNano())
}
