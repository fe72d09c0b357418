//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"os"

	"thermvox/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Headless {
		runHeadless(cfg, resolveSeed(cfg.Seed))
		return
	}

	fmt.Fprintln(os.Stderr, "The GUI build of thermvox requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/thermvox`, or pass -headless.")
	os.Exit(2)
}
