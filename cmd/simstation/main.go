//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"simstation/internal/app"
	"simstation/internal/core"
	_ "simstation/internal/sims/collatz"
	_ "simstation/internal/sims/drift"
	_ "simstation/internal/sims/pixelfill"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatal(err)
	}

	if cfg.Sim != "" {
		if _, ok := core.Sims()[cfg.Sim]; !ok {
			log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.Names())
		}
	}

	game := app.New(cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Simulation Station")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
