//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	_ "lifegrid/internal/sims/life"

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

	sim, err := factory(cfg.FactoryConfig())
	if err != nil {
		log.Fatalf("configure %s: %v", cfg.Sim, err)
	}

	game := app.New(sim, log.Default())
	size := sim.Window()

	ebiten.SetWindowTitle("lifegrid — " + sim.Name())
	ebiten.SetTPS(sim.FrameRate())
	ebiten.SetWindowSize(size.W, size.H)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
