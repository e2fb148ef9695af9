//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"life3d/internal/app"
	"life3d/internal/core"
	_ "life3d/internal/sims/life3d"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	configFile := flag.String("config", "", "optional JSON config file")
	flag.Parse()

	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			log.Fatal(err)
		}
		// Re-parse so explicit command-line flags win over the file.
		flag.Parse()
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	n := sim.Grid().Size()

	ebiten.SetWindowTitle("life3d — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(n*cfg.Scale, n*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
