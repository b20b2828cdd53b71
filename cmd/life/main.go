//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"torus-life/internal/app"
	"torus-life/internal/loop"
	"torus-life/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg, err := cfg.SimConfig(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}

	l := loop.New(sim.New(simCfg))
	game := app.New(l, cfg.Scale, cfg.HUDWidth)

	ebiten.SetWindowTitle("torus-life: " + simCfg.Variant)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
