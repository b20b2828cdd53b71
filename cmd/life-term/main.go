package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"torus-life/internal/app"
	"torus-life/internal/loop"
	"torus-life/internal/sim"
	"torus-life/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logFile := flag.String("log", "", "write controller logs to this file (requires -v)")
	flag.Parse()

	logOut := os.Stderr
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logOut = f
	} else if cfg.Verbose {
		// stderr shares the terminal with the board.
		log.Print("-v without -log: controller logs disabled in the terminal UI")
		cfg.Verbose = false
	}

	simCfg, err := cfg.SimConfig(logOut)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(simCfg, cfg.TPS); err != nil {
		log.Fatal(err)
	}
}

func run(simCfg sim.Config, fps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return term.Run(ctx, screen, loop.New(sim.New(simCfg)), fps)
}
