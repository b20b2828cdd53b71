package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"torus-life/internal/app"
	"torus-life/internal/loop"
	"torus-life/internal/sim"
)

func main() {
	cfg := app.NewConfig()
	cfg.Start = true
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 100, "number of frames to run")
	delta := flag.Float64("delta", 16, "frame time delta in milliseconds")
	every := flag.Int("every", 0, "print the board every N generations (0 prints only the last)")
	quiet := flag.Bool("quiet", false, "print the summary line only")
	flag.Parse()

	simCfg, err := cfg.SimConfig(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}

	l := loop.New(sim.New(simCfg))
	c := l.Controller()

	last := c.Generation()
	for i := 0; i < *frames; i++ {
		l.Frame(*delta)
		if *every > 0 && !*quiet && c.Generation() != last && c.Generation()%uint32(*every) == 0 {
			fmt.Printf("generation %d\n%s\n", c.Generation(), c)
		}
		last = c.Generation()
	}

	if !*quiet {
		fmt.Print(c)
	}
	fmt.Printf("variant %s, %s board, periods %s, generation %d, population %d\n",
		simCfg.Variant, c.Size(), c.Periods(), c.Generation(), c.Population())
}
