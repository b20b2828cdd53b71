package app

import (
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"torus-life/internal/sim"
)

// KeyValues collects repeatable key=value flags.
type KeyValues []string

func (kv *KeyValues) String() string {
	return strings.Join(*kv, ",")
}

// Set appends a raw key=value pair.
func (kv *KeyValues) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*kv = append(*kv, value)
	return nil
}

// Map splits the collected pairs; later keys win.
func (kv KeyValues) Map() map[string]string {
	m := make(map[string]string, len(kv))
	for _, pair := range kv {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return m
}

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Variant  string
	Scale    int
	TPS      int
	HUDWidth int
	Start    bool
	Verbose  bool
	Sets     KeyValues
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Variant: sim.DefaultVariant, Scale: 6, TPS: 30, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Variant, "variant", c.Variant, "board preset: "+strings.Join(sim.Variants(), ", "))
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Start, "start", c.Start, "start running immediately")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log controller transitions to stderr")
	fs.Var(&c.Sets, "set", "board override in key=value form (repeatable): w, h, seed, running, mode, first_period, second_period, max")
}

// SimConfig resolves the variant and overrides into a controller config.
func (c *Config) SimConfig(logOut io.Writer) (sim.Config, error) {
	if _, ok := sim.Variant(c.Variant); !ok {
		return sim.Config{}, fmt.Errorf("unknown variant %q (have %s)", c.Variant, strings.Join(sim.Variants(), ", "))
	}
	m := c.Sets.Map()
	m["variant"] = c.Variant
	cfg := sim.FromMap(m)
	if c.Start {
		cfg.Running = true
	}
	if c.Verbose && logOut != nil {
		cfg.Logger = log.New(logOut, "life: ", log.LstdFlags)
	}
	return cfg, nil
}
