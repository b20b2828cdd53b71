package sim

import (
	"log"
	"sort"
	"strconv"

	"torus-life/pkg/life"
)

// DefaultMaxSize bounds each dimension accepted by a resize.
const DefaultMaxSize = 256

// Config controls the board a Controller mounts and falls back to.
type Config struct {
	Variant string

	// Width and Height are the default board size used at mount, on reset
	// and whenever a resize asks for a zero dimension.
	Width  int
	Height int

	Seed    int64
	Running bool
	Mode    life.SeedMode
	Periods life.Periods

	// MaxSize clamps resized dimensions; 0 disables the per-dimension bound.
	// A resize past life.MaxCells falls back to the default size either way.
	MaxSize int

	Logger *log.Logger
}

var variants = map[string]Config{
	"classic": {
		Variant: "classic",
		Width:   92,
		Height:  92,
		Seed:    42,
		Mode:    life.Fixed,
		Periods: life.DefaultPeriods,
		MaxSize: DefaultMaxSize,
	},
	"configurable": {
		Variant: "configurable",
		Width:   48,
		Height:  48,
		Seed:    42,
		Mode:    life.Fixed,
		Periods: life.DefaultPeriods,
		MaxSize: DefaultMaxSize,
	},
	"page": {
		Variant: "page",
		Width:   92,
		Height:  92,
		Seed:    42,
		Running: true,
		Mode:    life.Fixed,
		Periods: life.DefaultPeriods,
		MaxSize: DefaultMaxSize,
	},
}

// DefaultVariant names the preset used when none is requested.
const DefaultVariant = "configurable"

// Variant returns the named preset.
func Variant(name string) (Config, bool) {
	c, ok := variants[name]
	return c, ok
}

// Variants lists the preset names in sorted order.
func Variants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	c, _ := Variant(DefaultVariant)
	return c
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values leave the defaults in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["variant"]; ok {
		if preset, found := Variant(v); found {
			c = preset
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["running"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Running = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		if parsed, found := life.ParseSeedMode(v); found {
			c.Mode = parsed
		}
	}
	if v, ok := cfg["first_period"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Periods.First = parsed
		}
	}
	if v, ok := cfg["second_period"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Periods.Second = parsed
		}
	}
	if v, ok := cfg["max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxSize = parsed
		}
	}
	return c
}

func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.Periods.First <= 0 || c.Periods.Second <= 0 {
		c.Periods = life.DefaultPeriods
	}
	if c.MaxSize < 0 {
		c.MaxSize = 0
	}
	return c
}
