package life

import (
	"fmt"

	"torus-life/pkg/core"
)

// SeedMode selects how a new grid is populated.
type SeedMode uint8

const (
	// Fixed seeds with the configured periods (2 and 7 by default).
	Fixed SeedMode = iota
	// Random seeds with two periods drawn from [PeriodMin, PeriodMax).
	Random
)

func (m SeedMode) String() string {
	switch m {
	case Fixed:
		return "fixed"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("SeedMode(%d)", uint8(m))
	}
}

// ParseSeedMode maps "fixed" and "random" to their modes.
func ParseSeedMode(s string) (SeedMode, bool) {
	switch s {
	case "fixed":
		return Fixed, true
	case "random":
		return Random, true
	}
	return Fixed, false
}

// Bounds of randomly drawn periods; the upper bound is exclusive.
const (
	PeriodMin = 1
	PeriodMax = 10
)

// Periods drives the modular seed pattern: cell i is alive when i is a
// multiple of First or of Second.
type Periods struct {
	First  int
	Second int
}

// DefaultPeriods is the pattern every fixed-seed board starts from.
var DefaultPeriods = Periods{First: 2, Second: 7}

// RandomPeriods draws both periods uniformly from [PeriodMin, PeriodMax).
func RandomPeriods(rng *core.RNG) Periods {
	return Periods{
		First:  rng.IntRange(PeriodMin, PeriodMax),
		Second: rng.IntRange(PeriodMin, PeriodMax),
	}
}

func (p Periods) String() string { return fmt.Sprintf("%d/%d", p.First, p.Second) }

func (p Periods) valid() bool { return p.First > 0 && p.Second > 0 }

func (p Periods) fill(cells []Cell) {
	for i := range cells {
		if i%p.First == 0 || i%p.Second == 0 {
			cells[i] = Alive
			continue
		}
		cells[i] = Dead
	}
}

// Seed builds a w*h grid for the given mode. Fixed uses fixed; Random draws
// fresh periods from rng. The periods actually used are returned alongside.
func Seed(w, h int, mode SeedMode, fixed Periods, rng *core.RNG) (*Grid, Periods, error) {
	p := fixed
	if mode == Random {
		p = RandomPeriods(rng)
	}
	g, err := New(w, h, p)
	if err != nil {
		return nil, p, err
	}
	return g, p, nil
}
