// Package sim drives a life.Grid from discrete run/stop/reseed/resize events
// and gates generation steps on scheduler ticks.
package sim

import (
	"io"
	"log"
	"strconv"

	"torus-life/internal/core"
	rngcore "torus-life/pkg/core"
	"torus-life/pkg/life"
)

// Controller owns a board and its run state. It is not safe for concurrent
// use; a single driver feeds it one event at a time.
type Controller struct {
	cfg Config
	log *log.Logger
	rng *rngcore.RNG

	grid       *life.Grid
	periods    life.Periods
	generation uint32
	running    bool
	pending    core.Size

	// outstanding counts frame requests handed out and not yet answered by a
	// Tick. It never exceeds one.
	outstanding int
}

// New mounts a board using cfg. Zero or invalid fields fall back to the
// default variant.
func New(cfg Config) *Controller {
	cfg = cfg.normalized()
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	c := &Controller{
		cfg:     cfg,
		log:     logger,
		rng:     rngcore.NewRNG(cfg.Seed),
		running: cfg.Running,
		pending: core.Size{W: cfg.Width, H: cfg.Height},
	}
	c.rebuild(c.DefaultSize(), cfg.Mode)
	return c
}

// Boot arms the first frame request of a controller mounted in the Running
// state. It returns nil for a stopped controller.
func (c *Controller) Boot() []Request {
	if !c.running {
		return nil
	}
	return c.arm()
}

// Handle applies ev and returns the scheduler requests it produced.
func (c *Controller) Handle(ev Event) []Request {
	switch ev.Kind {
	case EventStart:
		return c.start()
	case EventStop:
		c.running = false
	case EventStep:
		c.step()
	case EventTick:
		return c.tick(ev.Delta)
	case EventReshuffle:
		c.running = false
		c.rebuild(c.Size(), life.Random)
		c.log.Printf("reshuffled %s board with periods %s", c.Size(), c.periods)
	case EventReset:
		c.running = false
		c.rebuild(c.DefaultSize(), life.Fixed)
		c.log.Printf("reset to default %s board", c.Size())
	case EventResize:
		c.resize()
	case EventPendingWidth:
		c.setPending(&c.pending.W, ev)
	case EventPendingHeight:
		c.setPending(&c.pending.H, ev)
	default:
		c.log.Printf("ignoring unknown event %v", ev)
	}
	return nil
}

func (c *Controller) start() []Request {
	if c.running {
		return nil
	}
	c.running = true
	return c.arm()
}

func (c *Controller) tick(delta float64) []Request {
	if c.outstanding > 0 {
		c.outstanding--
	}
	if !c.running {
		return nil
	}
	if delta > 0 {
		c.grid.Advance()
		c.generation++
	}
	return c.arm()
}

func (c *Controller) step() {
	if c.running {
		return
	}
	c.grid.Advance()
	c.generation++
}

func (c *Controller) arm() []Request {
	if c.outstanding > 0 {
		return nil
	}
	c.outstanding = 1
	return []Request{RequestFrame}
}

func (c *Controller) resize() {
	c.running = false
	def := c.DefaultSize()
	size := c.pending
	if size.W == 0 {
		size.W = def.W
	} else {
		size.W = c.clamp(size.W)
	}
	if size.H == 0 {
		size.H = def.H
	} else {
		size.H = c.clamp(size.H)
	}
	if !life.Fits(size.W, size.H) {
		c.log.Printf("resize: %s exceeds %d cells, using default %s", size, life.MaxCells, def)
		size = def
	}
	if size != c.pending {
		c.log.Printf("resize: pending %s applied as %s", c.pending, size)
	}
	c.rebuild(size, life.Fixed)
}

func (c *Controller) clamp(v int) int {
	if c.cfg.MaxSize > 0 && v > c.cfg.MaxSize {
		return c.cfg.MaxSize
	}
	return v
}

func (c *Controller) setPending(field *int, ev Event) {
	parsed, err := strconv.ParseUint(ev.Text, 10, 31)
	if err != nil {
		c.log.Printf("%v ignored: %v", ev, err)
		return
	}
	*field = int(parsed)
}

// rebuild replaces the board wholesale and zeroes the generation counter.
func (c *Controller) rebuild(size core.Size, mode life.SeedMode) {
	if size.W <= 0 || size.H <= 0 {
		size = c.DefaultSize()
	}
	g, p, err := life.Seed(size.W, size.H, mode, c.cfg.Periods, c.rng)
	if err != nil {
		c.log.Printf("rebuild %s %s board: %v", size, mode, err)
		return
	}
	c.grid = g
	c.periods = p
	c.generation = 0
}

// DefaultSize returns the size used at mount and on reset.
func (c *Controller) DefaultSize() core.Size {
	return core.Size{W: c.cfg.Width, H: c.cfg.Height}
}

// Size returns the current board dimensions.
func (c *Controller) Size() core.Size {
	return core.Size{W: c.grid.Width(), H: c.grid.Height()}
}

// Generation returns the number of generations since the last reseed.
func (c *Controller) Generation() uint32 { return c.generation }

// Running reports whether ticks advance the board.
func (c *Controller) Running() bool { return c.running }

// PendingSize returns the staged resize dimensions.
func (c *Controller) PendingSize() core.Size { return c.pending }

// Periods returns the seed periods of the current board.
func (c *Controller) Periods() life.Periods { return c.periods }

// Population returns the number of live cells.
func (c *Controller) Population() int { return c.grid.Population() }

// Outstanding returns the number of unanswered frame requests (0 or 1).
func (c *Controller) Outstanding() int { return c.outstanding }

// Rows renders the board with the given glyphs.
func (c *Controller) Rows(alive, dead rune) []string { return c.grid.Rows(alive, dead) }

// Snapshot renders the board with the default glyphs.
func (c *Controller) Snapshot() []string { return c.grid.Rows(life.AliveGlyph, life.DeadGlyph) }

// String renders the board as newline-terminated rows.
func (c *Controller) String() string { return c.grid.String() }

// Cells appends the board to dst in row-major order.
func (c *Controller) Cells(dst []uint8) []uint8 { return c.grid.AppendBytes(dst) }

var _ core.View = (*Controller)(nil)
