package sim

import (
	"bytes"
	"log"
	"slices"
	"strings"
	"testing"

	"torus-life/internal/core"
	"torus-life/pkg/life"
)

func newTestController(t *testing.T, mutate func(*Config)) *Controller {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = 8
	cfg.Height = 6
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg)
}

func fixedRows(t *testing.T, w, h int) []string {
	t.Helper()
	g, err := life.New(w, h, life.DefaultPeriods)
	if err != nil {
		t.Fatal(err)
	}
	return g.Rows(life.AliveGlyph, life.DeadGlyph)
}

func advancedRows(t *testing.T, w, h, steps int) []string {
	t.Helper()
	g, err := life.New(w, h, life.DefaultPeriods)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < steps; i++ {
		g.Advance()
	}
	return g.Rows(life.AliveGlyph, life.DeadGlyph)
}

func TestMountState(t *testing.T) {
	c := newTestController(t, nil)
	if c.Running() {
		t.Fatal("configurable variant must mount stopped")
	}
	if c.Generation() != 0 {
		t.Fatalf("generation = %d, want 0", c.Generation())
	}
	if got := c.Size(); got != (core.Size{W: 8, H: 6}) {
		t.Fatalf("size = %v, want 8x6", got)
	}
	if got := c.PendingSize(); got != (core.Size{W: 8, H: 6}) {
		t.Fatalf("pending = %v, want 8x6", got)
	}
	if !slices.Equal(c.Snapshot(), fixedRows(t, 8, 6)) {
		t.Fatal("mount must use the fixed 2/7 pattern")
	}
	if reqs := c.Boot(); reqs != nil {
		t.Fatalf("Boot on a stopped controller returned %v", reqs)
	}
}

func TestBootArmsRunningController(t *testing.T) {
	c := newTestController(t, func(cfg *Config) { cfg.Running = true })
	reqs := c.Boot()
	if !slices.Equal(reqs, []Request{RequestFrame}) {
		t.Fatalf("Boot = %v, want one frame request", reqs)
	}
	if c.Outstanding() != 1 {
		t.Fatalf("outstanding = %d, want 1", c.Outstanding())
	}
	if reqs := c.Boot(); reqs != nil {
		t.Fatalf("second Boot = %v, want nil", reqs)
	}
}

func TestStartTwiceLeavesOneRequest(t *testing.T) {
	c := newTestController(t, nil)
	first := c.Handle(Start())
	second := c.Handle(Start())
	if len(first)+len(second) != 1 {
		t.Fatalf("two starts produced %d requests, want 1", len(first)+len(second))
	}
	if c.Outstanding() != 1 {
		t.Fatalf("outstanding = %d, want 1", c.Outstanding())
	}
	if !c.Running() {
		t.Fatal("controller should be running")
	}
}

func TestTickAdvancesAndRearms(t *testing.T) {
	c := newTestController(t, nil)
	c.Handle(Start())

	for i := 1; i <= 3; i++ {
		reqs := c.Handle(Tick(16))
		if !slices.Equal(reqs, []Request{RequestFrame}) {
			t.Fatalf("tick %d re-armed %v, want one frame request", i, reqs)
		}
		if c.Generation() != uint32(i) {
			t.Fatalf("generation = %d, want %d", c.Generation(), i)
		}
		if c.Outstanding() != 1 {
			t.Fatalf("outstanding = %d, want 1", c.Outstanding())
		}
	}
	if !slices.Equal(c.Snapshot(), advancedRows(t, 8, 6, 3)) {
		t.Fatal("board does not match three advances of the fixed seed")
	}
}

func TestNonPositiveDeltaRearmsWithoutAdvancing(t *testing.T) {
	c := newTestController(t, nil)
	c.Handle(Start())
	before := c.Snapshot()
	for _, delta := range []float64{0, -3.5} {
		reqs := c.Handle(Tick(delta))
		if len(reqs) != 1 {
			t.Fatalf("tick(%v) returned %v, want a re-arm", delta, reqs)
		}
	}
	if c.Generation() != 0 {
		t.Fatalf("generation = %d, want 0", c.Generation())
	}
	if !slices.Equal(before, c.Snapshot()) {
		t.Fatal("board changed on a non-positive delta")
	}
}

func TestStopThenTickDoesNothing(t *testing.T) {
	c := newTestController(t, nil)
	c.Handle(Start())
	c.Handle(Stop())
	before := c.Snapshot()

	if reqs := c.Handle(Tick(16)); reqs != nil {
		t.Fatalf("tick after stop re-armed %v", reqs)
	}
	if c.Generation() != 0 {
		t.Fatalf("generation = %d, want 0", c.Generation())
	}
	if !slices.Equal(before, c.Snapshot()) {
		t.Fatal("tick after stop advanced the board")
	}
	if c.Outstanding() != 0 {
		t.Fatalf("outstanding = %d, want 0 once the in-flight tick is consumed", c.Outstanding())
	}
}

func TestStopIsIdempotent(t *testing.T) {
	c := newTestController(t, nil)
	c.Handle(Stop())
	c.Handle(Stop())
	if c.Running() {
		t.Fatal("controller should be stopped")
	}
}

func TestRestartWhileTickInFlight(t *testing.T) {
	c := newTestController(t, nil)
	c.Handle(Start())
	c.Handle(Stop())
	if reqs := c.Handle(Start()); reqs != nil {
		t.Fatalf("restart with a tick in flight requested %v", reqs)
	}
	if c.Outstanding() != 1 {
		t.Fatalf("outstanding = %d, want 1", c.Outstanding())
	}
	if reqs := c.Handle(Tick(16)); len(reqs) != 1 {
		t.Fatalf("in-flight tick should continue the chain, got %v", reqs)
	}
	if c.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", c.Generation())
	}
}

func TestStepOnlyWhenStopped(t *testing.T) {
	c := newTestController(t, nil)
	if reqs := c.Handle(Step()); reqs != nil {
		t.Fatalf("step requested %v", reqs)
	}
	if c.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", c.Generation())
	}
	if !slices.Equal(c.Snapshot(), advancedRows(t, 8, 6, 1)) {
		t.Fatal("step did not advance exactly once")
	}

	c.Handle(Start())
	c.Handle(Step())
	if c.Generation() != 1 {
		t.Fatalf("step while running changed generation to %d", c.Generation())
	}
}

func TestReshuffleKeepsSizeAndStops(t *testing.T) {
	c := newTestController(t, nil)
	c.Handle(SetPendingWidth("12"))
	c.Handle(SetPendingHeight("5"))
	c.Handle(ApplyResize())
	c.Handle(Start())
	c.Handle(Tick(16))

	c.Handle(Reshuffle())
	if c.Running() {
		t.Fatal("reshuffle must stop the controller")
	}
	if c.Generation() != 0 {
		t.Fatalf("generation = %d, want 0", c.Generation())
	}
	if got := c.Size(); got != (core.Size{W: 12, H: 5}) {
		t.Fatalf("size = %v, want current 12x5", got)
	}
	p := c.Periods()
	for _, v := range []int{p.First, p.Second} {
		if v < life.PeriodMin || v >= life.PeriodMax {
			t.Fatalf("reshuffled period %d out of range", v)
		}
	}
}

func TestResetRestoresDefault(t *testing.T) {
	c := newTestController(t, nil)
	c.Handle(SetPendingWidth("20"))
	c.Handle(ApplyResize())
	c.Handle(Reshuffle())
	c.Handle(Start())
	c.Handle(Tick(16))
	c.Handle(Tick(16))

	c.Handle(ResetToDefault())
	if c.Running() {
		t.Fatal("reset must stop the controller")
	}
	if c.Generation() != 0 {
		t.Fatalf("generation = %d, want 0", c.Generation())
	}
	if got := c.Size(); got != c.DefaultSize() {
		t.Fatalf("size = %v, want default %v", got, c.DefaultSize())
	}
	if c.Periods() != life.DefaultPeriods {
		t.Fatalf("periods = %v, want %v", c.Periods(), life.DefaultPeriods)
	}
	if !slices.Equal(c.Snapshot(), fixedRows(t, 8, 6)) {
		t.Fatal("reset must restore the fixed pattern")
	}
}

func TestResizeZeroFallsBackToDefault(t *testing.T) {
	c := newTestController(t, nil)
	c.Handle(SetPendingWidth("0"))
	c.Handle(SetPendingHeight("0"))
	c.Handle(ApplyResize())
	if got := c.Size(); got != c.DefaultSize() {
		t.Fatalf("size = %v, want default %v", got, c.DefaultSize())
	}
}

func TestResizeSingleZeroDimension(t *testing.T) {
	c := newTestController(t, nil)
	c.Handle(SetPendingWidth("0"))
	c.Handle(SetPendingHeight("9"))
	c.Handle(ApplyResize())
	if got := c.Size(); got != (core.Size{W: 8, H: 9}) {
		t.Fatalf("size = %v, want 8x9", got)
	}
}

func TestResizeAppliesPendingAndClamps(t *testing.T) {
	c := newTestController(t, nil)
	c.Handle(Start())
	c.Handle(SetPendingWidth("30"))
	c.Handle(SetPendingHeight("1000"))
	c.Handle(ApplyResize())
	if c.Running() {
		t.Fatal("resize must stop the controller")
	}
	if got := c.Size(); got != (core.Size{W: 30, H: DefaultMaxSize}) {
		t.Fatalf("size = %v, want 30x%d", got, DefaultMaxSize)
	}
	if !slices.Equal(c.Snapshot(), fixedRows(t, 30, DefaultMaxSize)) {
		t.Fatal("resize must seed the fixed pattern")
	}

	unbounded := newTestController(t, func(cfg *Config) { cfg.MaxSize = 0 })
	unbounded.Handle(SetPendingWidth("300"))
	unbounded.Handle(ApplyResize())
	if got := unbounded.Size().W; got != 300 {
		t.Fatalf("unbounded width = %d, want 300", got)
	}
}

func TestResizePastCellLimitFallsBackToDefault(t *testing.T) {
	var buf bytes.Buffer
	c := newTestController(t, func(cfg *Config) {
		cfg.MaxSize = 0
		cfg.Logger = log.New(&buf, "", 0)
	})
	c.Handle(SetPendingWidth("2147483647"))
	c.Handle(SetPendingHeight("2147483647"))
	c.Handle(ApplyResize())
	if got := c.Size(); got != c.DefaultSize() {
		t.Fatalf("size = %v, want default %v", got, c.DefaultSize())
	}
	if !slices.Equal(c.Snapshot(), fixedRows(t, 8, 6)) {
		t.Fatal("fallback must seed the fixed pattern")
	}
	if !strings.Contains(buf.String(), "exceeds") {
		t.Fatalf("expected the fallback to be logged, got %q", buf.String())
	}
}

func TestPendingParseFailuresAreIgnored(t *testing.T) {
	var buf bytes.Buffer
	c := newTestController(t, func(cfg *Config) { cfg.Logger = log.New(&buf, "", 0) })
	c.Handle(SetPendingWidth("17"))
	for _, bad := range []string{"", "abc", "-4", "1.5", " 9", "99999999999"} {
		c.Handle(SetPendingWidth(bad))
		c.Handle(SetPendingHeight(bad))
	}
	if got := c.PendingSize(); got != (core.Size{W: 17, H: 6}) {
		t.Fatalf("pending = %v, want 17x6", got)
	}
	if !strings.Contains(buf.String(), "ignored") {
		t.Fatalf("expected discarded input to be logged, got %q", buf.String())
	}
	if c.Size() != (core.Size{W: 8, H: 6}) {
		t.Fatal("pending edits must not touch the board before ApplyResize")
	}
}

func TestReshuffleDeterministicForSeed(t *testing.T) {
	a := newTestController(t, func(cfg *Config) { cfg.Seed = 7 })
	b := newTestController(t, func(cfg *Config) { cfg.Seed = 7 })
	for i := 0; i < 5; i++ {
		a.Handle(Reshuffle())
		b.Handle(Reshuffle())
		if a.Periods() != b.Periods() {
			t.Fatalf("reshuffle %d: periods %v vs %v", i, a.Periods(), b.Periods())
		}
	}
}

func TestRandomMountMode(t *testing.T) {
	c := newTestController(t, func(cfg *Config) { cfg.Mode = life.Random })
	p := c.Periods()
	if p.First < life.PeriodMin || p.First >= life.PeriodMax || p.Second < life.PeriodMin || p.Second >= life.PeriodMax {
		t.Fatalf("random mount periods %v out of range", p)
	}
}

func TestCellsRowMajor(t *testing.T) {
	c := newTestController(t, nil)
	cells := c.Cells(nil)
	if len(cells) != 48 {
		t.Fatalf("len(cells) = %d, want 48", len(cells))
	}
	for i, v := range cells {
		want := uint8(0)
		if i%2 == 0 || i%7 == 0 {
			want = 1
		}
		if v != want {
			t.Fatalf("cell %d = %d, want %d", i, v, want)
		}
	}
}
