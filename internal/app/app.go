//go:build ebiten

package app

import (
	"torus-life/internal/core"
	"torus-life/internal/loop"
	"torus-life/internal/render"
	"torus-life/internal/sim"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a simulation loop to the ebiten.Game interface. ebiten's
// Update cadence plays the role of the display refresh.
type Game struct {
	loop    *loop.Loop
	clock   *core.FrameClock
	painter *render.GridPainter
	hud     *ui.HUD
	palette render.Palette

	scale    int
	lastSize core.Size
}

// hudMinHeight keeps the HUD readable on small boards.
const hudMinHeight = 420

// New constructs a Game for the provided loop.
func New(l *loop.Loop, scale, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := l.Size()
	return &Game{
		loop:    l,
		clock:   core.NewFrameClock(),
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(l, hudWidth),
		palette: render.DefaultPalette,
		scale:   scale,

		lastSize: size,
	}
}

// Update maps key presses to events and runs one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.loop.Running() {
			g.loop.Post(sim.Stop())
		} else {
			g.loop.Post(sim.Start())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.loop.Post(sim.Step())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.loop.Post(sim.Reshuffle())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.loop.Post(sim.ResetToDefault())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.loop.Post(sim.ApplyResize())
	}

	size := g.loop.Size()
	g.hud.Update(size.W * g.scale)

	g.loop.Frame(g.clock.Delta())

	size = g.loop.Size()
	if size != g.lastSize {
		g.lastSize = size
		g.painter.Resize(size.W, size.H)
		ebiten.SetWindowSize(g.WindowSize())
	}
	return nil
}

// Draw renders the board and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.loop.Cells, g.palette, g.scale)
	size := g.loop.Size()
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, size.W*g.scale, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.loop.Size()
	h := s.H * g.scale
	if g.hud.Width() > 0 {
		h = max(h, hudMinHeight)
	}
	return s.W*g.scale + g.hud.Width(), h
}

// WindowSize returns the window size matching the current board.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
