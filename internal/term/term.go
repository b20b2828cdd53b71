// Package term runs the simulation in a terminal using tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/loop"
	"torus-life/internal/sim"
	"torus-life/pkg/life"

	"github.com/gdamore/tcell/v2"
)

type field uint8

const (
	fieldNone field = iota
	fieldWidth
	fieldHeight
)

// Editor tracks the focused pending-size input and its raw text.
type Editor struct {
	focus  field
	width  string
	height string
}

// Key translates a key press into controller events. running is the
// controller's current state and decides what the space bar does.
func (e *Editor) Key(ev *tcell.EventKey, running bool) (events []sim.Event, quit bool) {
	if ev.Key() == tcell.KeyCtrlC {
		return nil, true
	}
	if e.focus != fieldNone {
		return e.editKey(ev), false
	}
	switch ev.Key() {
	case tcell.KeyEscape:
		return nil, true
	case tcell.KeyEnter:
		return []sim.Event{sim.ApplyResize()}, false
	case tcell.KeyRune:
	default:
		return nil, false
	}
	switch ev.Rune() {
	case 'q':
		return nil, true
	case ' ':
		if running {
			return []sim.Event{sim.Stop()}, false
		}
		return []sim.Event{sim.Start()}, false
	case 'n':
		return []sim.Event{sim.Step()}, false
	case 's':
		return []sim.Event{sim.Reshuffle()}, false
	case 'r':
		return []sim.Event{sim.ResetToDefault()}, false
	case 'w':
		e.focus, e.width = fieldWidth, ""
	case 'h':
		e.focus, e.height = fieldHeight, ""
	}
	return nil, false
}

func (e *Editor) editKey(ev *tcell.EventKey) []sim.Event {
	text := &e.width
	if e.focus == fieldHeight {
		text = &e.height
	}
	switch ev.Key() {
	case tcell.KeyEscape:
		e.focus = fieldNone
		return nil
	case tcell.KeyEnter:
		e.focus = fieldNone
		return []sim.Event{sim.ApplyResize()}
	case tcell.KeyTab:
		if e.focus == fieldWidth {
			e.focus, e.height = fieldHeight, ""
		} else {
			e.focus, e.width = fieldWidth, ""
		}
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if *text == "" {
			return nil
		}
		r := []rune(*text)
		*text = string(r[:len(r)-1])
	case tcell.KeyRune:
		*text += string(ev.Rune())
	default:
		return nil
	}
	return []sim.Event{e.inputEvent(*text)}
}

func (e *Editor) inputEvent(text string) sim.Event {
	if e.focus == fieldHeight {
		return sim.SetPendingHeight(text)
	}
	return sim.SetPendingWidth(text)
}

var (
	boardStyle  = tcell.StyleDefault
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	focusStyle  = tcell.StyleDefault.Reverse(true)
)

const hints = "space start/stop  n step  s reshuffle  r reset  w/h edit size  enter resize  q quit"

// Draw renders the board snapshot followed by the status, input and hint lines.
func Draw(screen tcell.Screen, view core.View, ed *Editor) {
	screen.Clear()
	cols, lines := screen.Size()
	rows := view.Rows(life.AliveGlyph, life.DeadGlyph)
	y := 0
	for _, row := range rows {
		if y >= lines-3 {
			break
		}
		putString(screen, 0, y, cols, row, boardStyle)
		y++
	}

	state := "stopped"
	if view.Running() {
		state = "running"
	}
	size := view.Size()
	status := fmt.Sprintf("generation %d  %s  %s  population %d", view.Generation(), state, size, view.Population())
	putString(screen, 0, y, cols, status, statusStyle)
	y++

	pending := view.PendingSize()
	x := putString(screen, 0, y, cols, "width ", statusStyle)
	x = putString(screen, x, y, cols, ed.fieldText(fieldWidth, pending.W), ed.fieldStyle(fieldWidth))
	x = putString(screen, x, y, cols, "  height ", statusStyle)
	putString(screen, x, y, cols, ed.fieldText(fieldHeight, pending.H), ed.fieldStyle(fieldHeight))
	y++

	putString(screen, 0, y, cols, hints, statusStyle)
	screen.Show()
}

func (e *Editor) fieldText(f field, pending int) string {
	if e.focus == f {
		if f == fieldWidth {
			return "[" + e.width + "_]"
		}
		return "[" + e.height + "_]"
	}
	return fmt.Sprintf("[%d]", pending)
}

func (e *Editor) fieldStyle(f field) tcell.Style {
	if e.focus == f {
		return focusStyle
	}
	return statusStyle
}

func putString(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= maxX {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// Run drives l at fps frames per second until ctx is done or the user quits.
// The caller owns screen initialisation and teardown.
func Run(ctx context.Context, screen tcell.Screen, l *loop.Loop, fps int) error {
	if fps <= 0 {
		fps = 30
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan *tcell.EventKey, 16)
	go poll(ctx, screen, keys)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	clock := core.NewFrameClock()
	ed := &Editor{}
	Draw(screen, l, ed)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-keys:
			events, quit := ed.Key(ev, l.Running())
			if quit {
				return nil
			}
			for _, e := range events {
				l.Post(e)
			}
		case <-ticker.C:
			l.Frame(clock.Delta())
			Draw(screen, l, ed)
		}
	}
}

func poll(ctx context.Context, screen tcell.Screen, keys chan<- *tcell.EventKey) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			select {
			case keys <- ev:
			case <-ctx.Done():
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
