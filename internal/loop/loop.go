// Package loop feeds a sim.Controller from front ends. Input events are
// queued from any goroutine; the frame owner drains them and answers the
// controller's frame request with a Tick once per frame.
package loop

import (
	"sync"

	"torus-life/internal/core"
	"torus-life/internal/sim"
)

// Loop serializes events into a Controller and tracks its frame request.
type Loop struct {
	ctrl *sim.Controller

	mu    sync.Mutex
	queue []sim.Event

	// pending is set while the controller waits for a Tick.
	pending bool
}

// New wraps c and records any frame request it makes at mount.
func New(c *sim.Controller) *Loop {
	l := &Loop{ctrl: c}
	l.record(c.Boot())
	return l
}

// Post queues ev for the next Frame.
func (l *Loop) Post(ev sim.Event) {
	l.mu.Lock()
	l.queue = append(l.queue, ev)
	l.mu.Unlock()
}

// Frame processes queued events in order, then delivers one Tick carrying
// delta if the controller asked for it. It reports whether a Tick was
// delivered. Frame and the query methods must be called from one goroutine.
func (l *Loop) Frame(delta float64) bool {
	l.mu.Lock()
	events := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, ev := range events {
		l.record(l.ctrl.Handle(ev))
	}
	if !l.pending {
		return false
	}
	l.pending = false
	l.record(l.ctrl.Handle(sim.Tick(delta)))
	return true
}

func (l *Loop) record(reqs []sim.Request) {
	for _, r := range reqs {
		if r == sim.RequestFrame {
			l.pending = true
		}
	}
}

// Pending reports whether a frame request is waiting for the next Frame.
func (l *Loop) Pending() bool { return l.pending }

// Controller exposes the wrapped controller for read-only queries.
func (l *Loop) Controller() *sim.Controller { return l.ctrl }

func (l *Loop) Size() core.Size { return l.ctrl.Size() }
func (l *Loop) Generation() uint32 { return l.ctrl.Generation() }
func (l *Loop) Running() bool { return l.ctrl.Running() }
func (l *Loop) Population() int { return l.ctrl.Population() }
func (l *Loop) PendingSize() core.Size { return l.ctrl.PendingSize() }
func (l *Loop) Rows(alive, dead rune) []string { return l.ctrl.Rows(alive, dead) }
func (l *Loop) Cells(dst []uint8) []uint8 { return l.ctrl.Cells(dst) }

// Parameters exposes the controller's HUD snapshot.
func (l *Loop) Parameters() core.ParameterSnapshot { return l.ctrl.Parameters() }

// ParameterControls exposes the controller's adjustable fields.
func (l *Loop) ParameterControls() []core.ParameterControl { return l.ctrl.ParameterControls() }

// SetIntParameter queues the input event matching a HUD adjustment.
func (l *Loop) SetIntParameter(key string, value int) bool {
	ev, ok := sim.ParameterEvent(key, value)
	if !ok {
		return false
	}
	l.Post(ev)
	return true
}

var (
	_ core.View                      = (*Loop)(nil)
	_ core.ParameterControlsProvider = (*Loop)(nil)
	_ core.IntParameterSetter        = (*Loop)(nil)
)
