package sim

import "fmt"

// EventKind enumerates the inputs a Controller reacts to.
type EventKind uint8

const (
	EventStart EventKind = iota
	EventStop
	EventStep
	EventTick
	EventReshuffle
	EventReset
	EventResize
	EventPendingWidth
	EventPendingHeight
)

var eventNames = [...]string{
	EventStart:         "start",
	EventStop:          "stop",
	EventStep:          "step",
	EventTick:          "tick",
	EventReshuffle:     "reshuffle",
	EventReset:         "reset",
	EventResize:        "resize",
	EventPendingWidth:  "pending-width",
	EventPendingHeight: "pending-height",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is a single discrete message delivered to a Controller.
type Event struct {
	Kind EventKind
	// Delta is the frame time delta carried by EventTick. Only positive
	// values advance the board.
	Delta float64
	// Text is the raw input carried by EventPendingWidth/Height.
	Text string
}

func (e Event) String() string {
	switch e.Kind {
	case EventTick:
		return fmt.Sprintf("tick(%g)", e.Delta)
	case EventPendingWidth, EventPendingHeight:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Text)
	}
	return e.Kind.String()
}

// Start requests the Running state.
func Start() Event { return Event{Kind: EventStart} }

// Stop requests the Stopped state.
func Stop() Event { return Event{Kind: EventStop} }

// Step advances a stopped board by one generation.
func Step() Event { return Event{Kind: EventStep} }

// Tick is the scheduler's answer to a RequestFrame.
func Tick(delta float64) Event { return Event{Kind: EventTick, Delta: delta} }

// Reshuffle reseeds the current size with random periods.
func Reshuffle() Event { return Event{Kind: EventReshuffle} }

// ResetToDefault reseeds the default size with the fixed pattern.
func ResetToDefault() Event { return Event{Kind: EventReset} }

// ApplyResize rebuilds the board at the pending size.
func ApplyResize() Event { return Event{Kind: EventResize} }

// SetPendingWidth stages a width typed by the user.
func SetPendingWidth(s string) Event { return Event{Kind: EventPendingWidth, Text: s} }

// SetPendingHeight stages a height typed by the user.
func SetPendingHeight(s string) Event { return Event{Kind: EventPendingHeight, Text: s} }

// Request is an outbound message from a Controller to its scheduler.
type Request uint8

const (
	// RequestFrame asks for one Tick after the next display refresh.
	RequestFrame Request = iota + 1
)

func (r Request) String() string {
	if r == RequestFrame {
		return "frame"
	}
	return fmt.Sprintf("Request(%d)", uint8(r))
}
