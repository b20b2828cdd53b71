package sim

import (
	"strconv"

	"torus-life/internal/core"
)

// Keys of the HUD-adjustable parameters.
const (
	ParamPendingWidth  = "pending_w"
	ParamPendingHeight = "pending_h"
)

// Parameters exposes the board state for HUD panels.
func (c *Controller) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				textParam("size", "Size", c.Size().String()),
				intParam("generation", "Generation", int(c.generation)),
				intParam("population", "Population", c.Population()),
				boolParam("running", "Running", c.running),
				textParam("periods", "Periods", c.periods.String()),
			},
		},
		{
			Name: "Resize",
			Params: []core.Parameter{
				intParam(ParamPendingWidth, "Width", c.pending.W),
				intParam(ParamPendingHeight, "Height", c.pending.H),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the pending-size fields. The bounds are input hints
// only; ApplyResize does its own clamping.
func (c *Controller) ParameterControls() []core.ParameterControl {
	limit := c.cfg.MaxSize
	if limit <= 0 {
		limit = DefaultMaxSize
	}
	return []core.ParameterControl{
		{Key: ParamPendingWidth, Label: "Width", Step: 1, Min: 1, Max: limit, HasMin: true, HasMax: true},
		{Key: ParamPendingHeight, Label: "Height", Step: 1, Min: 1, Max: limit, HasMin: true, HasMax: true},
	}
}

// ParameterEvent converts a HUD adjustment into the matching input event.
func ParameterEvent(key string, value int) (Event, bool) {
	switch key {
	case ParamPendingWidth:
		return SetPendingWidth(strconv.Itoa(value)), true
	case ParamPendingHeight:
		return SetPendingHeight(strconv.Itoa(value)), true
	}
	return Event{}, false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: value}
}
