package ui

import "torus-life/internal/core"

// adjustTarget steps value by one control step in direction and clamps the
// result to the control's bounds. It reports false when nothing would change.
func adjustTarget(ctrl core.ParameterControl, value, direction int) (int, bool) {
	if direction == 0 {
		return value, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, target != value
}
