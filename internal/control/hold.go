package control

import "math"

// HoldLoop nudges the target while an arrow key is held. It runs once per
// frame and stops on its own when both keys are up.
type HoldLoop struct {
	left, right bool
}

// Press marks k held. It reports false for a key that is already down, so
// keyboard auto-repeat does not restart anything.
func (h *HoldLoop) Press(k Key) bool {
	switch k {
	case KeyLeft:
		if h.left {
			return false
		}
		h.left = true
	case KeyRight:
		if h.right {
			return false
		}
		h.right = true
	default:
		return false
	}
	return true
}

func (h *HoldLoop) Release(k Key) {
	switch k {
	case KeyLeft:
		h.left = false
	case KeyRight:
		h.right = false
	}
}

func (h *HoldLoop) Active() bool { return h.left || h.right }

func (h *HoldLoop) Reset() { h.left, h.right = false, false }

// Frame applies one frame of held keys to target, clamped to [0, max].
// changed is false when nothing is held or the target sits at a bound.
func (h *HoldLoop) Frame(target, max, step float64) (next float64, changed bool) {
	if !h.Active() {
		return target, false
	}
	next = target
	if h.left {
		next = math.Max(0, next-step)
	}
	if h.right {
		next = math.Min(max, next+step)
	}
	return next, next != target
}
