package events

import (
	"github.com/mobile-next/mobileinput/types"
	"github.com/mobile-next/mobileinput/utils"
)

// HandleTouch routes a touch signal to the screen keyboard, the mouse helper,
// the multi-touch path or the gesture recognizer.
func (n *Normalizer) HandleTouch(sig types.MotionSignal) bool {
	if n.keyboard != nil && n.keyboard.IsShownWithoutTextField() {
		bounds := n.keyboard.Bounds()
		if bounds.ContainsY(sig.Y) {
			// the keyboard gets its own copy; routing below keeps screen coordinates
			local := sig
			local.Offset(-float32(bounds.X), -float32(bounds.Y))
			n.keyboard.OnTouch(local)
		}
	}

	if n.mouse != nil && n.mouse.IsMouse(sig) {
		return n.mouse.OnMouseEvent(sig, false)
	}

	if pointer := sig.PointerIndex(); pointer > 0 {
		n.push(types.NewEvent(types.KindMultiTouchPointer,
			pointer,
			sig.MaskedAction(),
			int(sig.X),
			int(sig.Y),
		))
		return true
	}

	if n.gestures == nil {
		return false
	}
	return n.gestures.OnTouchEvent(sig)
}

// HandleTrackball pushes a trackball event scaled by the signal's precision.
func (n *Normalizer) HandleTrackball(sig types.MotionSignal) bool {
	// precisions are platform-supplied; a zero precision yields a zero delta
	n.push(types.NewEvent(types.KindTrackball,
		sig.Action,
		int(sig.X*sig.XPrecision*n.cfg.TrackballScale),
		int(sig.Y*sig.YPrecision*n.cfg.TrackballScale),
	))
	return true
}

// HandleGenericMotion handles joystick axes and mouse hover/scroll.
func (n *Normalizer) HandleGenericMotion(sig types.MotionSignal) bool {
	if types.IsFromSource(sig.Source, types.SourceJoystick) {
		if sig.MaskedAction() != types.MotionActionMove {
			return false
		}
		n.push(types.NewEvent(types.KindJoystick,
			sig.Action,
			int(sig.X*n.cfg.JoystickScale),
			int(sig.Y*n.cfg.JoystickScale),
		))
		return true
	}

	if n.mouse != nil && n.mouse.IsMouse(sig) {
		switch sig.MaskedAction() {
		case types.MotionActionHoverMove, types.MotionActionScroll,
			types.MotionActionButtonPress, types.MotionActionButtonRelease:
			return n.mouse.OnMouseEvent(sig, true)
		}
	}

	utils.Verbose("generic motion action %d from source %#x not handled", sig.Action, sig.Source)
	return false
}
