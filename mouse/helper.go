// Package mouse turns mouse and stylus motion into button and move events.
package mouse

import (
	"github.com/mobile-next/mobileinput/events"
	"github.com/mobile-next/mobileinput/types"
	"github.com/mobile-next/mobileinput/utils"
)

type button struct {
	mask int
	down types.EventKind
	up   types.EventKind
	name string
}

// order matters: presses and releases are reported in this order
var buttons = []button{
	{types.ButtonPrimary, types.KindLeftMouseDown, types.KindLeftMouseUp, "left"},
	{types.ButtonSecondary, types.KindRightMouseDown, types.KindRightMouseUp, "right"},
	{types.ButtonTertiary, types.KindMiddleMouseDown, types.KindMiddleMouseUp, "middle"},
	{types.ButtonBack, types.KindBackMouseDown, types.KindBackMouseUp, "back"},
	{types.ButtonForward, types.KindForwardMouseDown, types.KindForwardMouseUp, "forward"},
}

// Helper implements events.MouseHelper. It remembers the last button state
// so every press and release is reported exactly once.
type Helper struct {
	sink        events.Sink
	buttonState int
}

func NewHelper(sink events.Sink) *Helper {
	return &Helper{sink: sink}
}

// IsMouse reports whether a motion signal comes from a mouse or stylus
// rather than a finger.
func (h *Helper) IsMouse(sig types.MotionSignal) bool {
	switch sig.ToolType {
	case types.ToolTypeMouse, types.ToolTypeStylus, types.ToolTypeEraser:
		return true
	case types.ToolTypeFinger:
		return false
	}
	return isMouseSource(sig.Source)
}

// IsMouseKey reports whether a key signal was synthesized by a mouse, as
// happens with the back key on right click.
func (h *Helper) IsMouseKey(sig types.KeySignal) bool {
	return isMouseSource(sig.Source)
}

func isMouseSource(source int) bool {
	return types.IsFromSource(source, types.SourceMouse) ||
		types.IsFromSource(source, types.SourceStylus) ||
		types.IsFromSource(source, types.SourceMouseRelative)
}

// OnMouseEvent emits button transitions and movement for sig.
func (h *Helper) OnMouseEvent(sig types.MotionSignal, hover bool) bool {
	x, y := int(sig.X), int(sig.Y)
	state := sig.ButtonState

	// touch-style mouse reports carry no button state; the primary button is
	// implied by down/up
	if state == 0 && !hover {
		switch sig.MaskedAction() {
		case types.MotionActionDown, types.MotionActionMove:
			state = types.ButtonPrimary
		}
	}

	changed := state ^ h.buttonState
	for _, b := range buttons {
		if changed&b.mask == 0 {
			continue
		}
		if state&b.mask != 0 {
			utils.Verbose("mouse %s down at (%d,%d)", b.name, x, y)
			h.sink.PushEvent(types.NewEvent(b.down, x, y))
		} else {
			utils.Verbose("mouse %s up at (%d,%d)", b.name, x, y)
			h.sink.PushEvent(types.NewEvent(b.up, x, y))
		}
	}
	h.buttonState = state

	switch sig.MaskedAction() {
	case types.MotionActionMove, types.MotionActionHoverMove:
		h.sink.PushEvent(types.NewEvent(types.KindMouseMove, x, y))
	}

	return true
}

// ButtonState returns the last seen button state.
func (h *Helper) ButtonState() int {
	return h.buttonState
}
