package types

import "fmt"

// EventKind identifies a logical event understood by the engine.
// Numeric values are part of the engine protocol and must not change.
type EventKind int

const (
	KindSystemKey         EventKind = 0
	KindKey               EventKind = 1
	KindDpad              EventKind = 2
	KindPointerDown       EventKind = 3
	KindScroll            EventKind = 4
	KindTap               EventKind = 5
	KindDoubleTap         EventKind = 6
	KindMultiTouchPointer EventKind = 7
	KindTrackball         EventKind = 8
	KindLeftMouseDown     EventKind = 9
	KindLeftMouseUp       EventKind = 10
	KindRightMouseDown    EventKind = 11
	KindRightMouseUp      EventKind = 12
	KindMouseMove         EventKind = 13
	KindGamepad           EventKind = 14
	KindJoystick          EventKind = 15
	KindMiddleMouseDown   EventKind = 16
	KindMiddleMouseUp     EventKind = 17
	KindBackMouseDown     EventKind = 18
	KindBackMouseUp       EventKind = 19
	KindForwardMouseDown  EventKind = 20
	KindForwardMouseUp    EventKind = 21
	KindQuit              EventKind = 0x1000
)

var kindNames = map[EventKind]string{
	KindSystemKey:         "system_key",
	KindKey:               "key",
	KindDpad:              "dpad",
	KindPointerDown:       "pointer_down",
	KindScroll:            "scroll",
	KindTap:               "tap",
	KindDoubleTap:         "double_tap",
	KindMultiTouchPointer: "multi_touch_pointer",
	KindTrackball:         "trackball",
	KindLeftMouseDown:     "left_mouse_down",
	KindLeftMouseUp:       "left_mouse_up",
	KindRightMouseDown:    "right_mouse_down",
	KindRightMouseUp:      "right_mouse_up",
	KindMouseMove:         "mouse_move",
	KindGamepad:           "gamepad",
	KindJoystick:          "joystick",
	KindMiddleMouseDown:   "middle_mouse_down",
	KindMiddleMouseUp:     "middle_mouse_up",
	KindBackMouseDown:     "back_mouse_down",
	KindBackMouseUp:       "back_mouse_up",
	KindForwardMouseDown:  "forward_mouse_down",
	KindForwardMouseUp:    "forward_mouse_up",
	KindQuit:              "quit",
}

func (k EventKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsKeyFamily reports whether args follow the key layout
// (action, code, unicode, meta, repeat, hold duration).
func (k EventKind) IsKeyFamily() bool {
	switch k {
	case KindSystemKey, KindKey, KindDpad, KindGamepad:
		return true
	}
	return false
}

// LogicalEvent is the normalized event handed to the engine.
// The meaning of Args depends on Kind; unused slots are zero.
type LogicalEvent struct {
	Kind EventKind `json:"kind"`
	Args [6]int    `json:"args"`
}

// NewEvent builds a LogicalEvent, zero-filling missing args.
// Extra args beyond the sixth slot are dropped.
func NewEvent(kind EventKind, args ...int) LogicalEvent {
	ev := LogicalEvent{Kind: kind}
	copy(ev.Args[:], args)
	return ev
}

func (e LogicalEvent) String() string {
	return fmt.Sprintf("%s%v", e.Kind, e.Args)
}
