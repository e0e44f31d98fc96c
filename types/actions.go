package types

import (
	"fmt"
	"strconv"
	"strings"
)

var keyActionNames = map[string]int{
	"down":     KeyActionDown,
	"up":       KeyActionUp,
	"multiple": KeyActionMultiple,
}

var motionActionNames = map[string]int{
	"down":           MotionActionDown,
	"up":             MotionActionUp,
	"move":           MotionActionMove,
	"cancel":         MotionActionCancel,
	"outside":        MotionActionOutside,
	"pointer_down":   MotionActionPointerDown,
	"pointer_up":     MotionActionPointerUp,
	"hover_move":     MotionActionHoverMove,
	"scroll":         MotionActionScroll,
	"hover_enter":    MotionActionHoverEnter,
	"hover_exit":     MotionActionHoverExit,
	"button_press":   MotionActionButtonPress,
	"button_release": MotionActionButtonRelease,
}

// ParseKeyAction accepts "down", "up", "multiple" or a number.
func ParseKeyAction(s string) (int, error) {
	return parseAction(s, keyActionNames, "key")
}

// ParseMotionAction accepts a motion action name such as "pointer_down" or a
// number.
func ParseMotionAction(s string) (int, error) {
	return parseAction(s, motionActionNames, "motion")
}

func parseAction(s string, names map[string]int, what string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if action, ok := names[s]; ok {
		return action, nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n, nil
	}
	return 0, fmt.Errorf("unknown %s action %q", what, s)
}

// WithPointerIndex encodes a pointer index into a motion action.
func WithPointerIndex(action, pointer int) int {
	return action&MotionActionMask | (pointer<<MotionPointerIndexShift)&MotionPointerIndexMask
}
