package events

import (
	"time"

	"github.com/mobile-next/mobileinput/types"
)

// Config holds the platform values the normalizer depends on.
type Config struct {
	// LongPressTimeout is how long Menu or Back must be held before the
	// long-press action runs.
	// Default: 500ms
	LongPressTimeout time.Duration

	// IMESentinel is the placeholder character the text-input shim uses for
	// "no real character". Zero disables the filter.
	// Default: '/'
	IMESentinel rune

	// HoverKeyCode is the key code sent on hover enter/exit.
	// Default: 238
	HoverKeyCode int

	// TrackballScale multiplies trackball deltas after precision scaling.
	// Default: 100
	TrackballScale float32

	// JoystickScale maps joystick axis values in [-1, 1] to integers.
	// Default: 32767
	JoystickScale float32
}

// DefaultConfig returns the stock platform values.
func DefaultConfig() Config {
	return Config{
		LongPressTimeout: 500 * time.Millisecond,
		IMESentinel:      '/',
		HoverKeyCode:     types.KeyCodeHoverArtifact,
		TrackballScale:   100,
		JoystickScale:    32767,
	}
}
