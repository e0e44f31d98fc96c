package events

import (
	"time"

	"github.com/mobile-next/mobileinput/types"
)

// Sink receives normalized events in decision order. PushEvent must not block.
type Sink interface {
	PushEvent(ev types.LogicalEvent)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ev types.LogicalEvent)

func (f SinkFunc) PushEvent(ev types.LogicalEvent) {
	f(ev)
}

// Scheduler delivers delayed messages on the same goroutine that feeds the
// normalizer. looper.Handler satisfies it.
type Scheduler interface {
	SendDelayed(what int, delay time.Duration)
	HasPending(what int) bool
	Remove(what int)
	Clear()
}

// SchedulerFactory builds the scheduler for n. The scheduler must call
// deliver(n, what) when a message comes due, and must not keep n alive.
type SchedulerFactory func(n *Normalizer, deliver func(*Normalizer, int)) Scheduler

// GestureRecognizer turns primary-pointer touch signals into gesture
// callbacks on the normalizer.
type GestureRecognizer interface {
	OnTouchEvent(sig types.MotionSignal) bool
}

// GestureRecognizerFactory builds the recognizer that reports to n.
type GestureRecognizerFactory func(n *Normalizer) GestureRecognizer

// MouseHelper recognizes mouse-originated signals and emits the mouse
// button and move events for them itself.
type MouseHelper interface {
	IsMouse(sig types.MotionSignal) bool
	IsMouseKey(sig types.KeySignal) bool
	OnMouseEvent(sig types.MotionSignal, hover bool) bool
}

// ScreenKeyboard is the host window's on-screen keyboard. The host owns the
// keyboard mode; the normalizer only queries it.
type ScreenKeyboard interface {
	IsShownWithoutTextField() bool
	Bounds() types.Rect
	// OnTouch receives a touch already translated into keyboard coordinates.
	OnTouch(sig types.MotionSignal)
	HideScreenKeyboard()
	ToggleScreenKeyboard()
}

// CharacterMap resolves a character string into discrete key signals for a
// device. It returns nil when the string cannot be typed.
type CharacterMap interface {
	Events(deviceID int, chars string) []types.KeySignal
}
