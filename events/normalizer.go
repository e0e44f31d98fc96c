// Package events normalizes raw key and motion signals into the ordered
// LogicalEvent stream consumed by the engine.
//
// A Normalizer is not safe for concurrent use. Every Handle* call, and every
// scheduler delivery, must happen on the same goroutine (see package looper).
package events

import (
	"errors"

	"github.com/mobile-next/mobileinput/types"
	"github.com/mobile-next/mobileinput/utils"
)

// Options wires a Normalizer to its collaborators. Sink and NewScheduler are
// required; the rest may be nil, in which case the branch that needs them is
// never taken.
type Options struct {
	Config Config
	Sink   Sink

	NewScheduler         SchedulerFactory
	NewGestureRecognizer GestureRecognizerFactory

	Keyboard ScreenKeyboard
	Mouse    MouseHelper
	CharMap  CharacterMap
}

// Normalizer is the input normalization state machine.
type Normalizer struct {
	cfg  Config
	sink Sink

	scheduler Scheduler
	gestures  GestureRecognizer
	keyboard  ScreenKeyboard
	mouse     MouseHelper
	charMap   CharacterMap
}

// NewNormalizer creates a normalizer from opts.
func NewNormalizer(opts Options) (*Normalizer, error) {
	if opts.Sink == nil {
		return nil, errors.New("events: sink is required")
	}
	if opts.NewScheduler == nil {
		return nil, errors.New("events: scheduler factory is required")
	}

	n := &Normalizer{
		cfg:      opts.Config,
		sink:     opts.Sink,
		keyboard: opts.Keyboard,
		mouse:    opts.Mouse,
		charMap:  opts.CharMap,
	}

	n.scheduler = opts.NewScheduler(n, (*Normalizer).handleMessage)
	if n.scheduler == nil {
		return nil, errors.New("events: scheduler factory returned nil")
	}

	if opts.NewGestureRecognizer != nil {
		n.gestures = opts.NewGestureRecognizer(n)
	}

	return n, nil
}

// Config returns the configuration in use.
func (n *Normalizer) Config() Config {
	return n.cfg
}

// SendQuit pushes the Quit event.
func (n *Normalizer) SendQuit() {
	n.push(types.NewEvent(types.KindQuit))
}

// ClearEventHandler cancels every pending long-press timer. Call it before
// discarding the normalizer.
func (n *Normalizer) ClearEventHandler() {
	n.scheduler.Clear()
}

func (n *Normalizer) push(ev types.LogicalEvent) {
	utils.Verbose("push %s", ev)
	n.sink.PushEvent(ev)
}
