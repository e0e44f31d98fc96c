// Package session ties a normalizer to its looper, event queue and host
// collaborators, and tracks live sessions.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mobile-next/mobileinput/charmap"
	"github.com/mobile-next/mobileinput/config"
	"github.com/mobile-next/mobileinput/events"
	"github.com/mobile-next/mobileinput/gesture"
	"github.com/mobile-next/mobileinput/looper"
	"github.com/mobile-next/mobileinput/mouse"
	"github.com/mobile-next/mobileinput/types"
	"github.com/mobile-next/mobileinput/utils"
)

// Session is one host window's input pipeline. All signals are handled on
// the session's looper, so a Session is safe for concurrent use.
type Session struct {
	ID      string
	Created time.Time

	looper     *looper.Looper
	normalizer *events.Normalizer
	queue      *events.Queue
	keyboard   *HostKeyboard

	// only touched on the looper
	start       time.Time
	downTimes   map[int]int64
	motionDowns map[motionStream]int64

	closeOnce sync.Once
}

// New starts a session configured by cfg. charMap may be nil, in which case
// multi-character key signals produce no events.
func New(cfg *config.Config, charMap *charmap.Map) (*Session, error) {
	l := looper.New()
	l.Start()

	screen := cfg.Screen
	keyboard := NewHostKeyboard(types.Rect{
		X:      0,
		Y:      screen.Height - screen.KeyboardHeight,
		Width:  screen.Width,
		Height: screen.KeyboardHeight,
	})

	queue := events.NewQueue()

	opts := events.Options{
		Config: cfg.Input,
		Sink:   queue,
		NewScheduler: func(n *events.Normalizer, deliver func(*events.Normalizer, int)) events.Scheduler {
			return looper.NewHandler(l, n, deliver)
		},
		NewGestureRecognizer: func(n *events.Normalizer) events.GestureRecognizer {
			return gesture.NewDetector(cfg.Gesture, n)
		},
		Keyboard: keyboard,
		Mouse:    mouse.NewHelper(queue),
	}
	if charMap != nil {
		opts.CharMap = charMap
	}

	n, err := events.NewNormalizer(opts)
	if err != nil {
		l.Quit()
		return nil, fmt.Errorf("failed to create normalizer: %w", err)
	}

	now := time.Now()
	s := &Session{
		ID:         uuid.NewString(),
		Created:    now,
		looper:     l,
		normalizer: n,
		queue:      queue,
		keyboard:   keyboard,
		start:       now,
		downTimes:   make(map[int]int64),
		motionDowns: make(map[motionStream]int64),
	}

	utils.Verbose("session %s started", s.ID)
	return s, nil
}

// uptime is milliseconds since the session started, the clock used for
// signals that arrive without timestamps.
func (s *Session) uptime() int64 {
	return time.Since(s.start).Milliseconds()
}

// stampKey fills in missing times. An up without a down time takes the time
// of the matching down.
func (s *Session) stampKey(sig *types.KeySignal) {
	if sig.EventTime == 0 {
		sig.EventTime = s.uptime()
	}

	switch sig.Action {
	case types.KeyActionDown:
		if sig.DownTime == 0 {
			sig.DownTime = sig.EventTime
		}
		if sig.RepeatCount == 0 {
			s.downTimes[sig.KeyCode] = sig.DownTime
		}
	case types.KeyActionUp:
		if sig.DownTime == 0 {
			if t, ok := s.downTimes[sig.KeyCode]; ok {
				sig.DownTime = t
			} else {
				sig.DownTime = sig.EventTime
			}
		}
		delete(s.downTimes, sig.KeyCode)
	default:
		if sig.DownTime == 0 {
			sig.DownTime = sig.EventTime
		}
	}
}

// motionStream separates the gestures of the three motion entry points.
type motionStream int

const (
	streamTouch motionStream = iota
	streamTrackball
	streamGeneric
)

// stampMotion fills in missing times. Signals without a down time take the
// time of the primary down that started the gesture, until its up or cancel.
func (s *Session) stampMotion(stream motionStream, sig *types.MotionSignal) {
	if sig.EventTime == 0 {
		sig.EventTime = s.uptime()
	}

	switch sig.MaskedAction() {
	case types.MotionActionDown:
		if sig.DownTime == 0 {
			sig.DownTime = sig.EventTime
		}
		s.motionDowns[stream] = sig.DownTime
		return
	case types.MotionActionUp, types.MotionActionCancel:
		defer delete(s.motionDowns, stream)
	}

	if sig.DownTime == 0 {
		if t, ok := s.motionDowns[stream]; ok {
			sig.DownTime = t
		} else {
			sig.DownTime = sig.EventTime
		}
	}
}

func (s *Session) run(ctx context.Context, fn func() bool) (bool, error) {
	var handled bool
	err := s.looper.Call(ctx, func() {
		handled = fn()
	})
	if err != nil {
		return false, fmt.Errorf("session %s: %w", s.ID, err)
	}
	return handled, nil
}

// Key feeds a key signal. It reports whether the signal was consumed.
func (s *Session) Key(ctx context.Context, sig types.KeySignal) (bool, error) {
	return s.run(ctx, func() bool {
		s.stampKey(&sig)
		return s.normalizer.HandleKey(sig)
	})
}

// Type feeds text as a single multi-character key signal.
func (s *Session) Type(ctx context.Context, deviceID int, text string) (bool, error) {
	return s.Key(ctx, types.KeySignal{
		Action:     types.KeyActionMultiple,
		KeyCode:    types.KeyCodeUnknown,
		DeviceID:   deviceID,
		Characters: text,
	})
}

func (s *Session) Touch(ctx context.Context, sig types.MotionSignal) (bool, error) {
	return s.run(ctx, func() bool {
		s.stampMotion(streamTouch, &sig)
		return s.normalizer.HandleTouch(sig)
	})
}

func (s *Session) Trackball(ctx context.Context, sig types.MotionSignal) (bool, error) {
	return s.run(ctx, func() bool {
		s.stampMotion(streamTrackball, &sig)
		return s.normalizer.HandleTrackball(sig)
	})
}

func (s *Session) GenericMotion(ctx context.Context, sig types.MotionSignal) (bool, error) {
	return s.run(ctx, func() bool {
		s.stampMotion(streamGeneric, &sig)
		return s.normalizer.HandleGenericMotion(sig)
	})
}

// Quit pushes the quit event.
func (s *Session) Quit(ctx context.Context) error {
	_, err := s.run(ctx, func() bool {
		s.normalizer.SendQuit()
		return true
	})
	return err
}

// Armed reports whether a long-press timer is pending for code.
func (s *Session) Armed(ctx context.Context, code int) (bool, error) {
	return s.run(ctx, func() bool {
		return s.normalizer.IsArmed(code)
	})
}

func (s *Session) Drain() []types.LogicalEvent {
	return s.queue.Drain()
}

// Events returns the session's event queue.
func (s *Session) Events() *events.Queue {
	return s.queue
}

func (s *Session) Keyboard() *HostKeyboard {
	return s.keyboard
}

// Done is closed once the session has been closed.
func (s *Session) Done() <-chan struct{} {
	return s.looper.Done()
}

// Close cancels pending timers and stops the looper. Safe to call more than
// once.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.looper.Call(context.Background(), s.normalizer.ClearEventHandler)
		s.looper.Quit()
		utils.Verbose("session %s closed", s.ID)
	})
	return err
}
