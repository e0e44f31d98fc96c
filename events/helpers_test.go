package events

import (
	"testing"
	"time"

	"github.com/mobile-next/mobileinput/types"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	events []types.LogicalEvent
}

func (s *recordingSink) PushEvent(ev types.LogicalEvent) {
	s.events = append(s.events, ev)
}

// fakeScheduler keeps pending messages until the test fires them.
type fakeScheduler struct {
	n       *Normalizer
	deliver func(*Normalizer, int)
	pending []int
	delays  []time.Duration
}

func (s *fakeScheduler) SendDelayed(what int, delay time.Duration) {
	s.pending = append(s.pending, what)
	s.delays = append(s.delays, delay)
}

func (s *fakeScheduler) HasPending(what int) bool {
	for _, w := range s.pending {
		if w == what {
			return true
		}
	}
	return false
}

func (s *fakeScheduler) Remove(what int) {
	kept := s.pending[:0]
	for _, w := range s.pending {
		if w != what {
			kept = append(kept, w)
		}
	}
	s.pending = kept
}

func (s *fakeScheduler) Clear() {
	s.pending = nil
}

func (s *fakeScheduler) count(what int) int {
	c := 0
	for _, w := range s.pending {
		if w == what {
			c++
		}
	}
	return c
}

// fire delivers one pending message, as the looper would after the delay.
func (s *fakeScheduler) fire(what int) bool {
	if !s.HasPending(what) {
		return false
	}
	for i, w := range s.pending {
		if w == what {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			break
		}
	}
	s.deliver(s.n, what)
	return true
}

type fakeKeyboard struct {
	withoutTextField bool
	bounds           types.Rect
	touches          []types.MotionSignal
	hides            int
	toggles          int
}

func (k *fakeKeyboard) IsShownWithoutTextField() bool  { return k.withoutTextField }
func (k *fakeKeyboard) Bounds() types.Rect             { return k.bounds }
func (k *fakeKeyboard) OnTouch(sig types.MotionSignal) { k.touches = append(k.touches, sig) }
func (k *fakeKeyboard) HideScreenKeyboard()            { k.hides++ }
func (k *fakeKeyboard) ToggleScreenKeyboard()          { k.toggles++ }

type fakeMouse struct {
	mouseKeys   bool
	mouseMotion bool
	handled     []types.MotionSignal
	hover       []bool
}

func (m *fakeMouse) IsMouse(sig types.MotionSignal) bool { return m.mouseMotion }
func (m *fakeMouse) IsMouseKey(sig types.KeySignal) bool { return m.mouseKeys }
func (m *fakeMouse) OnMouseEvent(sig types.MotionSignal, hover bool) bool {
	m.handled = append(m.handled, sig)
	m.hover = append(m.hover, hover)
	return true
}

type fakeCharMap struct {
	result []types.KeySignal
	calls  []string
}

func (c *fakeCharMap) Events(deviceID int, chars string) []types.KeySignal {
	c.calls = append(c.calls, chars)
	return c.result
}

type fakeGestures struct {
	calls []types.MotionSignal
}

func (g *fakeGestures) OnTouchEvent(sig types.MotionSignal) bool {
	g.calls = append(g.calls, sig)
	return true
}

type fixture struct {
	n        *Normalizer
	sink     *recordingSink
	sched    *fakeScheduler
	keyboard *fakeKeyboard
	mouse    *fakeMouse
	charMap  *fakeCharMap
	gestures *fakeGestures
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		sink:     &recordingSink{},
		sched:    &fakeScheduler{},
		keyboard: &fakeKeyboard{},
		mouse:    &fakeMouse{},
		charMap:  &fakeCharMap{},
		gestures: &fakeGestures{},
	}

	n, err := NewNormalizer(Options{
		Config: DefaultConfig(),
		Sink:   f.sink,
		NewScheduler: func(n *Normalizer, deliver func(*Normalizer, int)) Scheduler {
			f.sched.n = n
			f.sched.deliver = deliver
			return f.sched
		},
		NewGestureRecognizer: func(n *Normalizer) GestureRecognizer {
			return f.gestures
		},
		Keyboard: f.keyboard,
		Mouse:    f.mouse,
		CharMap:  f.charMap,
	})
	require.NoError(t, err)
	f.n = n
	return f
}

func systemKey(action, code int, at int64) types.KeySignal {
	return types.KeySignal{
		Action:    action,
		KeyCode:   code,
		System:    true,
		DownTime:  1000,
		EventTime: at,
	}
}

func touch(action int, x, y float32) types.MotionSignal {
	return types.MotionSignal{
		Action: action,
		X:      x,
		Y:      y,
		Source: types.SourceTouchscreen,
	}
}
