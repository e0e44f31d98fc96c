package events

import (
	"testing"

	"github.com/mobile-next/mobileinput/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizer_RequiresSinkAndScheduler(t *testing.T) {
	_, err := NewNormalizer(Options{})
	assert.Error(t, err)

	_, err = NewNormalizer(Options{Sink: &recordingSink{}})
	assert.Error(t, err)

	_, err = NewNormalizer(Options{
		Sink: &recordingSink{},
		NewScheduler: func(n *Normalizer, deliver func(*Normalizer, int)) Scheduler {
			return nil
		},
	})
	assert.Error(t, err)
}

func TestHandleKey_IMESentinelIgnored(t *testing.T) {
	f := newFixture(t)

	for _, action := range []int{types.KeyActionDown, types.KeyActionUp} {
		handled := f.n.HandleKey(types.KeySignal{
			Action:      action,
			KeyCode:     types.KeyCodeSlash,
			UnicodeChar: '/',
		})
		assert.True(t, handled)
	}
	assert.Empty(t, f.sink.events)
}

func TestHandleKey_HoverArtifactNotHandled(t *testing.T) {
	f := newFixture(t)

	assert.False(t, f.n.HandleKey(types.KeySignal{Action: types.KeyActionDown, KeyCode: types.KeyCodeHoverArtifact}))
	assert.Empty(t, f.sink.events)
}

func TestHandleKey_BackFromMouseIgnored(t *testing.T) {
	f := newFixture(t)
	f.mouse.mouseKeys = true

	assert.True(t, f.n.HandleKey(systemKey(types.KeyActionDown, types.KeyCodeBack, 1000)))
	assert.True(t, f.n.HandleKey(systemKey(types.KeyActionUp, types.KeyCodeBack, 1050)))
	assert.Empty(t, f.sink.events)
	assert.Empty(t, f.sched.pending)
}

func TestHandleKey_BackHidesKeyboardWithoutTextField(t *testing.T) {
	f := newFixture(t)
	f.keyboard.withoutTextField = true

	assert.True(t, f.n.HandleKey(systemKey(types.KeyActionDown, types.KeyCodeBack, 1000)))
	assert.Equal(t, 0, f.keyboard.hides)

	assert.True(t, f.n.HandleKey(systemKey(types.KeyActionUp, types.KeyCodeBack, 1050)))
	assert.Equal(t, 1, f.keyboard.hides)

	assert.Empty(t, f.sink.events)
	assert.Empty(t, f.sched.pending)
}

func TestHandleKey_SystemRepeatNotHandled(t *testing.T) {
	f := newFixture(t)

	sig := systemKey(types.KeyActionDown, types.KeyCodeHome, 1000)
	sig.RepeatCount = 2
	assert.False(t, f.n.HandleKey(sig))
	assert.Empty(t, f.sink.events)

	// non-system keys keep their repeats
	sig = types.KeySignal{Action: types.KeyActionDown, KeyCode: types.KeyCodeA, RepeatCount: 3}
	assert.True(t, f.n.HandleKey(sig))
	require.Len(t, f.sink.events, 1)
	assert.Equal(t, 3, f.sink.events[0].Args[4])
}

func TestHandleKey_VolumePassThrough(t *testing.T) {
	f := newFixture(t)

	for _, code := range []int{types.KeyCodeVolumeUp, types.KeyCodeVolumeDown} {
		for _, action := range []int{types.KeyActionDown, types.KeyActionUp, types.KeyActionMultiple} {
			for _, system := range []bool{false, true} {
				sig := types.KeySignal{Action: action, KeyCode: code, System: system}
				assert.False(t, f.n.HandleKey(sig), "code=%d action=%d system=%v", code, action, system)

				sig.RepeatCount = 4
				assert.False(t, f.n.HandleKey(sig), "code=%d action=%d system=%v repeat", code, action, system)
			}
		}
	}
	assert.Empty(t, f.sink.events)
}

func TestHandleKey_CharacterSequence(t *testing.T) {
	f := newFixture(t)
	f.charMap.result = []types.KeySignal{
		{Action: types.KeyActionDown, KeyCode: types.KeyCodeA, UnicodeChar: 'a'},
		{Action: types.KeyActionUp, KeyCode: types.KeyCodeA, UnicodeChar: 'a'},
	}

	handled := f.n.HandleKey(types.KeySignal{
		Action:     types.KeyActionMultiple,
		KeyCode:    types.KeyCodeUnknown,
		Characters: "a",
		DownTime:   10,
		EventTime:  90,
	})
	assert.True(t, handled)
	assert.Equal(t, []string{"a"}, f.charMap.calls)
	assert.Equal(t, []types.LogicalEvent{
		types.NewEvent(types.KindKey, types.KeyActionDown, types.KeyCodeA, 'a', 0, 0, 0),
		types.NewEvent(types.KindKey, types.KeyActionUp, types.KeyCodeA, 'a', 0, 0, 0),
	}, f.sink.events)
}

func TestHandleKey_CharacterSequenceUnresolved(t *testing.T) {
	f := newFixture(t)

	handled := f.n.HandleKey(types.KeySignal{
		Action:     types.KeyActionMultiple,
		KeyCode:    types.KeyCodeUnknown,
		Characters: "☃",
	})
	assert.True(t, handled)
	assert.Empty(t, f.sink.events)
}

func TestHandleKey_CharacterSequenceWithoutCharMap(t *testing.T) {
	sink := &recordingSink{}
	n, err := NewNormalizer(Options{
		Config: DefaultConfig(),
		Sink:   sink,
		NewScheduler: func(n *Normalizer, deliver func(*Normalizer, int)) Scheduler {
			return &fakeScheduler{n: n, deliver: deliver}
		},
	})
	require.NoError(t, err)

	assert.True(t, n.HandleKey(types.KeySignal{Action: types.KeyActionMultiple, Characters: "abc"}))
	assert.Empty(t, sink.events)
}

func TestClassifyKey_Families(t *testing.T) {
	tests := []struct {
		name string
		sig  types.KeySignal
		kind types.EventKind
		ok   bool
	}{
		{"dpad from dpad device", types.KeySignal{KeyCode: types.KeyCodeDpadLeft, Source: types.SourceDpad}, types.KindDpad, true},
		{"dpad from keyboard", types.KeySignal{KeyCode: types.KeyCodeDpadCenter, Source: types.SourceKeyboard}, types.KindKey, true},
		{"gamepad button", types.KeySignal{KeyCode: types.KeyCodeButtonStart, Source: types.SourceGamepad}, types.KindGamepad, true},
		{"system key", types.KeySignal{KeyCode: types.KeyCodeHome, System: true}, types.KindSystemKey, true},
		{"plain key", types.KeySignal{KeyCode: types.KeyCodeA}, types.KindKey, true},
		{"volume", types.KeySignal{KeyCode: types.KeyCodeVolumeUp}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := ClassifyKey(tt.sig)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.kind, kind)
			}
		})
	}
}

func TestHandleKey_ArgsAndHoldDuration(t *testing.T) {
	f := newFixture(t)

	down := types.KeySignal{
		Action:      types.KeyActionDown,
		KeyCode:     types.KeyCodeA,
		UnicodeChar: 'a' | 0x80000000,
		MetaState:   types.MetaShiftOn,
		DownTime:    1000,
		EventTime:   1000,
	}
	up := down
	up.Action = types.KeyActionUp
	up.EventTime = 1250

	require.True(t, f.n.HandleKey(down))
	require.True(t, f.n.HandleKey(up))

	require.Len(t, f.sink.events, 2)
	assert.Equal(t, [6]int{types.KeyActionDown, types.KeyCodeA, 'a', types.MetaShiftOn, 0, 0}, f.sink.events[0].Args)
	assert.Equal(t, [6]int{types.KeyActionUp, types.KeyCodeA, 'a', types.MetaShiftOn, 0, 250}, f.sink.events[1].Args)
}

func TestKeyEvent_PressHasZeroHold(t *testing.T) {
	// a press that reports a stale down time still carries no hold
	ev := KeyEvent(types.KindGamepad, types.KeySignal{
		Action:    types.KeyActionDown,
		KeyCode:   types.KeyCodeButtonA,
		DownTime:  100,
		EventTime: 400,
	})
	assert.Equal(t, 0, ev.Args[5])
	assert.True(t, ev.Kind.IsKeyFamily())
}
