package events

import (
	"github.com/mobile-next/mobileinput/types"
	"github.com/mobile-next/mobileinput/utils"
)

// ClassifyKey picks the event kind for a key signal that needs no special
// handling. It returns false for keys left to the platform (volume).
func ClassifyKey(sig types.KeySignal) (types.EventKind, bool) {
	switch {
	case types.IsVolumeKey(sig.KeyCode):
		return 0, false
	case types.IsDpadKey(sig.KeyCode):
		if sig.Source == types.SourceDpad {
			return types.KindDpad, true
		}
		return types.KindKey, true
	case types.IsGamepadButton(sig.KeyCode):
		return types.KindGamepad, true
	case sig.System:
		return types.KindSystemKey, true
	default:
		return types.KindKey, true
	}
}

// KeyEvent builds a key-family event. Press events always carry a zero hold
// duration.
func KeyEvent(kind types.EventKind, sig types.KeySignal) types.LogicalEvent {
	hold := 0
	if sig.Action != types.KeyActionDown {
		hold = max(sig.HoldDuration(), 0)
	}
	return types.NewEvent(kind,
		sig.Action,
		sig.KeyCode,
		sig.UnicodeChar&types.CombiningAccentMask,
		sig.MetaState,
		sig.RepeatCount,
		hold,
	)
}

// HandleKey classifies a key signal and pushes the resulting events.
// It returns true when the signal was consumed and false when the platform
// should handle it.
func (n *Normalizer) HandleKey(sig types.KeySignal) bool {
	code := sig.KeyCode

	if n.cfg.IMESentinel != 0 && sig.UnicodeChar == int(n.cfg.IMESentinel) {
		utils.Verbose("key %d: ignoring input method placeholder", code)
		return true
	}

	if code == n.cfg.HoverKeyCode {
		return false
	}

	if code == types.KeyCodeBack {
		if n.mouse != nil && n.mouse.IsMouseKey(sig) {
			// a right click also produces a back press
			utils.Verbose("key %d: dropping back press generated by mouse", code)
			return true
		}

		if n.keyboard != nil && n.keyboard.IsShownWithoutTextField() {
			switch sig.Action {
			case types.KeyActionDown:
				return true
			case types.KeyActionUp:
				utils.Verbose("key %d: hiding screen keyboard", code)
				n.keyboard.HideScreenKeyboard()
				return true
			}
		}
	}

	if sig.System {
		if sig.RepeatCount > 0 {
			return false
		}

		if isLongPressKey(code) && n.disambiguate(sig) {
			return true
		}
	}

	if sig.Action == types.KeyActionMultiple && code == types.KeyCodeUnknown {
		n.pushCharacters(sig)
		return true
	}

	kind, ok := ClassifyKey(sig)
	if !ok {
		return false
	}

	n.push(KeyEvent(kind, sig))
	return true
}

func (n *Normalizer) pushCharacters(sig types.KeySignal) {
	if n.charMap == nil {
		return
	}

	resolved := n.charMap.Events(sig.DeviceID, sig.Characters)
	if len(resolved) == 0 {
		utils.Verbose("no key events for characters %q", sig.Characters)
		return
	}

	for _, s := range resolved {
		n.push(types.NewEvent(types.KindKey,
			s.Action,
			s.KeyCode,
			s.UnicodeChar&types.CombiningAccentMask,
			s.MetaState,
			s.RepeatCount,
			0,
		))
	}
}
