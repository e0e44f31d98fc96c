package events

import (
	"github.com/mobile-next/mobileinput/types"
	"github.com/mobile-next/mobileinput/utils"
)

// Scheduler message ids for the long-press timers.
const (
	msgMenuLongPress = 1
	msgBackLongPress = 2
)

func isLongPressKey(code int) bool {
	return code == types.KeyCodeMenu || code == types.KeyCodeBack
}

func longPressMessage(code int) int {
	if code == types.KeyCodeMenu {
		return msgMenuLongPress
	}
	return msgBackLongPress
}

// disambiguate runs the long-press state machine for Menu and Back. It
// returns true when the signal is fully handled. On a short-press release it
// pushes the deferred key down and returns false, so the caller emits the
// key up through normal classification.
func (n *Normalizer) disambiguate(sig types.KeySignal) bool {
	code := sig.KeyCode
	what := longPressMessage(code)

	// no timer outstanding means it already ran (or was never armed)
	fired := !n.scheduler.HasPending(what)
	n.scheduler.Remove(what)

	switch sig.Action {
	case types.KeyActionDown:
		if !fired {
			utils.Verbose("key %d: re-arming long press timer", code)
		}
		n.scheduler.SendDelayed(what, n.cfg.LongPressTimeout)
		return true

	case types.KeyActionUp:
		if fired {
			utils.Verbose("key %d: release after long press, consumed", code)
			return true
		}

		utils.Verbose("key %d: short press held %dms", code, sig.HoldDuration())
		n.push(types.NewEvent(types.KindSystemKey,
			types.KeyActionDown,
			code,
			sig.UnicodeChar&types.CombiningAccentMask,
			sig.MetaState,
			sig.RepeatCount,
			0,
		))
		return false

	default:
		return true
	}
}

// handleMessage runs when a long-press timer comes due.
func (n *Normalizer) handleMessage(what int) {
	switch what {
	case msgMenuLongPress:
		utils.Verbose("menu long press: toggling screen keyboard")
		if n.keyboard != nil {
			n.keyboard.ToggleScreenKeyboard()
		}

	case msgBackLongPress:
		utils.Verbose("back long press: sending menu")
		n.push(types.NewEvent(types.KindSystemKey, types.KeyActionDown, types.KeyCodeMenu))
		n.push(types.NewEvent(types.KindSystemKey, types.KeyActionUp, types.KeyCodeMenu))
	}
}

// IsArmed reports whether a long-press timer is outstanding for code.
func (n *Normalizer) IsArmed(code int) bool {
	if !isLongPressKey(code) {
		return false
	}
	return n.scheduler.HasPending(longPressMessage(code))
}
