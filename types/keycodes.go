package types

import (
	"sort"
	"strings"
)

// Platform key codes.
const (
	KeyCodeUnknown      = 0
	KeyCodeHome         = 3
	KeyCodeBack         = 4
	KeyCode0            = 7
	KeyCode1            = 8
	KeyCode9            = 16
	KeyCodeStar         = 17
	KeyCodePound        = 18
	KeyCodeDpadUp       = 19
	KeyCodeDpadDown     = 20
	KeyCodeDpadLeft     = 21
	KeyCodeDpadRight    = 22
	KeyCodeDpadCenter   = 23
	KeyCodeVolumeUp     = 24
	KeyCodeVolumeDown   = 25
	KeyCodePower        = 26
	KeyCodeA            = 29
	KeyCodeZ            = 54
	KeyCodeComma        = 55
	KeyCodePeriod       = 56
	KeyCodeShiftLeft    = 59
	KeyCodeTab          = 61
	KeyCodeSpace        = 62
	KeyCodeEnter        = 66
	KeyCodeDel          = 67
	KeyCodeGrave        = 68
	KeyCodeMinus        = 69
	KeyCodeEquals       = 70
	KeyCodeLeftBracket  = 71
	KeyCodeRightBracket = 72
	KeyCodeBackslash    = 73
	KeyCodeSemicolon    = 74
	KeyCodeApostrophe   = 75
	KeyCodeSlash        = 76
	KeyCodeAt           = 77
	KeyCodePlus         = 81
	KeyCodeMenu         = 82
	KeyCodeEscape       = 111

	KeyCodeButtonA      = 96
	KeyCodeButtonB      = 97
	KeyCodeButtonC      = 98
	KeyCodeButtonX      = 99
	KeyCodeButtonY      = 100
	KeyCodeButtonZ      = 101
	KeyCodeButtonL1     = 102
	KeyCodeButtonR1     = 103
	KeyCodeButtonL2     = 104
	KeyCodeButtonR2     = 105
	KeyCodeButtonThumbL = 106
	KeyCodeButtonThumbR = 107
	KeyCodeButtonStart  = 108
	KeyCodeButtonSelect = 109
	KeyCodeButtonMode   = 110

	// KeyCodeHoverArtifact is an undocumented code sent on hover enter/exit.
	KeyCodeHoverArtifact = 238
)

var keyNames = map[string]int{
	"home":          KeyCodeHome,
	"back":          KeyCodeBack,
	"menu":          KeyCodeMenu,
	"power":         KeyCodePower,
	"volume_up":     KeyCodeVolumeUp,
	"volume_down":   KeyCodeVolumeDown,
	"dpad_up":       KeyCodeDpadUp,
	"dpad_down":     KeyCodeDpadDown,
	"dpad_left":     KeyCodeDpadLeft,
	"dpad_right":    KeyCodeDpadRight,
	"dpad_center":   KeyCodeDpadCenter,
	"enter":         KeyCodeEnter,
	"space":         KeyCodeSpace,
	"tab":           KeyCodeTab,
	"del":           KeyCodeDel,
	"escape":        KeyCodeEscape,
	"shift_left":    KeyCodeShiftLeft,
	"button_a":      KeyCodeButtonA,
	"button_b":      KeyCodeButtonB,
	"button_c":      KeyCodeButtonC,
	"button_x":      KeyCodeButtonX,
	"button_y":      KeyCodeButtonY,
	"button_z":      KeyCodeButtonZ,
	"button_l1":     KeyCodeButtonL1,
	"button_r1":     KeyCodeButtonR1,
	"button_l2":     KeyCodeButtonL2,
	"button_r2":     KeyCodeButtonR2,
	"button_thumbl": KeyCodeButtonThumbL,
	"button_thumbr": KeyCodeButtonThumbR,
	"button_start":  KeyCodeButtonStart,
	"button_select": KeyCodeButtonSelect,
	"button_mode":   KeyCodeButtonMode,
}

// LookupKeyCode resolves a case-insensitive key name ("back", "VOLUME_UP")
// or a single letter/digit to its key code.
func LookupKeyCode(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if code, ok := keyNames[name]; ok {
		return code, true
	}

	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z':
			return KeyCodeA + int(c-'a'), true
		case c >= '0' && c <= '9':
			return KeyCode0 + int(c-'0'), true
		}
	}

	return 0, false
}

// KeyNames returns all named keys sorted by name.
func KeyNames() []string {
	names := make([]string, 0, len(keyNames))
	for name := range keyNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsDpadKey reports whether code is one of the directional pad keys.
func IsDpadKey(code int) bool {
	return code >= KeyCodeDpadUp && code <= KeyCodeDpadCenter
}

// IsGamepadButton reports whether code is a named gamepad button.
func IsGamepadButton(code int) bool {
	return code >= KeyCodeButtonA && code <= KeyCodeButtonMode
}

// IsVolumeKey reports whether code is volume up or down.
func IsVolumeKey(code int) bool {
	return code == KeyCodeVolumeUp || code == KeyCodeVolumeDown
}
