package types

// Key actions.
const (
	KeyActionDown     = 0
	KeyActionUp       = 1
	KeyActionMultiple = 2
)

// Motion actions. The pointer index of secondary pointers is encoded in
// bits 8-15 of the action.
const (
	MotionActionDown          = 0
	MotionActionUp            = 1
	MotionActionMove          = 2
	MotionActionCancel        = 3
	MotionActionOutside       = 4
	MotionActionPointerDown   = 5
	MotionActionPointerUp     = 6
	MotionActionHoverMove     = 7
	MotionActionScroll        = 8
	MotionActionHoverEnter    = 9
	MotionActionHoverExit     = 10
	MotionActionButtonPress   = 11
	MotionActionButtonRelease = 12

	MotionActionMask        = 0xff
	MotionPointerIndexMask  = 0xff00
	MotionPointerIndexShift = 8
)

// Input sources.
const (
	SourceClassButton    = 0x00000001
	SourceClassPointer   = 0x00000002
	SourceClassTrackball = 0x00000004
	SourceClassJoystick  = 0x00000010

	SourceKeyboard      = 0x00000101
	SourceDpad          = 0x00000201
	SourceGamepad       = 0x00000401
	SourceTouchscreen   = 0x00001002
	SourceMouse         = 0x00002002
	SourceStylus        = 0x00004002
	SourceTrackball     = 0x00010004
	SourceMouseRelative = 0x00020004
	SourceTouchpad      = 0x00100008
	SourceJoystick      = 0x01000010
)

// Tool types.
const (
	ToolTypeUnknown = 0
	ToolTypeFinger  = 1
	ToolTypeStylus  = 2
	ToolTypeMouse   = 3
	ToolTypeEraser  = 4
)

// Mouse button state bits.
const (
	ButtonPrimary   = 1 << 0
	ButtonSecondary = 1 << 1
	ButtonTertiary  = 1 << 2
	ButtonBack      = 1 << 3
	ButtonForward   = 1 << 4
)

// Meta state bits.
const (
	MetaShiftOn     = 0x01
	MetaAltOn       = 0x02
	MetaShiftLeftOn = 0x40
	MetaCtrlOn      = 0x1000
)

// CombiningAccentMask strips the combining-accent flag from a unicode value.
const CombiningAccentMask = 0x7FFFFFFF

// KeySignal is a raw key event as reported by the platform.
// Times are milliseconds on the platform's uptime clock.
type KeySignal struct {
	Action      int    `json:"action"`
	KeyCode     int    `json:"keyCode"`
	UnicodeChar int    `json:"unicodeChar,omitempty"`
	MetaState   int    `json:"metaState,omitempty"`
	RepeatCount int    `json:"repeatCount,omitempty"`
	DownTime    int64  `json:"downTime,omitempty"`
	EventTime   int64  `json:"eventTime,omitempty"`
	Source      int    `json:"source,omitempty"`
	DeviceID    int    `json:"deviceId,omitempty"`
	System      bool   `json:"system,omitempty"`
	Characters  string `json:"characters,omitempty"`
}

// HoldDuration is the time the key has been held, in milliseconds.
func (s KeySignal) HoldDuration() int {
	return int(s.EventTime - s.DownTime)
}

// MotionSignal is a raw touch, mouse, trackball or joystick event.
type MotionSignal struct {
	Action      int     `json:"action"`
	X           float32 `json:"x"`
	Y           float32 `json:"y"`
	XPrecision  float32 `json:"xPrecision,omitempty"`
	YPrecision  float32 `json:"yPrecision,omitempty"`
	DownTime    int64   `json:"downTime,omitempty"`
	EventTime   int64   `json:"eventTime,omitempty"`
	Source      int     `json:"source,omitempty"`
	ToolType    int     `json:"toolType,omitempty"`
	ButtonState int     `json:"buttonState,omitempty"`
	DeviceID    int     `json:"deviceId,omitempty"`
}

// MaskedAction returns the action without the pointer index bits.
func (m MotionSignal) MaskedAction() int {
	return m.Action & MotionActionMask
}

// PointerIndex returns the pointer slot encoded in the action.
func (m MotionSignal) PointerIndex() int {
	return (m.Action & MotionPointerIndexMask) >> MotionPointerIndexShift
}

// Offset moves the signal's location by (dx, dy).
func (m *MotionSignal) Offset(dx, dy float32) {
	m.X += dx
	m.Y += dy
}

// Duration is the time since the gesture's first down, in milliseconds.
func (m MotionSignal) Duration() int {
	return int(m.EventTime - m.DownTime)
}

// IsFromSource reports whether source includes all bits of want.
func IsFromSource(source, want int) bool {
	return source&want == want
}
