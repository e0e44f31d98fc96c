package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mobile-next/mobileinput/types"
)

// KeyRequest feeds one key signal. Key is a key name ("back", "dpad_up",
// "a") or a numeric key code. Action "press" sends a down followed by an up.
type KeyRequest struct {
	SessionID   string `json:"sessionId"`
	Key         string `json:"key"`
	Action      string `json:"action"`
	System      bool   `json:"system,omitempty"`
	UnicodeChar int    `json:"unicodeChar,omitempty"`
	MetaState   int    `json:"metaState,omitempty"`
	RepeatCount int    `json:"repeatCount,omitempty"`
	Source      int    `json:"source,omitempty"`
	DeviceID    int    `json:"deviceId,omitempty"`
	DownTime    int64  `json:"downTime,omitempty"`
	EventTime   int64  `json:"eventTime,omitempty"`
}

// TextRequest types a string through the character map
type TextRequest struct {
	SessionID string `json:"sessionId"`
	DeviceID  int    `json:"deviceId,omitempty"`
	Text      string `json:"text"`
}

// MotionRequest feeds one touch, trackball or generic motion signal.
// Action is a motion action name ("down", "pointer_up", "hover_move") or a
// number; Pointer is encoded into it for secondary pointers. Omitted
// precisions are sent as 1.
type MotionRequest struct {
	SessionID   string   `json:"sessionId"`
	Action      string   `json:"action"`
	Pointer     int      `json:"pointer,omitempty"`
	X           float32  `json:"x"`
	Y           float32  `json:"y"`
	XPrecision  *float32 `json:"xPrecision,omitempty"`
	YPrecision  *float32 `json:"yPrecision,omitempty"`
	Source      int      `json:"source,omitempty"`
	ToolType    int      `json:"toolType,omitempty"`
	ButtonState int      `json:"buttonState,omitempty"`
	DeviceID    int      `json:"deviceId,omitempty"`
	DownTime    int64    `json:"downTime,omitempty"`
	EventTime   int64    `json:"eventTime,omitempty"`
}

// ResolveKeyCode accepts a key name or a numeric key code.
func ResolveKeyCode(key string) (int, error) {
	if code, ok := types.LookupKeyCode(key); ok {
		return code, nil
	}
	if code, err := strconv.Atoi(key); err == nil && code >= 0 {
		return code, nil
	}
	return 0, fmt.Errorf("unknown key %q", key)
}

func (r KeyRequest) signal(action, code int) types.KeySignal {
	return types.KeySignal{
		Action:      action,
		KeyCode:     code,
		UnicodeChar: r.UnicodeChar,
		MetaState:   r.MetaState,
		RepeatCount: r.RepeatCount,
		DownTime:    r.DownTime,
		EventTime:   r.EventTime,
		Source:      r.Source,
		DeviceID:    r.DeviceID,
		System:      r.System,
	}
}

// KeyCommand feeds a key signal to a session
func KeyCommand(ctx context.Context, req KeyRequest) *CommandResponse {
	code, err := ResolveKeyCode(req.Key)
	if err != nil {
		return NewErrorResponse(err)
	}

	var signals []types.KeySignal
	if req.Action == "press" {
		signals = []types.KeySignal{
			req.signal(types.KeyActionDown, code),
			req.signal(types.KeyActionUp, code),
		}
	} else {
		action, err := types.ParseKeyAction(req.Action)
		if err != nil {
			return NewErrorResponse(err)
		}
		signals = []types.KeySignal{req.signal(action, code)}
	}

	s, err := FindSession(req.SessionID)
	if err != nil {
		return NewErrorResponse(err)
	}

	handled := make([]bool, 0, len(signals))
	for _, sig := range signals {
		ok, err := s.Key(ctx, sig)
		if err != nil {
			return NewErrorResponse(fmt.Errorf("failed to send key %d: %w", code, err))
		}
		handled = append(handled, ok)
	}

	return NewSuccessResponse(map[string]interface{}{
		"keyCode": code,
		"handled": handled,
	})
}

// TextCommand types text on a session
func TextCommand(ctx context.Context, req TextRequest) *CommandResponse {
	if req.Text == "" {
		return NewErrorResponse(fmt.Errorf("text is required"))
	}

	s, err := FindSession(req.SessionID)
	if err != nil {
		return NewErrorResponse(err)
	}

	handled, err := s.Type(ctx, req.DeviceID, req.Text)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("failed to send text: %w", err))
	}

	return NewSuccessResponse(map[string]interface{}{
		"handled": handled,
	})
}

func (r MotionRequest) signal() (types.MotionSignal, error) {
	action, err := types.ParseMotionAction(r.Action)
	if err != nil {
		return types.MotionSignal{}, err
	}
	if r.Pointer < 0 || r.Pointer > 0xff {
		return types.MotionSignal{}, fmt.Errorf("pointer index out of range: %d", r.Pointer)
	}
	if r.Pointer > 0 {
		action = types.WithPointerIndex(action, r.Pointer)
	}

	return types.MotionSignal{
		Action:      action,
		X:           r.X,
		Y:           r.Y,
		XPrecision:  precisionOrOne(r.XPrecision),
		YPrecision:  precisionOrOne(r.YPrecision),
		DownTime:    r.DownTime,
		EventTime:   r.EventTime,
		Source:      r.Source,
		ToolType:    r.ToolType,
		ButtonState: r.ButtonState,
		DeviceID:    r.DeviceID,
	}, nil
}

func precisionOrOne(p *float32) float32 {
	if p == nil {
		return 1
	}
	return *p
}

// motionKind selects which session entry point a MotionRequest goes to
type motionKind int

const (
	motionTouch motionKind = iota
	motionTrackball
	motionGeneric
)

func motionCommand(ctx context.Context, req MotionRequest, kind motionKind) *CommandResponse {
	sig, err := req.signal()
	if err != nil {
		return NewErrorResponse(err)
	}

	s, err := FindSession(req.SessionID)
	if err != nil {
		return NewErrorResponse(err)
	}

	var handled bool
	switch kind {
	case motionTouch:
		handled, err = s.Touch(ctx, sig)
	case motionTrackball:
		handled, err = s.Trackball(ctx, sig)
	default:
		handled, err = s.GenericMotion(ctx, sig)
	}
	if err != nil {
		return NewErrorResponse(fmt.Errorf("failed to send motion: %w", err))
	}

	return NewSuccessResponse(map[string]interface{}{
		"handled": handled,
	})
}

// TouchCommand feeds a touchscreen signal
func TouchCommand(ctx context.Context, req MotionRequest) *CommandResponse {
	return motionCommand(ctx, req, motionTouch)
}

// TrackballCommand feeds a trackball signal
func TrackballCommand(ctx context.Context, req MotionRequest) *CommandResponse {
	return motionCommand(ctx, req, motionTrackball)
}

// GenericMotionCommand feeds a joystick or mouse hover/scroll signal
func GenericMotionCommand(ctx context.Context, req MotionRequest) *CommandResponse {
	return motionCommand(ctx, req, motionGeneric)
}
