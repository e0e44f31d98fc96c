package commands

import (
	"fmt"

	"github.com/mobile-next/mobileinput/types"
)

// KeyboardRequest changes the host on-screen keyboard. Bounds is optional.
type KeyboardRequest struct {
	SessionID     string      `json:"sessionId"`
	Shown         bool        `json:"shown"`
	WithTextField bool        `json:"withTextField"`
	Bounds        *types.Rect `json:"bounds,omitempty"`
}

// KeyboardSetCommand shows or hides the session's on-screen keyboard
func KeyboardSetCommand(req KeyboardRequest) *CommandResponse {
	if req.Bounds != nil && (req.Bounds.Width < 0 || req.Bounds.Height < 0) {
		return NewErrorResponse(fmt.Errorf("keyboard bounds must be non-negative"))
	}

	s, err := FindSession(req.SessionID)
	if err != nil {
		return NewErrorResponse(err)
	}

	kb := s.Keyboard()
	if req.Bounds != nil {
		kb.SetBounds(*req.Bounds)
	}
	kb.Set(req.Shown, req.WithTextField)

	return NewSuccessResponse(kb.State())
}

// KeyboardStateCommand reports the session's on-screen keyboard state
func KeyboardStateCommand(req SessionRequest) *CommandResponse {
	s, err := FindSession(req.SessionID)
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(s.Keyboard().State())
}
