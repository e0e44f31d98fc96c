package commands

import (
	"fmt"
	"time"

	"github.com/mobile-next/mobileinput/session"
)

// SessionCreateRequest optionally overrides the configured screen size for
// the new session.
type SessionCreateRequest struct {
	Width          int `json:"width,omitempty"`
	Height         int `json:"height,omitempty"`
	KeyboardHeight int `json:"keyboardHeight,omitempty"`
}

// SessionRequest identifies a session. An empty ID selects the only open
// session.
type SessionRequest struct {
	SessionID string `json:"sessionId"`
}

type SessionInfo struct {
	ID       string                `json:"id"`
	Created  time.Time             `json:"created"`
	Pending  int                   `json:"pendingEvents"`
	Keyboard session.KeyboardState `json:"keyboard"`
}

func sessionInfo(s *session.Session) SessionInfo {
	return SessionInfo{
		ID:       s.ID,
		Created:  s.Created,
		Pending:  s.Events().Len(),
		Keyboard: s.Keyboard().State(),
	}
}

// SessionCreateCommand opens a new input session
func SessionCreateCommand(req SessionCreateRequest) *CommandResponse {
	if req.Width < 0 || req.Height < 0 || req.KeyboardHeight < 0 {
		return NewErrorResponse(fmt.Errorf("screen dimensions must be non-negative"))
	}

	cfg := *GetConfig()
	if req.Width > 0 {
		cfg.Screen.Width = req.Width
	}
	if req.Height > 0 {
		cfg.Screen.Height = req.Height
	}
	if req.KeyboardHeight > 0 {
		cfg.Screen.KeyboardHeight = req.KeyboardHeight
	}

	cm, err := getCharMap()
	if err != nil {
		return NewErrorResponse(fmt.Errorf("failed to create character map: %w", err))
	}

	s, err := session.New(&cfg, cm)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("failed to create session: %w", err))
	}

	GetRegistry().Add(s)
	return NewSuccessResponse(sessionInfo(s))
}

// SessionCloseCommand closes a session and cancels its pending timers
func SessionCloseCommand(req SessionRequest) *CommandResponse {
	s, err := FindSession(req.SessionID)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := GetRegistry().Remove(s.ID); err != nil {
		return NewErrorResponse(fmt.Errorf("failed to close session %s: %w", s.ID, err))
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Closed session %s", s.ID),
	})
}

// SessionListCommand lists open sessions
func SessionListCommand() *CommandResponse {
	infos := []SessionInfo{}
	for _, s := range GetRegistry().List() {
		infos = append(infos, sessionInfo(s))
	}

	return NewSuccessResponse(map[string]interface{}{
		"sessions": infos,
	})
}
