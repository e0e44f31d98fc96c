package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mobile-next/mobileinput/utils"
)

// ReplayRequest is a script of input steps run against a fresh session.
//
//	{"steps": [
//	  {"op": "key", "key": "menu", "action": "down", "system": true},
//	  {"op": "wait", "ms": 600},
//	  {"op": "touch", "action": "down", "x": 10, "y": 20}
//	]}
type ReplayRequest struct {
	Screen SessionCreateRequest `json:"screen"`
	Steps  []json.RawMessage    `json:"steps"`
}

type replayOp struct {
	Op string `json:"op"`
	Ms int    `json:"ms"`
}

// ReplayStepResult is what one step produced.
type ReplayStepResult struct {
	Step    int         `json:"step"`
	Op      string      `json:"op"`
	Handled interface{} `json:"handled,omitempty"`
	Events  []EventView `json:"events"`
}

// ReplayCommand runs a script on a temporary session and reports the events
// each step produced.
func ReplayCommand(ctx context.Context, req ReplayRequest) *CommandResponse {
	created := SessionCreateCommand(req.Screen)
	if created.Status != "ok" {
		return created
	}
	sessionID := created.Data.(SessionInfo).ID
	defer func() {
		_ = GetRegistry().Remove(sessionID)
	}()

	s, err := GetRegistry().Get(sessionID)
	if err != nil {
		return NewErrorResponse(err)
	}

	results := make([]ReplayStepResult, 0, len(req.Steps))
	for i, raw := range req.Steps {
		var op replayOp
		if err := json.Unmarshal(raw, &op); err != nil {
			return NewErrorResponse(fmt.Errorf("step %d: %w", i, err))
		}
		utils.Verbose("replay step %d: %s", i, op.Op)

		resp, err := runReplayStep(ctx, sessionID, op, raw)
		if err != nil {
			return NewErrorResponse(fmt.Errorf("step %d (%s): %w", i, op.Op, err))
		}
		if resp != nil && resp.Status != "ok" {
			return NewErrorResponse(fmt.Errorf("step %d (%s): %s", i, op.Op, resp.Error))
		}

		result := ReplayStepResult{Step: i, Op: op.Op, Events: eventViews(s.Drain())}
		if resp != nil {
			if data, ok := resp.Data.(map[string]interface{}); ok {
				result.Handled = data["handled"]
			}
		}
		results = append(results, result)
	}

	return NewSuccessResponse(map[string]interface{}{
		"sessionId": sessionID,
		"steps":     results,
	})
}

func runReplayStep(ctx context.Context, sessionID string, op replayOp, raw json.RawMessage) (*CommandResponse, error) {
	switch op.Op {
	case "key":
		var req KeyRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, err
		}
		req.SessionID = sessionID
		return KeyCommand(ctx, req), nil

	case "text":
		var req TextRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, err
		}
		req.SessionID = sessionID
		return TextCommand(ctx, req), nil

	case "touch", "trackball", "generic":
		var req MotionRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, err
		}
		req.SessionID = sessionID
		switch op.Op {
		case "touch":
			return TouchCommand(ctx, req), nil
		case "trackball":
			return TrackballCommand(ctx, req), nil
		}
		return GenericMotionCommand(ctx, req), nil

	case "keyboard":
		var req KeyboardRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, err
		}
		req.SessionID = sessionID
		return KeyboardSetCommand(req), nil

	case "wait":
		if op.Ms < 0 {
			return nil, fmt.Errorf("wait must be non-negative, got %d", op.Ms)
		}
		select {
		case <-time.After(time.Duration(op.Ms) * time.Millisecond):
			return nil, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}

	case "quit":
		return QuitCommand(ctx, SessionRequest{SessionID: sessionID}), nil
	}

	return nil, fmt.Errorf("unknown op %q", op.Op)
}
