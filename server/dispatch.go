package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mobile-next/mobileinput/commands"
)

// HandlerFunc is the signature for non-streaming JSON-RPC method handlers
type HandlerFunc func(ctx context.Context, params json.RawMessage) (interface{}, error)

// GetMethodRegistry returns a map of method names to handler functions
// This is used by both the HTTP server and embedded clients
func GetMethodRegistry() map[string]HandlerFunc {
	return map[string]HandlerFunc{
		"session_create":   handleSessionCreate,
		"session_close":    handleSessionClose,
		"session_list":     handleSessionList,
		"session_quit":     handleSessionQuit,
		"input_key":        handleInputKey,
		"input_text":       handleInputText,
		"input_touch":      handleInputTouch,
		"input_trackball":  handleInputTrackball,
		"input_generic":    handleInputGeneric,
		"keyboard_set":     handleKeyboardSet,
		"keyboard_get":     handleKeyboardGet,
		"events_drain":     handleEventsDrain,
		"replay":           handleReplay,
		"keycodes":         handleKeyCodes,
		"charmap_layouts":  handleCharMapLayouts,
		"charmap_register": handleCharMapRegister,
		"charmap_assign":   handleCharMapAssign,
	}
}

// Execute dispatches a method call using the registry
// This is the main entry point for embedded clients
func Execute(ctx context.Context, method string, params json.RawMessage) (interface{}, error) {
	registry := GetMethodRegistry()

	handler, exists := registry[method]
	if !exists {
		return nil, fmt.Errorf("method not found: %s", method)
	}

	return handler(ctx, params)
}

// decodeParams unmarshals params into T. Empty params decode to the zero
// value when optional is set.
func decodeParams[T any](params json.RawMessage, fields string, optional bool) (T, error) {
	var v T
	if len(params) == 0 {
		if optional {
			return v, nil
		}
		return v, fmt.Errorf("'params' is required with fields: %s", fields)
	}

	if err := json.Unmarshal(params, &v); err != nil {
		return v, fmt.Errorf("invalid parameters: %v. Expected fields: %s", err, fields)
	}
	return v, nil
}

func commandResult(response *commands.CommandResponse) (interface{}, error) {
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}
	if response.Data == nil {
		return okResponse, nil
	}
	return response.Data, nil
}

func handleSessionCreate(ctx context.Context, params json.RawMessage) (interface{}, error) {
	req, err := decodeParams[commands.SessionCreateRequest](params, "width, height, keyboardHeight", true)
	if err != nil {
		return nil, err
	}
	return commandResult(commands.SessionCreateCommand(req))
}

func handleSessionClose(ctx context.Context, params json.RawMessage) (interface{}, error) {
	req, err := decodeParams[commands.SessionRequest](params, "sessionId", true)
	if err != nil {
		return nil, err
	}
	return commandResult(commands.SessionCloseCommand(req))
}

func handleSessionList(ctx context.Context, params json.RawMessage) (interface{}, error) {
	return commandResult(commands.SessionListCommand())
}

func handleSessionQuit(ctx context.Context, params json.RawMessage) (interface{}, error) {
	req, err := decodeParams[commands.SessionRequest](params, "sessionId", true)
	if err != nil {
		return nil, err
	}
	return commandResult(commands.QuitCommand(ctx, req))
}

func handleInputKey(ctx context.Context, params json.RawMessage) (interface{}, error) {
	req, err := decodeParams[commands.KeyRequest](params, "sessionId, key, action", false)
	if err != nil {
		return nil, err
	}
	return commandResult(commands.KeyCommand(ctx, req))
}

func handleInputText(ctx context.Context, params json.RawMessage) (interface{}, error) {
	req, err := decodeParams[commands.TextRequest](params, "sessionId, text", false)
	if err != nil {
		return nil, err
	}
	return commandResult(commands.TextCommand(ctx, req))
}

func handleInputTouch(ctx context.Context, params json.RawMessage) (interface{}, error) {
	req, err := decodeParams[commands.MotionRequest](params, "sessionId, action, x, y", false)
	if err != nil {
		return nil, err
	}
	return commandResult(commands.TouchCommand(ctx, req))
}

func handleInputTrackball(ctx context.Context, params json.RawMessage) (interface{}, error) {
	req, err := decodeParams[commands.MotionRequest](params, "sessionId, action, x, y", false)
	if err != nil {
		return nil, err
	}
	return commandResult(commands.TrackballCommand(ctx, req))
}

func handleInputGeneric(ctx context.Context, params json.RawMessage) (interface{}, error) {
	req, err := decodeParams[commands.MotionRequest](params, "sessionId, action, x, y, source", false)
	if err != nil {
		return nil, err
	}
	return commandResult(commands.GenericMotionCommand(ctx, req))
}

func handleKeyboardSet(ctx context.Context, params json.RawMessage) (interface{}, error) {
	req, err := decodeParams[commands.KeyboardRequest](params, "sessionId, shown, withTextField, bounds", false)
	if err != nil {
		return nil, err
	}
	return commandResult(commands.KeyboardSetCommand(req))
}

func handleKeyboardGet(ctx context.Context, params json.RawMessage) (interface{}, error) {
	req, err := decodeParams[commands.SessionRequest](params, "sessionId", true)
	if err != nil {
		return nil, err
	}
	return commandResult(commands.KeyboardStateCommand(req))
}

func handleEventsDrain(ctx context.Context, params json.RawMessage) (interface{}, error) {
	req, err := decodeParams[commands.SessionRequest](params, "sessionId", true)
	if err != nil {
		return nil, err
	}
	return commandResult(commands.DrainCommand(req))
}

func handleReplay(ctx context.Context, params json.RawMessage) (interface{}, error) {
	req, err := decodeParams[commands.ReplayRequest](params, "screen, steps", false)
	if err != nil {
		return nil, err
	}
	return commandResult(commands.ReplayCommand(ctx, req))
}

func handleKeyCodes(ctx context.Context, params json.RawMessage) (interface{}, error) {
	return commandResult(commands.KeyCodesCommand())
}

func handleCharMapLayouts(ctx context.Context, params json.RawMessage) (interface{}, error) {
	return commandResult(commands.CharMapLayoutsCommand())
}

func handleCharMapRegister(ctx context.Context, params json.RawMessage) (interface{}, error) {
	req, err := decodeParams[commands.CharMapRegisterRequest](params, "name, strokes", false)
	if err != nil {
		return nil, err
	}
	return commandResult(commands.CharMapRegisterCommand(req))
}

func handleCharMapAssign(ctx context.Context, params json.RawMessage) (interface{}, error) {
	req, err := decodeParams[commands.CharMapAssignRequest](params, "deviceId, layout", false)
	if err != nil {
		return nil, err
	}
	return commandResult(commands.CharMapAssignCommand(req))
}
