package commands

import (
	"fmt"

	"github.com/mobile-next/mobileinput/charmap"
)

// CharMapAssignRequest makes text typed for DeviceID use Layout
type CharMapAssignRequest struct {
	DeviceID int    `json:"deviceId"`
	Layout   string `json:"layout"`
}

// CharMapRegisterRequest adds or replaces a layout shared by all sessions
type CharMapRegisterRequest struct {
	Name    string             `json:"name"`
	Strokes charmap.LayoutSpec `json:"strokes"`
}

func charMapInfo(cm *charmap.Map) map[string]interface{} {
	return map[string]interface{}{
		"layouts": cm.Layouts(),
		"default": cm.Fallback(),
	}
}

// CharMapLayoutsCommand lists the registered layouts and the default one
func CharMapLayoutsCommand() *CommandResponse {
	cm, err := getCharMap()
	if err != nil {
		return NewErrorResponse(fmt.Errorf("failed to create character map: %w", err))
	}
	return NewSuccessResponse(charMapInfo(cm))
}

// CharMapRegisterCommand registers a layout
func CharMapRegisterCommand(req CharMapRegisterRequest) *CommandResponse {
	if req.Name == "" {
		return NewErrorResponse(fmt.Errorf("layout name is required"))
	}

	layout, err := req.Strokes.Layout()
	if err != nil {
		return NewErrorResponse(fmt.Errorf("invalid layout %s: %w", req.Name, err))
	}

	cm, err := getCharMap()
	if err != nil {
		return NewErrorResponse(fmt.Errorf("failed to create character map: %w", err))
	}

	cm.RegisterLayout(req.Name, layout)
	return NewSuccessResponse(charMapInfo(cm))
}

// CharMapAssignCommand assigns a layout to a device
func CharMapAssignCommand(req CharMapAssignRequest) *CommandResponse {
	cm, err := getCharMap()
	if err != nil {
		return NewErrorResponse(fmt.Errorf("failed to create character map: %w", err))
	}

	if err := cm.AssignLayout(req.DeviceID, req.Layout); err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"deviceId": req.DeviceID,
		"layout":   req.Layout,
	})
}
