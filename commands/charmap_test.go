package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mobile-next/mobileinput/charmap"
	"github.com/mobile-next/mobileinput/config"
	"github.com/mobile-next/mobileinput/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, id string, deviceID int, text string) []EventView {
	t.Helper()
	resp := TextCommand(context.Background(), TextRequest{SessionID: id, DeviceID: deviceID, Text: text})
	require.Equal(t, "ok", resp.Status, resp.Error)
	return drain(t, id)
}

func TestCharMap_ConfiguredLayout(t *testing.T) {
	setup(t)

	path := filepath.Join(t.TempDir(), "layouts.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"mini": {"x": {"keyCode": 7}}}`), 0o644))

	cfg := config.Default()
	cfg.CharMap.Layout = "mini"
	cfg.CharMap.LayoutFile = path
	SetConfig(cfg)

	id := createSession(t)
	evs := typeText(t, id, 0, "x")
	require.Len(t, evs, 2)
	assert.Equal(t, types.KeyCode0, evs[0].Args[1])

	// "a" is not in the mini layout
	assert.Empty(t, typeText(t, id, 0, "a"))

	resp := CharMapLayoutsCommand()
	require.Equal(t, "ok", resp.Status, resp.Error)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, []string{"mini", "us"}, data["layouts"])
	assert.Equal(t, "mini", data["default"])
}

func TestCharMap_UnknownLayoutRejected(t *testing.T) {
	setup(t)

	cfg := config.Default()
	cfg.CharMap.Layout = "dvorak"
	SetConfig(cfg)

	resp := SessionCreateCommand(SessionCreateRequest{})
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Error, "unknown layout")

	cfg = config.Default()
	cfg.CharMap.LayoutFile = filepath.Join(t.TempDir(), "missing.json")
	SetConfig(cfg)

	resp = SessionCreateCommand(SessionCreateRequest{})
	assert.Equal(t, "error", resp.Status)
}

func TestCharMap_RegisterAndAssign(t *testing.T) {
	setup(t)
	id := createSession(t)

	resp := CharMapRegisterCommand(CharMapRegisterRequest{
		Name:    "digits",
		Strokes: charmap.LayoutSpec{"x": {KeyCode: types.KeyCode0}},
	})
	require.Equal(t, "ok", resp.Status, resp.Error)

	resp = CharMapAssignCommand(CharMapAssignRequest{DeviceID: 5, Layout: "digits"})
	require.Equal(t, "ok", resp.Status, resp.Error)

	evs := typeText(t, id, 5, "x")
	require.Len(t, evs, 2)
	assert.Equal(t, types.KeyCode0, evs[0].Args[1])

	// other devices keep the default layout
	evs = typeText(t, id, 0, "x")
	require.Len(t, evs, 2)
	assert.Equal(t, types.KeyCodeA+23, evs[0].Args[1])

	resp = CharMapAssignCommand(CharMapAssignRequest{DeviceID: 5, Layout: "dvorak"})
	assert.Equal(t, "error", resp.Status)

	resp = CharMapRegisterCommand(CharMapRegisterRequest{Name: "bad", Strokes: charmap.LayoutSpec{"xy": {KeyCode: 7}}})
	assert.Equal(t, "error", resp.Status)
	resp = CharMapRegisterCommand(CharMapRegisterRequest{Strokes: charmap.LayoutSpec{"x": {KeyCode: 7}}})
	assert.Equal(t, "error", resp.Status)
}
