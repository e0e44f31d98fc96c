package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mobile-next/mobileinput/commands"
	"github.com/mobile-next/mobileinput/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	registry := session.NewRegistry()
	commands.SetRegistry(registry)
	t.Cleanup(registry.CleanupAll)

	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReplayCommand(t *testing.T) {
	script := writeFile(t, "script.json", `{"steps": [
		{"op": "key", "key": "a", "action": "press"},
		{"op": "touch", "action": "down", "x": 10, "y": 20}
	]}`)

	require.NoError(t, run(t, "replay", script))
	assert.Equal(t, 0, commands.GetRegistry().Len(), "replay session should be removed")
}

func TestReplayCommand_Errors(t *testing.T) {
	err := run(t, "replay", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read script")

	err = run(t, "replay", writeFile(t, "bad.json", `{"steps": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid replay script")

	err = run(t, "replay", writeFile(t, "op.json", `{"steps": [{"op": "teleport"}]}`))
	require.Error(t, err)
}

func TestConfigFlag(t *testing.T) {
	cfgPath := writeFile(t, "input.ini", "[screen]\nwidth = 640\nheight = 480\n")
	t.Cleanup(func() { configPath = "" })

	require.NoError(t, run(t, "--config", cfgPath, "keycodes"))
	assert.Equal(t, 640, commands.GetConfig().Screen.Width)
	assert.Equal(t, 480, commands.GetConfig().Screen.Height)

	bad := writeFile(t, "bad.ini", "[input]\nlong_press_timeout = soon\n")
	require.Error(t, run(t, "--config", bad, "keycodes"))
}
