package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetVerbose_And_IsVerbose(t *testing.T) {
	// save original state and restore after test
	original := IsVerbose()
	defer SetVerbose(original)

	SetVerbose(true)
	assert.True(t, IsVerbose(), "expected IsVerbose() = true after SetVerbose(true)")

	SetVerbose(false)
	assert.False(t, IsVerbose(), "expected IsVerbose() = false after SetVerbose(false)")
}

func TestVerbose_SilentWhenDisabled(t *testing.T) {
	original := IsVerbose()
	defer SetVerbose(original)

	var buf bytes.Buffer
	out := Logger().Out
	Logger().SetOutput(&buf)
	defer Logger().SetOutput(out)

	SetVerbose(false)
	Verbose("test message %s %d", "arg", 42)
	assert.Empty(t, buf.String())
}

func TestVerbose_WritesWhenEnabled(t *testing.T) {
	original := IsVerbose()
	defer SetVerbose(original)

	var buf bytes.Buffer
	out := Logger().Out
	Logger().SetOutput(&buf)
	defer Logger().SetOutput(out)

	SetVerbose(true)
	Verbose("test message %s %d", "arg", 42)
	assert.Contains(t, buf.String(), "test message arg 42")
	assert.Contains(t, buf.String(), "level=debug")
}

func TestInfo_Writes(t *testing.T) {
	var buf bytes.Buffer
	out := Logger().Out
	Logger().SetOutput(&buf)
	defer Logger().SetOutput(out)

	Info("test info %s", "message")
	Warn("test warn")
	assert.Contains(t, buf.String(), "test info message")
	assert.Contains(t, buf.String(), "level=warning")
}
