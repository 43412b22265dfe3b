package output

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture redirects package output to a buffer for the duration of f
func capture(t *testing.T, f func()) string {
	t.Helper()

	buf := &bytes.Buffer{}
	SetOutput(buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })

	f()
	return buf.String()
}

func TestSuccess(t *testing.T) {
	got := capture(t, func() { Success("Test message") })

	assert.Contains(t, got, "✔")
	assert.Contains(t, got, "Test message")
}

func TestError(t *testing.T) {
	got := capture(t, func() { Error("Error message") })

	assert.Contains(t, got, "✘")
	assert.Contains(t, got, "Error message")
}

func TestInfo(t *testing.T) {
	got := capture(t, func() { Info("Info message") })

	assert.Contains(t, got, "Info message")
}

func TestStep(t *testing.T) {
	got := capture(t, func() { Step("Step message") })

	assert.Contains(t, got, "   Step message")
}

func TestVerbose(t *testing.T) {
	t.Cleanup(func() { SetVerbose(false) })

	got := capture(t, func() { Verbose("Debug message") })
	assert.Empty(t, got, "verbose output should be empty when verbose mode is off")

	SetVerbose(true)
	assert.True(t, IsVerbose())

	got = capture(t, func() { Verbose("Debug message") })
	assert.Contains(t, got, "Debug message")
}

func TestNotice(t *testing.T) {
	buf := &bytes.Buffer{}

	require.NoError(t, Notice(buf, "Invalid input"))

	assert.Contains(t, buf.String(), "Invalid input")
	assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
}
