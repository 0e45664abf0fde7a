package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuffer(t *testing.T, v bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(v)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestQuietByDefault(t *testing.T) {
	buf := withBuffer(t, false)

	Debug("debug %d", 1)
	Info("info")
	Section("section")

	assert.Empty(t, buf.String())
	assert.False(t, IsVerbose())
}

func TestWarnAlwaysWritten(t *testing.T) {
	buf := withBuffer(t, false)

	Warn("skipping malformed JSON at line %d", 2)

	assert.Equal(t, "[WARN] skipping malformed JSON at line 2\n", buf.String())
}

func TestVerboseOutput(t *testing.T) {
	buf := withBuffer(t, true)

	Debug("loaded %d docs", 3)
	Warn("skipping line %d", 7)
	Section("Analysis")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] loaded 3 docs\n")
	assert.Contains(t, out, "[WARN] skipping line 7\n")
	assert.Contains(t, out, "=== Analysis ===")
	assert.True(t, IsVerbose())
}
