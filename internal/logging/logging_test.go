package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, false)
	logger.Debug("hidden")
	logger.Warn("inline translation problem", "key", "hook.log.processing")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "inline translation problem")
	assert.Contains(t, out, "key=hook.log.processing")
	assert.NotContains(t, out, "\x1b[", "no colour when not a terminal")

	buf.Reset()
	New(&buf, true).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "log")
	assert.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}
