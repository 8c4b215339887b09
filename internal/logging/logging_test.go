package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDebug_SwitchesLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, false)

	l.Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")
	assert.False(t, l.Debugging())

	l.SetDebug(true)
	l.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.True(t, l.Debugging())

	l.SetDebug(false)
	l.Debug("hidden again")
	assert.NotContains(t, buf.String(), "hidden again")
}

func TestComponent_TagsRecords(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, false)
	l.Component("layout").Info("applied")
	assert.Contains(t, buf.String(), "component=layout")
	assert.Contains(t, buf.String(), "msg=applied")
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "codetrack.log")
	l := New(Options{Path: path, MaxSizeMB: 1})
	l.Info("started", "route", "list")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "route=list")
}

func TestDiscard_CloseIsNoop(t *testing.T) {
	assert.NoError(t, Discard().Close())
}
