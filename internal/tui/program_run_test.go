package tui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interpretive-systems/codetrack/internal/prefs"
)

func TestProgram_RunsAndSavesOnQuit(t *testing.T) {
	tp := newTestProgram(t, nil, "")
	tm := teatest.NewTestModel(t, tp.Program, teatest.WithInitialTermSize(100, 30))

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("sample data created"))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))

	final, ok := tm.FinalModel(t).(*Program)
	require.True(t, ok)
	assert.NoError(t, final.Err())

	v, ok := tp.store.Get(prefs.KeyLastCurrentState)
	assert.True(t, ok)
	assert.Equal(t, "help", v)
}

func TestProgram_SaveMsgQuits(t *testing.T) {
	tp := newTestProgram(t, nil, "list")
	tm := teatest.NewTestModel(t, tp.Program, teatest.WithInitialTermSize(60, 20))

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("Debounce resize handlers"))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(SaveMsg{Quit: true})
	tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))

	v, ok := tp.store.Get(prefs.KeyUseDualPane)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}
