package search

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interpretive-systems/codetrack/internal/appstate"
)

func typeRunes(e *Engine, s string) {
	for _, r := range s {
		e.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestEngine_TypingActivatesFilter(t *testing.T) {
	st := appstate.New()
	e := New(st)
	e.Focus()
	require.True(t, e.Focused())
	assert.True(t, st.ShowFilterBar.Get())

	typeRunes(e, "tea")
	assert.Equal(t, "tea", st.FilterText.Get())
	assert.True(t, st.FilterIsActive.Get())
	assert.Equal(t, "tea", e.Criteria().Text)

	e.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, e.Focused())
	assert.True(t, st.FilterIsActive.Get(), "enter keeps the filter")

	e.Focus()
	e.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, e.Focused())
	assert.False(t, st.FilterIsActive.Get())
	assert.Empty(t, e.Query())
	assert.True(t, e.Criteria().Empty())
}

func TestEngine_TypeAndStarCriteria(t *testing.T) {
	st := appstate.New()
	e := New(st)

	e.CycleType()
	assert.Equal(t, "tip", st.FilterType.Get())
	assert.True(t, st.FilterIsActive.Get())
	for range 5 {
		e.CycleType()
	}
	assert.Empty(t, st.FilterType.Get())
	assert.False(t, st.FilterIsActive.Get())

	e.ToggleStar()
	assert.True(t, st.FilterIsActive.Get())
	assert.True(t, e.Criteria().Starred)
	e.Clear()
	assert.False(t, st.FilterStar.Get())
	assert.False(t, st.FilterIsActive.Get())
}

func TestEngine_StartsFromRestoredText(t *testing.T) {
	st := appstate.New()
	st.FilterText.Set("slog")
	e := New(st)
	assert.Equal(t, "slog", e.Query())
}

func TestRender_HiddenBar(t *testing.T) {
	st := appstate.New()
	st.ShowFilterBar.Set(false)
	e := New(st)
	assert.Nil(t, e.Render(80, 0, 0))

	e.Focus()
	lines := e.Render(80, 3, 12)
	require.Len(t, lines, 1)
	assert.Contains(t, ansi.Strip(lines[0]), "type: all")
}

func TestRender_ShowsCounts(t *testing.T) {
	st := appstate.New()
	e := New(st)
	e.ToggleStar()

	lines := e.Render(120, 3, 12)
	require.Len(t, lines, 1)
	plain := ansi.Strip(lines[0])
	assert.Contains(t, plain, "starred: on")
	assert.Contains(t, plain, "3 of 12")
}
