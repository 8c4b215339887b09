// Package search is the filter bar: a text input plus type and starred-only
// criteria, kept in the application state so they survive a restart.
package search

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/codetrack/internal/appstate"
	"github.com/interpretive-systems/codetrack/internal/items"
)

// Engine manages the filter criteria and the filter input.
type Engine struct {
	state   *appstate.State
	input   textinput.Model
	focused bool
}

// New creates a filter bar showing the criteria currently in st.
func New(st *appstate.State) *Engine {
	ti := textinput.New()
	ti.Placeholder = "Filter items"
	ti.Prompt = "/ "
	ti.CharLimit = 0
	ti.SetValue(st.FilterText.Get())

	return &Engine{state: st, input: ti}
}

// Focus opens the input for typing. It also shows a hidden bar.
func (e *Engine) Focus() {
	e.focused = true
	e.input.Focus()
	e.state.ShowFilterBar.Set(true)
}

// Blur stops typing; the filter stays applied.
func (e *Engine) Blur() {
	e.focused = false
	e.input.Blur()
}

// Focused reports whether keys go to the input.
func (e *Engine) Focused() bool {
	return e.focused
}

// HandleKey processes key input while focused.
func (e *Engine) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		e.Clear()
		e.Blur()
		return true, nil
	case "enter":
		e.Blur()
		return true, nil
	case "tab":
		e.CycleType()
		return true, nil
	case "ctrl+s":
		e.ToggleStar()
		return true, nil
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	e.state.FilterText.Set(e.input.Value())
	e.syncActive()
	return true, cmd
}

// CycleType steps the type criterion through "" and every item type.
func (e *Engine) CycleType() {
	all := append([]string{""}, items.Types...)
	i := slices.Index(all, e.state.FilterType.Get())
	e.state.FilterType.Set(all[(i+1)%len(all)])
	e.syncActive()
}

// ToggleStar flips the starred-only criterion.
func (e *Engine) ToggleStar() {
	e.state.FilterStar.Set(!e.state.FilterStar.Get())
	e.syncActive()
}

// Clear removes every criterion.
func (e *Engine) Clear() {
	e.input.SetValue("")
	e.state.FilterText.Set("")
	e.state.FilterType.Set("")
	e.state.FilterStar.Set(false)
	e.syncActive()
}

// Criteria returns the filter to apply, empty when no filter is active.
func (e *Engine) Criteria() items.Criteria {
	if !e.state.FilterIsActive.Get() {
		return items.Criteria{}
	}
	return items.Criteria{
		Text:    e.state.FilterText.Get(),
		Type:    e.state.FilterType.Get(),
		Starred: e.state.FilterStar.Get(),
	}
}

// Query returns the text criterion.
func (e *Engine) Query() string {
	return e.input.Value()
}

func (e *Engine) syncActive() {
	c := items.Criteria{
		Text:    e.state.FilterText.Get(),
		Type:    e.state.FilterType.Get(),
		Starred: e.state.FilterStar.Get(),
	}
	e.state.FilterIsActive.Set(!c.Empty())
}

// InputView returns the text input view.
func (e *Engine) InputView() string {
	if !e.focused && strings.TrimSpace(e.input.Value()) == "" {
		return e.input.Prompt + "(press / to filter)"
	}
	return e.input.View()
}
