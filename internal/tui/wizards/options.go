package wizards

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/interpretive-systems/codetrack/internal/appstate"
)

const (
	optDualPane = iota
	optSplitter
	optFilterBar
	optDiagnostics
	optCount
)

// OptionsWizard edits the global options. Changes apply immediately.
type OptionsWizard struct {
	state *appstate.State
	index int
}

// NewOptionsWizard creates an options panel over st.
func NewOptionsWizard(st *appstate.State) *OptionsWizard {
	return &OptionsWizard{state: st}
}

// Init moves the cursor back to the first option.
func (w *OptionsWizard) Init() tea.Cmd {
	w.index = 0
	return nil
}

// HandleKey processes keyboard input.
func (w *OptionsWizard) HandleKey(msg tea.KeyMsg) (Action, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return ActionClose, nil
	case "j", "down":
		w.index = min(w.index+1, optCount-1)
	case "k", "up":
		w.index = max(w.index-1, 0)
	case "left", "h", "<":
		if w.index == optSplitter {
			w.nudgeSplitter(-1)
		}
	case "right", "l", ">":
		if w.index == optSplitter {
			w.nudgeSplitter(1)
		}
	case " ", "enter":
		w.toggle()
	}
	return ActionContinue, nil
}

func (w *OptionsWizard) toggle() {
	switch w.index {
	case optDualPane:
		w.state.UseDualPane.Set(!w.state.UseDualPane.Get())
	case optFilterBar:
		w.state.ShowFilterBar.Set(!w.state.ShowFilterBar.Get())
	case optDiagnostics:
		w.state.ShowDiagnostics.Set(!w.state.ShowDiagnostics.Get())
	}
}

func (w *OptionsWizard) nudgeSplitter(delta int) {
	NudgeSplitter(w.state, delta)
}

// NudgeSplitter moves the splitter by delta, stopping at 1 and 9.
func NudgeSplitter(st *appstate.State, delta int) bool {
	next := st.SplitterLocation.Get() + delta
	if next < 1 || next > 9 {
		return false
	}
	return st.SplitterLocation.Set(next)
}

// Error returns any error message.
func (w *OptionsWizard) Error() string {
	return ""
}

// Render renders the options list.
func (w *OptionsWizard) Render(width int) []string {
	title := lipgloss.NewStyle().Bold(true).
		Render("Options (j/k: move, space: toggle, ←/→: adjust, esc: done)")
	lines := []string{title, ""}

	check := func(b bool) string {
		if b {
			return "[x]"
		}
		return "[ ]"
	}
	loc := w.state.SplitterLocation.Get()
	rows := []string{
		check(w.state.UseDualPane.Get()) + " Use dual pane on wide terminals",
		fmt.Sprintf("◂ %d ▸ List width in dual pane (%d0%%)", loc, loc),
		check(w.state.ShowFilterBar.Get()) + " Show filter bar",
		check(w.state.ShowDiagnostics.Get()) + " Write diagnostics to the log",
	}
	for i, r := range rows {
		cur := "  "
		if i == w.index {
			cur = "> "
		}
		lines = append(lines, cur+r)
	}
	return lines
}
