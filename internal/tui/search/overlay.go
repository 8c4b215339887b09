package search

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	tuiansi "github.com/interpretive-systems/codetrack/internal/tui/ansi"
)

// Render returns the filter bar line, or nil when the bar is hidden.
func (e *Engine) Render(width int, matched, total int) []string {
	if width <= 0 || (!e.state.ShowFilterBar.Get() && !e.focused) {
		return nil
	}

	typ := e.state.FilterType.Get()
	if typ == "" {
		typ = "all"
	}
	star := "off"
	if e.state.FilterStar.Get() {
		star = "on"
	}
	status := fmt.Sprintf("type: %s (tab)  starred: %s (ctrl+s)", typ, star)
	if e.state.FilterIsActive.Get() {
		status += fmt.Sprintf("  %d of %d", matched, total)
	}

	line := e.InputView() + "  " + lipgloss.NewStyle().Faint(true).Render(status)
	return []string{tuiansi.Fit(line, width)}
}
