package tui

import tuiansi "github.com/interpretive-systems/codetrack/internal/tui/ansi"

var helpKeys = [][2]string{
	{"j/k, ↑/↓", "move in the list"},
	{"g/G, [ ]", "top, bottom, page"},
	{"enter", "open the selected item"},
	{"esc", "back to the list"},
	{"a", "add an item"},
	{"e", "edit the open item"},
	{"s", "star or unstar"},
	{"x", "delete the open item"},
	{"/", "filter (tab: type, ctrl+s: starred only)"},
	{"F / C", "show or hide the filter bar, clear the filter"},
	{"d", "toggle dual pane"},
	{"< >", "resize the list pane"},
	{"o", "options"},
	{"pgup/pgdn", "scroll the item"},
	{"q", "quit"},
}

func (p *Program) helpLines() []string {
	t := p.screens.Theme
	var lines []string
	if p.state.FirstUse.Get() {
		lines = append(lines,
			t.TitleText("Welcome to codetrack"),
			"",
			"A few sample items were created so there is something to look at.",
			"Widen the terminal to see the list and an item side by side.",
			"",
		)
	}
	lines = append(lines, t.TitleText("Keys"), "")
	for _, k := range helpKeys {
		lines = append(lines, tuiansi.Fit("  "+k[0], 14)+k[1])
	}
	return lines
}
