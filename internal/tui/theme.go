package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used for rendering.
type Theme struct {
	AccentColor    string
	DividerColor   string
	HighlightFg    string
	HighlightBg    string
	StarColor      string
	ErrorColor     string
	SelectionColor string
}

func darkTheme() Theme {
	return Theme{
		AccentColor:    "63",
		DividerColor:   "240",
		HighlightFg:    "230",
		HighlightBg:    "24",
		StarColor:      "220",
		ErrorColor:     "196",
		SelectionColor: "117",
	}
}

func lightTheme() Theme {
	return Theme{
		AccentColor:    "27",
		DividerColor:   "244",
		HighlightFg:    "16",
		HighlightBg:    "153",
		StarColor:      "172",
		ErrorColor:     "160",
		SelectionColor: "25",
	}
}

// GetTheme returns the named theme; anything but "light" is dark.
func GetTheme(name string) Theme {
	if name == "light" {
		return lightTheme()
	}
	return darkTheme()
}

func (t Theme) DividerText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DividerColor)).Render(s)
}

func (t Theme) TitleText(s string) string {
	return t.TitleStyle().Render(s)
}

func (t Theme) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.AccentColor))
}

func (t Theme) ErrorText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.ErrorColor)).Render(s)
}

// HighlightStyle marks the row of the item open in the detail pane.
func (t Theme) HighlightStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.HighlightFg)).
		Background(lipgloss.Color(t.HighlightBg))
}

// CursorStyle marks the row under the list cursor.
func (t Theme) CursorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.SelectionColor))
}

// StarStyle renders the starred marker.
func (t Theme) StarStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.StarColor))
}
