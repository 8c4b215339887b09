package components

import (
	"github.com/charmbracelet/lipgloss"

	tuiansi "github.com/interpretive-systems/codetrack/internal/tui/ansi"
)

// StatusBar renders the bottom bar.
type StatusBar struct {
	message   string
	keyBuffer string
	position  string
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetMessage sets the transient status text.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

// SetKeyBuffer updates the key buffer display.
func (s *StatusBar) SetKeyBuffer(buf string) {
	s.keyBuffer = buf
}

// SetPosition sets the right-hand text: route and layout.
func (s *StatusBar) SetPosition(pos string) {
	s.position = pos
}

// Render renders the status bar.
func (s *StatusBar) Render(width int) string {
	leftText := "?: help  a: add  /: filter  o: options  q: quit"
	if s.keyBuffer != "" {
		leftText = s.keyBuffer
	}
	if s.message != "" {
		leftText += "  |  " + s.message
	}

	faint := lipgloss.NewStyle().Faint(true)
	return tuiansi.JoinEnds(faint.Render(leftText), faint.Render(s.position), width)
}
