// Package wizards holds the full-pane forms: adding an item and editing
// the global options.
package wizards

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action represents what the wizard wants the parent to do.
type Action int

const (
	ActionContinue Action = iota // keep the wizard open
	ActionClose                  // leave without saving
	ActionSubmit                 // the form is complete and valid
)

// Wizard is the interface all wizards implement.
type Wizard interface {
	// Init resets the wizard for a fresh run.
	Init() tea.Cmd

	// HandleKey processes keyboard input.
	HandleKey(msg tea.KeyMsg) (Action, tea.Cmd)

	// Render returns the wizard UI lines.
	Render(width int) []string

	// Error returns any error message.
	Error() string
}
