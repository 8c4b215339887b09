package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/codetrack/internal/session"
)

const loadTimeout = 30 * time.Second

// loadItems loads the collection, seeding it on first run.
func loadItems(ctrl *session.Controller) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		seeded, err := ctrl.LoadData(ctx)
		return itemsLoadedMsg{seeded: seeded, err: err}
	}
}
