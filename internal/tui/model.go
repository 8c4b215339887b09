package tui

import (
	"github.com/interpretive-systems/codetrack/internal/appstate"
	"github.com/interpretive-systems/codetrack/internal/tui/components"
	"github.com/interpretive-systems/codetrack/internal/tui/search"
	"github.com/interpretive-systems/codetrack/internal/tui/wizards"
)

// Screens holds the views the program draws. List is built on demand by
// the session controller; StatusBar and Filter when the bars are built.
type Screens struct {
	Theme Theme

	List      *components.CodeList
	Detail    *components.Detail
	StatusBar *components.StatusBar
	Filter    *search.Engine

	Add     *wizards.AddWizard
	Edit    *wizards.AddWizard // shown over the detail pane in browseEdit
	Options *wizards.OptionsWizard

	// Wizards maps the states that show a form to that form.
	Wizards map[appstate.AppState]wizards.Wizard
}

// NewScreens creates the views that do not depend on restored state.
func NewScreens(theme Theme, st *appstate.State) *Screens {
	add := wizards.NewAddWizard()
	options := wizards.NewOptionsWizard(st)
	return &Screens{
		Theme:   theme,
		Detail:  components.NewDetail(),
		Add:     add,
		Edit:    wizards.NewAddWizard(),
		Options: options,
		Wizards: map[appstate.AppState]wizards.Wizard{
			appstate.StateAdd:           add,
			appstate.StateGlobalOptions: options,
		},
	}
}

func (s *Screens) listStyles() components.ListStyles {
	return components.ListStyles{
		Highlight: s.Theme.HighlightStyle(),
		Cursor:    s.Theme.CursorStyle(),
		Star:      s.Theme.StarStyle(),
	}
}
