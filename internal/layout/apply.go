package layout

import (
	"log/slog"

	"github.com/interpretive-systems/codetrack/internal/appstate"
)

// Navigator moves the application to another screen.
type Navigator interface {
	NavigateTo(st appstate.AppState, modelID string)
}

// Applier reacts to currentLayout changes by rearranging the frame.
type Applier struct {
	state   *appstate.State
	frame   *Frame
	nav     Navigator
	summary func() any
	log     *slog.Logger
}

// NewApplier wires an applier. summary must return the persistent list
// view, constructing it on first call.
func NewApplier(st *appstate.State, frame *Frame, nav Navigator, summary func() any, log *slog.Logger) *Applier {
	return &Applier{state: st, frame: frame, nav: nav, summary: summary, log: log}
}

// Watch subscribes the applier to layout and splitter changes.
func (a *Applier) Watch() (unsubscribe func()) {
	offLayout := a.state.CurrentLayout.OnChange(func(_, cur appstate.Layout) {
		a.Apply(cur)
	})
	offSplit := a.state.SplitterLocation.OnChange(func(_, _ int) {
		a.ApplySplitter()
	})
	return func() {
		offLayout()
		offSplit()
	}
}

// Apply rearranges the frame for l.
func (a *Applier) Apply(l appstate.Layout) {
	if l == appstate.DualPane {
		a.enterDual()
		return
	}
	a.enterSingle()
}

func (a *Applier) enterDual() {
	a.log.Debug("applying dual-pane layout")
	a.frame.setDual()
	a.frame.Mount(&a.frame.Secondary, a.summary())

	// The list just left the primary pane; fill it with help instead.
	if a.state.CurrentState.Get() == appstate.StateList {
		a.log.Debug("primary pane vacated, showing help")
		a.nav.NavigateTo(appstate.StateHelp, "")
		a.state.StatusMessage.Set("")
	}
	a.ApplySplitter()
}

func (a *Applier) enterSingle() {
	a.log.Debug("applying single-pane layout")
	a.frame.clearDual()

	switch {
	case a.state.FirstUse.Get():
		a.nav.NavigateTo(appstate.StateHelp, "")
	case a.state.CurrentState.Get() == appstate.StateList:
		// Bring the list back from the secondary pane.
		a.nav.NavigateTo(appstate.StateList, "")
	}
}

// ApplySplitter sizes the panes from splitterLocation. Safe to call at any
// time; it only touches panes carrying a dual-pane marker.
func (a *Applier) ApplySplitter() {
	a.frame.ApplySplitter(a.state.SplitterLocation.Get())
}
