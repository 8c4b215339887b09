// Package listsync keeps the persistent list view's highlighted row and
// scroll position consistent with the application state, whatever changed
// it: a key press, a restored session or a route given on the command line.
//
// The highlight cue and scroll-to-active behaviors are independent; each
// can be wired and tested alone.
package listsync

import (
	"log/slog"

	"github.com/interpretive-systems/codetrack/internal/appstate"
)

// ActiveRowOffset is how many rows above the active row stay visible after
// scrolling it into view.
const ActiveRowOffset = 2

// Resolver reports whether a model id still names an item.
type Resolver interface {
	Has(id string) bool
}

// View is the list view surface driven by this package. Positions and
// heights are measured in rows from the top of the list content.
type View interface {
	ClearHighlight()
	SetHighlight(id string)

	Visible() bool
	RowBounds(id string) (top, height int, ok bool)
	ScrollTop() int
	ScrollTo(top int)
	ViewportHeight() int
}

// Highlighter marks the row of the item open in the detail pane.
type Highlighter struct {
	state *appstate.State
	items Resolver
	view  View
}

// NewHighlighter creates a Highlighter.
func NewHighlighter(st *appstate.State, items Resolver, view View) *Highlighter {
	return &Highlighter{state: st, items: items, view: view}
}

// Sync clears every highlight and, when an item is being browsed, marks
// its row. A stale id is ignored.
func (h *Highlighter) Sync() {
	h.view.ClearHighlight()
	if h.state.CurrentState.Get() != appstate.StateBrowseEdit {
		return
	}
	id := h.state.LastBrowsedModelID.Get()
	if !h.items.Has(id) {
		return
	}
	h.view.SetHighlight(id)
}

// Watch re-syncs on lastBrowsedModelID and currentState changes.
func (h *Highlighter) Watch() (unsubscribe func()) {
	offID := h.state.LastBrowsedModelID.OnChange(func(_, _ string) { h.Sync() })
	offState := h.state.CurrentState.OnChange(func(_, _ appstate.AppState) { h.Sync() })
	return func() {
		offID()
		offState()
	}
}

// Scroller brings the active row into view.
type Scroller struct {
	state *appstate.State
	items Resolver
	view  View
	log   *slog.Logger
}

// NewScroller creates a Scroller.
func NewScroller(st *appstate.State, items Resolver, view View, log *slog.Logger) *Scroller {
	return &Scroller{state: st, items: items, view: view, log: log}
}

// ScrollToActive scrolls the list so the active row sits ActiveRowOffset
// rows below the top of the window. It does nothing when the list is
// hidden, the id is stale, or the row is already fully visible. It reports
// whether it scrolled.
func (s *Scroller) ScrollToActive() bool {
	if !s.view.Visible() {
		return false
	}
	id := s.state.LastBrowsedModelID.Get()
	if !s.items.Has(id) {
		return false
	}
	top, height, ok := s.view.RowBounds(id)
	if !ok {
		return false
	}

	pos := top - s.view.ScrollTop()
	if pos >= 0 && pos+height <= s.view.ViewportHeight() {
		return false
	}

	target := max(top-ActiveRowOffset, 0)
	if target == s.view.ScrollTop() {
		return false
	}
	s.log.Debug("scrolling list to active row", "id", id, "top", target)
	s.view.ScrollTo(target)
	return true
}

// Watch scrolls on lastBrowsedModelID and currentState changes and each
// time the list is attached to the visible screen.
func (s *Scroller) Watch(attached *appstate.Signal) (unsubscribe func()) {
	offID := s.state.LastBrowsedModelID.OnChange(func(_, _ string) { s.ScrollToActive() })
	offState := s.state.CurrentState.OnChange(func(_, _ appstate.AppState) { s.ScrollToActive() })
	offAttach := attached.Subscribe(func() { s.ScrollToActive() })
	return func() {
		offID()
		offState()
		offAttach()
	}
}
