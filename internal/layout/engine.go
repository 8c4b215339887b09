// Package layout decides between the single-pane and dual-pane screen
// layouts and applies the decision to the pane frame.
package layout

import (
	"log/slog"

	"github.com/interpretive-systems/codetrack/internal/appstate"
)

// DualPaneMinWidth is the narrowest viewport, in layout units, that may use
// the dual-pane layout.
const DualPaneMinWidth = 700

// UnitsPerColumn converts terminal columns to layout units. With 8 units per
// column the dual-pane threshold falls at 88 columns.
const UnitsPerColumn = 8

// ColumnsToUnits converts a terminal width to layout units.
func ColumnsToUnits(cols int) int {
	return cols * UnitsPerColumn
}

// Decide returns the layout that should be active. Rules are checked in
// order and the first match wins:
//
//  1. dual pane while the user turned dual pane off: single pane
//  2. wide enough, dual pane wanted, currently single: dual pane
//  3. too narrow while dual: single pane
//  4. otherwise keep the current layout
func Decide(width int, useDualPane bool, current appstate.Layout) appstate.Layout {
	switch {
	case current == appstate.DualPane && !useDualPane:
		return appstate.SinglePane
	case width >= DualPaneMinWidth && useDualPane && current == appstate.SinglePane:
		return appstate.DualPane
	case width < DualPaneMinWidth && current == appstate.DualPane:
		return appstate.SinglePane
	}
	return current
}

// Engine re-runs Decide against the state holder whenever the viewport or
// the dual-pane preference changes.
type Engine struct {
	state *appstate.State
	log   *slog.Logger
	width int
}

// NewEngine creates an engine for st. The width starts at zero until the
// first Resize.
func NewEngine(st *appstate.State, log *slog.Logger) *Engine {
	return &Engine{state: st, log: log}
}

// Width returns the last known viewport width in layout units.
func (e *Engine) Width() int {
	return e.width
}

// Resize records a new viewport width and re-decides.
func (e *Engine) Resize(width int) bool {
	e.width = width
	return e.Run()
}

// Run applies Decide to the current inputs. It writes currentLayout only
// when the target differs and reports whether it did.
func (e *Engine) Run() bool {
	cur := e.state.CurrentLayout.Get()
	next := Decide(e.width, e.state.UseDualPane.Get(), cur)
	if next == cur {
		return false
	}
	e.log.Debug("layout decision", "width", e.width, "useDualPane", e.state.UseDualPane.Get(), "from", cur, "to", next)
	return e.state.CurrentLayout.Set(next)
}

// Watch re-runs the engine on every useDualPane change.
func (e *Engine) Watch() (unsubscribe func()) {
	return e.state.UseDualPane.OnChange(func(_, _ bool) {
		e.Run()
	})
}
