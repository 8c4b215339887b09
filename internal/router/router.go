// Package router maps routes such as "edit/<id>" to application states and
// performs navigation against the shared state holder.
package router

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/interpretive-systems/codetrack/internal/appstate"
	"github.com/interpretive-systems/codetrack/internal/layout"
)

// ErrBadRoute is returned for a route that names no screen.
var ErrBadRoute = errors.New("unknown route")

const (
	RouteList    = "list"
	RouteEdit    = "edit"
	RouteAdd     = "add"
	RouteOptions = "options"
	RouteHelp    = "help"
)

// Parse splits a route into its application state and model id.
func Parse(route string) (appstate.AppState, string, error) {
	route = strings.Trim(strings.TrimSpace(route), "/#")
	name, id, _ := strings.Cut(route, "/")
	switch name {
	case RouteList:
		return appstate.StateList, "", nil
	case RouteAdd:
		return appstate.StateAdd, "", nil
	case RouteOptions:
		return appstate.StateGlobalOptions, "", nil
	case RouteHelp:
		return appstate.StateHelp, "", nil
	case RouteEdit:
		if id == "" {
			return "", "", fmt.Errorf("%w: %q has no item id", ErrBadRoute, route)
		}
		return appstate.StateBrowseEdit, id, nil
	}
	return "", "", fmt.Errorf("%w: %q", ErrBadRoute, route)
}

// Format is the inverse of Parse.
func Format(st appstate.AppState, id string) string {
	switch st {
	case appstate.StateBrowseEdit:
		return RouteEdit + "/" + id
	case appstate.StateAdd:
		return RouteAdd
	case appstate.StateGlobalOptions:
		return RouteOptions
	case appstate.StateHelp:
		return RouteHelp
	}
	return RouteList
}

// Router switches the primary pane between screens.
type Router struct {
	state    *appstate.State
	frame    *layout.Frame
	summary  func() any
	attached *appstate.Signal
	log      *slog.Logger
}

// New creates a Router. summary returns the persistent list view; attached
// fires each time that view is put on the visible screen.
func New(st *appstate.State, frame *layout.Frame, summary func() any, attached *appstate.Signal, log *slog.Logger) *Router {
	return &Router{state: st, frame: frame, summary: summary, attached: attached, log: log}
}

// Navigate parses route and goes there.
func (r *Router) Navigate(route string) error {
	st, id, err := Parse(route)
	if err != nil {
		return err
	}
	r.NavigateTo(st, id)
	return nil
}

// NavigateTo makes st the active screen. For browseEdit the model id is
// recorded before the state changes so listeners see both.
func (r *Router) NavigateTo(st appstate.AppState, modelID string) {
	if st == appstate.StateBrowseEdit {
		r.state.LastBrowsedModelID.Set(modelID)
	}
	// The list already occupies the secondary pane.
	if st == appstate.StateList && r.frame.Dual() {
		st = appstate.StateHelp
	}
	r.log.Debug("navigate", "route", Format(st, modelID))
	r.state.CurrentState.Set(st)

	if st == appstate.StateList {
		r.frame.Mount(&r.frame.Primary, r.summary())
		r.attached.Fire()
		return
	}
	r.frame.Primary.Content = nil
}

// Current returns the route of the active screen.
func (r *Router) Current() string {
	return Format(r.state.CurrentState.Get(), r.state.LastBrowsedModelID.Get())
}
