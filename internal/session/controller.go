// Package session sequences startup and shutdown: restore preferences, load
// the items, build the screen, restore the previous session and save it all
// back on exit.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/interpretive-systems/codetrack/internal/appstate"
	"github.com/interpretive-systems/codetrack/internal/items"
	"github.com/interpretive-systems/codetrack/internal/layout"
	"github.com/interpretive-systems/codetrack/internal/listsync"
	"github.com/interpretive-systems/codetrack/internal/logging"
	"github.com/interpretive-systems/codetrack/internal/prefs"
	"github.com/interpretive-systems/codetrack/internal/router"
)

// SeededStatus is shown after sample data was created on first run.
const SeededStatus = "sample data created"

// ErrLoad marks a failure of the startup data load. It is fatal.
var ErrLoad = errors.New("initial data load failed")

// Views builds the screen pieces the controller owns but does not render.
type Views struct {
	// NewList constructs the persistent list view. It is called once.
	NewList func() listsync.View
	// BuildBars constructs the command and filter bars. It runs after the
	// session has been restored so the filter bar sees restored criteria.
	// The returned funcs are called by Close.
	BuildBars func() (unsubscribe []func())
}

// Controller owns the frame, the layout machinery and the list sync
// behaviors, and runs the startup phases in order.
type Controller struct {
	state *appstate.State
	store prefs.Store
	items *items.Collection
	log   *logging.Logger
	views Views

	frame    *layout.Frame
	attached *appstate.Signal
	engine   *layout.Engine
	applier  *layout.Applier
	router   *router.Router
	nav      layout.Navigator

	list    listsync.View
	built   bool
	resized bool
	unsubs  []func()
}

// New wires a controller. Nothing is read or subscribed until the phases
// are run.
func New(st *appstate.State, store prefs.Store, coll *items.Collection, log *logging.Logger, views Views) *Controller {
	c := &Controller{
		state:    st,
		store:    store,
		items:    coll,
		log:      log,
		views:    views,
		frame:    &layout.Frame{},
		attached: &appstate.Signal{},
	}
	c.engine = layout.NewEngine(st, log.Component("layout"))
	c.router = router.New(st, c.frame, c.Summary, c.attached, log.Component("router"))
	c.nav = c.router
	c.applier = layout.NewApplier(st, c.frame, c.nav, c.Summary, log.Component("layout"))
	return c
}

// Frame returns the pane tree the renderer draws.
func (c *Controller) Frame() *layout.Frame { return c.frame }

// Router returns the router used for all navigation.
func (c *Controller) Router() *router.Router { return c.router }

// SummaryAttached fires each time the list view is put on screen.
func (c *Controller) SummaryAttached() *appstate.Signal { return c.attached }

// Built reports whether BuildUI has completed.
func (c *Controller) Built() bool { return c.built }

// Summary returns the persistent list view, constructing it on first use.
func (c *Controller) Summary() any {
	return c.List()
}

// List is Summary with its concrete interface type.
func (c *Controller) List() listsync.View {
	if c.list == nil {
		c.log.Debug("constructing list view")
		c.list = c.views.NewList()
	}
	return c.list
}

// RestorePreferences loads the user preferences into the state holder.
// It runs before any screen exists.
func (c *Controller) RestorePreferences() {
	p := prefs.LoadUserPrefs(c.store)
	c.state.UseDualPane.Set(p.UseDualPane)
	c.state.SplitterLocation.Set(p.SplitterLocation)
	c.state.ShowDiagnostics.Set(p.ShowDiagnostics)
	c.log.SetDebug(p.ShowDiagnostics)
	c.log.Debug("user preferences restored",
		"useDualPane", p.UseDualPane, "splitter", p.SplitterLocation)
}

// EnableDiagnostics turns diagnostics on for this run, overriding the
// stored preference. The logger follows the state holder.
func (c *Controller) EnableDiagnostics() {
	c.state.ShowDiagnostics.Set(true)
	c.log.SetDebug(true)
}

// LoadData loads the collection and seeds it when empty. It only touches
// the collection, so it may run off the UI goroutine. The caller reports a
// seed to MarkSeeded on the UI goroutine.
func (c *Controller) LoadData(ctx context.Context) (seeded bool, err error) {
	if err := c.items.Load(ctx); err != nil {
		return false, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	if c.items.Len() > 0 {
		c.log.Debug("collection populated", "count", c.items.Len())
		return false, nil
	}
	c.log.Debug("no items stored, creating sample data")
	if _, err := c.items.Seed(ctx); err != nil {
		return false, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return true, nil
}

// MarkSeeded records that this is the first use of the application.
func (c *Controller) MarkSeeded() {
	c.state.FirstUse.Set(true)
	c.state.StatusMessage.Set(SeededStatus)
}

// BuildUI subscribes the layout and list machinery, restores the session,
// builds the bars and runs the layout engine against width. Calling it
// again does nothing.
func (c *Controller) BuildUI(route string, width int) {
	if c.built {
		c.log.Debug("screen already built")
		return
	}
	c.built = true

	list := c.List()
	highlighter := listsync.NewHighlighter(c.state, c.items, list)
	scroller := listsync.NewScroller(c.state, c.items, list, c.log.Component("listsync"))

	c.unsubs = append(c.unsubs,
		c.applier.Watch(),
		c.engine.Watch(),
		c.state.CurrentLayout.OnChange(func(_, cur appstate.Layout) {
			// Dual pane puts the list on screen.
			if cur == appstate.DualPane {
				c.attached.Fire()
			}
		}),
		c.state.ShowDiagnostics.OnChange(func(_, on bool) { c.log.SetDebug(on) }),
		highlighter.Watch(),
		scroller.Watch(c.attached),
	)
	c.unsubs = append(c.unsubs, c.items.OnAdd(func(items.Item) { highlighter.Sync() }))

	c.RestoreSession(route)

	if c.views.BuildBars != nil {
		c.unsubs = append(c.unsubs, c.views.BuildBars()...)
	}

	c.engine.Resize(width)
	c.resized = true
	c.log.Info("screen built", "route", c.router.Current(), "layout", c.state.CurrentLayout.Get())
}

// RestoreSession navigates to route when one is given. Otherwise it
// restores the filter and, for browseEdit, the item that was open.
func (c *Controller) RestoreSession(route string) {
	if route != "" {
		c.log.Debug("route given, not restoring session", "route", route)
		st, id, err := router.Parse(route)
		if err != nil {
			c.log.Warn("ignoring route", "err", err)
			st, id = appstate.StateList, ""
		}
		c.nav.NavigateTo(st, id)
		return
	}

	p := prefs.Load(c.store)
	if p.FilterWasActive {
		c.log.Debug("restoring filter", "text", p.FilterText, "type", p.FilterType, "starred", p.FilterStar)
		c.state.FilterText.Set(p.FilterText)
		c.state.FilterType.Set(p.FilterType)
		c.state.FilterStar.Set(p.FilterStar)
		c.state.FilterIsActive.Set(true)
	} else {
		c.state.ShowFilterBar.Set(p.ShowFilterBar)
	}

	switch {
	case p.LastCurrentState == string(appstate.StateBrowseEdit) && p.LastModelID != "":
		c.log.Debug("restoring browse/edit", "id", p.LastModelID)
		c.nav.NavigateTo(appstate.StateBrowseEdit, p.LastModelID)
	case c.state.FirstUse.Get():
		c.nav.NavigateTo(appstate.StateHelp, "")
	default:
		c.nav.NavigateTo(appstate.StateList, "")
	}
}

// Resize feeds a new viewport width, in layout units, to the engine. Widths
// arriving before BuildUI are ignored.
func (c *Controller) Resize(width int) bool {
	if !c.resized {
		return false
	}
	return c.engine.Resize(width)
}

// Save writes every persisted field. Failures are logged and returned but
// nothing is retried.
func (c *Controller) Save() error {
	err := prefs.Save(c.store, prefs.Snapshot(c.state))
	if err != nil {
		c.log.Error("saving session", "err", err)
		return err
	}
	c.log.Debug("session saved")
	return nil
}

// Close removes every subscription made by BuildUI, including those of the
// bars.
func (c *Controller) Close() {
	for _, off := range c.unsubs {
		off()
	}
	c.unsubs = nil
}
