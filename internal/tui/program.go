// Package tui is the terminal front end: it draws the pane frame the
// session controller maintains and turns key presses into navigation and
// state changes.
package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/codetrack/internal/appstate"
	"github.com/interpretive-systems/codetrack/internal/items"
	"github.com/interpretive-systems/codetrack/internal/layout"
	"github.com/interpretive-systems/codetrack/internal/listsync"
	"github.com/interpretive-systems/codetrack/internal/logging"
	"github.com/interpretive-systems/codetrack/internal/prefs"
	"github.com/interpretive-systems/codetrack/internal/session"
	"github.com/interpretive-systems/codetrack/internal/tui/components"
	"github.com/interpretive-systems/codetrack/internal/tui/search"
	"github.com/interpretive-systems/codetrack/internal/tui/wizards"
)

// Options configures a Program.
type Options struct {
	// Route, when set, is shown instead of the restored session.
	Route string
	// Theme is "dark" or "light".
	Theme string
	// Debug turns diagnostics on regardless of the stored preference.
	Debug bool
}

// Program is the Bubble Tea model.
type Program struct {
	state *appstate.State
	ctrl  *session.Controller
	items *items.Collection
	log   *slog.Logger
	route string
	debug bool

	layout     *Layout
	keyHandler *KeyHandler
	screens    *Screens

	loaded  bool
	editing bool
	err     error
}

// New creates the program and its session controller. Nothing is loaded
// until Init.
func New(st *appstate.State, store prefs.Store, coll *items.Collection, log *logging.Logger, opts Options) *Program {
	p := &Program{
		state:      st,
		items:      coll,
		log:        log.Component("tui"),
		route:      opts.Route,
		debug:      opts.Debug,
		layout:     NewLayout(),
		keyHandler: NewKeyHandler(),
		screens:    NewScreens(GetTheme(opts.Theme), st),
	}
	p.ctrl = session.New(st, store, coll, log, session.Views{
		NewList:   p.newList,
		BuildBars: p.buildBars,
	})
	return p
}

// Err returns the fatal startup error, if any.
func (p *Program) Err() error {
	return p.err
}

// Save writes the session once the screen has been built.
func (p *Program) Save() error {
	if !p.ctrl.Built() {
		return nil
	}
	return p.ctrl.Save()
}

// Close drops the controller's subscriptions.
func (p *Program) Close() {
	p.ctrl.Close()
}

func (p *Program) newList() listsync.View {
	p.screens.List = components.NewCodeList(func() bool {
		return p.ctrl.Frame().Visible(p.screens.List)
	})
	p.refreshList()
	return p.screens.List
}

// buildBars runs after the session is restored, so the list is filtered
// once here for criteria that were set before these subscriptions existed.
func (p *Program) buildBars() []func() {
	p.screens.StatusBar = components.NewStatusBar()
	p.screens.Filter = search.New(p.state)

	refresh := func() { p.refreshList() }
	offs := []func(){
		p.state.FilterIsActive.OnChange(func(_, _ bool) { refresh() }),
		p.state.FilterText.OnChange(func(_, _ string) { refresh() }),
		p.state.FilterType.OnChange(func(_, _ string) { refresh() }),
		p.state.FilterStar.OnChange(func(_, _ bool) { refresh() }),
		p.items.OnAdd(func(items.Item) { refresh() }),
	}
	p.refreshList()
	return offs
}

// refreshList shows the items that pass the active filter.
func (p *Program) refreshList() {
	if p.screens.List == nil {
		return
	}
	all := p.items.Items()
	crit := items.Criteria{}
	if p.state.FilterIsActive.Get() {
		crit = items.Criteria{
			Text:    p.state.FilterText.Get(),
			Type:    p.state.FilterType.Get(),
			Starred: p.state.FilterStar.Get(),
		}
	}
	if crit.Empty() {
		p.screens.List.SetItems(all)
		return
	}
	keep := items.Match(all, crit)
	shown := make([]items.Item, 0, len(keep))
	for _, it := range all {
		if keep[it.ID] {
			shown = append(shown, it)
		}
	}
	p.screens.List.SetItems(shown)
}

func (p *Program) Init() tea.Cmd {
	p.ctrl.RestorePreferences()
	if p.debug {
		p.ctrl.EnableDiagnostics()
	}
	return loadItems(p.ctrl)
}

func (p *Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := p.update(msg)
	p.recalc()
	return p, cmd
}

func (p *Program) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.layout.SetSize(msg.Width, msg.Height)
		if p.loaded && !p.ctrl.Built() {
			p.build()
			return nil
		}
		p.ctrl.Resize(layout.ColumnsToUnits(msg.Width))
		return nil

	case itemsLoadedMsg:
		if msg.err != nil {
			p.err = msg.err
			p.log.Error("startup load failed", "err", msg.err)
			return tea.Quit
		}
		p.loaded = true
		if msg.seeded {
			p.ctrl.MarkSeeded()
		}
		if p.layout.Width() > 0 {
			p.build()
		}
		return nil

	case SaveMsg:
		if err := p.Save(); err != nil {
			p.log.Warn("save failed", "err", err)
		}
		if msg.Quit {
			return tea.Quit
		}
		return nil

	case tea.KeyMsg:
		if !p.ctrl.Built() {
			if msg.String() == "ctrl+c" || msg.String() == "q" {
				return tea.Quit
			}
			return nil
		}
		return p.handleKey(msg)
	}
	return nil
}

func (p *Program) build() {
	p.ctrl.BuildUI(p.route, layout.ColumnsToUnits(p.layout.Width()))
}

// recalc sizes the list and detail views for the current screen.
func (p *Program) recalc() {
	if !p.ctrl.Built() || p.layout.Width() == 0 {
		return
	}
	h := p.layout.ContentHeight(len(p.filterBarLines()))
	_, rightW := p.layout.PaneWidths(p.ctrl.Frame())
	if p.screens.List != nil {
		p.screens.List.SetViewportHeight(h)
	}
	p.screens.Detail.SetSize(rightW, h)
}

func (p *Program) handleKey(msg tea.KeyMsg) tea.Cmd {
	if f := p.screens.Filter; f != nil && f.Focused() {
		_, cmd := f.HandleKey(msg)
		return cmd
	}

	cur := p.state.CurrentState.Get()
	if p.editingOpenItem() {
		action, cmd := p.screens.Edit.HandleKey(msg)
		switch action {
		case wizards.ActionClose:
			p.editing = false
		case wizards.ActionSubmit:
			p.submitEdit()
		}
		return cmd
	}
	if w, ok := p.screens.Wizards[cur]; ok {
		action, cmd := w.HandleKey(msg)
		switch action {
		case wizards.ActionClose:
			p.showList()
		case wizards.ActionSubmit:
			p.submitAdd()
		}
		return cmd
	}

	action, count := p.keyHandler.Handle(msg)
	p.screens.StatusBar.SetKeyBuffer(p.keyHandler.KeyBuffer())
	if action != ActionNone {
		p.state.StatusMessage.Set("")
	}
	nav := p.ctrl.Router()
	list := p.screens.List

	switch action {
	case ActionQuit:
		if err := p.Save(); err != nil {
			p.log.Warn("save failed", "err", err)
		}
		return tea.Quit
	case ActionHelp:
		nav.NavigateTo(appstate.StateHelp, "")
	case ActionList:
		p.showList()
	case ActionOpen:
		if it, ok := list.SelectedItem(); ok {
			nav.NavigateTo(appstate.StateBrowseEdit, it.ID)
		}
	case ActionAdd:
		cmd := p.screens.Add.Init()
		nav.NavigateTo(appstate.StateAdd, "")
		return cmd
	case ActionEdit:
		return p.startEdit()
	case ActionOptions:
		p.screens.Options.Init()
		nav.NavigateTo(appstate.StateGlobalOptions, "")
	case ActionFilter:
		p.screens.Filter.Focus()
		return textinput.Blink
	case ActionToggleFilterBar:
		p.state.ShowFilterBar.Set(!p.state.ShowFilterBar.Get())
	case ActionClearFilter:
		p.screens.Filter.Clear()
	case ActionToggleStar:
		p.toggleStar()
	case ActionDelete:
		p.deleteOpenItem()
	case ActionToggleDualPane:
		p.state.UseDualPane.Set(!p.state.UseDualPane.Get())
	case ActionSplitterNarrower:
		wizards.NudgeSplitter(p.state, -1)
	case ActionSplitterWider:
		wizards.NudgeSplitter(p.state, 1)
	case ActionMoveDown:
		list.MoveSelection(count)
	case ActionMoveUp:
		list.MoveSelection(-count)
	case ActionGoToTop:
		list.GoToTop()
	case ActionGoToBottom:
		list.GoToBottom()
	case ActionPageDownList:
		list.PageDown()
	case ActionPageUpList:
		list.PageUp()
	case ActionPageDown:
		p.screens.Detail.Viewport().PageDown()
	case ActionPageUp:
		p.screens.Detail.Viewport().PageUp()
	case ActionHalfPageDown:
		p.screens.Detail.Viewport().HalfPageDown()
	case ActionHalfPageUp:
		p.screens.Detail.Viewport().HalfPageUp()
	}
	return nil
}

// showList returns to the list. In dual-pane layout the list is already on
// screen, so the router shows help instead.
func (p *Program) showList() {
	p.ctrl.Router().NavigateTo(appstate.StateList, "")
}

func (p *Program) submitAdd() {
	it, err := p.items.Create(context.Background(), p.screens.Add.Item())
	if err != nil {
		p.screens.Add.SetError(err)
		return
	}
	p.log.Info("item added", "id", it.ID)
	p.ctrl.Router().NavigateTo(appstate.StateBrowseEdit, it.ID)
	p.state.StatusMessage.Set("item added")
}

// editingOpenItem reports whether the edit form covers the detail pane.
func (p *Program) editingOpenItem() bool {
	return p.editing && p.state.CurrentState.Get() == appstate.StateBrowseEdit
}

func (p *Program) startEdit() tea.Cmd {
	if p.state.CurrentState.Get() != appstate.StateBrowseEdit {
		return nil
	}
	it, ok := p.items.Get(p.state.LastBrowsedModelID.Get())
	if !ok {
		return nil
	}
	p.editing = true
	return p.screens.Edit.Edit(it)
}

func (p *Program) submitEdit() {
	it := p.screens.Edit.Item()
	if err := p.items.Update(context.Background(), it); err != nil {
		p.screens.Edit.SetError(err)
		return
	}
	p.log.Info("item saved", "id", it.ID)
	p.editing = false
	p.refreshList()
	p.state.StatusMessage.Set("item saved")
}

// activeID is the open item in browse/edit, else the list cursor.
func (p *Program) activeID() string {
	if p.state.CurrentState.Get() == appstate.StateBrowseEdit {
		return p.state.LastBrowsedModelID.Get()
	}
	if it, ok := p.screens.List.SelectedItem(); ok {
		return it.ID
	}
	return ""
}

func (p *Program) toggleStar() {
	id := p.activeID()
	if id == "" {
		return
	}
	if err := p.items.ToggleTagged(context.Background(), id); err != nil {
		p.state.StatusMessage.Set("star failed: " + err.Error())
		return
	}
	p.refreshList()
}

func (p *Program) deleteOpenItem() {
	if p.state.CurrentState.Get() != appstate.StateBrowseEdit {
		return
	}
	id := p.state.LastBrowsedModelID.Get()
	if err := p.items.Delete(context.Background(), id); err != nil {
		p.state.StatusMessage.Set("delete failed: " + err.Error())
		return
	}
	p.refreshList()
	p.showList()
	p.state.StatusMessage.Set("item deleted")
}

func (p *Program) filterBarLines() []string {
	if p.screens.Filter == nil {
		return nil
	}
	shown := 0
	if p.screens.List != nil {
		shown = p.screens.List.Len()
	}
	return p.screens.Filter.Render(p.layout.Width(), shown, p.items.Len())
}

func (p *Program) View() string {
	if p.err != nil {
		return p.screens.Theme.ErrorText("ERROR: "+p.err.Error()) + "\n"
	}
	if !p.ctrl.Built() || p.layout.Width() == 0 {
		return "Loading…"
	}

	frame := p.ctrl.Frame()
	leftW, rightW := p.layout.PaneWidths(frame)
	bar := p.filterBarLines()

	var leftLines []string
	if frame.Dual() {
		leftLines = p.screens.List.Render(leftW, true, p.screens.listStyles())
	}
	rightLines := p.primaryLines(rightW)

	topLeft := "codetrack | " + p.screenTitle()
	topRight := p.layoutLabel()

	sb := p.screens.StatusBar
	sb.SetMessage(p.state.StatusMessage.Get())
	sb.SetPosition(p.ctrl.Router().Current())

	return p.layout.RenderFrame(topLeft, topRight, leftLines, rightLines, leftW, rightW,
		bar, sb.Render(p.layout.Width()), p.screens.Theme)
}

// primaryLines renders whatever the primary pane holds.
func (p *Program) primaryLines(width int) []string {
	frame := p.ctrl.Frame()
	if frame.Primary.Content != nil {
		return p.screens.List.Render(width, true, p.screens.listStyles())
	}

	cur := p.state.CurrentState.Get()
	if p.editingOpenItem() {
		return p.screens.Edit.Render(width)
	}
	if w, ok := p.screens.Wizards[cur]; ok {
		return w.Render(width)
	}
	if cur == appstate.StateBrowseEdit {
		id := p.state.LastBrowsedModelID.Get()
		it, ok := p.items.Get(id)
		p.screens.Detail.SetItem(id, it, ok)
		return p.screens.Detail.Render(width, p.screens.Theme.TitleStyle())
	}
	return p.helpLines()
}

func (p *Program) screenTitle() string {
	switch p.state.CurrentState.Get() {
	case appstate.StateBrowseEdit:
		if it, ok := p.items.Get(p.state.LastBrowsedModelID.Get()); ok {
			return it.Title
		}
		return "item"
	case appstate.StateAdd:
		return "add"
	case appstate.StateGlobalOptions:
		return "options"
	case appstate.StateHelp:
		return "help"
	}
	return fmt.Sprintf("%d items", p.items.Len())
}

func (p *Program) layoutLabel() string {
	if p.state.CurrentLayout.Get() != appstate.DualPane {
		return "single"
	}
	left, right := layout.Split(p.state.SplitterLocation.Get())
	return fmt.Sprintf("dual %d|%d", left, right)
}

