package router

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interpretive-systems/codetrack/internal/appstate"
	"github.com/interpretive-systems/codetrack/internal/layout"
)

type listView struct{ name string }

func newRouter(t *testing.T) (*Router, *appstate.State, *layout.Frame, *appstate.Signal, *listView) {
	t.Helper()
	st := appstate.New()
	frame := &layout.Frame{}
	attached := &appstate.Signal{}
	view := &listView{name: "summary"}
	r := New(st, frame, func() any { return view }, attached, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return r, st, frame, attached, view
}

func TestParse(t *testing.T) {
	cases := []struct {
		route string
		st    appstate.AppState
		id    string
	}{
		{"list", appstate.StateList, ""},
		{"#list", appstate.StateList, ""},
		{"edit/42", appstate.StateBrowseEdit, "42"},
		{"/edit/abc-def/", appstate.StateBrowseEdit, "abc-def"},
		{"add", appstate.StateAdd, ""},
		{"options", appstate.StateGlobalOptions, ""},
		{"help", appstate.StateHelp, ""},
	}
	for _, c := range cases {
		t.Run(c.route, func(t *testing.T) {
			st, id, err := Parse(c.route)
			require.NoError(t, err)
			assert.Equal(t, c.st, st)
			assert.Equal(t, c.id, id)
		})
	}

	for _, bad := range []string{"", "edit", "edit/", "nowhere"} {
		_, _, err := Parse(bad)
		assert.ErrorIs(t, err, ErrBadRoute, "route %q", bad)
	}
}

func TestFormat_InvertsParse(t *testing.T) {
	for _, route := range []string{"list", "edit/7", "add", "options", "help"} {
		st, id, err := Parse(route)
		require.NoError(t, err)
		assert.Equal(t, route, Format(st, id))
	}
}

func TestNavigateTo_EditSetsIDBeforeState(t *testing.T) {
	r, st, _, _, _ := newRouter(t)

	var idAtStateChange string
	st.CurrentState.OnChange(func(_, _ appstate.AppState) {
		idAtStateChange = st.LastBrowsedModelID.Get()
	})

	require.NoError(t, r.Navigate("edit/9"))
	assert.Equal(t, appstate.StateBrowseEdit, st.CurrentState.Get())
	assert.Equal(t, "9", idAtStateChange)
	assert.Equal(t, "edit/9", r.Current())
}

func TestNavigateTo_ListInSinglePaneAttachesSummary(t *testing.T) {
	r, st, frame, attached, view := newRouter(t)
	st.CurrentState.Set(appstate.StateHelp)

	r.NavigateTo(appstate.StateList, "")

	assert.Equal(t, appstate.StateList, st.CurrentState.Get())
	assert.Same(t, view, frame.Primary.Content)
	assert.True(t, frame.Visible(view))
	assert.Equal(t, 1, attached.Count())
}

func TestNavigateTo_OtherStateClearsPrimary(t *testing.T) {
	r, _, frame, _, view := newRouter(t)
	r.NavigateTo(appstate.StateList, "")
	r.NavigateTo(appstate.StateAdd, "")

	assert.Nil(t, frame.Primary.Content)
	assert.False(t, frame.Visible(view))
}

func TestNavigateTo_ListInDualPaneShowsHelp(t *testing.T) {
	r, st, frame, attached, _ := newRouter(t)
	frame.Secondary.Side = layout.SideLeft
	frame.Primary.Side = layout.SideRight

	r.NavigateTo(appstate.StateList, "")

	assert.Equal(t, appstate.StateHelp, st.CurrentState.Get())
	assert.Zero(t, attached.Count())
}

func TestRouter_DrivesApplier(t *testing.T) {
	r, st, frame, _, view := newRouter(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	applier := layout.NewApplier(st, frame, r, func() any { return view }, log)
	applier.Watch()
	engine := layout.NewEngine(st, log)

	r.NavigateTo(appstate.StateList, "")
	require.Same(t, view, frame.Primary.Content)

	engine.Resize(800)
	assert.Equal(t, appstate.DualPane, st.CurrentLayout.Get())
	assert.Same(t, view, frame.Secondary.Content)
	assert.Nil(t, frame.Primary.Content)
	assert.Equal(t, appstate.StateHelp, st.CurrentState.Get())

	// Going narrow again keeps help in the primary pane.
	engine.Resize(400)
	assert.Equal(t, appstate.SinglePane, st.CurrentLayout.Get())
	assert.Equal(t, appstate.StateHelp, st.CurrentState.Get())
	assert.False(t, frame.Visible(view))
}
