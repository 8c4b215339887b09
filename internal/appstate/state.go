// Package appstate holds the process-wide application state: the current
// screen, the active layout, layout and filter preferences and the last item
// shown in the detail pane. Every other component reads and writes it
// through the observable fields below.
package appstate

// AppState is the active logical screen.
type AppState string

const (
	StateList          AppState = "list"
	StateBrowseEdit    AppState = "browseEdit"
	StateAdd           AppState = "add"
	StateGlobalOptions AppState = "globalOptions"
	StateHelp          AppState = "help"
)

// ParseAppState maps a stored token to an AppState.
func ParseAppState(s string) (AppState, bool) {
	switch st := AppState(s); st {
	case StateList, StateBrowseEdit, StateAdd, StateGlobalOptions, StateHelp:
		return st, true
	}
	return "", false
}

// Layout is one of the two mutually exclusive screen layouts.
type Layout string

const (
	SinglePane Layout = "singlePane"
	DualPane   Layout = "dualPane"
)

// DefaultSplitterLocation is used for any splitter value outside 1..9.
const DefaultSplitterLocation = 5

// ClampSplitter returns v when 0 < v < 10 and DefaultSplitterLocation
// otherwise.
func ClampSplitter(v int) int {
	if 0 < v && v < 10 {
		return v
	}
	return DefaultSplitterLocation
}

// State is the application state holder.
type State struct {
	CurrentState  *Value[AppState]
	CurrentLayout *Value[Layout] // written only by the layout engine

	UseDualPane      *Value[bool]
	SplitterLocation *Value[int] // secondary pane width in tenths

	ShowFilterBar  *Value[bool]
	FilterIsActive *Value[bool]
	FilterText     *Value[string]
	FilterType     *Value[string]
	FilterStar     *Value[bool]

	LastBrowsedModelID *Value[string]
	ShowDiagnostics    *Value[bool]

	// Session-only fields, never persisted.
	StatusMessage *Value[string]
	FirstUse      *Value[bool]
}

// New returns a State populated with the built-in defaults.
func New() *State {
	s := &State{
		CurrentState:       newValue("currentState", StateList),
		CurrentLayout:      newValue("currentLayout", SinglePane),
		UseDualPane:        newValue("useDualPane", true),
		SplitterLocation:   newValue("splitterLocation", DefaultSplitterLocation),
		ShowFilterBar:      newValue("showFilterBar", true),
		FilterIsActive:     newValue("filterIsActive", false),
		FilterText:         newValue("filterText", ""),
		FilterType:         newValue("filterType", ""),
		FilterStar:         newValue("filterStar", false),
		LastBrowsedModelID: newValue("lastBrowsedModelID", ""),
		ShowDiagnostics:    newValue("showDiagnostics", false),
		StatusMessage:      newValue("statusMessage", ""),
		FirstUse:           newValue("firstUse", false),
	}
	s.SplitterLocation.normalize = ClampSplitter
	return s
}
