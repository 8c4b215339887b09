// Package prefs encodes the persisted session and preference values. Each
// field lives under its own key so a store may hold any subset of them; a
// missing key decodes to the field's default.
package prefs

import (
	"errors"
	"strconv"
	"strings"

	"github.com/interpretive-systems/codetrack/internal/appstate"
)

// Persisted keys. The names are the on-disk format and must not change.
const (
	KeyLastCurrentState = "jsctLastCurrentState"
	KeyUseDualPane      = "jsctUseDualPane"
	KeyLastModelID      = "jsctLastModelID"
	KeyShowDiagnostics  = "jsctShowDiagnostics"
	KeySplitterLocation = "jsctSplitterLocation"
	KeyFilterWasActive  = "jsctFilterWasActive"
	KeyShowFilterBar    = "jsctShowFilterBar"
	KeyFilterText       = "jsctFilterText"
	KeyFilterType       = "jsctFilterType"
	KeyFilterStar       = "jsctFilterStar"
)

// Keys lists every persisted key in write order.
var Keys = []string{
	KeyLastCurrentState,
	KeyUseDualPane,
	KeyLastModelID,
	KeyShowDiagnostics,
	KeySplitterLocation,
	KeyFilterWasActive,
	KeyShowFilterBar,
	KeyFilterText,
	KeyFilterType,
	KeyFilterStar,
}

// Prefs is the decoded content of a store.
type Prefs struct {
	LastCurrentState string
	LastModelID      string

	UseDualPane      bool
	SplitterLocation int
	ShowDiagnostics  bool

	FilterWasActive bool
	ShowFilterBar   bool
	FilterText      string
	FilterType      string
	FilterStar      bool
}

// UserPrefs is the subset restored before any UI exists.
type UserPrefs struct {
	UseDualPane      bool
	SplitterLocation int
	ShowDiagnostics  bool
}

// LoadUserPrefs decodes the layout and diagnostics preferences.
func LoadUserPrefs(s Store) UserPrefs {
	return UserPrefs{
		UseDualPane:      DecodeDefaultTrue(s.Get(KeyUseDualPane)),
		SplitterLocation: DecodeSplitter(s.Get(KeySplitterLocation)),
		ShowDiagnostics:  DecodeDefaultFalse(s.Get(KeyShowDiagnostics)),
	}
}

// Load decodes every persisted field.
func Load(s Store) Prefs {
	u := LoadUserPrefs(s)
	return Prefs{
		LastCurrentState: DecodeString(s.Get(KeyLastCurrentState)),
		LastModelID:      DecodeString(s.Get(KeyLastModelID)),
		UseDualPane:      u.UseDualPane,
		SplitterLocation: u.SplitterLocation,
		ShowDiagnostics:  u.ShowDiagnostics,
		FilterWasActive:  DecodeDefaultFalse(s.Get(KeyFilterWasActive)),
		ShowFilterBar:    DecodeDefaultTrue(s.Get(KeyShowFilterBar)),
		FilterText:       DecodeString(s.Get(KeyFilterText)),
		FilterType:       DecodeString(s.Get(KeyFilterType)),
		FilterStar:       DecodeDefaultFalse(s.Get(KeyFilterStar)),
	}
}

// Save writes every field under its own key. A failed write does not stop
// the others; all failures are returned joined.
func Save(s Store, p Prefs) error {
	values := map[string]string{
		KeyLastCurrentState: p.LastCurrentState,
		KeyUseDualPane:      EncodeBool(p.UseDualPane),
		KeyLastModelID:      p.LastModelID,
		KeyShowDiagnostics:  EncodeBool(p.ShowDiagnostics),
		KeySplitterLocation: strconv.Itoa(p.SplitterLocation),
		KeyFilterWasActive:  EncodeBool(p.FilterWasActive),
		KeyShowFilterBar:    EncodeBool(p.ShowFilterBar),
		KeyFilterText:       p.FilterText,
		KeyFilterType:       p.FilterType,
		KeyFilterStar:       EncodeBool(p.FilterStar),
	}
	var errs []error
	for _, k := range Keys {
		if err := s.Set(k, values[k]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Snapshot captures the persisted fields of st.
func Snapshot(st *appstate.State) Prefs {
	return Prefs{
		LastCurrentState: string(st.CurrentState.Get()),
		LastModelID:      st.LastBrowsedModelID.Get(),
		UseDualPane:      st.UseDualPane.Get(),
		SplitterLocation: st.SplitterLocation.Get(),
		ShowDiagnostics:  st.ShowDiagnostics.Get(),
		FilterWasActive:  st.FilterIsActive.Get(),
		ShowFilterBar:    st.ShowFilterBar.Get(),
		FilterText:       st.FilterText.Get(),
		FilterType:       st.FilterType.Get(),
		FilterStar:       st.FilterStar.Get(),
	}
}

// DecodeDefaultTrue is false only for the literal "false"; anything else,
// including an absent key, is true. Used by useDualPane and showFilterBar.
func DecodeDefaultTrue(s string, ok bool) bool {
	return !ok || s != "false"
}

// DecodeDefaultFalse is true only for the literal "true". Used by
// showDiagnostics, filterWasActive and filterStar.
//
// The two boolean rules differ on purpose: changing either would change
// what a first run looks like.
func DecodeDefaultFalse(s string, ok bool) bool {
	return ok && s == "true"
}

// DecodeSplitter parses a splitter location and clamps it to 1..9.
func DecodeSplitter(s string, ok bool) int {
	if !ok {
		return appstate.DefaultSplitterLocation
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return appstate.DefaultSplitterLocation
	}
	return appstate.ClampSplitter(n)
}

// DecodeString returns s, or "" when absent.
func DecodeString(s string, ok bool) string {
	if !ok {
		return ""
	}
	return s
}

// EncodeBool renders b as "true" or "false".
func EncodeBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
