package prefs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interpretive-systems/codetrack/internal/appstate"
)

func TestLoad_EmptyStoreYieldsDefaults(t *testing.T) {
	p := Load(NewMemoryStore(nil))

	assert.True(t, p.UseDualPane, "useDualPane defaults to true on a missing key")
	assert.True(t, p.ShowFilterBar, "showFilterBar defaults to true on a missing key")
	assert.False(t, p.ShowDiagnostics)
	assert.False(t, p.FilterWasActive)
	assert.False(t, p.FilterStar)
	assert.Equal(t, 5, p.SplitterLocation)
	assert.Empty(t, p.LastCurrentState)
	assert.Empty(t, p.LastModelID)
	assert.Empty(t, p.FilterText)
	assert.Empty(t, p.FilterType)
}

func TestDecodeBooleans_AsymmetricDefaults(t *testing.T) {
	cases := []struct {
		raw      string
		present  bool
		wantTrue bool // DecodeDefaultTrue
		wantFals bool // DecodeDefaultFalse
	}{
		{"true", true, true, true},
		{"false", true, false, false},
		{"", true, true, false},
		{"yes", true, true, false},
		{"TRUE", true, true, false},
		{"", false, true, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.wantTrue, DecodeDefaultTrue(c.raw, c.present), "default-true %q present=%v", c.raw, c.present)
		assert.Equal(t, c.wantFals, DecodeDefaultFalse(c.raw, c.present), "default-false %q present=%v", c.raw, c.present)
	}
}

func TestDecodeSplitter(t *testing.T) {
	cases := map[string]int{
		"1": 1, "5": 5, "9": 9, " 7 ": 7,
		"0": 5, "10": 5, "-2": 5, "abc": 5, "": 5, "4.5": 5,
	}
	for raw, want := range cases {
		assert.Equal(t, want, DecodeSplitter(raw, true), "raw %q", raw)
	}
	assert.Equal(t, 5, DecodeSplitter("", false))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, loc := range []int{1, 3, 5, 9} {
		for _, b := range []bool{true, false} {
			in := Prefs{
				LastCurrentState: "browseEdit",
				LastModelID:      "42",
				UseDualPane:      b,
				SplitterLocation: loc,
				ShowDiagnostics:  b,
				FilterWasActive:  b,
				ShowFilterBar:    !b,
				FilterText:       "foo bar",
				FilterType:       "tip",
				FilterStar:       !b,
			}
			s := NewMemoryStore(nil)
			require.NoError(t, Save(s, in))
			assert.Equal(t, in, Load(s))
		}
	}
}

func TestSave_WritesEveryKeyAsString(t *testing.T) {
	s := NewMemoryStore(nil)
	require.NoError(t, Save(s, Snapshot(appstate.New())))

	assert.ElementsMatch(t, Keys, s.Keys())
	v, _ := s.Get(KeyUseDualPane)
	assert.Equal(t, "true", v)
	v, _ = s.Get(KeySplitterLocation)
	assert.Equal(t, "5", v)
	v, _ = s.Get(KeyLastCurrentState)
	assert.Equal(t, "list", v)
}

type failingStore struct {
	*MemoryStore
	failKey string
}

func (f failingStore) Set(key, value string) error {
	if key == f.failKey {
		return errors.New("disk full")
	}
	return f.MemoryStore.Set(key, value)
}

func TestSave_ContinuesPastFailedWrite(t *testing.T) {
	s := failingStore{MemoryStore: NewMemoryStore(nil), failKey: KeyLastModelID}
	err := Save(s, Prefs{FilterText: "x", SplitterLocation: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	v, ok := s.Get(KeyFilterText)
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	_, ok = s.Get(KeyLastModelID)
	assert.False(t, ok)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "codetrack.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	s, err := NewSQLiteStore(db)
	require.NoError(t, err)

	_, ok := s.Get(KeyUseDualPane)
	assert.False(t, ok)

	require.NoError(t, s.Set(KeyUseDualPane, "false"))
	require.NoError(t, s.Set(KeyUseDualPane, "true"))
	require.NoError(t, s.Set(KeyFilterText, "foo"))
	require.NoError(t, db.Close())

	db, err = OpenDB(path)
	require.NoError(t, err)
	defer db.Close()
	s, err = NewSQLiteStore(db)
	require.NoError(t, err)

	all, err := s.All()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{KeyUseDualPane: "true", KeyFilterText: "foo"}, all)

	require.NoError(t, s.Clear())
	all, err = s.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}
