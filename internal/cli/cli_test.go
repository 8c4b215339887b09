package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interpretive-systems/codetrack/internal/prefs"
)

func runCLI(t *testing.T, dir string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--data-dir", dir, "--config", filepath.Join(dir, "missing.toml")}, args...))
	require.NoError(t, root.Execute())
	return out.String()
}

func TestPrefsCommand_ListsAndResets(t *testing.T) {
	dir := t.TempDir()

	db, err := prefs.OpenDB(filepath.Join(dir, "codetrack.db"))
	require.NoError(t, err)
	store, err := prefs.NewSQLiteStore(db)
	require.NoError(t, err)
	require.NoError(t, store.Set(prefs.KeySplitterLocation, "3"))
	require.NoError(t, store.Set(prefs.KeyLastCurrentState, "help"))
	require.NoError(t, db.Close())

	out := runCLI(t, dir, "prefs")
	assert.Equal(t, "jsctLastCurrentState=help\njsctSplitterLocation=3\n", out)

	out = runCLI(t, dir, "prefs", "reset")
	assert.Contains(t, out, "preferences cleared")

	assert.Empty(t, runCLI(t, dir, "prefs"))
	assert.FileExists(t, filepath.Join(dir, "codetrack.log"))
}

func TestRootCommand_RejectsExtraArgs(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"list", "edit/1"})
	root.SetOut(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}
