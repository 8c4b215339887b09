package items

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestCollection(t *testing.T) (*Collection, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "items.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	c, err := NewCollection(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, c.Load(context.Background()))
	return c, db
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		item Item
		ok   bool
	}{
		{"title only", Item{Title: "x"}, true},
		{"blank title", Item{Title: "  "}, false},
		{"https url", Item{Title: "x", URL: "https://go.dev/doc"}, true},
		{"ftp url", Item{Title: "x", URL: "ftp://files.example.com/a"}, true},
		{"no scheme", Item{Title: "x", URL: "go.dev"}, false},
		{"bad scheme", Item{Title: "x", URL: "javascript:alert(1)"}, false},
		{"no host", Item{Title: "x", URL: "http://"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.item.Validate()
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
			}
		})
	}
}

func TestCollection_CreateOrdersAndNotifies(t *testing.T) {
	c, _ := newTestCollection(t)
	ctx := context.Background()

	var added []string
	c.OnAdd(func(it Item) { added = append(added, it.Title) })

	a, err := c.Create(ctx, Item{Title: "first"})
	require.NoError(t, err)
	b, err := c.Create(ctx, Item{Title: "second", Type: "tool"})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 1, a.Order)
	assert.Equal(t, 2, b.Order)
	assert.Equal(t, DefaultType, a.Type)
	assert.Equal(t, []string{"first", "second"}, added)
	assert.Equal(t, 1, c.Index(b.ID))
	assert.True(t, c.Has(a.ID))
	assert.False(t, c.Has(""))
}

func TestCollection_OnAddUnsubscribe(t *testing.T) {
	c, _ := newTestCollection(t)
	ctx := context.Background()

	var first, second int
	offFirst := c.OnAdd(func(Item) { first++ })
	c.OnAdd(func(Item) { second++ })
	require.Equal(t, 2, c.AddHandlers())

	_, err := c.Create(ctx, Item{Title: "one"})
	require.NoError(t, err)
	offFirst()
	assert.Equal(t, 1, c.AddHandlers())

	_, err = c.Create(ctx, Item{Title: "two"})
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestCollection_CreateRejectsInvalid(t *testing.T) {
	c, _ := newTestCollection(t)
	_, err := c.Create(context.Background(), Item{Title: ""})
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Zero(t, c.Len())
}

func TestCollection_PersistsAcrossLoad(t *testing.T) {
	c, db := newTestCollection(t)
	ctx := context.Background()
	it, err := c.Create(ctx, Item{Title: "kept", URL: "https://example.com"})
	require.NoError(t, err)
	require.NoError(t, c.ToggleTagged(ctx, it.ID))

	again, err := NewCollection(db, c.log)
	require.NoError(t, err)
	require.NoError(t, again.Load(ctx))

	got, ok := again.Get(it.ID)
	require.True(t, ok)
	assert.Equal(t, "kept", got.Title)
	assert.True(t, got.Tagged)
}

func TestCollection_Delete(t *testing.T) {
	c, _ := newTestCollection(t)
	ctx := context.Background()
	it, err := c.Create(ctx, Item{Title: "gone"})
	require.NoError(t, err)

	require.NoError(t, c.Delete(ctx, it.ID))
	assert.False(t, c.Has(it.ID))
	assert.ErrorIs(t, c.Delete(ctx, it.ID), ErrNotFound)
	assert.ErrorIs(t, c.ToggleTagged(ctx, it.ID), ErrNotFound)
}

func TestCollection_SeedDoesNotNotify(t *testing.T) {
	c, _ := newTestCollection(t)
	notified := 0
	c.OnAdd(func(Item) { notified++ })

	n, err := c.Seed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, n, c.Len())
	assert.Greater(t, n, 5)
	assert.Zero(t, notified)

	list := c.Items()
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Order, list[i].Order)
	}
	assert.Equal(t, list[len(list)-1].Order+1, c.NextOrder())
}

func TestMatch(t *testing.T) {
	list := []Item{
		{ID: "a", Title: "bubble tea", Type: "library", Tagged: true},
		{ID: "b", Title: "lip gloss", Type: "library"},
		{ID: "c", Title: "table tests", Descrip: "loop with t.Run", Type: "technique", Tagged: true},
	}

	assert.Len(t, Match(list, Criteria{}), 3)
	assert.Equal(t, map[string]bool{"a": true, "b": true}, Match(list, Criteria{Type: "library"}))
	assert.Equal(t, map[string]bool{"a": true, "c": true}, Match(list, Criteria{Starred: true}))
	assert.Equal(t, map[string]bool{"b": true}, Match(list, Criteria{Text: "gloss"}))
	assert.Equal(t, map[string]bool{"c": true}, Match(list, Criteria{Text: "loop", Starred: true}))
	assert.Empty(t, Match(list, Criteria{Text: "gloss", Starred: true}))

	assert.True(t, Criteria{Text: "  "}.Empty())
	assert.False(t, Criteria{Starred: true}.Empty())
}
