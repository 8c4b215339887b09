package items

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const itemsSchema = `CREATE TABLE IF NOT EXISTS items (
	id      TEXT PRIMARY KEY,
	title   TEXT NOT NULL,
	descrip TEXT NOT NULL DEFAULT '',
	type    TEXT NOT NULL DEFAULT 'tip',
	url     TEXT NOT NULL DEFAULT '',
	ord     INTEGER NOT NULL,
	tagged  INTEGER NOT NULL DEFAULT 0
)`

// Collection is the ordered set of items, cached in memory and written
// through to SQLite.
type Collection struct {
	db  *sql.DB
	log *slog.Logger

	mu     sync.RWMutex
	items  []Item // sorted by Order
	onAdd  []addHandler
	nextID int
}

type addHandler struct {
	id int
	fn func(Item)
}

// NewCollection prepares the items table in db. Call Load before use.
func NewCollection(db *sql.DB, log *slog.Logger) (*Collection, error) {
	if _, err := db.Exec(itemsSchema); err != nil {
		return nil, fmt.Errorf("create items table: %w", err)
	}
	return &Collection{db: db, log: log}, nil
}

// Load reads every item from the database, replacing the cache.
func (c *Collection) Load(ctx context.Context) error {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, title, descrip, type, url, ord, tagged FROM items ORDER BY ord, id`)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	defer rows.Close()

	var loaded []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Descrip, &it.Type, &it.URL, &it.Order, &it.Tagged); err != nil {
			return fmt.Errorf("scan item: %w", err)
		}
		loaded = append(loaded, it)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load items: %w", err)
	}

	c.mu.Lock()
	c.items = loaded
	c.mu.Unlock()
	c.log.Debug("items loaded", "count", len(loaded))
	return nil
}

// Len returns the number of items.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Items returns a copy of the items in order.
func (c *Collection) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Get returns the item with id.
func (c *Collection) Get(id string) (Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexLocked(id); i >= 0 {
		return c.items[i], true
	}
	return Item{}, false
}

// Has reports whether id names an item.
func (c *Collection) Has(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// Index returns the position of id in order, or -1.
func (c *Collection) Index(id string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.indexLocked(id)
}

func (c *Collection) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(c.items, func(it Item) bool { return it.ID == id })
}

// NextOrder returns the order number for a new item.
func (c *Collection) NextOrder() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.items) == 0 {
		return 1
	}
	return c.items[len(c.items)-1].Order + 1
}

// OnAdd registers fn to run after each Create, on the caller's goroutine.
// The returned func removes it again.
func (c *Collection) OnAdd(fn func(Item)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.onAdd = append(c.onAdd, addHandler{id: id, fn: fn})
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.onAdd = slices.DeleteFunc(c.onAdd, func(h addHandler) bool { return h.id == id })
	}
}

// AddHandlers returns the number of registered OnAdd handlers.
func (c *Collection) AddHandlers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.onAdd)
}

// Create validates it, assigns an id and order, stores it and notifies
// OnAdd handlers.
func (c *Collection) Create(ctx context.Context, it Item) (Item, error) {
	if err := it.Validate(); err != nil {
		return Item{}, err
	}
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	if it.Type == "" {
		it.Type = DefaultType
	}
	it.Order = c.NextOrder()

	if err := insert(ctx, c.db, it); err != nil {
		return Item{}, err
	}

	c.mu.Lock()
	c.items = append(c.items, it)
	handlers := slices.Clone(c.onAdd)
	c.mu.Unlock()

	c.log.Debug("item created", "id", it.ID, "order", it.Order)
	for _, h := range handlers {
		h.fn(it)
	}
	return it, nil
}

// Update stores changed fields of an existing item. Order is kept.
func (c *Collection) Update(ctx context.Context, it Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	res, err := c.db.ExecContext(ctx,
		`UPDATE items SET title = ?, descrip = ?, type = ?, url = ?, tagged = ? WHERE id = ?`,
		it.Title, it.Descrip, it.Type, it.URL, it.Tagged, it.ID)
	if err != nil {
		return fmt.Errorf("update item %s: %w", it.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update item %s: %w", it.ID, ErrNotFound)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexLocked(it.ID); i >= 0 {
		it.Order = c.items[i].Order
		c.items[i] = it
	}
	return nil
}

// ToggleTagged flips the tagged flag of id.
func (c *Collection) ToggleTagged(ctx context.Context, id string) error {
	it, ok := c.Get(id)
	if !ok {
		return fmt.Errorf("toggle %s: %w", id, ErrNotFound)
	}
	it.Tagged = !it.Tagged
	return c.Update(ctx, it)
}

// Delete removes id.
func (c *Collection) Delete(ctx context.Context, id string) error {
	res, err := c.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete item %s: %w", id, ErrNotFound)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexLocked(id); i >= 0 {
		c.items = slices.Delete(c.items, i, i+1)
	}
	return nil
}

// insertAll stores a batch in one transaction and adds it to the cache
// without notifying OnAdd handlers.
func (c *Collection) insertAll(ctx context.Context, batch []Item) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, it := range batch {
		if err := insert(ctx, tx, it); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	c.mu.Lock()
	c.items = append(c.items, batch...)
	sort.SliceStable(c.items, func(i, j int) bool { return c.items[i].Order < c.items[j].Order })
	c.mu.Unlock()
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insert(ctx context.Context, db execer, it Item) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO items (id, title, descrip, type, url, ord, tagged) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.Title, it.Descrip, it.Type, it.URL, it.Order, it.Tagged)
	if err != nil {
		return fmt.Errorf("insert item %s: %w", it.ID, err)
	}
	return nil
}
