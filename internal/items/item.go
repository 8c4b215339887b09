// Package items stores the tracked code notes shown in the list and detail
// panes.
package items

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrNotFound is returned for an id that names no item.
	ErrNotFound = errors.New("item not found")
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("invalid item")
)

// Types lists the item types the add form cycles through.
var Types = []string{"tip", "technique", "library", "reference", "tool"}

// DefaultType is assigned to items created without a type.
const DefaultType = "tip"

// Item is one tracked note.
type Item struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Descrip string `yaml:"descrip"`
	Type    string `yaml:"type"`
	URL     string `yaml:"url"`
	Order   int    `yaml:"order"`
	Tagged  bool   `yaml:"tagged"`
}

// Validate checks the fields a user can enter.
func (it Item) Validate() error {
	if strings.TrimSpace(it.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}
	raw := strings.TrimSpace(it.URL)
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: url: %v", ErrInvalid, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ftp":
	default:
		return fmt.Errorf("%w: url must start with http://, https:// or ftp://", ErrInvalid)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: url has no host", ErrInvalid)
	}
	return nil
}
