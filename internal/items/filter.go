package items

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Criteria narrows which items are considered matching.
type Criteria struct {
	Text    string
	Type    string
	Starred bool
}

// Empty reports whether c matches everything.
func (c Criteria) Empty() bool {
	return strings.TrimSpace(c.Text) == "" && c.Type == "" && !c.Starred
}

type searchSource []Item

func (s searchSource) String(i int) string { return s[i].Title + " " + s[i].Descrip }
func (s searchSource) Len() int { return len(s) }

// Match returns the ids of the items that satisfy c. Text is matched fuzzily
// against title and description.
func Match(list []Item, c Criteria) map[string]bool {
	out := make(map[string]bool, len(list))
	var candidates []Item
	for _, it := range list {
		if c.Type != "" && it.Type != c.Type {
			continue
		}
		if c.Starred && !it.Tagged {
			continue
		}
		candidates = append(candidates, it)
	}

	text := strings.TrimSpace(c.Text)
	if text == "" {
		for _, it := range candidates {
			out[it.ID] = true
		}
		return out
	}
	for _, m := range fuzzy.FindFrom(text, searchSource(candidates)) {
		out[candidates[m.Index].ID] = true
	}
	return out
}
