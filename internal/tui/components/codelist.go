package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/interpretive-systems/codetrack/internal/items"
)

// ListStyles are the row styles used by CodeList.
type ListStyles struct {
	Highlight lipgloss.Style
	Cursor    lipgloss.Style
	Star      lipgloss.Style
}

// CodeList is the persistent list of items. One row per item; positions
// are row indexes into the displayed (filtered) items.
type CodeList struct {
	items     []items.Item
	selected  int
	offset    int
	height    int
	highlight string
	visible   func() bool
}

// NewCodeList creates a list. visible reports whether the list is on
// screen.
func NewCodeList(visible func() bool) *CodeList {
	return &CodeList{visible: visible, height: 1}
}

// SetItems replaces the displayed items, keeping the cursor on the same
// item when it is still shown.
func (l *CodeList) SetItems(list []items.Item) {
	var selID string
	if it, ok := l.SelectedItem(); ok {
		selID = it.ID
	}
	l.items = list
	l.selected = 0
	if i := l.index(selID); i >= 0 {
		l.selected = i
	}
	l.offset = min(l.offset, l.maxOffset())
}

// Items returns the displayed items.
func (l *CodeList) Items() []items.Item {
	return l.items
}

// Len returns the number of displayed rows.
func (l *CodeList) Len() int {
	return len(l.items)
}

// SelectedItem returns the item under the cursor.
func (l *CodeList) SelectedItem() (items.Item, bool) {
	if l.selected < 0 || l.selected >= len(l.items) {
		return items.Item{}, false
	}
	return l.items[l.selected], true
}

// Select puts the cursor on id.
func (l *CodeList) Select(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.selected = i
	return true
}

// MoveSelection moves the cursor by delta and keeps it on screen.
func (l *CodeList) MoveSelection(delta int) bool {
	if len(l.items) == 0 {
		return false
	}
	next := min(max(l.selected+delta, 0), len(l.items)-1)
	changed := next != l.selected
	l.selected = next
	l.EnsureVisible()
	return changed
}

// GoToTop moves the cursor to the first row.
func (l *CodeList) GoToTop() bool {
	return l.MoveSelection(-len(l.items))
}

// GoToBottom moves the cursor to the last row.
func (l *CodeList) GoToBottom() bool {
	return l.MoveSelection(len(l.items))
}

// PageDown moves the cursor one screen down.
func (l *CodeList) PageDown() bool {
	return l.MoveSelection(max(l.height-1, 1))
}

// PageUp moves the cursor one screen up.
func (l *CodeList) PageUp() bool {
	return l.MoveSelection(-max(l.height-1, 1))
}

// EnsureVisible scrolls just enough to show the cursor row.
func (l *CodeList) EnsureVisible() {
	if len(l.items) == 0 || l.height <= 0 {
		return
	}
	if l.selected < l.offset {
		l.offset = l.selected
	} else if l.selected >= l.offset+l.height {
		l.offset = l.selected - l.height + 1
	}
	l.offset = min(l.offset, l.maxOffset())
}

// SetViewportHeight sets how many rows fit on screen.
func (l *CodeList) SetViewportHeight(h int) {
	l.height = max(h, 1)
	l.offset = min(l.offset, l.maxOffset())
}

// Highlighted returns the id of the highlighted row, if any.
func (l *CodeList) Highlighted() string {
	return l.highlight
}

func (l *CodeList) ClearHighlight() {
	l.highlight = ""
}

// SetHighlight marks id and moves the cursor onto it.
func (l *CodeList) SetHighlight(id string) {
	l.highlight = id
	l.Select(id)
}

func (l *CodeList) Visible() bool {
	return l.visible != nil && l.visible()
}

func (l *CodeList) RowBounds(id string) (top, height int, ok bool) {
	i := l.index(id)
	if i < 0 {
		return 0, 0, false
	}
	return i, 1, true
}

func (l *CodeList) ScrollTop() int {
	return l.offset
}

// ScrollTo moves the window to start at row top, as far as the rows allow.
func (l *CodeList) ScrollTo(top int) {
	l.offset = min(max(top, 0), l.maxOffset())
}

func (l *CodeList) ViewportHeight() int {
	return l.height
}

// Render returns the visible rows, each exactly width cells wide.
func (l *CodeList) Render(width int, focused bool, st ListStyles) []string {
	if width <= 0 {
		return nil
	}
	if len(l.items) == 0 {
		return []string{runewidth.FillRight("No items match", width)}
	}

	start := min(l.offset, l.maxOffset())
	end := min(start+l.height, len(l.items))
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		it := l.items[i]
		marker := "  "
		if focused && i == l.selected {
			marker = "> "
		}
		star := " "
		if it.Tagged {
			star = "★"
		}
		titleW := max(width-runewidth.StringWidth(marker)-2, 0)
		title := runewidth.FillRight(runewidth.Truncate(strings.TrimSpace(it.Title), titleW, "…"), titleW)

		row := marker + st.Star.Render(star) + " " + title
		switch {
		case it.ID == l.highlight:
			row = st.Highlight.Render(marker + star + " " + title)
		case focused && i == l.selected:
			row = st.Cursor.Render(marker) + st.Star.Render(star) + " " + title
		}
		lines = append(lines, row)
	}
	return lines
}

func (l *CodeList) index(id string) int {
	if id == "" {
		return -1
	}
	for i, it := range l.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (l *CodeList) maxOffset() int {
	return max(len(l.items)-l.height, 0)
}
