package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/interpretive-systems/codetrack/internal/items"
	tuiansi "github.com/interpretive-systems/codetrack/internal/tui/ansi"
)

// Detail shows one item in a scrollable viewport.
type Detail struct {
	viewport viewport.Model
	item     items.Item
	found    bool
	id       string
}

// NewDetail creates an empty detail view.
func NewDetail() *Detail {
	return &Detail{viewport: viewport.New(0, 0)}
}

// SetItem shows it. found is false when the requested id no longer
// resolves; id is kept so the view can say which one.
func (d *Detail) SetItem(id string, it items.Item, found bool) {
	if id != d.id {
		d.viewport.GotoTop()
	}
	d.id, d.item, d.found = id, it, found
}

// ItemID returns the id of the shown item.
func (d *Detail) ItemID() string {
	return d.id
}

// SetSize updates the viewport dimensions.
func (d *Detail) SetSize(width, height int) {
	d.viewport.Width = width
	d.viewport.Height = height
}

// Viewport exposes the viewport for scrolling keys.
func (d *Detail) Viewport() *viewport.Model {
	return &d.viewport
}

// Render lays out the item for width and returns the visible lines.
func (d *Detail) Render(width int, title lipgloss.Style) []string {
	d.viewport.SetContent(strings.Join(d.content(width, title), "\n"))
	return strings.Split(d.viewport.View(), "\n")
}

func (d *Detail) content(width int, title lipgloss.Style) []string {
	if !d.found {
		return []string{
			title.Render("Item not found"),
			"",
			tuiansi.TruncateToWidth(fmt.Sprintf("No item has id %q. It may have been deleted.", d.id), width),
		}
	}

	it := d.item
	star := ""
	if it.Tagged {
		star = " ★"
	}
	lines := []string{
		tuiansi.TruncateToWidth(title.Render(it.Title+star), width),
		"",
		"type: " + it.Type,
	}
	if it.URL != "" {
		lines = append(lines, tuiansi.TruncateToWidth("url:  "+it.URL, width))
	}
	lines = append(lines, "")
	if strings.TrimSpace(it.Descrip) == "" {
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render("(no description)"))
	} else {
		lines = append(lines, tuiansi.WrapText(it.Descrip, width)...)
	}
	return lines
}
