package tui

import (
	"strings"

	"github.com/interpretive-systems/codetrack/internal/layout"
	tuiansi "github.com/interpretive-systems/codetrack/internal/tui/ansi"
)

// minPaneWidth keeps both dual-pane columns usable.
const minPaneWidth = 12

// Layout manages screen size calculations.
type Layout struct {
	width  int
	height int
}

// NewLayout creates a new layout manager.
func NewLayout() *Layout {
	return &Layout{}
}

// SetSize updates the layout dimensions.
func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the total width.
func (l *Layout) Width() int {
	return l.width
}

// Height returns the total height.
func (l *Layout) Height() int {
	return l.height
}

// ContentHeight returns the rows left for the panes.
func (l *Layout) ContentHeight(barLines int) int {
	// top bar + top rule + bottom rule + bottom bar + filter bar
	return max(l.height-4-barLines, 1)
}

// PaneWidths splits the width between the list and the primary pane using
// the frame's width percentages. In single-pane layout the primary pane
// gets everything.
func (l *Layout) PaneWidths(f *layout.Frame) (left, right int) {
	if !f.Dual() {
		return 0, l.width
	}
	avail := l.width - 1 // divider
	left = avail * f.Secondary.WidthPercent / 100
	left = min(max(left, minPaneWidth), max(avail-minPaneWidth, minPaneWidth))
	return left, max(avail-left, 1)
}

// RenderFrame renders the top bar, the pane columns, the optional filter
// bar and the bottom bar. leftW of zero renders only the right column.
func (l *Layout) RenderFrame(
	topLeft, topRight string,
	leftLines, rightLines []string,
	leftW, rightW int,
	barLines []string,
	bottomBar string,
	theme Theme,
) string {
	var b strings.Builder

	b.WriteString(l.renderTopBar(topLeft, topRight))
	b.WriteByte('\n')
	b.WriteString(theme.DividerText(strings.Repeat("─", l.width)))
	b.WriteByte('\n')

	for _, line := range barLines {
		b.WriteString(tuiansi.Fit(line, l.width))
		b.WriteByte('\n')
	}

	sep := theme.DividerText("│")
	contentHeight := l.ContentHeight(len(barLines))
	for i := 0; i < contentHeight; i++ {
		if leftW > 0 {
			var left string
			if i < len(leftLines) {
				left = leftLines[i]
			}
			b.WriteString(tuiansi.Fit(left, leftW))
			b.WriteString(sep)
		}
		var right string
		if i < len(rightLines) {
			right = rightLines[i]
		}
		b.WriteString(tuiansi.Fit(right, rightW))
		b.WriteByte('\n')
	}

	b.WriteString(theme.DividerText(strings.Repeat("─", l.width)))
	b.WriteByte('\n')
	b.WriteString(bottomBar)

	return b.String()
}

func (l *Layout) renderTopBar(left, right string) string {
	return tuiansi.JoinEnds(left, right, l.width)
}
