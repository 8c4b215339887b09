// Package ansi holds width-aware string helpers for styled terminal text.
package ansi

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Strip removes every escape sequence from s.
func Strip(s string) string {
	return ansi.Strip(s)
}

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// PadExact pads s with spaces to exactly w cells. Longer strings are
// returned unchanged.
func PadExact(s string, w int) string {
	vw := Width(s)
	if vw >= w {
		return s
	}
	return s + strings.Repeat(" ", w-vw)
}

// TruncateToWidth truncates s to width with an ellipsis if needed.
func TruncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// Fit pads or truncates s to exactly w cells.
func Fit(s string, w int) string {
	if Width(s) > w {
		return TruncateToWidth(s, w)
	}
	return PadExact(s, w)
}

// JoinEnds lays left and right out on one line of exactly w cells, right
// aligned to the edge. right wins when both do not fit.
func JoinEnds(left, right string, w int) string {
	rw := Width(right)
	if rw >= w {
		return TruncateToWidth(right, w)
	}
	return Fit(left, w-rw-1) + " " + right
}
