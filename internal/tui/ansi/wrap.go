package ansi

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// WrapText word-wraps s to width, keeping blank lines between paragraphs.
// Words longer than width are broken.
func WrapText(s string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	var out []string
	for _, para := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(para) == "" {
			out = append(out, "")
			continue
		}
		wrapped := ansi.Wrap(para, width, "")
		out = append(out, strings.Split(wrapped, "\n")...)
	}
	return out
}

// WrapLines wraps each line to width.
func WrapLines(lines []string, width int) []string {
	result := make([]string, 0, len(lines)*2)
	for _, line := range lines {
		result = append(result, WrapText(line, width)...)
	}
	return result
}
