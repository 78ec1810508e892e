package styledtext

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// truncateEllipsis is the unicode ellipsis used when text is cut to fit.
const truncateEllipsis = "…"

// VisualWidth returns the number of terminal columns a raw string occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// RenderedWidth returns the column width of styled output, ignoring ANSI
// escape sequences.
func RenderedWidth(s string) int {
	return lipgloss.Width(s)
}

// Truncate cuts a raw string to at most maxWidth columns, appending an
// ellipsis when anything was removed.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	avail := maxWidth - runewidth.StringWidth(truncateEllipsis)
	if avail < 0 {
		return truncateEllipsis
	}
	var out []rune
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out) + truncateEllipsis
}
