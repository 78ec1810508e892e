// Package styledtext provides the value-semantics styled content model used
// throughout bindtext. A Text is an ordered slice of spans; operations never
// mutate their input, they return a new snapshot. This keeps the styling
// pipeline free of aliasing between stages.
package styledtext

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Span is a run of text rendered with a single style.
type Span struct {
	Text  string
	Style lipgloss.Style
}

// Text is styled content: zero or more spans in display order.
type Text []Span

// Plain returns content consisting of the given string with no styling.
// An empty string yields empty content (no spans).
func Plain(s string) Text {
	if s == "" {
		return nil
	}
	return Text{{Text: s}}
}

// Styled returns content consisting of the given string under one style.
func Styled(s string, style lipgloss.Style) Text {
	if s == "" {
		return nil
	}
	return Text{{Text: s, Style: style}}
}

// String returns the raw text content with all styling discarded.
func (t Text) String() string {
	if len(t) == 1 {
		return t[0].Text
	}
	var b strings.Builder
	for _, sp := range t {
		b.WriteString(sp.Text)
	}
	return b.String()
}

// Len returns the content length in runes.
func (t Text) Len() int {
	n := 0
	for _, sp := range t {
		n += len([]rune(sp.Text))
	}
	return n
}

// Empty reports whether the content has zero length.
func (t Text) Empty() bool {
	for _, sp := range t {
		if sp.Text != "" {
			return false
		}
	}
	return true
}

// Render returns the content with each span's style applied.
// Spans containing newlines are styled line by line so that background
// colors do not bleed across line breaks.
func (t Text) Render() string {
	var b strings.Builder
	for _, sp := range t {
		lines := strings.Split(sp.Text, "\n")
		for i, line := range lines {
			if i > 0 {
				b.WriteString("\n")
			}
			if line != "" {
				b.WriteString(sp.Style.Render(line))
			}
		}
	}
	return b.String()
}

// Equal reports whether two snapshots carry the same text and styling.
// Styles compare by their rendered form, which is what the surface displays.
func (t Text) Equal(other Text) bool {
	if t.String() != other.String() {
		return false
	}
	return t.Render() == other.Render()
}

// Uniform reports whether the content renders under at most one style.
// Uniform content can be displayed by a surface's native view; anything
// else goes through the span painter.
func (t Text) Uniform() bool {
	if len(t) <= 1 {
		return true
	}
	first := t[0].Style.Render("x")
	for _, sp := range t[1:] {
		if sp.Style.Render("x") != first {
			return false
		}
	}
	return true
}

// Restyle returns a snapshot with the same text under a single new style.
func (t Text) Restyle(style lipgloss.Style) Text {
	return Styled(t.String(), style)
}
