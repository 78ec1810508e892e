package surface

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"bindtext/styledtext"
)

func TestPaintPlainText(t *testing.T) {
	out := paint(styledtext.Plain("hello"), 0, false)
	if got := ansi.Strip(out); got != "hello" {
		t.Errorf("expected 'hello', got %q", got)
	}
}

func TestPaintKeepsNewlinesUnstyled(t *testing.T) {
	bold := lipgloss.NewStyle().Bold(true)
	out := paint(styledtext.Styled("a\nb", bold), 0, false)
	if !strings.Contains(out, "\n") {
		t.Fatalf("expected literal newline in %q", out)
	}
	if got := ansi.Strip(out); got != "a\nb" {
		t.Errorf("stripped output: %q", got)
	}
}

func TestPaintCursorAtEnd(t *testing.T) {
	out := paint(styledtext.Plain("ab"), 2, true)
	// Cursor past the last rune paints a trailing cell.
	if got := ansi.Strip(out); got != "ab " {
		t.Errorf("expected trailing cursor cell, got %q", got)
	}
}

func TestPaintCursorHiddenWhenBlurred(t *testing.T) {
	out := paint(styledtext.Plain("ab"), 2, false)
	if got := ansi.Strip(out); got != "ab" {
		t.Errorf("expected no cursor cell, got %q", got)
	}
}

func TestPaintMultipleSpans(t *testing.T) {
	out := paint(styledtext.Text{
		{Text: "red", Style: lipgloss.NewStyle().Bold(true)},
		{Text: "blue", Style: lipgloss.NewStyle().Italic(true)},
	}, 1, true)
	if got := ansi.Strip(out); got != "redblue" {
		t.Errorf("stripped output: %q", got)
	}
}

func TestOffsetRowColRoundTrip(t *testing.T) {
	value := "alpha\nbeta\ngamma"
	for _, off := range []int{0, 3, 5, 6, 10, 11, 16} {
		row, col := offsetToRowCol(value, off)
		if back := rowColToOffset(value, row, col); back != off {
			t.Errorf("offset %d -> (%d,%d) -> %d", off, row, col, back)
		}
	}

	// Past-the-end offsets land on the final position.
	row, col := offsetToRowCol(value, 99)
	if row != 2 || col != 5 {
		t.Errorf("expected (2,5) for overlong offset, got (%d,%d)", row, col)
	}
}
