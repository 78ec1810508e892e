package demo

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"bindtext/styledtext"
)

func TestHighlightKeyword(t *testing.T) {
	in := styledtext.Styled("fix the TODO before friday", lipgloss.NewStyle())

	out, ok := Highlight(in)
	if !ok {
		t.Fatal("expected a match")
	}
	if out.String() != "fix the TODO before friday" {
		t.Fatalf("text mangled: %q", out.String())
	}
	if len(out) != 3 || out[1].Text != "TODO" {
		t.Errorf("spans = %#v", out)
	}
}

func TestHighlightLink(t *testing.T) {
	in := styledtext.Styled("see https://example.com/docs for details", lipgloss.NewStyle())

	out, ok := Highlight(in)
	if !ok {
		t.Fatal("expected a match")
	}
	if out[1].Text != "https://example.com/docs" {
		t.Errorf("link span = %q", out[1].Text)
	}
}

func TestHighlightMultipleMarks(t *testing.T) {
	in := styledtext.Styled("TODO read https://go.dev and FIXME later", lipgloss.NewStyle())

	out, ok := Highlight(in)
	if !ok {
		t.Fatal("expected matches")
	}
	if out.String() != "TODO read https://go.dev and FIXME later" {
		t.Errorf("text mangled: %q", out.String())
	}

	var marked []string
	for _, sp := range out {
		switch sp.Text {
		case "TODO", "FIXME", "https://go.dev":
			marked = append(marked, sp.Text)
		}
	}
	if len(marked) != 3 {
		t.Errorf("marked spans = %v", marked)
	}
}

func TestHighlightDeclinesWithoutMatches(t *testing.T) {
	in := styledtext.Styled("nothing special here", lipgloss.NewStyle())
	if _, ok := Highlight(in); ok {
		t.Error("expected decline on unmarked text")
	}
	if _, ok := Highlight(nil); ok {
		t.Error("expected decline on empty text")
	}
}

func TestHighlightKeywordNeedsWordBoundary(t *testing.T) {
	in := styledtext.Styled("TODOS are not todos", lipgloss.NewStyle())
	if _, ok := Highlight(in); ok {
		t.Error("keyword inside a larger word should not match")
	}
}
