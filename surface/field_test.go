package surface

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"bindtext/styledtext"
)

func fieldConfig() Config {
	cfg := Default()
	cfg.SingleLine = true
	return cfg
}

func TestFieldContentRoundTrip(t *testing.T) {
	f := New(styledtext.Plain("title"), fieldConfig())
	if _, ok := f.(*Field); !ok {
		t.Fatalf("expected *Field for single-line config, got %T", f)
	}
	if got := f.Content().String(); got != "title" {
		t.Fatalf("expected 'title', got %q", got)
	}

	f.SetContent(styledtext.Plain("renamed"))
	if got := f.Content().String(); got != "renamed" {
		t.Errorf("after SetContent: got %q", got)
	}
}

func TestFieldCursorSelection(t *testing.T) {
	f := New(styledtext.Plain("abcdef"), fieldConfig())
	f.SetSelection([]styledtext.Range{{Offset: 2}})
	sel := f.Selection()
	if sel[0].Offset != 2 {
		t.Errorf("expected cursor at 2, got %+v", sel[0])
	}
}

func TestFieldEditableGate(t *testing.T) {
	cfg := fieldConfig()
	cfg.Editable = false
	f := New(styledtext.Plain("locked"), cfg)
	f.Focus()

	typeString(t, f, "x")
	if got := f.Content().String(); got != "locked" {
		t.Errorf("non-editable field accepted edit: %q", got)
	}
}

func TestFieldTypingAndChangeEvents(t *testing.T) {
	f := New(styledtext.Plain(""), fieldConfig())
	var last string
	f.Subscribe(Hooks{OnChange: func(s Snapshot) { last = s.Content.String() }})
	f.Focus()

	typeString(t, f, "ok")
	if got := f.Content().String(); got != "ok" {
		t.Errorf("expected 'ok', got %q", got)
	}
	if last != "ok" {
		t.Errorf("last change payload: %q", last)
	}
}

func TestFieldView(t *testing.T) {
	f := New(styledtext.Plain("hello"), fieldConfig())
	out := ansi.Strip(f.View())
	if !strings.Contains(out, "hello") {
		t.Errorf("view missing content: %q", out)
	}
}
