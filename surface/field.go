package surface

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bindtext/styledtext"
)

// Field is the single-line surface, wrapping a bubbles text input. Content
// is expected to carry no newlines; the wrapped model cannot display them.
type Field struct {
	ti      textinput.Model
	cfg     Config
	content styledtext.Text
	hooks   Hooks

	sel      []styledtext.Range
	selValue string
}

var _ Surface = (*Field)(nil)

func newField(initial styledtext.Text, cfg Config) *Field {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Placeholder = ""
	ti.ShowSuggestions = false

	f := &Field{ti: ti}
	f.ApplyConfig(cfg)
	f.SetContent(initial)
	return f
}

func (f *Field) SetContent(t styledtext.Text) {
	f.content = t
	if raw := t.String(); raw != f.ti.Value() {
		f.ti.SetValue(raw)
	}
	f.invalidateSelection()
	f.syncNativeStyle()
}

func (f *Field) Content() styledtext.Text {
	f.refreshContent()
	return f.content
}

func (f *Field) SetSelection(ranges []styledtext.Range) {
	if len(ranges) == 0 {
		return
	}
	value := f.ti.Value()
	n := len([]rune(value))
	clamped := make([]styledtext.Range, len(ranges))
	for i, r := range ranges {
		clamped[i] = r.Clamp(n)
	}
	f.ti.SetCursor(clamped[0].Offset)
	f.sel = clamped
	f.selValue = value
}

func (f *Field) Selection() []styledtext.Range {
	if f.sel != nil && f.selValue == f.ti.Value() {
		return f.sel
	}
	return []styledtext.Range{{Offset: f.ti.Position()}}
}

func (f *Field) ApplyConfig(cfg Config) {
	f.cfg = cfg
	f.ti.Width = cfg.ContentWidth()
	f.syncNativeStyle()
}

func (f *Field) Editable() bool {
	return f.cfg.Editable
}

func (f *Field) Subscribe(h Hooks) {
	f.hooks = h
}

func (f *Field) Focus() tea.Cmd {
	cmd := f.ti.Focus()
	if f.hooks.OnBeginEdit != nil {
		f.hooks.OnBeginEdit(f.snapshot())
	}
	return cmd
}

func (f *Field) Blur() {
	f.ti.Blur()
	if f.hooks.OnEndEdit != nil {
		f.hooks.OnEndEdit(f.snapshot())
	}
}

func (f *Field) Focused() bool {
	return f.ti.Focused()
}

func (f *Field) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok && !f.cfg.Editable {
		return nil
	}
	before := f.ti.Value()
	var cmd tea.Cmd
	f.ti, cmd = f.ti.Update(msg)
	if f.ti.Value() != before {
		f.refreshContent()
		f.invalidateSelection()
		if f.hooks.OnChange != nil {
			f.hooks.OnChange(f.snapshot())
		}
	}
	return cmd
}

func (f *Field) View() string {
	f.refreshContent()
	inner := f.ti.View()
	if !f.content.Uniform() {
		inner = paint(f.content, f.ti.Position(), f.ti.Focused())
	}
	return f.cfg.FrameStyle().Render(inner)
}

func (f *Field) Reset() {
	f.ti.Reset()
	f.content = nil
	f.invalidateSelection()
	f.hooks = Hooks{}
}

func (f *Field) refreshContent() {
	raw := f.ti.Value()
	if raw == f.content.String() {
		return
	}
	if len(f.content) > 0 {
		f.content = styledtext.Styled(raw, f.content[0].Style)
	} else {
		f.content = styledtext.Plain(raw)
	}
}

func (f *Field) syncNativeStyle() {
	st := lipgloss.NewStyle()
	if len(f.content) > 0 && f.content.Uniform() {
		st = f.content[0].Style
	}
	f.ti.TextStyle = st
}

func (f *Field) snapshot() Snapshot {
	return Snapshot{Content: f.Content(), Selection: f.Selection()}
}

func (f *Field) invalidateSelection() {
	f.sel = nil
	f.selValue = ""
}
