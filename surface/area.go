package surface

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bindtext/styledtext"
)

// Area is the multi-line surface, wrapping a bubbles textarea for editing,
// cursor movement, soft wrap and scrolling.
type Area struct {
	ta      textarea.Model
	cfg     Config
	content styledtext.Text
	hooks   Hooks

	// Explicit selection ranges survive config-only passes; they are
	// invalidated as soon as the underlying value changes.
	sel      []styledtext.Range
	selValue string
}

var _ Surface = (*Area)(nil)

func newArea(initial styledtext.Text, cfg Config) *Area {
	ta := textarea.New()
	// The surface owns content fidelity: no prompt, no line numbers, no
	// character limit, and the placeholder is drawn by the overlay above
	// this layer, never by the wrapped model.
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Placeholder = ""

	a := &Area{ta: ta}
	a.ApplyConfig(cfg)
	a.SetContent(initial)
	return a
}

// SetContent replaces the displayed content. The wrapped model's cursor
// moves to the end; callers that need a particular cursor follow up with
// SetSelection.
func (a *Area) SetContent(t styledtext.Text) {
	a.content = t
	if raw := t.String(); raw != a.ta.Value() {
		a.ta.SetValue(raw)
	}
	a.invalidateSelection()
	a.syncNativeStyle()
}

// Content returns the currently displayed content with its styling.
func (a *Area) Content() styledtext.Text {
	a.refreshContent()
	return a.content
}

// SetSelection moves the insertion point to the first range's offset and
// records the full range set for later reads.
func (a *Area) SetSelection(ranges []styledtext.Range) {
	if len(ranges) == 0 {
		return
	}
	value := a.ta.Value()
	n := len([]rune(value))
	clamped := make([]styledtext.Range, len(ranges))
	for i, r := range ranges {
		clamped[i] = r.Clamp(n)
	}

	row, col := offsetToRowCol(value, clamped[0].Offset)
	for a.ta.Line() > row {
		a.ta.CursorUp()
	}
	for a.ta.Line() < row {
		a.ta.CursorDown()
	}
	a.ta.SetCursor(col)

	a.sel = clamped
	a.selValue = value
}

// Selection returns the recorded ranges if still valid, otherwise the
// cursor as a zero-length range.
func (a *Area) Selection() []styledtext.Range {
	if a.sel != nil && a.selValue == a.ta.Value() {
		return a.sel
	}
	return []styledtext.Range{{Offset: a.cursorOffset()}}
}

// ApplyConfig applies a resolved configuration. Idempotent and cheap; the
// reconciler calls this on every pass.
func (a *Area) ApplyConfig(cfg Config) {
	a.cfg = cfg
	a.ta.SetWidth(cfg.ContentWidth())
	a.ta.SetHeight(cfg.ContentHeight())
	a.syncNativeStyle()
}

// Editable reports whether the surface currently accepts edits.
func (a *Area) Editable() bool {
	return a.cfg.Editable
}

// Subscribe installs the edit event hooks, replacing any previous set.
func (a *Area) Subscribe(h Hooks) {
	a.hooks = h
}

// Focus begins an edit session and notifies OnBeginEdit.
func (a *Area) Focus() tea.Cmd {
	cmd := a.ta.Focus()
	if a.hooks.OnBeginEdit != nil {
		a.hooks.OnBeginEdit(a.snapshot())
	}
	return cmd
}

// Blur ends the edit session and notifies OnEndEdit.
func (a *Area) Blur() {
	a.ta.Blur()
	if a.hooks.OnEndEdit != nil {
		a.hooks.OnEndEdit(a.snapshot())
	}
}

func (a *Area) Focused() bool {
	return a.ta.Focused()
}

// Update forwards messages to the wrapped model and reports content changes
// through OnChange. Key events are swallowed while the surface is not
// editable.
func (a *Area) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok && !a.cfg.Editable {
		return nil
	}
	before := a.ta.Value()
	var cmd tea.Cmd
	a.ta, cmd = a.ta.Update(msg)
	if a.ta.Value() != before {
		a.refreshContent()
		a.invalidateSelection()
		if a.hooks.OnChange != nil {
			a.hooks.OnChange(a.snapshot())
		}
	}
	return cmd
}

// View renders the framed surface. Uniformly styled content uses the native
// textarea view; multi-style content is painted span by span.
func (a *Area) View() string {
	a.refreshContent()
	inner := a.ta.View()
	if !a.content.Uniform() {
		inner = paint(a.content, a.cursorOffset(), a.ta.Focused())
	}
	return a.cfg.FrameStyle().Render(inner)
}

// Reset clears content, selection and subscriptions.
func (a *Area) Reset() {
	a.ta.Reset()
	a.content = nil
	a.invalidateSelection()
	a.hooks = Hooks{}
}

// cursorOffset derives the absolute rune offset of the insertion point.
func (a *Area) cursorOffset() int {
	li := a.ta.LineInfo()
	return rowColToOffset(a.ta.Value(), a.ta.Line(), li.StartColumn+li.CharOffset)
}

// refreshContent re-bases the styled snapshot onto the wrapped model's
// value after an edit. Span-level styling is stale at that point; the
// styling pipeline reapplies it on the next reconciliation.
func (a *Area) refreshContent() {
	raw := a.ta.Value()
	if raw == a.content.String() {
		return
	}
	if len(a.content) > 0 {
		a.content = styledtext.Styled(raw, a.content[0].Style)
	} else {
		a.content = styledtext.Plain(raw)
	}
}

// syncNativeStyle pushes the content's uniform style into the wrapped
// model so the native view renders it.
func (a *Area) syncNativeStyle() {
	st := a.textStyle()
	a.ta.FocusedStyle.Text = st
	a.ta.BlurredStyle.Text = st
	a.ta.FocusedStyle.CursorLine = st
	a.ta.FocusedStyle.Base = lipgloss.NewStyle()
	a.ta.BlurredStyle.Base = lipgloss.NewStyle()
}

func (a *Area) textStyle() lipgloss.Style {
	if len(a.content) > 0 && a.content.Uniform() {
		return a.content[0].Style
	}
	return lipgloss.NewStyle()
}

func (a *Area) snapshot() Snapshot {
	return Snapshot{Content: a.Content(), Selection: a.Selection()}
}

func (a *Area) invalidateSelection() {
	a.sel = nil
	a.selValue = ""
}
