// Package surface wraps the concrete terminal editing surfaces behind one
// capability set. Two adapters exist: Area hosts a multi-line textarea and
// Field hosts a single-line text input. Everything above this package
// (reconciler, coordinator, pipeline) is written once against Surface.
//
// Surfaces never perform automatic input rewriting; what the caller sets is
// what is displayed, and what the user types is what is reported.
package surface

import (
	tea "github.com/charmbracelet/bubbletea"

	"bindtext/styledtext"
)

// Snapshot is the surface state delivered to event subscribers.
type Snapshot struct {
	Content   styledtext.Text
	Selection []styledtext.Range
}

// Hooks are the edit event subscriptions for a surface. Nil hooks are
// skipped. Hooks fire on the program's event loop, never concurrently.
type Hooks struct {
	OnBeginEdit func(Snapshot)
	OnChange    func(Snapshot)
	OnEndEdit   func(Snapshot)
}

// Surface is the uniform contract over a concrete editing surface.
//
// SetSelection and Selection speak in rune ranges; a zero-length range is a
// cursor. Terminal surfaces hold a single insertion point, so restoring a
// multi-range selection applies the first range.
type Surface interface {
	SetContent(styledtext.Text)
	Content() styledtext.Text

	SetSelection([]styledtext.Range)
	Selection() []styledtext.Range

	ApplyConfig(Config)
	Editable() bool

	Subscribe(Hooks)

	Focus() tea.Cmd
	Blur()
	Focused() bool

	Update(tea.Msg) tea.Cmd
	View() string

	Reset()
}

// New creates the concrete surface for the given configuration.
// Multi-line is the default; cfg.SingleLine selects the field surface.
// Creation cannot fail given a resolved Config.
func New(initial styledtext.Text, cfg Config) Surface {
	if cfg.SingleLine {
		return newField(initial, cfg)
	}
	return newArea(initial, cfg)
}
