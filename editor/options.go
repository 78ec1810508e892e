package editor

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"bindtext/surface"
)

// Option customizes an Editor. Options apply in order; a later option wins
// over an earlier one, and anything unset keeps its documented default
// (editable, one cell of inset padding, adaptive text color, plain font).
type Option func(*Editor)

// WithEditable toggles whether the surface accepts edits.
func WithEditable(editable bool) Option {
	return func(e *Editor) { e.cfg.Editable = editable }
}

// WithInsetPadding sets the uniform inner padding, in cells. The
// placeholder overlay offsets from the same value.
func WithInsetPadding(cells int) Option {
	return func(e *Editor) { e.cfg.InsetPadding = cells }
}

// WithBackgroundColor fills the surface frame. Without it the surface draws
// no background.
func WithBackgroundColor(c lipgloss.TerminalColor) Option {
	return func(e *Editor) { e.cfg.Background = c }
}

// WithTextColor overrides the scheme-dependent default foreground.
func WithTextColor(c lipgloss.TerminalColor) Option {
	return func(e *Editor) { e.cfg.TextColor = c }
}

// WithPlaceholder sets the text shown over the surface while it is empty.
func WithPlaceholder(s string) Option {
	return func(e *Editor) { e.cfg.Placeholder = s }
}

// WithFont sets the text attributes applied to content and placeholder.
func WithFont(f surface.Font) Option {
	return func(e *Editor) { e.cfg.Font = f }
}

// WithSingleLine selects the single-line field surface instead of the
// multi-line area. Only meaningful at construction; the surface kind is
// fixed for the editor's lifetime.
func WithSingleLine() Option {
	return func(e *Editor) { e.cfg.SingleLine = true }
}

// WithSize sets the outer frame dimensions in cells.
func WithSize(width, height int) Option {
	return func(e *Editor) {
		e.cfg.Width = width
		e.cfg.Height = height
	}
}

// WithDarkBackground overrides terminal background detection for the
// adaptive text and placeholder colors.
func WithDarkBackground(dark bool) Option {
	return func(e *Editor) { e.cfg.DarkBackground = dark }
}

// WithDebounce overrides the edit-burst debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(e *Editor) { e.debounce = d }
}

// WithRecorder installs an activity recorder for editor lifecycle events.
func WithRecorder(r Recorder) Option {
	return func(e *Editor) { e.recorder = r }
}
