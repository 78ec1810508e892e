package surface

import "github.com/charmbracelet/lipgloss"

// Defaults applied by Resolve when a field is unset.
const (
	DefaultInsetPadding = 1
	DefaultWidth        = 60
	DefaultHeight       = 6
)

// Font is the terminal translation of a font descriptor: the attribute set
// a terminal can vary per cell.
type Font struct {
	Bold      bool
	Italic    bool
	Faint     bool
	Underline bool
}

// Apply returns the style with the font attributes set.
func (f Font) Apply(s lipgloss.Style) lipgloss.Style {
	if f.Bold {
		s = s.Bold(true)
	}
	if f.Italic {
		s = s.Italic(true)
	}
	if f.Faint {
		s = s.Faint(true)
	}
	if f.Underline {
		s = s.Underline(true)
	}
	return s
}

// Config is the fully resolved surface configuration. It is composed by the
// editor's option chain and passed down explicitly; surfaces never consult
// ambient state.
type Config struct {
	Editable     bool
	InsetPadding int

	// Background fills the surface frame. Nil means no background draw.
	Background lipgloss.TerminalColor
	// TextColor overrides the scheme-dependent default foreground. Nil
	// defers to the adaptive default.
	TextColor lipgloss.TerminalColor

	Placeholder string
	Font        Font

	SingleLine     bool
	Width          int
	Height         int
	DarkBackground bool
}

// Default returns the documented default configuration.
func Default() Config {
	return Config{
		Editable:       true,
		InsetPadding:   DefaultInsetPadding,
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		DarkBackground: lipgloss.HasDarkBackground(),
	}
}

// ContentWidth returns the columns available to content inside the inset.
func (c Config) ContentWidth() int {
	w := c.Width - 2*c.InsetPadding
	if w < 1 {
		w = 1
	}
	return w
}

// ContentHeight returns the rows available to content inside the inset.
func (c Config) ContentHeight() int {
	h := c.Height - 2*c.InsetPadding
	if h < 1 {
		h = 1
	}
	return h
}

// FrameStyle builds the outer frame: uniform inner padding and optional
// background fill.
func (c Config) FrameStyle() lipgloss.Style {
	s := lipgloss.NewStyle().Padding(c.InsetPadding)
	if c.Background != nil {
		s = s.Background(c.Background)
	}
	return s
}
