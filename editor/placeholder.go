package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bindtext/styledtext"
	"bindtext/surface"
)

// Muted placeholder foreground per color scheme.
const (
	colorPlaceholderLight = "247"
	colorPlaceholderDark  = "241"
)

type placeholderState int

const (
	placeholderHidden placeholderState = iota
	placeholderShown
)

// placeholder is the overlay drawn over an empty surface. It is a paint-time
// decision only: it never takes part in selection or editing.
type placeholder struct {
	state placeholderState
}

// eval re-derives the overlay state. Shown iff the displayed content is
// empty and a non-empty placeholder string is configured; every content or
// configuration change goes through here.
func (p *placeholder) eval(contentLen int, cfg surface.Config) {
	if contentLen == 0 && cfg.Placeholder != "" {
		p.state = placeholderShown
	} else {
		p.state = placeholderHidden
	}
}

func (p *placeholder) shown() bool {
	return p.state == placeholderShown
}

// render paints the placeholder inside the surface frame: inset offset,
// muted scheme-dependent color, the configured font, truncated to the
// content width. The remaining rows stay blank so the overlay keeps the
// surface's geometry.
func (p *placeholder) render(cfg surface.Config) string {
	st := cfg.Font.Apply(lipgloss.NewStyle())
	if cfg.DarkBackground {
		st = st.Foreground(lipgloss.Color(colorPlaceholderDark))
	} else {
		st = st.Foreground(lipgloss.Color(colorPlaceholderLight))
	}

	line := st.Render(styledtext.Truncate(cfg.Placeholder, cfg.ContentWidth()))
	if rest := cfg.ContentHeight() - 1; rest > 0 {
		line += strings.Repeat("\n", rest)
	}
	return cfg.FrameStyle().Render(line)
}
