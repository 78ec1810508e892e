package editor

import (
	"github.com/charmbracelet/lipgloss"

	"bindtext/styledtext"
	"bindtext/surface"
)

// Default foreground per color scheme, used when no text color override is
// configured.
const (
	colorTextLight = "235"
	colorTextDark  = "252"
)

// Transform is the caller-supplied second stage of the styling pipeline.
// It receives the base-styled snapshot and either returns a replacement
// (ok=true) or declines (ok=false), in which case the base-styled content
// stands. Declining is a normal outcome, not an error.
//
// Transforms must be pure and cheap; they run on the event loop for every
// reconciliation. Callers that offload expensive work to a goroutine must
// deliver the result back as a message before touching the editor.
type Transform func(styledtext.Text) (styledtext.Text, bool)

// baseStyle is the first pipeline stage's style: scheme-dependent
// foreground plus the configured font attributes, applied across the full
// extent of the content.
func baseStyle(cfg surface.Config) lipgloss.Style {
	st := lipgloss.NewStyle()
	switch {
	case cfg.TextColor != nil:
		st = st.Foreground(cfg.TextColor)
	case cfg.DarkBackground:
		st = st.Foreground(lipgloss.Color(colorTextDark))
	default:
		st = st.Foreground(lipgloss.Color(colorTextLight))
	}
	return cfg.Font.Apply(st)
}

// stylePlain runs the two-stage pipeline on plain text: base styling first,
// then the optional transform over the already-styled snapshot. Transforms
// can therefore layer attributes on top of the base style instead of
// reconstructing it. Rich content never passes through here.
func stylePlain(text string, cfg surface.Config, transform Transform) styledtext.Text {
	base := styledtext.Styled(text, baseStyle(cfg))
	if transform != nil {
		if out, ok := transform(base); ok {
			return out
		}
	}
	return base
}
