package demo

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the demo UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for focused panels, marks
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
)

// Styles contains shared style definitions used across the demo views.
var Styles = struct {
	Title   lipgloss.Style // Bold accent color - panel titles
	Box     lipgloss.Style // Panel border (muted)
	BoxHot  lipgloss.Style // Focused panel border (highlight)
	Muted   lipgloss.Style // Dimmed text
	Hint    lipgloss.Style // Help line at the bottom
	Keyword lipgloss.Style // Highlighted keywords in note text
	Link    lipgloss.Style // Highlighted URLs in note text
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	BoxHot: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Keyword: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Link: lipgloss.NewStyle().
		Underline(true).
		Foreground(lipgloss.Color(ColorHighlight)),
}
