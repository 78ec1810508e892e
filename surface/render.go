package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bindtext/styledtext"
)

// cursorStyle is the painted cursor cell: reverse video, same as the
// terminal's native block cursor.
var cursorStyle = lipgloss.NewStyle().Reverse(true)

// paint renders styled spans directly, marking the cursor position when
// focused. The native bubbles views can only style their content uniformly,
// so any content carrying more than one style goes through here. Painted
// output is logical lines; soft wrap is the native view's concern and only
// uniform content gets it.
func paint(t styledtext.Text, cursor int, focused bool) string {
	if !focused {
		cursor = -1
	}
	var b strings.Builder
	idx := 0
	for _, sp := range t {
		var seg []rune
		flush := func() {
			if len(seg) > 0 {
				b.WriteString(sp.Style.Render(string(seg)))
				seg = seg[:0]
			}
		}
		for _, r := range sp.Text {
			switch {
			case r == '\n':
				flush()
				b.WriteByte('\n')
			case idx == cursor:
				flush()
				b.WriteString(cursorStyle.Render(string(r)))
			default:
				seg = append(seg, r)
			}
			idx++
		}
		flush()
	}
	if cursor >= idx && focused {
		b.WriteString(cursorStyle.Render(" "))
	}
	return b.String()
}
