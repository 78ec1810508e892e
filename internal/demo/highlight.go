package demo

import (
	"regexp"
	"sort"

	"bindtext/styledtext"
)

var (
	keywordRe = regexp.MustCompile(`\b(TODO|FIXME|NOTE)\b`)
	linkRe    = regexp.MustCompile(`https?://\S+`)
)

// Highlight marks task keywords and URLs in note text. It is installed as
// the note editor's transform: it receives base-styled content and carves
// it into spans, keeping the base style for everything unmatched. Returns
// ok=false when there is nothing to mark.
func Highlight(in styledtext.Text) (styledtext.Text, bool) {
	raw := in.String()
	if raw == "" {
		return nil, false
	}

	type mark struct {
		start, end int
		style      int // 0 keyword, 1 link
	}
	var marks []mark
	for _, m := range keywordRe.FindAllStringIndex(raw, -1) {
		marks = append(marks, mark{m[0], m[1], 0})
	}
	for _, m := range linkRe.FindAllStringIndex(raw, -1) {
		marks = append(marks, mark{m[0], m[1], 1})
	}
	if len(marks) == 0 {
		return nil, false
	}
	sort.Slice(marks, func(i, j int) bool { return marks[i].start < marks[j].start })

	base := in[0].Style
	var out styledtext.Text
	pos := 0
	for _, m := range marks {
		if m.start < pos {
			continue // Overlaps the previous mark
		}
		if m.start > pos {
			out = append(out, styledtext.Span{Text: raw[pos:m.start], Style: base})
		}
		st := Styles.Keyword
		if m.style == 1 {
			st = Styles.Link
		}
		out = append(out, styledtext.Span{Text: raw[m.start:m.end], Style: st})
		pos = m.end
	}
	if pos < len(raw) {
		out = append(out, styledtext.Span{Text: raw[pos:], Style: base})
	}
	return out, true
}
