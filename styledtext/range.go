package styledtext

// Range is a selection range into content, in rune units.
// A zero Length is a cursor position.
type Range struct {
	Offset int
	Length int
}

// Clamp returns the range constrained to content of the given rune length.
func (r Range) Clamp(n int) Range {
	if r.Offset < 0 {
		r.Offset = 0
	}
	if r.Offset > n {
		r.Offset = n
	}
	if r.Length < 0 {
		r.Length = 0
	}
	if r.Offset+r.Length > n {
		r.Length = n - r.Offset
	}
	return r
}

// End returns the exclusive end offset of the range.
func (r Range) End() int {
	return r.Offset + r.Length
}
