package surface

import "strings"

// offsetToRowCol converts an absolute rune offset into a logical line index
// and rune column within that line. Offsets past the end land on the last
// position.
func offsetToRowCol(value string, offset int) (row, col int) {
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		n := len([]rune(line))
		if offset <= n {
			return i, offset
		}
		offset -= n + 1 // the newline
	}
	last := len(lines) - 1
	return last, len([]rune(lines[last]))
}

// rowColToOffset converts a logical line index and rune column into an
// absolute rune offset.
func rowColToOffset(value string, row, col int) int {
	lines := strings.Split(value, "\n")
	if row >= len(lines) {
		row = len(lines) - 1
	}
	off := 0
	for i := 0; i < row; i++ {
		off += len([]rune(lines[i])) + 1
	}
	if n := len([]rune(lines[row])); col > n {
		col = n
	}
	return off + col
}
