package styledtext

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Style comparisons go through rendered output, which depends on the
// terminal's color profile. Pin it so the distinctions hold without a TTY.
func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	os.Exit(m.Run())
}

func TestPlainRoundTrip(t *testing.T) {
	txt := Plain("Hello World")
	require.Equal(t, "Hello World", txt.String())
	assert.Equal(t, 11, txt.Len())
	assert.False(t, txt.Empty())
}

func TestPlainEmpty(t *testing.T) {
	txt := Plain("")
	assert.True(t, txt.Empty())
	assert.Equal(t, 0, txt.Len())
	assert.Equal(t, "", txt.String())
}

func TestLenCountsRunes(t *testing.T) {
	txt := Plain("héllo")
	assert.Equal(t, 5, txt.Len())

	multi := Text{{Text: "ab"}, {Text: "cd"}}
	assert.Equal(t, 4, multi.Len())
	assert.Equal(t, "abcd", multi.String())
}

func TestEqualByValue(t *testing.T) {
	bold := lipgloss.NewStyle().Bold(true)

	a := Styled("note", bold)
	b := Styled("note", lipgloss.NewStyle().Bold(true))
	assert.True(t, a.Equal(b))

	c := Plain("note")
	assert.False(t, a.Equal(c), "same text, different styling")
	assert.False(t, a.Equal(Styled("other", bold)))
}

func TestEqualIgnoresSpanBoundaries(t *testing.T) {
	a := Text{{Text: "ab"}, {Text: "cd"}}
	b := Plain("abcd")
	assert.True(t, a.Equal(b), "span boundaries are not content")
}

func TestUniform(t *testing.T) {
	bold := lipgloss.NewStyle().Bold(true)

	assert.True(t, Plain("x").Uniform())
	assert.True(t, Text(nil).Uniform())
	assert.True(t, Text{{Text: "a", Style: bold}, {Text: "b", Style: bold}}.Uniform())
	assert.False(t, Text{{Text: "a", Style: bold}, {Text: "b"}}.Uniform())
}

func TestRestyle(t *testing.T) {
	bold := lipgloss.NewStyle().Bold(true)
	txt := Text{{Text: "a", Style: bold}, {Text: "b"}}

	got := txt.Restyle(lipgloss.NewStyle().Italic(true))
	require.Len(t, got, 1)
	assert.Equal(t, "ab", got.String())
	assert.True(t, got.Uniform())
}

func TestRangeClamp(t *testing.T) {
	assert.Equal(t, Range{Offset: 3, Length: 2}, Range{Offset: 3, Length: 2}.Clamp(10))
	assert.Equal(t, Range{Offset: 5, Length: 0}, Range{Offset: 9, Length: 4}.Clamp(5))
	assert.Equal(t, Range{Offset: 0, Length: 0}, Range{Offset: -2, Length: -1}.Clamp(5))
	assert.Equal(t, Range{Offset: 2, Length: 3}, Range{Offset: 2, Length: 8}.Clamp(5))
	assert.Equal(t, 5, Range{Offset: 2, Length: 3}.End())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hell…", Truncate("hello world", 5))
	assert.Equal(t, "", Truncate("hello", 0))
	assert.Equal(t, 4, VisualWidth("héll"))
}

func TestRenderStylesLineByLine(t *testing.T) {
	bg := lipgloss.NewStyle().Bold(true)
	txt := Styled("one\ntwo", bg)
	out := txt.Render()
	assert.Contains(t, out, "\n")
	assert.Equal(t, "one\ntwo", Plain(txt.String()).String())
}
