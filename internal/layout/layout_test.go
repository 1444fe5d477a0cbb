package layout

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVisibleLength(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"\x1b[94m\x1b[0m", 0},
		{"\x1b[94mab\x1b[0m", 2},
		{"\x1b[90;1mab\x1b[0m", 2},
		{"\x1b[94mab\x1b[0m \x1b[90mcd\x1b[0m", 5},
		{"   x", 5},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, VisibleLength(tc.in), "input %q", tc.in)
	}
}

func TestPrintDegenerateCollapse(t *testing.T) {
	// Naive math gives 1 row x 25 cols here; a single-row grid must fall
	// back to one entry per line instead.
	var buf bytes.Buffer

	Print(&buf, []string{"ab", "cd", "ef"}, 100)

	require.Equal(t, "ab  \ncd  \nef  \n", buf.String())
}

func TestPrintColumnMajorFill(t *testing.T) {
	var buf bytes.Buffer

	// colWidth 3, width 6 -> 2 cols, 3 rows; index = col*rows + row.
	Print(&buf, []string{"a", "b", "c", "d", "e"}, 6)

	require.Equal(t, "a  d  \nb  e  \nc  \n", buf.String())
}

func TestPrintDeterministic(t *testing.T) {
	lines := []string{"one", "two", "three", "four", "five", "six", "seven"}

	var first, second bytes.Buffer
	Print(&first, lines, 24)
	Print(&second, lines, 24)

	require.Equal(t, first.String(), second.String())
}

func TestPrintEmptyList(t *testing.T) {
	var buf bytes.Buffer

	Print(&buf, nil, 80)

	require.Empty(t, buf.String())
}

func TestPrintWidthFallback(t *testing.T) {
	var buf bytes.Buffer

	Print(&buf, []string{"a", "b"}, 0)

	require.Equal(t, "a  \nb  \n", buf.String())
}

func TestPrintPadsByVisibleLength(t *testing.T) {
	var buf bytes.Buffer
	colored := "\x1b[94mab\x1b[0m"

	// Escape sequences must not desynchronize the padding arithmetic.
	Print(&buf, []string{colored, "cd", "ef", "gh"}, 8)

	require.Equal(t, colored+"  ef  \ncd  gh  \n", buf.String())
}

func TestPrintSingleColumn(t *testing.T) {
	var buf bytes.Buffer

	PrintSingleColumn(&buf, []string{"a", "longer"})

	require.Equal(t, "a\nlonger\n", buf.String())
}
