// Package layout packs pre-rendered, ANSI-colored lines into a
// terminal-width-constrained grid.
package layout

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// colGap is the fixed gutter between columns.
const colGap = 2

// VisibleLength returns the printable character count of s once ANSI color
// and reset sequences are stripped. Counts Unicode scalars, not bytes, so
// multi-byte glyphs pad correctly.
func VisibleLength(s string) int {
	return utf8.RuneCountInString(ansi.Strip(s))
}

// Print arranges lines into columns that fit termWidth and writes the grid
// row by row. Cells are filled column-major so a listing reads top-to-bottom
// within each column, and each cell is right-padded to the column width
// using its visible length, keeping escape sequences out of the arithmetic.
//
// The column count uses floor division (cols = max(1, width/colWidth)); a
// grid that would collapse to a single row is printed one entry per line
// instead, so a wide terminal never smears a short listing across one line.
func Print(w io.Writer, lines []string, termWidth int) {
	if len(lines) == 0 {
		return
	}
	if termWidth < 1 {
		termWidth = 1
	}

	maxItemLen := 0
	for _, line := range lines {
		if n := VisibleLength(line); n > maxItemLen {
			maxItemLen = n
		}
	}

	colWidth := maxItemLen + colGap
	cols := termWidth / colWidth
	if cols < 1 {
		cols = 1
	}

	rows := (len(lines) + cols - 1) / cols
	if rows < 1 {
		rows = 1
	}
	if rows == 1 {
		cols = 1
		rows = len(lines)
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			index := col*rows + row
			if index >= len(lines) {
				continue
			}

			value := lines[index]
			padding := strings.Repeat(" ", colWidth-VisibleLength(value))
			fmt.Fprintf(w, "%s%s", value, padding)
		}
		fmt.Fprintln(w)
	}
}

// PrintSingleColumn writes each line on its own row, unpadded.
func PrintSingleColumn(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
