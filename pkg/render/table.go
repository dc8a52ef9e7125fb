package render

import (
	"strings"
	"unicode/utf8"
)

// minColumnWidth is the floor a column may be shrunk to.
const minColumnWidth = 5

// Table re-tokenizes whitespace-delimited rows into an aligned grid.
// Columns size to their widest cell, shrink uniformly when the padded
// total exceeds width, and cells are truncated to the final column
// width and left-justified with two trailing spaces. An empty grid
// renders as an empty string.
func Table(input string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	grid := parseGrid(input)
	if len(grid) == 0 {
		return ""
	}
	widths := fitWidths(columnWidths(grid), width)

	var sb strings.Builder
	for _, row := range grid {
		for col, cell := range row {
			if col >= len(widths) {
				break
			}
			w := widths[col]
			if utf8.RuneCountInString(cell) > w {
				cell = string([]rune(cell)[:w])
			}
			sb.WriteString(padRight(cell, w+2))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// parseGrid splits input into rows of whitespace-delimited cells,
// skipping blank lines.
func parseGrid(input string) [][]string {
	var grid [][]string
	for _, line := range strings.Split(input, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			grid = append(grid, fields)
		}
	}
	return grid
}

// columnWidths returns the widest cell per column. The first row fixes
// the column count; extra cells on later rows are ignored.
func columnWidths(grid [][]string) []int {
	widths := make([]int, len(grid[0]))
	for _, row := range grid {
		for col, cell := range row {
			if col >= len(widths) {
				break
			}
			if n := utf8.RuneCountInString(cell); n > widths[col] {
				widths[col] = n
			}
		}
	}
	return widths
}

// fitWidths shrinks every column by ceil((total-target+cols)/cols)
// when the padded total exceeds target. A column never shrinks below
// minColumnWidth and never grows past its natural width.
func fitWidths(widths []int, target int) []int {
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	if total <= target {
		return widths
	}

	cols := len(widths)
	reduce := (total - target + 2*cols - 1) / cols
	for i, w := range widths {
		shrunk := w - reduce
		if shrunk < minColumnWidth {
			shrunk = minColumnWidth
		}
		if shrunk > w {
			shrunk = w
		}
		widths[i] = shrunk
	}
	return widths
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
