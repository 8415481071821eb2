package edit

import (
	"github.com/gline-sh/gline/pkg/term"
)

// renderLine renders the prompt and the buffer into a single-line terminal
// buffer that fits in the given width. When the line is too long, cells are
// dropped from the front so that the dot stays visible.
func renderLine(prompt string, buf CodeBuffer, width int) *term.Buffer {
	promptCells := term.CellsFromString(prompt)
	cells := append(promptCells, term.CellsFromString(buf.Content)...)
	// Cell index corresponding to the dot.
	dotIndex := len(promptCells) + len(term.CellsFromString(buf.Content[:buf.Dot]))

	// The terminal wraps (or worse, scrolls) when a line reaches the last
	// column, so keep everything strictly within width-1 columns.
	budget := width - 1
	if budget < 1 {
		budget = 1
	}

	dotCol := 0
	for _, c := range cells[:dotIndex] {
		dotCol += c.Width
	}
	// Scroll the dot into view.
	for dotCol > budget && len(cells) > 0 {
		dotCol -= cells[0].Width
		cells = cells[1:]
	}
	// Truncate the tail.
	col := 0
	for i, c := range cells {
		if col+c.Width > budget {
			cells = cells[:i]
			break
		}
		col += c.Width
	}
	return &term.Buffer{Cells: cells, Dot: dotCol}
}
