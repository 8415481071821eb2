package term

import (
	"github.com/rivo/uniseg"
)

// Cell is an indivisible unit on the screen. It is not necessarily 1 column
// wide.
type Cell struct {
	Text  string
	Width int
}

// Buffer reflects the line of the terminal that the editor draws, along with
// the column of the cursor (called the "dot" here).
//
// The Unix terminal API provides only awkward ways of querying the terminal
// content, so we keep an internal reflection and do one-way synchronizations
// (Buffer -> terminal, and not the other way around). This requires us to
// exactly match the terminal's idea of the width of characters, so there
// could be bugs with exotic characters.
type Buffer struct {
	Cells []Cell
	// Dot is what the user perceives as the cursor, as a column offset from
	// the start of the line.
	Dot int
}

// CellsFromString breaks a string into cells, one per grapheme cluster.
func CellsFromString(s string) []Cell {
	var cells []Cell
	state := -1
	for len(s) > 0 {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		cells = append(cells, Cell{cluster, width})
	}
	return cells
}

// Columns returns the total width of the buffer content.
func (b *Buffer) Columns() int {
	return cellsWidth(b.Cells)
}

// Returns the total width of a Cell slice.
func cellsWidth(cs []Cell) int {
	w := 0
	for _, c := range cs {
		w += c.Width
	}
	return w
}

// Returns whether two Cell slices are equal, and when they are not, the
// first index at which they differ.
func compareCells(r1, r2 []Cell) (bool, int) {
	for i, c := range r1 {
		if i >= len(r2) || c != r2[i] {
			return false, i
		}
	}
	if len(r1) < len(r2) {
		return false, len(r1)
	}
	return true, 0
}
