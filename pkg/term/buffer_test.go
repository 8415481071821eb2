package term

import (
	"reflect"
	"testing"
)

var cellsFromStringTests = []struct {
	s    string
	want []Cell
}{
	{"", nil},
	{"ls", []Cell{{"l", 1}, {"s", 1}}},
	// Wide characters take two columns.
	{"好", []Cell{{"好", 2}}},
	// Combining characters stay in one cell.
	{"éc", []Cell{{"é", 1}, {"c", 1}}},
}

func TestCellsFromString(t *testing.T) {
	for _, test := range cellsFromStringTests {
		cells := CellsFromString(test.s)
		if !reflect.DeepEqual(cells, test.want) {
			t.Errorf("CellsFromString(%q) = %v, want %v", test.s, cells, test.want)
		}
	}
}

var compareCellsTests = []struct {
	r1      []Cell
	r2      []Cell
	wantEq  bool
	wantIdx int
}{
	{nil, nil, true, 0},
	{CellsFromString("ab"), CellsFromString("ab"), true, 0},
	{CellsFromString("ab"), CellsFromString("ac"), false, 1},
	{CellsFromString("ab"), CellsFromString("abc"), false, 2},
	{CellsFromString("abc"), CellsFromString("ab"), false, 2},
}

func TestCompareCells(t *testing.T) {
	for _, test := range compareCellsTests {
		eq, idx := compareCells(test.r1, test.r2)
		if eq != test.wantEq || idx != test.wantIdx {
			t.Errorf("compareCells(%v, %v) = (%v, %v), want (%v, %v)",
				test.r1, test.r2, eq, idx, test.wantEq, test.wantIdx)
		}
	}
}

func TestBufferColumns(t *testing.T) {
	b := &Buffer{Cells: CellsFromString("a好b")}
	if cols := b.Columns(); cols != 4 {
		t.Errorf("Columns() = %d, want 4", cols)
	}
}
