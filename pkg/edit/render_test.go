package edit

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gline-sh/gline/pkg/term"
)

var renderLineTests = []struct {
	name   string
	prompt string
	buffer CodeBuffer
	width  int
	want   *term.Buffer
}{
	{
		name:   "empty buffer",
		prompt: "> ",
		width:  20,
		want:   &term.Buffer{Cells: term.CellsFromString("> "), Dot: 2},
	},
	{
		name:   "dot in the middle",
		prompt: "> ",
		buffer: CodeBuffer{Content: "abc", Dot: 1},
		width:  20,
		want:   &term.Buffer{Cells: term.CellsFromString("> abc"), Dot: 3},
	},
	{
		name:   "wide characters",
		prompt: "> ",
		buffer: CodeBuffer{Content: "好a", Dot: 3},
		width:  20,
		want:   &term.Buffer{Cells: term.CellsFromString("> 好a"), Dot: 4},
	},
	{
		name:   "long line scrolled to keep dot visible",
		prompt: "> ",
		buffer: CodeBuffer{Content: "0123456789", Dot: 10},
		width:  8,
		// 7 columns of budget; the front is dropped until the dot fits.
		want:   &term.Buffer{Cells: term.CellsFromString("3456789"), Dot: 7},
	},
	{
		name:   "tail truncated",
		prompt: "> ",
		buffer: CodeBuffer{Content: "0123456789", Dot: 0},
		width:  8,
		want:   &term.Buffer{Cells: term.CellsFromString("> 01234"), Dot: 2},
	},
}

func TestRenderLine(t *testing.T) {
	for _, test := range renderLineTests {
		t.Run(test.name, func(t *testing.T) {
			got := renderLine(test.prompt, test.buffer, test.width)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("renderLine diff (-want +got):\n%s", diff)
			}
		})
	}
}
