package term

import (
	"bytes"
	"fmt"
	"io"
)

// Writer represents the output to a terminal.
type Writer interface {
	// Buffer returns the current buffer.
	Buffer() *Buffer
	// ResetBuffer resets the current buffer.
	ResetBuffer()
	// UpdateBuffer updates the terminal display to reflect the given buffer.
	UpdateBuffer(buf *Buffer, fullRefresh bool) error
	// ClearScreen clears the terminal screen and places the cursor at the
	// top left corner.
	ClearScreen()
}

// writer renders the edited line to the terminal.
type writer struct {
	file   io.Writer
	curBuf *Buffer
}

// NewWriter returns a Writer that writes VT100 sequences to the given
// io.Writer.
func NewWriter(f io.Writer) Writer {
	return &writer{f, &Buffer{}}
}

func (w *writer) Buffer() *Buffer {
	return w.curBuf
}

func (w *writer) ResetBuffer() {
	w.curBuf = &Buffer{}
}

const (
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
)

// UpdateBuffer updates the terminal display to reflect the given buffer.
// Unless a full refresh is forced, only the part of the line after the first
// differing cell is rewritten.
func (w *writer) UpdateBuffer(buf *Buffer, fullRefresh bool) error {
	// Store all the output in a buffer, so that we only write to the
	// terminal once.
	output := new(bytes.Buffer)

	// Hide cursor at the beginning to minimize flickering.
	output.WriteString(hideCursor)

	eq, i := compareCells(w.curBuf.Cells, buf.Cells)
	if fullRefresh {
		eq, i = false, 0
	}
	if !eq {
		// Rewind to the start of the line, then skip the common prefix.
		output.WriteString("\r")
		if col := cellsWidth(buf.Cells[:i]); col > 0 {
			fmt.Fprintf(output, "\033[%dC", col)
		}
		for _, c := range buf.Cells[i:] {
			output.WriteString(c.Text)
		}
		// Erase any leftover from the previous content.
		output.WriteString("\033[K")
	}

	// Position the dot, using absolute movement from the start of the line.
	output.WriteString("\r")
	if buf.Dot > 0 {
		fmt.Fprintf(output, "\033[%dC", buf.Dot)
	}
	output.WriteString(showCursor)

	_, err := w.file.Write(output.Bytes())
	if err == nil {
		w.curBuf = buf
	}
	return err
}

func (w *writer) ClearScreen() {
	w.file.Write([]byte("\033[H\033[2J"))
	w.ResetBuffer()
}
