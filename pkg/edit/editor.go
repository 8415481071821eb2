// Package edit implements a line editor with cursor movement and history
// cycling, for use in a REPL.
package edit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/gline-sh/gline/pkg/histutil"
	"github.com/gline-sh/gline/pkg/logutil"
	"github.com/gline-sh/gline/pkg/store"
	"github.com/gline-sh/gline/pkg/sys"
	"github.com/gline-sh/gline/pkg/term"
	"github.com/gline-sh/gline/pkg/ui"
)

var logger = logutil.GetLogger("[edit] ")

// ErrInterrupted is returned by ReadLine when the input is aborted with the
// interrupt key.
var ErrInterrupted = errors.New("interrupted")

// Editor reads lines from a terminal, with in-place editing and history
// cycling. It is not safe for concurrent use.
type Editor struct {
	in, out *os.File
	// Destination for non-fatal complaints, like a history database that
	// cannot be written to. May be nil.
	warn io.Writer

	prompt   string
	store    histutil.Store
	bindings map[ui.Key]func(*Editor) action

	// State of the current ReadLine call.
	buffer CodeBuffer
	walker *histWalk
	// Writer of the current ReadLine call, for builtins that draw directly,
	// like clear-screen.
	writer term.Writer
}

// NewEditor creates an Editor reading from in and writing to out. Non-fatal
// warnings are written to warn if it is not nil. The store may be nil, in
// which case history keys are no-ops.
func NewEditor(in, out *os.File, warn io.Writer, store histutil.Store, cfg Config) (*Editor, error) {
	bindings, err := cfg.bindings()
	if err != nil {
		return nil, err
	}
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = defaultPrompt
	}
	return &Editor{
		in: in, out: out, warn: warn,
		prompt: prompt, store: store, bindings: bindings,
	}, nil
}

// Action taken by a key handler, instructing the ReadLine loop how to
// proceed.
type action int

const (
	noAction action = iota
	// Submit the current buffer content.
	actionReturnLine
	// End the input stream.
	actionReturnEOF
	// Abort the current line.
	actionInterrupt
)

// ReadLine reads a single line from the terminal. It returns the line without
// the trailing newline on submission, ErrInterrupted when the input is
// aborted, and io.EOF when the input stream ends.
//
// When the input file is a terminal it is put into raw mode for the duration
// of the call, and restored on every return path.
func (ed *Editor) ReadLine() (string, error) {
	ed.reset()

	if sys.IsATTY(ed.in) {
		restore, err := term.Setup(ed.in, ed.out)
		if restore != nil {
			defer func() {
				if err := restore(); err != nil {
					logger.Println("failed to restore terminal:", err)
				}
			}()
		}
		if err != nil {
			return "", err
		}
	}

	reader, err := term.NewReader(ed.in)
	if err != nil {
		return "", err
	}
	defer reader.Close()

	w := term.NewWriter(ed.out)
	ed.writer = w
	if err := ed.redraw(w, false); err != nil {
		return "", err
	}

	for {
		event, err := reader.ReadEvent()
		if err != nil {
			if term.IsReadErrorRecoverable(err) {
				logger.Println("ignored input error:", err)
				continue
			}
			ed.out.WriteString("\n")
			return "", err
		}

		switch ed.handle(event) {
		case actionReturnLine:
			line := ed.buffer.Content
			// Leave the completed line on the screen with the dot at the
			// end, like a cooked-mode read would.
			ed.buffer.Dot = len(line)
			ed.redraw(w, false)
			ed.out.WriteString("\n")
			ed.appendHistory(line)
			return line, nil
		case actionReturnEOF:
			ed.out.WriteString("\n")
			return "", io.EOF
		case actionInterrupt:
			ed.out.WriteString("\n")
			return "", ErrInterrupted
		}

		if err := ed.redraw(w, false); err != nil {
			return "", err
		}
	}
}

func (ed *Editor) reset() {
	ed.buffer = CodeBuffer{}
	ed.walker = nil
}

// Handles a single terminal event. Unrecognized events are no-ops.
func (ed *Editor) handle(event term.Event) action {
	keyEvent, ok := event.(term.KeyEvent)
	if !ok {
		return noAction
	}
	k := ui.Key(keyEvent)
	if fn, ok := ed.bindings[k]; ok {
		return fn(ed)
	}
	if k.Mod == 0 && k.Rune > 0 && unicode.IsGraphic(k.Rune) {
		ed.insert(string(k.Rune))
	}
	return noAction
}

// Inserts text at the dot. Any history browsing ends, with the recalled text
// committed as the new in-progress line.
func (ed *Editor) insert(text string) {
	ed.walker = nil
	ed.buffer.InsertAtDot(text)
}

func (ed *Editor) redraw(w term.Writer, full bool) error {
	_, width := sys.WinSize(ed.out)
	if width <= 0 {
		width = 80
	}
	return w.UpdateBuffer(renderLine(ed.prompt, ed.buffer, width), full)
}

// Appends the line to the history store. Empty lines and lines equal to the
// newest entry are skipped. Store failures are reported but not fatal.
func (ed *Editor) appendHistory(line string) {
	if line == "" || ed.store == nil {
		return
	}
	cursor := ed.store.Cursor("")
	cursor.Prev()
	if cmd, err := cursor.Get(); err == nil && cmd.Text == line {
		return
	}
	if _, err := ed.store.AddCmd(store.Cmd{Text: line, Seq: -1}); err != nil {
		logger.Println("failed to save history:", err)
		if ed.warn != nil {
			fmt.Fprintln(ed.warn, "gline: cannot save history:", err)
		}
	}
}
