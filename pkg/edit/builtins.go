package edit

import (
	"github.com/gline-sh/gline/pkg/ui"
)

const defaultPrompt = "> "

// Named editor functions. Configuration binds keys to these names.
var builtins = map[string]func(*Editor) action{
	"move-dot-left":  (*Editor).moveDotLeft,
	"move-dot-right": (*Editor).moveDotRight,
	"move-dot-sol":   (*Editor).moveDotSOL,
	"move-dot-eol":   (*Editor).moveDotEOL,

	"kill-rune-left":  (*Editor).killRuneLeft,
	"kill-rune-right": (*Editor).killRuneRight,
	"kill-line-left":  (*Editor).killLineLeft,
	"kill-line-right": (*Editor).killLineRight,
	"kill-word-left":  (*Editor).killWordLeft,

	"history-up":   (*Editor).historyUp,
	"history-down": (*Editor).historyDown,

	"return-line":  (*Editor).returnLine,
	"return-eof":   (*Editor).returnEOF,
	"interrupt":    (*Editor).interrupt,
	"clear-screen": (*Editor).clearScreen,
}

var defaultBindings = map[ui.Key]string{
	ui.K(ui.Left):      "move-dot-left",
	ui.K('B', ui.Ctrl): "move-dot-left",
	ui.K(ui.Right):     "move-dot-right",
	ui.K('F', ui.Ctrl): "move-dot-right",
	ui.K(ui.Home):      "move-dot-sol",
	ui.K('A', ui.Ctrl): "move-dot-sol",
	ui.K(ui.End):       "move-dot-eol",
	ui.K('E', ui.Ctrl): "move-dot-eol",

	ui.K(ui.Backspace): "kill-rune-left",
	ui.K(ui.Delete):    "kill-rune-right",
	ui.K('U', ui.Ctrl): "kill-line-left",
	ui.K('K', ui.Ctrl): "kill-line-right",
	ui.K('W', ui.Ctrl): "kill-word-left",

	ui.K(ui.Up):        "history-up",
	ui.K('P', ui.Ctrl): "history-up",
	ui.K(ui.Down):      "history-down",
	ui.K('N', ui.Ctrl): "history-down",

	ui.K(ui.Enter):     "return-line",
	ui.K('D', ui.Ctrl): "return-eof",
	ui.K('C', ui.Ctrl): "interrupt",
	ui.K('L', ui.Ctrl): "clear-screen",
}

func (ed *Editor) moveDotLeft() action {
	ed.buffer.Dot = moveDotLeft(ed.buffer.Content, ed.buffer.Dot)
	return noAction
}

func (ed *Editor) moveDotRight() action {
	ed.buffer.Dot = moveDotRight(ed.buffer.Content, ed.buffer.Dot)
	return noAction
}

func (ed *Editor) moveDotSOL() action {
	ed.buffer.Dot = moveDotSOL(ed.buffer.Content, ed.buffer.Dot)
	return noAction
}

func (ed *Editor) moveDotEOL() action {
	ed.buffer.Dot = moveDotEOL(ed.buffer.Content, ed.buffer.Dot)
	return noAction
}

func (ed *Editor) killRuneLeft() action {
	ed.kill(killRuneLeft)
	return noAction
}

func (ed *Editor) killRuneRight() action {
	ed.kill(killRuneRight)
	return noAction
}

func (ed *Editor) killLineLeft() action {
	ed.kill(killLineLeft)
	return noAction
}

func (ed *Editor) killLineRight() action {
	ed.kill(killLineRight)
	return noAction
}

func (ed *Editor) killWordLeft() action {
	ed.kill(killWordLeft)
	return noAction
}

// Applies a kill operation to the buffer. Like insertion, a kill ends any
// history browsing.
func (ed *Editor) kill(f func(string, int) (string, int)) {
	ed.walker = nil
	ed.buffer.Content, ed.buffer.Dot = f(ed.buffer.Content, ed.buffer.Dot)
}

func (ed *Editor) returnLine() action {
	return actionReturnLine
}

// Ends the input stream if the buffer is empty; otherwise behaves like
// kill-rune-right, following the usual terminal convention for Ctrl-D.
func (ed *Editor) returnEOF() action {
	if ed.buffer.Content == "" {
		return actionReturnEOF
	}
	return ed.killRuneRight()
}

func (ed *Editor) interrupt() action {
	return actionInterrupt
}

func (ed *Editor) clearScreen() action {
	if ed.writer != nil {
		ed.writer.ClearScreen()
	}
	return noAction
}
