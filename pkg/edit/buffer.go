package edit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CodeBuffer represents the line being edited.
type CodeBuffer struct {
	// Content of the buffer.
	Content string
	// Position of the dot (more commonly known as the cursor), as a byte
	// index into Content. Always on a rune boundary.
	Dot int
}

// InsertAtDot inserts text at the dot and places the dot after it.
func (c *CodeBuffer) InsertAtDot(text string) {
	*c = CodeBuffer{
		Content: c.Content[:c.Dot] + text + c.Content[c.Dot:],
		Dot:     c.Dot + len(text),
	}
}

// The following pure functions express dot motions and kill operations on
// (content, dot) pairs. Builtins are thin wrappers around them.

func moveDotLeft(buffer string, dot int) int {
	_, w := utf8.DecodeLastRuneInString(buffer[:dot])
	return dot - w
}

func moveDotRight(buffer string, dot int) int {
	_, w := utf8.DecodeRuneInString(buffer[dot:])
	return dot + w
}

func moveDotSOL(buffer string, dot int) int {
	return 0
}

func moveDotEOL(buffer string, dot int) int {
	return len(buffer)
}

// Moves the dot to the beginning of the word it is in or after.
func moveDotLeftWord(buffer string, dot int) int {
	left := strings.TrimRightFunc(buffer[:dot], unicode.IsSpace)
	i := strings.LastIndexFunc(left, unicode.IsSpace)
	return i + 1
}

func killRuneLeft(buffer string, dot int) (string, int) {
	if dot == 0 {
		return buffer, dot
	}
	newDot := moveDotLeft(buffer, dot)
	return buffer[:newDot] + buffer[dot:], newDot
}

func killRuneRight(buffer string, dot int) (string, int) {
	if dot == len(buffer) {
		return buffer, dot
	}
	return buffer[:dot] + buffer[moveDotRight(buffer, dot):], dot
}

func killLineLeft(buffer string, dot int) (string, int) {
	return buffer[dot:], 0
}

func killLineRight(buffer string, dot int) (string, int) {
	return buffer[:dot], dot
}

func killWordLeft(buffer string, dot int) (string, int) {
	newDot := moveDotLeftWord(buffer, dot)
	return buffer[:newDot] + buffer[dot:], newDot
}
