// Package histutil provides utilities for working with command history.
package histutil

import (
	"errors"

	"github.com/gline-sh/gline/pkg/store"
)

// ErrEndOfHistory is returned by Cursor.Get if the cursor is currently over
// the edge of the history.
var ErrEndOfHistory = errors.New("end of history")

// DB is the interface of the storage database.
type DB interface {
	NextCmdSeq() (int, error)
	AddCmd(text string) (int, error)
	CmdsWithSeq(from, upto int) ([]store.Cmd, error)
	NextCmd(from int, prefix string) (store.Cmd, error)
	PrevCmd(upto int, prefix string) (store.Cmd, error)
}

// Store is an abstract interface for the command history. It is directly
// implemented by an in-memory store, and by overlays of session history on
// top of a database.
type Store interface {
	// AllCmds returns all commands kept in the store.
	AllCmds() ([]store.Cmd, error)
	// AddCmd adds a new command to the store.
	AddCmd(cmd store.Cmd) (int, error)
	// Cursor returns a cursor iterating through commands with the given
	// prefix. The cursor is initially placed just after the last command in
	// the store.
	Cursor(prefix string) Cursor
}

// Cursor is a bidirectional iterator for commands.
type Cursor interface {
	// Prev moves the cursor to the previous command.
	Prev()
	// Next moves the cursor to the next command.
	Next()
	// Get returns the command the cursor is currently at, or ErrEndOfHistory
	// if the cursor is over either edge of the history.
	Get() (store.Cmd, error)
}
