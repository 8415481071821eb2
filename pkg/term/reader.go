// Package term provides the terminal abstraction used by the line editor:
// raw-mode setup, decoding of input escape sequences into events, and
// rendering of the edited line.
package term

import (
	"errors"
	"fmt"
	"os"
)

// Reader reads events from the terminal.
type Reader interface {
	// ReadEvent reads a single event from the terminal.
	ReadEvent() (Event, error)
	// Close releases resources associated with the Reader. Any outstanding
	// ReadEvent call will be aborted, returning ErrStopped.
	Close()
}

// ErrStopped is returned by Reader when Close is called during a ReadEvent
// call.
var ErrStopped = errors.New("stopped")

var errTimeout = errors.New("timed out")

type seqError struct {
	msg string
	seq string
}

func (err seqError) Error() string {
	return fmt.Sprintf("%s: %q", err.msg, err.seq)
}

// NewReader creates a new Reader on the given terminal file.
func NewReader(f *os.File) (Reader, error) {
	return newReader(f)
}

// IsReadErrorRecoverable returns whether an error returned by Reader is
// recoverable.
func IsReadErrorRecoverable(err error) bool {
	if _, ok := err.(seqError); ok {
		return true
	}
	return err == ErrStopped || err == errTimeout
}
