package term

import "os"

// Setup sets up the terminal so that the line editor can use it. It returns
// a function that can be used to restore the previous terminal config, which
// must be called on every exit path so that the user is not left with a
// terminal in raw mode.
func Setup(in, out *os.File) (func() error, error) {
	return setup(in, out)
}
