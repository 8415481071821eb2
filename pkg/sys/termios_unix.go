//go:build unix

package sys

import (
	"golang.org/x/sys/unix"
)

// Termios wraps the termios attributes of a terminal. The editor uses it to
// flip the terminal into raw mode and back.
type Termios unix.Termios

// NewTermiosFromFd extracts the terminal attributes of the given file
// descriptor.
func NewTermiosFromFd(fd int) (*Termios, error) {
	tio, err := unix.IoctlGetTermios(fd, getAttrIOCTL)
	if err != nil {
		return nil, err
	}
	return (*Termios)(tio), nil
}

// ApplyToFd applies the attributes to the given file descriptor.
func (term *Termios) ApplyToFd(fd int) error {
	return unix.IoctlSetTermios(fd, setAttrNowIOCTL, (*unix.Termios)(term))
}

// Copy returns a copy of the attributes.
func (term *Termios) Copy() *Termios {
	v := *term
	return &v
}

// SetVMin sets the minimal number of characters for noncanonical read.
func (term *Termios) SetVMin(v uint8) {
	term.Cc[unix.VMIN] = v
}

// SetVTime sets the timeout in deciseconds for noncanonical read.
func (term *Termios) SetVTime(v uint8) {
	term.Cc[unix.VTIME] = v
}

// SetICanon sets the canonical flag.
func (term *Termios) SetICanon(v bool) {
	setFlag(&term.Lflag, unix.ICANON, v)
}

// SetEcho sets the echo flag.
func (term *Termios) SetEcho(v bool) {
	setFlag(&term.Lflag, unix.ECHO, v)
}

// SetICRNL sets the CR-to-NL translation flag on input.
func (term *Termios) SetICRNL(v bool) {
	setFlag(&term.Iflag, unix.ICRNL, v)
}

// The widths of the termios flag fields differ across OSes, hence the type
// parameter.
func setFlag[T ~uint32 | ~uint64](flag *T, mask T, v bool) {
	if v {
		*flag |= mask
	} else {
		*flag &= ^mask
	}
}
