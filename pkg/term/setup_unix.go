//go:build unix

package term

import (
	"fmt"
	"os"

	"github.com/gline-sh/gline/pkg/sys"
)

func setup(in, out *os.File) (func() error, error) {
	// On Unix, use the input file for changing termios. All fds pointing to
	// the same terminal are equivalent.

	fd := int(in.Fd())
	tio, err := sys.NewTermiosFromFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't get terminal attribute: %w", err)
	}

	savedTermios := tio.Copy()

	tio.SetICanon(false)
	tio.SetEcho(false)
	tio.SetVMin(1)
	tio.SetVTime(0)

	// Enforcing crnl translation on readline. Assuming user won't set inlcr
	// or -onlcr, otherwise we have to hardcode all of them here.
	tio.SetICRNL(true)

	err = tio.ApplyToFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't set up terminal attribute: %w", err)
	}

	restore := func() error {
		return savedTermios.ApplyToFd(fd)
	}
	return restore, nil
}
