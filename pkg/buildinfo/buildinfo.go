// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X github.com/gline-sh/gline/pkg/buildinfo.Var=value" to
// "go build".
package buildinfo

import (
	"fmt"
	"os"
	"runtime"

	"github.com/gline-sh/gline/pkg/prog"
)

// Version identifies the version of gline. On development commits, it
// identifies the next release.
const Version = "v0.1.0"

// VersionSuffix is appended to Version in the output of "gline -version" to
// build the full version string. This can be overridden when building.
var VersionSuffix = "-dev.unknown"

// Program is the version subprogram.
var Program prog.Program = program{}

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.Version {
		return prog.ErrNotSuitable
	}
	fmt.Fprintln(fds[1], Version+VersionSuffix)
	fmt.Fprintln(fds[1], "Go version:", runtime.Version())
	return nil
}
