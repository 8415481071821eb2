// Gline is a raw-mode terminal line editor with cursor movement and history
// cycling, wrapped in a demo REPL that echoes every submitted line.
package main

import (
	"os"

	"github.com/gline-sh/gline/pkg/buildinfo"
	"github.com/gline-sh/gline/pkg/prog"
	"github.com/gline-sh/gline/pkg/repl"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, repl.Program{})))
}
