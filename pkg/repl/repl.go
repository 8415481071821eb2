// Package repl implements the main gline subprogram, a REPL that reads lines
// with the editor and echoes them back.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gline-sh/gline/pkg/edit"
	"github.com/gline-sh/gline/pkg/histutil"
	"github.com/gline-sh/gline/pkg/logutil"
	"github.com/gline-sh/gline/pkg/prog"
	"github.com/gline-sh/gline/pkg/store"
	"github.com/gline-sh/gline/pkg/sys"
)

var logger = logutil.GetLogger("[repl] ")

// Program is the REPL subprogram. It accepts any invocation not claimed by an
// earlier subprogram in the composite.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not accepted")
	}

	cfg := loadConfig(fds, f)

	if !sys.IsATTY(fds[0]) {
		return interactPlain(fds)
	}

	db, hs := setupStore(fds, f, cfg)
	if db != nil {
		defer db.Close()
	}

	ed, err := edit.NewEditor(fds[0], fds[1], fds[2], hs, cfg)
	if err != nil {
		return err
	}
	return interact(fds, ed, db, cfg.History.MaxEntries)
}

func loadConfig(fds [3]*os.File, f *prog.Flags) edit.Config {
	if f.NoRC {
		return edit.DefaultConfig()
	}
	path := f.RC
	if path == "" {
		p, err := edit.DefaultConfigPath()
		if err != nil {
			logger.Println("cannot determine config path:", err)
			return edit.DefaultConfig()
		}
		path = p
	}
	cfg, err := edit.LoadConfig(path)
	if err != nil {
		// LoadConfig falls back to the defaults on error.
		fmt.Fprintln(fds[2], "gline:", err)
	}
	return cfg
}

// Opens the history database if one is configured and fuses the session
// history on top of it. Database trouble degrades to in-memory history.
func setupStore(fds [3]*os.File, f *prog.Flags, cfg edit.Config) (store.Store, histutil.Store) {
	path := f.DB
	if path == "" {
		path = cfg.History.File
	}
	if path == "" {
		return nil, histutil.NewMemStore()
	}
	db, err := store.NewStore(path)
	if err != nil {
		fmt.Fprintln(fds[2], "gline: cannot open history database:", err)
		return nil, histutil.NewMemStore()
	}
	hs, err := histutil.NewFuser(db)
	if err != nil {
		fmt.Fprintln(fds[2], "gline: cannot read history database:", err)
		db.Close()
		return nil, histutil.NewMemStore()
	}
	return db, hs
}

func interact(fds [3]*os.File, ed *edit.Editor, db store.Store, maxEntries int) error {
	for {
		line, err := ed.ReadLine()
		switch err {
		case nil:
			fmt.Fprintln(fds[1], line)
			cull(db, maxEntries)
		case edit.ErrInterrupted:
			// Discard the line and prompt anew.
		case io.EOF:
			return nil
		default:
			return err
		}
	}
}

// Enforces the history cap after each appended line.
func cull(db store.Store, maxEntries int) {
	if db == nil || maxEntries <= 0 {
		return
	}
	if err := db.CullCmds(maxEntries); err != nil {
		logger.Println("failed to cull history:", err)
	}
}

// Echoes lines from a non-terminal input, with no editing or history.
func interactPlain(fds [3]*os.File) error {
	scanner := bufio.NewScanner(fds[0])
	for scanner.Scan() {
		fmt.Fprintln(fds[1], scanner.Text())
	}
	return scanner.Err()
}
