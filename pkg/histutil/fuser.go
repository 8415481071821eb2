package histutil

import (
	"sync"

	"github.com/gline-sh/gline/pkg/store"
)

// NewFuser returns a Store that fuses an in-memory session history on top of
// the database. Commands added during the session are appended to both, so
// cycling through history sees the session's own commands first, then the
// shared ones that existed when the session started.
func NewFuser(db DB) (Store, error) {
	shared, err := NewDBStore(db)
	if err != nil {
		return nil, err
	}
	return &fuser{shared: shared, session: NewMemStore()}, nil
}

type fuser struct {
	mutex sync.RWMutex

	shared  Store
	session Store
}

func (f *fuser) AllCmds() ([]store.Cmd, error) {
	f.mutex.RLock()
	defer f.mutex.RUnlock()

	cmds, err := f.shared.AllCmds()
	if err != nil {
		return nil, err
	}
	sessionCmds, err := f.session.AllCmds()
	if err != nil {
		return nil, err
	}
	return append(cmds, sessionCmds...), nil
}

func (f *fuser) AddCmd(cmd store.Cmd) (int, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	seq, err := f.shared.AddCmd(store.Cmd{Text: cmd.Text})
	if err != nil {
		return -1, err
	}
	f.session.AddCmd(store.Cmd{Text: cmd.Text, Seq: seq})
	return seq, nil
}

func (f *fuser) Cursor(prefix string) Cursor {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	return &fuserCursor{
		f.shared.Cursor(prefix), f.session.Cursor(prefix), false}
}

type fuserCursor struct {
	shared  Cursor
	session Cursor
	// Whether the cursor is currently in the shared part.
	inShared bool
}

func (c *fuserCursor) Prev() {
	if c.inShared {
		c.shared.Prev()
		return
	}
	c.session.Prev()
	if _, err := c.session.Get(); err == ErrEndOfHistory {
		// Ran out of session history; switch to the shared part.
		c.inShared = true
		c.shared.Prev()
	}
}

func (c *fuserCursor) Next() {
	if !c.inShared {
		c.session.Next()
		return
	}
	c.shared.Next()
	if _, err := c.shared.Get(); err == ErrEndOfHistory {
		// Past the newest shared command; continue in the session part.
		c.inShared = false
		c.session.Next()
	}
}

func (c *fuserCursor) Get() (store.Cmd, error) {
	if c.inShared {
		return c.shared.Get()
	}
	return c.session.Get()
}
