package histutil

import (
	"testing"

	"github.com/gline-sh/gline/pkg/store"
)

func TestMemStore_Cursor(t *testing.T) {
	s := NewMemStore("ls", "echo", "ls -l")
	testCursorIteration(t, s.Cursor(""), []store.Cmd{
		{Text: "ls", Seq: 0}, {Text: "echo", Seq: 1}, {Text: "ls -l", Seq: 2},
	})
}

func TestMemStore_Cursor_Prefix(t *testing.T) {
	s := NewMemStore("ls", "echo", "ls -l")
	testCursorIteration(t, s.Cursor("ls"), []store.Cmd{
		{Text: "ls", Seq: 0}, {Text: "ls -l", Seq: 2},
	})
}

func TestMemStore_AddCmd(t *testing.T) {
	s := NewMemStore()
	s.AddCmd(store.Cmd{Text: "ls", Seq: -1})
	cmds, err := s.AllCmds()
	if err != nil {
		t.Errorf("AllCmds -> error %v, want nil", err)
	}
	if len(cmds) != 1 || cmds[0].Text != "ls" {
		t.Errorf("AllCmds -> %v, want one command with text ls", cmds)
	}
}

// Iterates the cursor to both edges and back, verifying the commands seen.
func testCursorIteration(t *testing.T, c Cursor, wantCmds []store.Cmd) {
	t.Helper()
	if _, err := c.Get(); err != ErrEndOfHistory {
		t.Errorf("Get at initial position -> error %v, want ErrEndOfHistory", err)
	}
	for i := len(wantCmds) - 1; i >= 0; i-- {
		c.Prev()
		if cmd, err := c.Get(); cmd != wantCmds[i] || err != nil {
			t.Errorf("Get -> (%v, %v), want (%v, nil)", cmd, err, wantCmds[i])
		}
	}
	c.Prev()
	if _, err := c.Get(); err != ErrEndOfHistory {
		t.Errorf("Get before oldest -> error %v, want ErrEndOfHistory", err)
	}
	for i := 0; i < len(wantCmds); i++ {
		c.Next()
		if cmd, err := c.Get(); cmd != wantCmds[i] || err != nil {
			t.Errorf("Get -> (%v, %v), want (%v, nil)", cmd, err, wantCmds[i])
		}
	}
	c.Next()
	if _, err := c.Get(); err != ErrEndOfHistory {
		t.Errorf("Get after newest -> error %v, want ErrEndOfHistory", err)
	}
}
