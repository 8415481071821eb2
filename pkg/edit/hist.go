package edit

import (
	"github.com/gline-sh/gline/pkg/histutil"
)

// histWalk keeps the state of an active history browse: the cursor into the
// history store, and the in-progress line saved when browsing began.
type histWalk struct {
	cursor  histutil.Cursor
	pending string
}

// Recalls the previous (older) history entry. On the first call the
// in-progress line is saved so that walking past the newest entry restores
// it. Walking past the oldest entry clamps there.
func (ed *Editor) historyUp() action {
	if ed.store == nil {
		return noAction
	}
	first := false
	if ed.walker == nil {
		ed.walker = &histWalk{ed.store.Cursor(""), ed.buffer.Content}
		first = true
	}
	ed.walker.cursor.Prev()
	cmd, err := ed.walker.cursor.Get()
	if err == histutil.ErrEndOfHistory {
		// Already at the oldest entry; undo the move.
		ed.walker.cursor.Next()
		cmd, err = ed.walker.cursor.Get()
		if err != nil {
			// The history is empty.
			if first {
				ed.walker = nil
			}
			return noAction
		}
	} else if err != nil {
		logger.Println("failed to read history:", err)
		if first {
			ed.walker = nil
		}
		return noAction
	}
	ed.buffer = CodeBuffer{Content: cmd.Text, Dot: len(cmd.Text)}
	return noAction
}

// Recalls the next (newer) history entry. Past the newest entry, the saved
// in-progress line is restored and browsing ends.
func (ed *Editor) historyDown() action {
	if ed.walker == nil {
		return noAction
	}
	ed.walker.cursor.Next()
	cmd, err := ed.walker.cursor.Get()
	if err != nil {
		if err != histutil.ErrEndOfHistory {
			logger.Println("failed to read history:", err)
		}
		pending := ed.walker.pending
		ed.walker = nil
		ed.buffer = CodeBuffer{Content: pending, Dot: len(pending)}
		return noAction
	}
	ed.buffer = CodeBuffer{Content: cmd.Text, Dot: len(cmd.Text)}
	return noAction
}
