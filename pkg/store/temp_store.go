package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// MustTempStore returns a Store backed by a temporary file, and a cleanup
// function that should be called when the Store is no longer used. It is
// intended for use in tests.
func MustTempStore() (Store, func()) {
	dir, err := os.MkdirTemp("", "gline.test")
	if err != nil {
		panic(fmt.Sprintf("failed to create temp dir: %v", err))
	}
	st, err := NewStore(filepath.Join(dir, "db"))
	if err != nil {
		os.RemoveAll(dir)
		panic(fmt.Sprintf("failed to create Store instance: %v", err))
	}
	return st, func() {
		st.Close()
		err := os.RemoveAll(dir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to remove temp dir:", err)
		}
	}
}
