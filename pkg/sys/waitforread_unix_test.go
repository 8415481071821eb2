//go:build unix

package sys

import (
	"os"
	"testing"
	"time"
)

func TestWaitForRead(t *testing.T) {
	r0, w0, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer closeAll(r0, w0)
	r1, w1, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer closeAll(r1, w1)

	w0.WriteString("x")
	ready, err := WaitForRead(time.Second, r0, r1)
	if err != nil {
		t.Fatalf("WaitForRead -> error %v, want nil", err)
	}
	if !ready[0] {
		t.Error("file 0 not ready, want ready")
	}
	if ready[1] {
		t.Error("file 1 ready, want not ready")
	}
}

func TestWaitForRead_Timeout(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer closeAll(r, w)

	ready, err := WaitForRead(time.Millisecond, r)
	if err != nil {
		t.Fatalf("WaitForRead -> error %v, want nil", err)
	}
	if ready[0] {
		t.Error("file ready, want not ready")
	}
}

func closeAll(files ...*os.File) {
	for _, file := range files {
		file.Close()
	}
}
