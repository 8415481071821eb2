package logutil

import (
	"strings"
	"testing"
)

func TestGetLogger(t *testing.T) {
	logger := GetLogger("[test] ")
	// Discarded by default.
	logger.Println("to be discarded")

	var sb strings.Builder
	SetOutput(&sb)
	logger.Println("hello")
	if s := sb.String(); !strings.Contains(s, "[test] ") || !strings.Contains(s, "hello") {
		t.Errorf("log output %q, want prefix and message", s)
	}

	// New loggers pick up the current output.
	logger2 := GetLogger("[test2] ")
	logger2.Println("world")
	if s := sb.String(); !strings.Contains(s, "[test2] ") || !strings.Contains(s, "world") {
		t.Errorf("log output %q, want output from second logger", s)
	}

	SetOutputFile("")
	logger.Println("discarded again")
	if s := sb.String(); strings.Contains(s, "discarded again") {
		t.Errorf("log output %q contains message written after reset", s)
	}
}
