package prog

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/gline-sh/gline/pkg/must"
)

type testProgram struct {
	notSuitable bool
	run         func(fds [3]*os.File, f *Flags, args []string) error
}

func (p testProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	if p.notSuitable {
		return ErrNotSuitable
	}
	if p.run != nil {
		return p.run(fds, f, args)
	}
	fds[1].WriteString("program run\n")
	return nil
}

func TestRun(t *testing.T) {
	exit, stdout, _ := run(testProgram{}, "gline")
	if exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
	if stdout != "program run\n" {
		t.Errorf("stdout = %q, want %q", stdout, "program run\n")
	}
}

func TestRun_Help(t *testing.T) {
	exit, stdout, _ := run(testProgram{}, "gline", "-help")
	if exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
	if !strings.Contains(stdout, "Usage: gline") {
		t.Errorf("stdout = %q, want usage text", stdout)
	}
}

func TestRun_BadFlag(t *testing.T) {
	exit, _, stderr := run(testProgram{}, "gline", "-bad-flag")
	if exit != 2 {
		t.Errorf("exit = %d, want 2", exit)
	}
	if !strings.Contains(stderr, "Usage: gline") {
		t.Errorf("stderr = %q, want usage text", stderr)
	}
}

func TestRun_DashH(t *testing.T) {
	exit, _, stderr := run(testProgram{}, "gline", "-h")
	if exit != 2 {
		t.Errorf("exit = %d, want 2", exit)
	}
	if !strings.Contains(stderr, "flag provided but not defined: -h") {
		t.Errorf("stderr = %q, want message about -h", stderr)
	}
}

func TestRun_BadUsage(t *testing.T) {
	p := testProgram{run: func([3]*os.File, *Flags, []string) error {
		return BadUsage("lorem ipsum")
	}}
	exit, _, stderr := run(p, "gline")
	if exit != 2 {
		t.Errorf("exit = %d, want 2", exit)
	}
	if !strings.Contains(stderr, "lorem ipsum") || !strings.Contains(stderr, "Usage: gline") {
		t.Errorf("stderr = %q, want message and usage text", stderr)
	}
}

func TestRun_Exit(t *testing.T) {
	p := testProgram{run: func([3]*os.File, *Flags, []string) error {
		return Exit(3)
	}}
	exit, _, stderr := run(p, "gline")
	if exit != 3 {
		t.Errorf("exit = %d, want 3", exit)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}

func TestRun_Exit0(t *testing.T) {
	p := testProgram{run: func([3]*os.File, *Flags, []string) error {
		return Exit(0)
	}}
	if exit, _, _ := run(p, "gline"); exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
}

func TestRun_Error(t *testing.T) {
	p := testProgram{run: func([3]*os.File, *Flags, []string) error {
		return errors.New("some error")
	}}
	exit, _, stderr := run(p, "gline")
	if exit != 2 {
		t.Errorf("exit = %d, want 2", exit)
	}
	if !strings.Contains(stderr, "some error") {
		t.Errorf("stderr = %q, want error message", stderr)
	}
}

func TestComposite(t *testing.T) {
	p := Composite(testProgram{notSuitable: true}, testProgram{})
	exit, stdout, _ := run(p, "gline")
	if exit != 0 || stdout != "program run\n" {
		t.Errorf("run -> (%d, %q), want (0, %q)", exit, stdout, "program run\n")
	}
}

func TestComposite_NoSuitable(t *testing.T) {
	p := Composite(testProgram{notSuitable: true}, testProgram{notSuitable: true})
	exit, _, stderr := run(p, "gline")
	if exit != 2 {
		t.Errorf("exit = %d, want 2", exit)
	}
	if !strings.Contains(stderr, "internal error") {
		t.Errorf("stderr = %q, want internal error message", stderr)
	}
}

func TestFlags(t *testing.T) {
	var got *Flags
	p := testProgram{run: func(fds [3]*os.File, f *Flags, args []string) error {
		got = f
		return nil
	}}
	exit, _, _ := run(p, "gline", "-norc", "-rc", "/rc.yaml", "-db", "/hist.db")
	if exit != 0 {
		t.Fatalf("exit = %d, want 0", exit)
	}
	if !got.NoRC || got.RC != "/rc.yaml" || got.DB != "/hist.db" {
		t.Errorf("flags = %+v, want NoRC, RC and DB set", got)
	}
}

func run(p Program, args ...string) (exit int, stdout, stderr string) {
	devNull := must.OK1(os.Open(os.DevNull))
	defer devNull.Close()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	exit = Run([3]*os.File{devNull, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	stdout = string(must.OK1(io.ReadAll(r1)))
	stderr = string(must.OK1(io.ReadAll(r2)))
	r1.Close()
	r2.Close()
	return exit, stdout, stderr
}
