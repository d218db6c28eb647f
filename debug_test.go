package main

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"hadydotai/intcode/config"
	"hadydotai/intcode/intcode"
)

func newTestSession(t *testing.T, program ...int64) *REPL {
	t.Helper()
	cfg = config.Default()
	return newSession(intcode.New(program))
}

func send(r *REPL, line string) {
	r.dispatch(strings.Fields(line), line)
}

func TestDebuggerStepAndBack(t *testing.T) {
	r := newTestSession(t, 1101, 1, 1, 0, 99)
	send(r, "step")
	if r.vm.PC() != 4 || r.vm.Peek(0) != 2 {
		t.Fatalf("after step pc=%d cell0=%d", r.vm.PC(), r.vm.Peek(0))
	}
	send(r, "back")
	if r.vm.PC() != 0 || r.vm.Peek(0) != 1101 || len(r.history) != 0 {
		t.Errorf("after back pc=%d cell0=%d history=%d", r.vm.PC(), r.vm.Peek(0), len(r.history))
	}
	send(r, "back")
	if r.vm.PC() != 0 {
		t.Errorf("back past the oldest state moved pc to %d", r.vm.PC())
	}
}

func TestDebuggerSurvivesFaults(t *testing.T) {
	r := newTestSession(t, 1101, 1, 1, 0, 42)
	send(r, "step")
	send(r, "step")
	if len(r.history) != 1 || r.vm.PC() != 4 {
		t.Fatalf("faulting step was recorded: history=%d pc=%d", len(r.history), r.vm.PC())
	}
	send(r, "back")
	if r.vm.PC() != 0 {
		t.Errorf("back after fault: pc=%d, want 0", r.vm.PC())
	}

	send(r, "mem 4611686018427387904 1")
	send(r, "pc")
	send(r, "bogus")
}

func TestDebuggerNegativeJump(t *testing.T) {
	r := newTestSession(t, 1105, 1, -4)
	send(r, "step")
	if r.vm.PC() != -4 {
		t.Fatalf("pc=%d, want -4", r.vm.PC())
	}
	send(r, "dis")
	send(r, "pc")
	send(r, "step")
	if r.vm.PC() != -4 || len(r.history) != 1 {
		t.Errorf("pc=%d history=%d", r.vm.PC(), len(r.history))
	}
}

func TestDebuggerContinueAndBreakpoints(t *testing.T) {
	r := newTestSession(t, 104, 1, 104, 2, 99)
	send(r, "break 2")
	send(r, "continue")
	if r.vm.PC() != 2 || !slices.Equal(r.outputs, []int64{1}) {
		t.Fatalf("stopped at pc=%d outputs=%v", r.vm.PC(), r.outputs)
	}
	send(r, "continue")
	if !r.vm.Halted() || !slices.Equal(r.outputs, []int64{1, 2}) {
		t.Fatalf("halted=%v outputs=%v", r.vm.Halted(), r.outputs)
	}

	send(r, "restart")
	if r.vm.Halted() || r.vm.PC() != 0 || len(r.outputs) != 0 || len(r.history) != 0 {
		t.Errorf("restart left halted=%v pc=%d outputs=%v history=%d",
			r.vm.Halted(), r.vm.PC(), r.outputs, len(r.history))
	}
}

func TestDebuggerInput(t *testing.T) {
	r := newTestSession(t, 3, 0, 99)
	send(r, "continue")
	if r.vm.PC() != 0 || r.vm.Halted() {
		t.Fatalf("continue did not stop for input: pc=%d", r.vm.PC())
	}
	send(r, "input 5 6")
	send(r, "line hi there")
	if n := r.vm.Pending(); n != 2+len("hi there\n") {
		t.Fatalf("pending = %d", n)
	}
	send(r, "step")
	if r.vm.Peek(0) != 5 {
		t.Errorf("cell 0 = %d, want 5", r.vm.Peek(0))
	}
}

func TestDebuggerSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine.cbor")
	r := newTestSession(t, 109, 3, 1101, 2, 3, 9, 99, 0, 0, 0)
	send(r, "step")
	send(r, "step")
	send(r, "save "+path)

	send(r, "restart")
	if r.vm.PC() != 0 {
		t.Fatalf("restart: pc=%d", r.vm.PC())
	}
	send(r, "load "+path)
	if r.vm.PC() != 6 || r.vm.RelativeBase() != 3 || r.vm.Peek(9) != 5 {
		t.Errorf("loaded pc=%d rb=%d cell9=%d", r.vm.PC(), r.vm.RelativeBase(), r.vm.Peek(9))
	}

	send(r, "load "+filepath.Join(t.TempDir(), "missing.cbor"))
	if r.vm.PC() != 6 {
		t.Errorf("failed load replaced the machine: pc=%d", r.vm.PC())
	}
}
