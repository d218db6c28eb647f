package intcode

import "testing"

func TestLineRoundTrip(t *testing.T) {
	m := New(identity)
	AddLine(m, "WALK")

	line, ok := ReadLine(m)
	if !ok || line != "WALK" {
		t.Fatalf("ReadLine = %q, %v; want %q, true", line, ok, "WALK")
	}
	line, ok = ReadLine(m)
	if ok || line != "" {
		t.Errorf("ReadLine = %q, %v; want empty, false", line, ok)
	}
}

func TestReadStringStopsAtInput(t *testing.T) {
	// Prints "ok\n" then waits for a command.
	m := New([]int64{104, 111, 104, 107, 104, 10, 3, 20, 99})
	if got := ReadString(m); got != "ok\n" {
		t.Fatalf("ReadString = %q", got)
	}
	if m.Halted() {
		t.Fatal("machine halted early")
	}
	AddLine(m, "")
	if got := ReadString(m); got != "" || !m.Halted() {
		t.Errorf("ReadString = %q halted=%v", got, m.Halted())
	}
}

func TestReadLineHalts(t *testing.T) {
	m := New([]int64{104, 65, 99})
	line, ok := ReadLine(m)
	if ok || line != "A" || !m.Halted() {
		t.Errorf("ReadLine = %q, %v halted=%v", line, ok, m.Halted())
	}
}

func TestASCIIThroughChain(t *testing.T) {
	p := identityPipeline(3)
	AddLine(p, "NOT J J")
	if got := ReadString(p); got != "NOT J J\n" {
		t.Errorf("ReadString = %q", got)
	}
}
