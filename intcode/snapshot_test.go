package intcode

import (
	"slices"
	"testing"

	"github.com/alecthomas/repr"
)

func TestSnapshotRoundTrip(t *testing.T) {
	program := []int64{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}
	m := New(program, 4, 5)
	for i := 0; i < 20; i++ {
		m.Step()
	}

	data, err := MarshalSnapshot(m.Snapshot())
	if err != nil {
		t.Fatalf("MarshalSnapshot: %v", err)
	}
	s, err := UnmarshalSnapshot(data)
	if err != nil {
		t.Fatalf("UnmarshalSnapshot: %v", err)
	}
	if s.PC != m.PC() || s.RelativeBase != m.RelativeBase() || !slices.Equal(s.Inputs, []int64{4, 5}) {
		t.Fatalf("snapshot = %s", repr.String(s))
	}

	restored := Restore(s)
	want := m.Run()
	got := restored.Run()
	if !slices.Equal(got, want) {
		t.Errorf("restored outputs = %v, want %v", got, want)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	m := New([]int64{1101, 1, 1, 0, 99})
	s := m.Snapshot()
	m.Run()
	if s.Memory[0] != 1101 || s.Halted {
		t.Errorf("snapshot changed with the machine: %s", repr.String(s))
	}

	r := Restore(s)
	r.Poke(4, 42)
	if s.Memory[4] != 99 {
		t.Error("restored machine aliases snapshot memory")
	}
}

func TestUnmarshalSnapshotGarbage(t *testing.T) {
	if _, err := UnmarshalSnapshot([]byte{0xff, 0x00}); err == nil {
		t.Error("expected error")
	}
}
