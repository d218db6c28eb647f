package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"hadydotai/intcode/intcode"
)

func TestParseSet(t *testing.T) {
	tests := []struct {
		in    string
		addr  int64
		value int64
		ok    bool
	}{
		{"1=12", 1, 12, true},
		{" 2 = -7 ", 2, -7, true},
		{"0=1125899906842624", 0, 1125899906842624, true},
		{"12", 0, 0, false},
		{"-1=3", 0, 0, false},
		{"a=3", 0, 0, false},
		{"3=b", 0, 0, false},
	}
	for _, tt := range tests {
		addr, value, err := parseSet(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("parseSet(%q) err = %v", tt.in, err)
			continue
		}
		if tt.ok && (addr != tt.addr || value != tt.value) {
			t.Errorf("parseSet(%q) = %d, %d", tt.in, addr, value)
		}
	}
}

func TestProgramArgsLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.ic")
	if err := os.WriteFile(path, []byte("1,0,0,0,99\n"), 0644); err != nil {
		t.Fatal(err)
	}

	a := ProgramArgs{Sets: []string{"1=4", "2=4", "7=5"}}
	program, err := a.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []int64{1, 4, 4, 0, 99, 0, 0, 5}
	if !slices.Equal(program, want) {
		t.Errorf("program = %v, want %v", program, want)
	}

	a.Sets = []string{"nope"}
	if _, err := a.Load(path); err == nil {
		t.Error("expected error for bad --set")
	}
}

func TestRunNumeric(t *testing.T) {
	var out bytes.Buffer
	m := intcode.New([]int64{3, 9, 4, 9, 104, -3, 99, 0, 0, 0}, 11)
	if err := runNumeric(m, &out); err != nil {
		t.Fatalf("runNumeric: %v", err)
	}
	if got := out.String(); got != "11\n-3\n" {
		t.Errorf("output = %q", got)
	}

	if err := runNumeric(intcode.New([]int64{3, 0, 99}), &out); err == nil {
		t.Error("expected error when input runs out")
	}
}

func TestGuard(t *testing.T) {
	err := guard(func() error {
		intcode.New([]int64{42}).Run()
		return nil
	})
	var f *intcode.Fault
	if !errors.As(err, &f) || f.Kind != intcode.FaultUnknownOpcode {
		t.Errorf("guard = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("non-fault panics should propagate")
		}
	}()
	guard(func() error { panic("boom") })
}

func TestCompleter(t *testing.T) {
	got, n := completer{}.Do([]rune("con"), 3)
	if n != 3 || len(got) != 1 || string(got[0]) != "tinue" {
		t.Errorf("Do = %q, %d", got, n)
	}
}
