package intcode

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Snapshot is a deep copy of a Machine's state.
type Snapshot struct {
	PC           int64   `cbor:"pc"`
	RelativeBase int64   `cbor:"base"`
	Halted       bool    `cbor:"halted"`
	Memory       []int64 `cbor:"memory"`
	Inputs       []int64 `cbor:"inputs"`
}

var snapshotEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("intcode: failed to create CBOR enc mode: %v", err))
	}
	snapshotEncMode = em
}

func (m *Machine) Snapshot() *Snapshot {
	return &Snapshot{
		PC:           m.pc,
		RelativeBase: m.base,
		Halted:       m.halted,
		Memory:       m.Program(),
		Inputs:       append([]int64(nil), m.input...),
	}
}

// Restore builds a Machine from a snapshot. The snapshot is not retained.
func Restore(s *Snapshot) *Machine {
	m := New(s.Memory, s.Inputs...)
	m.pc = s.PC
	m.base = s.RelativeBase
	m.halted = s.Halted
	return m
}

// MarshalSnapshot serializes a Snapshot to canonical CBOR.
func MarshalSnapshot(s *Snapshot) ([]byte, error) {
	return snapshotEncMode.Marshal(s)
}

// UnmarshalSnapshot deserializes a Snapshot from CBOR bytes.
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("intcode: unmarshal snapshot: %w", err)
	}
	return &s, nil
}
