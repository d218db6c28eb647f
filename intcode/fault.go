package intcode

import "fmt"

type FaultKind int

const (
	FaultUnknownOpcode FaultKind = iota
	FaultBadMode
	FaultImmediateWrite
	FaultNegativeAddress
	FaultHalted
	FaultMissingInput
	FaultAddressOutOfRange
)

func (k FaultKind) String() string {
	names := []string{
		"unknown opcode", "bad parameter mode", "immediate-mode write target",
		"negative address", "machine already halted", "missing input",
		"address out of range",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown fault"
}

// Fault is the value a Machine panics with when a program is malformed or the
// machine is misused. It is never returned as an error by this package; the
// CLI recovers it at the top level and exits.
type Fault struct {
	Kind FaultKind
	// PC is the address of the faulting instruction, or -1 when the fault
	// is raised by a composite that has no program counter of its own.
	PC    int64
	Value int64
}

func (f *Fault) Error() string {
	switch f.Kind {
	case FaultUnknownOpcode, FaultBadMode, FaultNegativeAddress, FaultAddressOutOfRange:
		return fmt.Sprintf("%s %d at pc=%d", f.Kind, f.Value, f.PC)
	default:
		return fmt.Sprintf("%s at pc=%d", f.Kind, f.PC)
	}
}

func fault(kind FaultKind, pc, value int64) {
	panic(&Fault{Kind: kind, PC: pc, Value: value})
}
