package intcode

// MaxMemory is the number of cells a Machine may address. Touching a cell at
// or past it faults with FaultAddressOutOfRange instead of growing memory.
const MaxMemory = 1 << 26

// memory is the growable cell arena a Machine owns. Addresses are plain
// indices; callers bound them with checkAddr before touching it.
type memory []int64

// at returns a pointer to the cell at addr, zero-extending memory first if
// addr is past the end.
func (mem *memory) at(addr int64) *int64 {
	if n := int64(len(*mem)); addr >= n {
		*mem = append(*mem, make([]int64, addr+1-n)...)
	}
	return &(*mem)[addr]
}

// peek reads without growing; cells past the end read as zero.
func (mem memory) peek(addr int64) int64 {
	if addr < int64(len(mem)) {
		return mem[addr]
	}
	return 0
}

// checkAddr faults unless 0 <= addr < MaxMemory.
func checkAddr(pc, addr int64) {
	switch {
	case addr < 0:
		fault(FaultNegativeAddress, pc, addr)
	case addr >= MaxMemory:
		fault(FaultAddressOutOfRange, pc, addr)
	}
}
