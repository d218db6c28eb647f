// Package intcode implements a resumable Intcode virtual machine and the
// combinators built on its step contract.
package intcode

// Status is the outcome of a single Step.
type Status int

const (
	Proceed Status = iota
	NeedInput
	Output
	Halt
)

func (s Status) String() string {
	names := []string{"PROCEED", "NEED_INPUT", "OUTPUT", "HALT"}
	if int(s) < len(names) {
		return names[s]
	}
	return "UNKNOWN"
}

// Stepper is anything that runs with the Machine step contract: a single
// Machine or a Chain of them. The set of implementations is closed.
type Stepper interface {
	// Step executes one instruction. The value is only meaningful when the
	// status is Output.
	Step() (Status, int64)
	AddInput(values ...int64)
	Halted() bool

	stepper()
}

type Machine struct {
	mem    memory
	pc     int64
	base   int64
	input  []int64
	halted bool
}

// New returns a Machine loaded with a copy of program and the given inputs
// queued.
func New(program []int64, inputs ...int64) *Machine {
	mem := make(memory, len(program))
	copy(mem, program)
	return &Machine{
		mem:   mem,
		input: append([]int64(nil), inputs...),
	}
}

func (m *Machine) stepper() {}

// AddInput appends values to the back of the input queue.
func (m *Machine) AddInput(values ...int64) {
	m.input = append(m.input, values...)
}

func (m *Machine) Halted() bool { return m.halted }

func (m *Machine) PC() int64 { return m.pc }

func (m *Machine) RelativeBase() int64 { return m.base }

// Pending returns the number of queued inputs not yet consumed.
func (m *Machine) Pending() int { return len(m.input) }

// Program returns a copy of memory.
func (m *Machine) Program() []int64 {
	out := make([]int64, len(m.mem))
	copy(out, m.mem)
	return out
}

// Peek reads a cell the way a positional parameter would, growing memory
// if addr is past the end. addr must be below MaxMemory.
func (m *Machine) Peek(addr int64) int64 {
	checkAddr(m.pc, addr)
	return *m.mem.at(addr)
}

// Poke writes a cell, growing memory if needed.
func (m *Machine) Poke(addr, value int64) {
	checkAddr(m.pc, addr)
	*m.mem.at(addr) = value
}

// Current decodes the instruction at the program counter.
func (m *Machine) Current() Instruction {
	return Decode(m.mem, m.pc)
}

func (m *Machine) Step() (Status, int64) {
	if m.halted {
		fault(FaultHalted, m.pc, 0)
	}

	in := Decode(m.mem, m.pc)
	p := in.Params
	switch in.Op {
	case OpAdd:
		m.store(p[2], m.load(p[0])+m.load(p[1]))
	case OpMul:
		m.store(p[2], m.load(p[0])*m.load(p[1]))
	case OpRead:
		if len(m.input) == 0 {
			return NeedInput, 0
		}
		value := m.input[0]
		m.input = m.input[1:]
		m.store(p[0], value)
	case OpWrite:
		value := m.load(p[0])
		m.pc += in.Len()
		return Output, value
	case OpJumpIfTrue:
		if m.load(p[0]) != 0 {
			m.pc = m.load(p[1])
			return Proceed, 0
		}
	case OpJumpIfFalse:
		if m.load(p[0]) == 0 {
			m.pc = m.load(p[1])
			return Proceed, 0
		}
	case OpLessThan:
		m.store(p[2], boolCell(m.load(p[0]) < m.load(p[1])))
	case OpEquals:
		m.store(p[2], boolCell(m.load(p[0]) == m.load(p[1])))
	case OpAdjustBase:
		m.base += m.load(p[0])
	case OpHalt:
		m.halted = true
		return Halt, 0
	}
	m.pc += in.Len()
	return Proceed, 0
}

// RunToOutput steps until the next output or halt. It panics with a
// FaultMissingInput if the machine runs out of input on the way.
func (m *Machine) RunToOutput() (int64, bool) { return RunToOutput(m) }

// Run drains the machine to completion and returns every output in order.
func (m *Machine) Run() []int64 { return Run(m) }

func (m *Machine) address(p Param) int64 {
	addr := p.Value
	if p.Mode == Relative {
		addr += m.base
	}
	checkAddr(m.pc, addr)
	return addr
}

func (m *Machine) load(p Param) int64 {
	if p.Mode == Immediate {
		return p.Value
	}
	return *m.mem.at(m.address(p))
}

func (m *Machine) store(p Param, value int64) {
	*m.mem.at(m.address(p)) = value
}

func boolCell(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// RunToOutput steps s until it produces an output or halts.
func RunToOutput(s Stepper) (int64, bool) {
	for {
		switch status, value := s.Step(); status {
		case Output:
			return value, true
		case Halt:
			return 0, false
		case NeedInput:
			fault(FaultMissingInput, pcOf(s), 0)
		}
	}
}

// Run steps s to completion and collects its outputs.
func Run(s Stepper) []int64 {
	var out []int64
	for {
		value, ok := RunToOutput(s)
		if !ok {
			return out
		}
		out = append(out, value)
	}
}

func pcOf(s Stepper) int64 {
	if m, ok := s.(*Machine); ok {
		return m.pc
	}
	return -1
}
