package intcode

import (
	"fmt"
	"strings"
)

type Opcode int64

const (
	OpAdd Opcode = iota + 1
	OpMul
	OpRead
	OpWrite
	OpJumpIfTrue
	OpJumpIfFalse
	OpLessThan
	OpEquals
	OpAdjustBase
	OpHalt Opcode = 99
)

type opInfo struct {
	name   string
	reads  int
	writes bool
}

var opcodes = map[Opcode]opInfo{
	OpAdd:         {"ADD", 2, true},
	OpMul:         {"MUL", 2, true},
	OpRead:        {"IN", 0, true},
	OpWrite:       {"OUT", 1, false},
	OpJumpIfTrue:  {"JNZ", 2, false},
	OpJumpIfFalse: {"JZ", 2, false},
	OpLessThan:    {"LT", 2, true},
	OpEquals:      {"EQ", 2, true},
	OpAdjustBase:  {"ARB", 1, false},
	OpHalt:        {"HALT", 0, false},
}

func (op Opcode) String() string {
	if info, ok := opcodes[op]; ok {
		return info.name
	}
	return "UNKNOWN"
}

// Arity is the total number of parameters the opcode takes, write target
// included.
func (op Opcode) Arity() int {
	info := opcodes[op]
	if info.writes {
		return info.reads + 1
	}
	return info.reads
}

// Instruction is a decoded view of the cells at Addr. Reads come first in
// Params; when the opcode writes, the write target is the last parameter.
type Instruction struct {
	Addr   int64
	Op     Opcode
	Params []Param
}

// Len is the number of cells the instruction occupies.
func (in Instruction) Len() int64 {
	return int64(1 + len(in.Params))
}

func (in Instruction) String() string {
	if len(in.Params) == 0 {
		return in.Op.String()
	}
	info := opcodes[in.Op]
	var b strings.Builder
	fmt.Fprintf(&b, "%-4s ", in.Op)
	for i, p := range in.Params[:info.reads] {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	if info.writes {
		if info.reads > 0 {
			b.WriteString(" ")
		}
		b.WriteString("-> " + in.Params[info.reads].String())
	}
	return b.String()
}

// Decode reads the instruction at pc without touching memory. Cells past
// the end of mem read as zero. A malformed instruction panics with a *Fault.
func Decode(mem []int64, pc int64) Instruction {
	in, f := decode(mem, pc)
	if f != nil {
		panic(f)
	}
	return in
}

func decode(mem []int64, pc int64) (Instruction, *Fault) {
	if pc < 0 {
		return Instruction{}, &Fault{Kind: FaultNegativeAddress, PC: pc, Value: pc}
	}
	if pc >= MaxMemory {
		return Instruction{}, &Fault{Kind: FaultAddressOutOfRange, PC: pc, Value: pc}
	}
	cell := memory(mem).peek(pc)
	op := Opcode(cell % 100)
	info, ok := opcodes[op]
	if !ok {
		return Instruction{}, &Fault{Kind: FaultUnknownOpcode, PC: pc, Value: cell}
	}

	in := Instruction{Addr: pc, Op: op, Params: make([]Param, op.Arity())}
	for i := range in.Params {
		mode := Mode(modeOf(cell, i))
		switch mode {
		case Positional, Relative:
		case Immediate:
			if info.writes && i == info.reads {
				return Instruction{}, &Fault{Kind: FaultImmediateWrite, PC: pc, Value: cell}
			}
		default:
			return Instruction{}, &Fault{Kind: FaultBadMode, PC: pc, Value: cell}
		}
		in.Params[i] = Param{Mode: mode, Value: memory(mem).peek(pc + int64(i) + 1)}
	}
	return in, nil
}
