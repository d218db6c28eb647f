package intcode

// Line is one row of a disassembly listing. Cells that do not decode as a
// complete instruction are listed one at a time as data.
type Line struct {
	Addr        int64
	Data        bool
	Value       int64
	Instruction Instruction
}

// Disassemble walks program linearly from address 0. It never panics:
// anything that would fault is reported as data.
func Disassemble(program []int64) []Line {
	var lines []Line
	for addr := int64(0); addr < int64(len(program)); {
		in, f := decode(program, addr)
		if f != nil || addr+in.Len() > int64(len(program)) {
			lines = append(lines, Line{Addr: addr, Data: true, Value: program[addr]})
			addr++
			continue
		}
		lines = append(lines, Line{Addr: addr, Value: program[addr], Instruction: in})
		addr += in.Len()
	}
	return lines
}
