package intcode

import "fmt"

// Mode selects how an instruction parameter is resolved.
type Mode int64

const (
	Positional Mode = iota
	Immediate
	Relative
)

func (m Mode) String() string {
	switch m {
	case Positional:
		return "positional"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return fmt.Sprintf("mode(%d)", int64(m))
}

// Param is a decoded instruction parameter tagged with its addressing mode.
type Param struct {
	Mode  Mode
	Value int64
}

func (p Param) String() string {
	switch p.Mode {
	case Immediate:
		return fmt.Sprintf("%d", p.Value)
	case Relative:
		if p.Value < 0 {
			return fmt.Sprintf("[rb%d]", p.Value)
		}
		return fmt.Sprintf("[rb+%d]", p.Value)
	default:
		return fmt.Sprintf("[%d]", p.Value)
	}
}

// modeOf extracts the mode digit for the n-th parameter (0-based) of an
// opcode cell: hundreds for the first, thousands for the second and so on.
func modeOf(cell int64, n int) int64 {
	div := int64(100)
	for i := 0; i < n; i++ {
		div *= 10
	}
	return (cell / div) % 10
}
