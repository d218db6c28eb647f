package intcode

import "strings"

// AddLine queues the bytes of line followed by a newline.
func AddLine(s Stepper, line string) {
	for i := 0; i < len(line); i++ {
		s.AddInput(int64(line[i]))
	}
	s.AddInput('\n')
}

// ReadLine collects outputs as bytes up to a newline, which is dropped. ok
// is false if s asked for input or halted before the newline; whatever was
// read so far is still returned.
func ReadLine(s Stepper) (line string, ok bool) {
	var b strings.Builder
	for {
		switch status, value := s.Step(); status {
		case Output:
			if value == '\n' {
				return b.String(), true
			}
			b.WriteByte(byte(value))
		case NeedInput, Halt:
			return b.String(), false
		}
	}
}

// ReadString collects outputs as bytes until s asks for input or halts.
func ReadString(s Stepper) string {
	var b strings.Builder
	for {
		switch status, value := s.Step(); status {
		case Output:
			b.WriteByte(byte(value))
		case NeedInput, Halt:
			return b.String()
		}
	}
}
