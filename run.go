package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"hadydotai/intcode/intcode"
	"hadydotai/intcode/logging"

	"github.com/chzyer/readline"
)

type RunCommand struct {
	ProgramArgs
	ASCII      bool `short:"a" long:"ascii" description:"Treat output as text and read input lines from stdin when the program asks"`
	DumpMemory bool `short:"m" long:"dump-memory" description:"Print memory after the program halts"`
	Args       struct {
		ImageFile string `positional-arg-name:"IMAGE-FILE" required:"yes"`
	} `positional-args:"yes"`
}

var runCommand RunCommand

func (cmd *RunCommand) Execute(args []string) error {
	program, err := cmd.Load(cmd.Args.ImageFile)
	if err != nil {
		return err
	}

	m := intcode.New(program, cmd.Inputs...)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if cmd.ASCII || cfg.Run.ASCII {
		input := &stdinLines{}
		defer input.Close()
		err = runASCII(m, out, input.ReadLine)
	} else {
		err = runNumeric(m, out)
	}
	if err != nil {
		return err
	}
	logging.Log(logging.LogLevelInfo, "Program halted", "pc", m.PC())

	if cmd.DumpMemory {
		mem := m.Program()
		cells := make([]string, len(mem))
		for i, v := range mem {
			cells[i] = fmt.Sprint(v)
		}
		fmt.Fprintln(out, strings.Join(cells, ","))
	}
	return nil
}

// step wraps Machine.Step with a debug trace of each decoded instruction.
func step(m *intcode.Machine) (intcode.Status, int64) {
	if logging.Enabled(logging.LogLevelDebug) {
		logging.Log(logging.LogLevelDebug, "step", "pc", m.PC(), "rb", m.RelativeBase(), "instr", m.Current().String())
	}
	return m.Step()
}

func runNumeric(m *intcode.Machine, out io.Writer) error {
	for {
		switch status, value := step(m); status {
		case intcode.Output:
			fmt.Fprintln(out, value)
		case intcode.NeedInput:
			return fmt.Errorf("program needs more input at pc=%d, pass it with --input", m.PC())
		case intcode.Halt:
			return nil
		}
	}
}

// runASCII prints byte outputs as text and any larger value as a number on
// its own line. When the program asks for input, readLine supplies the next
// line.
func runASCII(m *intcode.Machine, out *bufio.Writer, readLine func() (string, error)) error {
	for {
		switch status, value := step(m); status {
		case intcode.Output:
			if value >= 0 && value < 256 {
				out.WriteByte(byte(value))
			} else {
				fmt.Fprintf(out, "%d\n", value)
			}
		case intcode.NeedInput:
			out.Flush()
			line, err := readLine()
			if err != nil {
				return fmt.Errorf("program waiting for input at pc=%d: %w", m.PC(), err)
			}
			intcode.AddLine(m, line)
		case intcode.Halt:
			return nil
		}
	}
}

// stdinLines opens readline on first use so programs that never ask for
// input do not touch the terminal.
type stdinLines struct {
	rl *readline.Instance
}

func (s *stdinLines) ReadLine() (string, error) {
	if s.rl == nil {
		rl, err := readline.NewEx(&readline.Config{Prompt: "> ", InterruptPrompt: "^C", EOFPrompt: "exit"})
		if err != nil {
			return "", fmt.Errorf("failed to open input: %w", err)
		}
		s.rl = rl
	}
	return s.rl.Readline()
}

func (s *stdinLines) Close() {
	if s.rl != nil {
		s.rl.Close()
	}
}

func init() {
	flagsparser.AddCommand(
		"run",
		"Run a program image",
		"Runs a comma-separated Intcode image to completion and prints every output",
		&runCommand,
	)
}
