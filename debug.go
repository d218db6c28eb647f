package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"hadydotai/intcode/intcode"

	"github.com/alecthomas/repr"
	"github.com/chzyer/readline"
)

type DebugCommand struct {
	ProgramArgs
	Args struct {
		ImageFile string `positional-arg-name:"IMAGE-FILE" required:"yes"`
	} `positional-args:"yes"`
}

var debugCommand DebugCommand

func (cmd *DebugCommand) Execute(args []string) error {
	program, err := cmd.Load(cmd.Args.ImageFile)
	if err != nil {
		return err
	}
	repl, err := NewREPL(intcode.New(program, cmd.Inputs...))
	if err != nil {
		return err
	}
	repl.Start()
	return nil
}

func init() {
	flagsparser.AddCommand(
		"debug",
		"Step through a program image",
		"Starts an interactive step debugger with breakpoints, history and memory inspection",
		&debugCommand,
	)
}

type REPL struct {
	vm          *intcode.Machine
	initial     *intcode.Snapshot
	history     []*intcode.Snapshot
	breakpoints map[int64]bool
	outputs     []int64
	rl          *readline.Instance
}

func NewREPL(vm *intcode.Machine) (*REPL, error) {
	rlConfig := &readline.Config{
		Prompt:          cfg.Debugger.Prompt,
		HistoryFile:     cfg.Debugger.HistoryFile,
		HistoryLimit:    cfg.Debugger.HistoryLimit,
		AutoComplete:    completer{},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}

	rl, err := readline.NewEx(rlConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to start debugger: %w", err)
	}

	r := newSession(vm)
	r.rl = rl
	return r, nil
}

// newSession builds the debugger state without a terminal attached.
func newSession(vm *intcode.Machine) *REPL {
	return &REPL{
		vm:          vm,
		initial:     vm.Snapshot(),
		breakpoints: make(map[int64]bool),
	}
}

// completer implements readline.AutoCompleter
type completer struct{}

var commands = []string{
	"step", "s", "n",
	"back", "b",
	"continue", "c",
	"break",
	"input", "line",
	"mem",
	"pc",
	"state",
	"outputs",
	"dis",
	"save", "load",
	"restart", "r",
	"quit", "q",
	"help", "h",
}

func (c completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	input := string(line[:pos])
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, input) {
			newLine = append(newLine, []rune(cmd[len(input):]))
		}
	}
	return newLine, len(input)
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
  step, s, n         Execute next instruction
  back, b            Step back to previous state
  continue, c        Run until a breakpoint, input request or halt
  break <pc>         Toggle a breakpoint at an address
  input <v>...       Queue input values
  line <text>        Queue a line of ASCII input followed by a newline
  mem <addr> [n]     Show n cells of memory starting at addr
  pc                 Show program counter and current instruction
  state              Dump machine registers and input queue
  outputs            Show every output produced so far
  dis [n]            Disassemble n instructions from the program counter
  save <file>        Write a snapshot of the machine to file
  load <file>        Replace the machine with a saved snapshot
  restart, r         Restart from the initial image
  help, h            Show this help message
  quit, q            Exit debugger
`
	fmt.Println(help)
}

func (r *REPL) Start() {
	defer r.rl.Close()

	fmt.Println("\033[1;36mIntcode Debugger\033[0m")
	fmt.Println("Type 'help' or 'h' for available commands")
	fmt.Println()
	r.printState()

	for {
		line, err := r.rl.Readline()
		if err != nil { // io.EOF, readline.ErrInterrupt
			break
		}

		args := strings.Fields(strings.TrimSpace(line))
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "q" {
			fmt.Println("\033[32mGoodbye!\033[0m")
			return
		}
		r.dispatch(args, line)
	}
}

// dispatch runs one command. A machine fault is reported and the session
// carries on; the faulting step is not recorded, so `back` still works.
func (r *REPL) dispatch(args []string, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			f, ok := rec.(*intcode.Fault)
			if !ok {
				panic(rec)
			}
			fmt.Printf("\033[31mFault: %v\033[0m\n", f)
		}
	}()

	switch args[0] {
	case "help", "h":
		r.printHelp()

	case "step", "s", "n":
		if r.vm.Halted() {
			fmt.Println("\033[31mProgram has finished execution\033[0m")
			return
		}
		r.step()
		r.printState()

	case "back", "b":
		if len(r.history) == 0 {
			fmt.Println("Already at the oldest state")
			return
		}
		r.vm = intcode.Restore(r.history[len(r.history)-1])
		r.history = r.history[:len(r.history)-1]
		r.printState()

	case "continue", "c":
		r.continueRun()
		r.printState()

	case "break":
		if len(args) < 2 {
			fmt.Println("Usage: break <pc>")
			return
		}
		pc, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil || pc < 0 {
			fmt.Printf("Invalid address: %s\n", args[1])
			return
		}
		if r.breakpoints[pc] {
			delete(r.breakpoints, pc)
			fmt.Printf("Breakpoint cleared at %d\n", pc)
		} else {
			r.breakpoints[pc] = true
			fmt.Printf("Breakpoint set at %d\n", pc)
		}

	case "input":
		for _, a := range args[1:] {
			v, err := strconv.ParseInt(a, 10, 64)
			if err != nil {
				fmt.Printf("Invalid value: %s\n", a)
				return
			}
			r.vm.AddInput(v)
		}
		fmt.Printf("Queued, %d pending\n", r.vm.Pending())

	case "line":
		text := strings.TrimPrefix(strings.TrimSpace(line), "line")
		intcode.AddLine(r.vm, strings.TrimPrefix(text, " "))
		fmt.Printf("Queued, %d pending\n", r.vm.Pending())

	case "mem":
		if len(args) < 2 {
			fmt.Println("Usage: mem <addr> [n]")
			return
		}
		addr, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil || addr < 0 {
			fmt.Printf("Invalid address: %s\n", args[1])
			return
		}
		n := int64(8)
		if len(args) > 2 {
			if n, err = strconv.ParseInt(args[2], 10, 64); err != nil || n < 1 {
				fmt.Printf("Invalid count: %s\n", args[2])
				return
			}
		}
		for i := addr; i < addr+n; i++ {
			fmt.Printf("\033[90m%04d:\033[0m %d\n", i, r.vm.Peek(i))
		}

	case "pc":
		fmt.Printf("PC: %d (Instruction: %s)\n", r.vm.PC(), r.currentText())

	case "state":
		s := r.vm.Snapshot()
		fmt.Println(repr.String(struct {
			PC, RelativeBase int64
			Halted           bool
			Inputs           []int64
			MemoryCells      int
		}{s.PC, s.RelativeBase, s.Halted, s.Inputs, len(s.Memory)}, repr.Indent("  ")))

	case "outputs":
		fmt.Println("Outputs:", r.formatValues(r.outputs))

	case "dis":
		n := 5
		if len(args) > 1 {
			if v, err := strconv.Atoi(args[1]); err == nil && v > 0 {
				n = v
			}
		}
		r.disassemble(n)

	case "save":
		if len(args) < 2 {
			fmt.Println("Usage: save <file>")
			return
		}
		data, err := intcode.MarshalSnapshot(r.vm.Snapshot())
		if err == nil {
			err = os.WriteFile(args[1], data, 0644)
		}
		if err != nil {
			fmt.Printf("\033[31mError saving snapshot: %v\033[0m\n", err)
			return
		}
		fmt.Printf("\033[32mSaved snapshot to %s\033[0m\n", args[1])

	case "load":
		if len(args) < 2 {
			fmt.Println("Usage: load <file>")
			return
		}
		if err := r.loadFile(args[1]); err != nil {
			fmt.Printf("\033[31mError loading snapshot: %v\033[0m\n", err)
			return
		}
		fmt.Printf("\033[32mLoaded snapshot: %s\033[0m\n", args[1])
		r.printState()

	case "restart", "r":
		r.vm = intcode.Restore(r.initial)
		r.history = r.history[:0]
		r.outputs = r.outputs[:0]
		fmt.Println("Program restarted")
		r.printState()

	default:
		fmt.Printf("\033[31mUnknown command: %s\033[0m\n", args[0])
	}
}

// step executes one instruction, recording the prior state for `back`.
func (r *REPL) step() intcode.Status {
	before := r.vm.Snapshot()
	status, value := r.vm.Step()
	switch status {
	case intcode.Output:
		r.outputs = append(r.outputs, value)
		fmt.Printf("\033[1;32mOutput:\033[0m %d\n", value)
	case intcode.NeedInput:
		fmt.Println("\033[1;33mWaiting for input\033[0m (use `input` or `line`)")
		return status
	case intcode.Halt:
		fmt.Println("\033[31mProgram finished execution\033[0m")
	}
	r.history = append(r.history, before)
	return status
}

func (r *REPL) continueRun() {
	for steps := 0; !r.vm.Halted(); steps++ {
		if limit := cfg.Debugger.MaxSteps; limit > 0 && steps >= limit {
			fmt.Printf("\033[33mStopped after %d steps\033[0m\n", steps)
			return
		}
		if status := r.step(); status == intcode.NeedInput || status == intcode.Halt {
			return
		}
		if r.breakpoints[r.vm.PC()] {
			fmt.Printf("\033[1;31mBreakpoint at %d\033[0m\n", r.vm.PC())
			return
		}
	}
}

func (r *REPL) printState() {
	if r.vm.Halted() {
		fmt.Println("\033[31mProgram finished execution\033[0m")
		return
	}

	fmt.Printf("\033[1;35mPC: %d\033[0m \033[1;34mRB: %d\033[0m (\033[1;33mInstruction: %s\033[0m)\n",
		r.vm.PC(), r.vm.RelativeBase(), r.currentText())
	fmt.Printf("\033[1;36mPending input:\033[0m %d\n", r.vm.Pending())
}

// currentText renders the instruction at the program counter, or the fault
// decoding it would raise.
func (r *REPL) currentText() (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			f, ok := rec.(*intcode.Fault)
			if !ok {
				panic(rec)
			}
			text = "<" + f.Error() + ">"
		}
	}()
	return r.vm.Current().String()
}

func (r *REPL) disassemble(n int) {
	mem := r.vm.Program()
	pc := r.vm.PC()
	if pc < 0 || pc >= int64(len(mem)) {
		fmt.Println("Program counter is outside memory")
		return
	}
	lines := intcode.Disassemble(mem[pc:])
	for _, l := range lines[:min(n, len(lines))] {
		printLine(pc, l, r.breakpoints[pc+l.Addr])
	}
}

func (r *REPL) formatValues(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (r *REPL) loadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading file: %v", err)
	}
	s, err := intcode.UnmarshalSnapshot(data)
	if err != nil {
		return err
	}
	r.vm = intcode.Restore(s)
	r.history = r.history[:0]
	return nil
}
