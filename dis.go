package main

import (
	"fmt"

	"hadydotai/intcode/image"
	"hadydotai/intcode/intcode"
)

type DisCommand struct {
	Args struct {
		ImageFile string `positional-arg-name:"IMAGE-FILE" required:"yes"`
	} `positional-args:"yes"`
}

var disCommand DisCommand

func (cmd *DisCommand) Execute(args []string) error {
	program, err := image.Load(cmd.Args.ImageFile)
	if err != nil {
		return err
	}

	fmt.Println("\033[1;36mDisassembly:\033[0m")
	for _, l := range intcode.Disassemble(program) {
		printLine(0, l, false)
	}
	return nil
}

// printLine prints one listing row. base is added to the row's address when
// the listing was taken from a slice of memory.
func printLine(base int64, l intcode.Line, breakpoint bool) {
	marker := " "
	if breakpoint {
		marker = "\033[31m●\033[0m"
	}
	if l.Data {
		fmt.Printf("%s\033[90m%04d:\033[0m \033[90m%-6s\033[0m %d\n", marker, base+l.Addr, "DATA", l.Value)
		return
	}
	fmt.Printf("%s\033[90m%04d:\033[0m \033[1;33m%-6d\033[0m %s\n", marker, base+l.Addr, l.Value, l.Instruction)
}

func init() {
	flagsparser.AddCommand(
		"dis",
		"Disassemble a program image",
		"Prints a listing of a program image. Cells that do not decode as instructions are shown as data",
		&disCommand,
	)
}
