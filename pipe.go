package main

import (
	"context"
	"fmt"

	"hadydotai/intcode/image"
	"hadydotai/intcode/logging"
	"hadydotai/intcode/sweep"
)

type PipeCommand struct {
	Phases   string `short:"p" long:"phases" description:"Comma-separated phase settings, one machine per phase" required:"yes"`
	Signal   int64  `long:"signal" description:"Initial input for the first machine" default:"0"`
	Feedback bool   `short:"f" long:"feedback" description:"Feed the last machine's output back into the first until it halts"`
	Search   bool   `long:"search" description:"Try every ordering of the phases and report the best signal"`
	Workers  int    `short:"w" long:"workers" description:"Concurrent orderings evaluated by --search (default from config)"`
	Args     struct {
		ImageFile string `positional-arg-name:"IMAGE-FILE" required:"yes"`
	} `positional-args:"yes"`
}

var pipeCommand PipeCommand

func (cmd *PipeCommand) Execute(args []string) error {
	program, err := image.Load(cmd.Args.ImageFile)
	if err != nil {
		return err
	}
	phases, err := image.Parse("--phases", cmd.Phases)
	if err != nil {
		return err
	}

	opts := sweep.Options{
		Signal:   cmd.Signal,
		Feedback: cmd.Feedback,
		Workers:  cfg.Sweep.Workers,
	}
	if cmd.Workers > 0 {
		opts.Workers = cmd.Workers
	}

	if !cmd.Search {
		signal, err := sweep.Run(program, phases, opts)
		if err != nil {
			return err
		}
		fmt.Println(signal)
		return nil
	}

	logging.Log(logging.LogLevelInfo, "Searching phase orderings", "phases", phases, "workers", opts.Workers, "feedback", opts.Feedback)
	res, err := sweep.Best(context.Background(), program, phases, opts)
	if err != nil {
		return err
	}
	fmt.Printf("%d %v\n", res.Signal, res.Phases)
	return nil
}

func init() {
	flagsparser.AddCommand(
		"pipe",
		"Run a pipeline of machines",
		"Chains one machine per phase setting so each machine's output feeds the next",
		&pipeCommand,
	)
}
