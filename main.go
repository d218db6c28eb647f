package main

import (
	"fmt"
	"os"

	"hadydotai/intcode/config"
	"hadydotai/intcode/intcode"
	"hadydotai/intcode/logging"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	LogLevel logging.LogLevel `short:"l" long:"loglevel" description:"Set the level of logging" choice:"none" choice:"info" choice:"debug" default:"info"`
	Config   string           `short:"c" long:"config" description:"Path to an intcode.toml configuration file"`
}

var (
	opts        Options
	cfg         *config.Config
	flagsparser = flags.NewParser(&opts, flags.Default)
)

func main() {
	flagsparser.CommandHandler = func(command flags.Commander, args []string) error {
		logging.Setup(opts.LogLevel)
		var err error
		if cfg, err = config.Resolve(opts.Config); err != nil {
			return err
		}
		return guard(func() error { return command.Execute(args) })
	}

	if _, err := flagsparser.Parse(); err != nil {
		switch flagsErr := err.(type) {
		case flags.ErrorType:
			if flagsErr == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		default:
			os.Exit(1)
		}
	}
}

// guard turns a machine fault escaping a command into an error so the process
// exits through the normal error path. Any other panic is left alone.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*intcode.Fault)
			if !ok {
				panic(r)
			}
			logging.LogErr(f, "Machine fault")
			err = fmt.Errorf("machine fault: %w", f)
		}
	}()
	return fn()
}
