package main

import (
	"fmt"
	"strconv"
	"strings"

	"hadydotai/intcode/image"
	"hadydotai/intcode/logging"
)

// ProgramArgs is embedded by every command that loads an image.
type ProgramArgs struct {
	Inputs []int64  `short:"i" long:"input" description:"Queue an input value before running (repeatable)"`
	Sets   []string `short:"s" long:"set" description:"Patch memory before running, as ADDR=VALUE (repeatable)"`
}

// Load reads the image and applies the --set patches to it.
func (a *ProgramArgs) Load(path string) ([]int64, error) {
	program, err := image.Load(path)
	if err != nil {
		return nil, err
	}
	logging.Log(logging.LogLevelInfo, "Loaded program image", "file", path, "cells", len(program))

	for _, set := range a.Sets {
		addr, value, err := parseSet(set)
		if err != nil {
			return nil, err
		}
		if addr >= int64(len(program)) {
			program = append(program, make([]int64, addr+1-int64(len(program)))...)
		}
		logging.Log(logging.LogLevelDebug, "Patching memory", "addr", addr, "old", program[addr], "new", value)
		program[addr] = value
	}
	return program, nil
}

func parseSet(s string) (addr, value int64, err error) {
	a, v, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --set %q, expected ADDR=VALUE", s)
	}
	addr, err = strconv.ParseInt(strings.TrimSpace(a), 10, 64)
	if err != nil || addr < 0 {
		return 0, 0, fmt.Errorf("invalid address in --set %q", s)
	}
	value, err = strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value in --set %q: %w", s, err)
	}
	return addr, value, nil
}
