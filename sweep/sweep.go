// Package sweep searches phase settings for pipelines of identical Intcode
// machines.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"hadydotai/intcode/intcode"
	"hadydotai/intcode/logging"
)

type Options struct {
	// Signal is fed to the first stage after its phase.
	Signal int64
	// Feedback loops the last stage's output back into the first stage until
	// the last stage halts.
	Feedback bool
	Workers  int
}

type Result struct {
	Phases []int64
	Signal int64
}

// ErrNoOutput is returned when a linear pipeline halts without producing a
// signal.
var ErrNoOutput = errors.New("pipeline halted without output")

// Run builds one machine per phase, seeds each with its phase and runs the
// pipeline with opts.Signal as the initial input. A machine fault is
// returned as an error wrapping the *intcode.Fault.
func Run(program, phases []int64, opts Options) (signal int64, err error) {
	if len(phases) == 0 {
		return 0, errors.New("no phases given")
	}
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*intcode.Fault)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("phases %v: %w", phases, f)
		}
	}()

	stages := make([]*intcode.Machine, len(phases))
	for i, phase := range phases {
		stages[i] = intcode.New(program, phase)
	}
	p := intcode.Pipeline(stages...)
	p.AddInput(opts.Signal)

	if opts.Feedback {
		return intcode.Feedback(p), nil
	}
	v, ok := intcode.RunToOutput(p)
	if !ok {
		return 0, ErrNoOutput
	}
	return v, nil
}

// Best evaluates every ordering of phases concurrently and returns the one
// producing the highest signal. Ties go to the ordering that comes first in
// generation order. The first failing ordering cancels the rest.
func Best(ctx context.Context, program, phases []int64, opts Options) (Result, error) {
	perms := Permutations(phases)
	signals := make([]int64, len(perms))

	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i, perm := range perms {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := Run(program, perm, opts)
			if err != nil {
				return err
			}
			logging.Log(logging.LogLevelDebug, "Evaluated phases", "phases", perm, "signal", v)
			signals[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	best := 0
	for i, v := range signals {
		if v > signals[best] {
			best = i
		}
	}
	return Result{Phases: perms[best], Signal: signals[best]}, nil
}

// Permutations returns every ordering of values in lexicographic order of
// positions. The input slice is not modified.
func Permutations(values []int64) [][]int64 {
	var out [][]int64
	var permute func(rest, acc []int64)
	permute = func(rest, acc []int64) {
		if len(rest) == 0 {
			out = append(out, slices.Clone(acc))
			return
		}
		for i := range rest {
			next := slices.Concat(rest[:i], rest[i+1:])
			permute(next, append(acc, rest[i]))
		}
	}
	permute(values, make([]int64, 0, len(values)))
	return out
}
