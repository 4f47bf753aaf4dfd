// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package fractran

import (
	"iter"
	"log"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/fractran/internal"
	"github.com/ezrec/fractran/rational"
)

// Program is a FRACTRAN program and its state register.
type Program struct {
	Verbose   bool                // If set, logs every fraction applied.
	Fractions []rational.Rational // Instructions, in priority order.
	State     int64               // Current state register.
	Steps     int                 // Successful steps taken.

	halted bool
	err    error
}

// NewProgram creates a program with an initial state.
func NewProgram(state int64, fractions ...rational.Rational) (prog *Program) {
	prog = &Program{
		Fractions: fractions,
		State:     state,
	}

	return
}

// Step applies the first fraction that gives an integer product, updates
// the state and returns it. When no fraction applies the program halts,
// and ok is false. Once halted, Step keeps reporting the halt and never
// modifies the state.
//
// An arithmetic overflow aborts the step with an *ErrStep, leaving the
// state unchanged.
func (prog *Program) Step() (state int64, ok bool, err error) {
	if prog.halted {
		return
	}

	for n, frac := range prog.Fractions {
		var value int64
		value, ok, err = frac.Apply(prog.State)
		if err != nil {
			err = &ErrStep{Step: prog.Steps + 1, Index: n, Fraction: frac, Err: err}
			ok = false
			return
		}
		if !ok {
			continue
		}

		if prog.Verbose {
			log.Printf("fractran: step %d: %v * %v = %v", prog.Steps+1, frac, prog.State, value)
		}

		prog.State = value
		prog.Steps++
		state = value
		return
	}

	if prog.Verbose {
		log.Printf("fractran: halt at %v after %d steps", prog.State, prog.Steps)
	}
	prog.halted = true

	return
}

// Halted returns true once a step found no applicable fraction.
func (prog *Program) Halted() bool {
	return prog.halted
}

// Err returns the error that ended the most recent Run, if any.
func (prog *Program) Err() error {
	return prog.err
}

// next adapts Step to an iterator source, latching any error for Err.
func (prog *Program) next() (state int64, ok bool) {
	state, ok, err := prog.Step()
	if err != nil {
		prog.err = err
	}
	return
}

// Run returns the trace of the program: the current state, followed by
// every state produced by Step, ending when the program halts or fails.
// The trace of a program that never halts is infinite.
//
// Values are computed only as they are pulled. Run is single pass:
// iterating advances the program's own state, so a second iteration
// continues where the first stopped. Use Clone to run a program twice.
func (prog *Program) Run() iter.Seq[int64] {
	return internal.IterSeqConcat(
		internal.IterOnce(func() int64 {
			prog.err = nil
			return prog.State
		}),
		internal.IterFromFunc(prog.next),
	)
}

// Clone returns an independent copy of the program.
func (prog *Program) Clone() *Program {
	clone := *prog
	clone.Fractions = slices.Clone(prog.Fractions)
	return &clone
}

// String renders the program in its text form.
func (prog *Program) String() string {
	words := make([]string, 0, len(prog.Fractions)+1)
	for _, frac := range prog.Fractions {
		words = append(words, frac.String())
	}
	words = append(words, strconv.FormatInt(prog.State, 10))

	return strings.Join(words, ", ")
}
