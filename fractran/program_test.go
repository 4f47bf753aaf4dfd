package fractran

import (
	"bytes"
	"errors"
	"log"
	"os"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/fractran/internal"
	"github.com/ezrec/fractran/rational"
)

func frac(num, den int64) rational.Rational {
	return rational.Rational{Num: num, Den: den}
}

func TestProgram_Step(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(6, frac(2, 3), frac(3, 2))

	state, ok, err := prog.Step()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(int64(4), state)
	assert.Equal(int64(4), prog.State)

	state, ok, err = prog.Step()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(int64(6), state)
	assert.Equal(2, prog.Steps)
	assert.False(prog.Halted())
}

func TestProgram_Step_FirstMatch(t *testing.T) {
	assert := assert.New(t)

	// Both fractions apply to 6; only the first is used.
	prog := NewProgram(6, frac(1, 2), frac(1, 3))

	state, ok, err := prog.Step()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(int64(3), state)
}

func TestProgram_Step_Halt(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(1, frac(1, 2))

	for range 3 {
		state, ok, err := prog.Step()
		assert.NoError(err)
		assert.False(ok)
		assert.Equal(int64(0), state)
		assert.Equal(int64(1), prog.State)
		assert.True(prog.Halted())
	}
	assert.Equal(0, prog.Steps)
}

func TestProgram_Step_Empty(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(5)

	_, ok, err := prog.Step()
	assert.NoError(err)
	assert.False(ok)
	assert.Equal([]int64{5}, slices.Collect(prog.Run()))
}

func TestProgram_Step_Overflow(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(1<<62, frac(1, 3), frac(2, 1))

	_, ok, err := prog.Step()
	assert.False(ok)
	assert.ErrorIs(err, rational.ErrOverflow)

	var es *ErrStep
	if assert.True(errors.As(err, &es)) {
		assert.Equal(1, es.Step)
		assert.Equal(1, es.Index)
		assert.Equal(frac(2, 1), es.Fraction)
	}
	assert.Equal(int64(1<<62), prog.State)
	assert.False(prog.Halted())
}

func TestProgram_Run_Infinite(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(3, frac(2, 1))

	trace := []int64{}
	for state := range prog.Run() {
		trace = append(trace, state)
		if len(trace) == 5 {
			break
		}
	}

	assert.Equal([]int64{3, 6, 12, 24, 48}, trace)
	assert.Equal(int64(48), prog.State)
	assert.Equal(4, prog.Steps)
}

func TestProgram_Run_Halts(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(1, frac(1, 2))
	assert.Equal([]int64{1}, slices.Collect(prog.Run()))
	assert.NoError(prog.Err())

	// 2^2 * 3^3 -> 3^5
	prog = NewProgram(108, frac(3, 2))
	assert.Equal([]int64{108, 162, 243}, slices.Collect(prog.Run()))
	assert.NoError(prog.Err())
	assert.True(prog.Halted())
}

func TestProgram_Run_Cycle(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("2/3, 3/2, 6")
	assert.NoError(err)

	trace := slices.Collect(internal.IterTake(prog.Run(), 5))
	assert.Equal([]int64{6, 4, 6, 4, 6}, trace)
}

func TestProgram_Run_SinglePass(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(108, frac(3, 2))
	clone := prog.Clone()

	assert.Equal([]int64{108, 162, 243}, slices.Collect(prog.Run()))
	assert.Equal([]int64{243}, slices.Collect(prog.Run()))

	assert.Equal(int64(108), clone.State)
	assert.Equal([]int64{108, 162, 243}, slices.Collect(clone.Run()))
}

func TestProgram_Run_Overflow(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(1<<61, frac(2, 1))

	assert.Equal([]int64{1 << 61, 1 << 62}, slices.Collect(prog.Run()))
	assert.ErrorIs(prog.Err(), rational.ErrOverflow)
}

func TestProgram_Run_Primegame(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("17/91, 78/85, 19/51, 23/38, 29/33, 77/29, 95/23, 77/19, 1/17, 11/13, 13/11, 15/2, 1/7, 55/1, 2")
	assert.NoError(err)

	powers := []int64{}
	for state := range internal.IterTake(prog.Run(), 1000) {
		if state&(state-1) == 0 {
			powers = append(powers, state)
		}
		if len(powers) == 4 {
			break
		}
	}

	assert.NoError(prog.Err())
	assert.Equal([]int64{2, 4, 8, 32}, powers)
	assert.Equal(281, prog.Steps)
}

func TestProgram_Verbose(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	log.SetOutput(buff)
	defer log.SetOutput(os.Stderr)

	prog := NewProgram(2, frac(3, 2))
	prog.Verbose = true
	assert.Equal([]int64{2, 3}, slices.Collect(prog.Run()))

	assert.Contains(buff.String(), "3/2 * 2 = 3")
	assert.Contains(buff.String(), "halt")
}

func TestProgram_String(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(6, frac(2, 3), frac(-3, 2))
	assert.Equal("2/3, -3/2, 6", prog.String())
}
