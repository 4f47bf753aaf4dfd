package fractran

import (
	"errors"

	"github.com/ezrec/fractran/rational"
	"github.com/ezrec/fractran/translate"
)

var f = translate.From

var (
	// Program text errors
	ErrTooFewTokens = errors.New(f("needs a fraction and a state"))
	ErrBadState     = errors.New(f("bad initial state"))
)

// ErrProgram reports malformed program text.
type ErrProgram struct {
	Text  string // Offending text.
	Err   error  // ErrTooFewTokens or ErrBadState.
	Cause error  // Underlying parse error, if any.
}

func (err *ErrProgram) Error() string {
	if err.Cause != nil {
		return f("'%v' %v: %v", err.Text, err.Err, err.Cause)
	}
	return f("'%v' %v", err.Text, err.Err)
}

func (err *ErrProgram) Unwrap() []error {
	if err.Cause != nil {
		return []error{err.Err, err.Cause}
	}
	return []error{err.Err}
}

// ErrStep indicates the location of an arithmetic failure during a step.
type ErrStep struct {
	Step     int               // Step being attempted, counting from 1.
	Index    int               // Index of the failing fraction.
	Fraction rational.Rational // The failing fraction.
	Err      error
}

func (err *ErrStep) Error() string {
	return f("step %v fraction #%v (%v) %v", err.Step, err.Index, err.Fraction.String(), err.Err)
}

func (err *ErrStep) Unwrap() error {
	return err.Err
}

type ErrStateExpression string

func (err ErrStateExpression) Error() string {
	return f("'%v' is not an integer state expression", string(err))
}
