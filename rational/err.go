package rational

import (
	"errors"

	"github.com/ezrec/fractran/translate"
)

var f = translate.From

var (
	ErrZeroDenominator = errors.New(f("zero denominator"))
	ErrOverflow        = errors.New(f("integer overflow"))
	ErrComponents      = errors.New(f("rational needs exactly one '/'"))
)

type ErrParseInteger string

func (err ErrParseInteger) Error() string {
	return f("'%v' is not an integer", string(err))
}

// ErrFraction reports a malformed fraction token.
type ErrFraction struct {
	Text string // Offending token, as given.
	Err  error
}

func (err *ErrFraction) Error() string {
	return f("fraction '%v' %v", err.Text, err.Err)
}

func (err *ErrFraction) Unwrap() error {
	return err.Err
}
