package fractran

import (
	"io"
	"strings"

	"github.com/ezrec/fractran/rational"
)

// Parse reads program text: comma separated fractions, then the initial
// state. No program is returned on error.
func Parse(text string) (prog *Program, err error) {
	items := strings.Split(strings.TrimSpace(text), ",")
	if len(items) < 2 {
		err = &ErrProgram{Text: text, Err: ErrTooFewTokens}
		return
	}

	for n, item := range items {
		items[n] = strings.TrimSpace(item)
	}

	last := len(items) - 1
	fractions := make([]rational.Rational, 0, last)
	for _, item := range items[:last] {
		var frac rational.Rational
		frac, err = rational.Parse(item)
		if err != nil {
			return
		}
		fractions = append(fractions, frac)
	}

	state, err := rational.ParseInt(items[last])
	if err != nil {
		err = &ErrProgram{Text: items[last], Err: ErrBadState, Cause: err}
		return
	}

	prog = NewProgram(state, fractions...)
	return
}

// ParseReader reads all of r as program text.
func ParseReader(r io.Reader) (prog *Program, err error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return
	}

	return Parse(string(text))
}
