package rational

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseInt parses a base 10 signed integer, ignoring surrounding whitespace.
func ParseInt(word string) (value int64, err error) {
	word = strings.TrimSpace(word)
	value, err = strconv.ParseInt(word, 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		err = ErrOverflow
	case err != nil:
		err = ErrParseInteger(word)
	case value == math.MinInt64:
		err = ErrOverflow
	}
	if err != nil {
		value = 0
	}
	return
}

// Parse reads a "<integer>/<integer>" token. Any failure is reported as an
// *ErrFraction carrying the raw token.
func Parse(text string) (r Rational, err error) {
	defer func() {
		if err != nil {
			r = Rational{}
			err = &ErrFraction{Text: text, Err: err}
		}
	}()

	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 2 {
		err = ErrComponents
		return
	}

	num, err := ParseInt(parts[0])
	if err != nil {
		return
	}

	den, err := ParseInt(parts[1])
	if err != nil {
		return
	}

	return New(num, den)
}
