// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rational

import (
	"math"
	"math/bits"
	"strconv"
)

// Rational is an exact fraction Num/Den.
type Rational struct {
	Num int64 // Numerator.
	Den int64 // Denominator, never zero for a valid fraction.
}

// New returns the fraction num/den.
func New(num, den int64) (r Rational, err error) {
	if den == 0 {
		err = ErrZeroDenominator
		return
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		err = ErrOverflow
		return
	}

	r = Rational{Num: num, Den: den}
	return
}

func magnitude(n int64) uint64 {
	if n < 0 {
		return uint64(-n)
	}
	return uint64(n)
}

// gcd by Euclid; gcd(0, y) = y, gcd(x, 0) = x.
func gcd(x, y uint64) uint64 {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// mul returns a*b, or false if it leaves the symmetric int64 range.
func mul(a, b int64) (p int64, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	hi, lo := bits.Mul64(magnitude(a), magnitude(b))
	if hi != 0 || lo > math.MaxInt64 {
		return
	}

	p = int64(lo)
	if (a < 0) != (b < 0) {
		p = -p
	}
	ok = true
	return
}

// Reduce returns the fraction in lowest terms, with the sign carried on
// the numerator.
func (r Rational) Reduce() Rational {
	g := gcd(magnitude(r.Num), magnitude(r.Den))
	if g == 0 {
		return r
	}

	num := r.Num / int64(g)
	den := r.Den / int64(g)
	if den < 0 {
		num, den = -num, -den
	}

	return Rational{Num: num, Den: den}
}

// MulInt returns Num*n/Den. The result is not reduced.
func (r Rational) MulInt(n int64) (p Rational, err error) {
	num, ok := mul(r.Num, n)
	if !ok || n == math.MinInt64 {
		err = ErrOverflow
		return
	}

	p = Rational{Num: num, Den: r.Den}
	return
}

// Int returns the integer value of the fraction, if it has one.
func (r Rational) Int() (n int64, ok bool) {
	rr := r.Reduce()
	if rr.Den == 1 {
		n = rr.Num
		ok = true
	}
	return
}

// Apply multiplies n by the fraction and returns the product if it is
// an integer. It is equivalent to MulInt followed by Int, but cancels
// common factors before multiplying, so only a result that is itself out
// of range is reported as ErrOverflow.
func (r Rational) Apply(n int64) (value int64, ok bool, err error) {
	if n == math.MinInt64 {
		err = ErrOverflow
		return
	}

	rr := r.Reduce()
	if rr.Den <= 0 {
		return
	}

	g := int64(gcd(magnitude(n), uint64(rr.Den)))
	if rr.Den/g != 1 {
		return
	}

	value, ok = mul(rr.Num, n/g)
	if !ok {
		err = ErrOverflow
	}
	return
}

// String renders the fraction as "num/den", unreduced.
func (r Rational) String() string {
	return strconv.FormatInt(r.Num, 10) + "/" + strconv.FormatInt(r.Den, 10)
}
