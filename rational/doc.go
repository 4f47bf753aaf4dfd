// Package rational implements exact fractions of 64-bit integers.
//
// A Rational is not stored in lowest terms, but every value observed through
// Reduce, Int or Apply is. Arithmetic is checked: results that do not fit in
// the symmetric range [-math.MaxInt64, math.MaxInt64] report ErrOverflow
// rather than wrapping.
package rational
