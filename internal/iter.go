package internal

import (
	"iter"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterOnce yields the value returned by get, evaluated when iteration starts.
func IterOnce[T any](get func() T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(get())
	}
}

// IterFromFunc yields values from next until it reports false.
func IterFromFunc[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := next()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

// IterTake yields at most limit values of seq. A limit of zero or less
// means no limit.
func IterTake[T any](seq iter.Seq[T], limit int) iter.Seq[T] {
	if limit <= 0 {
		return seq
	}

	return func(yield func(T) bool) {
		count := 0
		for val := range seq {
			if !yield(val) {
				return
			}
			count++
			if count == limit {
				return
			}
		}
	}
}
