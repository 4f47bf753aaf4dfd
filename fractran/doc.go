// Package fractran implements an interpreter for FRACTRAN programs.
//
// A program is an ordered list of fractions and a single integer register,
// the state. Each step multiplies the state by the first fraction that
// gives an integer product, and the program halts when no fraction does.
//
// Program text is a comma separated list of fractions followed by the
// initial state:
//
//	17/91, 78/85, 19/51, 23/38, 29/33, 77/29, 95/23, 77/19, 1/17, 11/13, 13/11, 15/2, 1/7, 55/1, 2
//
// Run exposes the trace as a lazy, single pass iter.Seq.
package fractran
