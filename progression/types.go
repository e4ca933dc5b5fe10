// SPDX-License-Identifier: MIT

// Package progression: shared result and function-signature types.
// This file holds ONLY domain-facing types; errors, options and constants live
// in dedicated files.
package progression

import "math"

// Result is the outcome of a progression predicate.
//
// Fields:
//   - Match     — true when the sequence is a progression of the checked kind.
//   - Parameter — the common difference (arithmetic), ratio (geometric) or
//     reciprocal difference (harmonic) when Match is true; NaN otherwise.
//
// Compare Parameter with math.IsNaN, never with ==, when Match is false.
type Result struct {
	Match     bool
	Parameter float64
}

// Matched returns a positive Result carrying the common parameter p.
func Matched(p float64) Result {
	return Result{Match: true, Parameter: p}
}

// NotMatched returns a negative Result with the NaN sentinel parameter.
func NotMatched() Result {
	return Result{Match: false, Parameter: math.NaN()}
}

// Kind names a progression family.
type Kind int

const (
	// Unknown is the zero Kind: no progression matched or none was chosen.
	Unknown Kind = iota
	// Arithmetic progressions have a constant difference between terms.
	Arithmetic
	// Geometric progressions have a constant ratio between terms.
	Geometric
	// Harmonic progressions have reciprocals forming an arithmetic progression.
	Harmonic
)

// kindNames is indexed by Kind.
var kindNames = [...]string{
	Unknown:    "unknown",
	Arithmetic: "arithmetic",
	Geometric:  "geometric",
	Harmonic:   "harmonic",
}

// String returns the lower-case family name, or "unknown" for out-of-range values.
func (k Kind) String() string {
	if k < Unknown || int(k) >= len(kindNames) {
		return kindNames[Unknown]
	}

	return kindNames[k]
}

// valid reports whether k is one of the three concrete families.
func (k Kind) valid() bool {
	return k == Arithmetic || k == Geometric || k == Harmonic
}

// Generator produces length terms from a start value and a step/scale.
// Implemented by NewArithmeticProgression, NewGeometricProgression and
// NewHarmonicProgression.
type Generator func(start float64, length int, scale float64) ([]float64, error)

// Predicate inspects a sequence and reports whether it is a progression,
// returning the common parameter on a match.
type Predicate func(sequence []float64) (Result, error)

// BoundsAggregator folds fn(i) for i over inclusive bounds [lower, upper].
type BoundsAggregator func(lower, upper float64, fn ...MapFunc) (float64, error)

// SliceAggregator folds fn(x) over every element of a sequence.
type SliceAggregator func(sequence []float64, fn ...MapFunc) float64

// Compile-time checks that the exported operations satisfy the contracts.
var (
	_ Generator        = NewArithmeticProgression
	_ Generator        = NewGeometricProgression
	_ Generator        = NewHarmonicProgression
	_ Predicate        = IsArithmeticProgression
	_ Predicate        = IsGeometricProgression
	_ BoundsAggregator = SumFromBounds
	_ BoundsAggregator = ProductFromBounds
	_ SliceAggregator  = SumFromSlice
	_ SliceAggregator  = ProductFromSlice
)
