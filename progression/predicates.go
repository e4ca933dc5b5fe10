// SPDX-License-Identifier: MIT
// Package: progressions/progression
//
// predicates.go — recognise arithmetic, geometric and harmonic progressions.
//
// Numeric policy:
//   • Arithmetic and geometric checks use exact float equality (==).
//   • The harmonic check compares reciprocal differences within eps, because
//     taking reciprocals adds rounding the other two checks never see.
//   • The first mismatch short-circuits to NotMatched().
//   • NaN terms are not rejected: a NaN difference/ratio never compares equal,
//     so longer sequences fail while a two-term sequence reports Parameter=NaN.

package progression

import (
	"math"
	"sort"
)

// IsArithmeticProgression reports whether every consecutive difference in
// sequence equals sequence[1]-sequence[0].
//
// Returns:
//   - Matched(d) with the common difference d, or NotMatched().
//
// Errors:
//   - ErrRange if len(sequence) < MinSequenceLength.
//
// Complexity: O(n) time, O(1) memory, single pass.
//
// Example:
//
//	IsArithmeticProgression([]float64{7, 14, 21, 28}) // {true 7}
//	IsArithmeticProgression([]float64{1, 2, 3, 5})    // {false NaN}
func IsArithmeticProgression(sequence []float64) (Result, error) {
	if err := validateLength(MethodIsArithmetic, sequence, MinSequenceLength); err != nil {
		return NotMatched(), err
	}

	diff := sequence[1] - sequence[0]
	for i := 2; i < len(sequence); i++ {
		if sequence[i]-sequence[i-1] != diff {
			return NotMatched(), nil
		}
	}

	return Matched(diff), nil
}

// IsGeometricProgression reports whether every consecutive ratio in sequence
// equals sequence[1]/sequence[0]. A zero term from the third onwards is
// disqualifying on its own.
//
// Returns:
//   - Matched(r) with the common ratio r, or NotMatched().
//
// Errors:
//   - ErrRange if len(sequence) < MinSequenceLength.
//
// Complexity: O(n) time, O(1) memory, single pass.
//
// Example:
//
//	IsGeometricProgression([]float64{2, 12, 72, 432})      // {true 6}
//	IsGeometricProgression([]float64{100, 50, 25, 12.5})   // {true 0.5}
func IsGeometricProgression(sequence []float64) (Result, error) {
	if err := validateLength(MethodIsGeometric, sequence, MinSequenceLength); err != nil {
		return NotMatched(), err
	}

	ratio := sequence[1] / sequence[0]
	for i := 2; i < len(sequence); i++ {
		if sequence[i] == 0 || sequence[i]/sequence[i-1] != ratio {
			return NotMatched(), nil
		}
	}

	return Matched(ratio), nil
}

// IsHarmonicProgression reports whether the reciprocals of sequence form an
// arithmetic progression.
//
// Implementation:
//   - Stage 1: take 1/x of every term into a private buffer.
//   - Stage 2: sort the reciprocals ascending, so term order does not matter.
//   - Stage 3: d = r[1]-r[0]; every r[i]-r[i-1] must lie within eps of d.
//
// Returns:
//   - Matched(d) with the reciprocal difference d (non-negative for finite
//     input), or NotMatched().
//
// Errors:
//   - ErrRange if len(sequence) < MinSequenceLength.
//
// Options:
//   - WithEpsilon(eps) replaces DefaultEpsilon.
//
// Complexity: O(n log n) time (sort), O(n) memory. sequence is not modified.
//
// Example:
//
//	IsHarmonicProgression([]float64{1, 1.0 / 2, 1.0 / 3, 1.0 / 4}) // {true 1}
func IsHarmonicProgression(sequence []float64, opts ...Option) (Result, error) {
	if err := validateLength(MethodIsHarmonic, sequence, MinSequenceLength); err != nil {
		return NotMatched(), err
	}

	return isHarmonic(sequence, gatherOptions(opts...).eps), nil
}

// HarmonicPredicate binds opts into a Predicate backed by IsHarmonicProgression.
// Options are resolved once, when the predicate is built.
func HarmonicPredicate(opts ...Option) Predicate {
	eps := gatherOptions(opts...).eps

	return func(sequence []float64) (Result, error) {
		if err := validateLength(MethodIsHarmonic, sequence, MinSequenceLength); err != nil {
			return NotMatched(), err
		}

		return isHarmonic(sequence, eps), nil
	}
}

// isHarmonic runs the reciprocal check on a sequence of at least two terms.
func isHarmonic(sequence []float64, eps float64) Result {
	reciprocals := make([]float64, len(sequence))
	for i, x := range sequence {
		reciprocals[i] = 1 / x
	}
	sort.Float64s(reciprocals)

	diff := reciprocals[1] - reciprocals[0]
	for i := 2; i < len(reciprocals); i++ {
		if !approxEqual(reciprocals[i]-reciprocals[i-1], diff, eps) {
			return NotMatched()
		}
	}

	return Matched(diff)
}

// approxEqual reports |a-b| < eps. NaN on either side is never equal.
func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// validateLength returns a wrapped ErrRange when sequence is shorter than minLen.
func validateLength(method string, sequence []float64, minLen int) error {
	if len(sequence) < minLen {
		return progressionErrorf(method, ErrRange, "sequence has %d terms, need at least %d", len(sequence), minLen)
	}

	return nil
}
