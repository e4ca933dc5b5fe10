// SPDX-License-Identifier: MIT
// Package: progressions/progression
//
// generators.go — arithmetic, geometric and harmonic sequence builders.
//
// Contract:
//   • Every generator returns a fresh slice of exactly length terms.
//   • length == 0 yields an empty, non-nil slice before any other check,
//     so NewGeometricProgression(0, 0, 0) is valid and empty.
//   • length < 0 is ErrRange.
//   • Terms are computed independently from their index (no running
//     accumulator), so rounding never compounds along the sequence.
//   • Products are rounded before the addition (no fused multiply-add), so
//     results match on every GOARCH.

package progression

import "math"

// NewArithmeticProgression returns length terms where term[i] = start + step*i.
//
// Behavior highlights:
//   - step == 0 yields length copies of start.
//   - Any real start/step is accepted; NaN and ±Inf propagate.
//
// Errors:
//   - ErrRange if length < 0.
//
// Complexity: O(length) time and memory.
//
// Example:
//
//	NewArithmeticProgression(1, 5, 3) // [1 4 7 10 13]
func NewArithmeticProgression(start float64, length int, step float64) ([]float64, error) {
	if length < 0 {
		return nil, progressionErrorf(MethodNewArithmetic, ErrRange, "length %d is negative", length)
	}

	seq := make([]float64, length)
	if step == 0 {
		for i := range seq {
			seq[i] = start
		}

		return seq, nil
	}
	for i := range seq {
		// explicit conversion rounds the product and prevents FMA fusion
		seq[i] = start + float64(step*float64(i))
	}

	return seq, nil
}

// NewGeometricProgression returns length terms where term[i] = start * scale^i.
// The power is taken per term with math.Pow rather than by repeated
// multiplication, so every term carries a single rounding step.
//
// Errors:
//   - ErrRange if length < 0.
//   - ErrRange if start == 0 or scale == 0 (degenerate ratio), unless length == 0.
//
// Complexity: O(length) time and memory.
//
// Example:
//
//	NewGeometricProgression(1, 5, 3) // [1 3 9 27 81]
func NewGeometricProgression(start float64, length int, scale float64) ([]float64, error) {
	if length < 0 {
		return nil, progressionErrorf(MethodNewGeometric, ErrRange, "length %d is negative", length)
	}
	if length == 0 {
		return []float64{}, nil
	}
	if start == 0 || scale == 0 {
		return nil, progressionErrorf(MethodNewGeometric, ErrRange, "start=%g scale=%g must be non-zero", start, scale)
	}

	seq := make([]float64, length)
	for i := range seq {
		seq[i] = start * math.Pow(scale, float64(i))
	}

	return seq, nil
}

// NewHarmonicProgression returns length terms where term[i] = 1 / (start + i*scale),
// i.e. the reciprocals of an arithmetic progression.
//
// Errors:
//   - ErrRange if length < 0.
//   - ErrRange if start == 0 or scale == 0, unless length == 0.
//
// A later denominator may still reach zero (e.g. start=2, scale=-1); that term
// is ±Inf and is returned as is.
//
// Complexity: O(length) time and memory.
//
// Example:
//
//	NewHarmonicProgression(1, 4, 1) // [1 0.5 0.3333333333333333 0.25]
func NewHarmonicProgression(start float64, length int, scale float64) ([]float64, error) {
	if length < 0 {
		return nil, progressionErrorf(MethodNewHarmonic, ErrRange, "length %d is negative", length)
	}
	if length == 0 {
		return []float64{}, nil
	}
	if start == 0 || scale == 0 {
		return nil, progressionErrorf(MethodNewHarmonic, ErrRange, "start=%g scale=%g must be non-zero", start, scale)
	}

	seq := make([]float64, length)
	for i := range seq {
		seq[i] = 1 / (start + float64(float64(i)*scale))
	}

	return seq, nil
}
