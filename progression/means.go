// SPDX-License-Identifier: MIT
// Package: progressions/progression
//
// means.go — the mean that characterises each progression family.
//
// In an arithmetic or harmonic progression every interior term is respectively
// the arithmetic or harmonic mean of its two neighbours. In a geometric
// progression x[i]² = x[i-1]·x[i+1]: |x[i]| is the geometric mean of the
// neighbour magnitudes, and the neighbours share a sign even when the ratio is
// negative. The means themselves come from gonum/stat (unweighted).
//
// Sign policy:
//   • gonum's geometric and harmonic means work through math.Log and are only
//     defined for non-negative input. All-negative input is negated, averaged
//     and negated back.
//   • A geometric mean of mixed-sign terms is NaN.
//   • A harmonic mean of mixed-sign terms is computed directly as n / Σ(1/x).
//
// Tolerance policy (IsMeanOfNeighbours):
//   • Arithmetic: absolute, |x - m| < eps.
//   • Geometric, Harmonic: relative, |x - m| < eps·max(|x|, |m|), so terms of
//     any magnitude are judged alike.

package progression

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the kind-specific mean of sequence:
//   - Arithmetic → Σx / n
//   - Geometric  → exp(Σ ln x / n) for positive terms, its negation for
//     negative terms; 0 if a zero term is present with positive ones; NaN
//     for mixed signs
//   - Harmonic   → n / Σ(1/x) for any signs
//
// Errors:
//   - ErrRange if sequence is empty.
//   - ErrUnknownKind if kind is not Arithmetic, Geometric or Harmonic.
//
// Complexity: O(n) time, O(n) memory for non-positive input.
//
// Example:
//
//	Mean(Harmonic, []float64{-1, -1.0 / 3}) // -0.5
//	Mean(Geometric, []float64{-1, -4})      // -2
func Mean(kind Kind, sequence []float64) (float64, error) {
	if !kind.valid() {
		return 0, progressionErrorf(MethodMean, ErrUnknownKind, "kind %d", int(kind))
	}
	if err := validateLength(MethodMean, sequence, 1); err != nil {
		return 0, err
	}

	return meanOf(kind, sequence), nil
}

// IsMeanOfNeighbours reports whether every interior term of sequence equals,
// within eps, the kind-specific mean of the terms on either side of it.
// For Geometric the neighbours must share a non-zero sign and |x[i]| is
// compared with their magnitude mean, so negative ratios pass.
//
// Errors:
//   - ErrRange if len(sequence) < MinNeighbourhoodLength.
//   - ErrUnknownKind if kind is not Arithmetic, Geometric or Harmonic.
//
// Options:
//   - WithEpsilon(eps) replaces DefaultEpsilon; absolute for Arithmetic,
//     relative for Geometric and Harmonic.
//
// Complexity: O(n) time, O(1) memory.
//
// Example:
//
//	IsMeanOfNeighbours(Harmonic, []float64{1, 1.0 / 2, 1.0 / 3}) // true: 2/(1+3) = 1/2
//	IsMeanOfNeighbours(Geometric, []float64{1, -2, 4, -8})      // true
func IsMeanOfNeighbours(kind Kind, sequence []float64, opts ...Option) (bool, error) {
	if !kind.valid() {
		return false, progressionErrorf(MethodIsMeanOfNeighbours, ErrUnknownKind, "kind %d", int(kind))
	}
	if err := validateLength(MethodIsMeanOfNeighbours, sequence, MinNeighbourhoodLength); err != nil {
		return false, err
	}
	eps := gatherOptions(opts...).eps

	var pair [2]float64
	for i := 1; i < len(sequence)-1; i++ {
		a, b, x := sequence[i-1], sequence[i+1], sequence[i]
		var ok bool
		switch kind {
		case Arithmetic:
			pair[0], pair[1] = a, b
			ok = approxEqual(x, stat.Mean(pair[:], nil), eps)
		case Geometric:
			pair[0], pair[1] = math.Abs(a), math.Abs(b)
			ok = a*b > 0 && relativeEqual(math.Abs(x), stat.GeometricMean(pair[:], nil), eps)
		case Harmonic:
			ok = relativeEqual(x, harmonicPair(a, b), eps)
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// meanOf dispatches to gonum/stat; kind must already be valid.
func meanOf(kind Kind, xs []float64) float64 {
	switch kind {
	case Geometric:
		if allNegative(xs) {
			return -stat.GeometricMean(negated(xs), nil)
		}

		return stat.GeometricMean(xs, nil)
	case Harmonic:
		switch {
		case allPositive(xs):
			return stat.HarmonicMean(xs, nil)
		case allNegative(xs):
			return -stat.HarmonicMean(negated(xs), nil)
		default:
			return float64(len(xs)) / SumFromSlice(xs, Reciprocal)
		}
	default:
		return stat.Mean(xs, nil)
	}
}

// harmonicPair is the harmonic mean of a and b without allocating.
func harmonicPair(a, b float64) float64 {
	return 2 / (1/a + 1/b)
}

// relativeEqual reports |a-b| < eps·max(|a|,|b|); identical values, including
// infinities, are always equal.
func relativeEqual(a, b, eps float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) < eps*math.Max(math.Abs(a), math.Abs(b))
}

// negated returns a fresh copy of xs with every sign flipped.
func negated(xs []float64) []float64 {
	return floats.ScaleTo(make([]float64, len(xs)), -1, xs)
}

func allPositive(xs []float64) bool {
	for _, x := range xs {
		if !(x > 0) {
			return false
		}
	}

	return true
}

func allNegative(xs []float64) bool {
	for _, x := range xs {
		if !(x < 0) {
			return false
		}
	}

	return true
}
