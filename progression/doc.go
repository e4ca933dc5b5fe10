// Package progression generates, recognises and aggregates numeric progressions.
//
// 🚀 What is a progression?
//
//	A sequence whose consecutive terms are linked by one constant:
//	  • arithmetic: a constant difference   1, 3, 5, 7      (d = 2)
//	  • geometric:  a constant ratio        1, 3, 9, 27     (r = 3)
//	  • harmonic:   reciprocals arithmetic  1, 1/2, 1/3     (d = 1 on 1/x)
//
// ✨ Key features:
//   - NewArithmeticProgression / NewGeometricProgression / NewHarmonicProgression
//   - IsArithmeticProgression / IsGeometricProgression / IsHarmonicProgression
//     returning Result{Match, Parameter}; Parameter is NaN when Match is false
//   - SumFromBounds / SumFromSlice / ProductFromBounds / ProductFromSlice with an
//     optional MapFunc applied per term (Identity by default)
//   - Classify, GeneratorFor, PredicateFor keyed by Kind
//   - Mean and IsMeanOfNeighbours backed by gonum/stat
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/progressions/progression"
//
//	seq, err := progression.NewArithmeticProgression(1, 5, 2) // [1 3 5 7 9]
//	res, err := progression.IsArithmeticProgression(seq)      // {true 2}
//	sum, err := progression.SumFromBounds(1, 5, progression.Scale(2)) // 30
//
// Numeric policy:
//
//   - Arithmetic and geometric predicates compare with exact ==.
//   - The harmonic predicate compares reciprocal differences within an
//     epsilon (DefaultEpsilon, override with WithEpsilon) after sorting them.
//   - NaN and ±Inf inputs are not rejected; they flow through the arithmetic.
//   - SumFromBounds(a, a) and ProductFromBounds(a, a) return the empty sum and
//     empty product respectively, not fn(a).
//
// Errors:
//
//   - ErrRange       — too few terms, zero start/scale, negative length, lower > upper.
//   - ErrUnknownKind — Kind outside Arithmetic/Geometric/Harmonic.
//
// Performance:
//
//   - Every operation is O(n) in the sequence length or bound span, except
//     IsHarmonicProgression which sorts: O(n log n).
package progression
