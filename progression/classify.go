// SPDX-License-Identifier: MIT
// Package: progressions/progression
//
// classify.go — Kind-keyed dispatch over generators and predicates.
//
// Classify tries the families in a fixed order (arithmetic, geometric,
// harmonic) and stops at the first match. A constant non-zero sequence is
// therefore reported as Arithmetic with d = 0, never as Geometric with r = 1.

package progression

// classifyOrder is the fixed probing order used by Classify.
var classifyOrder = [...]Kind{Arithmetic, Geometric, Harmonic}

// Classify reports which progression family sequence belongs to.
//
// Returns:
//   - (kind, Matched(p), nil) for the first family that matches.
//   - (Unknown, NotMatched(), nil) when none does.
//
// Errors:
//   - ErrRange if len(sequence) < MinSequenceLength.
//
// Options:
//   - WithEpsilon(eps) is forwarded to the harmonic check.
//
// Complexity: O(n log n) worst case (harmonic check sorts).
func Classify(sequence []float64, opts ...Option) (Kind, Result, error) {
	if err := validateLength(MethodClassify, sequence, MinSequenceLength); err != nil {
		return Unknown, NotMatched(), err
	}

	for _, kind := range classifyOrder {
		pred, err := PredicateFor(kind, opts...)
		if err != nil {
			return Unknown, NotMatched(), err
		}
		res, err := pred(sequence)
		if err != nil {
			return Unknown, NotMatched(), err
		}
		if res.Match {
			return kind, res, nil
		}
	}

	return Unknown, NotMatched(), nil
}

// GeneratorFor returns the generator of the given family.
//
// Errors:
//   - ErrUnknownKind if kind is not Arithmetic, Geometric or Harmonic.
func GeneratorFor(kind Kind) (Generator, error) {
	switch kind {
	case Arithmetic:
		return NewArithmeticProgression, nil
	case Geometric:
		return NewGeometricProgression, nil
	case Harmonic:
		return NewHarmonicProgression, nil
	default:
		return nil, progressionErrorf(MethodGeneratorFor, ErrUnknownKind, "kind %d", int(kind))
	}
}

// PredicateFor returns the predicate of the given family. opts only affect
// the Harmonic predicate; the exact predicates ignore them.
//
// Errors:
//   - ErrUnknownKind if kind is not Arithmetic, Geometric or Harmonic.
func PredicateFor(kind Kind, opts ...Option) (Predicate, error) {
	switch kind {
	case Arithmetic:
		return IsArithmeticProgression, nil
	case Geometric:
		return IsGeometricProgression, nil
	case Harmonic:
		return HarmonicPredicate(opts...), nil
	default:
		return nil, progressionErrorf(MethodPredicateFor, ErrUnknownKind, "kind %d", int(kind))
	}
}
