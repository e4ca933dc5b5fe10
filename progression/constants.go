// SPDX-License-Identifier: MIT
// Package progression defines shared constants used by generators, predicates
// and aggregators, keeping identities, ratios and limits in one place.
package progression

import "math"

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// MethodNewArithmetic is the canonical name for NewArithmeticProgression.
	MethodNewArithmetic = "NewArithmeticProgression"
	// MethodNewGeometric is the canonical name for NewGeometricProgression.
	MethodNewGeometric = "NewGeometricProgression"
	// MethodNewHarmonic is the canonical name for NewHarmonicProgression.
	MethodNewHarmonic = "NewHarmonicProgression"
	// MethodIsArithmetic is the canonical name for IsArithmeticProgression.
	MethodIsArithmetic = "IsArithmeticProgression"
	// MethodIsGeometric is the canonical name for IsGeometricProgression.
	MethodIsGeometric = "IsGeometricProgression"
	// MethodIsHarmonic is the canonical name for IsHarmonicProgression.
	MethodIsHarmonic = "IsHarmonicProgression"
	// MethodSumFromBounds is the canonical name for SumFromBounds.
	MethodSumFromBounds = "SumFromBounds"
	// MethodProductFromBounds is the canonical name for ProductFromBounds.
	MethodProductFromBounds = "ProductFromBounds"
	// MethodClassify is the canonical name for Classify.
	MethodClassify = "Classify"
	// MethodGeneratorFor is the canonical name for GeneratorFor.
	MethodGeneratorFor = "GeneratorFor"
	// MethodPredicateFor is the canonical name for PredicateFor.
	MethodPredicateFor = "PredicateFor"
	// MethodMean is the canonical name for Mean.
	MethodMean = "Mean"
	// MethodIsMeanOfNeighbours is the canonical name for IsMeanOfNeighbours.
	MethodIsMeanOfNeighbours = "IsMeanOfNeighbours"
)

//-----------------------------------------------------------------------------
// Identity Elements
//-----------------------------------------------------------------------------

// EmptySum is the additive identity, returned when summing zero terms
// (the nullary or vacuous sum).
const EmptySum = 0.0

// EmptyProduct is the multiplicative identity, returned when multiplying zero
// factors (the nullary or vacuous product).
const EmptyProduct = 1.0

//-----------------------------------------------------------------------------
// Common Ratios
//   convenience scale/step arguments; plain literals, no behavior attached.
//   Musical intervals use just-intonation ratios.
//-----------------------------------------------------------------------------

const (
	MinorSecond     = 16.0 / 15.0 // 1.0667
	MajorSecond     = 9.0 / 8.0   // 1.125
	MinorThird      = 6.0 / 5.0   // 1.2
	MajorThird      = 5.0 / 4.0   // 1.25
	PerfectFourth   = 4.0 / 3.0   // 1.3333
	AugmentedFourth = math.Sqrt2  // 1.4142, the tritone
	PerfectFifth    = 3.0 / 2.0   // 1.5
	GoldenRatio     = math.Phi    // 1.6180
	MajorSixth      = 5.0 / 3.0   // 1.6667
	MinorSeventh    = 16.0 / 9.0  // 1.7778
	MajorSeventh    = 15.0 / 8.0  // 1.875
	Octave          = 2.0         // 2
)

//-----------------------------------------------------------------------------
// Limits and Numeric Defaults
//-----------------------------------------------------------------------------

// MinSequenceLength is the smallest sequence a predicate accepts.
// Two terms are needed to derive a common difference or ratio.
const MinSequenceLength = 2

// MinNeighbourhoodLength is the smallest sequence IsMeanOfNeighbours accepts:
// one interior term plus its two neighbours.
const MinNeighbourhoodLength = 3

// DefaultEpsilon is the tolerance used by tolerance-based checks
// (IsHarmonicProgression, IsMeanOfNeighbours) unless WithEpsilon overrides it.
const DefaultEpsilon = 0.001

// unitStep is the increment between consecutive bound values in *FromBounds.
const unitStep = 1.0
