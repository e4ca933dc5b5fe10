// SPDX-License-Identifier: MIT
// Package: progressions/progression
//
// Purpose:
//   - Σ and Π over inclusive bounds or over a slice, with an optional MapFunc
//     applied to each term before it is folded.
//
// Exposed API:
//   - SumFromBounds(lo, hi, fn?)     -> (Σ fn(i), err)   i = lo, lo+1, … ≤ hi
//   - SumFromSlice(xs, fn?)          -> Σ fn(x)
//   - ProductFromBounds(lo, hi, fn?) -> (Π fn(i), err)
//   - ProductFromSlice(xs, fn?)      -> Π fn(x)
//
// Boundary policy:
//   - lo > hi is ErrRange.
//   - lo == hi is an empty range: the result is the identity (EmptySum or
//     EmptyProduct), NOT fn(lo).
//   - An empty slice folds to the identity.
//   - Bounds need not be integers; i starts at lo and advances by 1.
//   - Bounds are not checked for finiteness or precision. The loop never ends
//     when hi is +Inf, or when i reaches 2^53 in magnitude before passing hi,
//     because i+1 then rounds back to i (e.g. lo = 2^53, hi = 2^53+2).
//   - Folding is strictly left to right from the identity, so the rounding of
//     every partial sum/product is reproducible.

package progression

// SumFromBounds returns Σ fn(i) for i = lower, lower+1, … while i ≤ upper.
// fn defaults to Identity when omitted or nil.
//
// Errors:
//   - ErrRange if lower > upper.
//
// Complexity: O(upper-lower) time, O(1) memory. Does not terminate for the
// non-advancing bounds described in the file header.
//
// Example:
//
//	SumFromBounds(1, 5)           // 15
//	SumFromBounds(1, 5, Scale(2)) // 30
//	SumFromBounds(5, 5)           // 0 (EmptySum)
func SumFromBounds(lower, upper float64, fn ...MapFunc) (float64, error) {
	if lower > upper {
		return EmptySum, progressionErrorf(MethodSumFromBounds, ErrRange, "lower bound %g > upper bound %g", lower, upper)
	}
	if lower == upper {
		return EmptySum, nil
	}

	f := resolveMapFunc(fn...)
	sum := EmptySum
	for i := lower; i <= upper; i += unitStep {
		sum += f(i)
	}

	return sum, nil
}

// SumFromSlice returns Σ fn(x) over summands, starting from EmptySum.
// fn defaults to Identity when omitted or nil.
//
// Complexity: O(len(summands)) time, O(1) memory.
func SumFromSlice(summands []float64, fn ...MapFunc) float64 {
	f := resolveMapFunc(fn...)
	sum := EmptySum
	for _, x := range summands {
		sum += f(x)
	}

	return sum
}

// ProductFromBounds returns Π fn(i) for i = lower, lower+1, … while i ≤ upper.
// fn defaults to Identity when omitted or nil.
//
// Errors:
//   - ErrRange if lower > upper.
//
// Complexity: O(upper-lower) time, O(1) memory.
//
// Example:
//
//	ProductFromBounds(1, 5)           // 120
//	ProductFromBounds(1, 5, Scale(2)) // 3840
//	ProductFromBounds(5, 5)           // 1 (EmptyProduct)
func ProductFromBounds(lower, upper float64, fn ...MapFunc) (float64, error) {
	if lower > upper {
		return EmptyProduct, progressionErrorf(MethodProductFromBounds, ErrRange, "lower bound %g > upper bound %g", lower, upper)
	}
	if lower == upper {
		return EmptyProduct, nil
	}

	f := resolveMapFunc(fn...)
	product := EmptyProduct
	for i := lower; i <= upper; i += unitStep {
		product *= f(i)
	}

	return product, nil
}

// ProductFromSlice returns Π fn(x) over factors, starting from EmptyProduct.
// fn defaults to Identity when omitted or nil.
//
// Complexity: O(len(factors)) time, O(1) memory.
func ProductFromSlice(factors []float64, fn ...MapFunc) float64 {
	f := resolveMapFunc(fn...)
	product := EmptyProduct
	for _, x := range factors {
		product *= f(x)
	}

	return product
}
