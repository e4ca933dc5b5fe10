// Package progression provides the per-term mapping functions consumed by
// the sum and product aggregators.
package progression

import "math"

// MapFunc transforms a single term before it is aggregated.
// It must be free of side effects; aggregators call it exactly once per term,
// in ascending order.
type MapFunc func(x float64) float64

// Identity returns x unchanged. It is the default MapFunc.
// Complexity: O(1).
func Identity(x float64) float64 {
	return x
}

// Scale returns a MapFunc computing k*x.
// Complexity: O(1) per call.
func Scale(k float64) MapFunc {
	return func(x float64) float64 {
		return k * x
	}
}

// Offset returns a MapFunc computing x+k.
// Complexity: O(1) per call.
func Offset(k float64) MapFunc {
	return func(x float64) float64 {
		return x + k
	}
}

// Pow returns a MapFunc computing math.Pow(x, p).
// Complexity: O(1) per call.
func Pow(p float64) MapFunc {
	return func(x float64) float64 {
		return math.Pow(x, p)
	}
}

// Reciprocal computes 1/x. Zero maps to ±Inf; nothing is guarded.
func Reciprocal(x float64) float64 {
	return 1 / x
}

// Compose chains fns left to right: Compose(f, g)(x) == g(f(x)).
// Nil entries are skipped; Compose() is Identity.
// Complexity: O(len(fns)) per call.
func Compose(fns ...MapFunc) MapFunc {
	chain := make([]MapFunc, 0, len(fns))
	for _, fn := range fns {
		if fn != nil {
			chain = append(chain, fn)
		}
	}
	if len(chain) == 0 {
		return Identity
	}

	return func(x float64) float64 {
		for _, fn := range chain {
			x = fn(x)
		}

		return x
	}
}

// resolveMapFunc returns the first MapFunc in fn if it is non-nil,
// otherwise Identity.
func resolveMapFunc(fn ...MapFunc) MapFunc {
	if len(fn) > 0 && fn[0] != nil {
		return fn[0]
	}

	return Identity
}
