// SPDX-License-Identifier: MIT

// Package progression: functional configuration for tolerance-based checks.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that starts from documented defaults.
//
// Design goals:
//   - Deterministic behavior: no global state; options are resolved per call.
//   - Exact predicates (arithmetic, geometric) take no options at all.
package progression

import "math"

const panicEpsilonInvalid = "progression: WithEpsilon: eps must be finite and > 0"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps float64 // > 0; DefaultEpsilon
}

// WithEpsilon sets the tolerance used by IsHarmonicProgression and
// IsMeanOfNeighbours. Two values a and b are treated as equal when |a-b| < eps.
//
// Panics with a stable message when eps is NaN, ±Inf or not strictly positive:
// under a strict "<" comparison eps = 0 would reject every sequence.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// defaultOptions returns the zero-configuration state.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// gatherOptions applies opts in order over the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Epsilon reports the resolved tolerance. Exposed for callers that mirror the
// package's numeric policy in their own comparisons.
func (o Options) Epsilon() float64 {
	return o.eps
}

// ResolveOptions returns the effective Options for opts.
func ResolveOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}
