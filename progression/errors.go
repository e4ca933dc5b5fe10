// SPDX-License-Identifier: MIT
// Package: progressions/progression
//
// errors.go — sentinel errors for the progression package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via progressionErrorf; the
//     sentinel itself is never re-created with formatted text.
//   • Algorithms MUST NOT panic; validation panics are confined to option
//     constructors (WithEpsilon).

package progression

import (
	"errors"
	"fmt"
)

// ErrRange indicates an argument outside the domain of the operation.
// Typical origins:
//   - a predicate called with fewer than MinSequenceLength terms,
//   - a zero start or zero scale passed to the geometric/harmonic generators,
//   - a negative length passed to any generator,
//   - lower > upper passed to SumFromBounds/ProductFromBounds,
//   - an empty sequence passed to Mean,
//   - fewer than MinNeighbourhoodLength terms passed to IsMeanOfNeighbours.
//
// Usage: if errors.Is(err, ErrRange) { /* reject input */ }.
var ErrRange = errors.New("progression: value out of range")

// ErrUnknownKind indicates a Kind outside Arithmetic, Geometric and Harmonic
// was passed to a kind-keyed lookup (GeneratorFor, PredicateFor, Mean).
// Usage: if errors.Is(err, ErrUnknownKind) { /* pick a concrete kind */ }.
var ErrUnknownKind = errors.New("progression: unknown progression kind")

// progressionErrorf wraps sentinel with the method name and a formatted detail.
// The result reads "<method>: <detail>: <sentinel>" and satisfies
// errors.Is(result, sentinel).
func progressionErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
