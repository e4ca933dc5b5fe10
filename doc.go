// Package progressions is a small toolbox for numeric progressions:
// generating them, recognising them and folding them into sums and products.
//
// 🚀 What is in the box?
//
//	A pure-Go, zero-state library that brings together:
//		• Generators: arithmetic, geometric and harmonic progressions
//		• Predicates: detect a progression and recover its common parameter
//		• Aggregators: Σ and Π over inclusive bounds or a slice, with a map step
//		• Classification: find which progression a sequence is, if any
//		• Means: arithmetic, geometric and harmonic means of terms (gonum/stat)
//
// ✨ Why progressions?
//
//   - Referentially transparent: no globals, no I/O, safe from any goroutine
//   - Exact floating-point semantics: power-per-term generators, exact equality
//     for arithmetic/geometric checks, tolerance only where reciprocals demand it
//   - Sentinel errors: branch with errors.Is(err, progression.ErrRange)
//
// Everything lives in one subpackage:
//
//	progression/ — constants, types, generators, predicates, totals, classify, means
//
// Quick example:
//
//	seq, _ := progression.NewGeometricProgression(1, 5, progression.PerfectFifth)
//	kind, res, _ := progression.Classify(seq)
//	// kind == progression.Geometric, res.Parameter == 1.5
//
//	go get github.com/katalvlaran/progressions/progression
package progressions
