// Package walk converts Gröbner bases between monomial orders by
// walking the Gröbner fan, one cone at a time, instead of recomputing
// the basis from scratch under the target order.
//
// 🚀 What is a Gröbner walk?
//
//	The Gröbner bases of an ideal partition the space of weight vectors
//	into finitely many cones: all weights in one cone select the same
//	leading terms. A walk follows a path from a cone of the start order
//	to a cone of the target order. At each boundary only the
//	initial-form ideal (usually a handful of short polynomials) has to
//	be completed, and that small basis lifts back to a full one. For the
//	classic hard case, degrevlex → lex in many variables, this is often
//	orders of magnitude cheaper than a direct computation. Typical uses:
//	  • elimination and equation solving (lex bases expose triangularity)
//	  • implicitization of parametric varieties
//	  • basis caches keyed by order, converted on demand
//
// ✨ Key features:
//   - five strategies: Standard, Generic, Perturbed, Tran, Fractal
//     (plus the FractalStartOrder / FractalLex / FractalLookAhead /
//     FractalCombined refinements)
//   - exact arithmetic end to end: big.Rat coefficients, big.Int
//     weights, no floating point anywhere on the path
//   - pluggable Engine backend; groebner.Engine is the default
//   - structured progress logging (crossed weights at Info,
//     intermediate bases at Debug)
//   - deterministic output: a fresh target ring, generators ascending
//     by leading monomial
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/gwalk/ring"
//	  "github.com/katalvlaran/gwalk/walk"
//	)
//
//	// I is an ideal in a degrevlex ring.
//	res, err := walk.ConvertNamed(I, "degrevlex", "lex",
//	  walk.WithStrategy(walk.Generic),
//	)
//	if err != nil { ... }
//	fmt.Println(res.Basis, res.Steps)
//
// Choosing a strategy:
//
//   - Standard — the baseline; fine for small fans.
//   - Generic  — no intermediate weight vectors at all, immune to
//     weight explosion; usually the robust choice.
//   - Perturbed — pushes the path off low-dimensional faces; good when
//     Standard stalls on degenerate cones.
//   - Tran — Perturbed's idea applied to the target side only.
//   - Fractal — recursive perturbation, strongest on long paths; the
//     refinements trade generality for shortcuts.
//
// Performance:
//
//   - Each step costs one engine call on an initial-form ideal plus a
//     lift; both are small compared to a direct target-order run.
//   - The number of cones on a path has no simple bound; pass a logger
//     to watch progress on stubborn inputs.
//
// See example_test.go for complete conversions.
package walk
