// Package gwalk converts Gröbner bases between monomial orders by walking
// the Gröbner fan: compute once under a cheap order, then slide the basis
// cone by cone to the order you actually need.
//
// 🚀 What is gwalk?
//
//	A pure-Go computer-algebra kit for polynomial rings over QQ:
//		• Matrix monomial orders: lex, deglex, degrevlex, weighted refinements
//		• Exact arithmetic: big.Rat coefficients, no floating-point drift
//		• Buchberger engine: S-polynomials, normal forms, reduced bases
//		• Walk strategies: standard, generic, perturbed, Tran, fractal
//		• Benchmark catalog: cyclic-n and Katsura-n generators
//
// ✨ Why choose gwalk?
//
//   - Deterministic – same input, same basis, same path, every run
//   - Exact – rational arithmetic end to end, overflow handled explicitly
//   - Observable – structured zap logging of every cone crossing
//   - Pluggable – swap the basis engine behind a two-method interface
//
// Under the hood, everything is organized under five subpackages:
//
//	order/    — monomial orders as integer matrices + comparisons
//	ring/     — terms, polynomials, ideals over QQ[x1..xn]
//	groebner/ — Buchberger's algorithm & normal forms
//	walk/     — the conversion strategies and their options
//	ideals/   — ready-made benchmark systems
//
// Quick example:
//
//	    degrevlex basis          lex basis
//	    <x^2 - y, y^2 - x>  ⇒  <y^4 - y, x - y^2>
//
//	three cone crossings turn the fast basis into the triangular one.
//
// Next up: modular coefficient fields, parallel engine calls and beyond.
// Dive into examples/ for end-to-end conversions with logging and the
// strategy tour.
//
//	go get github.com/katalvlaran/gwalk
package gwalk
