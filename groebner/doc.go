// Package groebner computes Gröbner bases of polynomial ideals over ℚ
// via Buchberger's algorithm, together with the multivariate division
// (normal form) it is built from.
//
// 🚀 What is a Gröbner basis?
//
//	A generating set of an ideal whose leading terms generate the ideal
//	of all leading terms. Once a basis is in hand, ideal membership,
//	elimination and normal forms become mechanical. It is the engine
//	room of:
//	  • Polynomial system solving
//	  • Ideal membership & radical tests
//	  • Elimination of variables (lex bases)
//	  • Monomial-order conversion (see the walk package)
//
// ✨ Key features:
//   - Std: Buchberger completion with the product criterion and a
//     deterministic smallest-lcm pair selection
//   - NormalForm: complete (tail) reduction against any generator list
//   - SPoly: exposed for callers that drive their own completion
//   - reduced output: minimal, interreduced, monic, sorted by leading
//     monomial ascending; canonical for a fixed order
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gwalk/groebner"
//
//	G, err := groebner.Std(I, true) // true ⇒ fully reduced basis
//	r, err := groebner.NormalForm(p, G)
//
// Determinism:
//
//	Identical inputs give identical bases, term for term. Pair selection,
//	divisor choice and output ordering are all fixed by the ring's
//	monomial order and generator positions; no map iteration is involved.
//
// Performance:
//
//	Buchberger is doubly exponential in the worst case; the practical
//	cost is dominated by normal forms. All coefficient arithmetic is
//	exact *big.Rat.
//
// See example_test.go for a runnable elimination example.
package groebner
