// SPDX-License-Identifier: MIT

// Package order encodes monomial orders as square integer weight matrices.
//
// The order package provides:
//
//   - Canonical constructors for the named orders: Lex, DegLex, DegRevLex,
//     plus FromName for symbolic resolution ("lex", "deglex", "degrevlex").
//   - NewMatrix for arbitrary user-supplied row sets, with strict validation
//     (square shape, full rank, admissibility) behind sentinel errors.
//   - Weighted, which prepends up to two weight rows ahead of a base matrix
//     and completes them to a full-rank n×n order by greedy row selection:
//     the "order by this weight first, break ties by matrix rows" construction
//     used at every cone crossing of a Gröbner walk.
//   - Compare, the exact term comparison induced by the matrix: the sign of
//     the first row whose dot product with the exponent difference is nonzero.
//
// A matrix is admissible when every column's topmost nonzero entry is positive;
// together with full rank this makes the induced relation a global monomial
// order (1 is the smallest monomial, so division terminates). Lex's identity
// matrix and the all-ones first rows of the degree orders both satisfy it.
//
// All arithmetic used for validation (rank, admissibility) is exact; only the
// per-comparison row dots use machine integers, which is safe because every
// weight row admitted into a matrix is bounded by the int32 safe range.
//
// See the examples in this package for usage patterns.
package order
