// Package ring implements multivariate polynomials over the rationals with
// pluggable matrix monomial orders, plus the Ideal container the Gröbner
// machinery operates on.
//
// Everything is a value with copy-on-read accessors:
//
//   - Term: one coefficient–exponent pair (exact *big.Rat coefficient).
//   - Poly: an immutable term list kept strictly descending under the ring's
//     order; arithmetic returns new polynomials and never mutates operands.
//   - Ring: variable names plus an order.Matrix; full rank of the matrix
//     makes the term order total, so equal-compare terms have equal
//     exponents and merging is well defined.
//   - Ideal: an ordered generator list bound to a Ring, with an isGB flag
//     that records "currently known to be a Gröbner basis". Ideals are
//     replaced, not mutated: every order change produces a new Ideal bound
//     to a new Ring.
//
// ChangeRing re-expresses terms verbatim under another ring's order: a
// representation change only, never a mathematical transformation. Since a
// Gröbner property is order-relative, ChangeRing always clears the isGB
// flag; callers re-mark when theory guarantees the property.
//
// Coefficients are fixed to ℚ (math/big). Generalizing the coefficient
// field is explicitly out of scope.
package ring
