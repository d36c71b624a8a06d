// SPDX-License-Identifier: MIT
// Package: order
//
// Purpose:
//  - Provide a single, canonical source of truth for order-matrix validation.
//  - Keep the walk dispatcher minimal by delegating shape/rank/admissibility
//    checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap
//    uniformly.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; rank runs exact elimination.
//
// Note:
//  - Matrices built by this package's constructors already hold these
//    invariants; Validate exists for dispatch-time revalidation of values
//    that may be zero or may come from an untrusted construction path.

package order

// ValidateDimension ensures m is a constructed n×n matrix for the expected
// variable count.
//
// Returns ErrInvalidDimension if nvars <= 0 or m is a zero value;
// ErrDimensionMismatch if the sizes disagree.
// Complexity: O(1).
func ValidateDimension(m Matrix, nvars int) error {
	if nvars <= 0 || m.n == 0 {
		return ErrInvalidDimension
	}
	if m.n != nvars {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateFullRank ensures the matrix rows span n independent directions.
//
// Returns ErrRankDeficient on failure. Assumes a constructed matrix
// (caller runs ValidateDimension first).
// Complexity: O(n³) exact arithmetic.
func ValidateFullRank(m Matrix) error {
	if rankRows(m.Rows(), m.n) < m.n {
		return ErrRankDeficient
	}

	return nil
}

// ValidateAdmissible ensures the matrix induces a global monomial order
// (each column's topmost nonzero entry positive).
//
// Returns ErrNotAdmissible on failure.
// Complexity: O(n²).
func ValidateAdmissible(m Matrix) error {
	if !admissibleRows(m.Rows(), m.n) {
		return ErrNotAdmissible
	}

	return nil
}

// Validate runs the full dispatch-time check sequence on an order matrix.
// Fixed sequence: Dimension → FullRank → Admissible.
//
// Complexity: O(n³).
func Validate(m Matrix, nvars int) error {
	if err := ValidateDimension(m, nvars); err != nil {
		return err
	}
	if err := ValidateFullRank(m); err != nil {
		return err
	}

	return ValidateAdmissible(m)
}
