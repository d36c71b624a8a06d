// SPDX-License-Identifier: MIT
// Package: order
//
// Purpose:
//   - Single, stable catalog of sentinel errors for the order package.
//   - Call sites return these sentinels unwrapped; outer boundaries may wrap
//     with fmt.Errorf("ctx: %w", Err...) while preserving errors.Is matching.
//
// NOTE ON NAMING & PREFIXING:
//   - Every message carries the "order: " prefix so a bubbled-up error names
//     its origin package without needing a stack trace.

package order

import "errors"

var (
	// ErrNotSquare reports a row set whose width differs from its height
	// after weight-row completion, or rows of unequal length.
	ErrNotSquare = errors.New("order: matrix is not square")

	// ErrInvalidDimension reports a non-positive variable count.
	ErrInvalidDimension = errors.New("order: dimension must be positive")

	// ErrRankDeficient reports a matrix (or a weight-row completion attempt)
	// whose rows do not span n independent directions.
	ErrRankDeficient = errors.New("order: matrix is rank deficient")

	// ErrNotAdmissible reports a matrix that does not induce a global
	// monomial order (some column's topmost nonzero entry is negative).
	ErrNotAdmissible = errors.New("order: matrix does not induce a global order")

	// ErrUnknownName reports an order name outside {lex, deglex, degrevlex}.
	ErrUnknownName = errors.New("order: unknown order name")

	// ErrWeightLength reports a weight row whose length differs from the
	// matrix dimension.
	ErrWeightLength = errors.New("order: weight row length mismatch")

	// ErrTooManyWeights reports more than two prepended weight rows.
	ErrTooManyWeights = errors.New("order: at most two weight rows may be prepended")

	// ErrDimensionMismatch reports a matrix whose dimension differs from the
	// variable count it is validated against.
	ErrDimensionMismatch = errors.New("order: matrix dimension mismatch")
)
