// SPDX-License-Identifier: MIT
// Package: order
//
// matrix.go - the Matrix value type and the canonical constructors.
//
// Design contract (strict):
//   - Matrix is immutable after construction; accessors hand out copies.
//   - Constructors validate eagerly and return sentinel errors (no panics).
//   - Entries admitted through constructors stay within the int32 safe range
//     ⇒ row-dot comparisons fit comfortably in int64.
//
// Determinism:
//   - All loops run in fixed index order; equal inputs yield equal matrices.

package order

import (
	"fmt"
	"strings"
)

// Named symbolic orders accepted by FromName.
const (
	NameLex       = "lex"
	NameDegLex    = "deglex"
	NameDegRevLex = "degrevlex"
)

// Matrix is a square n×n integer weight matrix encoding a monomial order:
// terms are compared by the first row whose dot with the exponent difference
// is nonzero. The zero value is unusable; construct via NewMatrix, Lex,
// DegLex, DegRevLex, FromName or Weighted.
type Matrix struct {
	n    int     // number of variables (rows == cols == n)
	data []int64 // flat row-major backing, length n*n
}

// NewMatrix builds a Matrix from explicit rows.
// Stage 1 (Shape): rows must form a non-empty square set of equal length.
// Stage 2 (Rank): rows must be linearly independent (exact check).
// Stage 3 (Admissibility): each column's topmost nonzero entry must be positive.
// Complexity: O(n³) exact rank elimination dominates.
func NewMatrix(rows [][]int64) (Matrix, error) {
	n := len(rows)
	if n == 0 {
		return Matrix{}, ErrInvalidDimension
	}
	var i, j int // loop iterators
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return Matrix{}, ErrNotSquare
		}
	}

	m := Matrix{n: n, data: make([]int64, n*n)}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			m.data[i*n+j] = rows[i][j]
		}
	}
	if rankRows(rows, n) < n {
		return Matrix{}, ErrRankDeficient
	}
	if !admissibleRows(rows, n) {
		return Matrix{}, ErrNotAdmissible
	}

	return m, nil
}

// Lex returns the lexicographic order matrix: the n×n identity.
// Complexity: O(n²).
func Lex(n int) (Matrix, error) {
	if n <= 0 {
		return Matrix{}, ErrInvalidDimension
	}
	m := Matrix{n: n, data: make([]int64, n*n)}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// DegLex returns the degree-lexicographic order matrix: an all-ones first
// row (total degree), then the first n-1 identity rows as tie-breaks.
// Complexity: O(n²).
func DegLex(n int) (Matrix, error) {
	if n <= 0 {
		return Matrix{}, ErrInvalidDimension
	}
	m := Matrix{n: n, data: make([]int64, n*n)}
	var i int
	for i = 0; i < n; i++ {
		m.data[i] = 1 // row 0: total degree
	}
	for i = 1; i < n; i++ {
		m.data[i*n+i-1] = 1 // row i prefers variable i-1
	}

	return m, nil
}

// DegRevLex returns the degree-reverse-lexicographic order matrix: an
// all-ones first row, then anti-diagonal -1 tie-break rows (row i holds -1
// in column n-i), the standard matrix encoding of degrevlex.
// Complexity: O(n²).
func DegRevLex(n int) (Matrix, error) {
	if n <= 0 {
		return Matrix{}, ErrInvalidDimension
	}
	m := Matrix{n: n, data: make([]int64, n*n)}
	var i int
	for i = 0; i < n; i++ {
		m.data[i] = 1 // row 0: total degree
	}
	for i = 1; i < n; i++ {
		m.data[i*n+n-i] = -1 // row i penalizes variable n-i
	}

	return m, nil
}

// FromName resolves a symbolic order name to its canonical matrix.
// Accepted names: "lex", "deglex", "degrevlex" (constants above).
// Returns ErrUnknownName for anything else.
// Complexity: O(n²).
func FromName(name string, n int) (Matrix, error) {
	switch name {
	case NameLex:
		return Lex(n)
	case NameDegLex:
		return DegLex(n)
	case NameDegRevLex:
		return DegRevLex(n)
	default:
		return Matrix{}, fmt.Errorf("%q: %w", name, ErrUnknownName)
	}
}

// Dim returns the number of variables n (matrix is n×n).
// Complexity: O(1).
func (m Matrix) Dim() int { return m.n }

// Entry returns the entry at row i, column j. Out-of-range indices panic as
// they would on a raw slice; callers index within [0, Dim()).
// Complexity: O(1).
func (m Matrix) Entry(i, j int) int64 { return m.data[i*m.n+j] }

// Row returns a copy of row i.
// Complexity: O(n).
func (m Matrix) Row(i int) []int64 {
	row := make([]int64, m.n)
	copy(row, m.data[i*m.n:(i+1)*m.n])

	return row
}

// Weight returns a copy of the first row, the order's leading weight,
// used as the start/target weight vector of a walk.
// Complexity: O(n).
func (m Matrix) Weight() []int64 { return m.Row(0) }

// Rows returns a deep copy of all rows.
// Complexity: O(n²).
func (m Matrix) Rows() [][]int64 {
	rows := make([][]int64, m.n)
	for i := 0; i < m.n; i++ {
		rows[i] = m.Row(i)
	}

	return rows
}

// Equal reports whether two matrices have identical dimension and entries.
// Complexity: O(n²).
func (m Matrix) Equal(o Matrix) bool {
	if m.n != o.n {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders the matrix as nested bracketed rows, e.g. "[[1 1] [0 -1]]".
// Intended for diagnostics and test failure messages only.
func (m Matrix) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", m.data[i*m.n+j])
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')

	return b.String()
}
