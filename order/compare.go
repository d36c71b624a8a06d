// SPDX-License-Identifier: MIT
// Package: order
//
// compare.go - the term comparison induced by a weight matrix.
//
// Hot-path discipline:
//   - Compare runs inside every polynomial sort and lead-term scan, so it
//     performs no validation and no allocation. Callers guarantee exponent
//     vectors of length Dim(); rings enforce this invariant at construction.
//   - Row dots accumulate in int64. Entries admitted into a Matrix stay within
//     the int32 safe range, so overflow would need exponents beyond any
//     realistic polynomial degree.

package order

// Compare orders two exponent vectors under the matrix order: it returns
// +1 if a > b, -1 if a < b, and 0 if the vectors are equal under the order
// (all row dots tie). The decision is the sign of the first row whose dot
// product with a-b is nonzero.
//
// Contract: len(a) == len(b) == Dim(); not rechecked here.
// Complexity: O(n²) worst case, O(n) typical (first row usually decides).
func (m Matrix) Compare(a, b []int) int {
	var (
		s    int64
		i, j int // loop iterators
	)
	for i = 0; i < m.n; i++ {
		s = 0
		for j = 0; j < m.n; j++ {
			s += m.data[i*m.n+j] * int64(a[j]-b[j])
		}
		if s > 0 {
			return 1
		}
		if s < 0 {
			return -1
		}
	}

	return 0
}

// Less reports a < b under the matrix order. Thin wrapper over Compare for
// sort callbacks.
// Complexity: as Compare.
func (m Matrix) Less(a, b []int) bool { return m.Compare(a, b) < 0 }
