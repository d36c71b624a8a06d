// SPDX-License-Identifier: MIT
// Package: order
//
// weighted.go - weight-row prepending, the order construction behind every
// cone crossing: "maximize by these weight rows first, break ties by the
// base matrix".
//
// Design contract (strict):
//   - At most two weight rows may be prepended.
//   - Rows are admitted in priority order (weights first, then base rows);
//     a row linearly dependent on the rows before it is skipped, which never
//     changes the induced order (its dot vanishes whenever all earlier dots
//     do). Exactly n independent rows must result, else ErrRankDeficient.
//   - The completed matrix must still be admissible.

package order

// Weighted returns the order "weight rows first, then base". It prepends the
// given weight rows ahead of base's rows and completes them to a full-rank
// n×n matrix by keeping each subsequent row only if it is independent of the
// rows already kept.
//
// Contract:
//   - base must be a constructed Matrix (full rank, admissible).
//   - 0 ≤ len(weights) ≤ 2; each weight row has length base.Dim().
//
// Errors: ErrTooManyWeights, ErrWeightLength, ErrRankDeficient,
// ErrNotAdmissible.
// Complexity: O(n⁴) exact-arithmetic worst case (n rank checks of n rows).
func Weighted(base Matrix, weights ...[]int64) (Matrix, error) {
	n := base.n
	if n == 0 {
		return Matrix{}, ErrInvalidDimension
	}
	if len(weights) > 2 {
		return Matrix{}, ErrTooManyWeights
	}
	for _, w := range weights {
		if len(w) != n {
			return Matrix{}, ErrWeightLength
		}
	}

	kept := make([][]int64, 0, n)
	admit := func(row []int64) {
		if len(kept) == n {
			return
		}
		if rankRows(append(kept, row), n) > len(kept) {
			cp := make([]int64, n)
			copy(cp, row)
			kept = append(kept, cp)
		}
	}

	// 1) Weight rows take precedence, in the order given.
	for _, w := range weights {
		admit(w)
	}
	// 2) Base rows fill the remaining tie-break positions.
	for i := 0; i < n; i++ {
		admit(base.Row(i))
	}
	if len(kept) < n {
		return Matrix{}, ErrRankDeficient
	}
	if !admissibleRows(kept, n) {
		return Matrix{}, ErrNotAdmissible
	}

	m := Matrix{n: n, data: make([]int64, n*n)}
	for i := 0; i < n; i++ {
		copy(m.data[i*n:(i+1)*n], kept[i])
	}

	return m, nil
}
