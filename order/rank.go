// SPDX-License-Identifier: MIT
// Package: order
//
// rank.go - exact linear-algebra checks backing matrix validation.
//
// Purpose:
//   - rankRows: rank of an integer row set, computed by Gaussian elimination
//     over exact rationals (math/big), so validation never suffers float drift.
//   - admissibleRows: the global-order test (topmost nonzero per column > 0).
//
// Determinism & Performance:
//   - Fixed pivot scan order (first nonzero row per column); no randomization.
//   - Exact arithmetic; O(k·n²) rational operations for k rows of width n.

package order

import "math/big"

// rankRows returns the rank of the given rows (each of length width) over ℚ.
// Rows shorter than width must not be passed; callers validate shape first.
// Complexity: O(k·n²) big.Rat operations.
func rankRows(rows [][]int64, width int) int {
	k := len(rows)
	if k == 0 || width == 0 {
		return 0
	}

	// Copy into exact rationals; elimination mutates the working copy only.
	a := make([][]*big.Rat, k)
	var r, c int // loop iterators
	for r = 0; r < k; r++ {
		a[r] = make([]*big.Rat, width)
		for c = 0; c < width; c++ {
			a[r][c] = new(big.Rat).SetInt64(rows[r][c])
		}
	}

	var (
		rank  int
		pivot int
		f     = new(big.Rat)
		tmp   = new(big.Rat)
	)
	for c = 0; c < width && rank < k; c++ {
		// 1) Locate the first row at or below `rank` with a nonzero entry.
		pivot = -1
		for r = rank; r < k; r++ {
			if a[r][c].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue // column already eliminated
		}
		a[rank], a[pivot] = a[pivot], a[rank]

		// 2) Eliminate the column below the pivot row.
		for r = rank + 1; r < k; r++ {
			if a[r][c].Sign() == 0 {
				continue
			}
			f.Quo(a[r][c], a[rank][c])
			for j := c; j < width; j++ {
				tmp.Mul(f, a[rank][j])
				a[r][j] = new(big.Rat).Sub(a[r][j], tmp)
			}
		}
		rank++
	}

	return rank
}

// admissibleRows reports whether the row set induces a global monomial order:
// scanning each column top-down, the first nonzero entry must be positive.
// A column with no nonzero entry fails (such a matrix cannot have full rank
// anyway, but the check stays independent for precise error reporting).
// Complexity: O(k·n).
func admissibleRows(rows [][]int64, width int) bool {
	k := len(rows)
	var r, c int
	for c = 0; c < width; c++ {
		found := false
		for r = 0; r < k; r++ {
			if rows[r][c] != 0 {
				if rows[r][c] < 0 {
					return false
				}
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
