// SPDX-License-Identifier: MIT
// Package: gwalk/ideals
//
// ideals.go — the Cyclic(r) and Katsura(r) constructors.
//
// Contract:
//   • r.N() ≥ 2 (else ErrTooFewVariables).
//   • Generator order is fixed: Cyclic emits the degree-k sums for
//     k=1..n-1 then the product relation; Katsura emits the linear
//     relation then the convolutions for k=0..n-2.
//   • Coefficients are exact rationals; duplicate monomials merge.
//
// Complexity:
//   • Cyclic: O(n²) terms. Katsura: O(n²) terms.
//
// Determinism:
//   • Pure functions of the ring; identical rings give identical ideals.

package ideals

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/gwalk/ring"
)

const (
	methodCyclic  = "Cyclic"
	methodKatsura = "Katsura"
	minVariables  = 2
)

// ErrTooFewVariables rejects rings too small for a catalog ideal.
var ErrTooFewVariables = errors.New("ideals: ring needs at least two variables")

// Cyclic returns the cyclic-n ideal in r: for k = 1..n-1 the sum of all
// cyclically consecutive degree-k products, plus x_0···x_{n-1} - 1.
func Cyclic(r *ring.Ring) (*ring.Ideal, error) {
	n := r.N()
	if n < minVariables {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCyclic, n, minVariables, ErrTooFewVariables)
	}

	gens := make([]ring.Poly, 0, n)
	for k := 1; k < n; k++ {
		terms := make([]ring.Term, 0, n)
		for i := 0; i < n; i++ {
			exp := make([]int, n)
			for j := 0; j < k; j++ {
				exp[(i+j)%n]++
			}
			terms = append(terms, ring.Term{Coeff: big.NewRat(1, 1), Exp: exp})
		}
		p, err := ring.NewPoly(r, terms...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodCyclic, err)
		}
		gens = append(gens, p)
	}

	all := make([]int, n)
	for i := range all {
		all[i] = 1
	}
	last, err := ring.NewPoly(r,
		ring.Term{Coeff: big.NewRat(1, 1), Exp: all},
		ring.Term{Coeff: big.NewRat(-1, 1), Exp: make([]int, n)},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCyclic, err)
	}
	gens = append(gens, last)

	I, err := ring.NewIdeal(r, gens...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCyclic, err)
	}

	return I, nil
}

// Katsura returns the Katsura ideal in r, reading the variables as the
// magnetization moments u_0..u_{n-1}: the normalization
// u_0 + 2·(u_1 + … + u_{n-1}) - 1 followed by the convolution relations
// Σ u_{|l|}·u_{|k-l|} - u_k for k = 0..n-2, both sums over |l| ≤ n-1
// with |k-l| ≤ n-1.
func Katsura(r *ring.Ring) (*ring.Ideal, error) {
	n := r.N()
	if n < minVariables {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodKatsura, n, minVariables, ErrTooFewVariables)
	}
	m := n - 1

	gens := make([]ring.Poly, 0, n)
	terms := make([]ring.Term, 0, n+1)
	terms = append(terms, ring.Term{Coeff: big.NewRat(1, 1), Exp: unitExp(n, 0)})
	for l := 1; l <= m; l++ {
		terms = append(terms, ring.Term{Coeff: big.NewRat(2, 1), Exp: unitExp(n, l)})
	}
	terms = append(terms, ring.Term{Coeff: big.NewRat(-1, 1), Exp: make([]int, n)})
	lin, err := ring.NewPoly(r, terms...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodKatsura, err)
	}
	gens = append(gens, lin)

	for k := 0; k < m; k++ {
		terms = terms[:0]
		for l := -m; l <= m; l++ {
			if d := abs(k - l); d <= m {
				exp := unitExp(n, abs(l))
				exp[d]++
				terms = append(terms, ring.Term{Coeff: big.NewRat(1, 1), Exp: exp})
			}
		}
		terms = append(terms, ring.Term{Coeff: big.NewRat(-1, 1), Exp: unitExp(n, k)})
		p, err := ring.NewPoly(r, terms...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodKatsura, err)
		}
		gens = append(gens, p)
	}

	I, err := ring.NewIdeal(r, gens...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodKatsura, err)
	}

	return I, nil
}

// unitExp returns the exponent vector of the i-th variable.
func unitExp(n, i int) []int {
	e := make([]int, n)
	e[i] = 1

	return e
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
