package groebner

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/gwalk/ring"
)

// Sentinel errors returned by this package. Callers match with errors.Is.
var (
	// ErrNilIdeal indicates a nil *ring.Ideal argument.
	ErrNilIdeal = errors.New("groebner: nil ideal")

	// ErrRingMismatch indicates operands bound to different ring instances.
	ErrRingMismatch = errors.New("groebner: operands bound to different rings")

	// ErrZeroPolynomial indicates an s-polynomial request on a zero operand.
	ErrZeroPolynomial = errors.New("groebner: s-polynomial of a zero polynomial")
)

// NormalForm — multivariate division with remainder
//
// Description:
//
//	Reduces p modulo the generators of I until no term of the result is
//	divisible by any generator's leading monomial (complete reduction,
//	tails included). The remainder is unique when I is a Gröbner basis;
//	for an arbitrary generator list it depends on generator positions,
//	which this implementation fixes deterministically (first divisor in
//	slice order wins).
//
// Algorithm Outline:
//  1. work ← p, rem ← 0.
//  2. While work ≠ 0, let t be its leading term.
//  3. If some generator g has lead(g) | t, subtract (t/lead(g))·g from
//     work; the leading monomial strictly drops.
//  4. Otherwise t is irreducible: move it from work into rem.
//  5. Return rem once work is exhausted.
//
// Complexity:
//
//	Each iteration strictly decreases the leading monomial in a
//	well-founded order, so the loop terminates. Cost is O(steps·k·n)
//	term operations with exact coefficient arithmetic.
//
// Errors:
//   - ErrNilIdeal      — I is nil.
//   - ErrRingMismatch  — p and I live in different rings.
func NormalForm(p ring.Poly, I *ring.Ideal) (ring.Poly, error) {
	if I == nil {
		return ring.Poly{}, ErrNilIdeal
	}
	if p.Ring() != I.Ring() {
		return ring.Poly{}, ErrRingMismatch
	}

	return normalFormList(p, I.Generators())
}

// normalFormList is the engine behind NormalForm, shared with Buchberger
// completion where the divisor set is a plain slice mid-growth.
// Callers guarantee all operands share one ring.
func normalFormList(p ring.Poly, gens []ring.Poly) (ring.Poly, error) {
	var (
		rem  []ring.Term // irreducible terms, collected in descending order
		work = p
		err  error
		i    int // divisor scan index
	)
	for !work.IsZero() {
		lt := work.LeadingTerm()
		reduced := false
		for i = 0; i < len(gens); i++ {
			le := gens[i].LeadingExponent()
			if !divides(le, lt.Exp) {
				continue
			}
			// Cancel the lead: work -= (lt / lead(g))·g.
			var gm ring.Poly
			if gm, err = gens[i].MulTerm(quotientTerm(lt, le, gens[i].LeadingCoeff())); err != nil {
				return ring.Poly{}, fmt.Errorf("normal form: %w", err)
			}
			if work, err = work.Sub(gm); err != nil {
				return ring.Poly{}, fmt.Errorf("normal form: %w", err)
			}
			reduced = true

			break
		}
		if reduced {
			continue
		}

		// Irreducible lead: shift it into the remainder.
		rem = append(rem, lt)
		var mono ring.Poly
		if mono, err = ring.NewPoly(p.Ring(), lt); err != nil {
			return ring.Poly{}, fmt.Errorf("normal form: %w", err)
		}
		if work, err = work.Sub(mono); err != nil {
			return ring.Poly{}, fmt.Errorf("normal form: %w", err)
		}
	}

	return ring.NewPoly(p.Ring(), rem...)
}

// divides reports whether monomial a divides monomial b (componentwise ≤).
func divides(a, b []int) bool {
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}

	return true
}

// quotientTerm returns the term q with q·(lc·x^le) equal to t.
func quotientTerm(t ring.Term, le []int, lc *big.Rat) ring.Term {
	e := make([]int, len(t.Exp))
	for i := range e {
		e[i] = t.Exp[i] - le[i]
	}

	return ring.Term{Coeff: new(big.Rat).Quo(t.Coeff, lc), Exp: e}
}
