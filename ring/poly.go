// This file implements Poly: construction, term accessors, exact arithmetic,
// and order re-expression (ChangeRing).
//
// Representation invariant (all constructors and operations preserve it):
//   - terms are strictly descending under the ring's order matrix;
//   - no term has a zero coefficient;
//   - no two terms share an exponent vector (full-rank orders are total on
//     exponents, so "compare equal" and "equal exponents" coincide).

package ring

import (
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// Poly is an immutable multivariate polynomial bound to a Ring. The zero
// polynomial has an empty term list. Arithmetic returns new values; a Poly
// can be shared freely.
type Poly struct {
	r     *Ring
	terms []Term
}

// NewPoly builds a polynomial from the given terms: coefficients and
// exponents are copied, zero terms dropped, duplicate exponents merged, and
// the result sorted descending under r's order.
//
// Errors: ErrNilRing, ErrExponentWidth, ErrNegativeExponent.
// Complexity: O(k log k) for k terms.
func NewPoly(r *Ring, terms ...Term) (Poly, error) {
	if r == nil {
		return Poly{}, ErrNilRing
	}
	owned := make([]Term, 0, len(terms))
	for _, t := range terms {
		if len(t.Exp) != r.N() {
			return Poly{}, ErrExponentWidth
		}
		for _, e := range t.Exp {
			if e < 0 {
				return Poly{}, ErrNegativeExponent
			}
		}
		if t.isZero() {
			continue
		}
		owned = append(owned, t.clone())
	}

	return Poly{r: r, terms: sortMerge(r, owned)}, nil
}

// Zero returns the zero polynomial of the ring.
func (r *Ring) Zero() Poly { return Poly{r: r} }

// sortMerge sorts owned terms descending under r's order and merges equal
// exponents, dropping cancellations. The input slice is consumed.
func sortMerge(r *Ring, owned []Term) []Term {
	if len(owned) == 0 {
		return nil
	}
	ord := r.ord
	sort.Slice(owned, func(i, j int) bool {
		return ord.Compare(owned[i].Exp, owned[j].Exp) > 0
	})

	out := owned[:1]
	for _, t := range owned[1:] {
		last := &out[len(out)-1]
		if ord.Compare(last.Exp, t.Exp) == 0 {
			last.Coeff.Add(last.Coeff, t.Coeff)
			continue
		}
		if last.Coeff.Sign() == 0 {
			out = out[:len(out)-1] // cancelled by the merge above
		}
		out = append(out, t)
	}
	if out[len(out)-1].Coeff.Sign() == 0 {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

// Ring returns the ring the polynomial is bound to.
func (p Poly) Ring() *Ring { return p.r }

// IsZero reports whether p has no terms.
func (p Poly) IsZero() bool { return len(p.terms) == 0 }

// Len returns the number of terms.
func (p Poly) Len() int { return len(p.terms) }

// Terms returns a deep copy of the term list, leading term first.
// Complexity: O(k·n).
func (p Poly) Terms() []Term {
	out := make([]Term, len(p.terms))
	for i, t := range p.terms {
		out[i] = t.clone()
	}

	return out
}

// LeadingTerm returns a copy of the order-maximal term.
// Contract: p must be nonzero (the zero polynomial has no leading term);
// callers guard with IsZero.
func (p Poly) LeadingTerm() Term { return p.terms[0].clone() }

// LeadingExponent returns a copy of the order-maximal exponent vector.
// Contract: p must be nonzero.
func (p Poly) LeadingExponent() []int {
	e := make([]int, len(p.terms[0].Exp))
	copy(e, p.terms[0].Exp)

	return e
}

// LeadingCoeff returns a copy of the order-maximal coefficient.
// Contract: p must be nonzero.
func (p Poly) LeadingCoeff() *big.Rat { return new(big.Rat).Set(p.terms[0].Coeff) }

// ExponentVectors returns copies of all exponent vectors, leading first.
func (p Poly) ExponentVectors() [][]int {
	out := make([][]int, len(p.terms))
	for i, t := range p.terms {
		e := make([]int, len(t.Exp))
		copy(e, t.Exp)
		out[i] = e
	}

	return out
}

// Coefficients returns copies of all coefficients, leading first.
func (p Poly) Coefficients() []*big.Rat {
	out := make([]*big.Rat, len(p.terms))
	for i, t := range p.terms {
		out[i] = new(big.Rat).Set(t.Coeff)
	}

	return out
}

// Monomials returns each term's monomial as a coefficient-1 polynomial,
// leading first.
func (p Poly) Monomials() []Poly {
	out := make([]Poly, len(p.terms))
	for i, t := range p.terms {
		e := make([]int, len(t.Exp))
		copy(e, t.Exp)
		out[i] = Poly{r: p.r, terms: []Term{{Coeff: big.NewRat(1, 1), Exp: e}}}
	}

	return out
}

// TotalDegree returns the maximal term degree (0 for the zero polynomial).
func (p Poly) TotalDegree() int {
	d := 0
	for _, t := range p.terms {
		if td := t.totalDegree(); td > d {
			d = td
		}
	}

	return d
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	out := make([]Term, len(p.terms))
	for i, t := range p.terms {
		out[i] = t.clone()
		out[i].Coeff.Neg(out[i].Coeff)
	}

	return Poly{r: p.r, terms: out}
}

// Scale returns c·p. A zero c yields the zero polynomial.
func (p Poly) Scale(c *big.Rat) Poly {
	if c == nil || c.Sign() == 0 {
		return Poly{r: p.r}
	}
	out := make([]Term, len(p.terms))
	for i, t := range p.terms {
		out[i] = t.clone()
		out[i].Coeff.Mul(out[i].Coeff, c)
	}

	return Poly{r: p.r, terms: out}
}

// Monic returns p divided by its leading coefficient (zero stays zero).
func (p Poly) Monic() Poly {
	if p.IsZero() {
		return p
	}
	inv := new(big.Rat).Inv(p.terms[0].Coeff)

	return p.Scale(inv)
}

// Add returns p + q via a linear merge of the two sorted term lists.
//
// Errors: ErrRingMismatch if the operands are bound to different rings.
// Complexity: O((k₁+k₂)·n).
func (p Poly) Add(q Poly) (Poly, error) {
	if p.r != q.r {
		return Poly{}, ErrRingMismatch
	}
	ord := p.r.ord
	out := make([]Term, 0, len(p.terms)+len(q.terms))
	i, j := 0, 0
	for i < len(p.terms) && j < len(q.terms) {
		switch ord.Compare(p.terms[i].Exp, q.terms[j].Exp) {
		case 1:
			out = append(out, p.terms[i].clone())
			i++
		case -1:
			out = append(out, q.terms[j].clone())
			j++
		default:
			sum := p.terms[i].clone()
			sum.Coeff.Add(sum.Coeff, q.terms[j].Coeff)
			if sum.Coeff.Sign() != 0 {
				out = append(out, sum)
			}
			i++
			j++
		}
	}
	for ; i < len(p.terms); i++ {
		out = append(out, p.terms[i].clone())
	}
	for ; j < len(q.terms); j++ {
		out = append(out, q.terms[j].clone())
	}
	if len(out) == 0 {
		out = nil
	}

	return Poly{r: p.r, terms: out}, nil
}

// Sub returns p - q.
//
// Errors: ErrRingMismatch.
func (p Poly) Sub(q Poly) (Poly, error) { return p.Add(q.Neg()) }

// MulTerm returns t·p. Exponent addition shifts every term by the same
// vector, which preserves the matrix-order sorting, so no re-sort happens.
//
// Errors: ErrExponentWidth if t's exponent width differs from the ring's.
// Complexity: O(k·n).
func (p Poly) MulTerm(t Term) (Poly, error) {
	if len(t.Exp) != p.r.N() {
		return Poly{}, ErrExponentWidth
	}
	if t.isZero() {
		return Poly{r: p.r}, nil
	}
	out := make([]Term, len(p.terms))
	for i, pt := range p.terms {
		nt := pt.clone()
		nt.Coeff.Mul(nt.Coeff, t.Coeff)
		for k := range nt.Exp {
			nt.Exp[k] += t.Exp[k]
		}
		out[i] = nt
	}

	return Poly{r: p.r, terms: out}, nil
}

// Mul returns p·q.
//
// Errors: ErrRingMismatch.
// Complexity: O(k₁·k₂·n) term products plus merging.
func (p Poly) Mul(q Poly) (Poly, error) {
	if p.r != q.r {
		return Poly{}, ErrRingMismatch
	}
	acc := Poly{r: p.r}
	var err error
	var part Poly
	for _, t := range q.terms {
		if part, err = p.MulTerm(t); err != nil {
			return Poly{}, err
		}
		if acc, err = acc.Add(part); err != nil {
			return Poly{}, err
		}
	}

	return acc, nil
}

// Equal reports whether p and q have identical term lists (same exponents
// and coefficients in the same order). Ring identity is not compared, so a
// polynomial equals its ChangeRing image only when both sort identically.
func (p Poly) Equal(q Poly) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if p.terms[i].Coeff.Cmp(q.terms[i].Coeff) != 0 {
			return false
		}
		for k := range p.terms[i].Exp {
			if p.terms[i].Exp[k] != q.terms[i].Exp[k] {
				return false
			}
		}
	}

	return true
}

// ChangeRing re-expresses p under rn: coefficients and exponents are copied
// verbatim, only the term sorting follows rn's order. A representation
// change, not a mathematical transformation.
//
// Errors: ErrNilRing, ErrExponentWidth (variable counts differ).
// Complexity: O(k log k).
func (p Poly) ChangeRing(rn *Ring) (Poly, error) {
	if rn == nil {
		return Poly{}, ErrNilRing
	}
	if p.r != nil && p.r.N() != rn.N() {
		return Poly{}, ErrExponentWidth
	}
	out := make([]Term, len(p.terms))
	for i, t := range p.terms {
		out[i] = t.clone()
	}
	ord := rn.ord
	sort.Slice(out, func(i, j int) bool {
		return ord.Compare(out[i].Exp, out[j].Exp) > 0
	})
	if len(out) == 0 {
		out = nil
	}

	return Poly{r: rn, terms: out}, nil
}

// String renders the polynomial in human form, e.g. "x^2 - 3/2*x*y + 1".
// Terms appear in the ring's descending order; "0" for the zero polynomial.
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	abs := new(big.Rat)
	for i, t := range p.terms {
		neg := t.Coeff.Sign() < 0
		if i == 0 {
			if neg {
				b.WriteString("-")
			}
		} else {
			if neg {
				b.WriteString(" - ")
			} else {
				b.WriteString(" + ")
			}
		}
		abs.Abs(t.Coeff)
		mono := p.monoString(t.Exp)
		switch {
		case mono == "":
			b.WriteString(abs.RatString())
		case abs.Cmp(big.NewRat(1, 1)) == 0:
			b.WriteString(mono)
		default:
			b.WriteString(abs.RatString())
			b.WriteString("*")
			b.WriteString(mono)
		}
	}

	return b.String()
}

// monoString renders an exponent vector as "x^2*y" (empty for the constant
// monomial).
func (p Poly) monoString(exp []int) string {
	var parts []string
	for k, e := range exp {
		switch {
		case e == 1:
			parts = append(parts, p.r.vars[k])
		case e > 1:
			parts = append(parts, p.r.vars[k]+"^"+strconv.Itoa(e))
		}
	}

	return strings.Join(parts, "*")
}
