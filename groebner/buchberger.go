package groebner

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/katalvlaran/gwalk/ring"
)

// pairIdx addresses one critical pair inside the working basis.
type pairIdx struct{ i, j int }

// Std — Buchberger completion
//
// Description:
//
//	Computes a Gröbner basis of I under the monomial order of I's ring.
//	With completeReduction the result is the reduced basis (minimal and
//	monic with every tail irreducible), the canonical form for a fixed
//	order, unique up to the ascending sort applied here.
//
// Algorithm Outline:
//  1. Seed the working basis with monic copies of the generators and
//     enqueue every index pair.
//  2. Pop the pair whose leading-monomial lcm is smallest under the
//     ring order (normal selection; ties fall back to queue position).
//  3. Skip pairs with coprime leads (product criterion).
//  4. Reduce the s-polynomial against the working basis; a nonzero
//     remainder joins the basis, paired with every older element.
//  5. When the queue drains, minimize the basis; with completeReduction
//     also interreduce the tails.
//
// Determinism:
//
//	Selection, reduction and output ordering depend only on the ring
//	order and generator positions.
//
// Errors:
//   - ErrNilIdeal — I is nil.
//
// An ideal already carrying the basis flag skips straight to step 5.
func Std(I *ring.Ideal, completeReduction bool) (*ring.Ideal, error) {
	if I == nil {
		return nil, ErrNilIdeal
	}

	var (
		G   = make([]ring.Poly, 0, I.Len())
		err error
		i   int // generator index
	)
	for i = 0; i < I.Len(); i++ {
		G = append(G, I.Gen(i).Monic())
	}

	if !I.IsGB() {
		if G, err = complete(G); err != nil {
			return nil, err
		}
	}

	G = minimize(I.Ring(), G)
	if completeReduction {
		if G, err = interreduceTails(G); err != nil {
			return nil, err
		}
	}

	out, err := ring.NewIdeal(I.Ring(), G...)
	if err != nil {
		return nil, fmt.Errorf("groebner: assembling basis: %w", err)
	}
	out.MarkGB()

	return out, nil
}

// complete runs the pair loop until every s-polynomial reduces to zero.
func complete(G []ring.Poly) ([]ring.Poly, error) {
	var (
		pairs []pairIdx
		i, j  int // pair seeding iterators
	)
	for i = 0; i < len(G); i++ {
		for j = i + 1; j < len(G); j++ {
			pairs = append(pairs, pairIdx{i, j})
		}
	}

	for len(pairs) > 0 {
		k := selectPair(G, pairs)
		pr := pairs[k]
		pairs = append(pairs[:k], pairs[k+1:]...)

		if coprime(G[pr.i].LeadingExponent(), G[pr.j].LeadingExponent()) {
			continue // product criterion: the s-polynomial reduces to zero
		}

		s, err := SPoly(G[pr.i], G[pr.j])
		if err != nil {
			return nil, err
		}
		r, err := normalFormList(s, G)
		if err != nil {
			return nil, err
		}
		if r.IsZero() {
			continue
		}

		G = append(G, r.Monic())
		for i = 0; i < len(G)-1; i++ {
			pairs = append(pairs, pairIdx{i, len(G) - 1})
		}
	}

	return G, nil
}

// selectPair returns the queue index of the pair with the smallest
// leading-monomial lcm under the ring order; earlier queue position wins ties.
func selectPair(G []ring.Poly, pairs []pairIdx) int {
	ord := G[0].Ring().Order()
	best := 0
	bestLCM := pairLCM(G[pairs[0].i], G[pairs[0].j])
	for k := 1; k < len(pairs); k++ {
		l := pairLCM(G[pairs[k].i], G[pairs[k].j])
		if ord.Compare(l, bestLCM) < 0 {
			best, bestLCM = k, l
		}
	}

	return best
}

// pairLCM returns the exponent of lcm(lead(f), lead(g)).
func pairLCM(f, g ring.Poly) []int {
	fe, ge := f.LeadingExponent(), g.LeadingExponent()
	l := make([]int, len(fe))
	for i := range l {
		l[i] = max(fe[i], ge[i])
	}

	return l
}

// coprime reports whether two monomials share no variable.
func coprime(a, b []int) bool {
	for i := range a {
		if a[i] > 0 && b[i] > 0 {
			return false
		}
	}

	return true
}

// SPoly returns the s-polynomial of f and g: both are scaled so their
// leading terms meet at lcm(lead(f), lead(g)) with coefficient 1, and the
// difference cancels that lcm.
//
// Errors: ErrRingMismatch, ErrZeroPolynomial.
func SPoly(f, g ring.Poly) (ring.Poly, error) {
	if f.Ring() != g.Ring() {
		return ring.Poly{}, ErrRingMismatch
	}
	if f.IsZero() || g.IsZero() {
		return ring.Poly{}, ErrZeroPolynomial
	}

	l := pairLCM(f, g)
	a, err := f.MulTerm(quotientTerm(ring.Term{Coeff: big.NewRat(1, 1), Exp: l}, f.LeadingExponent(), f.LeadingCoeff()))
	if err != nil {
		return ring.Poly{}, fmt.Errorf("s-polynomial: %w", err)
	}
	b, err := g.MulTerm(quotientTerm(ring.Term{Coeff: big.NewRat(1, 1), Exp: l}, g.LeadingExponent(), g.LeadingCoeff()))
	if err != nil {
		return ring.Poly{}, fmt.Errorf("s-polynomial: %w", err)
	}

	return a.Sub(b)
}

// minimize sorts the basis by leading monomial ascending and drops every
// element whose lead an earlier kept lead divides. Under an admissible
// order a strict divisor always precedes its multiples, so one forward
// pass yields the minimal basis.
func minimize(r *ring.Ring, G []ring.Poly) []ring.Poly {
	ord := r.Order()
	sort.SliceStable(G, func(i, j int) bool {
		return ord.Compare(G[i].LeadingExponent(), G[j].LeadingExponent()) < 0
	})

	kept := make([]ring.Poly, 0, len(G))
	for _, g := range G {
		dominated := false
		for _, h := range kept {
			if divides(h.LeadingExponent(), g.LeadingExponent()) {
				dominated = true

				break
			}
		}
		if !dominated {
			kept = append(kept, g)
		}
	}

	return kept
}

// interreduceTails replaces each element by its normal form against all
// the others. Leads are pairwise non-dividing after minimize, so only
// tails change and a single pass reaches the fixed point.
func interreduceTails(G []ring.Poly) ([]ring.Poly, error) {
	var (
		others = make([]ring.Poly, 0, len(G))
		err    error
		i      int // element under reduction
	)
	for i = range G {
		others = append(others[:0], G[:i]...)
		others = append(others, G[i+1:]...)
		if G[i], err = normalFormList(G[i], others); err != nil {
			return nil, err
		}
		G[i] = G[i].Monic()
	}

	return G, nil
}
