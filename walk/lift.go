package walk

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/gwalk/ring"
)

// lift pulls a Gröbner basis H of the initial-form ideal back to a basis
// of G in the next ring Rn: each h becomes h − NF(h, G), which agrees
// with h on initial forms and lies in ⟨G⟩. The result is a Gröbner basis
// for the Rn order, possibly redundant until interreduce runs.
func lift(e Engine, G, H *ring.Ideal, Rn *ring.Ring) (*ring.Ideal, error) {
	var (
		lifted = make([]ring.Poly, 0, H.Len())
		hR, nf ring.Poly
		err    error
	)
	for i := 0; i < H.Len(); i++ {
		if hR, err = H.Gen(i).ChangeRing(G.Ring()); err != nil {
			return nil, fmt.Errorf("lift: %w", err)
		}
		if nf, err = e.NormalForm(hR, G); err != nil {
			return nil, fmt.Errorf("%w: normal form: %v", ErrEngineFailure, err)
		}
		if hR, err = hR.Sub(nf); err != nil {
			return nil, fmt.Errorf("lift: %w", err)
		}
		if hR, err = hR.ChangeRing(Rn); err != nil {
			return nil, fmt.Errorf("lift: %w", err)
		}
		lifted = append(lifted, hR)
	}

	out, err := ring.NewIdeal(Rn, lifted...)
	if err != nil {
		return nil, fmt.Errorf("lift: %w", err)
	}
	out.MarkGB()

	return out, nil
}

// interreduce reduces every generator against the others and drops the
// ones that vanish, then normalizes to monic. Leads never change during
// the pass, so one sweep yields a reduced basis.
func interreduce(e Engine, G *ring.Ideal) (*ring.Ideal, error) {
	var (
		gens = G.Generators()
		i, j int
	)
	for i = 0; i < len(gens); i++ {
		others := make([]ring.Poly, 0, len(gens)-1)
		for j = range gens {
			if j != i && !gens[j].IsZero() {
				others = append(others, gens[j])
			}
		}
		if len(others) == 0 {
			break
		}
		oi, err := ring.NewIdeal(G.Ring(), others...)
		if err != nil {
			return nil, fmt.Errorf("interreduce: %w", err)
		}
		nf, err := e.NormalForm(gens[i], oi)
		if err != nil {
			return nil, fmt.Errorf("%w: normal form: %v", ErrEngineFailure, err)
		}
		gens[i] = nf
	}

	kept := make([]ring.Poly, 0, len(gens))
	for i = range gens {
		if !gens[i].IsZero() {
			kept = append(kept, gens[i].Monic())
		}
	}
	out, err := ring.NewIdeal(G.Ring(), kept...)
	if err != nil {
		return nil, fmt.Errorf("interreduce: %w", err)
	}
	out.MarkGB()

	return out, nil
}

// markedNormalForm divides p by the marked generators: divisibility and
// quotients are taken against the marks, not the ring-order leads, so
// the reduction respects the walk's bookkeeping order. Irreducible lead
// terms shift into the remainder, as in ordinary division.
func markedNormalForm(p ring.Poly, gens []marked) (ring.Poly, error) {
	var (
		rem  []ring.Term
		work = p
		err  error
		i    int // divisor scan index
	)
	for !work.IsZero() {
		lt := work.LeadingTerm()
		reduced := false
		for i = 0; i < len(gens); i++ {
			if !divides(gens[i].lead.Exp, lt.Exp) {
				continue
			}
			var gm ring.Poly
			if gm, err = gens[i].g.MulTerm(quotientTerm(lt, gens[i].lead.Exp, gens[i].lead.Coeff)); err != nil {
				return ring.Poly{}, fmt.Errorf("marked normal form: %w", err)
			}
			if work, err = work.Sub(gm); err != nil {
				return ring.Poly{}, fmt.Errorf("marked normal form: %w", err)
			}
			reduced = true

			break
		}
		if reduced {
			continue
		}

		rem = append(rem, lt)
		var mono ring.Poly
		if mono, err = ring.NewPoly(p.Ring(), lt); err != nil {
			return ring.Poly{}, fmt.Errorf("marked normal form: %w", err)
		}
		if work, err = work.Sub(mono); err != nil {
			return ring.Poly{}, fmt.Errorf("marked normal form: %w", err)
		}
	}

	return ring.NewPoly(p.Ring(), rem...)
}

// liftGeneric lifts a basis H of the facet-initial ideal across a facet
// of the Generic walk: each h keeps its own lead term as the new mark
// and is completed to h − markedNF(h, cur), a member of ⟨cur⟩ with the
// same initial behaviour.
func liftGeneric(cur []marked, H *ring.Ideal) ([]marked, error) {
	var (
		out = make([]marked, 0, H.Len())
		nf  ring.Poly
		err error
	)
	for i := 0; i < H.Len(); i++ {
		h := H.Gen(i)
		mark := h.LeadingTerm()
		if nf, err = markedNormalForm(h, cur); err != nil {
			return nil, err
		}
		if h, err = h.Sub(nf); err != nil {
			return nil, fmt.Errorf("lift: %w", err)
		}
		if h.IsZero() {
			continue
		}
		out = append(out, marked{g: h, lead: mark})
	}

	return out, nil
}

// interreduceMarked reduces each marked generator against the others,
// in place. Marks of a reduced marked basis never divide one another, so
// every mark survives its own reduction; vanished generators are dropped.
func interreduceMarked(gens []marked) ([]marked, error) {
	var (
		others = make([]marked, 0, len(gens)-1)
		nf     ring.Poly
		err    error
		i, j   int
	)
	for i = 0; i < len(gens); i++ {
		others = others[:0]
		for j = range gens {
			if j != i && !gens[j].g.IsZero() {
				others = append(others, gens[j])
			}
		}
		if len(others) == 0 {
			break
		}
		if nf, err = markedNormalForm(gens[i].g, others); err != nil {
			return nil, err
		}
		gens[i].g = nf
	}

	out := make([]marked, 0, len(gens))
	for i = range gens {
		if !gens[i].g.IsZero() {
			out = append(out, gens[i])
		}
	}

	return out, nil
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
