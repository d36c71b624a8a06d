package walk

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/gwalk/ring"
)

// initialForms returns, per generator, the sum of the terms with maximal
// w-weight. The result is index-aligned with G's generators and every
// tied term is included.
func initialForms(G *ring.Ideal, w []*big.Int) ([]ring.Poly, error) {
	var (
		out  = make([]ring.Poly, G.Len())
		best *big.Int
		i, j int // generator / term iterators
	)
	for i = 0; i < G.Len(); i++ {
		g := G.Gen(i)
		terms := g.Terms()

		best = dotExp(w, terms[0].Exp)
		for j = 1; j < len(terms); j++ {
			if d := dotExp(w, terms[j].Exp); d.Cmp(best) > 0 {
				best = d
			}
		}

		keep := make([]ring.Term, 0, len(terms))
		for j = 0; j < len(terms); j++ {
			if dotExp(w, terms[j].Exp).Cmp(best) == 0 {
				keep = append(keep, terms[j])
			}
		}

		form, err := ring.NewPoly(g.Ring(), keep...)
		if err != nil {
			return nil, fmt.Errorf("initial forms: %w", err)
		}
		out[i] = form
	}

	return out, nil
}

// sameForms reports index-aligned equality of two form lists.
func sameForms(a, b []ring.Poly) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

// isMonomial reports whether every form consists of a single term.
func isMonomial(forms []ring.Poly) bool {
	for _, f := range forms {
		if f.Len() > 1 {
			return false
		}
	}

	return true
}

// isBinomial reports whether every form has at most two terms.
func isBinomial(forms []ring.Poly) bool {
	for _, f := range forms {
		if f.Len() > 2 {
			return false
		}
	}

	return true
}
