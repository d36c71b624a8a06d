package walk

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gwalk/order"
	"github.com/katalvlaran/gwalk/ring"
)

// marked pairs a polynomial with the term the walk currently treats as
// its lead. The Generic walk never re-sorts under intermediate orders,
// so the bookkeeping lead can disagree with the ring-order one until
// the final facet is crossed.
type marked struct {
	g    ring.Poly
	lead ring.Term
}

// genericWalk crosses the facets between the S-cone and the T-cone in
// the facet preorder, without ever constructing an intermediate order.
// All polynomials live in the target ring from the start; the marks
// carry the source-order leads until successive lifts move them over.
func genericWalk(e Engine, lg *zap.Logger, G *ring.Ideal, S, T order.Matrix) (*ring.Ideal, int, error) {
	Rt, err := ring.NewRing(G.Ring().Vars(), T)
	if err != nil {
		return nil, 0, fmt.Errorf("generic walk: %w", err)
	}

	cur := make([]marked, G.Len())
	for i := 0; i < G.Len(); i++ {
		g := G.Gen(i)
		mark := g.LeadingTerm()
		gt, err := g.ChangeRing(Rt)
		if err != nil {
			return nil, 0, fmt.Errorf("generic walk: %w", err)
		}
		cur[i] = marked{g: gt, lead: mark}
	}

	var steps int
	v, found := nextGamma(cur, nil, S, T)
	for found {
		lg.Info("crossing facet", zap.Ints("facet", v))

		forms, err := facetInitials(cur, v)
		if err != nil {
			return nil, 0, err
		}
		Fw, err := ring.NewIdeal(Rt, forms...)
		if err != nil {
			return nil, 0, fmt.Errorf("generic walk: %w", err)
		}
		H, err := e.Basis(Fw, true)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: facet-initial basis: %v", ErrEngineFailure, err)
		}

		if cur, err = liftGeneric(cur, H); err != nil {
			return nil, 0, err
		}
		if cur, err = interreduceMarked(cur); err != nil {
			return nil, 0, err
		}
		steps++

		v, found = nextGamma(cur, v, S, T)
	}

	// No facet left: the marks agree with the target leads, so the
	// ordinary reduction applies.
	gens := make([]ring.Poly, len(cur))
	for i := range cur {
		gens[i] = cur[i].g
	}
	out, err := ring.NewIdeal(Rt, gens...)
	if err != nil {
		return nil, 0, fmt.Errorf("generic walk: %w", err)
	}
	out.MarkGB()
	if out, err = interreduce(e, out); err != nil {
		return nil, 0, err
	}

	return out, steps, nil
}
