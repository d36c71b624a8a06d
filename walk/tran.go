package walk

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/gwalk/order"
	"github.com/katalvlaran/gwalk/ring"
)

// tranWalk is the standard walk with a moving target: whenever the
// segment arrives at T's weight but that weight sits on a face shared by
// several cones, the target is replaced by an interior representation
// weight and the walk continues. The extra bool reports a fallback to a
// direct basis computation after weight truncation failed to converge.
func tranWalk(e Engine, lg *zap.Logger, G *ring.Ideal, S, T order.Matrix, repr RepresentationFunc) (*ring.Ideal, int, bool, error) {
	var (
		cw    = bigWeight(S.Weight())
		tw    = bigWeight(T.Weight())
		steps int
		ok    bool
		err   error
	)
	forms, err := initialForms(G, cw)
	if err != nil {
		return nil, 0, false, err
	}
	if !isMonomial(forms) {
		// The start weight lies on a face as well; leave it through a
		// full-degree perturbation.
		cw = perturbedVector(G, S, G.Ring().N())
	}

	for {
		w := nextWeight(G, cw, tw)
		if exceedsLimit(w) {
			if w, ok, err = truncateWeight(G, w); err != nil {
				return nil, 0, false, err
			}
			if !ok {
				lg.Warn("weight overflow, finishing with a direct basis computation")
				H, err := targetBasis(e, G, T)
				if err != nil {
					return nil, 0, false, err
				}

				return H, steps, true, nil
			}
			lg.Info("truncated weight", zap.String("weight", weightString(w)))
		}

		if weightsEqual(w, tw) {
			if inCone(G, T, cw) {
				return G, steps, false, nil
			}
			if forms, err = initialForms(G, tw); err != nil {
				return nil, 0, false, err
			}
			if inSeveralCones(forms) {
				tw = repr(G, T)
				lg.Info("target weight on a shared face, moving it inside",
					zap.String("weight", weightString(tw)))

				continue
			}
		}

		lg.Info("crossing cone", zap.String("weight", weightString(w)))
		if G, err = standardStep(e, G, w, T); err != nil {
			return nil, 0, false, err
		}
		steps++
		lg.Debug("intermediate basis", zap.Stringer("basis", G))
		cw = w
	}
}

// targetBasis hands the current generators to the engine under T.
func targetBasis(e Engine, G *ring.Ideal, T order.Matrix) (*ring.Ideal, error) {
	Rt, err := ring.NewRing(G.Ring().Vars(), T)
	if err != nil {
		return nil, fmt.Errorf("target basis: %w", err)
	}
	Gt, err := G.ChangeRing(Rt)
	if err != nil {
		return nil, fmt.Errorf("target basis: %w", err)
	}
	H, err := e.Basis(Gt, true)
	if err != nil {
		return nil, fmt.Errorf("%w: target basis: %v", ErrEngineFailure, err)
	}

	return H, nil
}

// inSeveralCones reports whether a weight whose initial forms look like
// this sits on a face shared by more than one Gröbner cone: a form with
// three or more terms, or two forms with two terms each, pin the weight
// to a positive-codimension face.
func inSeveralCones(forms []ring.Poly) bool {
	var withTwo int
	for _, f := range forms {
		if f.Len() > 2 {
			return true
		}
		if f.Len() == 2 {
			withTwo++
		}
	}

	return withTwo >= 2
}

// representationWeight is the default RepresentationFunc: a vector in
// the interior of the T-cone of degree-bounded ideals, built by stacking
// all rows of T in a base d large enough that no row can overrule the
// ones above it.
func representationWeight(I *ring.Ideal, T order.Matrix) []*big.Int {
	n := T.Dim()
	var m int64 = 1
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if a := T.Entry(i, j); a > m {
				m = a
			} else if -a > m {
				m = -a
			}
		}
	}
	d0 := big.NewInt(int64(I.MaxDegree()))
	d := new(big.Int).Mul(d0, d0)
	d.Mul(d, big.NewInt(2))
	d.Add(d, new(big.Int).Mul(big.NewInt(int64(n)+1), d0))
	d.Mul(d, big.NewInt(m))

	w := make([]*big.Int, n)
	for j := range w {
		w[j] = new(big.Int)
	}
	scale := big.NewInt(1)
	for i := n - 1; i >= 0; i-- {
		row := T.Row(i)
		for j := 0; j < n; j++ {
			w[j].Add(w[j], new(big.Int).Mul(scale, big.NewInt(row[j])))
		}
		scale = new(big.Int).Mul(scale, d)
	}

	return w
}
