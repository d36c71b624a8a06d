package walk

import (
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/gwalk/order"
	"github.com/katalvlaran/gwalk/ring"
)

// errTruncationDiverged aborts a fractal descent whose truncated weight
// can no longer separate the initial forms. The top level catches it and
// hands the original basis to the engine instead.
var errTruncationDiverged = errors.New("walk: truncated weight no longer separates the initial forms")

// fractalState carries everything a fractal descent shares across
// depths. pTargets[p] is the degree-p perturbation of T for the basis
// the targets were last computed from; pStarts mirrors it for S when
// the start weight sits on a face. firstStep gates the one descent that
// begins at perturbed start weights.
type fractalState struct {
	e         Engine
	lg        *zap.Logger
	S, T      order.Matrix
	startRow  []*big.Int
	pTargets  [][]*big.Int
	pStarts   [][]*big.Int
	firstStep bool
	lexSkip   bool
	lookAhead bool
	steps     int
}

// fractalWalk recursively walks in perturbation depth: depth p moves
// toward the degree-p perturbed target, converting each obstruction by
// walking its initial forms at depth p+1, until depth n where the
// engine takes over. The extra bool reports a fallback to a direct
// computation after a truncated weight diverged.
//
// useStart begins the first descent at perturbed start weights when S's
// own weight lies on a face. lexSkip short-circuits depth 1 when the
// cone does not change across the step. lookAhead hands monomial and
// binomial initial forms straight to the engine at any depth.
func fractalWalk(e Engine, lg *zap.Logger, G *ring.Ideal, S, T order.Matrix, useStart, lexSkip, lookAhead bool) (*ring.Ideal, int, bool, error) {
	n := G.Ring().N()
	st := &fractalState{
		e:         e,
		lg:        lg,
		S:         S,
		T:         T,
		startRow:  bigWeight(S.Weight()),
		pTargets:  make([][]*big.Int, n+1),
		lexSkip:   lexSkip,
		lookAhead: lookAhead,
	}
	for i := 1; i <= n; i++ {
		st.pTargets[i] = perturbedVector(G, T, i)
	}
	if useStart {
		forms, err := initialForms(G, st.startRow)
		if err != nil {
			return nil, 0, false, err
		}
		if !isMonomial(forms) {
			st.pStarts = make([][]*big.Int, n+1)
			for i := 1; i <= n; i++ {
				st.pStarts[i] = perturbedVector(G, S, i)
			}
			st.firstStep = true
		}
	}

	out, err := st.recurse(G, 1)
	if err != nil {
		if errors.Is(err, errTruncationDiverged) {
			lg.Warn("weight overflow, finishing with a direct basis computation")
			H, ferr := targetBasis(e, G, T)
			if ferr != nil {
				return nil, 0, false, ferr
			}

			return H, st.steps, true, nil
		}

		return nil, 0, false, err
	}

	return out, st.steps, false, nil
}

// recomputeTargets refreshes every perturbed target from the basis at
// hand. Called whenever a depth discovers its target certificate no
// longer matches the degrees of the current generators.
func (st *fractalState) recomputeTargets(G *ring.Ideal) {
	for i := 1; i < len(st.pTargets); i++ {
		st.pTargets[i] = perturbedVector(G, st.T, i)
	}
}

// recurse walks G at depth p toward pTargets[p]. Every entry restarts
// from the start weight: the parent's facet decomposition, not the
// weight path, is what the depths share.
func (st *fractalState) recurse(G *ring.Ideal, p int) (*ring.Ideal, error) {
	var w []*big.Int
	if st.firstStep && st.pStarts != nil {
		w = copyWeight(st.pStarts[p])
	} else {
		w = copyWeight(st.startRow)
	}

	var (
		n   = G.Ring().N()
		ok  bool
		err error
	)
	for {
		t, hasFacet := nextT(G, w, st.pTargets[p])
		if !hasFacet {
			if inCone(G, st.T, st.pTargets[p]) {
				return G, nil
			}
			st.recomputeTargets(G)

			continue
		}
		if t.Cmp(ratOne) == 0 && p != 1 {
			// Landing exactly on the depth target mid-descent: either
			// the cone already matches T or the targets went stale.
			if sameCone(G, st.T) {
				return G, nil
			}
			st.recomputeTargets(G)

			continue
		}

		w = advanceWeight(w, st.pTargets[p], t)
		if exceedsLimit(w) {
			if w, ok, err = truncateWeight(G, w); err != nil {
				return nil, err
			}
			if !ok {
				return nil, errTruncationDiverged
			}
			st.lg.Info("truncated weight", zap.String("weight", weightString(w)), zap.Int("depth", p))
		}
		st.lg.Info("crossing cone", zap.String("weight", weightString(w)), zap.Int("depth", p))

		m, err := order.Weighted(st.T, toRow(w))
		if err != nil {
			return nil, fmt.Errorf("fractal walk: %w", err)
		}
		Rn, err := ring.NewRing(G.Ring().Vars(), m)
		if err != nil {
			return nil, fmt.Errorf("fractal walk: %w", err)
		}
		forms, err := initialForms(G, w)
		if err != nil {
			return nil, err
		}

		var H *ring.Ideal
		switch {
		case p == n || (st.lookAhead && (isMonomial(forms) || isBinomial(forms))):
			if H, err = st.engineBasis(forms, Rn); err != nil {
				return nil, err
			}
		case st.lexSkip && p == 1 && sameCone(G, m):
			// The step stays inside one cone, so the forms already are
			// their own basis under the new order.
			if H, err = formsIdeal(forms, Rn, true); err != nil {
				return nil, err
			}
		default:
			inner, err := formsIdeal(forms, G.Ring(), true)
			if err != nil {
				return nil, err
			}
			if H, err = st.recurse(inner, p+1); err != nil {
				return nil, err
			}
		}
		st.firstStep = false

		lifted, err := lift(st.e, G, H, Rn)
		if err != nil {
			return nil, err
		}
		if G, err = interreduce(st.e, lifted); err != nil {
			return nil, err
		}
		st.steps++
		st.lg.Debug("intermediate basis", zap.Stringer("basis", G), zap.Int("depth", p))
	}
}

// engineBasis completes the initial forms in Rn directly.
func (st *fractalState) engineBasis(forms []ring.Poly, Rn *ring.Ring) (*ring.Ideal, error) {
	Gw, err := formsIdeal(forms, Rn, false)
	if err != nil {
		return nil, err
	}
	H, err := st.e.Basis(Gw, true)
	if err != nil {
		return nil, fmt.Errorf("%w: initial-form basis: %v", ErrEngineFailure, err)
	}

	return H, nil
}

// formsIdeal rebinds the forms to r and wraps them in an ideal,
// optionally marked as a basis.
func formsIdeal(forms []ring.Poly, r *ring.Ring, markGB bool) (*ring.Ideal, error) {
	var err error
	moved := make([]ring.Poly, len(forms))
	for i := range forms {
		if moved[i], err = forms[i].ChangeRing(r); err != nil {
			return nil, fmt.Errorf("fractal walk: %w", err)
		}
	}
	I, err := ring.NewIdeal(r, moved...)
	if err != nil {
		return nil, fmt.Errorf("fractal walk: %w", err)
	}
	if markGB {
		I.MarkGB()
	}

	return I, nil
}
