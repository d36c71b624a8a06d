package walk

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/gwalk/order"
	"github.com/katalvlaran/gwalk/ring"
)

// standardWalk follows the straight segment from S's weight to T's
// weight, converting the basis cone by cone.
func standardWalk(e Engine, lg *zap.Logger, G *ring.Ideal, S, T order.Matrix) (*ring.Ideal, int, error) {
	return standardWalkFrom(e, lg, G, T, bigWeight(S.Weight()), bigWeight(T.Weight()))
}

// standardWalkFrom runs the standard loop between two explicit weights.
// The Perturbed strategy re-enters here once per perturbation degree, so
// the segment endpoints are parameters rather than order rows.
//
// Each pass converts the basis at the current weight, then slides the
// weight to the last point of the segment still inside the new cone.
// Arrival is detected by exact equality with tw, which nextWeight
// preserves by returning the target unnormalized.
func standardWalkFrom(e Engine, lg *zap.Logger, G *ring.Ideal, T order.Matrix, cw, tw []*big.Int) (*ring.Ideal, int, error) {
	var (
		w     = copyWeight(cw)
		steps int
		ok    bool
		err   error
	)
	if exceedsLimit(w) {
		if w, ok, err = truncateWeight(G, w); err != nil {
			return nil, 0, err
		}
		if !ok {
			return nil, 0, fmt.Errorf("%w: start weight exceeds the step limit", ErrWeightOverflow)
		}
	}

	for {
		lg.Info("crossing cone", zap.String("weight", weightString(w)))
		if G, err = standardStep(e, G, w, T); err != nil {
			return nil, 0, err
		}
		steps++
		lg.Debug("intermediate basis", zap.Stringer("basis", G))

		if weightsEqual(w, tw) {
			break
		}
		prev := w
		w = nextWeight(G, w, tw)
		if exceedsLimit(w) {
			if w, ok, err = truncateWeight(G, w); err != nil {
				return nil, 0, err
			}
			// Truncation that cannot preserve the initial forms, or that
			// stalls on the previous weight, will never reach tw.
			if !ok || weightsEqual(w, prev) {
				return nil, 0, fmt.Errorf("%w: weight entries exceed the step limit", ErrWeightOverflow)
			}
			lg.Info("truncated weight", zap.String("weight", weightString(w)))
		}
	}

	return G, steps, nil
}

// standardStep converts G at the weight w: compute the initial-form
// ideal in the ring refined by w (ties broken by T), let the engine
// finish it, then lift and interreduce.
func standardStep(e Engine, G *ring.Ideal, w []*big.Int, T order.Matrix) (*ring.Ideal, error) {
	m, err := order.Weighted(T, toRow(w))
	if err != nil {
		return nil, fmt.Errorf("standard step: %w", err)
	}
	Rn, err := ring.NewRing(G.Ring().Vars(), m)
	if err != nil {
		return nil, fmt.Errorf("standard step: %w", err)
	}

	forms, err := initialForms(G, w)
	if err != nil {
		return nil, fmt.Errorf("standard step: %w", err)
	}
	for i := range forms {
		if forms[i], err = forms[i].ChangeRing(Rn); err != nil {
			return nil, fmt.Errorf("standard step: %w", err)
		}
	}
	Gw, err := ring.NewIdeal(Rn, forms...)
	if err != nil {
		return nil, fmt.Errorf("standard step: %w", err)
	}

	H, err := e.Basis(Gw, true)
	if err != nil {
		return nil, fmt.Errorf("%w: initial-form basis: %v", ErrEngineFailure, err)
	}
	lifted, err := lift(e, G, H, Rn)
	if err != nil {
		return nil, err
	}

	return interreduce(e, lifted)
}
