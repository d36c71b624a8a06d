package walk

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/gwalk/order"
	"github.com/katalvlaran/gwalk/ring"
)

// Convert — Gröbner basis conversion by walking the Gröbner fan
//
// Description:
//
//	Transforms a Gröbner basis of I under the start order S into the
//	reduced Gröbner basis under the target order T. Instead of one
//	expensive computation under T, the walk slides through the Gröbner
//	fan cone by cone: each step completes only the initial-form ideal
//	of the current boundary, then lifts that small basis back. The
//	Strategy option picks how boundaries are chosen; all strategies
//	agree on the result, which is unique for a reduced basis.
//
// Algorithm Outline:
//  1. Validate both orders against I's ring; gather options.
//  2. Ensure a start basis: reuse I when it is already a basis under S,
//     otherwise have the engine compute one.
//  3. Dispatch on the strategy (Standard, Generic, Perturbed, Tran,
//     Fractal and its refinements).
//  4. Rebind the converted basis to a fresh ring carrying exactly T,
//     sorted ascending by leading monomial, marked as a basis.
//
// Complexity:
//
//	Dominated by the engine calls on initial-form ideals. Those are much
//	smaller than a direct computation under T on the ideals the walk is
//	made for, but the number of cones on the path is not bounded by any
//	simple input measure.
//
// Errors:
//   - ErrOptionViolation — an invalid Option was supplied.
//   - ErrNilIdeal       — I is nil.
//   - ErrInvalidOrder   — S or T does not fit I's ring.
//   - ErrWeightOverflow — a Standard boundary weight left the
//     representable range and truncation diverged.
//   - ErrEngineFailure  — the engine failed on a sub-ideal.
func Convert(I *ring.Ideal, S, T order.Matrix, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return Result{}, o.err
	}
	if I == nil {
		return Result{}, ErrNilIdeal
	}
	n := I.Ring().N()
	if err := order.Validate(S, n); err != nil {
		return Result{}, fmt.Errorf("%w: start order: %v", ErrInvalidOrder, err)
	}
	if err := order.Validate(T, n); err != nil {
		return Result{}, fmt.Errorf("%w: target order: %v", ErrInvalidOrder, err)
	}

	lg := o.Logger
	lg.Info("starting conversion",
		zap.String("strategy", o.Strategy.String()),
		zap.String("start", S.String()),
		zap.String("target", T.String()))

	G, err := startBasis(o.Engine, I, S)
	if err != nil {
		return Result{}, err
	}

	var (
		out      *ring.Ideal
		steps    int
		fallback bool
	)
	switch o.Strategy {
	case Standard:
		out, steps, err = standardWalk(o.Engine, lg, G, S, T)
	case Generic:
		out, steps, err = genericWalk(o.Engine, lg, G, S, T)
	case Perturbed:
		p := o.PerturbationDegree
		if p == 0 || p > n {
			p = n
		}
		out, steps, err = perturbedWalk(o.Engine, lg, G, S, T, p)
	case Tran:
		out, steps, fallback, err = tranWalk(o.Engine, lg, G, S, T, o.Representation)
	case Fractal:
		out, steps, fallback, err = fractalWalk(o.Engine, lg, G, S, T, false, false, false)
	case FractalStartOrder:
		out, steps, fallback, err = fractalWalk(o.Engine, lg, G, S, T, true, false, false)
	case FractalLex:
		out, steps, fallback, err = fractalWalk(o.Engine, lg, G, S, T, false, true, false)
	case FractalLookAhead:
		out, steps, fallback, err = fractalWalk(o.Engine, lg, G, S, T, false, false, true)
	case FractalCombined:
		out, steps, fallback, err = fractalWalk(o.Engine, lg, G, S, T, true, true, true)
	default:
		return Result{}, fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(o.Strategy))
	}
	if err != nil {
		return Result{}, err
	}

	basis, err := finalize(out, T)
	if err != nil {
		return Result{}, err
	}
	lg.Info("conversion finished",
		zap.Int("steps", steps),
		zap.Bool("fallback", fallback),
		zap.Int("generators", basis.Len()))

	return Result{Basis: basis, Steps: steps, Fallback: fallback}, nil
}

// ConvertNamed is Convert with named orders: "lex", "deglex" or
// "degrevlex" on both sides, sized to I's ring. Unknown names surface
// as ErrInvalidOrder.
func ConvertNamed(I *ring.Ideal, startName, targetName string, opts ...Option) (Result, error) {
	if I == nil {
		return Result{}, ErrNilIdeal
	}
	n := I.Ring().N()
	S, err := order.FromName(startName, n)
	if err != nil {
		return Result{}, fmt.Errorf("%w: start order: %v", ErrInvalidOrder, err)
	}
	T, err := order.FromName(targetName, n)
	if err != nil {
		return Result{}, fmt.Errorf("%w: target order: %v", ErrInvalidOrder, err)
	}

	return Convert(I, S, T, opts...)
}

// startBasis reuses I when it already is a basis under S; otherwise the
// engine computes one in a ring carrying S.
func startBasis(e Engine, I *ring.Ideal, S order.Matrix) (*ring.Ideal, error) {
	if I.IsGB() && I.Ring().Order().Equal(S) {
		return I, nil
	}
	Rs, err := ring.NewRing(I.Ring().Vars(), S)
	if err != nil {
		return nil, fmt.Errorf("start basis: %w", err)
	}
	Is, err := I.ChangeRing(Rs)
	if err != nil {
		return nil, fmt.Errorf("start basis: %w", err)
	}
	G, err := e.Basis(Is, true)
	if err != nil {
		return nil, fmt.Errorf("%w: start basis: %v", ErrEngineFailure, err)
	}

	return G, nil
}

// finalize rebinds the walked basis to a fresh ring carrying exactly T
// and fixes the generator layout: ascending by leading monomial.
func finalize(out *ring.Ideal, T order.Matrix) (*ring.Ideal, error) {
	Rt, err := ring.NewRing(out.Ring().Vars(), T)
	if err != nil {
		return nil, fmt.Errorf("finalize: %w", err)
	}
	final, err := out.ChangeRing(Rt)
	if err != nil {
		return nil, fmt.Errorf("finalize: %w", err)
	}
	gens := final.Generators()
	sort.SliceStable(gens, func(i, j int) bool {
		return T.Compare(gens[i].LeadingExponent(), gens[j].LeadingExponent()) < 0
	})
	B, err := ring.NewIdeal(Rt, gens...)
	if err != nil {
		return nil, fmt.Errorf("finalize: %w", err)
	}
	B.MarkGB()

	return B, nil
}
