package walk

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/gwalk/groebner"
	"github.com/katalvlaran/gwalk/order"
	"github.com/katalvlaran/gwalk/ring"
)

// Option configures a conversion via functional arguments.
// An invalid Option (unknown strategy, negative degree) is recorded
// internally and surfaced as ErrOptionViolation when Convert is invoked.
type Option func(*Options)

// RepresentationFunc re-picks the Tran target weight when the walk sits
// on a degenerate cone boundary. It must return a weight strictly inside
// the target cone of the given basis.
type RepresentationFunc func(I *ring.Ideal, target order.Matrix) []*big.Int

// Options holds the tunables for Convert.
type Options struct {
	// Strategy picks the walk flavor. Default Standard.
	Strategy Strategy

	// PerturbationDegree is the starting perturbation depth for the
	// Perturbed strategy. 0 selects the ring dimension; values are
	// clamped to [1, n] at dispatch.
	PerturbationDegree int

	// Engine computes Gröbner bases and normal forms.
	// Default groebner.Engine{}.
	Engine Engine

	// Logger receives walk progress: crossed weight vectors at Info,
	// intermediate bases at Debug. Default zap.NewNop().
	Logger *zap.Logger

	// Representation is the Tran boundary re-pick policy.
	// Default representationWeight.
	Representation RepresentationFunc

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the package defaults:
//   - Standard strategy
//   - full-dimension perturbation (PerturbationDegree == 0)
//   - groebner.Engine backend
//   - silent logger
//   - representationWeight boundary policy.
func DefaultOptions() Options {
	return Options{
		Strategy:           Standard,
		PerturbationDegree: 0,
		Engine:             groebner.Engine{},
		Logger:             zap.NewNop(),
		Representation:     representationWeight,
		err:                nil,
	}
}

// WithStrategy selects the walk flavor.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s < Standard || s > FractalCombined {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))

			return
		}
		o.Strategy = s
	}
}

// WithPerturbationDegree sets the starting perturbation depth.
//
//	p > 0: start at depth p (clamped to the ring dimension)
//	p == 0: explicit full dimension
//	p < 0: invalid option → ErrOptionViolation
func WithPerturbationDegree(p int) Option {
	return func(o *Options) {
		if p < 0 {
			o.err = fmt.Errorf("%w: PerturbationDegree cannot be negative (%d)", ErrOptionViolation, p)

			return
		}
		o.PerturbationDegree = p
	}
}

// WithEngine swaps the Gröbner backend. A nil engine keeps the default.
func WithEngine(e Engine) Option {
	return func(o *Options) {
		if e != nil {
			o.Engine = e
		}
	}
}

// WithLogger attaches a logger. A nil logger keeps the silent default.
func WithLogger(lg *zap.Logger) Option {
	return func(o *Options) {
		if lg != nil {
			o.Logger = lg
		}
	}
}

// WithRepresentation overrides the Tran boundary re-pick policy.
// A nil function keeps the default.
func WithRepresentation(fn RepresentationFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Representation = fn
		}
	}
}

// gatherOptions folds the caller's options over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
