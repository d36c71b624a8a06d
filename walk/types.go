package walk

import (
	"errors"

	"github.com/katalvlaran/gwalk/ring"
)

// Strategy selects how the walk crosses the Gröbner fan from the start
// order to the target order.
type Strategy int

const (
	// Standard crosses one cone boundary at a time along the straight
	// segment between the two order's weight vectors.
	Standard Strategy = iota

	// Generic walks facet by facet with marked leading terms and never
	// builds intermediate weight vectors.
	Generic

	// Perturbed walks between perturbed interior weights, decrementing
	// the perturbation degree whenever the target cone is missed.
	Perturbed

	// Tran combines perturbed interior starts with a representation
	// vector re-pick on degenerate boundaries.
	Tran

	// Fractal recurses into the initial-form ideal of each step with
	// per-depth perturbed targets.
	Fractal

	// FractalStartOrder is Fractal with perturbed start weights for
	// bases whose start initial forms are not monomial.
	FractalStartOrder

	// FractalLex is Fractal skipping the depth-1 recursion when the new
	// ring preserves every leading term.
	FractalLex

	// FractalLookAhead is Fractal calling the engine directly on
	// monomial or binomial initial-form ideals.
	FractalLookAhead

	// FractalCombined enables all three Fractal refinements at once.
	FractalCombined
)

// String returns the canonical strategy name.
func (s Strategy) String() string {
	switch s {
	case Standard:
		return "standard"
	case Generic:
		return "generic"
	case Perturbed:
		return "perturbed"
	case Tran:
		return "tran"
	case Fractal:
		return "fractal"
	case FractalStartOrder:
		return "fractal_start_order"
	case FractalLex:
		return "fractal_lex"
	case FractalLookAhead:
		return "fractal_look_ahead"
	case FractalCombined:
		return "fractal_combined"
	default:
		return "unknown"
	}
}

// Result is the outcome of one conversion.
type Result struct {
	// Basis is the reduced Gröbner basis under the target order, bound
	// to a fresh ring carrying exactly the target matrix.
	Basis *ring.Ideal

	// Steps counts cone crossings (Standard, Perturbed, Tran), facet
	// crossings (Generic) or per-depth conversions (Fractal). Diagnostic.
	Steps int

	// Fallback reports that weight truncation diverged and the basis was
	// computed by the engine directly under the target order. Only the
	// Tran and Fractal strategies fall back; Standard errors instead.
	Fallback bool
}

// Engine abstracts the Gröbner backend the walk drives. Implementations
// must be deterministic; groebner.Engine is the default.
type Engine interface {
	// Basis returns a Gröbner basis of I under the order of I's ring.
	// With completeReduction the basis is fully reduced.
	Basis(I *ring.Ideal, completeReduction bool) (*ring.Ideal, error)

	// NormalForm reduces p modulo the generators of G.
	NormalForm(p ring.Poly, G *ring.Ideal) (ring.Poly, error)
}

// Sentinel errors for walk execution. Callers match with errors.Is.
var (
	// ErrNilIdeal is returned if a nil ideal pointer is passed.
	ErrNilIdeal = errors.New("walk: ideal is nil")

	// ErrInvalidOrder is returned when an order matrix does not fit the
	// ring: wrong dimension, rank deficient, inadmissible, or an unknown
	// order name.
	ErrInvalidOrder = errors.New("walk: invalid order matrix")

	// ErrWeightOverflow is returned by the Standard strategy when a
	// boundary weight exceeds the representable range and truncation
	// changes the initial forms.
	ErrWeightOverflow = errors.New("walk: weight vector overflow")

	// ErrEngineFailure is returned when an engine call fails.
	ErrEngineFailure = errors.New("walk: engine failure")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")

	// ErrNonTerminating names the conversion-never-finishes condition.
	// The implementation cannot detect it and never returns it; the
	// sentinel exists so callers running walks under their own watchdogs
	// have a stable error to surface.
	ErrNonTerminating = errors.New("walk: conversion does not terminate")
)
