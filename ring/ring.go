// This file declares Ring and its constructor: a variable list bound to an
// order.Matrix. Rings are immutable; an order change means a new Ring.

package ring

import (
	"strings"

	"github.com/katalvlaran/gwalk/order"
)

// Ring fixes the ambient polynomial ring: variable names (which set the
// exponent-vector width) and the monomial order all Poly values bound to it
// are sorted under.
type Ring struct {
	vars []string
	ord  order.Matrix
}

// NewRing constructs a ring over the given variables with the given order.
//
// Contract:
//   - vars must be non-empty, with unique, non-empty names.
//   - m must be a constructed order.Matrix with Dim() == len(vars).
//
// Errors: ErrNoVariables, ErrDuplicateVariable, ErrOrderMismatch.
// Complexity: O(n) plus the map for uniqueness.
func NewRing(vars []string, m order.Matrix) (*Ring, error) {
	if len(vars) == 0 {
		return nil, ErrNoVariables
	}
	seen := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		if v == "" {
			return nil, ErrNoVariables
		}
		if _, dup := seen[v]; dup {
			return nil, ErrDuplicateVariable
		}
		seen[v] = struct{}{}
	}
	if m.Dim() != len(vars) {
		return nil, ErrOrderMismatch
	}

	cp := make([]string, len(vars))
	copy(cp, vars)

	return &Ring{vars: cp, ord: m}, nil
}

// N returns the number of variables.
func (r *Ring) N() int { return len(r.vars) }

// Vars returns a copy of the variable names.
func (r *Ring) Vars() []string {
	cp := make([]string, len(r.vars))
	copy(cp, r.vars)

	return cp
}

// Order returns the ring's order matrix (a value; safe to share).
func (r *Ring) Order() order.Matrix { return r.ord }

// SameVars reports whether two rings range over identical variable lists
// (order of names included). Rings with equal variables but different order
// matrices represent the same polynomials sorted differently; those are
// exactly the pairs ChangeRing translates between.
func (r *Ring) SameVars(o *Ring) bool {
	if o == nil || len(r.vars) != len(o.vars) {
		return false
	}
	for i := range r.vars {
		if r.vars[i] != o.vars[i] {
			return false
		}
	}

	return true
}

// Equal reports whether two rings have the same variables and the same
// order matrix.
func (r *Ring) Equal(o *Ring) bool {
	return r.SameVars(o) && o != nil && r.ord.Equal(o.ord)
}

// String renders the ring as "QQ[x,y] order [[...]]".
func (r *Ring) String() string {
	var b strings.Builder
	b.WriteString("QQ[")
	b.WriteString(strings.Join(r.vars, ","))
	b.WriteString("] order ")
	b.WriteString(r.ord.String())

	return b.String()
}
