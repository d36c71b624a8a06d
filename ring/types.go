// This file declares Term, the sentinel errors, and the small term
// constructors shared by tests and examples.
//
// Errors:
//
//	ErrNoVariables       - ring has an empty variable list.
//	ErrDuplicateVariable - two variables share a name.
//	ErrOrderMismatch     - order matrix dimension differs from variable count.
//	ErrNilRing           - nil *Ring passed where a ring is required.
//	ErrRingMismatch      - operands belong to different rings.
//	ErrExponentWidth     - exponent vector length differs from the ring's n.
//	ErrNegativeExponent  - exponent vector contains a negative entry.
//	ErrNoGenerators      - ideal constructed with no nonzero generator.

package ring

import (
	"errors"
	"math/big"
)

// Sentinel errors for ring operations.
var (
	// ErrNoVariables indicates a ring constructed over an empty variable list.
	ErrNoVariables = errors.New("ring: variable list is empty")

	// ErrDuplicateVariable indicates two ring variables share a name.
	ErrDuplicateVariable = errors.New("ring: duplicate variable name")

	// ErrOrderMismatch indicates the order matrix dimension differs from the
	// variable count.
	ErrOrderMismatch = errors.New("ring: order dimension does not match variables")

	// ErrNilRing indicates a nil *Ring where a ring is required.
	ErrNilRing = errors.New("ring: nil ring")

	// ErrRingMismatch indicates operands bound to different rings.
	ErrRingMismatch = errors.New("ring: operands belong to different rings")

	// ErrExponentWidth indicates an exponent vector of the wrong length.
	ErrExponentWidth = errors.New("ring: exponent vector width mismatch")

	// ErrNegativeExponent indicates a negative entry in an exponent vector.
	ErrNegativeExponent = errors.New("ring: negative exponent")

	// ErrNoGenerators indicates an ideal with no nonzero generators.
	ErrNoGenerators = errors.New("ring: ideal needs at least one nonzero generator")
)

// Term is one coefficient–exponent pair of a polynomial.
//
// Coeff is exact (ℚ); Exp holds one entry per ring variable. A Term is plain
// data with no ring binding; Poly constructors validate the width and copy
// both fields, so terms may be built once and reused across rings of equal
// dimension.
type Term struct {
	// Coeff is the rational coefficient. Nil is treated as zero.
	Coeff *big.Rat

	// Exp is the exponent vector, one non-negative entry per variable.
	Exp []int
}

// NewTerm builds a Term with coefficient num/den and the given exponents.
// Intended for compact literals in tests and examples:
//
//	NewTerm(-1, 1, 2, 0) // -x²  (in a 2-variable ring)
//
// A zero den panics inside math/big, as it would in any rational literal.
func NewTerm(num, den int64, exp ...int) Term {
	e := make([]int, len(exp))
	copy(e, exp)

	return Term{Coeff: big.NewRat(num, den), Exp: e}
}

// clone returns a deep copy of the term.
func (t Term) clone() Term {
	e := make([]int, len(t.Exp))
	copy(e, t.Exp)
	c := new(big.Rat)
	if t.Coeff != nil {
		c.Set(t.Coeff)
	}

	return Term{Coeff: c, Exp: e}
}

// isZero reports whether the term's coefficient is zero (or nil).
func (t Term) isZero() bool { return t.Coeff == nil || t.Coeff.Sign() == 0 }

// totalDegree is the sum of the exponents.
func (t Term) totalDegree() int {
	d := 0
	for _, e := range t.Exp {
		d += e
	}

	return d
}
