// This file implements Ideal: the ordered generator list the Gröbner
// machinery passes between steps.
//
// Lifecycle invariant: an Ideal is never mutated after construction except
// for MarkGB, which only asserts knowledge about the existing generators.
// Anything that would change generators or ring produces a new Ideal, so a
// value marked "is Gröbner basis" can never silently lose the property.

package ring

import "strings"

// Ideal is an ordered collection of nonzero generators bound to one Ring,
// with a flag recording whether the collection is currently known to be a
// Gröbner basis under that ring's order.
type Ideal struct {
	r    *Ring
	gens []Poly
	isGB bool
}

// NewIdeal builds an ideal from the given generators. Zero polynomials are
// dropped; generator order is preserved (several walk computations pair
// generators positionally with derived lists).
//
// Errors: ErrNilRing, ErrRingMismatch (a generator bound elsewhere),
// ErrNoGenerators (nothing nonzero remains).
// Complexity: O(k).
func NewIdeal(r *Ring, gens ...Poly) (*Ideal, error) {
	if r == nil {
		return nil, ErrNilRing
	}
	kept := make([]Poly, 0, len(gens))
	for _, g := range gens {
		if g.IsZero() {
			continue
		}
		if g.r != r {
			return nil, ErrRingMismatch
		}
		kept = append(kept, g)
	}
	if len(kept) == 0 {
		return nil, ErrNoGenerators
	}

	return &Ideal{r: r, gens: kept}, nil
}

// Ring returns the ambient ring.
func (I *Ideal) Ring() *Ring { return I.r }

// Len returns the number of generators.
func (I *Ideal) Len() int { return len(I.gens) }

// Gen returns generator i. Poly values are immutable, so sharing is safe.
func (I *Ideal) Gen(i int) Poly { return I.gens[i] }

// Generators returns a copy of the generator slice (the Poly values are
// immutable and shared).
func (I *Ideal) Generators() []Poly {
	out := make([]Poly, len(I.gens))
	copy(out, I.gens)

	return out
}

// IsGB reports whether the generators are currently known to be a Gröbner
// basis under the ring's order.
func (I *Ideal) IsGB() bool { return I.isGB }

// MarkGB records that the generators form a Gröbner basis. Caller-trusted,
// not reverified: the walk marks results whose construction guarantees the
// property (engine output, lifting).
func (I *Ideal) MarkGB() { I.isGB = true }

// Clone returns a copy of the ideal sharing the immutable generators.
// The isGB flag carries over: the copy holds the same ring and generators.
func (I *Ideal) Clone() *Ideal {
	gens := make([]Poly, len(I.gens))
	copy(gens, I.gens)

	return &Ideal{r: I.r, gens: gens, isGB: I.isGB}
}

// ChangeRing re-expresses every generator under rn (verbatim terms, new
// sorting). The result is a fresh Ideal with the isGB flag cleared: the
// Gröbner property is order-relative, so callers re-mark only when theory
// guarantees it survives.
//
// Errors: as Poly.ChangeRing.
// Complexity: O(Σ kᵢ log kᵢ).
func (I *Ideal) ChangeRing(rn *Ring) (*Ideal, error) {
	gens := make([]Poly, len(I.gens))
	var err error
	for i, g := range I.gens {
		if gens[i], err = g.ChangeRing(rn); err != nil {
			return nil, err
		}
	}

	return &Ideal{r: rn, gens: gens}, nil
}

// MaxDegree returns the maximal total degree over all generators.
func (I *Ideal) MaxDegree() int {
	d := 0
	for _, g := range I.gens {
		if gd := g.TotalDegree(); gd > d {
			d = gd
		}
	}

	return d
}

// String renders the ideal as "<g1, g2, ...>".
func (I *Ideal) String() string {
	parts := make([]string, len(I.gens))
	for i, g := range I.gens {
		parts[i] = g.String()
	}

	return "<" + strings.Join(parts, ", ") + ">"
}
