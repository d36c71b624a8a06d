package groebner

import "github.com/katalvlaran/gwalk/ring"

// Engine exposes the package through the two-method seam the walk
// package consumes. The zero value is ready to use.
type Engine struct{}

// Basis delegates to Std.
func (Engine) Basis(I *ring.Ideal, completeReduction bool) (*ring.Ideal, error) {
	return Std(I, completeReduction)
}

// NormalForm delegates to the package-level NormalForm.
func (Engine) NormalForm(p ring.Poly, G *ring.Ideal) (ring.Poly, error) {
	return NormalForm(p, G)
}
