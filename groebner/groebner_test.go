package groebner_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gwalk/groebner"
	"github.com/katalvlaran/gwalk/order"
	"github.com/katalvlaran/gwalk/ring"
)

// ringUnder builds QQ[vars...] under the named canonical order.
func ringUnder(t *testing.T, ordName string, vars ...string) *ring.Ring {
	t.Helper()
	m, err := order.FromName(ordName, len(vars))
	require.NoError(t, err)
	r, err := ring.NewRing(vars, m)
	require.NoError(t, err)

	return r
}

// poly is a shorthand constructor for test fixtures.
func poly(t *testing.T, r *ring.Ring, terms ...ring.Term) ring.Poly {
	t.Helper()
	p, err := ring.NewPoly(r, terms...)
	require.NoError(t, err)

	return p
}

// genStrings renders an ideal's generators for order-sensitive comparison.
func genStrings(I *ring.Ideal) []string {
	out := make([]string, I.Len())
	for i := range out {
		out[i] = I.Gen(i).String()
	}

	return out
}

// twistedCusp returns <x^2 - y, y^2 - x> in the given ring.
func twistedCusp(t *testing.T, r *ring.Ring) *ring.Ideal {
	t.Helper()
	I, err := ring.NewIdeal(r,
		poly(t, r, ring.NewTerm(1, 1, 2, 0), ring.NewTerm(-1, 1, 0, 1)),
		poly(t, r, ring.NewTerm(1, 1, 0, 2), ring.NewTerm(-1, 1, 1, 0)),
	)
	require.NoError(t, err)

	return I
}

func TestStd_CoprimeLeadsAreAlreadyABasis(t *testing.T) {
	r := ringUnder(t, order.NameDegRevLex, "x", "y")

	G, err := groebner.Std(twistedCusp(t, r), true)
	require.NoError(t, err)

	assert.True(t, G.IsGB())
	assert.Equal(t, []string{"y^2 - x", "x^2 - y"}, genStrings(G),
		"x^2 and y^2 are coprime, so the input survives up to the ascending sort")
}

func TestStd_LexBasisOfTheTwistedCusp(t *testing.T) {
	r := ringUnder(t, order.NameLex, "x", "y")

	G, err := groebner.Std(twistedCusp(t, r), true)
	require.NoError(t, err)

	assert.Equal(t, []string{"y^4 - y", "x - y^2"}, genStrings(G),
		"lex elimination of x from the twisted cusp")
}

func TestStd_Cyclic3UnderLex(t *testing.T) {
	r := ringUnder(t, order.NameLex, "x", "y", "z")

	I, err := ring.NewIdeal(r,
		poly(t, r, ring.NewTerm(1, 1, 1, 0, 0), ring.NewTerm(1, 1, 0, 1, 0), ring.NewTerm(1, 1, 0, 0, 1)),
		poly(t, r, ring.NewTerm(1, 1, 1, 1, 0), ring.NewTerm(1, 1, 0, 1, 1), ring.NewTerm(1, 1, 1, 0, 1)),
		poly(t, r, ring.NewTerm(1, 1, 1, 1, 1), ring.NewTerm(-1, 1, 0, 0, 0)),
	)
	require.NoError(t, err)

	G, err := groebner.Std(I, true)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"z^3 - 1", "y^2 + y*z + z^2", "x + y + z"},
		genStrings(G),
		"classical cyclic-3 lex basis")
}

func TestStd_HonorsBasisFlag(t *testing.T) {
	r := ringUnder(t, order.NameDegRevLex, "x", "y")

	I := twistedCusp(t, r)
	I.MarkGB()

	G, err := groebner.Std(I, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"y^2 - x", "x^2 - y"}, genStrings(G),
		"a trusted basis is only normalized, never recompleted")
}

func TestStd_Deterministic(t *testing.T) {
	r := ringUnder(t, order.NameLex, "x", "y", "z")

	build := func() []string {
		I, err := ring.NewIdeal(r,
			poly(t, r, ring.NewTerm(1, 1, 1, 0, 0), ring.NewTerm(1, 1, 0, 1, 0), ring.NewTerm(1, 1, 0, 0, 1)),
			poly(t, r, ring.NewTerm(1, 1, 1, 1, 0), ring.NewTerm(1, 1, 0, 1, 1), ring.NewTerm(1, 1, 1, 0, 1)),
			poly(t, r, ring.NewTerm(1, 1, 1, 1, 1), ring.NewTerm(-1, 1, 0, 0, 0)),
		)
		require.NoError(t, err)
		G, err := groebner.Std(I, true)
		require.NoError(t, err)

		return genStrings(G)
	}

	assert.Empty(t, cmp.Diff(build(), build()), "identical inputs must give identical bases")
}

func TestStd_NilIdeal(t *testing.T) {
	_, err := groebner.Std(nil, true)
	assert.ErrorIs(t, err, groebner.ErrNilIdeal)
}

func TestNormalForm_MembershipAndRemainder(t *testing.T) {
	r := ringUnder(t, order.NameLex, "x", "y")

	G, err := groebner.Std(twistedCusp(t, r), true)
	require.NoError(t, err)

	member := poly(t, r, ring.NewTerm(1, 1, 2, 0), ring.NewTerm(-1, 1, 0, 1))
	nf, err := groebner.NormalForm(member, G)
	require.NoError(t, err)
	assert.True(t, nf.IsZero(), "generators reduce to zero against their own basis")

	outside := poly(t, r, ring.NewTerm(1, 1, 2, 0), ring.NewTerm(1, 1, 0, 1))
	nf, err = groebner.NormalForm(outside, G)
	require.NoError(t, err)
	assert.Equal(t, "2*y", nf.String(), "x^2 + y leaves the remainder 2y")
}

func TestNormalForm_Validation(t *testing.T) {
	r := ringUnder(t, order.NameLex, "x", "y")
	other := ringUnder(t, order.NameLex, "x", "y")

	G, err := groebner.Std(twistedCusp(t, r), true)
	require.NoError(t, err)

	_, err = groebner.NormalForm(poly(t, r, ring.NewTerm(1, 1, 1, 0)), nil)
	assert.ErrorIs(t, err, groebner.ErrNilIdeal)

	_, err = groebner.NormalForm(poly(t, other, ring.NewTerm(1, 1, 1, 0)), G)
	assert.ErrorIs(t, err, groebner.ErrRingMismatch)
}

func TestSPoly(t *testing.T) {
	r := ringUnder(t, order.NameLex, "x", "y")

	f := poly(t, r, ring.NewTerm(1, 1, 1, 0), ring.NewTerm(-1, 1, 0, 2)) // x - y^2
	g := poly(t, r, ring.NewTerm(1, 1, 2, 0), ring.NewTerm(-1, 1, 0, 1)) // x^2 - y

	s, err := groebner.SPoly(f, g)
	require.NoError(t, err)
	assert.Equal(t, "-x*y^2 + y", s.String(), "lcm x^2 cancels, lower terms remain")

	_, err = groebner.SPoly(f, r.Zero())
	assert.ErrorIs(t, err, groebner.ErrZeroPolynomial)
}

func TestEngine_DelegatesToPackage(t *testing.T) {
	r := ringUnder(t, order.NameLex, "x", "y")

	var e groebner.Engine
	G, err := e.Basis(twistedCusp(t, r), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"y^4 - y", "x - y^2"}, genStrings(G))

	nf, err := e.NormalForm(G.Gen(0), G)
	require.NoError(t, err)
	assert.True(t, nf.IsZero())
}
