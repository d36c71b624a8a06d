package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gwalk/ring"
)

func TestInitialFormsSelectMaxWeightTerms(t *testing.T) {
	G := cuspBasis(t)

	forms, err := initialForms(G, bigWeight([]int64{1, 1}))
	require.NoError(t, err)
	require.Len(t, forms, 2)
	assert.Equal(t, "x^2", forms[0].String())
	assert.Equal(t, "y^2", forms[1].String())
}

func TestInitialFormsKeepTiedTerms(t *testing.T) {
	r := degRevLexRing(t, "x", "y")
	p := testPoly(t, r, ring.NewTerm(1, 1, 1, 0), ring.NewTerm(-1, 1, 0, 2))
	G := testIdeal(t, r, p)

	// (2,1) weighs x and y^2 equally, so the form is the whole binomial.
	forms, err := initialForms(G, bigWeight([]int64{2, 1}))
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.True(t, forms[0].Equal(p))

	// (1,0) separates them again.
	forms, err = initialForms(G, bigWeight([]int64{1, 0}))
	require.NoError(t, err)
	assert.Equal(t, "x", forms[0].String())
}

func TestSameForms(t *testing.T) {
	G := cuspBasis(t)
	a, err := initialForms(G, bigWeight([]int64{1, 1}))
	require.NoError(t, err)
	b, err := initialForms(G, bigWeight([]int64{3, 3}))
	require.NoError(t, err)
	c, err := initialForms(G, bigWeight([]int64{1, 0}))
	require.NoError(t, err)

	assert.True(t, sameForms(a, b))
	assert.False(t, sameForms(a, c))
}

func TestIsMonomialIsBinomial(t *testing.T) {
	r := degRevLexRing(t, "x", "y")
	mono := testPoly(t, r, ring.NewTerm(2, 1, 1, 1))
	bino := testPoly(t, r, ring.NewTerm(1, 1, 2, 0), ring.NewTerm(-1, 1, 0, 1))
	trino := testPoly(t, r, ring.NewTerm(1, 1, 2, 0), ring.NewTerm(1, 1, 1, 0), ring.NewTerm(1, 1, 0, 0))

	assert.True(t, isMonomial([]ring.Poly{mono}))
	assert.False(t, isMonomial([]ring.Poly{mono, bino}))
	assert.True(t, isBinomial([]ring.Poly{mono, bino}))
	assert.False(t, isBinomial([]ring.Poly{bino, trino}))
}
