package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gwalk/groebner"
	"github.com/katalvlaran/gwalk/ring"
)

func genStrings(I *ring.Ideal) []string {
	out := make([]string, I.Len())
	for i := 0; i < I.Len(); i++ {
		out[i] = I.Gen(i).String()
	}

	return out
}

func TestStandardStepConvertsOneBoundary(t *testing.T) {
	G := cuspBasis(t)

	next, err := standardStep(groebner.Engine{}, G, bigWeight([]int64{1, 1}), lexMatrix(t, 2))
	require.NoError(t, err)

	assert.Equal(t, []string{"y^2 - x", "x^2 - y"}, genStrings(next))
	assert.True(t, next.IsGB())
	assert.False(t, next.Ring().Order().Equal(G.Ring().Order()), "step rebinds to a weighted ring")
}

func TestInterreduceDropsRedundantGenerator(t *testing.T) {
	r := degRevLexRing(t, "x", "y")
	G := testIdeal(t, r,
		testPoly(t, r, ring.NewTerm(1, 1, 2, 0), ring.NewTerm(-1, 1, 0, 1)),
		testPoly(t, r, ring.NewTerm(1, 1, 0, 2), ring.NewTerm(-1, 1, 1, 0)),
		// x^3 - x*y = x·(x^2 - y) reduces to zero against the others
		testPoly(t, r, ring.NewTerm(1, 1, 3, 0), ring.NewTerm(-1, 1, 1, 1)),
	)

	red, err := interreduce(groebner.Engine{}, G)
	require.NoError(t, err)
	assert.Equal(t, []string{"x^2 - y", "y^2 - x"}, genStrings(red))
}

func TestInterreduceIdempotent(t *testing.T) {
	G := cuspBasis(t)

	once, err := interreduce(groebner.Engine{}, G)
	require.NoError(t, err)
	twice, err := interreduce(groebner.Engine{}, once)
	require.NoError(t, err)

	assert.Equal(t, genStrings(once), genStrings(twice))
}

// cuspMarked returns the cusp generators in the lex ring, still marked
// with their degrevlex leads.
func cuspMarked(t *testing.T) (*ring.Ring, []marked) {
	t.Helper()
	rt := testRing(t, lexMatrix(t, 2), "x", "y")
	g1 := testPoly(t, rt, ring.NewTerm(1, 1, 2, 0), ring.NewTerm(-1, 1, 0, 1))
	g2 := testPoly(t, rt, ring.NewTerm(1, 1, 0, 2), ring.NewTerm(-1, 1, 1, 0))

	return rt, []marked{
		{g: g1, lead: ring.NewTerm(1, 1, 2, 0)},
		{g: g2, lead: ring.NewTerm(1, 1, 0, 2)},
	}
}

func TestMarkedNormalForm(t *testing.T) {
	rt, cur := cuspMarked(t)

	// y^4 → x*y^2 → x^2 → y along the marks, not the lex leads
	nf, err := markedNormalForm(testPoly(t, rt, ring.NewTerm(1, 1, 0, 4)), cur)
	require.NoError(t, err)
	assert.Equal(t, "y", nf.String())

	// members of the marked ideal vanish
	member, err := cur[0].g.MulTerm(ring.NewTerm(1, 1, 1, 1))
	require.NoError(t, err)
	nf, err = markedNormalForm(member, cur)
	require.NoError(t, err)
	assert.True(t, nf.IsZero())
}

func TestLiftGenericKeepsLeadsAsMarks(t *testing.T) {
	rt, cur := cuspMarked(t)

	// basis of the facet-initial ideal <x^2, y^2 - x> under lex
	H, err := ring.NewIdeal(rt,
		testPoly(t, rt, ring.NewTerm(1, 1, 0, 4)),
		testPoly(t, rt, ring.NewTerm(1, 1, 1, 0), ring.NewTerm(-1, 1, 0, 2)),
	)
	require.NoError(t, err)
	H.MarkGB()

	lifted, err := liftGeneric(cur, H)
	require.NoError(t, err)
	require.Len(t, lifted, 2)

	assert.Equal(t, "y^4 - y", lifted[0].g.String())
	assert.Equal(t, []int{0, 4}, lifted[0].lead.Exp)
	assert.Equal(t, "x - y^2", lifted[1].g.String())
	assert.Equal(t, []int{1, 0}, lifted[1].lead.Exp)
}

func TestInterreduceMarkedDropsVanishing(t *testing.T) {
	_, cur := cuspMarked(t)
	dup := []marked{cur[0], cur[0]}

	out, err := interreduceMarked(dup)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "x^2 - y", out[0].g.String())
}
