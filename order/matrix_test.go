package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gwalk/order"
)

// lexLess/degLess/revLess are textbook comparators used to cross-check the
// matrix encodings on sampled exponent pairs.
func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

func deg(a []int) int {
	d := 0
	for _, e := range a {
		d += e
	}

	return d
}

func degLexLess(a, b []int) bool {
	if deg(a) != deg(b) {
		return deg(a) < deg(b)
	}

	return lexLess(a, b)
}

func degRevLexLess(a, b []int) bool {
	if deg(a) != deg(b) {
		return deg(a) < deg(b)
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] > b[i] // last differing entry: larger means smaller
		}
	}

	return false
}

// samples3 enumerates a deterministic grid of 3-variable exponent vectors.
func samples3() [][]int {
	var out [][]int
	for x := 0; x <= 3; x++ {
		for y := 0; y <= 3; y++ {
			for z := 0; z <= 3; z++ {
				out = append(out, []int{x, y, z})
			}
		}
	}

	return out
}

func TestLex_MatchesTextbookComparator(t *testing.T) {
	m, err := order.Lex(3)
	require.NoError(t, err)

	ss := samples3()
	for _, a := range ss {
		for _, b := range ss {
			want := 0
			if lexLess(a, b) {
				want = -1
			} else if lexLess(b, a) {
				want = 1
			}
			assert.Equal(t, want, m.Compare(a, b), "lex disagreement on %v vs %v", a, b)
		}
	}
}

func TestDegLex_MatchesTextbookComparator(t *testing.T) {
	m, err := order.DegLex(3)
	require.NoError(t, err)

	ss := samples3()
	for _, a := range ss {
		for _, b := range ss {
			want := 0
			if degLexLess(a, b) {
				want = -1
			} else if degLexLess(b, a) {
				want = 1
			}
			assert.Equal(t, want, m.Compare(a, b), "deglex disagreement on %v vs %v", a, b)
		}
	}
}

func TestDegRevLex_MatchesTextbookComparator(t *testing.T) {
	m, err := order.DegRevLex(3)
	require.NoError(t, err)

	ss := samples3()
	for _, a := range ss {
		for _, b := range ss {
			want := 0
			if degRevLexLess(a, b) {
				want = -1
			} else if degRevLexLess(b, a) {
				want = 1
			}
			assert.Equal(t, want, m.Compare(a, b), "degrevlex disagreement on %v vs %v", a, b)
		}
	}
}

func TestFromName_ResolvesCanonicalOrders(t *testing.T) {
	lex, err := order.FromName(order.NameLex, 2)
	require.NoError(t, err)
	want, _ := order.Lex(2)
	assert.True(t, want.Equal(lex), "FromName(lex) must equal Lex")

	_, err = order.FromName("grevlex", 2)
	assert.ErrorIs(t, err, order.ErrUnknownName, "unrecognized name must fail")
}

func TestNewMatrix_RejectsBadShapes(t *testing.T) {
	_, err := order.NewMatrix(nil)
	assert.ErrorIs(t, err, order.ErrInvalidDimension, "empty row set")

	_, err = order.NewMatrix([][]int64{{1, 0}, {0}})
	assert.ErrorIs(t, err, order.ErrNotSquare, "ragged rows")

	_, err = order.NewMatrix([][]int64{{1, 1}, {2, 2}})
	assert.ErrorIs(t, err, order.ErrRankDeficient, "dependent rows")

	_, err = order.NewMatrix([][]int64{{1, 0}, {0, -1}})
	assert.ErrorIs(t, err, order.ErrNotAdmissible, "column with negative topmost entry")
}

func TestNewMatrix_AcceptsCustomAdmissible(t *testing.T) {
	m, err := order.NewMatrix([][]int64{{2, 1}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Dim())
	assert.Equal(t, []int64{2, 1}, m.Weight())
	// x y^2 (weight 4) vs x^2 (weight 4): tie broken by second row (3 vs 2).
	assert.Equal(t, 1, m.Compare([]int{1, 2}, []int{2, 0}))
}

func TestMatrix_AccessorsCopyState(t *testing.T) {
	m, err := order.DegRevLex(2)
	require.NoError(t, err)

	w := m.Weight()
	w[0] = 99
	assert.Equal(t, []int64{1, 1}, m.Weight(), "Weight must hand out a copy")

	rows := m.Rows()
	rows[1][1] = 99
	assert.Equal(t, int64(-1), m.Entry(1, 1), "Rows must hand out copies")
}

func TestMatrix_String(t *testing.T) {
	m, err := order.DegRevLex(2)
	require.NoError(t, err)
	assert.Equal(t, "[[1 1] [0 -1]]", m.String())
}
