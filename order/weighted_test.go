package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gwalk/order"
)

func TestWeighted_PrependsWeightRow(t *testing.T) {
	lex, err := order.Lex(2)
	require.NoError(t, err)

	m, err := order.Weighted(lex, []int64{2, 1})
	require.NoError(t, err)

	// (2,1) first, then the first independent lex row.
	assert.Equal(t, [][]int64{{2, 1}, {1, 0}}, m.Rows())
	// y^2 (weight 2) vs x (weight 2): tie falls to the lex row, x wins.
	assert.Equal(t, -1, m.Compare([]int{0, 2}, []int{1, 0}))
}

func TestWeighted_SkipsDependentRows(t *testing.T) {
	drl, err := order.DegRevLex(2)
	require.NoError(t, err)

	// Weight equals the first base row: that base row adds nothing and must
	// be skipped in favor of the tie-break row.
	m, err := order.Weighted(drl, []int64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{1, 1}, {0, -1}}, m.Rows())
}

func TestWeighted_TwoWeightRows(t *testing.T) {
	lex, err := order.Lex(3)
	require.NoError(t, err)

	m, err := order.Weighted(lex, []int64{1, 1, 1}, []int64{1, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{1, 1, 1}, {1, 1, 0}, {1, 0, 0}}, m.Rows())
}

func TestWeighted_Rejections(t *testing.T) {
	lex, err := order.Lex(2)
	require.NoError(t, err)

	_, err = order.Weighted(lex, []int64{1})
	assert.ErrorIs(t, err, order.ErrWeightLength, "short weight row")

	_, err = order.Weighted(lex, []int64{1, 0}, []int64{0, 1}, []int64{1, 1})
	assert.ErrorIs(t, err, order.ErrTooManyWeights, "three weight rows")

	_, err = order.Weighted(order.Matrix{}, []int64{1, 1})
	assert.ErrorIs(t, err, order.ErrInvalidDimension, "zero-value base")
}

func TestWeighted_PreservesOrderSemantics(t *testing.T) {
	// A dependent weight row leaves the induced comparison unchanged.
	drl, err := order.DegRevLex(3)
	require.NoError(t, err)
	m, err := order.Weighted(drl, []int64{2, 2, 2})
	require.NoError(t, err)

	ss := samples3()
	for _, a := range ss {
		for _, b := range ss {
			assert.Equal(t, drl.Compare(a, b), m.Compare(a, b),
				"scaled first row must not change the order: %v vs %v", a, b)
		}
	}
}

func TestValidate_StagedChecks(t *testing.T) {
	drl, err := order.DegRevLex(3)
	require.NoError(t, err)

	assert.NoError(t, order.Validate(drl, 3))
	assert.ErrorIs(t, order.Validate(drl, 2), order.ErrDimensionMismatch)
	assert.ErrorIs(t, order.Validate(order.Matrix{}, 3), order.ErrInvalidDimension)
	assert.ErrorIs(t, order.Validate(drl, 0), order.ErrInvalidDimension)
}
