// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmigest/matrix"
)

// hide wraps any Matrix to hide its concrete type and force the At fallback.
type hide struct{ matrix.Matrix }

func TestRowColSums_FastAndFallback(t *testing.T) {
	t.Parallel()

	X, err := matrix.NewDenseFromRows([][]float64{{0, 100, 30}, {50, 0, 50}, {10, 40, 0}})
	require.NoError(t, err)

	for name, in := range map[string]matrix.Matrix{"dense": X, "fallback": hide{X}} {
		rs, err := matrix.RowSums(in)
		require.NoError(t, err, name)
		assert.Equal(t, []float64{130, 100, 50}, rs, name)

		cs, err := matrix.ColSums(in)
		require.NoError(t, err, name)
		assert.Equal(t, []float64{60, 140, 80}, cs, name)

		tot, err := matrix.Total(in)
		require.NoError(t, err, name)
		assert.Equal(t, 280.0, tot, name)
	}
}

func TestRowSums_Nil(t *testing.T) {
	t.Parallel()

	var d *matrix.Dense
	_, err := matrix.RowSums(d)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ColSums(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
