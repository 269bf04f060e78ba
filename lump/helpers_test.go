// SPDX-License-Identifier: MIT

package lump_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmigest/lump"
	"github.com/katalvlaran/lvmigest/matrix"
)

// abcd is the 4×4 example table (rows are origins), total flow 400.
func abcd(t *testing.T) *matrix.Labeled {
	t.Helper()

	m, err := matrix.NewSquareLabeled(
		[]string{"A", "B", "C", "D"},
		[][]float64{
			{0, 100, 30, 10},
			{50, 0, 50, 5},
			{10, 40, 0, 40},
			{20, 25, 20, 0},
		},
	)
	require.NoError(t, err)

	return m
}

// flat renders records as "orig>dest=flow" for compact comparisons.
func flat(recs []lump.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Orig + ">" + r.Dest + "=" + ftoa(r.Flow)
	}

	return out
}

func ftoa(v float64) string {
	return lump.ToMaps(&lump.Table{
		Fields:  lump.DefaultFields(),
		Records: []lump.Record{{Flow: v}},
	})[0][lump.DefaultFlowField]
}
