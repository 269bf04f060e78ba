// SPDX-License-Identifier: MIT

package lump_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmigest/lump"
	"github.com/katalvlaran/lvmigest/matrix"
)

// TestLump_FlowThreshold covers the 4×4 example at threshold 40: every
// cell below 40 moves to other→other and is re-summed.
func TestLump_FlowThreshold(t *testing.T) {
	t.Parallel()

	res, err := lump.LumpMatrix(abcd(t), 40)
	require.NoError(t, err)

	got := res.Table()
	assert.Equal(t, []string{
		"A>B=100",
		"B>A=50", "B>C=50",
		"C>B=40", "C>D=40",
		"other>other=120",
	}, flat(got.Records))
	assert.Equal(t, 400.0, got.Sum())

	for _, r := range got.Records {
		if r.Orig != "other" {
			assert.GreaterOrEqual(t, r.Flow, 40.0, "%s→%s", r.Orig, r.Dest)
		}
	}
}

// TestLump_InboundRelabelsOrigin pins the in-threshold behavior: regions are
// flagged by inbound total but the ORIGIN field is relabeled.
func TestLump_InboundRelabelsOrigin(t *testing.T) {
	t.Parallel()

	// Inbound totals: A=80, B=165, C=100, D=55 → A and D flagged at 100.
	res, err := lump.LumpMatrix(abcd(t), 100, lump.WithTargets(lump.Imm))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"B>A=50", "B>B=0", "B>C=50", "B>D=5",
		"C>A=10", "C>B=40", "C>C=0", "C>D=40",
		"other>A=20", "other>B=125", "other>C=50", "other>D=10",
	}, flat(res.Table().Records))
	assert.Equal(t, 400.0, res.Table().Sum())
}

// TestLump_OutboundRelabelsDestination pins the out-threshold behavior.
func TestLump_OutboundRelabelsDestination(t *testing.T) {
	t.Parallel()

	// Outbound totals: A=140, B=105, C=90, D=65 → C and D flagged at 100.
	res, err := lump.LumpMatrix(abcd(t), 100, lump.WithTargets(lump.Emi))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"A>A=0", "A>B=100", "A>other=40",
		"B>A=50", "B>B=0", "B>other=55",
		"C>A=10", "C>B=40", "C>other=40",
		"D>A=20", "D>B=25", "D>other=20",
	}, flat(res.Table().Records))
}

// TestLump_RulesAreCumulative checks that out totals are taken after the in
// stage has relabeled origins.
func TestLump_RulesAreCumulative(t *testing.T) {
	t.Parallel()

	res, err := lump.LumpMatrix(abcd(t), 100, lump.WithTargets(lump.In, lump.Out))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"B>A=50", "B>B=0", "B>D=5", "B>other=50",
		"C>A=10", "C>B=40", "C>D=40", "C>other=0",
		"other>A=20", "other>B=125", "other>D=10", "other>other=50",
	}, flat(res.Table().Records))
	assert.Equal(t, 400.0, res.Table().Sum())
}

// TestLump_CompleteDense checks the (n+1)×(m+1) dense output and fill value.
func TestLump_CompleteDense(t *testing.T) {
	t.Parallel()

	res, err := lump.LumpMatrix(abcd(t), 40, lump.WithComplete(true), lump.WithFillValue(-1))
	require.NoError(t, err)
	assert.Len(t, res.Table().Records, 25)

	m, err := res.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 5, m.Rows())
	assert.Equal(t, 5, m.Cols())
	assert.Equal(t, []string{"A", "B", "C", "D", "other"}, m.RowLabels())
	assert.Equal(t, []string{"A", "B", "C", "D", "other"}, m.ColLabels())

	want := [][]float64{
		{-1, 100, -1, -1, -1},
		{50, -1, 50, -1, -1},
		{-1, 40, -1, 40, -1},
		{-1, -1, -1, -1, -1},
		{-1, -1, -1, -1, 120},
	}
	for i, row := range want {
		got, err := m.Dense().RowValues(i)
		require.NoError(t, err)
		assert.Equal(t, row, got, "row %d", i)
	}
}

func TestLump_DenseUnavailable(t *testing.T) {
	t.Parallel()

	// Matrix input without completion.
	res, err := lump.LumpMatrix(abcd(t), 40)
	require.NoError(t, err)
	assert.False(t, res.HasDense())
	_, err = res.Matrix()
	assert.ErrorIs(t, err, lump.ErrDenseConversionUnsupported)

	// Completed, dense output disabled.
	res, err = lump.LumpMatrix(abcd(t), 40, lump.WithComplete(true), lump.WithReturnDense(false))
	require.NoError(t, err)
	_, err = res.Matrices()
	assert.ErrorIs(t, err, lump.ErrDenseConversionUnsupported)

	// Record input, even when completed.
	tbl := lump.NewTable()
	tbl.Add("A", "B", 5)
	res, err = lump.Lump(tbl, 10, lump.WithComplete(true))
	require.NoError(t, err)
	_, err = res.Matrix()
	assert.ErrorIs(t, err, lump.ErrDenseConversionUnsupported)
}

// TestLump_ThresholdAtMinimumIsAggregate checks that nothing is relabeled
// when the threshold does not exceed the smallest flow.
func TestLump_ThresholdAtMinimumIsAggregate(t *testing.T) {
	t.Parallel()

	tbl := lump.NewTable()
	tbl.Add("X", "Y", 3)
	tbl.Add("Y", "X", 7)
	tbl.Add("X", "Y", 4)
	tbl.Add("Z", "X", 3)

	want, err := lump.Aggregate(tbl)
	require.NoError(t, err)
	for _, targets := range [][]string{{lump.Flow}, {lump.Flow, lump.In, lump.Out}} {
		res, err := lump.Lump(tbl, 3, lump.WithTargets(targets...))
		require.NoError(t, err)
		assert.Equal(t, want.Records, res.Table().Records, "%v", targets)
	}
	assert.Equal(t, []string{"X>Y=7", "Y>X=7", "Z>X=3"}, flat(want.Records))
}

// TestLump_ConservesMass checks every target combination on the example.
func TestLump_ConservesMass(t *testing.T) {
	t.Parallel()

	combos := [][]string{{"flow"}, {"in"}, {"out"}, {"flow", "in"}, {"in", "out"}, {"bilat", "imm", "emi"}}
	for _, th := range []float64{0, 10, 40, 100, 1000} {
		for _, c := range combos {
			res, err := lump.LumpMatrix(abcd(t), th, lump.WithTargets(c...))
			require.NoError(t, err)
			assert.InDelta(t, 400.0, res.Table().Sum(), 1e-9, "th=%g targets=%v", th, c)
		}
	}
}

func TestLump_Grouped(t *testing.T) {
	t.Parallel()

	tbl := lump.NewTable("period")
	tbl.Add("A", "B", 50, "2010")
	tbl.Add("A", "C", 5, "2010")
	tbl.Add("B", "A", 2, "2010")
	tbl.Add("A", "B", 1, "2015")
	tbl.Add("C", "A", 60, "2015")

	res, err := lump.Lump(tbl, 10, lump.WithOtherLabel("rest"), lump.WithComplete(true))
	require.NoError(t, err)
	out := res.Table()
	assert.Equal(t, []string{"period"}, out.GroupBy)
	assert.Equal(t, [][]string{{"2010"}, {"2015"}}, out.Groups())

	// 2010: origins {A,B,rest} × destinations {B,C,A,rest}.
	g2010 := out.Group("2010")
	assert.Len(t, g2010, 12)
	assert.Equal(t, "A>B=50", flat(g2010)[0])
	assert.Equal(t, "rest>rest=7", flat(g2010)[11])

	// 2015: origins {A,C,rest} × destinations {B,A,rest}.
	g2015 := out.Group("2015")
	assert.Len(t, g2015, 9)
	assert.Contains(t, flat(g2015), "C>A=60")
	assert.Contains(t, flat(g2015), "rest>rest=1")

	// Groups are lumped independently: 2010 totals 57, 2015 totals 61.
	assert.Equal(t, 118.0, out.Sum())
	for _, r := range out.Records {
		require.Len(t, r.Keys, 1)
	}
}

func TestLump_GroupedMatricesDense(t *testing.T) {
	t.Parallel()

	a, b := abcd(t), abcd(t)
	require.NoError(t, b.SetLabel("A", "B", 1))
	tbl, err := lump.FromMatrices("year", []string{"2000", "2001"}, []*matrix.Labeled{a, b})
	require.NoError(t, err)
	assert.True(t, tbl.FromDense())

	res, err := lump.Lump(tbl, 40, lump.WithComplete(true))
	require.NoError(t, err)

	ms, err := res.Matrices()
	require.NoError(t, err)
	require.Len(t, ms, 2)
	assert.Equal(t, []string{"2001"}, ms[1].Keys)

	v, err := ms[1].Matrix.AtLabel("other", "other")
	require.NoError(t, err)
	assert.Equal(t, 121.0, v, "A→B=1 joins other in 2001 only")

	_, err = res.Matrix()
	assert.ErrorIs(t, err, lump.ErrDenseConversionUnsupported, "two groups need Matrices")
}

func TestLump_InvalidArguments(t *testing.T) {
	t.Parallel()

	m := abcd(t)
	cases := map[string][]lump.Option{
		"bad token":   {lump.WithTargets("flow", "net")},
		"no targets":  {lump.WithTargets()},
		"empty other": {lump.WithOtherLabel("")},
		"nan fill":    {lump.WithFillValue(math.NaN())},
	}
	for name, opts := range cases {
		_, err := lump.LumpMatrix(m, 40, opts...)
		assert.ErrorIs(t, err, lump.ErrInvalidArgument, name)
	}

	_, err := lump.LumpMatrix(m, math.NaN())
	assert.ErrorIs(t, err, lump.ErrInvalidArgument)
	_, err = lump.LumpMatrix(nil, 1)
	assert.ErrorIs(t, err, lump.ErrInvalidArgument)
	_, err = lump.Lump(nil, 1)
	assert.ErrorIs(t, err, lump.ErrInvalidArgument)

	bad := lump.NewTable("period")
	bad.Add("A", "B", 1) // missing key value
	_, err = lump.Lump(bad, 1)
	assert.ErrorIs(t, err, lump.ErrInvalidArgument)

	nonFinite := lump.NewTable()
	nonFinite.Add("A", "B", math.Inf(1))
	_, err = lump.Lump(nonFinite, 1)
	assert.ErrorIs(t, err, lump.ErrInvalidArgument)
}

func TestLump_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	tbl := lump.NewTable()
	tbl.Add("A", "B", 1)
	tbl.Add("B", "A", 100)
	before := tbl.Clone()

	_, err := lump.Lump(tbl, 10, lump.WithTargets(lump.Flow, lump.In, lump.Out), lump.WithComplete(true))
	require.NoError(t, err)
	assert.Equal(t, before, tbl)
}

func TestParseTargets(t *testing.T) {
	t.Parallel()

	got, err := lump.ParseTargets("EMI", " bilat ", "in", "flow")
	require.NoError(t, err)
	assert.Equal(t, []string{"flow", "in", "out"}, got)

	_, err = lump.ParseTargets()
	assert.ErrorIs(t, err, lump.ErrInvalidArgument)
	_, err = lump.ParseTargets("inflow")
	assert.ErrorIs(t, err, lump.ErrInvalidArgument)
}
