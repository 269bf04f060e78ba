// SPDX-License-Identifier: MIT

package lump

import (
	"fmt"

	"github.com/katalvlaran/lvmigest/matrix"
)

// RegionTotal is the turnover of one region within a group.
type RegionTotal struct {
	Region string
	In     float64 // Σ flow where Region is the destination
	Out    float64 // Σ flow where Region is the origin
}

// Net returns In − Out.
func (r RegionTotal) Net() float64 { return r.In - r.Out }

// RegionTotals lists region turnover for one group, in order of first appearance.
type RegionTotals struct {
	Keys    []string
	Regions []RegionTotal
}

// Find returns the totals of region s.
func (rt RegionTotals) Find(s string) (RegionTotal, bool) {
	for _, r := range rt.Regions {
		if r.Region == s {
			return r, true
		}
	}

	return RegionTotal{}, false
}

// Totals computes inbound and outbound totals per region for every group of t.
//
// Errors:
//   - ErrInvalidArgument from Table.Validate.
//
// Complexity: O(n) for n records.
func Totals(t *Table) ([]RegionTotals, error) {
	if err := t.Validate(); err != nil {
		return nil, lumpErrorf("Totals", err, "table")
	}
	parts := partition(t.Records)
	out := make([]RegionTotals, len(parts))
	for i, p := range parts {
		out[i] = RegionTotals{Keys: append([]string(nil), p.keys...), Regions: turnover(p.recs)}
	}

	return out, nil
}

// MatrixTotals computes region totals of a labeled origin×destination matrix:
// out-flows are row sums, in-flows are column sums. Regions are listed in
// row order, followed by destination-only regions in column order.
//
// Errors:
//   - ErrInvalidArgument for a nil matrix; wrapped matrix errors otherwise.
func MatrixTotals(m *matrix.Labeled) (RegionTotals, error) {
	if m == nil {
		return RegionTotals{}, fmt.Errorf("MatrixTotals: nil matrix: %w", ErrInvalidArgument)
	}
	outs, err := matrix.RowSums(m.Dense())
	if err != nil {
		return RegionTotals{}, fmt.Errorf("MatrixTotals: %w", err)
	}
	ins, err := matrix.ColSums(m.Dense())
	if err != nil {
		return RegionTotals{}, fmt.Errorf("MatrixTotals: %w", err)
	}

	var regions []RegionTotal
	pos := make(map[string]int)
	for i, s := range m.RowLabels() {
		pos[s] = len(regions)
		regions = append(regions, RegionTotal{Region: s, Out: outs[i]})
	}
	for j, s := range m.ColLabels() {
		k, ok := pos[s]
		if !ok {
			k = len(regions)
			pos[s] = k
			regions = append(regions, RegionTotal{Region: s})
		}
		regions[k].In = ins[j]
	}

	return RegionTotals{Regions: regions}, nil
}

// turnover sums in/out flows per region, ordering regions by first
// appearance (origin before destination within a record).
func turnover(recs []Record) []RegionTotal {
	var out []RegionTotal
	pos := make(map[string]int)
	at := func(s string) *RegionTotal {
		k, ok := pos[s]
		if !ok {
			k = len(out)
			pos[s] = k
			out = append(out, RegionTotal{Region: s})
		}
		return &out[k]
	}
	for _, r := range recs {
		at(r.Orig).Out += r.Flow
		at(r.Dest).In += r.Flow
	}

	return out
}

// inbound sums flow per destination.
func inbound(recs []Record) map[string]float64 {
	in := make(map[string]float64)
	for _, r := range recs {
		in[r.Dest] += r.Flow
	}

	return in
}

// outbound sums flow per origin.
func outbound(recs []Record) map[string]float64 {
	out := make(map[string]float64)
	for _, r := range recs {
		out[r.Orig] += r.Flow
	}

	return out
}
