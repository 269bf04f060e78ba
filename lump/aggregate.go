// SPDX-License-Identifier: MIT

package lump

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvmigest/matrix"
)

// axis is an ordered label set with O(1) rank lookup.
type axis struct {
	labels []string
	rank   map[string]int
}

func newAxis() *axis { return &axis{rank: make(map[string]int)} }

func (a *axis) add(s string) {
	if _, ok := a.rank[s]; !ok {
		a.rank[s] = len(a.labels)
		a.labels = append(a.labels, s)
	}
}

// axes collects origins and destinations of recs in first-appearance order.
func axes(recs []Record) (orig, dest *axis) {
	orig, dest = newAxis(), newAxis()
	for _, r := range recs {
		orig.add(r.Orig)
		dest.add(r.Dest)
	}

	return orig, dest
}

type pair struct{ orig, dest string }

// Aggregate sums flows of records sharing (group keys, origin, destination).
// Groups keep their first-appearance order; within a group records are
// ordered by origin then destination, each in first-appearance order.
//
// Errors:
//   - ErrInvalidArgument from Table.Validate.
//
// Complexity: O(n log n).
func Aggregate(t *Table) (*Table, error) {
	if err := t.Validate(); err != nil {
		return nil, lumpErrorf("Aggregate", err, "table")
	}
	out := &Table{Fields: t.Fields, GroupBy: append([]string(nil), t.GroupBy...), dense: t.dense}
	for _, p := range partition(t.Records) {
		o, d := axes(p.recs)
		out.Records = append(out.Records, aggregateGroup(p.keys, p.recs, o, d)...)
	}

	return out, nil
}

// aggregateGroup sums recs by (orig, dest) and sorts by the axis ranks.
// Labels missing from the axes are appended to them first.
func aggregateGroup(keys []string, recs []Record, orig, dest *axis) []Record {
	var out []Record
	pos := make(map[pair]int, len(recs))
	for _, r := range recs {
		orig.add(r.Orig)
		dest.add(r.Dest)
		k := pair{r.Orig, r.Dest}
		if i, ok := pos[k]; ok {
			out[i].Flow += r.Flow
			continue
		}
		pos[k] = len(out)
		out = append(out, Record{Orig: r.Orig, Dest: r.Dest, Keys: append([]string(nil), keys...), Flow: r.Flow})
	}
	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := orig.rank[out[i].Orig], orig.rank[out[j].Orig]
		if oi != oj {
			return oi < oj
		}
		return dest.rank[out[i].Dest] < dest.rank[out[j].Dest]
	})

	return out
}

// completeGroup expands aggregated records of one group to the full
// orig×dest grid in axis order, filling absent cells with fill.
func completeGroup(keys []string, agg []Record, orig, dest *axis, fill float64) []Record {
	have := make(map[pair]float64, len(agg))
	for _, r := range agg {
		have[pair{r.Orig, r.Dest}] = r.Flow
	}
	out := make([]Record, 0, len(orig.labels)*len(dest.labels))
	for _, o := range orig.labels {
		for _, d := range dest.labels {
			v, ok := have[pair{o, d}]
			if !ok {
				v = fill
			}
			out = append(out, Record{Orig: o, Dest: d, Keys: append([]string(nil), keys...), Flow: v})
		}
	}

	return out
}

// ToMatrix converts one group of t into a labeled origin×destination matrix.
// Origins and destinations are ordered by first appearance in the group.
// The group must hold exactly one record per origin×destination cell, as a
// completed Lump result does.
//
// Errors:
//   - ErrInvalidArgument from Table.Validate or an unknown group.
//   - ErrDenseConversionUnsupported when cells are missing or repeated.
func ToMatrix(t *Table, keys ...string) (*matrix.Labeled, error) {
	if err := t.Validate(); err != nil {
		return nil, lumpErrorf("ToMatrix", err, "table")
	}
	recs := t.Group(keys...)
	if len(recs) == 0 {
		return nil, lumpErrorf("ToMatrix", ErrInvalidArgument, "no records for group %q", keys)
	}

	return toLabeled(recs)
}

func toLabeled(recs []Record) (*matrix.Labeled, error) {
	orig, dest := axes(recs)
	if len(recs) != len(orig.labels)*len(dest.labels) {
		return nil, lumpErrorf("ToMatrix", ErrDenseConversionUnsupported,
			"%d records for a %d×%d grid", len(recs), len(orig.labels), len(dest.labels))
	}
	d, err := matrix.NewDense(len(orig.labels), len(dest.labels))
	if err != nil {
		return nil, fmt.Errorf("ToMatrix: %w", err)
	}
	seen := make(map[pair]struct{}, len(recs))
	for _, r := range recs {
		k := pair{r.Orig, r.Dest}
		if _, dup := seen[k]; dup {
			return nil, lumpErrorf("ToMatrix", ErrDenseConversionUnsupported, "repeated cell %s→%s", r.Orig, r.Dest)
		}
		seen[k] = struct{}{}
		if err = d.Set(orig.rank[r.Orig], dest.rank[r.Dest], r.Flow); err != nil {
			return nil, fmt.Errorf("ToMatrix: %w", err)
		}
	}

	return matrix.NewLabeled(d, orig.labels, dest.labels)
}
