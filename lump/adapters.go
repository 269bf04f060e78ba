// SPDX-License-Identifier: MIT

package lump

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmigest/matrix"
)

// FromMatrix converts a labeled origin×destination matrix into an ungrouped
// table by cross-producting row and column labels in row-major order. Zero
// cells are kept. The table is marked as matrix-sourced.
//
// Errors:
//   - ErrInvalidArgument for a nil matrix.
//
// Complexity: O(r*c).
func FromMatrix(m *matrix.Labeled) (*Table, error) {
	t := NewTable()
	if err := appendMatrix(t, m, nil); err != nil {
		return nil, lumpErrorf("FromMatrix", err, "matrix")
	}
	t.dense = true

	return t, nil
}

// FromMatrices converts one matrix per group into a table grouped by the
// single key name groupKey; keys[i] is the key value of ms[i].
//
// Errors:
//   - ErrInvalidArgument for an empty key name, mismatched lengths, a
//     repeated key value or a nil matrix.
func FromMatrices(groupKey string, keys []string, ms []*matrix.Labeled) (*Table, error) {
	if groupKey == "" || len(keys) != len(ms) || len(ms) == 0 {
		return nil, lumpErrorf("FromMatrices", ErrInvalidArgument,
			"group key %q with %d keys and %d matrices", groupKey, len(keys), len(ms))
	}
	t := NewTable(groupKey)
	seen := make(map[string]struct{}, len(keys))
	for i, m := range ms {
		if _, dup := seen[keys[i]]; dup {
			return nil, lumpErrorf("FromMatrices", ErrInvalidArgument, "repeated key %q", keys[i])
		}
		seen[keys[i]] = struct{}{}
		if err := appendMatrix(t, m, []string{keys[i]}); err != nil {
			return nil, lumpErrorf("FromMatrices", err, "matrix %q", keys[i])
		}
	}
	t.dense = true

	return t, nil
}

func appendMatrix(t *Table, m *matrix.Labeled, keys []string) error {
	if m == nil {
		return fmt.Errorf("nil matrix: %w", ErrInvalidArgument)
	}
	rows, cols := m.RowLabels(), m.ColLabels()
	d := m.Dense()
	for i, o := range rows {
		vals, err := d.RowValues(i)
		if err != nil {
			return err
		}
		for j, dst := range cols {
			t.Add(o, dst, vals[j], keys...)
		}
	}

	return nil
}

// FromMaps converts tidy rows keyed by field name into a table. Every row
// must carry the origin, destination and flow fields of f and every groupBy
// field; other fields are ignored. Flow values are parsed as floats.
//
// Errors:
//   - ErrInvalidArgument for invalid field names, missing fields, an
//     unparsable or non-finite flow, or an empty label.
func FromMaps(rows []map[string]string, f Fields, groupBy ...string) (*Table, error) {
	if err := f.validate(); err != nil {
		return nil, lumpErrorf("FromMaps", err, "fields")
	}
	for _, g := range groupBy {
		if g == "" || g == f.Orig || g == f.Dest || g == f.Flow {
			return nil, lumpErrorf("FromMaps", ErrInvalidArgument, "group key %q", g)
		}
	}
	t := NewTable(groupBy...)
	t.Fields = f
	for i, row := range rows {
		orig, okO := row[f.Orig]
		dest, okD := row[f.Dest]
		raw, okF := row[f.Flow]
		if !okO || !okD || !okF {
			return nil, lumpErrorf("FromMaps", ErrInvalidArgument, "row %d lacks %s/%s/%s", i, f.Orig, f.Dest, f.Flow)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, lumpErrorf("FromMaps", ErrInvalidArgument, "row %d %s=%q", i, f.Flow, raw)
		}
		keys := make([]string, len(groupBy))
		for k, g := range groupBy {
			val, ok := row[g]
			if !ok {
				return nil, lumpErrorf("FromMaps", ErrInvalidArgument, "row %d lacks group key %s", i, g)
			}
			keys[k] = val
		}
		t.Add(orig, dest, v, keys...)
	}
	if err := t.Validate(); err != nil {
		return nil, lumpErrorf("FromMaps", err, "table")
	}

	return t, nil
}

// ToMaps renders t as tidy rows keyed by its field and group-key names.
// Flows are formatted with strconv 'g' formatting (shortest round-trip).
func ToMaps(t *Table) []map[string]string {
	out := make([]map[string]string, len(t.Records))
	for i, r := range t.Records {
		row := make(map[string]string, len(t.GroupBy)+3)
		for k, g := range t.GroupBy {
			if k < len(r.Keys) {
				row[g] = r.Keys[k]
			}
		}
		row[t.Fields.Orig] = r.Orig
		row[t.Fields.Dest] = r.Dest
		row[t.Fields.Flow] = strconv.FormatFloat(r.Flow, 'g', -1, 64)
		out[i] = row
	}

	return out
}

// Columns returns the column order used by ToMaps consumers: group keys,
// then origin, destination and flow.
func (t *Table) Columns() []string {
	cols := append([]string(nil), t.GroupBy...)
	return append(cols, t.Fields.Orig, t.Fields.Dest, t.Fields.Flow)
}
