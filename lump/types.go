// SPDX-License-Identifier: MIT

package lump

import (
	"fmt"
	"strings"
)

// Default field names of a tidy flow table.
const (
	DefaultOrigField = "orig"
	DefaultDestField = "dest"
	DefaultFlowField = "flow"
)

// Fields names the origin, destination and flow columns of a tidy table.
type Fields struct {
	Orig string
	Dest string
	Flow string
}

// DefaultFields returns orig/dest/flow.
func DefaultFields() Fields {
	return Fields{Orig: DefaultOrigField, Dest: DefaultDestField, Flow: DefaultFlowField}
}

func (f Fields) validate() error {
	if f.Orig == "" || f.Dest == "" || f.Flow == "" {
		return fmt.Errorf("empty field name in %+v: %w", f, ErrInvalidArgument)
	}
	if f.Orig == f.Dest || f.Orig == f.Flow || f.Dest == f.Flow {
		return fmt.Errorf("field names must differ, got %+v: %w", f, ErrInvalidArgument)
	}

	return nil
}

// Record is one bilateral flow. Keys holds the group-key values aligned
// with Table.GroupBy (nil for ungrouped tables).
type Record struct {
	Orig string
	Dest string
	Keys []string
	Flow float64
}

// Table is an ordered list of flow records, optionally grouped by the
// named keys (e.g. "period", "sex").
type Table struct {
	Fields  Fields
	GroupBy []string
	Records []Record

	// dense is set by the matrix adapters so results can be returned as matrices.
	dense bool
}

// NewTable returns an empty table with default field names and the given group keys.
func NewTable(groupBy ...string) *Table {
	return &Table{Fields: DefaultFields(), GroupBy: append([]string(nil), groupBy...)}
}

// Add appends a record. keys must align with GroupBy; Validate reports misuse.
func (t *Table) Add(orig, dest string, flow float64, keys ...string) {
	t.Records = append(t.Records, Record{
		Orig: orig,
		Dest: dest,
		Keys: append([]string(nil), keys...),
		Flow: flow,
	})
}

// FromDense reports whether the table was produced by a matrix adapter.
func (t *Table) FromDense() bool { return t.dense }

// Len returns the number of records.
func (t *Table) Len() int { return len(t.Records) }

// Sum returns the total flow over all records.
func (t *Table) Sum() float64 {
	var s float64
	for _, r := range t.Records {
		s += r.Flow
	}

	return s
}

// Clone returns a deep copy of t, including the dense marker.
func (t *Table) Clone() *Table {
	out := &Table{
		Fields:  t.Fields,
		GroupBy: append([]string(nil), t.GroupBy...),
		Records: cloneRecords(t.Records),
		dense:   t.dense,
	}

	return out
}

// Groups returns the distinct group-key tuples in order of first appearance.
// An ungrouped table has exactly one, empty, group (none if it has no records).
func (t *Table) Groups() [][]string {
	parts := partition(t.Records)
	out := make([][]string, len(parts))
	for i, p := range parts {
		out[i] = append([]string(nil), p.keys...)
	}

	return out
}

// Group returns the records of the group whose key values equal keys.
func (t *Table) Group(keys ...string) []Record {
	want := groupID(keys)
	var out []Record
	for _, r := range t.Records {
		if groupID(r.Keys) == want {
			out = append(out, cloneRecord(r))
		}
	}

	return out
}

// Validate checks field names, key arity, labels and flow values.
func (t *Table) Validate() error {
	if t == nil {
		return fmt.Errorf("nil table: %w", ErrInvalidArgument)
	}
	if err := t.Fields.validate(); err != nil {
		return err
	}
	for i, r := range t.Records {
		if len(r.Keys) != len(t.GroupBy) {
			return fmt.Errorf("record %d: %d key values for %d group keys: %w", i, len(r.Keys), len(t.GroupBy), ErrInvalidArgument)
		}
		if r.Orig == "" || r.Dest == "" {
			return fmt.Errorf("record %d: empty origin or destination: %w", i, ErrInvalidArgument)
		}
		if isNonFinite(r.Flow) {
			return fmt.Errorf("record %d (%s→%s): non-finite flow %g: %w", i, r.Orig, r.Dest, r.Flow, ErrInvalidArgument)
		}
	}

	return nil
}

// group is one partition of a table by key values.
type group struct {
	keys []string
	recs []Record
}

// groupSep joins key values into a map key; it cannot appear in CSV-sourced labels.
const groupSep = "\x1f"

func groupID(keys []string) string { return strings.Join(keys, groupSep) }

// partition splits records by key tuple, preserving first-appearance order
// of groups and the record order within each group.
func partition(recs []Record) []group {
	var out []group
	index := make(map[string]int)
	for _, r := range recs {
		id := groupID(r.Keys)
		i, ok := index[id]
		if !ok {
			i = len(out)
			index[id] = i
			out = append(out, group{keys: append([]string(nil), r.Keys...)})
		}
		out[i].recs = append(out[i].recs, r)
	}

	return out
}

func cloneRecord(r Record) Record {
	r.Keys = append([]string(nil), r.Keys...)
	return r
}

func cloneRecords(recs []Record) []Record {
	out := make([]Record, len(recs))
	for i, r := range recs {
		out[i] = cloneRecord(r)
	}

	return out
}
