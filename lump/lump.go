// SPDX-License-Identifier: MIT

package lump

import (
	"fmt"

	"github.com/katalvlaran/lvmigest/matrix"
)

const (
	methodLump       = "Lump"
	methodLumpMatrix = "LumpMatrix"
)

// GroupMatrix is the dense form of one group of a completed result.
type GroupMatrix struct {
	Keys   []string
	Matrix *matrix.Labeled
}

// Result is the outcome of Lump: always a record table, and one matrix per
// group when the input was a matrix, completion was requested and dense
// output was not disabled.
type Result struct {
	table    *Table
	matrices []GroupMatrix
}

// Table returns the lumped record table.
func (r *Result) Table() *Table { return r.table }

// HasDense reports whether a dense form was produced.
func (r *Result) HasDense() bool { return len(r.matrices) > 0 }

// Matrices returns the dense form of every group, in group order.
//
// Errors:
//   - ErrDenseConversionUnsupported when no dense form was produced.
func (r *Result) Matrices() ([]GroupMatrix, error) {
	if !r.HasDense() {
		return nil, fmt.Errorf("Result.Matrices: %w", r.whyNotDense())
	}
	out := make([]GroupMatrix, len(r.matrices))
	copy(out, r.matrices)

	return out, nil
}

// Matrix returns the dense form of a single-group result.
//
// Errors:
//   - ErrDenseConversionUnsupported when no dense form was produced or when
//     there is more than one group (use Matrices).
func (r *Result) Matrix() (*matrix.Labeled, error) {
	if !r.HasDense() {
		return nil, fmt.Errorf("Result.Matrix: %w", r.whyNotDense())
	}
	if len(r.matrices) != 1 {
		return nil, lumpErrorf("Result.Matrix", ErrDenseConversionUnsupported, "%d groups, use Matrices", len(r.matrices))
	}

	return r.matrices[0].Matrix, nil
}

func (r *Result) whyNotDense() error {
	if !r.table.dense {
		return fmt.Errorf("input was not a matrix: %w", ErrDenseConversionUnsupported)
	}

	return fmt.Errorf("result was not completed or dense output was disabled: %w", ErrDenseConversionUnsupported)
}

// Lump reclassifies low-volume regions and/or flows of t into the other
// label and re-aggregates, group by group. t is not modified.
//
// Implementation (per group, see package doc):
//   - Stage 1 (in): regions with inbound total < threshold relabel matching origins.
//   - Stage 2 (out): regions with outbound total < threshold relabel matching destinations.
//   - Stage 3 (flow): records with flow < threshold relabel both ends.
//   - Stage 4: aggregate by (origin, destination).
//   - Stage 5: complete (optional), then dense conversion (optional).
//
// Totals in stages 1 and 2 are taken over the records as left by the
// preceding stage.
//
// Errors:
//   - ErrInvalidArgument: bad options (see options.go) or a malformed table.
//   - ErrDenseConversionUnsupported is never returned here; it is reported
//     by Result.Matrix/Matrices when no dense form exists.
//
// Complexity: O(n log n) for n records; O(|O|·|D|) per group with completion.
func Lump(t *Table, threshold float64, opts ...Option) (*Result, error) {
	cfg, err := resolve(threshold, opts)
	if err != nil {
		return nil, lumpErrorf(methodLump, err, "options")
	}
	if err = t.Validate(); err != nil {
		return nil, lumpErrorf(methodLump, err, "table")
	}

	out := &Table{Fields: t.Fields, GroupBy: append([]string(nil), t.GroupBy...), dense: t.dense}
	res := &Result{table: out}
	for _, p := range partition(t.Records) {
		recs := lumpGroup(p.recs, cfg)

		// Label universe: original labels in first-appearance order, other last.
		orig, dest := axes(p.recs)
		orig.add(cfg.otherLabel)
		dest.add(cfg.otherLabel)

		agg := aggregateGroup(p.keys, recs, orig, dest)
		if !cfg.complete {
			out.Records = append(out.Records, agg...)
			continue
		}
		full := completeGroup(p.keys, agg, orig, dest, cfg.fillValue)
		out.Records = append(out.Records, full...)

		if t.dense && cfg.returnDense {
			m, err := toLabeled(full)
			if err != nil {
				return nil, lumpErrorf(methodLump, err, "group %q", p.keys)
			}
			res.matrices = append(res.matrices, GroupMatrix{Keys: append([]string(nil), p.keys...), Matrix: m})
		}
	}

	return res, nil
}

// LumpMatrix is Lump over FromMatrix(m). With WithComplete(true) the result
// carries a (rows+1)×(cols+1) matrix available through Result.Matrix.
func LumpMatrix(m *matrix.Labeled, threshold float64, opts ...Option) (*Result, error) {
	t, err := FromMatrix(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLumpMatrix, err)
	}

	return Lump(t, threshold, opts...)
}

// lumpGroup applies the enabled relabeling stages to one group's records.
func lumpGroup(recs []Record, cfg resolved) []Record {
	if cfg.targets.in {
		recs = relabelByInbound(recs, cfg.threshold, cfg.otherLabel)
	}
	if cfg.targets.out {
		recs = relabelByOutbound(recs, cfg.threshold, cfg.otherLabel)
	}
	if cfg.targets.flow {
		recs = relabelSmallFlows(recs, cfg.threshold, cfg.otherLabel)
	}

	return recs
}

// relabelByInbound flags regions whose inbound total is below threshold and
// relabels the ORIGIN of records leaving a flagged region.
func relabelByInbound(recs []Record, threshold float64, other string) []Record {
	in := inbound(recs)
	out := cloneRecords(recs)
	for i := range out {
		if tot, ok := in[out[i].Orig]; ok && tot < threshold {
			out[i].Orig = other
		}
	}

	return out
}

// relabelByOutbound flags regions whose outbound total is below threshold
// and relabels the DESTINATION of records entering a flagged region.
func relabelByOutbound(recs []Record, threshold float64, other string) []Record {
	outTot := outbound(recs)
	out := cloneRecords(recs)
	for i := range out {
		if tot, ok := outTot[out[i].Dest]; ok && tot < threshold {
			out[i].Dest = other
		}
	}

	return out
}

// relabelSmallFlows relabels both ends of records with flow below threshold.
func relabelSmallFlows(recs []Record, threshold float64, other string) []Record {
	out := cloneRecords(recs)
	for i := range out {
		if out[i].Flow < threshold {
			out[i].Orig = other
			out[i].Dest = other
		}
	}

	return out
}
