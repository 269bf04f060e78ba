// SPDX-License-Identifier: MIT

// Package matrix - Labeled origin×destination view over Dense.
//
// Purpose:
//   - Attach region labels to the rows (origins) and columns (destinations)
//     of a Dense so flow tables can round-trip between matrix and record form.
//   - Keep label→index lookups O(1) via prebuilt maps.
//
// Invariants:
//   - len(rowLabels) == Rows(), len(colLabels) == Cols().
//   - Labels are non-empty and unique per axis.
//   - Rows and columns are independent axes: a square matrix need not share
//     the same label set on both sides.

package matrix

import "fmt"

const (
	ctxNewLabeled = "NewLabeled"
	ctxAtLabel    = "AtLabel"
	ctxSetLabel   = "SetLabel"
)

// Labeled is a Dense with origin (row) and destination (column) labels.
type Labeled struct {
	mat       *Dense
	rowLabels []string
	colLabels []string
	rowIndex  map[string]int
	colIndex  map[string]int
}

// NewLabeled wraps m with the given row and column labels. Labels are copied;
// m is NOT copied, so later Set calls on m are visible through the Labeled.
//
// Errors:
//   - ErrNilMatrix if m is nil.
//   - ErrDimensionMismatch, ErrUnknownLabel, ErrDuplicateLabel from ValidateLabels.
//
// Complexity: O(r + c).
func NewLabeled(m *Dense, rowLabels, colLabels []string) (*Labeled, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxNewLabeled, err)
	}
	if err := ValidateLabels(rowLabels, m.Rows()); err != nil {
		return nil, matrixErrorf(ctxNewLabeled+": rows", err)
	}
	if err := ValidateLabels(colLabels, m.Cols()); err != nil {
		return nil, matrixErrorf(ctxNewLabeled+": cols", err)
	}

	l := &Labeled{
		mat:       m,
		rowLabels: append([]string(nil), rowLabels...),
		colLabels: append([]string(nil), colLabels...),
		rowIndex:  make(map[string]int, len(rowLabels)),
		colIndex:  make(map[string]int, len(colLabels)),
	}
	for i, s := range l.rowLabels {
		l.rowIndex[s] = i
	}
	for j, s := range l.colLabels {
		l.colIndex[s] = j
	}

	return l, nil
}

// NewSquareLabeled builds a labeled square matrix from rows of values using
// the same labels for origins and destinations, the usual shape of an OD table.
//
// Errors: as NewDenseFromRows and NewLabeled.
func NewSquareLabeled(labels []string, rows [][]float64, opts ...Option) (*Labeled, error) {
	m, err := NewDenseFromRows(rows, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxNewLabeled, err)
	}

	return NewLabeled(m, labels, labels)
}

// Dense returns the underlying matrix (shared, not copied).
func (l *Labeled) Dense() *Dense { return l.mat }

// Rows returns the number of origins.
func (l *Labeled) Rows() int { return l.mat.Rows() }

// Cols returns the number of destinations.
func (l *Labeled) Cols() int { return l.mat.Cols() }

// RowLabels returns a copy of the origin labels in row order.
func (l *Labeled) RowLabels() []string { return append([]string(nil), l.rowLabels...) }

// ColLabels returns a copy of the destination labels in column order.
func (l *Labeled) ColLabels() []string { return append([]string(nil), l.colLabels...) }

// RowIndex returns the row of origin label s.
func (l *Labeled) RowIndex(s string) (int, bool) {
	i, ok := l.rowIndex[s]
	return i, ok
}

// ColIndex returns the column of destination label s.
func (l *Labeled) ColIndex(s string) (int, bool) {
	j, ok := l.colIndex[s]
	return j, ok
}

// AtLabel returns the flow from origin orig to destination dest.
//
// Errors:
//   - ErrUnknownLabel when either label is absent.
func (l *Labeled) AtLabel(orig, dest string) (float64, error) {
	i, j, err := l.locate(orig, dest)
	if err != nil {
		return 0, matrixErrorf(ctxAtLabel, err)
	}

	return l.mat.At(i, j)
}

// SetLabel stores v as the flow from orig to dest.
//
// Errors:
//   - ErrUnknownLabel when either label is absent; ErrNaNInf per the numeric policy.
func (l *Labeled) SetLabel(orig, dest string, v float64) error {
	i, j, err := l.locate(orig, dest)
	if err != nil {
		return matrixErrorf(ctxSetLabel, err)
	}

	return l.mat.Set(i, j, v)
}

// Clone returns a deep copy of matrix and labels.
func (l *Labeled) Clone() *Labeled {
	d, _ := l.mat.Clone().(*Dense)
	out, _ := NewLabeled(d, l.rowLabels, l.colLabels) // labels already validated

	return out
}

// String renders a header of destination labels followed by labeled rows.
func (l *Labeled) String() string {
	s := fmt.Sprintf("%v\n", l.colLabels)
	for i, lab := range l.rowLabels {
		row, _ := l.mat.RowValues(i)
		s += fmt.Sprintf("%s %v\n", lab, row)
	}

	return s
}

func (l *Labeled) locate(orig, dest string) (int, int, error) {
	i, ok := l.rowIndex[orig]
	if !ok {
		return 0, 0, fmt.Errorf("origin %q: %w", orig, ErrUnknownLabel)
	}
	j, ok := l.colIndex[dest]
	if !ok {
		return 0, 0, fmt.Errorf("destination %q: %w", dest, ErrUnknownLabel)
	}

	return i, j, nil
}
