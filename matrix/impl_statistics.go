// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Reductions used for regional turnover: per-row sums (out-flows of each
//     origin), per-column sums (in-flows of each destination) and the grand total.
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops.
//   - Dense fast-paths operate on the row-major flat buffer; other Matrix
//     implementations go through At with full error propagation.

package matrix

// Operation name constants for unified error wrapping.
const (
	opRowSums = "RowSums"
	opColSums = "ColSums"
	opTotal   = "Total"
)

// RowSums returns Σ_j X[i,j] for every row i.
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := X.Rows(), X.Cols()
	sums := make([]float64, r)

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				sums[i] += d.data[base+j]
			}
		}

		return sums, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			sums[i] += v
		}
	}

	return sums, nil
}

// ColSums returns Σ_i X[i,j] for every column j.
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	r, c := X.Rows(), X.Cols()
	sums := make([]float64, c)

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				sums[j] += d.data[base+j]
			}
		}

		return sums, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			sums[j] += v
		}
	}

	return sums, nil
}

// Total returns the sum of every cell.
// Complexity: O(r*c).
func Total(X Matrix) (float64, error) {
	rs, err := RowSums(X)
	if err != nil {
		return 0, matrixErrorf(opTotal, err)
	}
	var s float64
	for _, v := range rs {
		s += v
	}

	return s, nil
}
