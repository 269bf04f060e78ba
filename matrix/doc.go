// Package matrix provides the dense numeric container behind origin–destination
// flow tables.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy (NaN/±Inf rejected on Set).
//   - Labeled, a Dense paired with row (origin) and column (destination)
//     labels, which is the dense shape accepted and produced by the lump
//     package.
//   - Row and column reductions (RowSums, ColSums, Total) used to derive
//     regional turnover: out-flow totals are row sums, in-flow totals are
//     column sums.
//
// All functions are deterministic (fixed i→j traversal) and allocate fresh
// results; inputs are never mutated.
//
//	          dest
//	        A   B   C
//	orig A [0  100  30]
//	     B [50   0  50]
//	     C [10  40   0]
package matrix
