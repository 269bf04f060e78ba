// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvmigest/matrix"
)

// ExampleColSums shows that regional in-flow totals are the column sums of
// an origin×destination table, and out-flow totals are the row sums.
func ExampleColSums() {
	od, err := matrix.NewSquareLabeled(
		[]string{"A", "B", "C"},
		[][]float64{
			{0, 100, 30},
			{50, 0, 50},
			{10, 40, 0},
		},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	in, _ := matrix.ColSums(od.Dense())
	out, _ := matrix.RowSums(od.Dense())
	fmt.Println("in: ", in)
	fmt.Println("out:", out)
	// Output:
	// in:  [60 140 80]
	// out: [130 100 50]
}
