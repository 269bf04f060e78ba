// SPDX-License-Identifier: MIT

package schedule_test

import (
	"fmt"

	"github.com/katalvlaran/lvmigest/schedule"
)

// ExampleEvaluate evaluates the fundamental schedule in five-year steps.
func ExampleEvaluate() {
	ages, _ := schedule.Ages(0, 30, 5)
	m, err := schedule.Evaluate(ages, schedule.Fundamental())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	var total float64
	for _, v := range m {
		total += v
	}
	fmt.Printf("ages=%d sum=%.3f\n", len(m), total)
	// Output:
	// ages=7 sum=1.000
}
