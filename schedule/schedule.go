// SPDX-License-Identifier: MIT

package schedule

import "math"

const (
	opEvaluate = "Evaluate"
	opAges     = "Ages"
)

// gridSlack absorbs floating-point drift so that to is included when it
// lies on the grid (e.g. 0..1 by 0.1).
const gridSlack = 1e-9

// At evaluates the unscaled schedule at a single age. It does not validate
// its inputs; use Evaluate for checked, optionally scaled evaluation.
func At(x float64, p Params) float64 {
	d := x - p[Mu2]

	return p[A1]*math.Exp(-p[Alpha1]*x) +
		p[A2]*math.Exp(p[Alpha2]*d-math.Exp(p[Lambda2]*d)) +
		p[C]
}

// Evaluate computes the schedule at every age, in order.
//
// Implementation:
//   - Stage 1: validate parameters, then every age (non-negative, finite).
//   - Stage 2: evaluate At(x) for each age.
//   - Stage 3: when scaled (the default), divide by the sum over all ages.
//
// Returns a slice of len(ages). Empty ages yield an empty slice.
//
// Errors:
//   - ErrInvalidParameters: missing/unrecognized/non-finite parameters, or a
//     scaled schedule whose sum is zero or non-finite.
//   - ErrInvalidInput: a negative, NaN or ±Inf age.
//
// Complexity: O(len(ages)).
func Evaluate(ages []float64, p Params, opts ...Option) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, scheduleErrorf(opEvaluate, err, "parameters")
	}
	for i, x := range ages {
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, scheduleErrorf(opEvaluate, ErrInvalidInput, "age[%d]=%g", i, x)
		}
	}
	o := gatherOptions(opts...)

	out := make([]float64, len(ages))
	var sum float64
	for i, x := range ages {
		out[i] = At(x, p)
		sum += out[i]
	}
	if !o.scaled || len(out) == 0 {
		return out, nil
	}
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return nil, scheduleErrorf(opEvaluate, ErrInvalidParameters, "schedule sum %g cannot be scaled", sum)
	}
	for i := range out {
		out[i] /= sum
	}

	return out, nil
}

// Ages returns the grid from, from+step, ... up to and including to. Use
// step 1 for single-year and step 5 for five-year age groups.
//
// Errors:
//   - ErrInvalidInput when from<0, to<from, step<=0 or any bound is not finite.
func Ages(from, to, step float64) ([]float64, error) {
	for _, v := range [...]float64{from, to, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, scheduleErrorf(opAges, ErrInvalidInput, "non-finite bound")
		}
	}
	if from < 0 || to < from || step <= 0 {
		return nil, scheduleErrorf(opAges, ErrInvalidInput, "from=%g to=%g step=%g", from, to, step)
	}
	n := int(math.Floor((to-from)/step+gridSlack)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = from + float64(i)*step
	}

	return out, nil
}
