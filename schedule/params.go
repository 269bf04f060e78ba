// SPDX-License-Identifier: MIT

package schedule

import (
	"math"
	"sort"
	"strings"
)

// Parameter names recognized by Evaluate.
const (
	A1      = "a1"      // amplitude of the pre-labour (childhood) component
	Alpha1  = "alpha1"  // descent rate of the pre-labour component
	A2      = "a2"      // amplitude of the labour-force peak
	Alpha2  = "alpha2"  // rate of the labour-force curve on one side of the peak
	Mu2     = "mu2"     // location of the labour-force peak
	Lambda2 = "lambda2" // rate of the labour-force curve on the other side of the peak
	C       = "c"       // baseline constant
)

// names is the canonical order used in messages and listings.
var names = [...]string{A1, Alpha1, A2, Alpha2, Mu2, Lambda2, C}

// Params maps parameter names to values. A valid set holds every recognized
// name and nothing else.
type Params map[string]float64

// Names returns the recognized parameter names in canonical order.
func Names() []string {
	return append([]string(nil), names[:]...)
}

// Fundamental returns a fresh copy of the Rogers–Castro "fundamental"
// schedule parameters, the usual default for Evaluate.
func Fundamental() Params {
	return Params{
		A1:      0.02,
		Alpha1:  0.1,
		A2:      0.06,
		Alpha2:  0.1,
		Mu2:     20,
		Lambda2: 0.4,
		C:       0.003,
	}
}

// Validate reports whether p holds exactly the recognized names with finite
// values. Missing names are reported before unrecognized ones; both lists are
// sorted so the message is stable.
func (p Params) Validate() error {
	var missing, unknown []string
	for _, n := range names {
		if _, ok := p[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return scheduleErrorf("Validate", ErrInvalidParameters, "missing %s", strings.Join(missing, ", "))
	}
	for k := range p {
		if !isName(k) {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return scheduleErrorf("Validate", ErrInvalidParameters, "unrecognized %s", strings.Join(unknown, ", "))
	}
	for _, n := range names {
		if v := p[n]; math.IsNaN(v) || math.IsInf(v, 0) {
			return scheduleErrorf("Validate", ErrInvalidParameters, "%s is not finite", n)
		}
	}

	return nil
}

// Clone returns an independent copy of p.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}

func isName(s string) bool {
	for _, n := range names {
		if n == s {
			return true
		}
	}

	return false
}
