// Package schedule evaluates the Rogers–Castro model migration schedule: a
// parametric curve of migration intensity by age.
//
// What is a model schedule?
//
//	Age profiles of migration are remarkably regular across populations:
//	high rates among infants (who move with their parents), a trough in the
//	teens, a labour-force peak in the early twenties, and a low baseline in
//	later life. Rogers & Castro captured this shape with a handful of
//	parameters so that profiles can be compared, smoothed and projected.
//
// This package evaluates the reduced form
//
//	M(x) = a1·exp(−alpha1·x) + a2·exp(alpha2·(x−mu2) − exp(lambda2·(x−mu2))) + c
//
// with the parameter names a1, alpha1, a2, alpha2, mu2, lambda2 and c. No
// retirement or post-labour terms are added.
//
// Usage:
//
//	ages, _ := schedule.Ages(0, 100, 1)
//	m, err := schedule.Evaluate(ages, schedule.Fundamental())
//	// m sums to 1; use schedule.WithScaled(false) for raw intensities.
//
// Complexity: O(len(ages)) time and memory. All functions are pure and safe
// for concurrent use.
package schedule
