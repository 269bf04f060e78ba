// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return plain sentinel errors tagged with the validator name so call
//    sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense hidden behind the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateLabels checks that labels has exactly n entries, none empty, none repeated.
//
// Errors:
//   - ErrDimensionMismatch when len(labels) != n.
//   - ErrUnknownLabel for an empty label.
//   - ErrDuplicateLabel when a label repeats.
//
// Complexity: O(n) time, O(n) space for the seen-set.
func ValidateLabels(labels []string, n int) error {
	if len(labels) != n {
		return validatorErrorf("ValidateLabels", ErrDimensionMismatch)
	}
	seen := make(map[string]struct{}, n)
	for i, l := range labels {
		if l == "" {
			return validatorErrorf(fmt.Sprintf("ValidateLabels[%d]", i), ErrUnknownLabel)
		}
		if _, dup := seen[l]; dup {
			return validatorErrorf(fmt.Sprintf("ValidateLabels[%d] %q", i, l), ErrDuplicateLabel)
		}
		seen[l] = struct{}{}
	}

	return nil
}
