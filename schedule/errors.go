// SPDX-License-Identifier: MIT
// Package: schedule
//
// errors.go — sentinel errors for the schedule package.
// Callers use errors.Is(err, ErrX); context is attached with %w.

package schedule

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters indicates a parameter set with a missing, unrecognized
// or non-finite entry, or one that yields a schedule that cannot be scaled.
var ErrInvalidParameters = errors.New("schedule: invalid parameters")

// ErrInvalidInput indicates an age that is negative, NaN or ±Inf, or an
// invalid age grid request.
var ErrInvalidInput = errors.New("schedule: invalid input")

// scheduleErrorf wraps err with the operation tag and a formatted detail.
func scheduleErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
