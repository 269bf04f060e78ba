// SPDX-License-Identifier: MIT
// Package: lvmigest/lump
//
// errors.go — sentinel errors for the lump package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the detection site.
//   • Nothing panics at runtime: option values are validated when Lump runs,
//     so user-supplied values (CLI flags, config files) surface as errors.

package lump

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates an unrecognized lump target token, an empty
// target set, a NaN threshold or fill value, an empty other label, or a
// malformed table (nil table, empty label, non-finite flow, key arity mismatch).
var ErrInvalidArgument = errors.New("lump: invalid argument")

// ErrDenseConversionUnsupported indicates that a dense (matrix) form was
// requested but none exists: the result was not completed, the input was
// not a matrix, or a group does not cover every origin×destination cell.
var ErrDenseConversionUnsupported = errors.New("lump: dense conversion unsupported")

// lumpErrorf wraps err with the method context and a formatted detail.
func lumpErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
