// SPDX-License-Identifier: MIT
// Package: lvmigest/lump
//
// options.go — functional options for Lump and their deterministic defaults.
//
// Options only record values; validation happens when Lump resolves them so
// that invalid user input is returned as ErrInvalidArgument instead of panicking.

package lump

import (
	"fmt"
	"math"
	"strings"
)

// Target tokens accepted by WithTargets. Each dimension has two synonyms.
const (
	Flow  = "flow"  // threshold individual bilateral flows
	Bilat = "bilat" // synonym of Flow
	In    = "in"    // threshold regions by inbound total
	Imm   = "imm"   // synonym of In
	Out   = "out"   // threshold regions by outbound total
	Emi   = "emi"   // synonym of Out
)

// Defaults (single source of truth for zero-value behavior).
const (
	DefaultOtherLabel  = "other"
	DefaultComplete    = false
	DefaultFillValue   = 0.0
	DefaultReturnDense = true
)

// DefaultTargets returns the default target set: bilateral flows only.
func DefaultTargets() []string { return []string{Flow} }

// Option configures Lump.
type Option func(*options)

type options struct {
	targets     []string
	otherLabel  string
	complete    bool
	fillValue   float64
	returnDense bool
}

// WithTargets selects the dimensions to threshold. Tokens are matched
// case-insensitively after trimming; see Flow, In, Out and their synonyms.
func WithTargets(tokens ...string) Option {
	cp := append([]string(nil), tokens...)
	return func(o *options) { o.targets = cp }
}

// WithOtherLabel sets the label substituted for lumped regions.
func WithOtherLabel(label string) Option {
	return func(o *options) { o.otherLabel = label }
}

// WithComplete materializes every (origin ∪ other)×(destination ∪ other)
// combination per group, filling absent cells with the fill value.
func WithComplete(complete bool) Option {
	return func(o *options) { o.complete = complete }
}

// WithFillValue sets the value of cells added by completion.
func WithFillValue(v float64) Option {
	return func(o *options) { o.fillValue = v }
}

// WithReturnDense controls whether a completed result of matrix input is
// also returned as matrices. It has no effect without completion.
func WithReturnDense(dense bool) Option {
	return func(o *options) { o.returnDense = dense }
}

// targetSet is the resolved set of dimensions.
type targetSet struct {
	flow, in, out bool
}

// ParseTargets resolves target tokens into their canonical names (flow, in,
// out) in that fixed order, dropping duplicates and synonyms.
//
// Errors:
//   - ErrInvalidArgument for an unrecognized token or an empty token list.
func ParseTargets(tokens ...string) ([]string, error) {
	ts, err := parseTargets(tokens)
	if err != nil {
		return nil, err
	}
	var out []string
	if ts.flow {
		out = append(out, Flow)
	}
	if ts.in {
		out = append(out, In)
	}
	if ts.out {
		out = append(out, Out)
	}

	return out, nil
}

func parseTargets(tokens []string) (targetSet, error) {
	var ts targetSet
	if len(tokens) == 0 {
		return ts, fmt.Errorf("no lump targets: %w", ErrInvalidArgument)
	}
	for _, tok := range tokens {
		switch strings.ToLower(strings.TrimSpace(tok)) {
		case Flow, Bilat:
			ts.flow = true
		case In, Imm:
			ts.in = true
		case Out, Emi:
			ts.out = true
		default:
			return ts, fmt.Errorf("lump target %q (want flow|bilat, in|imm, out|emi): %w", tok, ErrInvalidArgument)
		}
	}

	return ts, nil
}

// resolved is the validated configuration used by the pipeline.
type resolved struct {
	targets     targetSet
	threshold   float64
	otherLabel  string
	complete    bool
	fillValue   float64
	returnDense bool
}

// resolve applies opts over the defaults and validates the result.
func resolve(threshold float64, opts []Option) (resolved, error) {
	o := options{
		targets:     DefaultTargets(),
		otherLabel:  DefaultOtherLabel,
		complete:    DefaultComplete,
		fillValue:   DefaultFillValue,
		returnDense: DefaultReturnDense,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	ts, err := parseTargets(o.targets)
	if err != nil {
		return resolved{}, err
	}
	if math.IsNaN(threshold) {
		return resolved{}, fmt.Errorf("threshold is NaN: %w", ErrInvalidArgument)
	}
	if o.otherLabel == "" {
		return resolved{}, fmt.Errorf("empty other label: %w", ErrInvalidArgument)
	}
	if isNonFinite(o.fillValue) {
		return resolved{}, fmt.Errorf("fill value %g is not finite: %w", o.fillValue, ErrInvalidArgument)
	}

	return resolved{
		targets:     ts,
		threshold:   threshold,
		otherLabel:  o.otherLabel,
		complete:    o.complete,
		fillValue:   o.fillValue,
		returnDense: o.returnDense,
	}, nil
}

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
