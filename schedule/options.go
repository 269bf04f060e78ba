// SPDX-License-Identifier: MIT

package schedule

// DefaultScaled makes Evaluate rescale its output to sum to one.
const DefaultScaled = true

// Option configures Evaluate.
type Option func(*options)

type options struct {
	scaled bool
}

// WithScaled toggles rescaling of the evaluated schedule so that it sums to one.
func WithScaled(scaled bool) Option {
	return func(o *options) { o.scaled = scaled }
}

func gatherOptions(opts ...Option) options {
	o := options{scaled: DefaultScaled}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
