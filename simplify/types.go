// SPDX-License-Identifier: MIT

package simplify

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/settle/balance"
	"github.com/katalvlaran/settle/core"
)

// ErrInvariantViolation indicates that net balances did not sum to zero after
// aggregation. It signals a defect in expansion or aggregation, never a user
// input error.
var ErrInvariantViolation = errors.New("simplify: net balances do not sum to zero")

// ErrNilGraph indicates that a nil *core.Graph was passed to SimplifyGraph.
var ErrNilGraph = errors.New("simplify: graph is nil")

// Options configures a simplification run.
//
// Epsilon         – tolerance for zero filtering, settled parties and the
//                   zero-sum check (default balance.DefaultEpsilon).
// ScaledTolerance – scale the zero-sum tolerance by max(1, Σ|balance|).
// Logger          – receives debug diagnostics; zerolog.Nop() by default.
type Options struct {
	Epsilon         float64
	ScaledTolerance bool
	Logger          zerolog.Logger
}

// Option represents a functional option for configuring Simplify.
type Option func(*Options)

// WithEpsilon sets the zero tolerance. Non-positive values keep the default.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps > 0 {
			o.Epsilon = eps
		}
	}
}

// WithScaledTolerance makes the zero-sum check relative to the total
// magnitude of the balances, for inputs whose amounts are large enough that
// rounding alone exceeds the absolute tolerance.
func WithScaledTolerance() Option {
	return func(o *Options) {
		o.ScaledTolerance = true
	}
}

// WithLogger routes run diagnostics (known parties, node weights, total
// transacted) to l at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with the default epsilon and a disabled logger.
func DefaultOptions() Options {
	return Options{
		Epsilon: balance.DefaultEpsilon,
		Logger:  zerolog.Nop(),
	}
}

// Result is the outcome of one simplification run.
type Result struct {
	// RunID identifies the run in log output.
	RunID string

	// Parties lists every known party, sorted ascending.
	Parties []string

	// Balances holds the nonzero net balances, ascending by amount.
	Balances []balance.Entry

	// Edges holds the normalized settlement edges.
	Edges []core.Edge

	// Total is the sum of all settlement amounts.
	Total float64
}
