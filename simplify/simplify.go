// SPDX-License-Identifier: MIT

// Package simplify sequences the settle pipeline: wildcard expansion, balance
// aggregation, sorting with zero filtering, the zero-sum check, transaction
// synthesis and normalization.
//
//	raw edges + isolated ─► expand ─► balance.Aggregate ─► balance.Sorted
//	                     ─► zero-sum check ─► synth.Synthesize ─► Normalize
//
// Each run is an independent, synchronous transformation; no state is shared
// across calls. Errors from the stages are returned unchanged so callers can
// match core.ErrInvalidEdge, expand.ErrEmptyGraph or ErrInvariantViolation
// with errors.Is.
package simplify

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/katalvlaran/settle/balance"
	"github.com/katalvlaran/settle/core"
	"github.com/katalvlaran/settle/expand"
	"github.com/katalvlaran/settle/synth"
)

// Simplify reduces edges (raw, possibly with wildcards) plus the isolated
// party names to a minimal equivalent set of normalized settlement edges.
//
// Steps:
//  1. Expand wildcard edges against all known parties.
//  2. Aggregate net balances; sort ascending and drop |balance| ≤ Epsilon.
//  3. Check that the remaining balances sum to zero (ErrInvariantViolation).
//  4. Synthesize settlement edges and normalize each of them.
//
// The zero-sum check tolerates Epsilon in absolute terms. With
// WithScaledTolerance it tolerates Epsilon·max(1, Σ|balance|) instead.
func Simplify(edges []core.Edge, isolated []string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	res := &Result{RunID: uuid.NewString()}
	log := cfg.Logger.With().Str("run_id", res.RunID).Logger()

	expanded, err := expand.Expand(edges, isolated)
	if err != nil {
		return nil, err
	}
	res.Parties = expand.KnownParties(edges, isolated)
	log.Debug().
		Int("count", len(res.Parties)).
		Strs("parties", res.Parties).
		Int("expanded_edges", len(expanded)).
		Msg("found unique parties")

	live := balance.Aggregate(expanded)
	res.Balances = balance.Sorted(live, cfg.Epsilon)

	sum := balance.Sum(res.Balances)
	tolerance := cfg.Epsilon
	if cfg.ScaledTolerance {
		tolerance *= math.Max(1, balance.Magnitude(res.Balances))
	}
	if !(math.Abs(sum) <= tolerance) { // also trips on NaN from non-finite amounts
		return nil, fmt.Errorf("%w: sum=%g tolerance=%g", ErrInvariantViolation, sum, tolerance)
	}
	if e := log.Debug(); e.Enabled() {
		weights := make([]string, len(res.Balances))
		for i, b := range res.Balances {
			weights[i] = b.String()
		}
		e.Strs("weights", weights).Msg("node weights")
	}

	settlement := synth.Synthesize(res.Balances, live, cfg.Epsilon)
	res.Edges = make([]core.Edge, len(settlement))
	for i, e := range settlement {
		n := e.Normalize()
		res.Edges[i] = n
		res.Total += n.Amount
	}
	if len(res.Edges) > 0 {
		log.Debug().
			Int("edges", len(res.Edges)).
			Float64("total", res.Total).
			Msg("total money transacted")
	}

	return res, nil
}

// SimplifyGraph runs Simplify over the edges and isolated parties of g.
func SimplifyGraph(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return Simplify(g.Edges(), g.Isolated(), opts...)
}
