// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Party/Edge/Graph declarations, sentinel errors, options and the NewGraph constructor.
// Policy:
//   - Edge is an immutable value; every transformation returns a new Edge.
//   - Graph guards its catalogs with one sync.RWMutex.

package core

import (
	"errors"
	"sync"
)

// Wildcard is the reserved participant name meaning "every known party".
// It is never a Party itself once wildcard expansion has run.
const Wildcard = "*"

// Sentinel errors for core debt-graph operations.
var (
	// ErrInvalidEdge indicates a malformed relation: self-loop, wildcard-to-wildcard
	// or an empty endpoint.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrPartyNotOnEdge indicates OtherEndpoint was asked about a party that is
	// neither endpoint of the edge.
	ErrPartyNotOnEdge = errors.New("core: party is not an endpoint of edge")

	// ErrEmptyPartyName indicates a zero-length party name.
	ErrEmptyPartyName = errors.New("core: party name is empty")

	// ErrWildcardParty indicates an attempt to declare the wildcard as a party.
	ErrWildcardParty = errors.New("core: wildcard cannot be declared as a party")

	// ErrNegativeAmount indicates a negative amount supplied as raw input.
	ErrNegativeAmount = errors.New("core: negative amount on input edge")
)

// Edge is a directed weighted debt: From owes To Amount.
//
// A negative Amount encodes the reverse relation (To owes From |Amount|);
// Normalize rewrites such an edge into its non-negative form.
type Edge struct {
	// From is the debtor party (or Wildcard before expansion).
	From string

	// To is the creditor party (or Wildcard before expansion).
	To string

	// Amount is the owed value; may be negative on internally produced edges.
	Amount float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMergeEquivalent folds every added edge into an already stored edge
// connecting the same unordered pair of parties, instead of appending a
// parallel edge. Reversed edges are folded with a negated amount.
func WithMergeEquivalent() GraphOption {
	return func(g *Graph) { g.mergeEquivalent = true }
}

// Graph is the in-memory debt graph handed from the input layer to the
// simplification pipeline.
//
// It records raw edges in insertion order (wildcard endpoints allowed) and
// the set of explicitly declared isolated parties. mu protects all fields.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	mergeEquivalent bool // fold equivalent edges on insert

	// Storage
	edges    []Edge              // raw edges, insertion order
	parties  map[string]struct{} // every non-wildcard endpoint and isolated name
	isolated map[string]struct{} // names declared without edges
}

// NewGraph creates an empty Graph with the given options.
// By default parallel and opposite edges are kept as separate entries.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		parties:  make(map[string]struct{}),
		isolated: make(map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
