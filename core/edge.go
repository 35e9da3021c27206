// SPDX-License-Identifier: MIT
//
// File: edge.go
// Role: Edge value semantics: construction, endpoint lookup, normalization, relation sign.
// Determinism:
//   - Every function here is pure; no shared state is touched.

package core

import (
	"fmt"
	"strconv"
)

// NewEdge builds a validated Edge.
//
// Implementation:
//   - Stage 1: Reject empty endpoints (ErrInvalidEdge).
//   - Stage 2: Reject from == to; this covers both self-loops and Wildcard -> Wildcard.
//
// Inputs:
//   - from, to: party names or Wildcard.
//   - amount: owed value; sign is not checked here.
//
// Returns:
//   - Edge: the constructed value on success.
//   - error: ErrInvalidEdge wrapped with the offending endpoints.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewEdge(from, to string, amount float64) (Edge, error) {
	if from == "" || to == "" {
		return Edge{}, fmt.Errorf("%w: empty endpoint in %q -> %q", ErrInvalidEdge, from, to)
	}
	if from == to {
		return Edge{}, fmt.Errorf("%w: %q -> %q connects a party to itself", ErrInvalidEdge, from, to)
	}

	return Edge{From: from, To: to, Amount: amount}, nil
}

// OtherEndpoint returns the endpoint opposite to party.
// Returns ErrPartyNotOnEdge if party matches neither endpoint.
func (e Edge) OtherEndpoint(party string) (string, error) {
	switch party {
	case e.From:
		return e.To, nil
	case e.To:
		return e.From, nil
	default:
		return "", fmt.Errorf("%w: %q not on %s", ErrPartyNotOnEdge, party, e)
	}
}

// Normalize returns the edge with a non-negative Amount, swapping From and To
// when the stored amount is negative. Normalize is idempotent.
//
// Complexity: O(1).
func (e Edge) Normalize() Edge {
	if e.Amount < 0 {
		return Edge{From: e.To, To: e.From, Amount: -e.Amount}
	}

	return e
}

// Normalize is the package-level form of Edge.Normalize.
func Normalize(e Edge) Edge { return e.Normalize() }

// RelationSign compares the party pairs of two edges.
//
// Returns:
//   - +1 if a and b connect the same ordered pair (a.From==b.From, a.To==b.To).
//   - -1 if b runs the reverse direction of a.
//   - 0 if they connect different pairs.
//
// Reversing direction and negating the amount yields the same economic
// relation, so a.Amount + RelationSign(a,b)*b.Amount is the folded value.
func RelationSign(a, b Edge) int {
	if a.From == b.From && a.To == b.To {
		return 1
	}
	if a.From == b.To && a.To == b.From {
		return -1
	}

	return 0
}

// HasWildcard reports whether either endpoint is the Wildcard marker.
func (e Edge) HasWildcard() bool {
	return e.From == Wildcard || e.To == Wildcard
}

// String renders the edge as "From -> To: Amount" using the shortest
// decimal representation of Amount.
func (e Edge) String() string {
	return e.From + " -> " + e.To + ": " + strconv.FormatFloat(e.Amount, 'f', -1, 64)
}
