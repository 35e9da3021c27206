// SPDX-License-Identifier: MIT

// Package core provides the debt-graph primitives shared by every stage of
// the settle pipeline: the Edge value type and a small thread-safe Graph that
// collects raw relations and isolated parties.
//
// An Edge (From, To, Amount) reads "From owes To Amount". A negative Amount
// encodes the reverse relation; Normalize rewrites an edge so that Amount ≥ 0,
// swapping the endpoints when needed:
//
//	A -> B: -5   ==Normalize==>   B -> A: 5
//
// Two edges are equivalent when they connect the same unordered pair of
// parties. RelationSign reports +1 (same direction), -1 (reversed) or 0
// (different pairs); Graph uses it to fold equivalent edges when built with
// WithMergeEquivalent.
//
// The Wildcard ("*") stands for "every known party" and may appear on at most
// one side of a raw edge. It is never a party: AddParty rejects it and
// Parties() never lists it.
//
// Core API:
//
//	NewEdge(from, to string, amount float64) (Edge, error)
//	(Edge).OtherEndpoint(party string) (string, error)
//	(Edge).Normalize() Edge
//	RelationSign(a, b Edge) int
//
//	NewGraph(opts ...GraphOption) *Graph
//	(*Graph).AddEdge(from, to string, amount float64) error
//	(*Graph).AddParty(name string) error
//	(*Graph).Edges() []Edge        // insertion order
//	(*Graph).Parties() []string    // sorted
//	(*Graph).Isolated() []string   // sorted
//
// Errors:
//
//	ErrInvalidEdge     – self-loop, wildcard-to-wildcard or empty endpoint
//	ErrPartyNotOnEdge  – OtherEndpoint called with a stranger
//	ErrEmptyPartyName  – zero-length party name
//	ErrWildcardParty   – wildcard declared as a party
//	ErrNegativeAmount  – negative amount on raw input
package core
