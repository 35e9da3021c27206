// SPDX-License-Identifier: MIT
//
// File: methods_parties.go
// Role: Party lifecycle & queries.
//
// Determinism:
//   - Parties() and Isolated() return names sorted lexicographically ascending.
//
// Concurrency:
//   - Party catalogs protected by mu.

package core

import "sort"

// AddParty declares a party that takes part in wildcard expansion even if it
// never appears on an edge. Declaring the same name twice is a no-op.
//
// Errors:
//   - ErrEmptyPartyName: if name == "".
//   - ErrWildcardParty: if name == Wildcard.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddParty(name string) error {
	if name == "" {
		return ErrEmptyPartyName
	}
	if name == Wildcard {
		return ErrWildcardParty
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.isolated[name] = struct{}{}
	g.parties[name] = struct{}{}

	return nil
}

// HasParty reports whether name is a known party (edge endpoint or declared).
func (g *Graph) HasParty(name string) bool {
	if name == "" || name == Wildcard {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.parties[name]

	return ok
}

// Parties returns all known party names sorted ascending. The Wildcard is never included.
// Complexity: O(P log P).
func (g *Graph) Parties() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.parties)
}

// Isolated returns the names declared through AddParty, sorted ascending.
// A declared name that also appears on an edge is still reported here.
func (g *Graph) Isolated() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.isolated)
}

// PartyCount returns the number of known parties.
func (g *Graph) PartyCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.parties)
}

// sortedKeys returns the keys of set in ascending order.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
