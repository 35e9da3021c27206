// SPDX-License-Identifier: MIT

// Package expand rewrites every edge touching the core.Wildcard ("everyone")
// into concrete edges against all known parties.
//
// Known parties are every non-wildcard endpoint on any raw edge plus the
// explicitly declared isolated parties. With k known parties:
//
//	* -> X: W   becomes   p -> X: W/k   for every known p ≠ X
//	X -> *: W   becomes   X -> p: W/k   for every known p ≠ X
//
// so a group debt is split evenly across the whole group, including parties
// that have no direct debts of their own. Note that X's own share (W/k) is
// simply dropped, which is what "everybody owes X" means.
//
// Ordering:
//
//	Plain edges keep their relative input order and come first. Expansions
//	follow, one block per wildcard edge in input order, with the generated
//	edges ordered by party name.
//
// Errors:
//
//	core.ErrInvalidEdge – an edge from a party to itself, or the wildcard on both sides
//	ErrEmptyGraph       – a wildcard edge exists but there are no known parties
//
// Complexity:
//
//	Time:   O(E + P log P + W·P) for E edges, P parties, W wildcard edges.
//	Memory: O(E + W·P).
package expand
