// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order (merged edges keep the slot of the first insert).
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "fmt"

// AddEdge records the raw relation "from owes to amount".
//
// Implementation:
//   - Stage 1: Validate endpoints via NewEdge (ErrInvalidEdge).
//   - Stage 2: Reject negative amounts (ErrNegativeAmount).
//   - Stage 3: Under mu write lock, register non-wildcard endpoints as parties.
//   - Stage 4: Append the edge, or fold it into an equivalent one when
//     WithMergeEquivalent is set.
//
// Inputs:
//   - from, to: party names; either may be Wildcard but not both.
//   - amount: non-negative owed value.
//
// Returns:
//   - error: nil on success; ErrInvalidEdge or ErrNegativeAmount (wrapped).
//
// Complexity:
//   - Time O(1) amortized; O(E) when merging equivalent edges.
func (g *Graph) AddEdge(from, to string, amount float64) error {
	e, err := NewEdge(from, to, amount)
	if err != nil {
		return err
	}
	if amount < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, e)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from != Wildcard {
		g.parties[from] = struct{}{}
	}
	if to != Wildcard {
		g.parties[to] = struct{}{}
	}

	if g.mergeEquivalent {
		for i := range g.edges {
			if sign := RelationSign(g.edges[i], e); sign != 0 {
				g.edges[i].Amount += float64(sign) * e.Amount
				return nil
			}
		}
	}
	g.edges = append(g.edges, e)

	return nil
}

// Edges returns a copy of the stored edges in insertion order.
// Complexity: O(E).
// Concurrency: read lock on mu.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of stored edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// MergeEquivalent reports whether the graph folds equivalent edges on insert.
func (g *Graph) MergeEquivalent() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.mergeEquivalent
}
