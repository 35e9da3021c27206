// SPDX-License-Identifier: MIT

package synth

import (
	"math"

	"github.com/katalvlaran/settle/balance"
	"github.com/katalvlaran/settle/core"
)

// Synthesize produces settlement edges realizing the balances in sorted.
//
// Inputs:
//   - sorted: entries ascending by amount (see balance.Sorted); must sum to ≈0.
//   - live:   current balance per party; creditors chosen by a preferred move
//     are debited in place. Parties of sorted missing from live are read as 0.
//   - eps:    a party whose delta is within eps of zero is settled and emits
//     nothing; non-positive values fall back to balance.DefaultEpsilon.
//
// Returns:
//   - settlement edges, at most len(sorted)-1, not normalized, each with
//     |Amount| > eps. nil when fewer than two entries are given.
func Synthesize(sorted []balance.Entry, live balance.Balances, eps float64) []core.Edge {
	n := len(sorted)
	if n < 2 {
		return nil
	}
	if eps <= 0 {
		eps = balance.DefaultEpsilon
	}

	edges := make([]core.Edge, 0, n-1)
	var carry float64
	for i := 0; i+1 < n; i++ {
		current := sorted[i].Party
		currentBalance := live[current]
		delta := carry - currentBalance
		if math.Abs(delta) <= eps {
			// Rounding residue: nothing to pass on, the next party absorbs it.
			carry = delta
			continue
		}

		if currentBalance < 0 {
			if j := findCreditor(sorted, live, i, delta); j >= 0 {
				creditor := sorted[j].Party
				edges = append(edges, core.Edge{From: current, To: creditor, Amount: delta})
				live[creditor] -= delta
				carry = 0
				continue
			}
		}

		edges = append(edges, core.Edge{From: current, To: sorted[i+1].Party, Amount: delta})
		carry = delta
	}

	return edges
}

// findCreditor returns the index (> i) of the entry with the smallest live
// balance strictly greater than threshold, ties by party name, or -1.
func findCreditor(sorted []balance.Entry, live balance.Balances, i int, threshold float64) int {
	best := -1
	var bestBalance float64
	for j := i + 1; j < len(sorted); j++ {
		b := live[sorted[j].Party]
		if b <= threshold {
			continue
		}
		if best < 0 || b < bestBalance || (b == bestBalance && sorted[j].Party < sorted[best].Party) {
			best, bestBalance = j, b
		}
	}

	return best
}
