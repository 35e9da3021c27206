// SPDX-License-Identifier: MIT

// Package synth turns a zero-sum vector of net balances into a small set of
// settlement edges that reproduces it.
//
// Overview:
//
//   - Input is the ascending, zero-filtered balance list produced by
//     balance.Sorted plus the live balance.Balances mapping, which is mutated.
//   - Output has at most n-1 edges for n entries, the classical lower bound
//     for zeroing a zero-sum vector through pairwise transfers.
//   - Replaying the output through balance.Aggregate reproduces every input
//     balance (within floating-point rounding).
//
// Algorithm (single left-to-right pass, index i, running carry c = 0):
//
//	for i := 0; i+1 < n; i++ {
//	    p     := sorted[i].Party
//	    delta := c - live[p]               // what p must pass on
//	    if |delta| <= eps { c = delta; continue }            // settled
//	    if live[p] < 0 && creditor q exists with live[q] > delta {
//	        emit p -> q: delta; live[q] -= delta; c = 0    // preferred move
//	    } else {
//	        emit p -> sorted[i+1]: delta; c = delta         // fallback move
//	    }
//	}
//
// The last entry emits nothing: it absorbs the remainder by the zero-sum
// invariant.
//
// Creditor search policy:
//
//	Candidates are the entries strictly after i in sorted order. Among those
//	whose live balance strictly exceeds delta, the smallest live balance wins,
//	ties broken by party name. Zero-filtered parties and the current party
//	are never candidates. The choice changes which edges appear, never the
//	balances they realize.
//
// Invariant:
//
//	Debtors precede creditors in ascending order and only creditors are ever
//	chosen, so a preferred move always targets an entry that has not been
//	processed yet. When that entry is processed its live balance already
//	accounts for what it received, so each processed party ends with exactly
//	its original balance; the final party receives the rest.
//
// A delta within eps of zero is rounding residue left by earlier transfers;
// emitting it would add a zero-amount edge, so the party is treated as
// settled and the residue is carried on.
//
// Emitted edges are not normalized: an edge may carry a negative amount,
// meaning the money flows the other way.
//
// Complexity:
//
//	Time:   O(n²) worst case (creditor scan per debtor).
//	Memory: O(n) for the output.
package synth
