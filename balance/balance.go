// SPDX-License-Identifier: MIT

// Package balance folds an expanded edge set into one net balance per party.
//
// A positive balance means the party is owed money in total, a negative one
// means it owes. Every edge contributes +Amount to its destination and
// -Amount to its source, so the balances of any edge set sum to zero up to
// floating-point rounding.
//
// Sorted turns a Balances mapping into the deterministic, zero-filtered,
// ascending list consumed by the synth package:
//
//	{Foo: -10, Bar: 10, Zot: 0}  ==Sorted==>  [Foo:-10 Bar:10]
package balance

import (
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/settle/core"
)

// DefaultEpsilon is the tolerance under which a balance counts as zero.
const DefaultEpsilon = 1e-10

// Balances maps a party name to its net balance.
type Balances map[string]float64

// Entry is one (party, balance) pair of a sorted balance list.
type Entry struct {
	Party  string
	Amount float64
}

// String renders the entry as "Party:Amount".
func (e Entry) String() string {
	return e.Party + ":" + strconv.FormatFloat(e.Amount, 'f', -1, 64)
}

// Aggregate computes the net balance of every party touched by edges.
// Parties that only appear on zero-amount edges get an explicit 0 entry.
//
// Complexity: O(E).
func Aggregate(edges []core.Edge) Balances {
	b := make(Balances, 2*len(edges))
	for _, e := range edges {
		b[e.To] += e.Amount
		b[e.From] -= e.Amount
	}

	return b
}

// Clone returns an independent copy of b.
func (b Balances) Clone() Balances {
	out := make(Balances, len(b))
	for k, v := range b {
		out[k] = v
	}

	return out
}

// Parties returns the party names of b sorted ascending.
func (b Balances) Parties() []string {
	out := make([]string, 0, len(b))
	for k := range b {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Sorted returns the entries of b whose magnitude exceeds eps, ordered by
// ascending Amount with ties broken by party name.
// A non-positive eps falls back to DefaultEpsilon.
//
// Complexity: O(P log P).
func Sorted(b Balances, eps float64) []Entry {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	out := make([]Entry, 0, len(b))
	for party, amount := range b {
		if math.Abs(amount) <= eps {
			continue
		}
		out = append(out, Entry{Party: party, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount < out[j].Amount
		}
		return out[i].Party < out[j].Party
	})

	return out
}

// Sum returns the signed sum of the entry amounts.
func Sum(entries []Entry) float64 {
	var s float64
	for _, e := range entries {
		s += e.Amount
	}

	return s
}

// Magnitude returns the sum of absolute entry amounts.
func Magnitude(entries []Entry) float64 {
	var s float64
	for _, e := range entries {
		s += math.Abs(e.Amount)
	}

	return s
}
