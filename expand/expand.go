// SPDX-License-Identifier: MIT

package expand

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/settle/core"
)

// ErrEmptyGraph indicates wildcard expansion was requested with zero known parties.
var ErrEmptyGraph = errors.New("expand: wildcard edge with no known parties")

// KnownParties returns every distinct non-wildcard endpoint of edges, united
// with isolated, sorted ascending. Empty names are skipped.
//
// Complexity: O(E + P log P).
func KnownParties(edges []core.Edge, isolated []string) []string {
	seen := make(map[string]struct{}, len(isolated)+2*len(edges))
	add := func(name string) {
		if name == "" || name == core.Wildcard {
			return
		}
		seen[name] = struct{}{}
	}
	for _, name := range isolated {
		add(name)
	}
	for _, e := range edges {
		add(e.From)
		add(e.To)
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Expand replaces every wildcard edge with its per-party share edges.
//
// Steps:
//  1. Reject self-loops, wildcard-to-wildcard included (core.ErrInvalidEdge).
//  2. Collect known parties via KnownParties.
//  3. If any wildcard edge exists and there are no known parties, fail with ErrEmptyGraph.
//  4. Pass plain edges through; append W/k share edges for each wildcard edge.
//
// The input slice is not modified. The result contains no wildcard endpoint.
func Expand(edges []core.Edge, isolated []string) ([]core.Edge, error) {
	wildcards := 0
	for _, e := range edges {
		if e.From == e.To {
			if e.From == core.Wildcard {
				return nil, fmt.Errorf("%w: %s has the wildcard on both sides", core.ErrInvalidEdge, e)
			}
			return nil, fmt.Errorf("%w: %s connects a party to itself", core.ErrInvalidEdge, e)
		}
		if e.HasWildcard() {
			wildcards++
		}
	}

	parties := KnownParties(edges, isolated)
	if wildcards > 0 && len(parties) == 0 {
		return nil, ErrEmptyGraph
	}

	out := make([]core.Edge, 0, len(edges)-wildcards+wildcards*len(parties))
	for _, e := range edges {
		if !e.HasWildcard() {
			out = append(out, e)
		}
	}
	if wildcards == 0 {
		return out, nil
	}

	k := float64(len(parties))
	for _, e := range edges {
		switch {
		case e.From == core.Wildcard: // * -> X: everybody owes X
			share := e.Amount / k
			for _, p := range parties {
				if p != e.To {
					out = append(out, core.Edge{From: p, To: e.To, Amount: share})
				}
			}
		case e.To == core.Wildcard: // X -> *: X owes everybody
			share := e.Amount / k
			for _, p := range parties {
				if p != e.From {
					out = append(out, core.Edge{From: e.From, To: p, Amount: share})
				}
			}
		}
	}

	return out, nil
}
