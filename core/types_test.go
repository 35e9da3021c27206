// SPDX-License-Identifier: MIT
// Package core_test verifies the Edge value contracts: construction, endpoint
// lookup, normalization and relation sign.

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/settle/core"
)

func TestNewEdge_Valid(t *testing.T) {
	e, err := core.NewEdge("Foo", "Bar", 10)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{From: "Foo", To: "Bar", Amount: 10}, e)

	// Wildcard on exactly one side is a valid raw edge.
	_, err = core.NewEdge(core.Wildcard, "Foo", 15.5)
	require.NoError(t, err)
}

func TestNewEdge_Invalid(t *testing.T) {
	cases := []struct {
		name     string
		from, to string
	}{
		{"self-loop", "A", "A"},
		{"wildcard to wildcard", core.Wildcard, core.Wildcard},
		{"empty from", "", "B"},
		{"empty to", "A", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewEdge(tc.from, tc.to, 1)
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrInvalidEdge), "got %v", err)
		})
	}
}

func TestEdge_OtherEndpoint(t *testing.T) {
	e := core.Edge{From: "A", To: "B", Amount: 3}

	other, err := e.OtherEndpoint("A")
	require.NoError(t, err)
	assert.Equal(t, "B", other)

	other, err = e.OtherEndpoint("B")
	require.NoError(t, err)
	assert.Equal(t, "A", other)

	_, err = e.OtherEndpoint("C")
	require.ErrorIs(t, err, core.ErrPartyNotOnEdge)
}

func TestEdge_Normalize(t *testing.T) {
	neg := core.Edge{From: "A", To: "B", Amount: -5}
	n := neg.Normalize()
	assert.Equal(t, core.Edge{From: "B", To: "A", Amount: 5}, n)

	// Original value is untouched.
	assert.Equal(t, -5.0, neg.Amount)

	pos := core.Edge{From: "A", To: "B", Amount: 5}
	assert.Equal(t, pos, pos.Normalize())

	zero := core.Edge{From: "A", To: "B", Amount: 0}
	assert.Equal(t, zero, core.Normalize(zero))
}

func TestEdge_NormalizeIdempotent(t *testing.T) {
	amounts := []float64{-100.25, -1, -1e-12, 0, 1e-12, 3.5, 1e9}
	for _, a := range amounts {
		e := core.Edge{From: "X", To: "Y", Amount: a}
		once := core.Normalize(e)
		twice := core.Normalize(once)
		assert.Equal(t, once, twice, "amount %g", a)
		assert.GreaterOrEqual(t, once.Amount, 0.0, "amount %g", a)
	}
}

func TestRelationSign(t *testing.T) {
	ab := core.Edge{From: "A", To: "B", Amount: 1}
	ba := core.Edge{From: "B", To: "A", Amount: 7}
	ac := core.Edge{From: "A", To: "C", Amount: 1}

	assert.Equal(t, 1, core.RelationSign(ab, ab))
	assert.Equal(t, -1, core.RelationSign(ab, ba))
	assert.Equal(t, -1, core.RelationSign(ba, ab))
	assert.Equal(t, 0, core.RelationSign(ab, ac))
}

func TestRelationSign_ReverseIsInvolution(t *testing.T) {
	e := core.Edge{From: "A", To: "B", Amount: 4}
	rev := core.Edge{From: e.To, To: e.From, Amount: -e.Amount}

	assert.Equal(t, -1, core.RelationSign(e, rev))
	assert.Equal(t, e.Normalize(), core.Edge{From: rev.To, To: rev.From, Amount: -rev.Amount}.Normalize())
}

func TestEdge_HasWildcardAndString(t *testing.T) {
	assert.True(t, core.Edge{From: core.Wildcard, To: "A"}.HasWildcard())
	assert.True(t, core.Edge{From: "A", To: core.Wildcard}.HasWildcard())
	assert.False(t, core.Edge{From: "A", To: "B"}.HasWildcard())

	assert.Equal(t, "Bar -> Foo: 7.75", core.Edge{From: "Bar", To: "Foo", Amount: 7.75}.String())
}
