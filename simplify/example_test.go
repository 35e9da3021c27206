// SPDX-License-Identifier: MIT
package simplify_test

import (
	"fmt"

	"github.com/katalvlaran/settle/core"
	"github.com/katalvlaran/settle/simplify"
)

// ExampleSimplify shows a group dinner paid by Foo plus a direct debt.
//
//	* -> Foo: 30      everybody owes Foo a share of 30
//	Bar -> Zot: 10    Bar owes Zot 10
//
// Three known parties, so Bar and Zot each owe Foo 10.
func ExampleSimplify() {
	edges := []core.Edge{
		{From: core.Wildcard, To: "Foo", Amount: 30},
		{From: "Bar", To: "Zot", Amount: 10},
	}

	res, err := simplify.Simplify(edges, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range res.Edges {
		fmt.Println(e)
	}
	fmt.Println("total:", res.Total)

	// Output:
	// Bar -> Foo: 20
	// total: 20
}
