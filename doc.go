// SPDX-License-Identifier: MIT

// Package settle simplifies a set of debts into a small set of payments that
// leaves every party with the same net balance.
//
// The pipeline, one package per stage:
//
//	parse/    line-oriented input ("Foo -> Bar: 10.00", "* -> Foo: 15.50", "Zot")
//	core/     Edge and the thread-safe Graph that collects parsed entries
//	expand/   "*" edges split into equal shares among all known parties
//	balance/  net balance per party, sorted ascending with zeros filtered
//	synth/    greedy synthesis of at most n-1 settlement edges
//	simplify/ the driver: runs the stages, checks the zero-sum invariant
//	render/   plain "A -> B: x" lines or a Graphviz digraph
//
// Ambient packages:
//
//	config/   SETTLE_* environment variables (caarlos0/env)
//	logger/   zerolog construction and context helpers
//
// The settle command in cmd/settle wires all of the above.
//
// Quick example:
//
//	res, err := simplify.Simplify([]core.Edge{
//		{From: core.Wildcard, To: "Foo", Amount: 15.5},
//	}, []string{"Bar"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, e := range res.Edges {
//		fmt.Println(e) // Bar -> Foo: 7.75
//	}
package settle
