// SPDX-License-Identifier: MIT

// Package render writes settlement edges as text, either one "A -> B: amount"
// line per edge or as a Graphviz digraph. Edges are normalized before they
// are written.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/settle/core"
)

// ErrUnknownFormat indicates an unsupported Format value.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format selects the output syntax.
type Format int

const (
	// FormatPlain prints "From -> To: amount" lines.
	FormatPlain Format = iota
	// FormatGraphviz prints a Graphviz "Digraph G { ... }" block.
	FormatGraphviz
)

// Write renders edges in the given format. precision is the number of
// decimals per amount; a negative precision prints the shortest form.
func Write(w io.Writer, f Format, edges []core.Edge, precision int) error {
	switch f {
	case FormatPlain:
		return Plain(w, edges, precision)
	case FormatGraphviz:
		return Graphviz(w, edges, precision)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
}

// Plain writes one "From -> To: amount" line per edge.
func Plain(w io.Writer, edges []core.Edge, precision int) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		e = e.Normalize()
		fmt.Fprintf(bw, "%s -> %s: %s\n", e.From, e.To, amount(e.Amount, precision))
	}

	return bw.Flush()
}

// Graphviz writes edges as a labelled Graphviz digraph:
//
//	Digraph G {
//	Bar -> Foo [ label="7.75" ];
//	}
func Graphviz(w io.Writer, edges []core.Edge, precision int) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("Digraph G {\n")
	for _, e := range edges {
		e = e.Normalize()
		fmt.Fprintf(bw, "%s -> %s [ label=\"%s\" ];\n", e.From, e.To, amount(e.Amount, precision))
	}
	bw.WriteString("}\n")

	return bw.Flush()
}

func amount(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
