// SPDX-License-Identifier: MIT

// Package parse reads the line-oriented debt format into a core.Graph.
//
// Grammar, one entry per line:
//
//	# anything            comment (also blank or space-only lines)
//	Foo -> Bar: 10.00     Foo owes Bar 10.00
//	* -> Foo: 15.50       everybody owes Foo an equal share of 15.50
//	Zot                   Zot has no direct debts but counts in "everybody"
//
// Names are word characters ([0-9A-Za-z_]); amounts are unsigned decimals.
// An edge line only needs to match at the start of the line, so trailing text
// after the amount is ignored. A line relating a name to itself is malformed.
package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/settle/core"
)

// ErrMalformedLine indicates an input line matching none of the grammar rules.
var ErrMalformedLine = errors.New("parse: malformed input line")

var (
	commentRe = regexp.MustCompile(`^(#| *$)`)
	edgeRe    = regexp.MustCompile(`^(\w+|\*) *-> *(\w+|\*): *([0-9]+(\.[0-9]+)?)`)
	partyRe   = regexp.MustCompile(`^(\w+)$`)
)

// LineError reports one malformed input line.
type LineError struct {
	Line int    // 1-based line number
	Text string // line content without the trailing newline
}

func (e *LineError) Error() string {
	return fmt.Sprintf("invalid input on line %d: %s", e.Line, e.Text)
}

// Unwrap lets errors.Is match ErrMalformedLine.
func (e *LineError) Unwrap() error { return ErrMalformedLine }

// Options configures Read.
type Options struct {
	// SkipInvalid records malformed lines in Result.Skipped instead of failing.
	SkipInvalid bool
	// GraphOptions are passed to core.NewGraph.
	GraphOptions []core.GraphOption
}

// Option represents a functional option for configuring Read.
type Option func(*Options)

// WithSkipInvalid enables line-level recovery: malformed lines are collected
// and reading continues.
func WithSkipInvalid() Option {
	return func(o *Options) { o.SkipInvalid = true }
}

// WithGraphOptions forwards options to the core.Graph built by Read.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *Options) { o.GraphOptions = append(o.GraphOptions, opts...) }
}

// Result is the outcome of Read.
type Result struct {
	Graph   *core.Graph
	Skipped []*LineError
}

// Read parses every line of r.
//
// Returns the first *LineError (wrapping ErrMalformedLine) unless
// WithSkipInvalid is given, and any error from the underlying reader.
func Read(r io.Reader, opts ...Option) (*Result, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	res := &Result{Graph: core.NewGraph(cfg.GraphOptions...)}
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		// Lines have no length limit.
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse: read input: %w", err)
		}
		if raw == "" && err != nil {
			break
		}

		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		if perr := parseLine(res.Graph, line); perr != nil {
			lerr := &LineError{Line: n, Text: strings.TrimRightFunc(line, isSpace)}
			if !cfg.SkipInvalid {
				return nil, lerr
			}
			res.Skipped = append(res.Skipped, lerr)
		}
		if err != nil {
			break
		}
	}

	return res, nil
}

// parseLine applies one line to g. Edge syntax is tried first, then an
// isolated party name, then a comment.
func parseLine(g *core.Graph, line string) error {
	if m := edgeRe.FindStringSubmatch(line); m != nil && m[1] != m[2] {
		amount, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return err
		}
		return g.AddEdge(m[1], m[2], amount)
	}
	if m := partyRe.FindStringSubmatch(line); m != nil {
		return g.AddParty(m[1])
	}
	if commentRe.MatchString(line) {
		return nil
	}

	return ErrMalformedLine
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' }
