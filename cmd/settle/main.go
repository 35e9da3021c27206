// SPDX-License-Identifier: MIT

// Command settle simplifies debts by minimizing transactions.
//
// Input (a file argument or stdin), one entry per line:
//
//	* -> Foo: 15.50     everybody owes Foo 15.50 in equal shares
//	Foo -> Bar: 10.00   Foo owes Bar 10.00
//	Zot                 Zot has no direct debts but is part of "everybody"
//
// Usage:
//
//	settle [-g] [-v] [-k] [-merge] [-scaled-tolerance] [-precision N] [file]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/settle/config"
	"github.com/katalvlaran/settle/core"
	"github.com/katalvlaran/settle/logger"
	"github.com/katalvlaran/settle/parse"
	"github.com/katalvlaran/settle/render"
	"github.com/katalvlaran/settle/simplify"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fs := flag.NewFlagSet("settle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var graphviz, verbose, keepGoing, merge bool
	fs.BoolVar(&graphviz, "g", false, "print the result as a Graphviz digraph")
	fs.BoolVar(&graphviz, "graphviz", false, "print the result as a Graphviz digraph")
	fs.BoolVar(&verbose, "v", false, "log diagnostics to stderr (ignored with -g)")
	fs.BoolVar(&verbose, "verbose", false, "log diagnostics to stderr (ignored with -g)")
	fs.BoolVar(&keepGoing, "k", cfg.SkipInvalid, "skip malformed input lines instead of aborting")
	fs.BoolVar(&keepGoing, "keep-going", cfg.SkipInvalid, "skip malformed input lines instead of aborting")
	fs.BoolVar(&merge, "merge", false, "fold equivalent input edges before simplifying")
	scaled := fs.Bool("scaled-tolerance", cfg.ScaledTolerance, "scale the zero-sum tolerance by the total balance")
	precision := fs.Int("precision", cfg.Precision, "decimals per amount; negative prints the shortest form")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: settle [-g] [-v] [-k] [-merge] [-scaled-tolerance] [-precision N] [file]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	level := cfg.LogLevel
	if verbose && !graphviz {
		level = zerolog.LevelDebugValue
	}
	log := logger.New(stderr, level, cfg.LogFormat)

	in := stdin
	if fs.NArg() == 1 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			log.Error().Err(err).Msg("open input")
			return 1
		}
		defer f.Close()
		in = f
	}

	var popts []parse.Option
	if keepGoing {
		popts = append(popts, parse.WithSkipInvalid())
	}
	if merge {
		popts = append(popts, parse.WithGraphOptions(core.WithMergeEquivalent()))
	}
	parsed, err := parse.Read(in, popts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	for _, lerr := range parsed.Skipped {
		log.Warn().Int("line", lerr.Line).Str("text", lerr.Text).Msg("skipping invalid input")
	}

	sopts := []simplify.Option{
		simplify.WithEpsilon(cfg.Epsilon),
		simplify.WithLogger(log),
	}
	if *scaled {
		sopts = append(sopts, simplify.WithScaledTolerance())
	}
	res, err := simplify.SimplifyGraph(parsed.Graph, sopts...)
	if err != nil {
		log.Error().Err(err).Msg("simplify")
		return 1
	}

	format := render.FormatPlain
	if graphviz {
		format = render.FormatGraphviz
	}
	if err := render.Write(stdout, format, res.Edges, *precision); err != nil {
		log.Error().Err(err).Msg("write output")
		return 1
	}

	return 0
}
