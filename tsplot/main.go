// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tsplot plans date axes and renders time-series exhibits.
//
// Usage:
//
//	tsplot ticks [flags] <series file>
//	tsplot infer <series file>...
//	tsplot render [flags] <book.yaml>
//
// Series files are either in the series text format (see package
// series) or, if they end in .csv, a CSV file with a date and a
// value column.
//
// "ticks" prints the tick plan for the first series in a file: the
// frequency used, then each tick with its label. "infer" prints the
// inferred frequency of every series. "render" lays out a book of
// pages and writes it as a single PNG.
//
// Defaults for all subcommands are read from tsplot.yaml in the
// current directory and from TSPLOT_* environment variables.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"github.com/tsexhibit/exhibit/internal/config"
)

type subcommand struct {
	name, desc string
	cmd        func() error
	flags      *flag.FlagSet
}

var subcommands = map[string]*subcommand{}

func registerSubcommand(name, desc string, cmd func() error, flags *flag.FlagSet) {
	subcommands[name] = &subcommand{name, desc, cmd, flags}
}

var (
	cfg    *config.Config
	logger zerolog.Logger
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <subcommand> [flags] [args...]\n\nSubcommands:\n", os.Args[0])
	var names []string
	for name := range subcommands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s %s\n", name, subcommands[name].desc)
	}
	fmt.Fprintf(os.Stderr, "\nRun %s <subcommand> -h for subcommand flags.\n", os.Args[0])
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := subcommands[os.Args[1]]
	if sub == nil {
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	var err error
	cfg, err = config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "tsplot: %v\n", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	logger = newLogger(level)

	sub.flags.Parse(os.Args[2:])
	if err := sub.cmd(); err != nil {
		logger.Fatal().Err(err).Str("cmd", sub.name).Msg("failed")
	}
}

func newLogger(level zerolog.Level) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: os.Getenv("TERM") == "dumb"}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
