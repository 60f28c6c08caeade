// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/tsexhibit/exhibit/internal/book"
	"github.com/tsexhibit/exhibit/series"
)

var cmdInferFlags = flag.NewFlagSet(os.Args[0]+" infer", flag.ExitOnError)

var inferLayout string

func init() {
	f := cmdInferFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s infer [flags] <series file>...\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&inferLayout, "layout", "", "time.Parse `layout` for timestamps (default from config)")
	registerSubcommand("infer", "[flags] <series file>... - print series frequencies", cmdInfer, f)
}

func cmdInfer() error {
	if cmdInferFlags.NArg() < 1 {
		cmdInferFlags.Usage()
		os.Exit(2)
	}
	layout := inferLayout
	if layout == "" {
		layout = cfg.DateLayout
	}

	var files []string
	var all []*series.Series
	for _, path := range cmdInferFlags.Args() {
		ss, err := book.ReadSeries(path, layout)
		if err != nil {
			return err
		}
		for range ss {
			files = append(files, path)
		}
		all = append(all, ss...)
	}
	printFrequencies(os.Stdout, files, all)
	return nil
}

// printFrequencies writes a table of each series' extent and
// frequency. A series whose frequency cannot be determined is shown
// with "?".
func printFrequencies(w io.Writer, files []string, ss []*series.Series) {
	names := make([]string, len(ss))
	lens := make([]int, len(ss))
	starts := make([]string, len(ss))
	ends := make([]string, len(ss))
	freqs := make([]string, len(ss))
	for i, s := range ss {
		names[i], lens[i] = s.Name, s.Len()
		if s.Len() > 0 {
			starts[i], ends[i] = stamp(s.Start()), stamp(s.End())
		}
		f, err := s.Frequency()
		if err != nil {
			logger.Warn().Err(err).Str("file", files[i]).Str("series", s.Name).Msg("no frequency")
			freqs[i] = "?"
			continue
		}
		freqs[i] = f.String()
	}
	table.Fprint(w, new(table.Builder).
		Add("file", files).
		Add("name", names).
		Add("n", lens).
		Add("start", starts).
		Add("end", ends).
		Add("freq", freqs).
		Done())
}
