// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/tsexhibit/exhibit/freq"
	"github.com/tsexhibit/exhibit/internal/book"
	"github.com/tsexhibit/exhibit/series"
	"github.com/tsexhibit/exhibit/ticks"
)

var cmdTicksFlags = flag.NewFlagSet(os.Args[0]+" ticks", flag.ExitOnError)

var tickFlags struct {
	freq, display, minor, labelFreq string
	labelDates                      stringList
	inferFromFmt                    bool
	fmt                             string
	irregularMonth                  bool
	center, tickCentering           bool
	maxTicks                        int
	start, end                      string
	layout                          string
	name                            string
	minorTicks                      bool
}

func init() {
	f := cmdTicksFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s ticks [flags] <series file>\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&tickFlags.freq, "freq", "", "native `frequency` of the series (default: annotation or inferred)")
	f.StringVar(&tickFlags.display, "display", "", "major tick `frequency` (default: chosen from -max-ticks)")
	f.StringVar(&tickFlags.minor, "minor", "", "minor tick `frequency`")
	f.StringVar(&tickFlags.labelFreq, "label-freq", "", "label cadence `frequency` for centering and text")
	f.Var(&tickFlags.labelDates, "label-dates", "label these `dates` instead of the major ticks (shell-quoted list; repeatable)")
	f.BoolVar(&tickFlags.inferFromFmt, "infer-freq-from-fmt", false, "derive the label cadence from -fmt")
	f.StringVar(&tickFlags.fmt, "fmt", "", "strftime `format` for labels")
	f.BoolVar(&tickFlags.irregularMonth, "irregular-month", false, "format labels as irregular month abbreviations (Jan., May, June, Sept.)")
	f.BoolVar(&tickFlags.center, "center", true, "center labels within their period")
	f.BoolVar(&tickFlags.tickCentering, "tick-centering", true, "center labels between the ticks of their period rather than its calendar midpoint")
	f.IntVar(&tickFlags.maxTicks, "max-ticks", 0, "at most `n` major ticks when choosing -display (default from config)")
	f.StringVar(&tickFlags.start, "start", "", "axis start `date`")
	f.StringVar(&tickFlags.end, "end", "", "axis end `date`")
	f.StringVar(&tickFlags.layout, "layout", "", "time.Parse `layout` for dates and CSV timestamps (default from config)")
	f.StringVar(&tickFlags.name, "name", "", "plan the series `name`d (default: first series)")
	f.BoolVar(&tickFlags.minorTicks, "m", false, "also print minor ticks")
	registerSubcommand("ticks", "[flags] <series file> - print the date axis plan", cmdTicks, f)
}

func cmdTicks() error {
	if cmdTicksFlags.NArg() != 1 {
		cmdTicksFlags.Usage()
		os.Exit(2)
	}
	layout := tickFlags.layout
	if layout == "" {
		layout = cfg.DateLayout
	}

	opts, err := tickOptions(layout)
	if err != nil {
		return err
	}
	if opts.MaxTicks == 0 {
		opts.MaxTicks = cfg.MaxTicks
	}

	path := cmdTicksFlags.Arg(0)
	ss, err := book.ReadSeries(path, layout)
	if err != nil {
		return err
	}
	s := ss[0]
	if tickFlags.name != "" {
		s = nil
		for _, s1 := range ss {
			if s1.Name == tickFlags.name {
				s = s1
				break
			}
		}
		if s == nil {
			return fmt.Errorf("%s: no series %q", path, tickFlags.name)
		}
	}
	logger.Debug().Str("series", s.Name).Int("len", s.Len()).Msg("planning")

	p, err := ticks.NewPlan(s, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	printPlan(os.Stdout, p, tickFlags.minorTicks)
	return nil
}

// tickOptions converts the ticks subcommand flags to ticks.Options.
func tickOptions(layout string) (ticks.Options, error) {
	opts := ticks.Options{
		InferFreqFromFmt: tickFlags.inferFromFmt,
		Fmt:              tickFlags.fmt,
		IrregularMonth:   tickFlags.irregularMonth,
		Center:           tickFlags.center,
		TickCentering:    tickFlags.tickCentering,
		MaxTicks:         tickFlags.maxTicks,
	}
	for _, f := range []struct {
		flag string
		val  string
		dst  *freq.Freq
	}{
		{"freq", tickFlags.freq, &opts.Freq},
		{"display", tickFlags.display, &opts.Display},
		{"minor", tickFlags.minor, &opts.Minor},
		{"label-freq", tickFlags.labelFreq, &opts.LabelFreq},
	} {
		v, err := freq.Parse(f.val)
		if err != nil {
			return opts, fmt.Errorf("-%s: %w", f.flag, err)
		}
		*f.dst = v
	}

	date := func(name, s string) (time.Time, error) {
		if s == "" {
			return time.Time{}, nil
		}
		t, err := series.ParseTime(s, layout)
		if err != nil {
			return t, fmt.Errorf("-%s: bad date %q", name, s)
		}
		return t, nil
	}
	var err error
	if opts.Start, err = date("start", tickFlags.start); err != nil {
		return opts, err
	}
	if opts.End, err = date("end", tickFlags.end); err != nil {
		return opts, err
	}
	for _, s := range tickFlags.labelDates {
		t, err := date("label-dates", s)
		if err != nil {
			return opts, err
		}
		opts.LabelDates = append(opts.LabelDates, t)
	}
	return opts, nil
}

// printPlan writes a summary of p followed by a table of its labels.
func printPlan(w io.Writer, p *ticks.Plan, minor bool) {
	fmt.Fprintf(w, "range:  %s to %s\n", stamp(p.Start), stamp(p.End))
	fmt.Fprintf(w, "native: %s\n", p.Native)
	fmt.Fprintf(w, "freq:   %s\n", p.Freq)
	fmt.Fprintf(w, "major:  %d\n", len(p.Major))
	fmt.Fprintf(w, "minor:  %d\n", len(p.Minor))
	fmt.Fprintln(w)

	if len(p.Labels) == 0 {
		fmt.Fprintln(w, "no labels")
	} else {
		pos := make([]string, len(p.Labels))
		center := make([]string, len(p.Labels))
		text := make([]string, len(p.Labels))
		for i, l := range p.Labels {
			pos[i], center[i], text[i] = stamp(l.Pos), stamp(l.Center), l.Text
		}
		table.Fprint(w, new(table.Builder).
			Add("tick", pos).
			Add("center", center).
			Add("label", text).
			Done())
	}

	if minor && len(p.Minor) > 0 {
		fmt.Fprintln(w)
		ts := make([]string, len(p.Minor))
		for i, t := range p.Minor {
			ts[i] = stamp(t)
		}
		table.Fprint(w, new(table.Builder).Add("minor", ts).Done())
	}
}

// stamp formats t as a date if it is midnight and a full timestamp
// otherwise.
func stamp(t time.Time) string {
	if t.Equal(freq.Floor(t, freq.Day)) {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}
