// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"fmt"
	"time"

	"github.com/aclements/go-moremath/scale"
	"github.com/tsexhibit/exhibit/freq"
	"github.com/tsexhibit/exhibit/series"
)

// DefaultMaxTicks is the default limit on the number of major ticks
// when the display cadence is chosen automatically.
const DefaultMaxTicks = 12

// Options controls NewPlan and Select. The zero Options labels every
// tick of an automatically chosen cadence.
type Options struct {
	// Freq overrides the native frequency of the series. If zero,
	// the series' annotation is used, and failing that the
	// frequency is inferred from its timestamps.
	Freq freq.Freq

	// Display is the major tick cadence. If zero, NewPlan picks the
	// finest cadence with at most MaxTicks ticks.
	Display freq.Freq

	// Minor is the minor tick cadence. If zero, there are no minor
	// ticks.
	Minor freq.Freq

	// LabelDates, if not empty, are the dates to label.
	LabelDates []time.Time

	// LabelFreq is the cadence of the labelled periods, used for
	// centering and default label text. If zero, it is derived from
	// Fmt when InferFreqFromFmt is set and is Display otherwise.
	LabelFreq freq.Freq

	// InferFreqFromFmt derives the label cadence from Fmt.
	InferFreqFromFmt bool

	// Fmt is a strftime format for label text, such as "%Y" or
	// "%b %Y". If empty, a default for the label cadence is used.
	Fmt string

	// IrregularMonth formats labels as "Jan.", "May", "Sept." and so
	// on. It takes precedence over Fmt.
	IrregularMonth bool

	// Center places each label in the middle of its period.
	Center bool

	// TickCentering, with Center, measures a label's period by the
	// major and minor ticks inside it: the label goes midway between
	// the first and last of them, or between a lone tick and the end
	// of the axis. Otherwise the label goes at the midpoint of the
	// period clamped to the axis.
	TickCentering bool

	// MaxTicks limits the automatic display cadence. If zero,
	// DefaultMaxTicks is used.
	MaxTicks int

	// Start and End bound the x-range. A zero value means the first
	// or last timestamp of the series.
	Start, End time.Time
}

// A Plan is the complete date axis of one chart.
type Plan struct {
	Start, End time.Time

	// Native is the sampling frequency of the series.
	Native freq.Freq

	// Freq is the display cadence of the major ticks.
	Freq freq.Freq

	Major  []time.Time
	Minor  []time.Time
	Labels []Label
}

// NewPlan plans the date axis for s.
func NewPlan(s *series.Series, opts Options) (*Plan, error) {
	native := opts.Freq
	if native.IsZero() {
		var err error
		if native, err = s.Frequency(); err != nil {
			return nil, err
		}
	}

	start, end := opts.Start, opts.End
	if start.IsZero() {
		start = s.Start()
	}
	if end.IsZero() {
		end = s.End()
	}
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: series %q is empty and no x-range is set", ErrInvalidRange, s.Name)
	}

	display := opts.Display
	if display.IsZero() {
		display = AutoFreq(start, end, native, opts.MaxTicks)
	}
	major, err := Range(start, end, display, native)
	if err != nil {
		return nil, err
	}
	var minor []time.Time
	if !opts.Minor.IsZero() {
		if minor, err = Range(start, end, opts.Minor, native); err != nil {
			return nil, fmt.Errorf("minor ticks: %w", err)
		}
	}

	opts.Start, opts.End = start, end
	labels, major, err := selectLabels(major, minor, display, opts)
	if err != nil {
		return nil, err
	}
	return &Plan{
		Start:  start,
		End:    end,
		Native: native,
		Freq:   display,
		Major:  major,
		Minor:  minor,
		Labels: labels,
	}, nil
}

// ladder is the sequence of display cadences AutoFreq chooses from,
// finest first.
var ladder = []freq.Freq{
	{Code: freq.Minute, N: 1}, {Code: freq.Minute, N: 2}, {Code: freq.Minute, N: 5},
	{Code: freq.Minute, N: 10}, {Code: freq.Minute, N: 15}, {Code: freq.Minute, N: 30},
	{Code: freq.Hour, N: 1}, {Code: freq.Hour, N: 2}, {Code: freq.Hour, N: 3},
	{Code: freq.Hour, N: 6}, {Code: freq.Hour, N: 12},
	{Code: freq.Day, N: 1}, {Code: freq.Week, N: 1},
	{Code: freq.Month, N: 1}, {Code: freq.Quarter, N: 1}, {Code: freq.Quarter, N: 2},
	{Code: freq.Year, N: 1}, {Code: freq.Year, N: 2}, {Code: freq.Year, N: 5},
	{Code: freq.Year, N: 10}, {Code: freq.Year, N: 25}, {Code: freq.Year, N: 50},
	{Code: freq.Year, N: 100},
}

// AutoFreq returns the finest display cadence that is not finer than
// native and gives at most maxTicks ticks over [start, end]. The
// candidates are native followed by the coarser steps of a fixed
// ladder from one minute to a century. If no candidate is coarse
// enough, AutoFreq returns the coarsest.
func AutoFreq(start, end time.Time, native freq.Freq, maxTicks int) freq.Freq {
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}
	levels := []freq.Freq{native}
	for _, f := range ladder {
		if native.Finer(f) {
			levels = append(levels, f)
		}
	}
	if len(levels) == 1 {
		return native
	}

	opts := scale.TickOptions{Max: maxTicks, MinLevel: 0, MaxLevel: len(levels) - 1}
	level, ok := opts.FindLevel(levelTicker{start, end, levels, maxTicks}, 0)
	if !ok {
		return levels[len(levels)-1]
	}
	return levels[level]
}

// levelTicker is a scale.Ticker whose levels are display cadences,
// finest first.
type levelTicker struct {
	start, end time.Time
	levels     []freq.Freq
	max        int
}

func (lt levelTicker) CountTicks(level int) int {
	return Count(lt.start, lt.end, lt.levels[level])
}

// TicksAtLevel returns the tick times at level as Unix nanoseconds.
// It stops one past max ticks.
func (lt levelTicker) TicksAtLevel(level int) interface{} {
	var out []float64
	c, n := lt.levels[level].Code, lt.levels[level].Mult()
	for t := freq.Ceil(lt.start, c); !t.After(lt.end) && len(out) <= lt.max; t = freq.Add(t, c, n) {
		out = append(out, float64(t.UnixNano()))
	}
	return out
}
