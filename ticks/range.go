// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticks plans the date axis of a time-series chart.
//
// A Plan holds the major and minor tick positions for an x-range and
// the labels to draw under them. Ticks are a synthetic scaffold at a
// display cadence anchored on calendar period starts; they do not
// depend on where the observations of a series fall.
package ticks

import (
	"errors"
	"fmt"
	"time"

	"github.com/tsexhibit/exhibit/freq"
)

// MaxRangeLen is the largest number of ticks Range will generate.
const MaxRangeLen = 1000000

// ErrInvalidRange is returned for tick ranges that are empty by
// construction, use an unusable cadence, or are too long.
var ErrInvalidRange = errors.New("invalid tick range")

// Range returns the period starts of display in [start, end].
//
// The first tick is the first period start at or after start, and
// each following tick is display.Mult() periods later. Years start on
// January 1, quarters on the first of January, April, July and
// October, months on the first, weeks on Sunday and days at midnight.
// Business day ticks fall on weekdays.
//
// native is the frequency of the data being labelled. If it is not
// zero, display must not be finer than it.
func Range(start, end time.Time, display, native freq.Freq) ([]time.Time, error) {
	switch {
	case start.After(end):
		return nil, fmt.Errorf("%w: start %s after end %s", ErrInvalidRange, start.Format(time.RFC3339), end.Format(time.RFC3339))
	case display.IsZero():
		return nil, fmt.Errorf("%w: no display frequency", ErrInvalidRange)
	case !native.IsZero() && display.Finer(native):
		return nil, fmt.Errorf("%w: display frequency %s finer than data frequency %s", ErrInvalidRange, display, native)
	}
	if Count(start, end, display) > MaxRangeLen {
		return nil, fmt.Errorf("%w: more than %d %s ticks", ErrInvalidRange, MaxRangeLen, display)
	}

	var ticks []time.Time
	c, n := display.Code, display.Mult()
	for t := freq.Ceil(start, c); !t.After(end); t = freq.Add(t, c, n) {
		if len(ticks) == MaxRangeLen {
			return nil, fmt.Errorf("%w: more than %d %s ticks", ErrInvalidRange, MaxRangeLen, display)
		}
		ticks = append(ticks, t)
	}
	return ticks, nil
}

// Count estimates the number of ticks of f in [start, end] from f's
// nominal period length.
func Count(start, end time.Time, f freq.Freq) int {
	p := f.Approx()
	if p <= 0 || end.Before(start) {
		return 0
	}
	return int(end.Sub(start)/p) + 1
}
