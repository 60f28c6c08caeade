// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series reads and writes time series.
//
// Two file formats are supported. The series text format is a sequence
// of configuration lines ("key: value") and data lines ("timestamp
// value"); see Parse. CSV files with a header row are read by ReadCSV.
package series

import (
	"errors"
	"fmt"
	"time"

	"github.com/tsexhibit/exhibit/freq"
)

// Series is a sequence of observations ordered by timestamp.
type Series struct {
	// Name identifies the series, for example in a chart legend.
	Name string

	// Timestamps are the observation times, in strictly increasing
	// order.
	Timestamps []time.Time

	// Values are the observations. len(Values) == len(Timestamps).
	Values []float64

	// Freq is the annotated sampling frequency of the series. The
	// zero Freq means the series carries no annotation.
	Freq freq.Freq

	// Config holds the configuration lines that applied to this
	// series other than name and freq.
	Config map[string]string
}

// New returns a Series after checking that ts and vs have the same
// length and ts is strictly increasing.
func New(name string, ts []time.Time, vs []float64) (*Series, error) {
	if len(ts) != len(vs) {
		return nil, fmt.Errorf("series %q: %d timestamps but %d values", name, len(ts), len(vs))
	}
	for i := 1; i < len(ts); i++ {
		if !ts[i].After(ts[i-1]) {
			return nil, fmt.Errorf("series %q: timestamp %d (%s) not after %s", name, i, ts[i].Format(time.RFC3339), ts[i-1].Format(time.RFC3339))
		}
	}
	return &Series{Name: name, Timestamps: ts, Values: vs}, nil
}

// Len returns the number of observations in s.
func (s *Series) Len() int {
	return len(s.Timestamps)
}

// Start returns the first timestamp of s, or the zero time if s is
// empty.
func (s *Series) Start() time.Time {
	if len(s.Timestamps) == 0 {
		return time.Time{}
	}
	return s.Timestamps[0]
}

// End returns the last timestamp of s, or the zero time if s is empty.
func (s *Series) End() time.Time {
	if len(s.Timestamps) == 0 {
		return time.Time{}
	}
	return s.Timestamps[len(s.Timestamps)-1]
}

// Clip returns the observations of s in [start, end]. A zero start or
// end leaves that side unbounded. The result shares storage with s.
func (s *Series) Clip(start, end time.Time) *Series {
	lo, hi := 0, len(s.Timestamps)
	for lo < hi && !start.IsZero() && s.Timestamps[lo].Before(start) {
		lo++
	}
	for hi > lo && !end.IsZero() && s.Timestamps[hi-1].After(end) {
		hi--
	}
	c := *s
	c.Timestamps = s.Timestamps[lo:hi:hi]
	c.Values = s.Values[lo:hi:hi]
	return &c
}

// ErrNoFrequency is returned by Frequency when a series has no
// annotation and no frequency can be inferred.
var ErrNoFrequency = errors.New("no frequency")

// Frequency returns the native frequency of s: its annotation if it
// has one, otherwise the frequency inferred from its timestamps. The
// error wraps both ErrNoFrequency and freq.ErrInferenceFailed.
func (s *Series) Frequency() (freq.Freq, error) {
	if !s.Freq.IsZero() {
		return s.Freq, nil
	}
	f, err := freq.Infer(s.Timestamps)
	if err != nil {
		return freq.Freq{}, fmt.Errorf("series %q: %w: %w", s.Name, ErrNoFrequency, err)
	}
	return f, nil
}
