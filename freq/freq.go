// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package freq models the sampling cadence of a time series.
//
// A Code is the canonical cadence (annual, monthly, hourly, ...) and a
// Freq is a Code with a multiplier, so "6M" is Freq{Month, 6}. Every
// shorthand spelling of a cadence, current or historical, is resolved
// by Parse through a single alias table; the rest of this module only
// ever deals in Codes.
package freq

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnrecognizedFrequency is returned when a shorthand string does
// not match any known alias.
var ErrUnrecognizedFrequency = errors.New("unrecognized frequency")

// ErrInferenceFailed is returned when a frequency cannot be inferred
// from a sequence of timestamps.
var ErrInferenceFailed = errors.New("cannot infer frequency")

// A Code is a canonical sampling cadence. Codes are ordered from
// finest to coarsest, with None (no cadence) as the zero value.
type Code int

const (
	None Code = iota
	Nanosecond
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	BusinessDay
	Day
	Week
	Month
	Quarter
	Year
)

// Codes lists every cadence other than None, finest first.
var Codes = []Code{
	Nanosecond, Microsecond, Millisecond, Second, Minute, Hour,
	BusinessDay, Day, Week, Month, Quarter, Year,
}

var codeShort = [...]string{
	None:        "",
	Nanosecond:  "ns",
	Microsecond: "us",
	Millisecond: "ms",
	Second:      "s",
	Minute:      "min",
	Hour:        "h",
	BusinessDay: "B",
	Day:         "D",
	Week:        "W",
	Month:       "M",
	Quarter:     "Q",
	Year:        "Y",
}

var codeName = [...]string{
	None:        "none",
	Nanosecond:  "nanosecond",
	Microsecond: "microsecond",
	Millisecond: "millisecond",
	Second:      "secondly",
	Minute:      "minutely",
	Hour:        "hourly",
	BusinessDay: "business daily",
	Day:         "daily",
	Week:        "weekly",
	Month:       "monthly",
	Quarter:     "quarterly",
	Year:        "annual",
}

// String returns the canonical shorthand for c, such as "Y" or "min".
func (c Code) String() string {
	if c < 0 || int(c) >= len(codeShort) {
		return fmt.Sprintf("Code(%d)", int(c))
	}
	return codeShort[c]
}

// Name returns a human-readable name for c, such as "annual".
func (c Code) Name() string {
	if c < 0 || int(c) >= len(codeName) {
		return fmt.Sprintf("Code(%d)", int(c))
	}
	return codeName[c]
}

// unit is the exact length of one period of c, or 0 for calendar
// cadences whose length varies.
func (c Code) unit() time.Duration {
	switch c {
	case Nanosecond:
		return time.Nanosecond
	case Microsecond:
		return time.Microsecond
	case Millisecond:
		return time.Millisecond
	case Second:
		return time.Second
	case Minute:
		return time.Minute
	case Hour:
		return time.Hour
	case Day:
		return 24 * time.Hour
	case Week:
		return 7 * 24 * time.Hour
	}
	return 0
}

const day = 24 * time.Hour

// nominal is the nominal length of one period of c. Calendar cadences
// use fixed day counts.
var nominal = [...]time.Duration{
	Nanosecond:  time.Nanosecond,
	Microsecond: time.Microsecond,
	Millisecond: time.Millisecond,
	Second:      time.Second,
	Minute:      time.Minute,
	Hour:        time.Hour,
	BusinessDay: day,
	Day:         day,
	Week:        7 * day,
	Month:       30 * day,
	Quarter:     91 * day,
	Year:        365 * day,
}

// A Freq is a cadence with a multiplier. The zero Freq means "no
// frequency". A multiplier of 0 is treated as 1.
type Freq struct {
	Code Code
	N    int
}

// Of returns the single-period Freq for c.
func Of(c Code) Freq {
	return Freq{Code: c, N: 1}
}

// IsZero reports whether f carries no frequency.
func (f Freq) IsZero() bool {
	return f.Code == None
}

// Mult returns f's multiplier, which is always at least 1.
func (f Freq) Mult() int {
	if f.N <= 0 {
		return 1
	}
	return f.N
}

// String returns the canonical shorthand for f, such as "6M". Parse
// accepts every string String returns.
func (f Freq) String() string {
	if f.IsZero() {
		return ""
	}
	if n := f.Mult(); n != 1 {
		return fmt.Sprintf("%d%s", n, f.Code)
	}
	return f.Code.String()
}

// maxDuration is the longest representable time.Duration.
const maxDuration = time.Duration(1<<63 - 1)

// Approx returns the nominal length of one period of f. Calendar
// cadences use fixed lengths: a year is 365 days, a quarter 91 days
// and a month 30 days. Lengths too long for a time.Duration saturate
// at the maximum Duration.
func (f Freq) Approx() time.Duration {
	if f.IsZero() || int(f.Code) >= len(nominal) {
		return 0
	}
	if !fits(f.Code, f.Mult()) {
		return maxDuration
	}
	return nominal[f.Code] * time.Duration(f.Mult())
}

// fits reports whether n periods of c have a nominal length that a
// time.Duration can represent.
func fits(c Code, n int) bool {
	return n > 0 && int(c) < len(nominal) && nominal[c] <= maxDuration/time.Duration(n)
}

// Finer reports whether f is strictly finer than g. Neither may be
// zero.
func (f Freq) Finer(g Freq) bool {
	return f.Approx() < g.Approx()
}

// Equal reports whether f and g denote the same cadence.
func (f Freq) Equal(g Freq) bool {
	if f.IsZero() || g.IsZero() {
		return f.IsZero() == g.IsZero()
	}
	return f.Code == g.Code && f.Mult() == g.Mult()
}
