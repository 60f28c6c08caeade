// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package freq

import (
	"fmt"
	"time"

	"github.com/aclements/go-moremath/stats"
)

// fixedCodes are the cadences with an exact period length, coarsest
// first.
var fixedCodes = []Code{Week, Day, Hour, Minute, Second, Millisecond, Microsecond, Nanosecond}

// Infer returns the regular sampling cadence of ts.
//
// Calendar cadences are tried first, so monthly, quarterly and annual
// data are recognized despite the varying lengths of months. Then
// whole-day steps (which tolerate daylight saving shifts) and business
// days are tried, and finally any fixed spacing. If ts has fewer than
// two points, is not strictly increasing or has no regular cadence,
// Infer returns an error wrapping ErrInferenceFailed.
func Infer(ts []time.Time) (Freq, error) {
	if len(ts) < 2 {
		return Freq{}, fmt.Errorf("%w: need at least 2 timestamps, have %d", ErrInferenceFailed, len(ts))
	}
	for i := 1; i < len(ts); i++ {
		if !ts[i].After(ts[i-1]) {
			return Freq{}, fmt.Errorf("%w: timestamps not increasing at index %d", ErrInferenceFailed, i)
		}
	}

	if f, ok := inferCalendar(ts); ok {
		return f, nil
	}
	if f, ok := inferDays(ts); ok {
		return f, nil
	}
	if inferBusiness(ts) {
		return Of(BusinessDay), nil
	}

	deltas := make([]float64, len(ts)-1)
	for i := range deltas {
		deltas[i] = float64(ts[i+1].Sub(ts[i]))
	}
	// Bounds works in float64, which cannot tell apart long spacings
	// that differ by a few nanoseconds, so equal bounds are confirmed
	// on the exact deltas.
	lo, hi := stats.Sample{Xs: deltas}.Bounds()
	d := ts[1].Sub(ts[0])
	regular := lo == hi
	for i := 2; regular && i < len(ts); i++ {
		regular = ts[i].Sub(ts[i-1]) == d
	}
	if !regular {
		return Freq{}, fmt.Errorf("%w: irregular spacing between %v and %v", ErrInferenceFailed, time.Duration(lo), time.Duration(hi))
	}
	for _, c := range fixedCodes {
		if u := c.unit(); d%u == 0 {
			return Freq{Code: c, N: int(d / u)}, nil
		}
	}
	// Unreachable: every positive duration is a whole number of
	// nanoseconds.
	return Freq{}, fmt.Errorf("%w: spacing %v", ErrInferenceFailed, d)
}

// inferCalendar recognizes series whose points are a fixed number of
// calendar months apart and sit at the same position in each month.
func inferCalendar(ts []time.Time) (Freq, bool) {
	k := monthsBetween(ts[0], ts[1])
	if k < 1 {
		return Freq{}, false
	}
	sameDay, monthEnd := true, true
	for i, t := range ts {
		if !sameClock(t, ts[0]) {
			return Freq{}, false
		}
		if i > 0 && monthsBetween(ts[i-1], t) != k {
			return Freq{}, false
		}
		sameDay = sameDay && t.Day() == ts[0].Day()
		monthEnd = monthEnd && isMonthEnd(t)
	}
	if !sameDay && !monthEnd {
		return Freq{}, false
	}
	switch {
	case k%12 == 0:
		return Freq{Code: Year, N: k / 12}, true
	case k%3 == 0:
		return Freq{Code: Quarter, N: k / 3}, true
	}
	return Freq{Code: Month, N: k}, true
}

// inferDays recognizes series stepping by a fixed number of calendar
// days at a fixed clock time.
func inferDays(ts []time.Time) (Freq, bool) {
	if !sameClock(ts[0], ts[1]) {
		return Freq{}, false
	}
	y0, m0, d0 := ts[0].Date()
	y1, m1, d1 := ts[1].Date()
	n := int(time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC).Sub(time.Date(y0, m0, d0, 0, 0, 0, 0, time.UTC)) / day)
	if n < 1 {
		return Freq{}, false
	}
	for i := 1; i < len(ts); i++ {
		if !ts[i].Equal(ts[i-1].AddDate(0, 0, n)) {
			return Freq{}, false
		}
	}
	if n%7 == 0 {
		return Freq{Code: Week, N: n / 7}, true
	}
	return Freq{Code: Day, N: n}, true
}

// inferBusiness recognizes series on consecutive business days. At
// least one step must cross a weekend, otherwise the series is daily.
func inferBusiness(ts []time.Time) bool {
	crossed := false
	for i, t := range ts {
		if !IsWeekday(t) || !sameClock(t, ts[0]) {
			return false
		}
		if i == 0 {
			continue
		}
		if !t.Equal(addBusinessDays(ts[i-1], 1)) {
			return false
		}
		if t.Sub(ts[i-1]) > day {
			crossed = true
		}
	}
	return crossed
}
