// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package freq

import "time"

// Floor returns the start of the period of c that contains t.
//
// Years start on January 1, quarters on the first of January, April,
// July and October, months on the first, weeks on Sunday and days at
// midnight, all in t's location. The floor of a weekend time under
// BusinessDay is the preceding Friday. Floor of None is t.
func Floor(t time.Time, c Code) time.Time {
	y, m, d := t.Date()
	loc := t.Location()
	switch c {
	case Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	case Quarter:
		return time.Date(y, (m-1)/3*3+1, 1, 0, 0, 0, 0, loc)
	case Month:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case Week:
		return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, loc)
	case Day:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	case BusinessDay:
		switch t.Weekday() {
		case time.Saturday:
			d--
		case time.Sunday:
			d -= 2
		}
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	case Hour:
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, loc)
	case Minute:
		return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
	case Second:
		return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, loc)
	case Millisecond, Microsecond, Nanosecond:
		ns := t.Nanosecond()
		return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), ns-ns%int(c.unit()), loc)
	}
	return t
}

// Ceil returns the first period start of c at or after t.
func Ceil(t time.Time, c Code) time.Time {
	f := Floor(t, c)
	if c == BusinessDay && !IsWeekday(t) {
		return Add(f, c, 1)
	}
	if f.Equal(t) {
		return f
	}
	return Add(f, c, 1)
}

// Add advances t by k periods of c. For calendar cadences t should
// be a period start; other days of the month are normalized the way
// time.Time.AddDate normalizes them.
func Add(t time.Time, c Code, k int) time.Time {
	switch c {
	case Year:
		return t.AddDate(k, 0, 0)
	case Quarter:
		return t.AddDate(0, 3*k, 0)
	case Month:
		return t.AddDate(0, k, 0)
	case Week:
		return t.AddDate(0, 0, 7*k)
	case Day:
		return t.AddDate(0, 0, k)
	case BusinessDay:
		return addBusinessDays(t, k)
	case None:
		return t
	}
	return t.Add(time.Duration(k) * c.unit())
}

// IsWeekday reports whether t falls on Monday through Friday.
func IsWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

func addBusinessDays(t time.Time, k int) time.Time {
	step := 1
	if k < 0 {
		step, k = -1, -k
	}
	// Whole weeks keep the weekday.
	t = t.AddDate(0, 0, 7*(k/5)*step)
	for k %= 5; k > 0; {
		t = t.AddDate(0, 0, step)
		if IsWeekday(t) {
			k--
		}
	}
	return t
}

// Next returns the start of the period of f that follows the one
// containing t.
func (f Freq) Next(t time.Time) time.Time {
	return Add(Floor(t, f.Code), f.Code, f.Mult())
}

// monthsBetween returns the number of calendar months from a to b,
// ignoring the day of the month.
func monthsBetween(a, b time.Time) int {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return (by-ay)*12 + int(bm-am)
}

// isMonthEnd reports whether t falls on the last day of its month.
func isMonthEnd(t time.Time) bool {
	return t.AddDate(0, 0, 1).Day() == 1
}

// sameClock reports whether a and b have the same time of day.
func sameClock(a, b time.Time) bool {
	ah, am, as := a.Clock()
	bh, bm, bs := b.Clock()
	return ah == bh && am == bm && as == bs && a.Nanosecond() == b.Nanosecond()
}
