// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"fmt"
	"sort"
	"time"

	"github.com/ncruces/go-strftime"
	"github.com/tsexhibit/exhibit/freq"
)

// A Label is a piece of axis text.
type Label struct {
	// Pos is the date the label refers to.
	Pos time.Time

	// Center is where the label should be drawn. It is the middle
	// of the label's period if Options.Center is set and Pos
	// otherwise.
	Center time.Time

	Text string
}

// Select chooses which ticks of rng to label and formats the labels.
//
// If opts.LabelDates is not empty, exactly those dates are labelled,
// in increasing order and without duplicates, and any that are not
// already in rng are added to the returned major ticks. Otherwise, if
// opts.InferFreqFromFmt is set, the label cadence is derived from
// opts.Fmt (see FmtFreq) and the first tick of each period of that
// cadence is labelled. Otherwise every tick is labelled.
//
// rng must be strictly increasing. The returned major ticks are rng
// plus any inserted label dates.
func Select(rng []time.Time, display freq.Freq, opts Options) ([]Label, []time.Time, error) {
	return selectLabels(rng, nil, display, opts)
}

// selectLabels is Select with the minor ticks that tick-based
// centering may use.
func selectLabels(rng, minor []time.Time, display freq.Freq, opts Options) ([]Label, []time.Time, error) {
	for i := 1; i < len(rng); i++ {
		if !rng[i].After(rng[i-1]) {
			return nil, nil, fmt.Errorf("%w: ticks not increasing at index %d", ErrInvalidRange, i)
		}
	}

	major := rng
	var pos []time.Time
	cadence := display
	switch {
	case len(opts.LabelDates) > 0:
		pos = sortedUnique(opts.LabelDates)
		major = merge(rng, pos)
		if opts.InferFreqFromFmt {
			cadence = FmtFreq(opts.Fmt, opts.IrregularMonth)
		}

	case opts.InferFreqFromFmt:
		cadence = FmtFreq(opts.Fmt, opts.IrregularMonth)
		if cadence.Finer(display) {
			cadence = display
			pos = rng
			break
		}
		for i, t := range rng {
			if i == 0 || !freq.Floor(t, cadence.Code).Equal(freq.Floor(rng[i-1], cadence.Code)) {
				pos = append(pos, t)
			}
		}

	default:
		pos = rng
	}
	if !opts.LabelFreq.IsZero() {
		cadence = opts.LabelFreq
	}

	start, end := opts.Start, opts.End
	if len(major) > 0 {
		if start.IsZero() {
			start = major[0]
		}
		if end.IsZero() {
			end = major[len(major)-1]
		}
	}

	var marks []time.Time
	if opts.Center && opts.TickCentering {
		marks = make([]time.Time, 0, len(major)+len(minor)+2)
		marks = append(append(append(marks, major...), minor...), start, end)
	}

	labels := make([]Label, len(pos))
	for i, t := range pos {
		labels[i] = Label{Pos: t, Center: t, Text: Format(t, cadence.Code, opts)}
		switch {
		case !opts.Center:
		case opts.TickCentering:
			labels[i].Center = tickCenter(t, cadence.Next(t), marks, end)
		default:
			labels[i].Center = center(t, cadence.Next(t), start, end)
		}
	}
	return labels, major, nil
}

// tickCenter returns the midpoint between the first mark at or after
// from and the last mark at or before to. If they coincide, the label
// goes between that mark and hi. marks need not be sorted.
func tickCenter(from, to time.Time, marks []time.Time, hi time.Time) time.Time {
	var lo, up time.Time
	for _, m := range marks {
		if !m.Before(from) && (lo.IsZero() || m.Before(lo)) {
			lo = m
		}
		if !m.After(to) && (up.IsZero() || m.After(up)) {
			up = m
		}
	}
	if lo.IsZero() {
		return from
	}
	if up.Equal(lo) {
		up = hi
	}
	if up.Before(lo) {
		return lo
	}
	return lo.Add(up.Sub(lo) / 2)
}

// center returns the midpoint of [from, to] clamped to [lo, hi].
func center(from, to, lo, hi time.Time) time.Time {
	if from.Before(lo) {
		from = lo
	}
	if to.After(hi) {
		to = hi
	}
	if to.Before(from) {
		return from
	}
	return from.Add(to.Sub(from) / 2)
}

func sortedUnique(ts []time.Time) []time.Time {
	out := append([]time.Time(nil), ts...)
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	j := 0
	for i, t := range out {
		if i > 0 && t.Equal(out[j-1]) {
			continue
		}
		out[j] = t
		j++
	}
	return out[:j]
}

// merge returns the sorted union of the increasing sequences a and b.
func merge(a, b []time.Time) []time.Time {
	out := make([]time.Time, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || i < len(a) && a[i].Before(b[j]):
			out = append(out, a[i])
			i++
		case i == len(a) || b[j].Before(a[i]):
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// FmtFreq returns the label cadence implied by the strftime format
// layout: the finest of seconds (%S, %T), minutes (%M, %R), hours (%H,
// %I), days (%d, %e, %j, %F, %D) and months (%m, %b, %B, %h) that
// layout mentions, or years if it mentions none of them. Irregular month
// labels are monthly.
func FmtFreq(layout string, irregularMonth bool) freq.Freq {
	if irregularMonth {
		return freq.Of(freq.Month)
	}
	finest := freq.Year
	for i := 0; i < len(layout); i++ {
		if layout[i] != '%' {
			continue
		}
		// Skip padding and alternate representation flags.
		for i++; i < len(layout) && isFlag(layout[i]); i++ {
		}
		if i == len(layout) {
			break
		}
		c := freq.Year
		switch layout[i] {
		case 'S', 'T':
			c = freq.Second
		case 'M', 'R':
			c = freq.Minute
		case 'H', 'I':
			c = freq.Hour
		case 'd', 'e', 'j', 'F', 'D':
			c = freq.Day
		case 'm', 'b', 'B', 'h':
			c = freq.Month
		}
		if c < finest {
			finest = c
		}
	}
	return freq.Of(finest)
}

func isFlag(c byte) bool {
	switch c {
	case '-', '_', '0', '^', '#', 'E', 'O':
		return true
	}
	return false
}

var irregularMonths = [...]string{
	"Jan.", "Feb.", "Mar.", "Apr.", "May", "June",
	"July", "Aug.", "Sept.", "Oct.", "Nov.", "Dec.",
}

// IrregularMonth returns the month abbreviation for t in the style
// "Jan.", "May", "June", "Sept.".
func IrregularMonth(t time.Time) string {
	return irregularMonths[t.Month()-1]
}

// Format returns the label text for t. opts.IrregularMonth takes
// precedence over opts.Fmt, which is a strftime format. Without
// either, the text follows a fixed convention for cadence c, such as
// "2006" for years, "Q1 2006" for quarters and "Jan 2006" for
// months.
func Format(t time.Time, c freq.Code, opts Options) string {
	switch {
	case opts.IrregularMonth:
		return IrregularMonth(t)
	case opts.Fmt != "":
		return strftime.Format(opts.Fmt, t)
	}
	switch c {
	case freq.Year:
		return t.Format("2006")
	case freq.Quarter:
		return fmt.Sprintf("Q%d %d", (t.Month()-1)/3+1, t.Year())
	case freq.Month:
		return t.Format("Jan 2006")
	case freq.Week, freq.Day, freq.BusinessDay, freq.None:
		return t.Format("2006-01-02")
	case freq.Hour:
		return t.Format("2006-01-02 15:00")
	case freq.Minute:
		return t.Format("2006-01-02 15:04")
	case freq.Second:
		return t.Format("2006-01-02 15:04:05")
	}
	return t.Format("15:04:05.000000")
}
