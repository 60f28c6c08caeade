// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package freq

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// aliases is the only translation boundary between external
// frequency vocabularies and Codes. Lookups try an exact match first
// and then a case-insensitive one; see folded.
var aliases = map[string]Code{
	// Current offset aliases.
	"Y": Year, "YS": Year, "YE": Year, "BY": Year, "BYS": Year, "BYE": Year,
	"Q": Quarter, "QS": Quarter, "QE": Quarter, "BQ": Quarter, "BQS": Quarter, "BQE": Quarter,
	"M": Month, "MS": Month, "ME": Month, "BM": Month, "BMS": Month, "BME": Month,
	"W":   Week,
	"B":   BusinessDay,
	"D":   Day,
	"h":   Hour,
	"min": Minute,
	"s":   Second,
	"ms":  Millisecond,
	"us":  Microsecond,
	"ns":  Nanosecond,

	// Deprecated aliases.
	"A": Year, "AS": Year, "BA": Year, "BAS": Year,
	"H": Hour,
	"T": Minute,
	"S": Second,
	"L": Millisecond,
	"U": Microsecond,
	"N": Nanosecond,

	// Long names.
	"annual": Year, "annually": Year, "yearly": Year, "year": Year,
	"quarterly": Quarter, "quarter": Quarter,
	"monthly": Month, "month": Month,
	"weekly": Week, "week": Week,
	"business": BusinessDay, "businessday": BusinessDay,
	"daily": Day, "day": Day,
	"hourly": Hour, "hour": Hour,
	"minutely": Minute, "minute": Minute,
	"secondly": Second, "second": Second,
	"millisecond": Millisecond,
	"microsecond": Microsecond,
	"nanosecond":  Nanosecond,
}

// offsetNames maps the names in date offset reprs, such as
// "<2 * QuarterEnds: startingMonth=12>", to Codes.
var offsetNames = map[string]Code{
	"YearEnd": Year, "YearBegin": Year, "BYearEnd": Year, "BYearBegin": Year,
	"QuarterEnd": Quarter, "QuarterBegin": Quarter, "BQuarterEnd": Quarter, "BQuarterBegin": Quarter,
	"MonthEnd": Month, "MonthBegin": Month, "BusinessMonthEnd": Month, "BusinessMonthBegin": Month,
	"Week":        Week,
	"BusinessDay": BusinessDay,
	"Day":         Day,
	"Hour":        Hour,
	"Minute":      Minute,
	"Second":      Second,
	"Milli":       Millisecond,
	"Micro":       Microsecond,
	"Nano":        Nanosecond,
}

// anchors lists the anchor suffixes ("W-SUN", "Q-DEC") that agree
// with the calendar alignment used for tick generation.
var anchors = map[Code]map[string]bool{
	Week:    {"SUN": true},
	Quarter: {"JAN": true, "APR": true, "JUL": true, "OCT": true, "MAR": true, "JUN": true, "SEP": true, "DEC": true},
	Year:    {"JAN": true, "DEC": true},
}

// folded maps lower-cased aliases to Codes. Aliases whose lower-cased
// forms collide with a different Code ("MS" and "ms") are left out, so
// they only match exactly.
var folded = func() map[string]Code {
	m := make(map[string]Code)
	ambiguous := make(map[string]bool)
	for k, c := range aliases {
		lk := strings.ToLower(k)
		if prev, ok := m[lk]; ok && prev != c {
			ambiguous[lk] = true
		}
		m[lk] = c
	}
	for k := range ambiguous {
		delete(m, k)
	}
	return m
}()

// Aliases returns every alias in the table, sorted.
func Aliases() []string {
	out := make([]string, 0, len(aliases))
	for k := range aliases {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Parse resolves a frequency shorthand to a Freq. It accepts the
// aliases in the table with an optional integer multiplier ("6M",
// "15min"), anchored forms ("W-SUN", "A-DEC") and date offset
// reprs ("<YearEnd: month=12>"). A multiplier must leave the nominal
// period length (see Freq.Approx) within a time.Duration. The empty
// string yields the zero Freq. Anything else fails with
// ErrUnrecognizedFrequency.
func Parse(s string) (Freq, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Freq{}, nil
	}
	var f Freq
	var ok bool
	if strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") {
		f, ok = parseOffset(s[1 : len(s)-1])
	} else {
		f, ok = parseShorthand(s)
	}
	if !ok {
		return Freq{}, fmt.Errorf("%w %q", ErrUnrecognizedFrequency, s)
	}
	return f, nil
}

// Normalize resolves a frequency shorthand to its canonical Code,
// dropping any multiplier.
func Normalize(s string) (Code, error) {
	f, err := Parse(s)
	if err != nil {
		return None, err
	}
	return f.Code, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Freq {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

func lookup(s string) (Code, bool) {
	if c, ok := aliases[s]; ok {
		return c, true
	}
	c, ok := folded[strings.ToLower(s)]
	return c, ok
}

func parseShorthand(s string) (Freq, bool) {
	n := 1
	i := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	if i > 0 {
		v, err := strconv.Atoi(s[:i])
		if err != nil || v <= 0 {
			return Freq{}, false
		}
		n, s = v, s[i:]
	}
	c, ok := lookup(s)
	if !ok {
		if i := strings.IndexByte(s, '-'); i > 0 {
			c, ok = lookup(s[:i])
			ok = ok && anchors[c][strings.ToUpper(s[i+1:])]
		}
	}
	if !ok || !fits(c, n) {
		return Freq{}, false
	}
	return Freq{c, n}, true
}

func parseOffset(s string) (Freq, bool) {
	// Drop parameters such as "startingMonth=12".
	if i := strings.IndexByte(s, ':'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	n := 1
	if i := strings.IndexByte(s, '*'); i >= 0 {
		v, err := strconv.Atoi(strings.TrimSpace(s[:i]))
		if err != nil || v <= 0 {
			return Freq{}, false
		}
		n, s = v, strings.TrimSpace(s[i+1:])
	}
	c, ok := offsetNames[s]
	if !ok {
		// Plural forms: "<5 * Minutes>".
		c, ok = offsetNames[strings.TrimSuffix(s, "s")]
	}
	if !ok || !fits(c, n) {
		return Freq{}, false
	}
	return Freq{c, n}, true
}
