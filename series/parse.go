// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tsexhibit/exhibit/freq"
)

// DefaultLayouts are the timestamp layouts tried, in order, when a
// series file does not specify a layout.
var DefaultLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
}

// A SyntaxError reports malformed input to Parse or ReadCSV.
type SyntaxError struct {
	Line int // 1-based line (or CSV record) number
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

var configRe = regexp.MustCompile(`^(\p{Ll}[^\s:]*):(?:[ \t]+(.*))?$`)

// Parse parses a series file from r.
//
// A series file consists of configuration lines of the form
// "key: value" and data lines of the form "timestamp value". Blank
// lines and lines starting with "#" are ignored. Configuration applies
// to all following data lines until it is changed. The keys are:
//
//	name    starts a new series with the given name
//	freq    frequency annotation, in any form accepted by freq.Parse
//	layout  time.Parse layout for timestamps (default DefaultLayouts)
//
// Other keys are recorded in Series.Config. A timestamp may contain
// spaces; the value is the last field of a data line. Within a series
// timestamps must be strictly increasing.
func Parse(r io.Reader) ([]*Series, error) {
	var (
		out    []*Series
		cur    *Series
		config = make(map[string]string)
		f      freq.Freq
		layout string
		lineno int
	)
	syntax := func(format string, args ...interface{}) error {
		return &SyntaxError{lineno, fmt.Sprintf(format, args...)}
	}
	start := func(name string) {
		cfg := make(map[string]string, len(config))
		for k, v := range config {
			cfg[k] = v
		}
		cur = &Series{Name: name, Freq: f, Config: cfg}
		out = append(out, cur)
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Configuration lines.
		if m := configRe.FindStringSubmatch(line); m != nil {
			key, val := m[1], strings.TrimSpace(m[2])
			switch key {
			case "name":
				start(val)
			case "freq":
				pf, err := freq.Parse(val)
				if err != nil {
					return nil, syntax("%v", err)
				}
				f = pf
				if cur != nil && cur.Len() == 0 {
					cur.Freq = f
				}
			case "layout":
				layout = val
			default:
				config[key] = val
				if cur != nil && cur.Len() == 0 {
					cur.Config[key] = val
				}
			}
			continue
		}

		// Data lines.
		i := strings.LastIndexAny(line, " \t")
		if i < 0 {
			return nil, syntax("expected timestamp and value")
		}
		stamp, sval := strings.TrimSpace(line[:i]), line[i+1:]
		t, err := ParseTime(stamp, layout)
		if err != nil {
			return nil, syntax("bad timestamp %q", stamp)
		}
		v, err := strconv.ParseFloat(sval, 64)
		if err != nil {
			return nil, syntax("bad value %q", sval)
		}
		if cur == nil {
			start("")
		}
		if n := cur.Len(); n > 0 && !t.After(cur.Timestamps[n-1]) {
			return nil, syntax("timestamp %s not after previous timestamp %s", stamp, cur.Timestamps[n-1].Format(time.RFC3339Nano))
		}
		cur.Timestamps = append(cur.Timestamps, t)
		cur.Values = append(cur.Values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseTime parses a timestamp with layout, or with the first of
// DefaultLayouts that fits if layout is empty.
func ParseTime(s, layout string) (time.Time, error) {
	if layout != "" {
		return time.Parse(layout, s)
	}
	var err error
	for _, l := range DefaultLayouts {
		var t time.Time
		if t, err = time.Parse(l, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
