// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tsexhibit/exhibit/freq"
)

// CSVOptions controls ReadCSV.
type CSVOptions struct {
	// DateColumn and ValueColumn name the header columns holding the
	// timestamps and values. If empty, the common names "date",
	// "ds" and "Date", and "value", "y" and "Value" are tried.
	DateColumn  string
	ValueColumn string

	// DateLayout is the time.Parse layout of the timestamps. If
	// empty, DefaultLayouts are tried.
	DateLayout string

	// Name is the name of the returned series. If empty, the value
	// column's header is used.
	Name string

	// Freq is an optional frequency annotation for the series.
	Freq string

	// Comma is the field delimiter. If zero, ',' is used.
	Comma rune
}

var (
	defaultDateColumns  = []string{"date", "ds", "Date"}
	defaultValueColumns = []string{"value", "y", "Value"}
)

// ReadCSV reads a single series from CSV data with a header row.
// Records with a missing value ("", "NA", "NaN" or "null") are
// skipped.
func ReadCSV(r io.Reader, opts CSVOptions) (*Series, error) {
	f, err := freq.Parse(opts.Freq)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("empty CSV input")
	} else if err != nil {
		return nil, err
	}
	dateIdx := column(header, opts.DateColumn, defaultDateColumns)
	valueIdx := column(header, opts.ValueColumn, defaultValueColumns)
	if dateIdx < 0 {
		return nil, &SyntaxError{1, fmt.Sprintf("no date column in header %q", header)}
	}
	if valueIdx < 0 {
		return nil, &SyntaxError{1, fmt.Sprintf("no value column in header %q", header)}
	}

	s := &Series{Name: opts.Name, Freq: f}
	if s.Name == "" {
		s.Name = strings.TrimSpace(header[valueIdx])
	}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if dateIdx >= len(record) || valueIdx >= len(record) {
			return nil, &SyntaxError{line, "short record"}
		}

		sval := strings.TrimSpace(record[valueIdx])
		switch sval {
		case "", "NA", "NaN", "null":
			continue
		}
		v, err := strconv.ParseFloat(sval, 64)
		if err != nil {
			return nil, &SyntaxError{line, fmt.Sprintf("bad value %q", sval)}
		}
		stamp := strings.TrimSpace(record[dateIdx])
		t, err := ParseTime(stamp, opts.DateLayout)
		if err != nil {
			return nil, &SyntaxError{line, fmt.Sprintf("bad timestamp %q", stamp)}
		}
		if n := s.Len(); n > 0 && !t.After(s.Timestamps[n-1]) {
			return nil, &SyntaxError{line, fmt.Sprintf("timestamp %s not after previous timestamp %s", stamp, s.Timestamps[n-1].Format(time.RFC3339Nano))}
		}
		s.Timestamps = append(s.Timestamps, t)
		s.Values = append(s.Values, v)
	}
	return s, nil
}

// column returns the index of the header column named want, or of
// the first of defaults if want is empty. It returns -1 if there is
// no such column.
func column(header []string, want string, defaults []string) int {
	names := defaults
	if want != "" {
		names = []string{want}
	}
	for _, name := range names {
		for i, h := range header {
			if strings.TrimSpace(h) == name {
				return i
			}
		}
	}
	return -1
}
