// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsexhibit/exhibit/freq"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	for _, test := range []struct {
		input string
		want  []*Series
	}{
		// Test anonymous series.
		{`
2020-01-01 1
2020-01-02 2.5`,
			[]*Series{
				{"", []time.Time{date(2020, 1, 1), date(2020, 1, 2)}, []float64{1, 2.5}, freq.Freq{}, map[string]string{}},
			},
		},

		// Test named series with annotation and comments.
		{`
# GDP
name: gdp
freq: Q-DEC
unit: bn

2000-03-31  100
2000-06-30  101`,
			[]*Series{
				{"gdp", []time.Time{date(2000, 3, 31), date(2000, 6, 30)}, []float64{100, 101}, freq.Of(freq.Quarter), map[string]string{"unit": "bn"}},
			},
		},

		// Test sticky configuration and timestamps with spaces.
		{`
freq: h
layout: 2006-01-02 15:04
name: a
2020-01-01 10:00 1
name: b
2020-01-01 11:00 2`,
			[]*Series{
				{"a", []time.Time{time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC)}, []float64{1}, freq.Of(freq.Hour), map[string]string{}},
				{"b", []time.Time{time.Date(2020, 1, 1, 11, 0, 0, 0, time.UTC)}, []float64{2}, freq.Of(freq.Hour), map[string]string{}},
			},
		},

		// Test empty input.
		{``, nil},
	} {
		got, err := Parse(strings.NewReader(test.input))
		if err != nil {
			t.Errorf("parsing %q: %v", test.input, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("parsing %q:\ngot:\n%v\nwant:\n%v", test.input, got, test.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		input string
		line  int
	}{
		{"2020-01-01", 1},
		{"2020-01-01 x", 1},
		{"name: a\nJan 1 3", 2},
		{"freq: fortnightly", 1},
		{"2020-01-02 1\n2020-01-01 2", 2},
		{"2020-01-01 1\n\n2020-01-01 2", 3},
	} {
		_, err := Parse(strings.NewReader(test.input))
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("parsing %q: got %v, want SyntaxError", test.input, err)
			continue
		}
		if se.Line != test.line {
			t.Errorf("parsing %q: error on line %d, want %d", test.input, se.Line, test.line)
		}
	}
}

func TestPrintRoundTrip(t *testing.T) {
	ss := []*Series{
		{Name: "gdp", Timestamps: []time.Time{date(2000, 3, 31), date(2000, 6, 30)}, Values: []float64{100.25, 1e9}, Freq: freq.Of(freq.Quarter), Config: map[string]string{"unit": "bn"}},
		{Name: "ticks", Timestamps: []time.Time{time.Date(2000, 1, 1, 9, 30, 0, 5, time.UTC)}, Values: []float64{-1}, Freq: freq.Freq{Code: freq.Minute, N: 5}, Config: map[string]string{"unit": "bn"}},
	}
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, ss))
	got, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, ss, got)
}

func TestReadCSV(t *testing.T) {
	const input = `ds,y,other
2020-01-01,1,a
2020-02-01,NA,b
2020-03-01,3,c
`
	s, err := ReadCSV(strings.NewReader(input), CSVOptions{Freq: "MS"})
	require.NoError(t, err)
	assert.Equal(t, "y", s.Name)
	assert.Equal(t, freq.Of(freq.Month), s.Freq)
	assert.Equal(t, []time.Time{date(2020, 1, 1), date(2020, 3, 1)}, s.Timestamps)
	assert.Equal(t, []float64{1, 3}, s.Values)

	s, err = ReadCSV(strings.NewReader("when;level\n01/02/2021;5\n"), CSVOptions{
		DateColumn: "when", ValueColumn: "level", DateLayout: "01/02/2006", Name: "lvl", Comma: ';',
	})
	require.NoError(t, err)
	assert.Equal(t, "lvl", s.Name)
	assert.Equal(t, []time.Time{date(2021, 1, 2)}, s.Timestamps)

	_, err = ReadCSV(strings.NewReader("a,b\n1,2\n"), CSVOptions{})
	var se *SyntaxError
	assert.ErrorAs(t, err, &se)

	_, err = ReadCSV(strings.NewReader("date,value\n2020-01-01,x\n"), CSVOptions{})
	if assert.ErrorAs(t, err, &se) {
		assert.Equal(t, 2, se.Line)
	}
}

func TestClip(t *testing.T) {
	s, err := New("x", []time.Time{date(2020, 1, 1), date(2020, 1, 2), date(2020, 1, 3), date(2020, 1, 4)}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	c := s.Clip(date(2020, 1, 2), date(2020, 1, 3))
	assert.Equal(t, []float64{2, 3}, c.Values)
	assert.Equal(t, date(2020, 1, 2), c.Start())
	assert.Equal(t, date(2020, 1, 3), c.End())

	assert.Equal(t, 4, s.Clip(time.Time{}, time.Time{}).Len())
	assert.Equal(t, 0, s.Clip(date(2021, 1, 1), time.Time{}).Len())
	assert.True(t, s.Clip(date(2021, 1, 1), time.Time{}).End().IsZero())
}

func TestNew(t *testing.T) {
	_, err := New("x", []time.Time{date(2020, 1, 1)}, nil)
	assert.Error(t, err)
	_, err = New("x", []time.Time{date(2020, 1, 2), date(2020, 1, 1)}, []float64{1, 2})
	assert.Error(t, err)
}

func TestFrequency(t *testing.T) {
	s, err := New("x", []time.Time{date(2020, 1, 1), date(2020, 1, 2), date(2020, 1, 3)}, []float64{1, 2, 3})
	require.NoError(t, err)
	f, err := s.Frequency()
	require.NoError(t, err)
	assert.Equal(t, freq.Of(freq.Day), f)

	s.Freq = freq.Of(freq.BusinessDay)
	f, err = s.Frequency()
	require.NoError(t, err)
	assert.Equal(t, freq.Of(freq.BusinessDay), f)

	s, err = New("y", []time.Time{date(2020, 1, 1)}, []float64{1})
	require.NoError(t, err)
	_, err = s.Frequency()
	assert.ErrorIs(t, err, ErrNoFrequency)
	assert.ErrorIs(t, err, freq.ErrInferenceFailed)
}
