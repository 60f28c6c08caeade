// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsexhibit/exhibit/exhibit"
	"github.com/tsexhibit/exhibit/freq"
	"github.com/tsexhibit/exhibit/internal/book"
	"github.com/tsexhibit/exhibit/internal/config"
	"github.com/tsexhibit/exhibit/series"
	"github.com/tsexhibit/exhibit/ticks"
)

func init() {
	logger = zerolog.Nop()
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStringList(t *testing.T) {
	var l stringList
	require.NoError(t, l.Set(`2020-01-01 "2020-06-30"`))
	require.NoError(t, l.Set("2021-01-01"))
	assert.Equal(t, stringList{"2020-01-01", "2020-06-30", "2021-01-01"}, l)
	assert.Equal(t, "2020-01-01,2020-06-30,2021-01-01", l.String())
	assert.Error(t, l.Set(`"unterminated`))
}

func TestTickOptions(t *testing.T) {
	old := tickFlags
	defer func() { tickFlags = old }()

	tickFlags.freq = "M"
	tickFlags.display = "A"
	tickFlags.labelDates = stringList{"2020-06-30"}
	tickFlags.center = true
	tickFlags.start = "2020-01-01"
	opts, err := tickOptions("")
	require.NoError(t, err)
	assert.Equal(t, freq.Of(freq.Month), opts.Freq)
	assert.Equal(t, freq.Of(freq.Year), opts.Display)
	assert.Equal(t, []time.Time{date(2020, 6, 30)}, opts.LabelDates)
	assert.Equal(t, date(2020, 1, 1), opts.Start)
	assert.True(t, opts.Center)

	tickFlags.minor = "fortnight"
	_, err = tickOptions("")
	assert.ErrorIs(t, err, freq.ErrUnrecognizedFrequency)

	tickFlags.minor = ""
	tickFlags.end = "31/12/2020"
	_, err = tickOptions("")
	assert.ErrorContains(t, err, "-end: bad date")
	tickFlags.start = "01/01/2020"
	tickFlags.labelDates = stringList{"30/06/2020"}
	opts, err = tickOptions("02/01/2006")
	require.NoError(t, err)
	assert.Equal(t, date(2020, 1, 1), opts.Start)
	assert.Equal(t, []time.Time{date(2020, 6, 30)}, opts.LabelDates)
	assert.Equal(t, date(2020, 12, 31), opts.End)
}

func TestTickFlagUsage(t *testing.T) {
	usage := cmdTicksFlags.Lookup("irregular-month").Usage
	for _, m := range []time.Month{time.January, time.May, time.June, time.September} {
		assert.Contains(t, usage, ticks.IrregularMonth(date(2020, m, 1)))
	}
	assert.Equal(t, "true", cmdTicksFlags.Lookup("tick-centering").DefValue)
}

func TestPrintPlan(t *testing.T) {
	p := &ticks.Plan{
		Start:  date(2020, 1, 1),
		End:    date(2021, 12, 31),
		Native: freq.Of(freq.Month),
		Freq:   freq.Of(freq.Year),
		Major:  []time.Time{date(2020, 1, 1), date(2021, 1, 1)},
		Minor:  []time.Time{date(2020, 7, 1), date(2021, 7, 1)},
		Labels: []ticks.Label{
			{Pos: date(2020, 1, 1), Center: date(2020, 7, 1), Text: "2020"},
			{Pos: date(2021, 1, 1), Center: date(2021, 7, 1), Text: "2021"},
		},
	}
	var buf bytes.Buffer
	printPlan(&buf, p, false)
	out := buf.String()
	assert.Contains(t, out, "range:  2020-01-01 to 2021-12-31\n")
	assert.Contains(t, out, "major:  2\n")
	assert.Regexp(t, `tick +center +label`, out)
	assert.Regexp(t, `2021-01-01 +2021-07-01 +2021`, out)
	assert.NotRegexp(t, `(?m)^2020-07-01`, out)

	buf.Reset()
	printPlan(&buf, p, true)
	assert.Regexp(t, `(?m)^2020-07-01`, buf.String())

	buf.Reset()
	printPlan(&buf, &ticks.Plan{}, false)
	assert.Contains(t, buf.String(), "no labels")
}

func TestStamp(t *testing.T) {
	assert.Equal(t, "2020-03-01", stamp(date(2020, 3, 1)))
	assert.Equal(t, "2020-03-01T09:30:00Z", stamp(time.Date(2020, 3, 1, 9, 30, 0, 0, time.UTC)))
}

func TestPrintFrequencies(t *testing.T) {
	monthly, err := series.New("ip", []time.Time{date(2020, 1, 1), date(2020, 2, 1), date(2020, 3, 1)}, []float64{1, 2, 3})
	require.NoError(t, err)
	odd, err := series.New("odd", []time.Time{date(2020, 1, 1), date(2020, 1, 2), date(2020, 1, 9)}, []float64{1, 2, 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	printFrequencies(&buf, []string{"a.txt", "b.txt"}, []*series.Series{monthly, odd})
	out := buf.String()
	assert.Regexp(t, `(?m)a\.txt +ip +3 +2020-01-01 +2020-03-01 +M *$`, out)
	assert.Regexp(t, `b\.txt +odd +3 +2020-01-01 +2020-01-09 +\?`, out)
}

const renderBookYAML = `
pages:
  - title: Test
    rows: 1
    cols: 2
    panels:
      - alias: a
        series: [s.txt]
      - alias: b
        col: 1
        series: [s.txt]
        display: Q
`

func TestRenderBook(t *testing.T) {
	dir := t.TempDir()
	var data bytes.Buffer
	data.WriteString("name: s\n")
	for d := date(2020, 1, 1); d.Before(date(2021, 1, 1)); d = d.AddDate(0, 1, 0) {
		data.WriteString(d.Format("2006-01-02") + " 1.5\n")
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "s.txt"), data.Bytes(), 0666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "book.yaml"), []byte(renderBookYAML), 0666))

	b, err := book.Load(filepath.Join(dir, "book.yaml"))
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, renderBook(&out, b, &config.Config{MaxTicks: 6, DPI: 50}, 50))

	img, err := png.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, 425, img.Bounds().Dx())
	assert.Equal(t, 550, img.Bounds().Dy())
}

func TestRenderFailureKeepsOutput(t *testing.T) {
	dir := t.TempDir()
	bookPath := filepath.Join(dir, "book.yaml")
	outPath := filepath.Join(dir, "out.png")
	require.NoError(t, os.WriteFile(bookPath, []byte(renderBookYAML), 0666))
	require.NoError(t, os.WriteFile(outPath, []byte("previous"), 0666))

	defer func(c *config.Config) { cfg = c }(cfg)
	cfg = &config.Config{MaxTicks: 6, DPI: 50}
	defer func() { render.out, render.dpi = "", 0 }()

	// s.txt does not exist, so the render fails before any output.
	require.NoError(t, cmdRenderFlags.Parse([]string{"-o", outPath, bookPath}))
	require.Error(t, cmdRender())
	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(got))

	missing := filepath.Join(dir, "fresh.png")
	require.NoError(t, cmdRenderFlags.Parse([]string{"-o", missing, bookPath}))
	require.Error(t, cmdRender())
	_, err = os.Stat(missing)
	assert.True(t, os.IsNotExist(err), "failed render created %s", missing)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "x.png")
	require.NoError(t, writeFile(name, []byte("data")))
	got, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "data", string(got))

	assert.Error(t, writeFile(filepath.Join(dir, "no", "such", "dir.png"), nil))
}

func TestApplyConfig(t *testing.T) {
	p := exhibit.NewPage(1, 1, exhibit.Landscape)
	require.NoError(t, p.Add(&exhibit.Panel{Alias: "a"}, 0, 0, 1, 1))
	require.NoError(t, p.Add(&exhibit.Panel{Alias: "b", Ticks: ticks.Options{MaxTicks: 4}}, 0, 0, 1, 1))

	applyConfig(p, &config.Config{MaxTicks: 9, PageWidth: 8.27, PageHeight: 11.69})
	assert.Equal(t, 11.69, p.Width)
	assert.Equal(t, 8.27, p.Height)
	assert.Equal(t, 9, p.Panel("a").Ticks.MaxTicks)
	assert.Equal(t, 4, p.Panel("b").Ticks.MaxTicks)
}
