// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exhibit

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsexhibit/exhibit/freq"
	"github.com/tsexhibit/exhibit/series"
	"github.com/tsexhibit/exhibit/ticks"
	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/draw"
)

func TestPartition(t *testing.T) {
	rows, cols, err := Partition(0, 1, 0, 1, 2, 2, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, .5, 0}, rows)
	assert.Equal(t, []float64{0, .5, 1}, cols)

	rows, cols, err = Partition(.1, .9, 0, 1, 2, 3, []float64{3, 1}, []float64{1, 1, 2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, .25, 0}, rows, 1e-9)
	assert.InDeltaSlice(t, []float64{.1, .3, .5, .9}, cols, 1e-9)

	for _, test := range []struct {
		nrow, ncol int
		rowSizes   []float64
	}{
		{0, 1, nil},
		{2, 1, []float64{1}},
		{2, 1, []float64{1, -1}},
	} {
		_, _, err := Partition(0, 1, 0, 1, test.nrow, test.ncol, test.rowSizes, nil)
		assert.Error(t, err, "%+v", test)
	}
}

func quarterly(t *testing.T) *series.Series {
	t.Helper()
	var ts []time.Time
	var vs []float64
	for d := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC); d.Year() < 2006; d = d.AddDate(0, 3, 0) {
		ts = append(ts, d)
		vs = append(vs, float64(len(vs)%7))
	}
	s, err := series.New("gdp", ts, vs)
	require.NoError(t, err)
	return s
}

func TestPanelChart(t *testing.T) {
	pn := &Panel{
		Alias:  "gdp",
		Series: []*series.Series{quarterly(t)},
		Ticks:  ticks.Options{Display: freq.Of(freq.Year), Minor: freq.Of(freq.Quarter), Fmt: "%Y", Center: true},
	}
	ch, err := pn.Chart(400, 300)
	require.NoError(t, err)
	assert.Len(t, ch.XAxis.Ticks, 6)
	assert.Equal(t, "2000", ch.XAxis.Ticks[0].Label)
	assert.Len(t, ch.XAxis.GridLines, 6+24)
	assert.Len(t, ch.Series, 1)
	assert.Nil(t, ch.YAxis.Range)

	_, err = (&Panel{Alias: "empty"}).Chart(400, 300)
	assert.Error(t, err)
}

func TestPanelFlatSeries(t *testing.T) {
	s, err := series.New("flat", []time.Time{time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)}, []float64{5})
	require.NoError(t, err)
	pn := &Panel{Alias: "flat", Series: []*series.Series{s}, Ticks: ticks.Options{Freq: freq.Of(freq.Month)}}
	ch, err := pn.Chart(400, 300)
	require.NoError(t, err)
	require.NotNil(t, ch.YAxis.Range)
	assert.Equal(t, 4.0, ch.YAxis.Range.GetMin())
	assert.Equal(t, 6.0, ch.YAxis.Range.GetMax())

	// A single instant gets one native period of x-axis.
	require.NotNil(t, ch.XAxis.Range)
	assert.Equal(t, chart.TimeToFloat64(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)), ch.XAxis.Range.GetMin())
	assert.Equal(t, chart.TimeToFloat64(time.Date(2000, 2, 1, 0, 0, 0, 0, time.UTC)), ch.XAxis.Range.GetMax())

	img, err := pn.Render(400, 300)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 400, 300), img.Bounds())
	assert.Positive(t, nonWhite(img, img.Bounds()))
}

func TestAxisEnd(t *testing.T) {
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, test := range []struct {
		plan ticks.Plan
		want time.Time
	}{
		{ticks.Plan{Start: start, End: start.AddDate(1, 0, 0), Native: freq.Of(freq.Month)}, start.AddDate(1, 0, 0)},
		{ticks.Plan{Start: start, End: start, Native: freq.Of(freq.Quarter)}, start.AddDate(0, 3, 0)},
		{ticks.Plan{Start: start, End: start}, start.Add(24 * time.Hour)},
	} {
		if got := axisEnd(&test.plan); !got.Equal(test.want) {
			t.Errorf("axisEnd(%v..%v, %v) = %v, want %v", test.plan.Start, test.plan.End, test.plan.Native, got, test.want)
		}
	}
}

func TestPageAdd(t *testing.T) {
	p := NewPage(2, 2, Landscape)
	assert.Equal(t, Landscape, p.Orientation())
	require.NoError(t, p.Add(&Panel{Alias: "a"}, 0, 0, 1, 2))
	assert.Error(t, p.Add(&Panel{Alias: "a"}, 1, 0, 2, 1))
	assert.Error(t, p.Add(&Panel{Alias: "b"}, 1, 1, 3, 2))
	assert.Error(t, p.Add(&Panel{Alias: "c"}, 1, 1, 1, 2))
	assert.NotNil(t, p.Panel("a"))
	assert.Nil(t, p.Panel("b"))
	require.NoError(t, p.Add(&Panel{Alias: "d"}, 1, 1, 2, 2))
	assert.Equal(t, []string{"a", "d"}, p.Aliases())
}

func nonWhite(img image.Image, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if cr, cg, cb, _ := img.At(x, y).RGBA(); cr != 0xffff || cg != 0xffff || cb != 0xffff {
				n++
			}
		}
	}
	return n
}

func TestPageRender(t *testing.T) {
	var logs bytes.Buffer
	p := NewPage(2, 1, Portrait)
	p.Title = "Output"
	p.LeftCaption = "Chart 1"
	p.Log = zerolog.New(&logs).Level(zerolog.DebugLevel)
	pn := &Panel{
		Alias:     "gdp",
		Title:     "Real GDP",
		Footnotes: []string{"Source: test"},
		Series:    []*series.Series{quarterly(t)},
		Ticks:     ticks.Options{Display: freq.Of(freq.Year)},
		CenterObs: true,
	}
	require.NoError(t, p.Add(pn, 0, 0, 1, 1))

	img, err := p.Render()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 850, 1100), img.Bounds())

	r, err := p.Bounds("gdp")
	require.NoError(t, err)
	assert.Equal(t, 155, r.Min.Y)
	assert.Positive(t, nonWhite(img, r))
	// The second row is empty.
	assert.Zero(t, nonWhite(img, image.Rect(r.Min.X, r.Max.Y+40, r.Max.X, 1000)))
	// Title.
	assert.Positive(t, nonWhite(img, image.Rect(0, 60, 850, 85)))

	assert.Contains(t, logs.String(), "rendering panel")

	var buf bytes.Buffer
	require.NoError(t, p.WritePNG(&buf))
	_, err = png.Decode(&buf)
	assert.NoError(t, err)
}

func TestDrawText(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 20))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	drawText(img, 50, 15, "Hi", AlignCenter, color.Black)
	assert.Positive(t, nonWhite(img, image.Rect(40, 0, 60, 20)))
	assert.Zero(t, nonWhite(img, image.Rect(0, 0, 40, 20)))
}

func solid(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestMerge(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	out, err := Merge([][]byte{solid(t, 10, 5, red), solid(t, 20, 7, blue)})
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 17), img.Bounds())

	r, _, b, _ := img.At(10, 4).RGBA()
	assert.Greater(t, r, uint32(0xf000))
	assert.Less(t, b, uint32(0x1000))
	r, _, b, _ = img.At(10, 14).RGBA()
	assert.Less(t, r, uint32(0x1000))
	assert.Greater(t, b, uint32(0xf000))

	_, err = Merge(nil)
	assert.Error(t, err)
	_, err = Merge([][]byte{[]byte("not a png")})
	if assert.Error(t, err) {
		assert.True(t, strings.HasPrefix(err.Error(), "page 1:"), err.Error())
	}
}
