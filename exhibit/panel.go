// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exhibit

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"time"

	"github.com/tsexhibit/exhibit/series"
	"github.com/tsexhibit/exhibit/ticks"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// A Panel is one time-series chart.
type Panel struct {
	// Alias names the panel within its page.
	Alias string

	Title                     string
	LeftCaption, RightCaption string
	Footnotes                 []string

	// Series are drawn as lines. The first series determines the
	// native frequency of the date axis.
	Series []*series.Series

	// Plan is the date axis. If nil, it is planned from the first
	// series with Ticks.
	Plan  *ticks.Plan
	Ticks ticks.Options

	// CenterObs moves each observation to the middle of its period.
	CenterObs bool

	// YRange fixes the value axis to [YRange[0], YRange[1]] when it
	// has two elements.
	YRange []float64
}

var seriesColors = []drawing.Color{
	chart.ColorBlack, chart.ColorBlue, chart.ColorRed, chart.ColorGreen, chart.ColorOrange,
}

var gridColor = drawing.ColorFromHex("d0d0d0")

// plan returns the panel's date axis, planning it if necessary.
func (pn *Panel) plan() (*ticks.Plan, error) {
	if pn.Plan != nil {
		return pn.Plan, nil
	}
	if len(pn.Series) == 0 {
		return nil, errors.New("no series")
	}
	return ticks.NewPlan(pn.Series[0], pn.Ticks)
}

// Chart returns the go-chart chart for the panel at the given pixel
// size.
func (pn *Panel) Chart(width, height int) (*chart.Chart, error) {
	p, err := pn.plan()
	if err != nil {
		return nil, err
	}

	xa := chart.XAxis{
		Range:          &chart.ContinuousRange{Min: chart.TimeToFloat64(p.Start), Max: chart.TimeToFloat64(axisEnd(p))},
		GridMajorStyle: chart.Style{StrokeColor: gridColor, StrokeWidth: 1},
		GridMinorStyle: chart.Style{StrokeColor: gridColor, StrokeWidth: 0.5},
	}
	for _, l := range p.Labels {
		xa.Ticks = append(xa.Ticks, chart.Tick{Value: chart.TimeToFloat64(l.Center), Label: l.Text})
	}
	for _, t := range p.Major {
		xa.GridLines = append(xa.GridLines, chart.GridLine{Value: chart.TimeToFloat64(t)})
	}
	for _, t := range p.Minor {
		xa.GridLines = append(xa.GridLines, chart.GridLine{Value: chart.TimeToFloat64(t), IsMinor: true})
	}

	var ya chart.YAxis
	if len(pn.YRange) == 2 {
		ya.Range = &chart.ContinuousRange{Min: pn.YRange[0], Max: pn.YRange[1]}
	}

	ch := &chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 24}},
		XAxis:      xa,
		YAxis:      ya,
	}
	for i, s := range pn.Series {
		s = s.Clip(p.Start, p.End)
		if s.Len() == 0 {
			continue
		}
		xs := s.Timestamps
		if pn.CenterObs {
			if xs, err = ticks.CenterObs(xs, p.Native, 1, 1, 1); err != nil {
				return nil, fmt.Errorf("series %q: %w", s.Name, err)
			}
		}
		ys := s.Values
		col := seriesColors[i%len(seriesColors)]
		st := chart.Style{StrokeColor: col, StrokeWidth: 1.5}
		if len(xs) == 1 {
			// A line needs two points. Draw the lone one as a dot.
			xs = []time.Time{xs[0], xs[0].Add(time.Nanosecond)}
			ys = []float64{ys[0], ys[0]}
			st.DotColor, st.DotWidth = col, 4
		}
		ch.Series = append(ch.Series, chart.TimeSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   st,
		})
	}
	if len(ch.Series) == 0 {
		return nil, errors.New("no observations in range")
	}
	if ch.YAxis.Range == nil {
		if lo, hi := valueBounds(ch.Series); lo == hi {
			// go-chart cannot scale a flat line.
			ch.YAxis.Range = &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
		}
	}
	if len(ch.Series) > 1 {
		ch.Elements = []chart.Renderable{chart.Legend(ch)}
	}
	return ch, nil
}

// axisEnd returns the right end of the x-axis. A plan covering a
// single instant is widened to one native period, since go-chart
// cannot scale an empty range.
func axisEnd(p *ticks.Plan) time.Time {
	if p.End.After(p.Start) {
		return p.End
	}
	if end := p.Native.Next(p.Start); end.After(p.Start) {
		return end
	}
	return p.Start.Add(24 * time.Hour)
}

func valueBounds(ss []chart.Series) (lo, hi float64) {
	first := true
	for _, s := range ss {
		for _, v := range s.(chart.TimeSeries).YValues {
			if first || v < lo {
				lo = v
			}
			if first || v > hi {
				hi = v
			}
			first = false
		}
	}
	return lo, hi
}

// Render draws the panel at the given pixel size.
func (pn *Panel) Render(width, height int) (image.Image, error) {
	ch, err := pn.Chart(width, height)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}
