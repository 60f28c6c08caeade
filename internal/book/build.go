// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package book

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tsexhibit/exhibit/exhibit"
	"github.com/tsexhibit/exhibit/series"
)

// ParseAlign parses a text alignment. The empty string is left.
func ParseAlign(s string) (exhibit.Align, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return exhibit.AlignLeft, nil
	case "center":
		return exhibit.AlignCenter, nil
	case "right":
		return exhibit.AlignRight, nil
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

// ReadSeries reads every series in the named file. Files ending in
// .csv are read as a single CSV series named after the file;
// anything else is in the series text format.
func ReadSeries(path, dateLayout string) ([]*series.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		s, err := series.ReadCSV(f, series.CSVOptions{Name: name, DateLayout: dateLayout})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return []*series.Series{s}, nil
	}
	ss, err := series.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(ss) == 0 {
		return nil, fmt.Errorf("%s: no series", path)
	}
	return ss, nil
}

// Build reads the series of every panel and lays the book out as
// exhibit pages. dpi of 0 means exhibit.DefaultDPI.
func (b *Book) Build(dpi int, log zerolog.Logger) ([]*exhibit.Page, error) {
	var pages []*exhibit.Page
	for i, pg := range b.Pages {
		o := exhibit.Portrait
		if pg.Orientation == "landscape" {
			o = exhibit.Landscape
		}
		p := exhibit.NewPage(pg.Rows, pg.Cols, o)
		p.RowSizes, p.ColSizes = pg.RowSizes, pg.ColSizes
		p.Title = pg.Title
		p.LeftCaption, p.RightCaption = pg.LeftCaption, pg.RightCaption
		if dpi > 0 {
			p.DPI = dpi
		}
		p.Log = log.With().Int("page", i+1).Logger()
		for _, t := range pg.Texts {
			a, err := ParseAlign(t.Align)
			if err != nil {
				return nil, fmt.Errorf("page %d: %w", i+1, err)
			}
			p.Texts = append(p.Texts, exhibit.Text{X: t.X, Y: t.Y, S: t.Text, Align: a})
		}

		for _, pn := range pg.Panels {
			opts, err := pn.TickOptions(b.DateLayout)
			if err != nil {
				return nil, fmt.Errorf("page %d: panel %q: %w", i+1, pn.Alias, err)
			}
			xp := &exhibit.Panel{
				Alias:        pn.Alias,
				Title:        pn.Title,
				LeftCaption:  pn.LeftCaption,
				RightCaption: pn.RightCaption,
				Footnotes:    pn.Footnotes,
				Ticks:        opts,
				CenterObs:    pn.CenterObs,
				YRange:       pn.YRange,
			}
			for _, path := range b.SeriesPaths(pn) {
				ss, err := ReadSeries(path, b.DateLayout)
				if err != nil {
					return nil, fmt.Errorf("page %d: panel %q: %w", i+1, pn.Alias, err)
				}
				xp.Series = append(xp.Series, ss...)
			}
			log.Debug().Int("page", i+1).Str("panel", pn.Alias).Int("series", len(xp.Series)).Msg("loaded panel")
			if err := p.Add(xp, pn.Row, pn.Col, pn.Row+pn.RowSpan, pn.Col+pn.ColSpan); err != nil {
				return nil, fmt.Errorf("page %d: %w", i+1, err)
			}
		}
		pages = append(pages, p)
	}
	return pages, nil
}
