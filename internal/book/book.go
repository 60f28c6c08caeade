// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package book reads YAML descriptions of multi-page exhibits.
package book

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tsexhibit/exhibit/freq"
	"github.com/tsexhibit/exhibit/series"
	"github.com/tsexhibit/exhibit/ticks"
	"gopkg.in/yaml.v3"
)

// Book is an ordered list of pages.
type Book struct {
	// DateLayout is the time.Parse layout of dates in the book. If
	// empty, the series package defaults are tried.
	DateLayout string `yaml:"date_layout"`

	Pages []Page `yaml:"pages"`

	// Dir is the directory series paths are relative to. Load sets
	// it to the directory of the book file.
	Dir string `yaml:"-"`
}

// Page describes one exhibit page.
type Page struct {
	Title        string    `yaml:"title"`
	LeftCaption  string    `yaml:"left_caption"`
	RightCaption string    `yaml:"right_caption"`
	Orientation  string    `yaml:"orientation"`
	Rows         int       `yaml:"rows"`
	Cols         int       `yaml:"cols"`
	RowSizes     []float64 `yaml:"row_sizes"`
	ColSizes     []float64 `yaml:"col_sizes"`
	Texts        []Text    `yaml:"texts"`
	Panels       []Panel   `yaml:"panels"`
}

// Text is free text on a page at fractional coordinates.
type Text struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Text  string  `yaml:"text"`
	Align string  `yaml:"align"`
}

// Panel describes one chart and its date axis.
type Panel struct {
	Alias        string   `yaml:"alias"`
	Title        string   `yaml:"title"`
	LeftCaption  string   `yaml:"left_caption"`
	RightCaption string   `yaml:"right_caption"`
	Footnotes    []string `yaml:"footnotes"`

	Row     int `yaml:"row"`
	Col     int `yaml:"col"`
	RowSpan int `yaml:"row_span"`
	ColSpan int `yaml:"col_span"`

	// Series are series files, in the series text format or CSV
	// (by extension). Every series in each file is drawn.
	Series []string `yaml:"series"`

	Freq             string    `yaml:"freq"`
	Display          string    `yaml:"display"`
	Minor            string    `yaml:"minor"`
	LabelDates       []string  `yaml:"label_dates"`
	LabelFreq        string    `yaml:"label_freq"`
	InferFreqFromFmt bool      `yaml:"infer_freq_from_fmt"`
	Fmt              string    `yaml:"fmt"`
	IrregularMonth   bool      `yaml:"irregular_month"`
	Center           *bool     `yaml:"center"`
	TickCentering    *bool     `yaml:"tick_centering"`
	CenterObs        bool      `yaml:"center_obs"`
	MaxTicks         int       `yaml:"max_ticks"`
	Start            string    `yaml:"start"`
	End              string    `yaml:"end"`
	YRange           []float64 `yaml:"y_range"`
}

// Load reads and validates the book in the named file.
func Load(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read book: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	b.Dir = filepath.Dir(path)
	return b, nil
}

// Parse parses and validates a book, filling in defaults.
func Parse(data []byte) (*Book, error) {
	b := &Book{}
	if err := yaml.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("parse book: %w", err)
	}
	b.setDefaults()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Book) setDefaults() {
	for i := range b.Pages {
		pg := &b.Pages[i]
		if pg.Orientation == "" {
			pg.Orientation = "portrait"
		}
		if pg.Rows == 0 {
			pg.Rows = 1
		}
		if pg.Cols == 0 {
			pg.Cols = 1
		}
		for j := range pg.Panels {
			pn := &pg.Panels[j]
			if pn.RowSpan == 0 {
				pn.RowSpan = 1
			}
			if pn.ColSpan == 0 {
				pn.ColSpan = 1
			}
			if pn.Alias == "" {
				pn.Alias = fmt.Sprintf("panel%d", j+1)
			}
		}
	}
}

// Validate checks that every page and panel is well formed.
func (b *Book) Validate() error {
	if len(b.Pages) == 0 {
		return fmt.Errorf("book has no pages")
	}
	for i, pg := range b.Pages {
		if err := b.validatePage(pg); err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
	}
	return nil
}

func (b *Book) validatePage(pg Page) error {
	switch pg.Orientation {
	case "portrait", "landscape":
	default:
		return fmt.Errorf("orientation must be portrait or landscape, got %q", pg.Orientation)
	}
	if pg.Rows < 1 || pg.Cols < 1 {
		return fmt.Errorf("grid %dx%d must be at least 1x1", pg.Rows, pg.Cols)
	}
	for _, t := range pg.Texts {
		if _, err := ParseAlign(t.Align); err != nil {
			return err
		}
	}
	seen := map[string]bool{}
	for _, pn := range pg.Panels {
		if seen[pn.Alias] {
			return fmt.Errorf("duplicate panel %q", pn.Alias)
		}
		seen[pn.Alias] = true
		if len(pn.Series) == 0 {
			return fmt.Errorf("panel %q: series is required", pn.Alias)
		}
		if pn.Row < 0 || pn.Col < 0 || pn.RowSpan < 1 || pn.ColSpan < 1 || pn.Row+pn.RowSpan > pg.Rows || pn.Col+pn.ColSpan > pg.Cols {
			return fmt.Errorf("panel %q: position (%d,%d) span %dx%d outside %dx%d grid", pn.Alias, pn.Row, pn.Col, pn.RowSpan, pn.ColSpan, pg.Rows, pg.Cols)
		}
		if len(pn.YRange) != 0 && len(pn.YRange) != 2 {
			return fmt.Errorf("panel %q: y_range must have 2 elements", pn.Alias)
		}
		if _, err := pn.TickOptions(b.DateLayout); err != nil {
			return fmt.Errorf("panel %q: %w", pn.Alias, err)
		}
	}
	return nil
}

// SeriesPaths returns the panel's series files resolved against the
// book's directory.
func (b *Book) SeriesPaths(pn Panel) []string {
	out := make([]string, len(pn.Series))
	for i, p := range pn.Series {
		if filepath.IsAbs(p) || b.Dir == "" {
			out[i] = p
		} else {
			out[i] = filepath.Join(b.Dir, p)
		}
	}
	return out
}

// TickOptions converts the panel's axis settings to ticks.Options.
// Labels are centered between the ticks of their period unless center
// or tick_centering is false.
func (pn Panel) TickOptions(dateLayout string) (ticks.Options, error) {
	opts := ticks.Options{
		InferFreqFromFmt: pn.InferFreqFromFmt,
		Fmt:              pn.Fmt,
		IrregularMonth:   pn.IrregularMonth,
		Center:           pn.Center == nil || *pn.Center,
		TickCentering:    pn.TickCentering == nil || *pn.TickCentering,
		MaxTicks:         pn.MaxTicks,
	}
	for _, f := range []struct {
		name string
		s    string
		dst  *freq.Freq
	}{
		{"freq", pn.Freq, &opts.Freq},
		{"display", pn.Display, &opts.Display},
		{"minor", pn.Minor, &opts.Minor},
		{"label_freq", pn.LabelFreq, &opts.LabelFreq},
	} {
		v, err := freq.Parse(f.s)
		if err != nil {
			return ticks.Options{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = v
	}

	parse := func(name, s string) (time.Time, error) {
		if s == "" {
			return time.Time{}, nil
		}
		t, err := series.ParseTime(s, dateLayout)
		if err != nil {
			return time.Time{}, fmt.Errorf("%s: bad date %q", name, s)
		}
		return t, nil
	}
	var err error
	if opts.Start, err = parse("start", pn.Start); err != nil {
		return ticks.Options{}, err
	}
	if opts.End, err = parse("end", pn.End); err != nil {
		return ticks.Options{}, err
	}
	for _, s := range pn.LabelDates {
		t, err := parse("label_dates", s)
		if err != nil {
			return ticks.Options{}, err
		}
		opts.LabelDates = append(opts.LabelDates, t)
	}
	return opts, nil
}
