// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exhibit

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/rs/zerolog"
	"golang.org/x/image/draw"
)

// DefaultDPI is the resolution of rendered pages.
const DefaultDPI = 100

// Orientation is the orientation of a page.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// Margins are the distances in inches from the edges of a page to
// its panel grid.
type Margins struct {
	Left, Bottom, Right, Top float64
}

// DefaultMargins leave room above the grid for the page title and
// captions.
var DefaultMargins = Margins{Left: 1, Bottom: 1, Right: 1, Top: 1.4}

// A Page is one page of an exhibit: panels on a Rows x Cols grid.
type Page struct {
	Rows, Cols int

	// RowSizes and ColSizes are the relative heights of the grid
	// rows and widths of the grid columns. nil means equal sizes.
	RowSizes, ColSizes []float64

	// Width and Height are the page size in inches.
	Width, Height float64

	Margins Margins

	// HSpace and WSpace are the vertical and horizontal gaps
	// between panels in inches.
	HSpace, WSpace float64

	DPI int

	Title                     string
	LeftCaption, RightCaption string
	Texts                     []Text

	Log zerolog.Logger

	placed []placement
}

type placement struct {
	panel                    *Panel
	row, col, rowEnd, colEnd int
}

// NewPage returns an empty US letter page with a rows x cols grid.
func NewPage(rows, cols int, o Orientation) *Page {
	w, h := 8.5, 11.0
	if o == Landscape {
		w, h = h, w
	}
	return &Page{
		Rows:    rows,
		Cols:    cols,
		Width:   w,
		Height:  h,
		Margins: DefaultMargins,
		HSpace:  .3,
		WSpace:  .25,
		DPI:     DefaultDPI,
		Log:     zerolog.Nop(),
	}
}

// Orientation returns Landscape if p is wider than it is tall.
func (p *Page) Orientation() Orientation {
	if p.Width > p.Height {
		return Landscape
	}
	return Portrait
}

// Add places pn on grid rows [row, rowEnd) and columns [col, colEnd).
// Panel aliases must be unique within a page.
func (p *Page) Add(pn *Panel, row, col, rowEnd, colEnd int) error {
	if row < 0 || rowEnd <= row || rowEnd > p.Rows || col < 0 || colEnd <= col || colEnd > p.Cols {
		return fmt.Errorf("panel %q: cells [%d,%d)x[%d,%d) outside %dx%d grid", pn.Alias, row, rowEnd, col, colEnd, p.Rows, p.Cols)
	}
	if p.Panel(pn.Alias) != nil {
		return fmt.Errorf("duplicate panel %q", pn.Alias)
	}
	p.placed = append(p.placed, placement{pn, row, col, rowEnd, colEnd})
	return nil
}

// Panel returns the panel with the given alias, or nil.
func (p *Page) Panel(alias string) *Panel {
	for _, pl := range p.placed {
		if pl.panel.Alias == alias {
			return pl.panel
		}
	}
	return nil
}

// Aliases returns the aliases of p's panels in the order they were
// added.
func (p *Page) Aliases() []string {
	out := make([]string, len(p.placed))
	for i, pl := range p.placed {
		out[i] = pl.panel.Alias
	}
	return out
}

// Bounds returns the pixel rectangle of the panel with the given
// alias, or the empty rectangle if there is no such panel.
func (p *Page) Bounds(alias string) (image.Rectangle, error) {
	rows, cols, err := p.grid()
	if err != nil {
		return image.Rectangle{}, err
	}
	for _, pl := range p.placed {
		if pl.panel.Alias == alias {
			return p.cell(rows, cols, pl), nil
		}
	}
	return image.Rectangle{}, nil
}

func (p *Page) dpi() float64 {
	if p.DPI <= 0 {
		return DefaultDPI
	}
	return float64(p.DPI)
}

func (p *Page) size() (int, int) {
	return px(p.Width * p.dpi()), px(p.Height * p.dpi())
}

func px(f float64) int {
	return int(math.Round(f))
}

// grid returns the row and column boundaries of the panel grid as
// fractions of the page, measured from the bottom-left corner.
func (p *Page) grid() (rows, cols []float64, err error) {
	m := p.Margins
	return Partition(m.Left/p.Width, 1-m.Right/p.Width, m.Bottom/p.Height, 1-m.Top/p.Height, p.Rows, p.Cols, p.RowSizes, p.ColSizes)
}

func (p *Page) cell(rows, cols []float64, pl placement) image.Rectangle {
	w, h := p.size()
	ws := px(p.WSpace * p.dpi() / 2)
	hs := px(p.HSpace * p.dpi() / 2)
	return image.Rect(
		px(cols[pl.col]*float64(w))+ws,
		px((1-rows[pl.row])*float64(h))+hs,
		px(cols[pl.colEnd]*float64(w))-ws,
		px((1-rows[pl.rowEnd])*float64(h))-hs,
	)
}

// Render draws the page.
func (p *Page) Render() (*image.RGBA, error) {
	rows, cols, err := p.grid()
	if err != nil {
		return nil, err
	}
	w, h := p.size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	lh := lineHeight()
	ink := color.Black

	for _, pl := range p.placed {
		r := p.cell(rows, cols, pl)
		if r.Empty() {
			return nil, fmt.Errorf("panel %q: no room on page", pl.panel.Alias)
		}
		p.Log.Debug().Str("panel", pl.panel.Alias).Int("width", r.Dx()).Int("height", r.Dy()).Msg("rendering panel")
		pimg, err := pl.panel.Render(r.Dx(), r.Dy())
		if err != nil {
			return nil, fmt.Errorf("panel %q: %w", pl.panel.Alias, err)
		}
		draw.Draw(img, r, pimg, pimg.Bounds().Min, draw.Src)

		// Title and captions above the panel, footnotes below.
		y := r.Min.Y - 3
		if pl.panel.LeftCaption != "" || pl.panel.RightCaption != "" {
			drawText(img, r.Min.X, y, pl.panel.LeftCaption, AlignLeft, ink)
			drawText(img, r.Max.X, y, pl.panel.RightCaption, AlignRight, ink)
			y -= lh
		}
		if pl.panel.Title != "" {
			drawText(img, r.Min.X, y, pl.panel.Title, AlignLeft, ink)
		}
		for i, note := range pl.panel.Footnotes {
			drawText(img, r.Min.X, r.Max.Y+(i+1)*lh, note, AlignLeft, ink)
		}
	}

	dpi := p.dpi()
	if p.Title != "" {
		drawText(img, w/2, px(.8*dpi), p.Title, AlignCenter, ink)
	}
	if p.LeftCaption != "" {
		drawText(img, px(.8*dpi), px(.6*dpi), p.LeftCaption, AlignLeft, ink)
	}
	if p.RightCaption != "" {
		drawText(img, w-px(.8*dpi), px(.6*dpi), p.RightCaption, AlignRight, ink)
	}
	for _, t := range p.Texts {
		drawText(img, px(t.X*float64(w)), px((1-t.Y)*float64(h)), t.S, t.Align, ink)
	}
	p.Log.Debug().Str("title", p.Title).Int("panels", len(p.placed)).Msg("rendered page")
	return img, nil
}

// WritePNG renders the page and writes it to w as a PNG.
func (p *Page) WritePNG(w io.Writer) error {
	img, err := p.Render()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
