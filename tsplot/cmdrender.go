// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tsexhibit/exhibit/exhibit"
	"github.com/tsexhibit/exhibit/internal/book"
	"github.com/tsexhibit/exhibit/internal/config"
	"golang.org/x/crypto/ssh/terminal"
)

var cmdRenderFlags = flag.NewFlagSet(os.Args[0]+" render", flag.ExitOnError)

var render struct {
	out string
	dpi int
}

func init() {
	f := cmdRenderFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s render [flags] <book.yaml>\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&render.out, "o", "", "write PNG to `file` (default: stdout)")
	f.IntVar(&render.dpi, "dpi", 0, "render at `dpi` dots per inch (default from config)")
	registerSubcommand("render", "[flags] <book.yaml> - render a book of exhibits", cmdRender, f)
}

func cmdRender() error {
	if cmdRenderFlags.NArg() != 1 {
		cmdRenderFlags.Usage()
		os.Exit(2)
	}
	if render.out == "" && terminal.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write PNG to a terminal; use -o")
	}

	b, err := book.Load(cmdRenderFlags.Arg(0))
	if err != nil {
		return err
	}
	dpi := render.dpi
	if dpi == 0 {
		dpi = cfg.DPI
	}

	var buf bytes.Buffer
	if err := renderBook(&buf, b, cfg, dpi); err != nil {
		return err
	}
	if render.out == "" {
		_, err = os.Stdout.Write(buf.Bytes())
		return err
	}
	return writeFile(render.out, buf.Bytes())
}

// writeFile writes data to the named file, reporting errors from
// closing it.
func writeFile(name string, data []byte) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// renderBook renders every page of b and writes them to w as one
// PNG, pages stacked top to bottom.
func renderBook(w io.Writer, b *book.Book, c *config.Config, dpi int) error {
	if b.DateLayout == "" {
		b.DateLayout = c.DateLayout
	}
	pages, err := b.Build(dpi, logger)
	if err != nil {
		return err
	}

	var pngs [][]byte
	for i, p := range pages {
		applyConfig(p, c)
		var buf bytes.Buffer
		if err := p.WritePNG(&buf); err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		pngs = append(pngs, buf.Bytes())
	}
	out, err := exhibit.Merge(pngs)
	if err != nil {
		return err
	}
	logger.Info().Int("pages", len(pages)).Int("bytes", len(out)).Msg("rendered book")
	_, err = w.Write(out)
	return err
}

// applyConfig fills in the page size and tick limits from c.
func applyConfig(p *exhibit.Page, c *config.Config) {
	if c.PageWidth > 0 && c.PageHeight > 0 {
		w, h := c.PageWidth, c.PageHeight
		if (p.Orientation() == exhibit.Landscape) != (w > h) {
			w, h = h, w
		}
		p.Width, p.Height = w, h
	}
	for _, alias := range p.Aliases() {
		pn := p.Panel(alias)
		if pn.Ticks.MaxTicks == 0 {
			pn.Ticks.MaxTicks = c.MaxTicks
		}
	}
}
