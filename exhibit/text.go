// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exhibit

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Align is the horizontal alignment of a piece of text relative to
// its anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// A Text is a string placed on a page. X and Y are fractions of the
// page width and height measured from the bottom-left corner.
type Text struct {
	X, Y  float64
	S     string
	Align Align
}

var textFace font.Face = basicfont.Face7x13

// drawText draws s on dst with its baseline at y and aligned at x.
func drawText(dst draw.Image, x, y int, s string, align Align, col color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: textFace}
	w := d.MeasureString(s).Ceil()
	switch align {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	d.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	d.DrawString(s)
}

// lineHeight is the distance between consecutive baselines.
func lineHeight() int {
	return textFace.Metrics().Height.Ceil()
}
