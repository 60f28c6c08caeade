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

	"golang.org/x/image/draw"
)

// Merge combines PNG-encoded pages into one PNG with the pages
// stacked top to bottom in order. Pages narrower than the widest are
// scaled up to its width.
func Merge(pages [][]byte) ([]byte, error) {
	if len(pages) == 0 {
		return nil, errors.New("no pages to merge")
	}
	imgs := make([]image.Image, len(pages))
	for i, page := range pages {
		img, err := png.Decode(bytes.NewReader(page))
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		imgs[i] = img
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, Stack(imgs)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Stack draws imgs top to bottom on one image as wide as the widest
// of them, scaling the others to that width.
func Stack(imgs []image.Image) *image.RGBA {
	width, height := 0, 0
	for _, img := range imgs {
		if w := img.Bounds().Dx(); w > width {
			width = w
		}
	}
	heights := make([]int, len(imgs))
	for i, img := range imgs {
		b := img.Bounds()
		if b.Dx() > 0 {
			heights[i] = b.Dy() * width / b.Dx()
		}
		height += heights[i]
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	y := 0
	for i, img := range imgs {
		b := img.Bounds()
		r := image.Rect(0, y, width, y+heights[i])
		if b.Dx() == width {
			draw.Draw(dst, r, img, b.Min, draw.Over)
		} else {
			draw.BiLinear.Scale(dst, r, img, b, draw.Over, nil)
		}
		y += heights[i]
	}
	return dst
}
