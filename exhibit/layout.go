// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exhibit lays out time-series charts on pages.
//
// An exhibit is a page of panels arranged on a grid, with a title,
// captions and free text. Each panel is one chart whose date axis
// comes from a ticks.Plan. Pages render to images, and Merge combines
// rendered pages into one document.
package exhibit

import "fmt"

// Partition splits the region [hStart, hEnd] x [vStart, vEnd] into
// nrow rows and ncol columns. rowSizes and colSizes give the relative
// height of each row, top first, and the relative width of each
// column, left first; nil means equal sizes.
//
// rows holds vEnd followed by the bottom edge of each row, so row i
// spans [rows[i+1], rows[i]] and the last element is vStart. cols
// holds the left edge of each column followed by hEnd.
func Partition(hStart, hEnd, vStart, vEnd float64, nrow, ncol int, rowSizes, colSizes []float64) (rows, cols []float64, err error) {
	rows, err = split(vEnd, vStart, nrow, rowSizes)
	if err != nil {
		return nil, nil, fmt.Errorf("rows: %w", err)
	}
	cols, err = split(hStart, hEnd, ncol, colSizes)
	if err != nil {
		return nil, nil, fmt.Errorf("columns: %w", err)
	}
	return rows, cols, nil
}

// split divides [from, to] into n parts with the given relative
// sizes and returns the n+1 boundaries, starting with from.
func split(from, to float64, n int, sizes []float64) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("need at least one part, have %d", n)
	}
	if sizes == nil {
		sizes = make([]float64, n)
		for i := range sizes {
			sizes[i] = 1
		}
	}
	if len(sizes) != n {
		return nil, fmt.Errorf("have %d relative sizes for %d parts", len(sizes), n)
	}
	total := 0.0
	for _, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("relative size %v is not positive", s)
		}
		total += s
	}

	out := make([]float64, n+1)
	sum := 0.0
	for i := 0; i < n; i++ {
		out[i] = from + (to-from)*sum/total
		sum += sizes[i]
	}
	out[n] = to
	return out, nil
}
