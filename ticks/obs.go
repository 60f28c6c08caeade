// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"errors"
	"fmt"
	"time"

	"github.com/tsexhibit/exhibit/freq"
)

// BarWidth returns the width of one bar in a bar chart of data at
// frequency f with the given number of bar stacks per period. coef
// scales the bars; 1 fills the whole period.
func BarWidth(f freq.Freq, stacks int, coef float64) time.Duration {
	if stacks < 1 {
		stacks = 1
	}
	return time.Duration(coef * float64(f.Approx()) / float64(stacks))
}

// CenterObs shifts the timestamps of observations at frequency f so
// each sits in the middle of its slot within its period. Periods are
// divided into stacks slots of BarWidth(f, stacks, coef), centered in
// the period; stack selects a slot, counting from 1. With one stack
// and coef 1, an annual observation for 2017 moves to the middle of
// 2017.
func CenterObs(ts []time.Time, f freq.Freq, stacks, stack int, coef float64) ([]time.Time, error) {
	if f.IsZero() {
		return nil, errors.New("no frequency to center observations on")
	}
	if stacks < 1 || stack < 1 || stack > stacks {
		return nil, fmt.Errorf("stack %d out of range [1, %d]", stack, stacks)
	}
	if coef <= 0 || coef > 1 {
		return nil, fmt.Errorf("width coefficient %v out of range (0, 1]", coef)
	}
	period := float64(f.Approx())
	bar := float64(BarWidth(f, stacks, coef))
	offset := time.Duration((1-coef)/2*period + (float64(stack)-0.5)*bar)
	out := make([]time.Time, len(ts))
	for i, t := range ts {
		out[i] = freq.Floor(t, f.Code).Add(offset)
	}
	return out, nil
}
