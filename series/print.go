// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/tsexhibit/exhibit/freq"
)

func Print(ss []*Series) error {
	return Fprint(os.Stdout, ss)
}

// Fprint writes ss to w in the format read by Parse.
func Fprint(w io.Writer, ss []*Series) error {
	lastConfig := map[string]string{}
	var lastFreq freq.Freq
	for i, s := range ss {
		if i > 0 {
			if _, err := fmt.Fprint(w, "\n"); err != nil {
				return err
			}
		}

		// Print changed configuration. name always starts a
		// block; the other keys must follow it.
		if _, err := fmt.Fprintf(w, "name: %s\n", s.Name); err != nil {
			return err
		}
		if !s.Freq.Equal(lastFreq) {
			if _, err := fmt.Fprintf(w, "freq: %s\n", s.Freq); err != nil {
				return err
			}
			lastFreq = s.Freq
		}
		keys := make([]string, 0, len(s.Config))
		for k := range s.Config {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			v := s.Config[k]
			if lc, ok := lastConfig[k]; ok && lc == v {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s: %s\n", k, v); err != nil {
				return err
			}
			lastConfig[k] = v
		}

		// Construct data lines.
		layout := timeLayout(s.Timestamps)
		lines := make([][2]string, len(s.Timestamps))
		width := 0
		for j, t := range s.Timestamps {
			lines[j] = [2]string{t.Format(layout), strconv.FormatFloat(s.Values[j], 'g', -1, 64)}
			if len(lines[j][0]) > width {
				width = len(lines[j][0])
			}
		}

		// Print lines with the values left aligned.
		for _, line := range lines {
			if _, err := fmt.Fprintf(w, "%-*s  %s\n", width, line[0], line[1]); err != nil {
				return err
			}
		}
	}
	return nil
}

// timeLayout returns the shortest of DefaultLayouts that represents
// every timestamp in ts exactly.
func timeLayout(ts []time.Time) string {
	for _, t := range ts {
		if t.Location() != time.UTC || !t.Equal(freq.Floor(t, freq.Day)) {
			return time.RFC3339Nano
		}
	}
	return DefaultLayouts[0]
}
