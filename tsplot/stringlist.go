// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// stringList is a repeatable flag. Each use may carry several
// shell-quoted words.
type stringList []string

func (x *stringList) String() string {
	return strings.Join(*x, ",")
}

func (x *stringList) Set(s string) error {
	words, err := shellquote.Split(s)
	if err != nil {
		return err
	}
	*x = append(*x, words...)
	return nil
}
