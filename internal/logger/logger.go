// © 2025 The Osmo Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package logger defines a type for printing progress lines.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Logf is the basic logger type: a printf-like func. Like log.Printf, the
// format need not end in a newline. Logf functions must be safe for concurrent
// use.
type Logf func(format string, args ...any)

// Printer returns a Logf that writes each line to w, without timestamps or
// prefixes.
func Printer(w io.Writer) Logf {
	var mu sync.Mutex
	return func(format string, args ...any) {
		mu.Lock()
		defer mu.Unlock()

		s := fmt.Sprintf(format, args...)
		if !strings.HasSuffix(s, "\n") {
			s += "\n"
		}
		io.WriteString(w, s)
	}
}

// Discard is a Logf that throws away everything.
func Discard(string, ...any) {}
