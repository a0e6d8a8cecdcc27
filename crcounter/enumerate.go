// Copyright 2025 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package crcounter

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// Enumerate yields one Handle per counter, in schema (enumeration) order.
func (c *Collection[E]) Enumerate() iter.Seq[Handle[E]] {
	return func(yield func(Handle[E]) bool) {
		for id := 0; id < c.schema.Columns(); id++ {
			h := Handle[E]{
				collection: c,
				col:        id,
				typ:        c.schema.types[id],
				name:       c.schema.names[id],
			}
			if !yield(h) {
				return
			}
		}
	}
}

// String renders one line per counter:
//
//	[name padded to 50]: [value padded to 8][ HH:MM:SS.fff]
//
// The duration suffix only appears for Stopwatch counters.
func (c *Collection[E]) String() string {
	var b strings.Builder
	for h := range c.Enumerate() {
		fmt.Fprintf(&b, "%-50s: %8d", h.Name(), h.Value())
		if h.Type() == Stopwatch {
			fmt.Fprintf(&b, " %s", formatHMSms(h.Duration()))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func formatHMSms(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	ms := d / time.Millisecond
	return fmt.Sprintf("%s%02d:%02d:%02d.%03d", sign, h, m, s, ms)
}
