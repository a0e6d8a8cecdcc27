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
	"strings"
	"time"
)

// Statistics flattens c into a name -> value map. Each column contributes
// one entry keyed "prefix.name" (or bare "name" if prefix is empty or only
// whitespace), except Stopwatch
// columns, which are keyed "prefix.nameMs" (or "nameMs") and export elapsed
// milliseconds truncated toward zero rather than the raw call count.
func Statistics[E ~int](c *Collection[E], prefix string) map[string]int64 {
	out := make(map[string]int64, c.schema.Columns())
	for h := range c.Enumerate() {
		key := h.Name()
		if prefix != "" && strings.TrimSpace(prefix) != "" {
			key = prefix + "." + key
		}
		if h.Type() == Stopwatch {
			out[key+"Ms"] = int64(h.Duration() / time.Millisecond)
			continue
		}
		out[key] = h.Value()
	}
	return out
}
