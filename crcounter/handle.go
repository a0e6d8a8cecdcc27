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
	"time"

	"github.com/cockroachdb/crcounter/crtime"
)

// Handle is a small value bundling a collection, a column, its CounterType
// and its display name, for convenient call sites that don't want to carry
// the enum member around. Obtain one with Collection.Handle or
// Collection.Enumerate.
type Handle[E ~int] struct {
	collection *Collection[E]
	col        int
	typ        CounterType
	name       string
}

// Name returns the counter's display name.
func (h Handle[E]) Name() string {
	return h.name
}

// Type returns the counter's CounterType.
func (h Handle[E]) Type() CounterType {
	return h.typ
}

// Increment adds 1 to the counter.
func (h Handle[E]) Increment() error {
	return h.collection.addCount(h.col, 1)
}

// Decrement subtracts 1 from the counter.
func (h Handle[E]) Decrement() error {
	return h.collection.addCount(h.col, -1)
}

// Add adds n to the counter.
func (h Handle[E]) Add(n int64) error {
	return h.collection.addCount(h.col, n)
}

// Value returns the counter's folded value.
func (h Handle[E]) Value() int64 {
	return h.collection.readCount(h.col)
}

// Duration returns the counter's folded stopwatch duration.
func (h Handle[E]) Duration() time.Duration {
	return crtime.TicksToDuration(h.collection.readDuration(h.col))
}

// Start begins a stopwatch scope on this counter.
//
// This is permitted even when Type() != Stopwatch: the scope still records
// elapsed ticks and a call on release. This matches the source's behavior,
// which does not guard Start() against non-stopwatch counters; we keep it
// permissive for compatibility with existing collectors rather than
// tightening it to return ErrWrongCounterType.
func (h Handle[E]) Start() Scope[E] {
	return Scope[E]{collection: h.collection, col: h.col, start: crtime.NowMono()}
}
