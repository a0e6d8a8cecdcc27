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

// Package crcounter implements a sharded, cache-aware collection of named
// counters and stopwatches, safe for high-frequency concurrent increments
// from many goroutines and infrequent folding reads.
//
// A Collection[E] binds a dense, contiguous enum type E to a Schema
// (resolved once per E via BindSchema) and owns two crshard.Matrix
// instances — one accumulating plain counts, one accumulating stopwatch
// ticks. Writes are wait-free single atomic adds; reads fold all
// crshard.NumSlots rows and are not linearizable with respect to concurrent
// writers, only eventually consistent.
package crcounter

import (
	"fmt"
	"time"

	"github.com/cockroachdb/crcounter/crshard"
	"github.com/cockroachdb/crcounter/crtime"
)

// Collection owns a pair of shard matrices for a bound Schema, plus an
// optional parent collection that every Add propagates into.
//
// The zero value is not usable; construct with NewCollection.
type Collection[E ~int] struct {
	schema    *Schema
	counts    crshard.Matrix
	durations crshard.Matrix
	parent    *Collection[E]
}

// NewCollection creates a Collection for enum type E, binding its Schema
// from fields on the first call for E (see BindSchema). If parent is
// non-nil, every Add on the new collection also applies to parent.
func NewCollection[E ~int](fields []FieldSpec, parent *Collection[E]) (*Collection[E], error) {
	schema, err := BindSchema[E](fields)
	if err != nil {
		return nil, err
	}
	if parent != nil && parent.schema != schema {
		return nil, fmt.Errorf("%w: parent collection was built from a different schema", ErrSchemaMismatch)
	}
	return newCollectionWithSchema[E](schema, parent), nil
}

func newCollectionWithSchema[E ~int](schema *Schema, parent *Collection[E]) *Collection[E] {
	n := schema.Columns()
	return &Collection[E]{
		schema:    schema,
		counts:    crshard.NewMatrix(n),
		durations: crshard.NewMatrix(n),
		parent:    parent,
	}
}

// Schema returns the collection's bound schema.
func (c *Collection[E]) Schema() *Schema {
	return c.schema
}

// column validates and converts an enum member to a column index. An
// out-of-range member is a programmer error (the schema defines the dense
// range for E), so it panics rather than returning an error, matching the
// spec invariant "0 ≤ counter_id < columns always holds".
func (c *Collection[E]) column(m E) int {
	id := int(m)
	if id < 0 || id >= c.schema.Columns() {
		panic(fmt.Sprintf("crcounter: counter id %d out of range [0,%d)", id, c.schema.Columns()))
	}
	return id
}

// addCount is the untyped core: a single atomic fetch-add, overflow
// detection via wrap-aware comparison on the exact pre-add value recovered
// from the post-add value, then best-effort recursion into the parent.
func (c *Collection[E]) addCount(id int, delta int64) error {
	if delta == 0 {
		return nil
	}
	slot := crshard.CurrentSlot()
	newVal := c.counts.Add(slot, id, delta)
	old := newVal - delta
	var err error
	if crshard.AddOverflows(old, delta) {
		err = &CounterError{Name: c.schema.names[id], Kind: ErrOverflow, Delta: delta}
	}
	if c.parent != nil {
		if perr := c.parent.addCount(id, delta); perr != nil && err == nil {
			err = perr
		}
	}
	return err
}

func (c *Collection[E]) addDuration(id int, delta int64) error {
	if delta == 0 {
		return nil
	}
	slot := crshard.CurrentSlot()
	newVal := c.durations.Add(slot, id, delta)
	old := newVal - delta
	var err error
	if crshard.AddOverflows(old, delta) {
		err = &CounterError{Name: c.schema.names[id], Kind: ErrOverflow, Delta: delta}
	}
	if c.parent != nil {
		if perr := c.parent.addDuration(id, delta); perr != nil && err == nil {
			err = perr
		}
	}
	return err
}

func (c *Collection[E]) readCount(id int) int64 {
	return c.counts.Sum(id)
}

func (c *Collection[E]) readDuration(id int) int64 {
	return c.durations.Sum(id)
}

// Increment adds 1 to counter m. type(m) == Stopwatch is permitted (matches
// the source's permissive handling) but unusual; prefer Start for
// stopwatches.
func (c *Collection[E]) Increment(m E) error {
	return c.addCount(c.column(m), 1)
}

// Decrement subtracts 1 from counter m.
func (c *Collection[E]) Decrement(m E) error {
	return c.addCount(c.column(m), -1)
}

// Add adds n to counter m.
func (c *Collection[E]) Add(m E, n int64) error {
	return c.addCount(c.column(m), n)
}

// AddDuration adds d (converted to ticks) to stopwatch counter m. Returns
// ErrWrongCounterType if m is not a Stopwatch counter.
func (c *Collection[E]) AddDuration(m E, d time.Duration) error {
	id := c.column(m)
	if c.schema.types[id] != Stopwatch {
		return &CounterError{Name: c.schema.names[id], Kind: ErrWrongCounterType}
	}
	return c.addDuration(id, crtime.DurationToTicks(d))
}

// Value returns the folded value of counter m.
func (c *Collection[E]) Value(m E) int64 {
	return c.readCount(c.column(m))
}

// Elapsed returns the folded stopwatch duration of counter m. Returns
// ErrWrongCounterType if m is not a Stopwatch counter.
func (c *Collection[E]) Elapsed(m E) (time.Duration, error) {
	id := c.column(m)
	if c.schema.types[id] != Stopwatch {
		return 0, &CounterError{Name: c.schema.names[id], Kind: ErrWrongCounterType}
	}
	return crtime.TicksToDuration(c.readDuration(id)), nil
}

// Start begins a stopwatch scope on counter m. Permitted on non-stopwatch
// counters too (see Handle.Start doc) — the scope still records elapsed
// ticks and a call on release.
func (c *Collection[E]) Start(m E) Scope[E] {
	return Scope[E]{collection: c, col: c.column(m), start: crtime.NowMono()}
}

// Handle returns a Handle bound to counter m.
func (c *Collection[E]) Handle(m E) Handle[E] {
	id := c.column(m)
	return Handle[E]{collection: c, col: id, typ: c.schema.types[id], name: c.schema.names[id]}
}

// Difference returns c.Value(m) - other.Value(m). Returns ErrSchemaMismatch
// if the two collections were not built from the same schema.
func (c *Collection[E]) Difference(other *Collection[E], m E) (int64, error) {
	if other.schema != c.schema {
		return 0, fmt.Errorf("%w", ErrSchemaMismatch)
	}
	return c.Value(m) - other.Value(m), nil
}

// MergeFrom additively merges other's counts and durations into c, column
// by column, row by row. The parent link is not traversed: the merge
// target owns its own propagation policy.
func (c *Collection[E]) MergeFrom(other *Collection[E]) error {
	if other.schema != c.schema {
		return fmt.Errorf("%w", ErrSchemaMismatch)
	}
	c.counts.MergeFrom(&other.counts)
	c.durations.MergeFrom(&other.durations)
	return nil
}

// Clone returns an independent copy of c's matrices. The parent link is
// copied by reference: cloning adds nothing to the parent, but later adds
// on the clone propagate to the original's parent just as adds on c do.
func (c *Collection[E]) Clone() *Collection[E] {
	counts := c.counts.Clone()
	durations := c.durations.Clone()
	return &Collection[E]{
		schema:    c.schema,
		counts:    counts,
		durations: durations,
		parent:    c.parent,
	}
}

// Snapshot returns an independent, parent-less copy of c, frozen at the
// (eventually-consistent) moment the fold completes.
func (c *Collection[E]) Snapshot() *Collection[E] {
	snap := newCollectionWithSchema[E](c.schema, nil)
	snap.counts.MergeFrom(&c.counts)
	snap.durations.MergeFrom(&c.durations)
	return snap
}

// Sum returns a new, parent-less collection where every column is the
// element-wise sum of a and b. Returns ErrSchemaMismatch if a and b were
// not built from the same schema.
func Sum[E ~int](a, b *Collection[E]) (*Collection[E], error) {
	if a.schema != b.schema {
		return nil, fmt.Errorf("%w", ErrSchemaMismatch)
	}
	res := newCollectionWithSchema[E](a.schema, nil)
	res.counts.MergeFrom(&a.counts)
	res.counts.MergeFrom(&b.counts)
	res.durations.MergeFrom(&a.durations)
	res.durations.MergeFrom(&b.durations)
	return res, nil
}
