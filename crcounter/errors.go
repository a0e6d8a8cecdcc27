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
	"errors"
	"fmt"
)

// Sentinel error kinds. Check with errors.Is; a failing counter call reports
// a *CounterError wrapping one of these together with the counter name and
// the delta that triggered it.
var (
	// ErrOverflow is returned when a 64-bit add would wrap past the sign
	// boundary. The cell's value is implementation-defined afterwards, but
	// the collection remains usable for its other columns.
	ErrOverflow = errors.New("crcounter: counter overflow")

	// ErrInvalidSchema is returned when an enum's field table is malformed:
	// its cardinality exceeds 16 bits, a field has an unknown CounterType,
	// or a field has an empty name.
	ErrInvalidSchema = errors.New("crcounter: invalid counter schema")

	// ErrWrongCounterType is returned by AddDuration/Elapsed when called on
	// a non-stopwatch counter.
	ErrWrongCounterType = errors.New("crcounter: wrong counter type")

	// ErrSchemaMismatch is returned by MergeFrom/Difference/Sum when the two
	// collections were not built from the same bound schema.
	ErrSchemaMismatch = errors.New("crcounter: schema mismatch")
)

// CounterError reports a failure attributable to one specific counter.
// Unwrap returns one of the sentinel Err* values above, so callers can use
// errors.Is(err, crcounter.ErrOverflow) etc.
type CounterError struct {
	Name  string
	Kind  error
	Delta int64
}

func (e *CounterError) Error() string {
	return fmt.Sprintf("%s (counter %q, delta %d)", e.Kind, e.Name, e.Delta)
}

func (e *CounterError) Unwrap() error {
	return e.Kind
}
