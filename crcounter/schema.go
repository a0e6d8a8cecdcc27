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
	"reflect"
	"sync"
)

// CounterType distinguishes a plain additive counter from a stopwatch (a
// tick accumulator paired with an implicit call count).
type CounterType int8

const (
	// Numeric counters are plain 64-bit additive accumulators.
	Numeric CounterType = iota
	// Stopwatch counters pair a tick accumulator with a call count; every
	// Scope release adds elapsed ticks and exactly one to the call count.
	Stopwatch
)

func (t CounterType) String() string {
	switch t {
	case Numeric:
		return "Numeric"
	case Stopwatch:
		return "Stopwatch"
	default:
		return fmt.Sprintf("CounterType(%d)", int8(t))
	}
}

// FieldSpec describes one column of a Schema: its display name and whether
// it is a plain counter or a stopwatch. Go has no runtime enum reflection,
// so unlike a language with member attributes, the caller supplies this
// table directly — one FieldSpec per dense enum value, in value order — at
// the first call to BindSchema for a given enum type.
type FieldSpec struct {
	Name string
	Type CounterType
}

// Schema is the immutable, per-enum-type metadata an overlay binds once:
// the CounterType and display name of every column. It is shared by every
// Collection built from the same enum type.
type Schema struct {
	types []CounterType
	names []string
}

// Columns returns the number of counters (columns) in the schema.
func (s *Schema) Columns() int {
	return len(s.types)
}

// Name returns the display name of column id.
func (s *Schema) Name(id int) string {
	return s.names[id]
}

// Type returns the CounterType of column id.
func (s *Schema) Type(id int) CounterType {
	return s.types[id]
}

func bindSchema(fields []FieldSpec) (*Schema, error) {
	if len(fields) > 1<<16 {
		return nil, fmt.Errorf("%w: %d counters exceeds the 16-bit id space", ErrInvalidSchema, len(fields))
	}
	types := make([]CounterType, len(fields))
	names := make([]string, len(fields))
	for i, f := range fields {
		if f.Type != Numeric && f.Type != Stopwatch {
			return nil, fmt.Errorf("%w: counter %q has unknown type %d", ErrInvalidSchema, f.Name, f.Type)
		}
		if f.Name == "" {
			return nil, fmt.Errorf("%w: counter %d has no name", ErrInvalidSchema, i)
		}
		types[i] = f.Type
		names[i] = f.Name
	}
	return &Schema{types: types, names: names}, nil
}

// schemaCache holds the one Schema bound for each concrete enum type E,
// keyed by reflect.TypeOf(E(0)). Binding is a pure function of the field
// table supplied by the first caller for a given E; the overlay resolves
// and caches it lazily, exactly once per enum type.
var schemaCache sync.Map // map[reflect.Type]*Schema

// BindSchema resolves (and, on the first call for E, validates and caches)
// the Schema for enum type E from the supplied field table.
//
// Subsequent calls for the same E return the cached Schema; fields is
// ignored on those calls, matching the "resolved lazily once per Enum type"
// contract.
func BindSchema[E ~int](fields []FieldSpec) (*Schema, error) {
	key := reflect.TypeOf(E(0))
	if v, ok := schemaCache.Load(key); ok {
		return v.(*Schema), nil
	}
	schema, err := bindSchema(fields)
	if err != nil {
		return nil, err
	}
	actual, _ := schemaCache.LoadOrStore(key, schema)
	return actual.(*Schema), nil
}
