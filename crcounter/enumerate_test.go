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
	"testing"
	"time"

	"github.com/cockroachdb/crcounter/internal/testutils/require"
)

type enumTestEnum int

const (
	enumCount enumTestEnum = iota
	enumLatency
)

func TestEnumerateOrderAndHandles(t *testing.T) {
	c := require.NoError1(NewCollection[enumTestEnum]([]FieldSpec{
		{Name: "count", Type: Numeric},
		{Name: "latency", Type: Stopwatch},
	}, nil))
	require.NoError(t, c.Add(enumCount, 3))
	require.NoError(t, c.AddDuration(enumLatency, 2*time.Second))

	var names []string
	var values []int64
	for h := range c.Enumerate() {
		names = append(names, h.Name())
		values = append(values, h.Value())
	}
	require.Equal(t, names, []string{"count", "latency"})
	require.Equal(t, values, []int64{3, 0})
}

func TestEnumerateEarlyStop(t *testing.T) {
	c := require.NoError1(NewCollection[enumTestEnum]([]FieldSpec{
		{Name: "count", Type: Numeric},
		{Name: "latency", Type: Stopwatch},
	}, nil))

	var seen int
	for range c.Enumerate() {
		seen++
		break
	}
	require.Equal(t, seen, 1)
}

func TestCollectionStringRendersStopwatchSuffix(t *testing.T) {
	c := require.NoError1(NewCollection[enumTestEnum]([]FieldSpec{
		{Name: "count", Type: Numeric},
		{Name: "latency", Type: Stopwatch},
	}, nil))
	require.NoError(t, c.Add(enumCount, 5))
	require.NoError(t, c.AddDuration(enumLatency, 90*time.Second+250*time.Millisecond))

	s := c.String()
	require.True(t, strings.Contains(s, "count"))
	require.True(t, strings.Contains(s, "latency"))
	require.True(t, strings.Contains(s, "00:01:30.250"))
	// Numeric counters don't get an HH:MM:SS suffix: the only colon on their
	// line is the name/value separator.
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	require.Equal(t, len(lines), 2)
	require.Equal(t, strings.Count(lines[0], ":"), 1)
}
