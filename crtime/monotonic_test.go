// Copyright 2024 The Cockroach Authors.
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

package crtime

import (
	"testing"
	"time"

	"github.com/cockroachdb/crcounter/internal/testutils/require"
)

func TestMono(t *testing.T) {
	a := NowMono()
	time.Sleep(10 * time.Millisecond)
	b := NowMono()
	require.GE(t, b.Sub(a), 9*time.Millisecond)
}

func TestTicksToDuration(t *testing.T) {
	require.Equal(t, TicksToDuration(0), time.Duration(0))
	require.Equal(t, TicksToDuration(1000), time.Duration(1000))
	require.Equal(t, TicksToDuration(-1000), time.Duration(-1000))
}

func TestDurationToTicks(t *testing.T) {
	require.Equal(t, DurationToTicks(0), int64(0))
	require.Equal(t, DurationToTicks(10*time.Millisecond), int64(10*time.Millisecond))
	require.Equal(t, DurationToTicks(-10*time.Millisecond), int64(-10*time.Millisecond))
}

func TestTickDurationRoundTrip(t *testing.T) {
	for _, d := range []time.Duration{
		0, time.Nanosecond, time.Microsecond, time.Millisecond,
		time.Second, -time.Second, 12345678 * time.Nanosecond,
	} {
		ticks := DurationToTicks(d)
		got := TicksToDuration(ticks)
		require.Equal(t, got, d)
	}
}
