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

package crtime

import (
	"math"
	"math/bits"
	"time"
)

// A "tick" is the hot-path unit accumulated by stopwatch counters: a raw
// monotonic-clock reading, not yet converted to a wall-clock duration. On
// every platform Go runs on, the monotonic clock NowMono reads is already
// nanosecond-denominated, so ticksPerNano is exactly 1 everywhere in
// practice. The conversion is kept as an explicit scale (rather than a bare
// type alias) so the accumulator's unit is never conflated with
// time.Duration in the API, matching the source's separation between the
// raw accumulator and the reporting-edge conversion.
const ticksPerNano = 1

// TicksToDuration converts a raw tick count (as accumulated by a stopwatch
// counter) to a time.Duration, rounded to the nearest nanosecond.
//
// This is a reporting-edge conversion; the hot path never calls it.
func TicksToDuration(ticks int64) time.Duration {
	if ticks == 0 {
		return 0
	}
	if ticks < 0 {
		return -scaledDuration(-ticks)
	}
	return scaledDuration(ticks)
}

// DurationToTicks converts a time.Duration to the raw tick count that would
// accumulate over that duration.
func DurationToTicks(d time.Duration) int64 {
	if d < 0 {
		return -int64(scaleUint64(uint64(-d), 1, ticksPerNano))
	}
	return int64(scaleUint64(uint64(d), 1, ticksPerNano))
}

func scaledDuration(ticks int64) time.Duration {
	return time.Duration(scaleUint64(uint64(ticks), ticksPerNano, 1))
}

// scaleUint64 returns the ceiling of x*a/b, clamped to the uint64 range.
// Panics if b is zero.
//
// Adapted from the wrap-aware multiply-then-divide technique used to scale
// arbitrary uint64 ratios without losing precision to an intermediate
// float64: we only ever call it with tick and nanosecond counts within the range where the
// 128-bit product (via bits.Mul64/bits.Div64) is required to stay exact.
func scaleUint64(x, a, b uint64) uint64 {
	var quo, rem uint64
	if x < math.MaxUint32 && a < math.MaxUint32 {
		prod := a * x
		quo = prod / b
		rem = prod % b
	} else {
		hi, lo := bits.Mul64(x, a)
		if hi >= b && b != 0 {
			return math.MaxUint64
		}
		quo, rem = bits.Div64(hi, lo, b)
	}
	if rem == 0 {
		return quo
	}
	return quo + 1
}
