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

// Scope is a stopwatch acquisition returned by Handle.Start/Collection.Start.
// It captures a monotonic tick at creation; on Stop it adds the elapsed
// ticks to the duration matrix (if positive) and unconditionally adds 1 to
// the count matrix, even if the elapsed time rounded to zero.
//
// Scope must be released exactly once, normally via "defer scope.Stop()"
// immediately after acquisition. It embeds noCopy so `go vet`'s copylocks
// check flags accidental copies; Go has no destructors, so callers are
// responsible for the guaranteed-release discipline a scoped acquisition
// implies in languages that do.
type Scope[E ~int] struct {
	_          noCopy
	collection *Collection[E]
	col        int
	start      crtime.Mono
	stopped    bool
}

// Stop releases the scope. Calling Stop more than once panics.
func (s *Scope[E]) Stop() {
	if s.stopped {
		panic("crcounter: Scope stopped more than once")
	}
	s.stopped = true
	elapsed := crtime.NowMono().Sub(s.start)
	if elapsed > 0 {
		_ = s.collection.addDuration(s.col, crtime.DurationToTicks(elapsed))
	}
	_ = s.collection.addCount(s.col, 1)
}

// ElapsedSoFar returns the live elapsed duration without releasing the
// scope.
func (s *Scope[E]) ElapsedSoFar() time.Duration {
	return crtime.NowMono().Sub(s.start)
}

// noCopy, embedded by value, makes `go vet` report an error if a Scope is
// copied after first use (the same idiom used by sync.WaitGroup).
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
