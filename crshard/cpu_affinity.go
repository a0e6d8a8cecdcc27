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

//go:build !cockroach_go

package crshard

import (
	"math/rand/v2"
	"sync"
)

// fallbackSlot returns an arbitrary value in [0, NumSlots) with a
// best-effort association with the current CPU, for platforms (or error
// paths) without a cheap "current CPU number" primitive.
//
// It abuses a sync.Pool knowing that, in its implementation, each P holds a
// private value: the same *int tends to come back out on the same P, so
// repeated calls on the same logical CPU tend to see the same slot, and
// different CPUs tend to see different slots. This is inspired by
// github.com/puzpuzpuz/xsync.Counter's use of the same trick, and produces a
// thread-identifier proxy without relying on any runtime-internal symbol.
func fallbackSlot() int {
	n := affinityPool.Get().(*int)
	value := *n
	affinityPool.Put(n)
	return value % NumSlots
}

var affinityPool = sync.Pool{
	New: func() any {
		x := rand.IntN(NumSlots)
		return &x
	},
}
