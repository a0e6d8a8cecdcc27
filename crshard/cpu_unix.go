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

//go:build linux && !cockroach_go

package crshard

import "golang.org/x/sys/unix"

// CurrentSlot returns a value in [0, NumSlots) biased towards the current
// logical CPU.
//
// On Linux, sched_getcpu(2) is a cheap syscall-free (vDSO-backed on most
// kernels) read of the CPU the calling thread is currently running on. The
// returned value is advisory: the thread may migrate between the read here
// and the subsequent atomic add, but that add is itself atomic, so a stale
// slot only costs a few extra ns of contention, never correctness.
func CurrentSlot() int {
	cpu, err := unix.SchedGetcpu()
	if err != nil || cpu < 0 {
		return fallbackSlot()
	}
	return cpu % NumSlots
}
