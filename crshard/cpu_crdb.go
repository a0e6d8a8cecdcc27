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

//go:build cockroach_go

package crshard

import "runtime"

// CurrentSlot returns the index of the current P modulo NumSlots.
//
// This build tag is only set when compiling against the CockroachDB-patched
// Go runtime, which exposes runtime.CurrentP() directly: an exact, free
// read of the current logical CPU with no syscall and no affinity-pool
// approximation.
func CurrentSlot() int {
	return runtime.CurrentP() % NumSlots
}
