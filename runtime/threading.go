// Copyright 2016 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lichen

const (
	argsCacheSize = 16
	argsCacheArgc = 6
)

// threadState is the state of one logical thread of execution. It is
// created with a root frame and shared by all of its descendants. Nothing
// in it is safe for use from more than one goroutine.
type threadState struct {
	prog *Program
	// region is the innermost open protected region, or nil when no
	// region is open.
	region *region
	// depth is the number of open regions.
	depth int
	// argsCache is a small, per-thread LIFO cache for arg lists. Entries
	// have a fixed capacity so calls to functions with larger parameter
	// lists will be allocated afresh each time. Args freed when the cache
	// is full are dropped. If the cache is empty then a new args slice
	// will be allocated.
	argsCache []Args

	// frameCache is a local cache of allocated frames almost ready for
	// reuse. The cache is maintained through the Frame `back` pointer as a
	// singly linked list.
	frameCache *Frame
}

func newThreadState(p *Program) *threadState {
	return &threadState{prog: p, argsCache: make([]Args, 0, argsCacheSize)}
}

// region is a save point for exceptions. exc is the slot receiving the
// exception raised while the region is current.
type region struct {
	prev *region
	exc  *Exc
}
