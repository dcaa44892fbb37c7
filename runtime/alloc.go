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

import (
	"sync/atomic"
	"unsafe"
)

const (
	// AttrSize is the number of bytes an allocator charges per attribute.
	AttrSize = int64(unsafe.Sizeof(Attr{}))
	// MaxAllocation is the largest number of bytes a single request may
	// ask for.
	MaxAllocation = int64(1<<31 - 1)
	// MaxAttrs is the largest number of attributes a single request may
	// ask for.
	MaxAttrs = int(MaxAllocation / AttrSize)
)

// Allocator provides zeroed attribute storage. Memory is reclaimed by the
// garbage collector; there is no free operation.
type Allocator interface {
	// Allocate returns n zeroed attributes, or false if the allocator is
	// exhausted.
	Allocate(n int) ([]Attr, bool)
	// Reallocate returns storage with the contents of attrs and capacity
	// for at least n attributes, or false if the allocator is exhausted.
	Reallocate(attrs []Attr, n int) ([]Attr, bool)
}

// HeapAllocator allocates from the Go heap. A non-zero limit bounds the
// total number of bytes ever handed out. It is safe for concurrent use.
type HeapAllocator struct {
	limit int64
	used  int64
}

// NewHeapAllocator returns an allocator handing out at most limit bytes in
// total, or any amount if limit is 0.
func NewHeapAllocator(limit int64) *HeapAllocator {
	return &HeapAllocator{limit: limit}
}

// Allocate implements Allocator.
func (a *HeapAllocator) Allocate(n int) ([]Attr, bool) {
	if !a.reserve(n) {
		return nil, false
	}
	return make([]Attr, n), true
}

// Reallocate implements Allocator. Only growth beyond the current capacity
// is charged.
func (a *HeapAllocator) Reallocate(attrs []Attr, n int) ([]Attr, bool) {
	if n > MaxAttrs {
		return nil, false
	}
	if n <= cap(attrs) {
		return attrs, true
	}
	if !a.reserve(n - cap(attrs)) {
		return nil, false
	}
	grown := make([]Attr, len(attrs), n)
	copy(grown, attrs)
	return grown, true
}

// Used returns the number of bytes handed out so far.
func (a *HeapAllocator) Used() int64 {
	return atomic.LoadInt64(&a.used)
}

func (a *HeapAllocator) reserve(n int) bool {
	if n < 0 || n > MaxAttrs {
		return false
	}
	size := int64(n) * AttrSize
	for {
		used := atomic.LoadInt64(&a.used)
		if a.limit > 0 && size > a.limit-used {
			return false
		}
		if atomic.CompareAndSwapInt64(&a.used, used, used+size) {
			return true
		}
	}
}
