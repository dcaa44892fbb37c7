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

// Fragment is the growable storage behind sequences. Its capacity doubles
// when full and never shrinks.
type Fragment struct {
	attrs []Attr
}

// NewFragment returns an empty fragment with capacity n.
func NewFragment(f *Frame, n int) (*Fragment, *Exc) {
	attrs, raised := f.Allocate(n)
	if raised != nil {
		return nil, raised
	}
	return &Fragment{attrs[:0]}, nil
}

// Len returns the number of elements in fr.
func (fr *Fragment) Len() int {
	return len(fr.attrs)
}

// Cap returns the number of elements fr can hold without growing.
func (fr *Fragment) Cap() int {
	return cap(fr.attrs)
}

// Get returns element i. i must be in range.
func (fr *Fragment) Get(i int) Attr {
	return fr.attrs[i]
}

// Set replaces element i. i must be in range.
func (fr *Fragment) Set(i int, value Attr) {
	fr.attrs[i] = value
}

// Values returns a copy of the elements of fr.
func (fr *Fragment) Values() []Attr {
	return append([]Attr(nil), fr.attrs...)
}

// Append adds value to the end of fr, doubling its capacity if it is full.
func (fr *Fragment) Append(f *Frame, value Attr) *Exc {
	if n := len(fr.attrs); n == cap(fr.attrs) {
		newCap := n * 2
		if newCap == 0 {
			newCap = 1
		}
		grown, raised := f.Reallocate(fr.attrs, newCap)
		if raised != nil {
			return raised
		}
		fr.attrs = grown
	}
	fr.attrs = append(fr.attrs, value)
	return nil
}
