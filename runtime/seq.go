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

// newDataSequence returns an instance of cls whose __data__ is a fragment
// holding a copy of values, with capacity for exactly those values.
func newDataSequence(f *Frame, cls *Object, values []Attr) (*Object, *Exc) {
	fr, raised := NewFragment(f, len(values))
	if raised != nil {
		return nil, raised
	}
	fr.attrs = append(fr.attrs, values...)
	return newData(f, cls, FragmentAttr(fr))
}

// seqFragment returns the fragment of the sequence o, an instance of cls.
func seqFragment(f *Frame, o Attr, cls *Object) (*Fragment, *Exc) {
	data, raised := dataOf(f, o, cls)
	if raised != nil {
		return nil, raised
	}
	fr, ok := data.Fragment()
	if !ok {
		return nil, f.RaiseTypeError()
	}
	return fr, nil
}

func seqLen(f *Frame, o Attr, cls *Object) (Attr, *Exc) {
	fr, raised := seqFragment(f, o, cls)
	if raised != nil {
		return Null, raised
	}
	return intResult(f, int64(fr.Len()))
}

// seqGetItem returns element index of the sequence o. Negative indexes
// count from the end; an index out of range raises ValueError with the
// index as detail.
func seqGetItem(f *Frame, o, index Attr, cls *Object) (Attr, *Exc) {
	fr, raised := seqFragment(f, o, cls)
	if raised != nil {
		return Null, raised
	}
	i, raised := ToInt(f, index)
	if raised != nil {
		return Null, raised
	}
	n := int64(fr.Len())
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return Null, f.RaiseValueError(index)
	}
	return fr.Get(int(i)), nil
}
