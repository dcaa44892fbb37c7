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

// NewDataTuple returns a tuple literal holding values.
//
// Tuples are never appended to, so their fragment keeps the capacity it was
// created with.
func NewDataTuple(f *Frame, values []Attr) (*Object, *Exc) {
	return newDataSequence(f, f.prog.classes["tuple"], values)
}

// TupleValues returns a copy of the elements of the tuple o.
func TupleValues(f *Frame, o Attr) ([]Attr, *Exc) {
	fr, raised := seqFragment(f, o, f.prog.classes["tuple"])
	if raised != nil {
		return nil, raised
	}
	return fr.Values(), nil
}

func tupleLen(f *Frame, args Args) (Attr, *Exc) {
	return seqLen(f, args[0], f.prog.classes["tuple"])
}

func tupleGetItem(f *Frame, args Args) (Attr, *Exc) {
	return seqGetItem(f, args[0], args[1], f.prog.classes["tuple"])
}
