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

// NewStr returns a new str holding value. If value names an attribute of
// the program, the str's __key__ identifies that attribute so that it can
// be used with getattr.
func NewStr(f *Frame, value string) (*Object, *Exc) {
	p := f.prog
	s, raised := newData(f, p.classes["str"], BytesAttr([]byte(value)))
	if raised != nil {
		return nil, raised
	}
	key, _ := p.Attr(value)
	StoreViaObject(s, p.layout.Key.Pos, KeyAttr(key))
	return s, nil
}

// ToStr returns the value of the str s.
func ToStr(f *Frame, s *Object) (string, bool) {
	if !TestSpecificInstance(s, f.prog.classes["str"]) {
		return "", false
	}
	b, ok := LoadViaObject(s, f.prog.layout.Data.Pos).Bytes()
	return string(b), ok
}

// newData returns an instance of cls with data in its __data__ attribute.
func newData(f *Frame, cls *Object, data Attr) (*Object, *Exc) {
	o, raised := New(f, f.prog.instanceTables[cls], cls)
	if raised != nil {
		return nil, raised
	}
	dataKey := f.prog.layout.Data
	if raised := CheckAndStoreViaObject(f, o, dataKey.Pos, dataKey.Code, data); raised != nil {
		return nil, raised
	}
	return o, nil
}

// dataOf returns the __data__ of o, raising TypeError if o is not an
// instance of cls.
func dataOf(f *Frame, o Attr, cls *Object) (Attr, *Exc) {
	obj, ok := o.Ref()
	if !ok || !IsInstanceOf(obj, cls) {
		return Null, f.RaiseTypeError()
	}
	return LoadViaObject(obj, f.prog.layout.Data.Pos), nil
}
