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
	"fmt"
)

const (
	// InstancePos is the pos of every instance. A class stores the
	// position of its own type attribute in pos instead, which is never 0
	// because position 0 always holds __class__.
	InstancePos = 0
	// ClassPos is the position of the __class__ attribute in every table.
	ClassPos = 0
)

// Object is the layout shared by classes and instances: a table describing
// which attributes are present and the attribute array itself.
type Object struct {
	table *Table
	pos   int
	attrs []Attr
	// name is set for classes and only used for debugging.
	name string
}

// New allocates an instance of cls whose attributes are described by table.
func New(f *Frame, table *Table, cls *Object) (*Object, *Exc) {
	return newSized(f, table, cls, table.Size())
}

func newSized(f *Frame, table *Table, cls *Object, size int) (*Object, *Exc) {
	attrs, raised := f.Allocate(size)
	if raised != nil {
		return nil, raised
	}
	o := &Object{table: table, pos: InstancePos, attrs: attrs}
	o.attrs[ClassPos] = RefAttr(cls)
	return o, nil
}

func newClass(name string, table *Table, pos int) *Object {
	return &Object{table: table, pos: pos, attrs: make([]Attr, table.Size()), name: name}
}

// Table returns o's attribute table.
func (o *Object) Table() *Table {
	return o.table
}

// Pos returns InstancePos for instances and the type attribute position
// for classes.
func (o *Object) Pos() int {
	return o.pos
}

// String returns a string representation of o, e.g. for debugging.
func (o *Object) String() string {
	if o == nil {
		return "nil"
	}
	if !IsInstance(o) {
		return fmt.Sprintf("<class %s>", o.name)
	}
	if cls := GetClass(o); cls != nil {
		return fmt.Sprintf("<%s object at %p>", cls.name, o)
	}
	return fmt.Sprintf("<object at %p>", o)
}

// LoadViaObject reads the attribute at pos without any check. Callers must
// already know that o has the attribute.
func LoadViaObject(o *Object, pos int) Attr {
	return o.attrs[pos]
}

// LoadViaClass reads the attribute at pos from o's class without any check.
func LoadViaClass(o *Object, pos int) Attr {
	return LoadViaObject(GetClass(o), pos)
}

// GetClassAndLoad reads from the class of an instance, or from o itself
// when o is a class.
func GetClassAndLoad(o *Object, pos int) Attr {
	if IsInstance(o) {
		return LoadViaClass(o, pos)
	}
	return LoadViaObject(o, pos)
}

// CheckAndLoadViaObject reads the attribute at pos after checking that o
// has the attribute identified by code there.
func CheckAndLoadViaObject(f *Frame, o *Object, pos int, code uint32) (Attr, *Exc) {
	if HasAttr(o, pos, code) {
		return LoadViaObject(o, pos), nil
	}
	return Null, f.RaiseTypeError()
}

// CheckAndLoadViaClass is CheckAndLoadViaObject applied to o's class.
func CheckAndLoadViaClass(f *Frame, o *Object, pos int, code uint32) (Attr, *Exc) {
	return CheckAndLoadViaObject(f, GetClass(o), pos, code)
}

// CheckAndLoadViaAny tries o and then its class.
func CheckAndLoadViaAny(f *Frame, o *Object, pos int, code uint32) (Attr, *Exc) {
	if out := checkAndLoadViaObjectNull(o, pos, code); !out.IsNull() {
		return out, nil
	}
	return CheckAndLoadViaClass(f, o, pos, code)
}

func checkAndLoadViaObjectNull(o *Object, pos int, code uint32) Attr {
	if HasAttr(o, pos, code) {
		return LoadViaObject(o, pos)
	}
	return Null
}

// StoreViaObject writes value at pos without any check. Tables never
// change, so writing never needs to touch o's table.
func StoreViaObject(o *Object, pos int, value Attr) {
	o.attrs[pos] = value
}

// GetClassAndStore always raises TypeError: class attributes are read-only.
func GetClassAndStore(f *Frame, o *Object, pos int, value Attr) *Exc {
	return f.RaiseTypeError()
}

// CheckAndStoreViaObject writes value at pos after checking that o has the
// attribute identified by code there.
func CheckAndStoreViaObject(f *Frame, o *Object, pos int, code uint32, value Attr) *Exc {
	if HasAttr(o, pos, code) {
		StoreViaObject(o, pos, value)
		return nil
	}
	return f.RaiseTypeError()
}

// CheckAndStoreViaClass always raises TypeError: class attributes are
// read-only.
func CheckAndStoreViaClass(f *Frame, o *Object, pos int, code uint32, value Attr) *Exc {
	return f.RaiseTypeError()
}

// CheckAndStoreViaAny stores on o itself. There is no class fallback since
// class-relative stores are rejected.
func CheckAndStoreViaAny(f *Frame, o *Object, pos int, code uint32, value Attr) *Exc {
	if HasAttr(o, pos, code) {
		StoreViaObject(o, pos, value)
		return nil
	}
	return CheckAndStoreViaClass(f, o, pos, code, value)
}
