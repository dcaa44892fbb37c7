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

// Table maps attribute positions to attribute codes. A zero code marks an
// unused position. Tables are immutable.
type Table struct {
	codes []uint32
}

// NewTable returns a table holding codes, indexed by position.
func NewTable(codes ...uint32) *Table {
	return &Table{append([]uint32(nil), codes...)}
}

// Size returns the number of positions covered by t.
func (t *Table) Size() int {
	return len(t.codes)
}

// Code returns the code at pos, or 0 if pos is outside t.
func (t *Table) Code(pos int) uint32 {
	if pos < 0 || pos >= len(t.codes) {
		return 0
	}
	return t.codes[pos]
}

// Within reports whether pos is covered by o's table.
func Within(o *Object, pos int) bool {
	return pos >= 0 && pos < o.table.Size()
}

// HasAttr reports whether o has the attribute identified by code at pos.
// This one predicate answers every structural type question: attribute
// presence, isinstance and issubclass.
func HasAttr(o *Object, pos int, code uint32) bool {
	return o != nil && Within(o, pos) && o.table.codes[pos] == code
}

// IsInstance reports whether o is an instance rather than a class.
func IsInstance(o *Object) bool {
	return o != nil && o.pos == InstancePos
}

// GetClass returns the class of o. The class of a class is the type class.
func GetClass(o *Object) *Object {
	cls, _ := LoadViaObject(o, ClassPos).Ref()
	return cls
}

// TypePos returns the position of the type attribute that marks cls and its
// subclasses.
func TypePos(cls *Object) int {
	return cls.pos
}

// TypeCode returns the code of the type attribute that marks cls and its
// subclasses.
func TypeCode(cls *Object) uint32 {
	return cls.table.Code(cls.pos)
}

// IsTypeInstance reports whether o's class is the type class or a subclass
// of it, i.e. whether o is a class.
func IsTypeInstance(f *Frame, o *Object) bool {
	if o == nil {
		return false
	}
	t := f.prog.typeClass
	return HasAttr(GetClass(o), TypePos(t), TypeCode(t))
}

// TestSpecificInstance reports whether o is a direct instance of cls.
func TestSpecificInstance(o, cls *Object) bool {
	return o != nil && GetClass(o) == cls
}

// TestSpecificType reports whether o is cls itself.
func TestSpecificType(o, cls *Object) bool {
	return o != nil && o == cls
}

// TestSpecificObject reports whether o is cls or a direct instance of it.
func TestSpecificObject(o, cls *Object) bool {
	return TestSpecificType(o, cls) || TestSpecificInstance(o, cls)
}

// TestCommonInstance reports whether o's class has the attribute (pos,
// code). With a type attribute this tests for an instance of that type or
// of a subclass.
func TestCommonInstance(o *Object, pos int, code uint32) bool {
	return o != nil && HasAttr(GetClass(o), pos, code)
}

// TestCommonType reports whether o itself has the attribute (pos, code).
func TestCommonType(o *Object, pos int, code uint32) bool {
	return HasAttr(o, pos, code)
}

// TestCommonObject reports whether either o or its class has the attribute
// (pos, code).
func TestCommonObject(o *Object, pos int, code uint32) bool {
	return TestCommonType(o, pos, code) || TestCommonInstance(o, pos, code)
}
