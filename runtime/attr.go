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
	"bytes"
	"fmt"
)

// Value is the payload of an attribute. It is one of *Object, Int, Float,
// Bytes, Key, *Fragment, *ParamTable, Func or *Bound.
type Value interface {
	isValue()
}

// Int is an inline integer payload.
type Int int64

// Float is an inline floating point payload.
type Float float64

// Bytes is a raw byte string payload.
type Bytes []byte

// Key is an attribute (position, code) pair used as a payload, e.g. the
// __key__ of a str naming an attribute.
type Key struct {
	Pos  int
	Code uint32
}

// Func is a native function. args[0] is the context and the remaining slots
// hold the fully resolved parameters.
type Func func(f *Frame, args Args) (Attr, *Exc)

// Bound pairs a callable with the receiver it was accessed through. Owner
// is the context the callable carried before binding.
type Bound struct {
	Receiver *Object
	Owner    *Object
	Callable *Object
}

func (*Object) isValue()     {}
func (Int) isValue()         {}
func (Float) isValue()       {}
func (Bytes) isValue()       {}
func (Key) isValue()         {}
func (*Fragment) isValue()   {}
func (*ParamTable) isValue() {}
func (Func) isValue()        {}
func (*Bound) isValue()      {}

// Attr is an attribute: a value together with the context it was stored or
// accessed with. The zero Attr is the null attribute.
type Attr struct {
	context *Object
	value   Value
}

// Args is a slot array passed to native functions.
type Args []Attr

// Null is the null attribute.
var Null Attr

// RefAttr returns an attribute referencing o.
func RefAttr(o *Object) Attr {
	if o == nil {
		return Null
	}
	return Attr{value: o}
}

// IntAttr returns an inline integer attribute.
func IntAttr(i int64) Attr { return Attr{value: Int(i)} }

// FloatAttr returns an inline float attribute.
func FloatAttr(v float64) Attr { return Attr{value: Float(v)} }

// BytesAttr returns an attribute holding a copy of b.
func BytesAttr(b []byte) Attr {
	return Attr{value: Bytes(append([]byte(nil), b...))}
}

// KeyAttr returns an attribute holding an attribute key.
func KeyAttr(k Key) Attr { return Attr{value: k} }

// FragmentAttr returns an attribute holding sequence storage.
func FragmentAttr(fr *Fragment) Attr { return Attr{value: fr} }

// ParamsAttr returns an attribute holding a parameter table.
func ParamsAttr(t *ParamTable) Attr { return Attr{value: t} }

// FuncAttr returns an attribute holding a native function.
func FuncAttr(fn Func) Attr { return Attr{value: fn} }

// WithContext returns value stored with the given context.
func WithContext(context *Object, value Attr) Attr {
	return Attr{context: context, value: value.value}
}

// Context returns the context a is stored with, if any.
func (a Attr) Context() *Object { return a.context }

// IsNull reports whether a is the null attribute.
func (a Attr) IsNull() bool { return a.value == nil }

// IsRef reports whether a references an object. This is the only kind test
// the core performs.
func (a Attr) IsRef() bool {
	_, ok := a.value.(*Object)
	return ok
}

// Ref returns the object a references.
func (a Attr) Ref() (*Object, bool) {
	o, ok := a.value.(*Object)
	return o, ok
}

// Int returns the inline integer held by a.
func (a Attr) Int() (Int, bool) {
	i, ok := a.value.(Int)
	return i, ok
}

// Float returns the inline float held by a.
func (a Attr) Float() (Float, bool) {
	v, ok := a.value.(Float)
	return v, ok
}

// Bytes returns the byte payload held by a.
func (a Attr) Bytes() (Bytes, bool) {
	b, ok := a.value.(Bytes)
	return b, ok
}

// Key returns the attribute key held by a.
func (a Attr) Key() (Key, bool) {
	k, ok := a.value.(Key)
	return k, ok
}

// Fragment returns the sequence storage held by a.
func (a Attr) Fragment() (*Fragment, bool) {
	fr, ok := a.value.(*Fragment)
	return fr, ok
}

// Params returns the parameter table held by a.
func (a Attr) Params() (*ParamTable, bool) {
	t, ok := a.value.(*ParamTable)
	return t, ok
}

// Func returns the native function held by a.
func (a Attr) Func() (Func, bool) {
	fn, ok := a.value.(Func)
	return fn, ok
}

// Bound returns the bound reference held by a.
func (a Attr) Bound() (*Bound, bool) {
	b, ok := a.value.(*Bound)
	return b, ok
}

// Is reports whether a and b hold the same value: the same object for
// references and equal payloads for inline values. Contexts are ignored.
func (a Attr) Is(b Attr) bool {
	switch v := a.value.(type) {
	case nil:
		return b.value == nil
	case *Object:
		w, ok := b.value.(*Object)
		return ok && v == w
	case Int:
		w, ok := b.value.(Int)
		return ok && v == w
	case Float:
		w, ok := b.value.(Float)
		return ok && v == w
	case Bytes:
		w, ok := b.value.(Bytes)
		return ok && bytes.Equal(v, w)
	case Key:
		w, ok := b.value.(Key)
		return ok && v == w
	case *Fragment:
		w, ok := b.value.(*Fragment)
		return ok && v == w
	case *ParamTable:
		w, ok := b.value.(*ParamTable)
		return ok && v == w
	case *Bound:
		w, ok := b.value.(*Bound)
		return ok && v.Receiver == w.Receiver && v.Owner == w.Owner && v.Callable == w.Callable
	}
	// Functions are not comparable.
	return false
}

func (a Attr) String() string {
	switch v := a.value.(type) {
	case nil:
		return "<null>"
	case *Object:
		return v.String()
	case Int:
		return fmt.Sprintf("%d", int64(v))
	case Float:
		return fmt.Sprintf("%g", float64(v))
	case Bytes:
		return fmt.Sprintf("%q", []byte(v))
	case Key:
		return fmt.Sprintf("<key %d:%d>", v.Pos, v.Code)
	case *Fragment:
		return fmt.Sprintf("<fragment %d/%d>", v.Len(), v.Cap())
	case *ParamTable:
		return fmt.Sprintf("<params %d..%d>", v.Min, v.Max)
	case Func:
		return "<native function>"
	case *Bound:
		return fmt.Sprintf("<bound %v of %v>", v.Callable, v.Receiver)
	}
	return "<unknown>"
}
