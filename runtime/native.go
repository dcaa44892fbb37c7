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

// natives maps declared function names to their implementations. Names of
// the form "class.attr" are installed as methods of the class.
var natives = map[string]Func{
	"isinstance":        builtinIsInstance,
	"issubclass":        builtinIsSubclass,
	"getattr":           builtinGetAttr,
	"get_using":         builtinGetUsing,
	"is_":               builtinIs,
	"is_not":            builtinIsNot,
	"list.append":       listAppend,
	"list.__len__":      listLen,
	"list.__getitem__":  listGetItem,
	"tuple.__len__":     tupleLen,
	"tuple.__getitem__": tupleGetItem,
	"int.__add__":       intAdd,
	"int.__sub__":       intSub,
	"int.__mul__":       intMul,
	"int.__div__":       intDiv,
	"int.__mod__":       intMod,
	"float.__add__":     floatAdd,
	"float.__sub__":     floatSub,
	"float.__mul__":     floatMul,
	"float.__div__":     floatDiv,
}

func builtinIsInstance(f *Frame, args Args) (Attr, *Exc) {
	ret, raised := IsInstanceCheck(f, args[1], args[2])
	if raised != nil {
		return Null, raised
	}
	return RefAttr(f.prog.GetBool(ret)), nil
}

func builtinIsSubclass(f *Frame, args Args) (Attr, *Exc) {
	ret, raised := IsSubclassCheck(f, args[1], args[2])
	if raised != nil {
		return Null, raised
	}
	return RefAttr(f.prog.GetBool(ret)), nil
}

func builtinGetAttr(f *Frame, args Args) (Attr, *Exc) {
	return ObjectGetAttr(f, args[1], args[2], args[3])
}

func builtinGetUsing(f *Frame, args Args) (Attr, *Exc) {
	instance, ok := args[2].Ref()
	if !ok {
		return Null, f.RaiseTypeError()
	}
	return GetUsing(args[1], instance), nil
}

func builtinIs(f *Frame, args Args) (Attr, *Exc) {
	return RefAttr(f.prog.GetBool(args[1].Is(args[2]))), nil
}

func builtinIsNot(f *Frame, args Args) (Attr, *Exc) {
	return RefAttr(f.prog.GetBool(!args[1].Is(args[2]))), nil
}
