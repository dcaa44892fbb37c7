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
	"os"

	"github.com/tliron/commonlog"
)

var (
	logger   = commonlog.GetLogger("lichen.runtime")
	logFatal = func(msg string) {
		logger.Critical(msg)
		os.Exit(1)
	}
)

// IsInstanceOf reports whether obj is an instance of cls or of one of its
// subclasses.
func IsInstanceOf(obj, cls *Object) bool {
	return IsInstance(obj) && IsSubclassOf(GetClass(obj), cls)
}

// IsSubclassOf reports whether obj is cls or a subclass of it. Every class
// table holds the type attributes of the class and all of its ancestors.
func IsSubclassOf(obj, cls *Object) bool {
	return cls != nil && !IsInstance(cls) && HasAttr(obj, TypePos(cls), TypeCode(cls))
}

// IsInstanceCheck implements isinstance(obj, cls). cls must be a class.
func IsInstanceCheck(f *Frame, obj, cls Attr) (bool, *Exc) {
	c, ok := cls.Ref()
	if !ok || IsInstance(c) {
		return false, f.RaiseTypeError()
	}
	o, ok := obj.Ref()
	return ok && IsInstanceOf(o, c), nil
}

// IsSubclassCheck implements issubclass(obj, cls). cls must be a class.
func IsSubclassCheck(f *Frame, obj, cls Attr) (bool, *Exc) {
	c, ok := cls.Ref()
	if !ok || IsInstance(c) {
		return false, f.RaiseTypeError()
	}
	o, ok := obj.Ref()
	return ok && IsSubclassOf(o, c), nil
}

// ObjectGetAttr implements getattr(obj, name, def): name is a str whose
// key identifies the attribute. obj itself is tried first and then its
// class, binding class methods to obj. def is returned when the attribute
// is missing; a null def raises TypeError instead.
func ObjectGetAttr(f *Frame, obj, name, def Attr) (Attr, *Exc) {
	o, ok := obj.Ref()
	if !ok {
		return Null, f.RaiseTypeError()
	}
	s, ok := name.Ref()
	if !ok {
		return Null, f.RaiseTypeError()
	}
	keyKey := f.prog.layout.Key
	keyAttr, raised := CheckAndLoadViaObject(f, s, keyKey.Pos, keyKey.Code)
	if raised != nil {
		return Null, raised
	}
	key, _ := keyAttr.Key()
	if key != (Key{}) {
		if out := checkAndLoadViaObjectNull(o, key.Pos, key.Code); !out.IsNull() {
			return out, nil
		}
		if out := checkAndLoadViaObjectNull(GetClass(o), key.Pos, key.Code); !out.IsNull() {
			return TestContext(f, o, out)
		}
	}
	if def.IsNull() {
		return Null, f.RaiseTypeError()
	}
	return def, nil
}

// GetUsing binds callable to instance.
func GetUsing(callable Attr, instance *Object) Attr {
	return UpdateContext(instance, callable)
}
