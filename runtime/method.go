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

// TestContextUpdate reports whether attr, accessed through context, should
// be bound to context.
//
// An attribute stored without a context, or already carrying an instance
// context, is never rebound. An instance context rebinds a class-owned
// attribute if the instance belongs to the owning class, and raises
// TypeError otherwise. A class context rebinds attributes owned by the type
// class. Anything else is left alone, except that invoking it raises
// UnboundMethodInvocation.
func TestContextUpdate(f *Frame, context *Object, attr Attr, invoke bool) (bool, *Exc) {
	owner := attr.context
	if owner == nil || IsInstance(owner) {
		return false, nil
	}
	if IsInstance(context) {
		if TestCommonInstance(context, TypePos(owner), TypeCode(owner)) {
			return true, nil
		}
		return false, f.RaiseTypeError()
	}
	if TestSpecificType(owner, f.prog.typeClass) && IsTypeInstance(f, context) {
		return true, nil
	}
	if invoke {
		return false, f.RaiseUnboundMethodError()
	}
	return false, nil
}

// TestContext returns attr bound to context where TestContextUpdate says
// it should be, and attr unchanged otherwise.
func TestContext(f *Frame, context *Object, attr Attr) (Attr, *Exc) {
	update, raised := TestContextUpdate(f, context, attr, false)
	if raised != nil {
		return Null, raised
	}
	if update {
		return UpdateContext(context, attr), nil
	}
	return attr, nil
}

// UpdateContext binds the callable attr to context.
func UpdateContext(context *Object, attr Attr) Attr {
	target := UnwrapCallable(attr)
	callable, _ := target.Ref()
	return Attr{context: context, value: &Bound{Receiver: context, Owner: target.context, Callable: callable}}
}

// UnwrapCallable returns the callable underneath a bound reference, with
// its owner restored as the context. Other attributes are returned
// unchanged.
func UnwrapCallable(attr Attr) Attr {
	if b, ok := attr.Bound(); ok {
		return Attr{context: b.Owner, value: b.Callable}
	}
	return attr
}

// receiver returns the object a call through attr passes in the context
// slot: the receiver of a bound reference, or the context of anything else.
func receiver(attr Attr) *Object {
	if b, ok := attr.Bound(); ok {
		return b.Receiver
	}
	return attr.context
}

// GetFunction returns the native function to run when target is called
// with context in its context slot. A context that cannot call target, one
// that is neither null nor an instance nor a class calling a type method,
// yields a function raising UnboundMethodInvocation.
func GetFunction(f *Frame, context *Object, target Attr) (Func, *Exc) {
	target = UnwrapCallable(target)
	o, ok := target.Ref()
	if !ok {
		return nil, f.RaiseTypeError()
	}
	if !canCall(f, context, target) {
		return unboundMethod, nil
	}
	fn, ok := LoadViaObject(o, f.prog.layout.Fn.Pos).Func()
	if !ok {
		return nil, f.RaiseTypeError()
	}
	return fn, nil
}

// CheckAndGetFunction is GetFunction for targets not known to be callable.
func CheckAndGetFunction(f *Frame, context *Object, target Attr) (Func, *Exc) {
	target = UnwrapCallable(target)
	o, ok := target.Ref()
	if !ok {
		return nil, f.RaiseTypeError()
	}
	if !canCall(f, context, target) {
		return unboundMethod, nil
	}
	fnKey := f.prog.layout.Fn
	fnAttr, raised := CheckAndLoadViaObject(f, o, fnKey.Pos, fnKey.Code)
	if raised != nil {
		return nil, raised
	}
	fn, ok := fnAttr.Func()
	if !ok {
		return nil, f.RaiseTypeError()
	}
	return fn, nil
}

func canCall(f *Frame, context *Object, target Attr) bool {
	return context == nil || IsInstance(context) ||
		(TestSpecificType(target.context, f.prog.typeClass) && IsTypeInstance(f, context))
}
