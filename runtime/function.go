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

// NewFunction creates a function object named name that runs fn with
// arguments resolved against params. defaults holds the default values of
// the trailing parameters, in slot order; missing defaults may be set
// later with SetDefault.
func NewFunction(f *Frame, name string, fn Func, params *ParamTable, defaults ...Attr) (*Object, *Exc) {
	p := f.prog
	numDefaults := params.Max - params.Min
	if len(defaults) > numDefaults {
		logFatal(fmt.Sprintf("%s() has %d defaults for %d optional parameters", name, len(defaults), numDefaults))
	}
	o, raised := newSized(f, p.functionTable, p.functionClass, p.functionTable.Size()+numDefaults)
	if raised != nil {
		return nil, raised
	}
	s, raised := NewStr(f, name)
	if raised != nil {
		return nil, raised
	}
	StoreViaObject(o, p.layout.Fn.Pos, FuncAttr(fn))
	StoreViaObject(o, p.layout.Args.Pos, ParamsAttr(params))
	StoreViaObject(o, p.layout.Name.Pos, RefAttr(s))
	for i, d := range defaults {
		SetDefault(o, i, d)
	}
	return o, nil
}

// Call invokes callable with positional arguments only. The context slot
// receives the callable's own context, so a bound method is called with
// its receiver and a method accessed through its class is not callable.
func Call(f *Frame, callable Attr, args ...Attr) (Attr, *Exc) {
	allArgs := f.MakeArgs(len(args) + 1)
	allArgs[0] = RefAttr(receiver(callable))
	copy(allArgs[1:], args)
	result, raised := Invoke(f, callable, false, nil, nil, allArgs)
	f.FreeArgs(allArgs)
	return result, raised
}

// FunctionName returns the __name__ of the function object fn.
func FunctionName(f *Frame, fn *Object) string {
	nameKey := f.prog.layout.Name
	name, ok := checkAndLoadViaObjectNull(fn, nameKey.Pos, nameKey.Code).Ref()
	if !ok {
		return "?"
	}
	s, ok := ToStr(f, name)
	if !ok {
		return "?"
	}
	return s
}
