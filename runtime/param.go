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

// Param is a parameter table entry: the code of a parameter name and the
// argument slot it fills. In keyword argument lists Pos instead holds the
// parameter table position of the name.
type Param struct {
	Code uint32
	Pos  int
}

// ParamTable describes a callable's parameters. It is indexed by parameter
// position, a namespace separate from attribute positions. Min and Max
// bound the number of argument slots, including the context slot.
type ParamTable struct {
	params []Param
	Min    int
	Max    int
}

// NewParamTable returns a parameter table with the given entries.
func NewParamTable(min, max int, params ...Param) *ParamTable {
	if min < 0 || min > max {
		logFatal(fmt.Sprintf("invalid parameter bounds %d..%d", min, max))
	}
	return &ParamTable{append([]Param(nil), params...), min, max}
}

// Size returns the number of parameter positions covered by t.
func (t *ParamTable) Size() int {
	return len(t.params)
}

// HasParam returns the argument slot of the parameter identified by code
// at parameter position ppos, or -1 if t has no such parameter.
func (t *ParamTable) HasParam(ppos int, code uint32) int {
	if ppos >= 0 && ppos < len(t.params) {
		if p := t.params[ppos]; p.Code == code {
			return p.Pos
		}
	}
	return -1
}

// Invoke calls callable with the argument slots args, whose first element
// is the context, and the keyword arguments kwargs named by kwcodes.
// Positional arguments fill slots in order, keywords fill the slots their
// names map to and defaults fill whatever remains. A keyword naming an
// unknown parameter or a slot already filled raises TypeError, as does an
// argument count outside the callable's bounds. alwaysCallable skips the
// checks made when resolving the function to call.
func Invoke(f *Frame, callable Attr, alwaysCallable bool, kwcodes []Param, kwargs []Attr, args Args) (Attr, *Exc) {
	target := UnwrapCallable(callable)
	o, ok := target.Ref()
	if !ok {
		return Null, f.RaiseTypeError()
	}
	argsKey := f.prog.layout.Args
	paramsAttr, raised := CheckAndLoadViaObject(f, o, argsKey.Pos, argsKey.Code)
	if raised != nil {
		return Null, raised
	}
	ptable, ok := paramsAttr.Params()
	if !ok {
		return Null, f.RaiseTypeError()
	}
	if len(kwcodes) != len(kwargs) {
		logFatal(fmt.Sprintf("%d keyword codes for %d keyword arguments", len(kwcodes), len(kwargs)))
	}
	nargs, nkwargs := len(args), len(kwargs)
	min, max := ptable.Min, ptable.Max
	if nargs == max && nkwargs == 0 {
		return dispatch(f, target, alwaysCallable, args)
	}
	if total := nargs + nkwargs; total < min || total > max {
		return Null, f.RaiseTypeError()
	}
	allArgs := f.MakeArgs(max)
	defer f.FreeArgs(allArgs)
	copy(allArgs, args)
	for i, kw := range kwcodes {
		pos := ptable.HasParam(kw.Pos, kw.Code)
		// A keyword may neither name an unknown parameter nor refill a
		// slot taken by a positional argument or an earlier keyword.
		if pos < nargs || pos >= max || !allArgs[pos].IsNull() {
			return Null, f.RaiseTypeError()
		}
		allArgs[pos] = kwargs[i]
	}
	for pos := nargs; pos < max; pos++ {
		if allArgs[pos].IsNull() {
			if pos < min {
				return Null, f.RaiseTypeError()
			}
			allArgs[pos] = GetDefault(o, pos-min)
		}
	}
	return dispatch(f, target, alwaysCallable, allArgs)
}

// dispatch calls the function of target with fully resolved arguments in a
// child frame.
func dispatch(f *Frame, target Attr, alwaysCallable bool, args Args) (Attr, *Exc) {
	var context *Object
	if len(args) > 0 {
		context, _ = args[0].Ref()
	}
	var fn Func
	var raised *Exc
	if alwaysCallable {
		fn, raised = GetFunction(f, context, target)
	} else {
		fn, raised = CheckAndGetFunction(f, context, target)
	}
	if raised != nil {
		return Null, raised
	}
	child := newChildFrame(f)
	result, raised := fn(child, args)
	child.release()
	return result, raised
}

// SetDefault stores the default value of the parameter in slot min+index of
// the function fn. Defaults live after the attributes covered by the
// function's table.
func SetDefault(fn *Object, index int, value Attr) {
	StoreViaObject(fn, fn.table.Size()+index, value)
}

// GetDefault returns the default value of the parameter in slot min+index
// of the function fn.
func GetDefault(fn *Object, index int) Attr {
	return LoadViaObject(fn, fn.table.Size()+index)
}
