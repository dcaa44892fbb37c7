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

// NewInt returns a new int holding value.
func NewInt(f *Frame, value int64) (*Object, *Exc) {
	return newData(f, f.prog.classes["int"], IntAttr(value))
}

// ToInt returns the value of the int o.
func ToInt(f *Frame, o Attr) (int64, *Exc) {
	data, raised := dataOf(f, o, f.prog.classes["int"])
	if raised != nil {
		return 0, raised
	}
	i, ok := data.Int()
	if !ok {
		return 0, f.RaiseTypeError()
	}
	return int64(i), nil
}

func intAdd(f *Frame, args Args) (Attr, *Exc) {
	return intAddMulOp(f, args, intCheckedAdd)
}

func intSub(f *Frame, args Args) (Attr, *Exc) {
	return intAddMulOp(f, args, intCheckedSub)
}

func intMul(f *Frame, args Args) (Attr, *Exc) {
	return intAddMulOp(f, args, intCheckedMul)
}

func intDiv(f *Frame, args Args) (Attr, *Exc) {
	return intDivModOp(f, args, intCheckedDiv)
}

func intMod(f *Frame, args Args) (Attr, *Exc) {
	return intDivModOp(f, args, intCheckedMod)
}

func intOperands(f *Frame, args Args) (int64, int64, *Exc) {
	v, raised := ToInt(f, args[0])
	if raised != nil {
		return 0, 0, raised
	}
	w, raised := ToInt(f, args[1])
	if raised != nil {
		return 0, 0, raised
	}
	return v, w, nil
}

func intAddMulOp(f *Frame, args Args, fun func(v, w int64) (int64, bool)) (Attr, *Exc) {
	v, w, raised := intOperands(f, args)
	if raised != nil {
		return Null, raised
	}
	x, ok := fun(v, w)
	if !ok {
		return Null, f.RaiseOverflowError()
	}
	return intResult(f, x)
}

func intDivModOp(f *Frame, args Args, fun func(v, w int64) (int64, divModResult)) (Attr, *Exc) {
	v, w, raised := intOperands(f, args)
	if raised != nil {
		return Null, raised
	}
	x, r := fun(v, w)
	switch r {
	case divModOverflow:
		return Null, f.RaiseOverflowError()
	case divModZeroDivision:
		return Null, f.RaiseZeroDivisionError()
	}
	return intResult(f, x)
}

func intResult(f *Frame, x int64) (Attr, *Exc) {
	o, raised := NewInt(f, x)
	if raised != nil {
		return Null, raised
	}
	return RefAttr(o), nil
}
