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
	"math"
)

// NewFloat returns a new float holding value.
func NewFloat(f *Frame, value float64) (*Object, *Exc) {
	return newData(f, f.prog.classes["float"], FloatAttr(value))
}

// ToFloat returns the value of the float o.
func ToFloat(f *Frame, o Attr) (float64, *Exc) {
	data, raised := dataOf(f, o, f.prog.classes["float"])
	if raised != nil {
		return 0, raised
	}
	v, ok := data.Float()
	if !ok {
		return 0, f.RaiseTypeError()
	}
	return float64(v), nil
}

func floatAdd(f *Frame, args Args) (Attr, *Exc) {
	return floatArithmeticOp(f, args, false, func(v, w float64) float64 { return v + w })
}

func floatSub(f *Frame, args Args) (Attr, *Exc) {
	return floatArithmeticOp(f, args, false, func(v, w float64) float64 { return v - w })
}

func floatMul(f *Frame, args Args) (Attr, *Exc) {
	return floatArithmeticOp(f, args, true, func(v, w float64) float64 { return v * w })
}

func floatDiv(f *Frame, args Args) (Attr, *Exc) {
	w, raised := ToFloat(f, args[1])
	if raised != nil {
		return Null, raised
	}
	if w == 0 {
		return Null, f.RaiseZeroDivisionError()
	}
	return floatArithmeticOp(f, args, true, func(v, w float64) float64 { return v / w })
}

// floatArithmeticOp applies fun to the operands. scaling operations can
// flush a result from non-zero operands to zero, which is an underflow.
func floatArithmeticOp(f *Frame, args Args, scaling bool, fun func(v, w float64) float64) (Attr, *Exc) {
	v, raised := ToFloat(f, args[0])
	if raised != nil {
		return Null, raised
	}
	w, raised := ToFloat(f, args[1])
	if raised != nil {
		return Null, raised
	}
	x := fun(v, w)
	if scaling && x == 0 && v != 0 && w != 0 && !math.IsInf(v, 0) && !math.IsInf(w, 0) {
		return Null, f.RaiseUnderflowError()
	}
	x, raised = floatCheckedResult(f, v, w, x)
	if raised != nil {
		return Null, raised
	}
	o, raised := NewFloat(f, x)
	if raised != nil {
		return Null, raised
	}
	return RefAttr(o), nil
}
