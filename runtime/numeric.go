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

const (
	// MaxInt is the largest value an int payload can hold.
	MaxInt = math.MaxInt64
	// MinInt is the smallest value an int payload can hold. The absolute
	// value of MinInt is MaxInt+1, thus it can be tricky to deal with.
	MinInt = math.MinInt64
)

type divModResult int

const (
	divModOK           divModResult = iota
	divModOverflow                  = iota
	divModZeroDivision              = iota
)

func intCheckedAdd(v, w int64) (int64, bool) {
	if (v > 0 && w > MaxInt-v) || (v < 0 && w < MinInt-v) {
		return 0, false
	}
	return v + w, true
}

func intCheckedSub(v, w int64) (int64, bool) {
	if (w > 0 && v < MinInt+w) || (w < 0 && v > MaxInt+w) {
		return 0, false
	}
	return v - w, true
}

func intCheckedMul(v, w int64) (int64, bool) {
	if v == 0 || w == 0 || v == 1 || w == 1 {
		return v * w, true
	}
	// MinInt can only be multiplied by zero and one safely. MinInt * -1
	// overflows to MinInt, which the division check below would miss.
	if v == MinInt || w == MinInt {
		return 0, false
	}
	x := v * w
	if x/w != v {
		return 0, false
	}
	return x, true
}

func intCheckedDivMod(v, w int64) (int64, int64, divModResult) {
	if w == 0 {
		return 0, 0, divModZeroDivision
	}
	if v == MinInt && w == -1 {
		return 0, 0, divModOverflow
	}
	q := v / w
	m := v % w
	if m != 0 && (w^m) < 0 {
		// The modulo takes the sign of the divisor and division
		// truncates toward negative infinity, whereas Go's operators
		// follow the dividend and truncate toward zero.
		m += w
		q--
	}
	return q, m, divModOK
}

func intCheckedDiv(v, w int64) (int64, divModResult) {
	q, _, r := intCheckedDivMod(v, w)
	return q, r
}

func intCheckedMod(v, w int64) (int64, divModResult) {
	if w == -1 {
		// Only the quotient of MinInt / -1 overflows.
		return 0, divModOK
	}
	_, m, r := intCheckedDivMod(v, w)
	return m, r
}

// floatCheckedResult classifies the result of a float operation on finite
// operands x and y.
func floatCheckedResult(f *Frame, x, y, result float64) (float64, *Exc) {
	switch {
	case math.IsNaN(result):
		return 0, f.RaiseFloatingPointError()
	case math.IsInf(result, 0):
		if math.IsInf(x, 0) || math.IsInf(y, 0) {
			return result, nil
		}
		return 0, f.RaiseOverflowError()
	case result != 0 && math.Abs(result) < math.SmallestNonzeroFloat64*(1<<52):
		// Subnormal results have lost precision.
		return 0, f.RaiseUnderflowError()
	}
	return result, nil
}
