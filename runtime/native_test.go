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
	"testing"
)

// callMethod looks name up on o's class, binds it to o and calls it.
func callMethod(f *Frame, o *Object, name string, args ...Attr) (Attr, *Exc) {
	key := mustAttr(f.prog, name)
	method, raised := CheckAndLoadViaClass(f, o, key.Pos, key.Code)
	if raised != nil {
		return Null, raised
	}
	bound, raised := TestContext(f, o, method)
	if raised != nil {
		return Null, raised
	}
	return Call(f, bound, args...)
}

func TestIntBinaryOps(t *testing.T) {
	f := newTestProgram(t).NewRootFrame()
	cases := []struct {
		op      string
		v, w    int64
		want    int64
		wantExc string
	}{
		{"__add__", 1, 2, 3, ""},
		{"__add__", MaxInt, 1, 0, OverflowErrorName},
		{"__add__", MinInt, -1, 0, OverflowErrorName},
		{"__sub__", 1, 2, -1, ""},
		{"__sub__", MinInt, 1, 0, OverflowErrorName},
		{"__sub__", MaxInt, -1, 0, OverflowErrorName},
		{"__mul__", -3, 4, -12, ""},
		{"__mul__", MaxInt, 2, 0, OverflowErrorName},
		{"__mul__", MinInt, -1, 0, OverflowErrorName},
		{"__mul__", MinInt, 1, MinInt, ""},
		{"__div__", 7, 2, 3, ""},
		{"__div__", -7, 2, -4, ""},
		{"__div__", 7, -2, -4, ""},
		{"__div__", 7, 0, 0, ZeroDivisionErrorName},
		{"__div__", MinInt, -1, 0, OverflowErrorName},
		{"__mod__", 7, 2, 1, ""},
		{"__mod__", -7, 2, 1, ""},
		{"__mod__", 7, -2, -1, ""},
		{"__mod__", 7, 0, 0, ZeroDivisionErrorName},
		{"__mod__", MinInt, -1, 0, ""},
		{"__mod__", -7, -1, 0, ""},
	}
	for _, cas := range cases {
		v := mustNotRaiseObject(NewInt(f, cas.v))
		got, raised := callMethod(f, v, cas.op, newIntAttr(f, cas.w))
		if excName := excClassName(raised); excName != cas.wantExc {
			t.Errorf("%d.%s(%d) raised %q, want %q", cas.v, cas.op, cas.w, excName, cas.wantExc)
			continue
		}
		if cas.wantExc != "" {
			continue
		}
		if i, raised := ToInt(f, got); raised != nil || i != cas.want {
			t.Errorf("%d.%s(%d) = %v, want %d", cas.v, cas.op, cas.w, got, cas.want)
		}
	}
}

func TestIntOperandTypes(t *testing.T) {
	f := newTestProgram(t).NewRootFrame()
	v := mustNotRaiseObject(NewInt(f, 1))
	if _, raised := callMethod(f, v, "__add__", RefAttr(mustNotRaiseObject(NewFloat(f, 1)))); excClassName(raised) != TypeErrorName {
		t.Errorf("1 + 1.0 raised %v, want %s", raised, TypeErrorName)
	}
	if _, raised := ToInt(f, IntAttr(1)); excClassName(raised) != TypeErrorName {
		t.Errorf("ToInt(inline 1) raised %v, want %s", raised, TypeErrorName)
	}
	// bool is not an int subclass here.
	if _, raised := ToInt(f, RefAttr(f.prog.True)); excClassName(raised) != TypeErrorName {
		t.Errorf("ToInt(True) raised %v, want %s", raised, TypeErrorName)
	}
}

func TestFloatBinaryOps(t *testing.T) {
	f := newTestProgram(t).NewRootFrame()
	inf := math.Inf(1)
	cases := []struct {
		op      string
		v, w    float64
		want    float64
		wantExc string
	}{
		{"__add__", 1.5, 2.25, 3.75, ""},
		{"__add__", math.MaxFloat64, math.MaxFloat64, 0, OverflowErrorName},
		{"__add__", inf, 1, inf, ""},
		{"__sub__", inf, inf, 0, FloatingPointErrorName},
		{"__sub__", 1, 0.5, 0.5, ""},
		{"__mul__", 1e308, 10, 0, OverflowErrorName},
		{"__mul__", 1e-308, 1e-308, 0, UnderflowErrorName},
		{"__mul__", 1e-200, 1e-120, 0, UnderflowErrorName},
		{"__mul__", 0, 1e-308, 0, ""},
		{"__mul__", inf, 0, 0, FloatingPointErrorName},
		{"__div__", 1, 4, 0.25, ""},
		{"__div__", 1, 0, 0, ZeroDivisionErrorName},
		{"__div__", 1e-308, 1e300, 0, UnderflowErrorName},
		{"__div__", 1e308, 1e-10, 0, OverflowErrorName},
	}
	for _, cas := range cases {
		v := mustNotRaiseObject(NewFloat(f, cas.v))
		w := RefAttr(mustNotRaiseObject(NewFloat(f, cas.w)))
		got, raised := callMethod(f, v, cas.op, w)
		if excName := excClassName(raised); excName != cas.wantExc {
			t.Errorf("%g.%s(%g) raised %q, want %q", cas.v, cas.op, cas.w, excName, cas.wantExc)
			continue
		}
		if cas.wantExc != "" {
			continue
		}
		if x, raised := ToFloat(f, got); raised != nil || x != cas.want {
			t.Errorf("%g.%s(%g) = %v, want %g", cas.v, cas.op, cas.w, got, cas.want)
		}
	}
}

func TestListMethods(t *testing.T) {
	p := newTestProgram(t)
	f := p.NewRootFrame()
	l := mustNotRaiseObject(NewDataList(f, []Attr{IntAttr(1), IntAttr(2)}))
	for i := 3; i <= 5; i++ {
		got, raised := callMethod(f, l, "append", IntAttr(int64(i)))
		if raised != nil || !got.Is(RefAttr(p.None)) {
			t.Fatalf("append(%d) = %v, %v, want None", i, got, raised)
		}
	}
	if n, raised := ToInt(f, mustNotRaise(callMethod(f, l, "__len__"))); raised != nil || n != 5 {
		t.Errorf("len(l) = %d, %v, want 5", n, raised)
	}
	values := mustNotRaiseValues(ListValues(f, RefAttr(l)))
	for i, v := range values {
		if !v.Is(IntAttr(int64(i + 1))) {
			t.Errorf("l[%d] = %v, want %d", i, v, i+1)
		}
	}
	checkGetItem(t, f, l, 5)
}

func TestTupleMethods(t *testing.T) {
	p := newTestProgram(t)
	f := p.NewRootFrame()
	tup := mustNotRaiseObject(NewDataTuple(f, []Attr{IntAttr(1), IntAttr(2), IntAttr(3)}))
	if n, raised := ToInt(f, mustNotRaise(callMethod(f, tup, "__len__"))); raised != nil || n != 3 {
		t.Errorf("len(t) = %d, %v, want 3", n, raised)
	}
	checkGetItem(t, f, tup, 3)
	if _, raised := callMethod(f, tup, "append", IntAttr(4)); excClassName(raised) != TypeErrorName {
		t.Errorf("tuple append raised %v, want %s", raised, TypeErrorName)
	}
	if _, raised := TupleValues(f, RefAttr(mustNotRaiseObject(NewDataList(f, nil)))); excClassName(raised) != TypeErrorName {
		t.Errorf("TupleValues(list) raised %v, want %s", raised, TypeErrorName)
	}
}

// checkGetItem checks indexing of a sequence holding 1..n.
func checkGetItem(t *testing.T, f *Frame, seq *Object, n int64) {
	t.Helper()
	cases := []struct {
		index   int64
		want    int64
		wantExc string
	}{
		{0, 1, ""},
		{n - 1, n, ""},
		{-1, n, ""},
		{-n, 1, ""},
		{n, 0, ValueErrorName},
		{-n - 1, 0, ValueErrorName},
	}
	for _, cas := range cases {
		index := newIntAttr(f, cas.index)
		got, raised := callMethod(f, seq, "__getitem__", index)
		if excName := excClassName(raised); excName != cas.wantExc {
			t.Errorf("%v[%d] raised %q, want %q", seq, cas.index, excName, cas.wantExc)
			continue
		}
		if cas.wantExc != "" {
			value := LoadViaObject(mustRef(raised.Arg), f.prog.Layout().Value.Pos)
			if !value.Is(index) {
				t.Errorf("%v[%d] raised with value %v, want the index", seq, cas.index, value)
			}
			continue
		}
		if !got.Is(IntAttr(cas.want)) {
			t.Errorf("%v[%d] = %v, want %d", seq, cas.index, got, cas.want)
		}
	}
	if _, raised := callMethod(f, seq, "__getitem__", IntAttr(0)); excClassName(raised) != TypeErrorName {
		t.Errorf("%v[inline 0] raised %v, want %s", seq, raised, TypeErrorName)
	}
}
