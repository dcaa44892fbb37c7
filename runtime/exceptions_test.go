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
	"strings"
	"testing"
)

func TestRaiseHierarchy(t *testing.T) {
	p := newTestProgram(t)
	f := p.NewRootFrame()
	cases := []struct {
		raised *Exc
		name   string
		base   string
	}{
		{f.RaiseTypeError(), TypeErrorName, ExceptionName},
		{f.RaiseUnboundMethodError(), UnboundMethodInvocationName, ExceptionName},
		{f.RaiseMemoryError(), MemoryErrorName, ExceptionName},
		{f.RaiseOverflowError(), OverflowErrorName, ArithmeticErrorName},
		{f.RaiseUnderflowError(), UnderflowErrorName, ArithmeticErrorName},
		{f.RaiseZeroDivisionError(), ZeroDivisionErrorName, ArithmeticErrorName},
		{f.RaiseFloatingPointError(), FloatingPointErrorName, ArithmeticErrorName},
		{f.RaiseEOFError(), EOFErrorName, ExceptionName},
		{f.RaiseIOError(IntAttr(5)), IOErrorName, ExceptionName},
		{f.RaiseOSError(IntAttr(2), IntAttr(7)), OSErrorName, ExceptionName},
		{f.RaiseValueError(IntAttr(9)), ValueErrorName, ExceptionName},
	}
	for _, cas := range cases {
		if got := cas.raised.ClassName(); got != cas.name {
			t.Errorf("raised %q, want %q", got, cas.name)
		}
		if cas.raised.Kind != Raising {
			t.Errorf("%s kind = %v, want %v", cas.name, cas.raised.Kind, Raising)
		}
		o := mustRef(cas.raised.Arg)
		for _, base := range []string{cas.base, BaseExceptionName} {
			if !IsInstanceOf(o, mustClass(p, base)) {
				t.Errorf("%s is not an instance of %s", cas.name, base)
			}
		}
	}
}

func TestRaiseDetails(t *testing.T) {
	p := newTestProgram(t)
	f := p.NewRootFrame()
	value, arg := p.Layout().Value, p.Layout().Arg
	osErr := mustRef(f.RaiseOSError(IntAttr(2), IntAttr(7)).Arg)
	if got := LoadViaObject(osErr, value.Pos); !got.Is(IntAttr(2)) {
		t.Errorf("OSError value = %v, want 2", got)
	}
	if got := LoadViaObject(osErr, arg.Pos); !got.Is(IntAttr(7)) {
		t.Errorf("OSError arg = %v, want 7", got)
	}
	ioErr := mustRef(f.RaiseIOError(IntAttr(5)).Arg)
	if got := LoadViaObject(ioErr, value.Pos); !got.Is(IntAttr(5)) {
		t.Errorf("IOError value = %v, want 5", got)
	}
	// MemoryError never allocates, so every raise carries the same
	// instance.
	if a, b := f.RaiseMemoryError(), f.RaiseMemoryError(); !a.Arg.Is(b.Arg) {
		t.Errorf("MemoryError instances differ: %v and %v", a.Arg, b.Arg)
	}
}

func TestRaiseMissingClass(t *testing.T) {
	f := newTestProgram(t).NewRootFrame()
	msg := captureFatal(func() { f.raiseNamed("NoSuchError") })
	if !strings.Contains(msg, "NoSuchError") {
		t.Errorf("raising a missing class logged %q", msg)
	}
}

func TestEnsureInstance(t *testing.T) {
	p := newTestProgram(t)
	f := p.NewRootFrame()
	inst := RefAttr(newInstance(f, "Point"))
	if got := mustNotRaise(EnsureInstance(f, inst)); !got.Is(inst) {
		t.Errorf("EnsureInstance(instance) = %v, want %v", got, inst)
	}
	got := mustNotRaise(EnsureInstance(f, RefAttr(mustClass(p, ValueErrorName))))
	if o := mustRef(got); !TestSpecificInstance(o, mustClass(p, ValueErrorName)) {
		t.Errorf("EnsureInstance(ValueError) = %v, want a ValueError instance", got)
	}
	if _, raised := EnsureInstance(f, IntAttr(1)); excClassName(raised) != TypeErrorName {
		t.Errorf("EnsureInstance(1) raised %v, want %s", raised, TypeErrorName)
	}
}

func TestExcString(t *testing.T) {
	f := newTestProgram(t).NewRootFrame()
	cases := []struct {
		e    *Exc
		want string
	}{
		{nil, "nil"},
		{f.Return(IntAttr(3)), "completing 3"},
		{f.Complete(), "completing <null>"},
		{f.RaiseElse(IntAttr(1)), "raising-else 1"},
	}
	for _, cas := range cases {
		if got := cas.e.String(); got != cas.want {
			t.Errorf("String() = %q, want %q", got, cas.want)
		}
	}
	if got := (&Exc{Arg: IntAttr(1)}).ClassName(); got != "" {
		t.Errorf("ClassName() of an inline value = %q, want empty", got)
	}
	if got := ExcKind(9).String(); got != "ExcKind(9)" {
		t.Errorf("ExcKind(9).String() = %q", got)
	}
}
