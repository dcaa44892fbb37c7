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
	"reflect"
	"strings"
	"testing"
)

func TestFrameArgsCache(t *testing.T) {
	f := newTestProgram(t).NewRootFrame()
	args1 := f.MakeArgs(0)
	if args1 != nil {
		t.Errorf("f.MakeArgs(0) = %v, want nil", args1)
	}
	args2 := f.MakeArgs(1)
	if argc := len(args2); argc != 1 {
		t.Errorf("f.MakeArgs(1) had len %d, want len 1", argc)
	}
	if arg0 := args2[0]; !arg0.IsNull() {
		t.Errorf("f.MakeArgs(1)[0] = %v, want null", arg0)
	}
	args2[0] = IntAttr(1) // Make sure this is cleared in MakeArgs result below.
	f.FreeArgs(args2)
	args3 := f.MakeArgs(1)
	if &args2[0] != &args3[0] {
		t.Error("freed arg slice not returned from cache")
	}
	if arg0 := args3[0]; !arg0.IsNull() {
		t.Errorf("f.MakeArgs(1)[0] = %v, want null", arg0)
	}
	args4 := f.MakeArgs(1000)
	if argc := len(args4); argc != 1000 {
		t.Errorf("f.MakeArgs(1000) had len %d, want len 1000", argc)
	}
	// Make sure the cache doesn't overflow when overfed.
	for i := 0; i < 100; i++ {
		f.FreeArgs(make(Args, argsCacheArgc))
	}
	args5 := f.MakeArgs(2)
	if argc := len(args5); argc != 2 {
		t.Errorf("f.MakeArgs(2) had len %d, want len 2", argc)
	}
}

func TestFrameChildSharesThreadState(t *testing.T) {
	p := newTestProgram(t)
	f := p.NewRootFrame()
	child := newChildFrame(f)
	if child.threadState != f.threadState || child.back != f {
		t.Errorf("child frame does not share its parent's thread state")
	}
	if child.Program() != p {
		t.Errorf("child.Program() = %v, want %v", child.Program(), p)
	}
	child.release()
	if reused := newChildFrame(f); reused != child {
		t.Errorf("released frame not reused")
	}
	if other := p.NewRootFrame(); other.threadState == f.threadState {
		t.Errorf("root frames share thread state")
	}
}

func TestTryNesting(t *testing.T) {
	f := newTestProgram(t).NewRootFrame()
	var events []string
	record := func(event string, depth int) {
		events = append(events, event)
		if got := f.Depth(); got != depth {
			t.Errorf("%s: depth %d, want %d", event, got, depth)
		}
	}
	_, raised := f.Try(func(f *Frame) (Attr, *Exc) {
		record("outer body", 1)
		return f.Try(func(f *Frame) (Attr, *Exc) {
			record("inner body", 2)
			return Null, f.RaiseTypeError()
		}, func(f *Frame, e *Exc) (Attr, *Exc) {
			record("inner catch", 1)
			return Null, f.Throw(e)
		})
	}, func(f *Frame, e *Exc) (Attr, *Exc) {
		record("outer catch", 0)
		if got := e.ClassName(); got != TypeErrorName {
			t.Errorf("outer catch received %s, want %s", got, TypeErrorName)
		}
		return IntAttr(1), nil
	})
	if raised != nil {
		t.Errorf("Try() raised %v", raised)
	}
	want := []string{"outer body", "inner body", "inner catch", "outer catch"}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %v, want %v", events, want)
	}
	if f.Depth() != 0 {
		t.Errorf("depth %d after Try, want 0", f.Depth())
	}
}

func TestTryNilCatchRethrows(t *testing.T) {
	f := newTestProgram(t).NewRootFrame()
	caught := false
	f.Try(func(f *Frame) (Attr, *Exc) {
		return f.Try(func(f *Frame) (Attr, *Exc) {
			return Null, f.RaiseEOFError()
		}, nil)
	}, func(f *Frame, e *Exc) (Attr, *Exc) {
		caught = e.ClassName() == EOFErrorName
		return Null, nil
	})
	if !caught {
		t.Errorf("EOFError not rethrown to the outer region")
	}
}

func TestTryPassesResult(t *testing.T) {
	f := newTestProgram(t).NewRootFrame()
	got, raised := f.Try(func(f *Frame) (Attr, *Exc) {
		return IntAttr(42), nil
	}, func(f *Frame, e *Exc) (Attr, *Exc) {
		t.Errorf("catch called with %v", e)
		return Null, nil
	})
	if raised != nil || !got.Is(IntAttr(42)) {
		t.Errorf("Try() = %v, %v, want 42, nil", got, raised)
	}
}

func TestTryForeignException(t *testing.T) {
	f := newTestProgram(t).NewRootFrame()
	stale := f.RaiseTypeError()
	msg := captureFatal(func() {
		f.Try(func(f *Frame) (Attr, *Exc) {
			return Null, stale
		}, nil)
	})
	if !strings.Contains(msg, "protected region") {
		t.Errorf("returning a foreign exception logged %q, want a region error", msg)
	}
	if f.Depth() != 0 || f.region != nil {
		t.Errorf("region not restored after fatal error")
	}
}

func TestTryRestoresRegionOnPanic(t *testing.T) {
	f := newTestProgram(t).NewRootFrame()
	func() {
		defer func() { recover() }()
		f.Try(func(f *Frame) (Attr, *Exc) {
			panic("boom")
		}, nil)
	}()
	if f.Depth() != 0 || f.region != nil {
		t.Errorf("region not restored after panic")
	}
}

func TestOverflowThroughNestedCalls(t *testing.T) {
	p := newTestProgram(t)
	f := p.NewRootFrame()
	addKey := mustAttr(p, "__add__")
	innermost := func(f *Frame, args Args) (Attr, *Exc) {
		big := mustNotRaiseObject(NewInt(f, MaxInt))
		add := mustNotRaise(CheckAndLoadViaClass(f, big, addKey.Pos, addKey.Code))
		bound := mustNotRaise(TestContext(f, big, add))
		return Call(f, bound, newIntAttr(f, 1))
	}
	callable := RefAttr(mustNotRaiseObject(NewFunction(f, "innermost", innermost, NewParamTable(1, 1))))
	depth := 0
	for i := 0; i < 2; i++ {
		next := callable
		wrapper := func(f *Frame, args Args) (Attr, *Exc) {
			depth++
			return Call(f, next)
		}
		callable = RefAttr(mustNotRaiseObject(NewFunction(f, "wrapper", wrapper, NewParamTable(1, 1))))
	}
	var caught *Exc
	_, raised := f.Try(func(f *Frame) (Attr, *Exc) {
		return Call(f, callable)
	}, func(f *Frame, e *Exc) (Attr, *Exc) {
		caught = e
		return Null, nil
	})
	if raised != nil {
		t.Fatalf("Try() raised %v", raised)
	}
	if depth != 2 {
		t.Errorf("%d wrappers ran, want 2", depth)
	}
	if got := excClassName(caught); got != OverflowErrorName {
		t.Errorf("caught %q, want %s", got, OverflowErrorName)
	}
	if !IsInstanceOf(mustRef(caught.Arg), mustClass(p, ArithmeticErrorName)) {
		t.Errorf("%v is not an ArithmeticError", caught.Arg)
	}
}

func TestMainExitStatus(t *testing.T) {
	f := newTestProgram(t).NewRootFrame()
	cases := []struct {
		desc string
		body Block
		want int
	}{
		{"returns", func(f *Frame) (Attr, *Exc) { return Null, nil }, 0},
		{"raises", func(f *Frame) (Attr, *Exc) { return Null, f.RaiseTypeError() }, 1},
		{"raises class", func(f *Frame) (Attr, *Exc) {
			return Null, f.Raise(RefAttr(mustClass(f.prog, ValueErrorName)))
		}, 1},
		{"completes", func(f *Frame) (Attr, *Exc) { return Null, f.Complete() }, 0},
		{"returns value", func(f *Frame) (Attr, *Exc) { return Null, f.Return(IntAttr(3)) }, 0},
	}
	for _, cas := range cases {
		if got := Main(f, cas.body); got != cas.want {
			t.Errorf("Main(%s) = %d, want %d", cas.desc, got, cas.want)
		}
		if f.Depth() != 0 {
			t.Errorf("Main(%s) left depth %d", cas.desc, f.Depth())
		}
	}
}

func mustRef(a Attr) *Object {
	o, ok := a.Ref()
	if !ok {
		panic("not a reference: " + a.String())
	}
	return o
}
