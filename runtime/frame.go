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

// Frame is one native call level. Frames of the same logical thread share
// a threadState, which holds the protected region stack.
type Frame struct {
	*threadState
	back *Frame
}

// NewRootFrame creates a Frame that is the bottom of a new stack. Each root
// frame owns its own region stack, so distinct root frames may run on
// distinct goroutines as long as they share no objects.
func (p *Program) NewRootFrame() *Frame {
	f := &Frame{}
	f.pushFrame(p, nil)
	return f
}

// newChildFrame creates a new Frame whose parent frame is back.
func newChildFrame(back *Frame) *Frame {
	f := back.frameCache
	if f == nil {
		f = &Frame{}
	} else {
		back.frameCache, f.back = f.back, nil
	}
	f.pushFrame(back.prog, back)
	return f
}

func (f *Frame) release() {
	f.frameCache, f.back = f, f.frameCache
}

// pushFrame adds f to the top of the stack, above back.
func (f *Frame) pushFrame(p *Program, back *Frame) {
	f.back = back
	if back == nil {
		f.threadState = newThreadState(p)
	} else {
		f.threadState = back.threadState
	}
}

// Program returns the program f runs.
func (f *Frame) Program() *Program {
	return f.prog
}

// Depth returns the number of protected regions currently open on f's
// thread.
func (f *Frame) Depth() int {
	return f.depth
}

// Try runs body inside a new protected region. An exception raised while
// the region is current is delivered to catch after the enclosing region
// has been restored. The enclosing region is restored on every path out of
// Try, including panics. If catch is nil the exception is rethrown.
//
// Values computed by body leave the region only through its result.
func (f *Frame) Try(body Block, catch func(*Frame, *Exc) (Attr, *Exc)) (Attr, *Exc) {
	r := &region{prev: f.region}
	f.enter(r)
	result, raised := f.run(r, body)
	if raised == nil {
		return result, nil
	}
	if raised.region != r || r.exc != raised {
		logFatal(fmt.Sprintf("%v reached a protected region it was not raised in", raised))
	}
	if catch == nil {
		return Null, f.Throw(raised)
	}
	return catch(f, r.exc)
}

func (f *Frame) run(r *region, body Block) (Attr, *Exc) {
	defer f.leave(r)
	return body(f)
}

func (f *Frame) enter(r *region) {
	f.region = r
	f.depth++
	logger.Debugf("entered region %d", f.depth)
}

func (f *Frame) leave(r *region) {
	if f.region != r {
		logFatal("protected regions left out of order")
	}
	f.region = r.prev
	f.depth--
	logger.Debugf("left region %d", f.depth+1)
}

// Throw delivers e to the current region. It is used to rethrow an
// exception received by a catch clause.
func (f *Frame) Throw(e *Exc) *Exc {
	e.region = f.region
	if f.region != nil {
		f.region.exc = e
	}
	return e
}

// Raise returns an exception carrying arg that targets the current region.
func (f *Frame) Raise(arg Attr) *Exc {
	logger.Debugf("raising %v", arg)
	return f.Throw(&Exc{Arg: arg, Kind: Raising})
}

// RaiseElse is Raise for exceptions raised by an else clause, which the
// handlers of the same try statement must not see.
func (f *Frame) RaiseElse(arg Attr) *Exc {
	return f.Throw(&Exc{Arg: arg, Kind: RaisingElse})
}

// Return transfers value out of the enclosing try statements to the
// function boundary.
func (f *Frame) Return(value Attr) *Exc {
	return f.Throw(&Exc{Arg: value, Kind: Completing})
}

// Complete ends the body of a try statement without a value, passing
// control to its finally clause.
func (f *Frame) Complete() *Exc {
	return f.Throw(&Exc{Kind: Completing})
}

// MakeArgs returns an Args slice with the given length. The slice may have
// been previously used, but all elements will be null.
func (f *Frame) MakeArgs(n int) Args {
	if n == 0 {
		return nil
	}
	if n > argsCacheArgc {
		return make(Args, n)
	}
	numEntries := len(f.threadState.argsCache)
	if numEntries == 0 {
		return make(Args, n, argsCacheArgc)
	}
	args := f.threadState.argsCache[numEntries-1]
	f.threadState.argsCache = f.threadState.argsCache[:numEntries-1]
	return args[:n]
}

// FreeArgs clears the elements of args and returns it to the system. It may
// later be returned by calls to MakeArgs and therefore references to slices of
// args should not be held.
func (f *Frame) FreeArgs(args Args) {
	if cap(args) < argsCacheArgc {
		return
	}
	numEntries := len(f.threadState.argsCache)
	if numEntries >= argsCacheSize {
		return
	}
	// Clear args so we don't unnecessarily hold references.
	args = args[:cap(args)]
	for i := len(args) - 1; i >= 0; i-- {
		args[i] = Null
	}
	f.threadState.argsCache = f.threadState.argsCache[:numEntries+1]
	f.threadState.argsCache[numEntries] = args
}

// Allocate returns n zeroed attributes from the program's allocator. An
// exhausted allocator raises MemoryError.
func (f *Frame) Allocate(n int) ([]Attr, *Exc) {
	attrs, ok := f.prog.alloc.Allocate(n)
	if !ok {
		return nil, f.RaiseMemoryError()
	}
	return attrs, nil
}

// Reallocate grows attrs to capacity n, keeping its contents.
func (f *Frame) Reallocate(attrs []Attr, n int) ([]Attr, *Exc) {
	grown, ok := f.prog.alloc.Reallocate(attrs, n)
	if !ok {
		return nil, f.RaiseMemoryError()
	}
	return grown, nil
}
