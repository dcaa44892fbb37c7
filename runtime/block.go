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

// Block is a piece of compiled code run inside a protected region, such as
// the body of a try statement.
type Block func(f *Frame) (Attr, *Exc)

// Handler is the except clause of a try statement. It receives the raised
// value and either handles it or raises again.
type Handler func(f *Frame, arg Attr) (Attr, *Exc)

// TryExcept runs a try/except/else statement. Exceptions raised by body are
// passed to handler. elseBody, if not nil, runs when body completes and its
// exceptions bypass handler. Completing transfers pass through untouched.
func (f *Frame) TryExcept(body Block, elseBody Block, handler Handler) (Attr, *Exc) {
	protected := body
	if elseBody != nil {
		protected = func(f *Frame) (Attr, *Exc) {
			if result, raised := body(f); raised != nil {
				return result, raised
			}
			result, raised := elseBody(f)
			if raised != nil && raised.Kind == Raising {
				return result, f.RaiseElse(raised.Arg)
			}
			return result, raised
		}
	}
	return f.Try(protected, func(f *Frame, e *Exc) (Attr, *Exc) {
		switch e.Kind {
		case RaisingElse:
			return Null, f.Raise(e.Arg)
		case Completing:
			return Null, f.Throw(e)
		}
		return handler(f, e.Arg)
	})
}

// TryFinally runs a try/finally statement. final runs however body ends.
// A completing transfer ends the statement: with its value if it carries
// one, normally otherwise. Anything else caught is rethrown after final has
// run.
func (f *Frame) TryFinally(body Block, final Block) (Attr, *Exc) {
	caught := false
	result, raised := f.Try(body, func(f *Frame, e *Exc) (Attr, *Exc) {
		caught = true
		if _, raised := final(f); raised != nil {
			return Null, raised
		}
		if e.Kind == Completing {
			return e.Arg, nil
		}
		return Null, f.Throw(e)
	})
	if caught || raised != nil {
		return result, raised
	}
	if _, finalRaised := final(f); finalRaised != nil {
		return Null, finalRaised
	}
	return result, nil
}
