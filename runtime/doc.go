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

/*
Package lichen is the runtime support layer for statically compiled Lichen
programs: object layout, attribute access, method binding, calls and
exceptions.

Data model

Every object is an Object: a table pointer, a position and a slice of
attributes. The compiler assigns each attribute name a position and a code
such that no two names used by the same class or instance share a position.
A table records, for each position, the code of the attribute that lives
there, so checking whether an object has an attribute is a single slice
lookup and comparison:

	HasAttr(o, pos, code)

Position 0 always holds __class__. An instance has pos 0; a class has the
position of its own type attribute ("#" followed by the class name), whose
code is stored in the tables of the class, of every subclass and of every
instance of those classes. isinstance and issubclass are therefore table
lookups too.

Attributes are Attr values: a payload (an object reference, an inline int,
float, byte string or attribute key, sequence storage, a parameter table, a
native function or a bound method) together with a context. The context of
a method stored on a class is the class; accessing the method through an
instance rebinds it to the instance.

Execution model

Exceptions and other non-local transfers propagate as *Exc return values.
Frame.Try establishes a protected region: the body's transfer is delivered to
the catch function, which either handles it or rethrows it with Frame.Throw
into the enclosing region. Regions nest strictly, and a transfer that does
not belong to the innermost region is fatal. TryExcept and TryFinally are
built on Try:

	result, raised := f.TryFinally(
		func(f *Frame) (Attr, *Exc) {
			return Call(f, fn, arg)
		},
		func(f *Frame) (Attr, *Exc) {
			return cleanup(f)
		})

Main runs a whole program in the outermost region and turns an escaping
exception into a logged message and a failing exit status.

Call model

A callable has a __fn__ native function and an __args__ parameter table.
Arguments are passed as an Args slot array whose first slot is the context.
Invoke fills the remaining slots from positional arguments, keyword
arguments identified by parameter position and code, and defaults stored
after the callable's table-covered attributes, then runs the function in a
child frame.

Memory

All attribute storage is obtained from the program's Allocator, which may
bound the heap. Exhaustion raises the MemoryError instance created when the
program was loaded.
*/
package lichen
