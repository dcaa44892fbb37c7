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

// ExcKind says why control is leaving a protected region.
type ExcKind int

const (
	// Raising is an ordinary raise.
	Raising ExcKind = iota
	// RaisingElse is a raise from the else clause of a try statement.
	RaisingElse
	// Completing is a return (with a value) or a completion (without one)
	// crossing try statements.
	Completing
)

func (k ExcKind) String() string {
	switch k {
	case Raising:
		return "raising"
	case RaisingElse:
		return "raising-else"
	case Completing:
		return "completing"
	}
	return fmt.Sprintf("ExcKind(%d)", int(k))
}

// Exc is an exception in flight. Every operation that can fail returns a
// trailing *Exc which is nil on success.
type Exc struct {
	// Arg is the raised value, or the value carried by a completing
	// transfer.
	Arg  Attr
	Kind ExcKind
	// region is the protected region the exception was delivered to.
	region *region
}

func (e *Exc) String() string {
	if e == nil {
		return "nil"
	}
	return fmt.Sprintf("%s %v", e.Kind, e.Arg)
}

// ClassName returns the name of the class of the raised value, or "" if the
// value is not an object.
func (e *Exc) ClassName() string {
	o, ok := e.Arg.Ref()
	if !ok {
		return ""
	}
	if !IsInstance(o) {
		return o.name
	}
	if cls := GetClass(o); cls != nil {
		return cls.name
	}
	return ""
}
