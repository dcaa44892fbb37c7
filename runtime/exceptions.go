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

// Names of the error classes raised by the runtime itself.
const (
	BaseExceptionName           = "BaseException"
	ExceptionName               = "Exception"
	TypeErrorName               = "TypeError"
	UnboundMethodInvocationName = "UnboundMethodInvocation"
	MemoryErrorName             = "MemoryError"
	ArithmeticErrorName         = "ArithmeticError"
	OverflowErrorName           = "OverflowError"
	UnderflowErrorName          = "UnderflowError"
	ZeroDivisionErrorName       = "ZeroDivisionError"
	FloatingPointErrorName      = "FloatingPointError"
	IOErrorName                 = "IOError"
	OSErrorName                 = "OSError"
	EOFErrorName                = "EOFError"
	ValueErrorName              = "ValueError"
)

// raiseNamed instantiates the named error class, stores details in its
// value and arg attributes and raises the instance.
func (f *Frame) raiseNamed(name string, details ...Attr) *Exc {
	cls, ok := f.prog.classes[name]
	if !ok {
		logFatal(fmt.Sprintf("error class %s is not part of the program", name))
	}
	inst, raised := New(f, f.prog.instanceTables[cls], cls)
	if raised != nil {
		return raised
	}
	keys := []Key{f.prog.layout.Value, f.prog.layout.Arg}
	for i, detail := range details {
		if err := CheckAndStoreViaObject(f, inst, keys[i].Pos, keys[i].Code, detail); err != nil {
			return err
		}
	}
	return f.Raise(RefAttr(inst))
}

// RaiseTypeError raises TypeError.
func (f *Frame) RaiseTypeError() *Exc {
	return f.raiseNamed(TypeErrorName)
}

// RaiseMemoryError raises MemoryError. The instance is created when the
// program is loaded, so raising it never allocates.
func (f *Frame) RaiseMemoryError() *Exc {
	return f.Raise(RefAttr(f.prog.memoryError))
}

// RaiseOverflowError raises OverflowError.
func (f *Frame) RaiseOverflowError() *Exc {
	return f.raiseNamed(OverflowErrorName)
}

// RaiseUnderflowError raises UnderflowError.
func (f *Frame) RaiseUnderflowError() *Exc {
	return f.raiseNamed(UnderflowErrorName)
}

// RaiseZeroDivisionError raises ZeroDivisionError.
func (f *Frame) RaiseZeroDivisionError() *Exc {
	return f.raiseNamed(ZeroDivisionErrorName)
}

// RaiseFloatingPointError raises FloatingPointError.
func (f *Frame) RaiseFloatingPointError() *Exc {
	return f.raiseNamed(FloatingPointErrorName)
}

// RaiseUnboundMethodError raises UnboundMethodInvocation.
func (f *Frame) RaiseUnboundMethodError() *Exc {
	return f.raiseNamed(UnboundMethodInvocationName)
}

// RaiseIOError raises IOError with the given error code as its value.
func (f *Frame) RaiseIOError(code Attr) *Exc {
	return f.raiseNamed(IOErrorName, code)
}

// RaiseOSError raises OSError with the given error code and detail.
func (f *Frame) RaiseOSError(code, detail Attr) *Exc {
	return f.raiseNamed(OSErrorName, code, detail)
}

// RaiseEOFError raises EOFError.
func (f *Frame) RaiseEOFError() *Exc {
	return f.raiseNamed(EOFErrorName)
}

// RaiseValueError raises ValueError with detail as its value.
func (f *Frame) RaiseValueError(detail Attr) *Exc {
	return f.raiseNamed(ValueErrorName, detail)
}

// unboundMethod is the function used in place of a method that was
// accessed without a context able to bind it.
func unboundMethod(f *Frame, _ Args) (Attr, *Exc) {
	return Null, f.RaiseUnboundMethodError()
}

// EnsureInstance returns arg if it is an instance. A class is invoked
// without arguments to produce an instance, so that raising a class raises
// a fresh instance of it.
func EnsureInstance(f *Frame, arg Attr) (Attr, *Exc) {
	o, ok := arg.Ref()
	if !ok {
		return Null, f.RaiseTypeError()
	}
	if IsInstance(o) {
		return arg, nil
	}
	args := f.MakeArgs(1)
	result, raised := Invoke(f, arg, false, nil, nil, args)
	f.FreeArgs(args)
	return result, raised
}

// Main runs body as a whole program inside the outermost protected region
// and returns the process exit status. An exception escaping body is logged
// and yields status 1. A completing transfer ends the program normally.
func Main(f *Frame, body Block) int {
	status := 0
	f.Try(body, func(f *Frame, e *Exc) (Attr, *Exc) {
		if e.Kind != Completing {
			logger.Criticalf("Program terminated due to exception: %s", e.ClassName())
			status = 1
		}
		return Null, nil
	})
	return status
}
