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

package tables

var (
	intOps   = []string{"__add__", "__sub__", "__mul__", "__div__", "__mod__"}
	floatOps = []string{"__add__", "__sub__", "__mul__", "__div__"}
)

// Builtins returns the declarations of the classes and native functions the
// runtime depends on. Programs are numbered together with these.
func Builtins() *Decls {
	d := &Decls{
		Classes: []ClassDecl{
			{Name: "object", Attrs: []string{NameAttr, FnAttr, ArgsAttr}},
			{Name: "type", Bases: []string{"object"}},
			{Name: "function", Bases: []string{"object"}, InstanceAttrs: []string{FnAttr, ArgsAttr, NameAttr}},
			{Name: "NoneType", Bases: []string{"object"}},
			{Name: "bool", Bases: []string{"object"}, InstanceAttrs: []string{DataAttr}},
			{Name: "int", Bases: []string{"object"}, Attrs: intOps, InstanceAttrs: []string{DataAttr}},
			{Name: "float", Bases: []string{"object"}, Attrs: floatOps, InstanceAttrs: []string{DataAttr}},
			{Name: "str", Bases: []string{"object"}, InstanceAttrs: []string{DataAttr, KeyAttr}},
			{Name: "list", Bases: []string{"object"}, Attrs: []string{"append", "__len__", "__getitem__"}, InstanceAttrs: []string{DataAttr}},
			{Name: "tuple", Bases: []string{"object"}, Attrs: []string{"__len__", "__getitem__"}, InstanceAttrs: []string{DataAttr}},
			{Name: "BaseException", Bases: []string{"object"}},
			{Name: "Exception", Bases: []string{"BaseException"}},
			{Name: "TypeError", Bases: []string{"Exception"}},
			{Name: "UnboundMethodInvocation", Bases: []string{"Exception"}},
			{Name: "MemoryError", Bases: []string{"Exception"}},
			{Name: "EOFError", Bases: []string{"Exception"}},
			{Name: "ArithmeticError", Bases: []string{"Exception"}},
			{Name: "OverflowError", Bases: []string{"ArithmeticError"}},
			{Name: "UnderflowError", Bases: []string{"ArithmeticError"}},
			{Name: "ZeroDivisionError", Bases: []string{"ArithmeticError"}},
			{Name: "FloatingPointError", Bases: []string{"ArithmeticError"}},
			{Name: "IOError", Bases: []string{"Exception"}, InstanceAttrs: []string{ValueAttr}},
			{Name: "OSError", Bases: []string{"Exception"}, InstanceAttrs: []string{ValueAttr, ArgAttr}},
			{Name: "ValueError", Bases: []string{"Exception"}, InstanceAttrs: []string{ValueAttr}},
		},
		Functions: []FunctionDecl{
			{Name: "isinstance", Params: []string{"obj", "cls"}},
			{Name: "issubclass", Params: []string{"obj", "cls"}},
			{Name: "getattr", Params: []string{"obj", "name", "default"}, Defaults: 1},
			{Name: "get_using", Params: []string{"callable", "instance"}},
			{Name: "is_", Params: []string{"x", "y"}},
			{Name: "is_not", Params: []string{"x", "y"}},
			{Name: "list.append", Params: []string{"value"}},
			{Name: "list.__len__"},
			{Name: "list.__getitem__", Params: []string{"index"}},
			{Name: "tuple.__len__"},
			{Name: "tuple.__getitem__", Params: []string{"index"}},
		},
	}
	for _, op := range intOps {
		d.Functions = append(d.Functions, FunctionDecl{Name: "int." + op, Params: []string{"other"}})
	}
	for _, op := range floatOps {
		d.Functions = append(d.Functions, FunctionDecl{Name: "float." + op, Params: []string{"other"}})
	}
	return d
}
