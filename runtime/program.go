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
	"strings"

	"github.com/mahmoudimus/lichen-lang/config"
	"github.com/mahmoudimus/lichen-lang/tables"
)

// Layout holds the keys of the attributes the runtime itself reads and
// writes.
type Layout struct {
	Class Key
	Fn    Key
	Args  Key
	Name  Key
	Data  Key
	Key   Key
	Value Key
	Arg   Key
}

// Program is a loaded program: its class objects, builtin functions and
// attribute numbering. A Program is immutable once loaded and may be shared
// by root frames running on different goroutines.
type Program struct {
	image          *tables.Image
	layout         Layout
	alloc          Allocator
	classes        map[string]*Object
	instanceTables map[*Object]*Table
	builtins       map[string]*Object

	typeClass     *Object
	functionClass *Object
	functionTable *Table
	memoryError   *Object

	// None, True and False are the singleton instances of NoneType and
	// bool.
	None  *Object
	True  *Object
	False *Object
}

// Option configures a Program.
type Option func(*Program)

// WithAllocator makes the program allocate from a.
func WithAllocator(a Allocator) Option {
	return func(p *Program) { p.alloc = a }
}

// WithHeapLimit bounds the bytes the program may allocate. 0 means
// unlimited.
func WithHeapLimit(limit int64) Option {
	return WithAllocator(NewHeapAllocator(limit))
}

var requiredClasses = []string{
	"type", "function", "NoneType", "bool", "int", "float", "str", "list", "tuple",
	TypeErrorName, UnboundMethodInvocationName, MemoryErrorName,
	OverflowErrorName, UnderflowErrorName, ZeroDivisionErrorName, FloatingPointErrorName,
	IOErrorName, OSErrorName, EOFErrorName, ValueErrorName,
}

// NewProgram builds the class objects and builtin functions described by
// img. img must have been numbered together with the builtin declarations.
func NewProgram(img *tables.Image, opts ...Option) (*Program, error) {
	p := &Program{
		image:          img,
		alloc:          NewHeapAllocator(0),
		classes:        map[string]*Object{},
		instanceTables: map[*Object]*Table{},
		builtins:       map[string]*Object{},
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.initLayout(); err != nil {
		return nil, err
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	for _, c := range img.Classes {
		cls := newClass(c.Name, NewTable(c.Class...), c.Pos)
		p.classes[c.Name] = cls
		p.instanceTables[cls] = NewTable(c.Instance...)
	}
	for _, name := range requiredClasses {
		if _, ok := p.classes[name]; !ok {
			return nil, fmt.Errorf("program lacks builtin class %s", name)
		}
	}
	p.typeClass = p.classes["type"]
	p.functionClass = p.classes["function"]
	p.functionTable = p.instanceTables[p.functionClass]
	instantiate := NewParamTable(1, 1)
	for _, cls := range p.classes {
		cls.attrs[ClassPos] = RefAttr(p.typeClass)
		if HasAttr(cls, p.layout.Fn.Pos, p.layout.Fn.Code) && HasAttr(cls, p.layout.Args.Pos, p.layout.Args.Code) {
			StoreViaObject(cls, p.layout.Fn.Pos, FuncAttr(p.instantiator(cls)))
			StoreViaObject(cls, p.layout.Args.Pos, ParamsAttr(instantiate))
		}
	}

	f := p.NewRootFrame()
	if raised := p.initObjects(f); raised != nil {
		return nil, fmt.Errorf("cannot create builtin objects: %v", raised)
	}
	if raised := p.initNatives(f); raised != nil {
		return nil, fmt.Errorf("cannot create builtin functions: %v", raised)
	}
	logger.Infof("loaded program with %d classes and %d functions", len(img.Classes), len(img.Functions))
	return p, nil
}

// LoadProgram reads a program image written by tables.WriteImage.
func LoadProgram(path string, opts ...Option) (*Program, error) {
	img, err := tables.ReadImage(path)
	if err != nil {
		return nil, err
	}
	return NewProgram(img, opts...)
}

// NewProgramFromConfig loads the configured program image with the
// configured heap limit.
func NewProgramFromConfig(c *config.Config) (*Program, error) {
	return LoadProgram(c.ImagePath(), WithHeapLimit(c.Heap.Limit))
}

func (p *Program) initLayout() error {
	fields := []struct {
		name string
		key  *Key
	}{
		{tables.ClassAttr, &p.layout.Class},
		{tables.FnAttr, &p.layout.Fn},
		{tables.ArgsAttr, &p.layout.Args},
		{tables.NameAttr, &p.layout.Name},
		{tables.DataAttr, &p.layout.Data},
		{tables.KeyAttr, &p.layout.Key},
		{tables.ValueAttr, &p.layout.Value},
		{tables.ArgAttr, &p.layout.Arg},
	}
	for _, field := range fields {
		s, ok := p.image.Attr(field.name)
		if !ok {
			return fmt.Errorf("program lacks attribute %s", field.name)
		}
		*field.key = Key{s.Pos, s.Code}
	}
	if p.layout.Class.Pos != ClassPos {
		return fmt.Errorf("%s is at position %d, want %d", tables.ClassAttr, p.layout.Class.Pos, ClassPos)
	}
	return nil
}

// validate checks the image for tables the runtime cannot build objects
// from.
func (p *Program) validate() error {
	classCode := p.layout.Class.Code
	for _, c := range p.image.Classes {
		if len(c.Class) == 0 || c.Class[ClassPos] != classCode {
			return fmt.Errorf("class %s lacks %s in its class table", c.Name, tables.ClassAttr)
		}
		if len(c.Instance) == 0 || c.Instance[ClassPos] != classCode {
			return fmt.Errorf("class %s lacks %s in its instance table", c.Name, tables.ClassAttr)
		}
		if c.Pos == InstancePos {
			return fmt.Errorf("class %s has its type attribute at the class position", c.Name)
		}
		if c.Pos < 0 || c.Pos >= len(c.Class) || c.Class[c.Pos] != c.Code {
			return fmt.Errorf("class %s has type attribute (%d, %d) outside its class table", c.Name, c.Pos, c.Code)
		}
	}
	for _, fn := range p.image.Functions {
		if fn.Min < 1 || fn.Min > fn.Max {
			return fmt.Errorf("function %s has invalid bounds %d..%d", fn.Name, fn.Min, fn.Max)
		}
		for _, param := range fn.Params {
			if param.Code != 0 && (param.Pos < 1 || param.Pos >= fn.Max) {
				return fmt.Errorf("function %s has a parameter in slot %d outside 1..%d", fn.Name, param.Pos, fn.Max-1)
			}
		}
	}
	return nil
}

func (p *Program) initObjects(f *Frame) *Exc {
	for name, cls := range p.classes {
		if !HasAttr(cls, p.layout.Name.Pos, p.layout.Name.Code) {
			continue
		}
		s, raised := NewStr(f, name)
		if raised != nil {
			return raised
		}
		StoreViaObject(cls, p.layout.Name.Pos, RefAttr(s))
	}
	var raised *Exc
	if p.None, raised = p.instance(f, "NoneType"); raised != nil {
		return raised
	}
	if p.True, raised = newData(f, p.classes["bool"], IntAttr(1)); raised != nil {
		return raised
	}
	if p.False, raised = newData(f, p.classes["bool"], IntAttr(0)); raised != nil {
		return raised
	}
	p.memoryError, raised = p.instance(f, MemoryErrorName)
	return raised
}

func (p *Program) initNatives(f *Frame) *Exc {
	for _, decl := range p.image.Functions {
		fn, ok := natives[decl.Name]
		if !ok {
			continue
		}
		o, raised := NewFunction(f, decl.Name, fn, newParamTable(&decl))
		if raised != nil {
			return raised
		}
		className, attrName, isMethod := strings.Cut(decl.Name, ".")
		if !isMethod {
			p.builtins[decl.Name] = o
			continue
		}
		if err := p.DefineMethod(className, attrName, o); err != nil {
			logFatal(err.Error())
		}
	}
	return nil
}

func newParamTable(decl *tables.Function) *ParamTable {
	params := make([]Param, len(decl.Params))
	for i, param := range decl.Params {
		params[i] = Param{Code: param.Code, Pos: param.Pos}
	}
	return NewParamTable(decl.Min, decl.Max, params...)
}

func (p *Program) instantiator(cls *Object) Func {
	return func(f *Frame, _ Args) (Attr, *Exc) {
		o, raised := New(f, p.instanceTables[cls], cls)
		if raised != nil {
			return Null, raised
		}
		return RefAttr(o), nil
	}
}

func (p *Program) instance(f *Frame, className string) (*Object, *Exc) {
	cls := p.classes[className]
	return New(f, p.instanceTables[cls], cls)
}

// Image returns the numbering the program was built from.
func (p *Program) Image() *tables.Image {
	return p.image
}

// Layout returns the keys of the attributes the runtime uses.
func (p *Program) Layout() Layout {
	return p.layout
}

// Class returns the class object with the given name.
func (p *Program) Class(name string) (*Object, bool) {
	cls, ok := p.classes[name]
	return cls, ok
}

// InstanceTable returns the table of instances of cls.
func (p *Program) InstanceTable(cls *Object) *Table {
	return p.instanceTables[cls]
}

// Builtin returns the builtin function object with the given name.
func (p *Program) Builtin(name string) (*Object, bool) {
	fn, ok := p.builtins[name]
	return fn, ok
}

// Attr returns the key of the named attribute.
func (p *Program) Attr(name string) (Key, bool) {
	s, ok := p.image.Attr(name)
	if !ok {
		return Key{}, false
	}
	return Key{s.Pos, s.Code}, true
}

// Keyword returns the keyword code of the named parameter, for use in the
// kwcodes argument of Invoke.
func (p *Program) Keyword(name string) (Param, bool) {
	s, ok := p.image.Param(name)
	if !ok {
		return Param{}, false
	}
	return Param{Code: s.Code, Pos: s.Pos}, true
}

// Params returns the parameter table of the named function declaration.
func (p *Program) Params(function string) (*ParamTable, bool) {
	decl, ok := p.image.Function(function)
	if !ok {
		return nil, false
	}
	return newParamTable(decl), true
}

// DefineMethod stores fn as the class attribute name of the named class,
// with the class as its context so that instance access binds it. It must
// be called before the program starts running.
func (p *Program) DefineMethod(className, name string, fn *Object) error {
	cls, key, err := p.classAttr(className, name)
	if err != nil {
		return err
	}
	StoreViaObject(cls, key.Pos, WithContext(cls, RefAttr(fn)))
	return nil
}

// DefineClassAttr stores value as the class attribute name of the named
// class without a context. It must be called before the program starts
// running.
func (p *Program) DefineClassAttr(className, name string, value Attr) error {
	cls, key, err := p.classAttr(className, name)
	if err != nil {
		return err
	}
	StoreViaObject(cls, key.Pos, WithContext(nil, value))
	return nil
}

func (p *Program) classAttr(className, name string) (*Object, Key, error) {
	cls, ok := p.classes[className]
	if !ok {
		return nil, Key{}, fmt.Errorf("no class %s", className)
	}
	key, ok := p.Attr(name)
	if !ok || !HasAttr(cls, key.Pos, key.Code) {
		return nil, Key{}, fmt.Errorf("class %s has no attribute %s", className, name)
	}
	return cls, key, nil
}
