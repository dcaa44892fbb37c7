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

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Attribute names with a fixed meaning to the runtime.
const (
	// ClassAttr names the attribute holding an object's class. It is
	// present in every table and always numbered at position 0.
	ClassAttr = "__class__"
	// NameAttr holds a class or function name as a str payload.
	NameAttr = "__name__"
	// FnAttr holds the native function pointer of a callable.
	FnAttr = "__fn__"
	// ArgsAttr holds the parameter table of a callable.
	ArgsAttr = "__args__"
	// DataAttr holds the raw payload of int, str and sequence instances.
	DataAttr = "__data__"
	// KeyAttr holds the attribute key of a str naming an attribute.
	KeyAttr = "__key__"
	// ValueAttr and ArgAttr hold the details of raised errors.
	ValueAttr = "value"
	ArgAttr   = "arg"

	typePrefix = "#"
)

// TypeAttr returns the name of the attribute that marks a class and all of
// its subclasses. Its position is the class's pos and its code is the
// class's type code.
func TypeAttr(class string) string {
	return typePrefix + class
}

// ClassDecl declares a class. Attrs are class-level attributes (methods and
// class variables); InstanceAttrs are attributes stored on instances.
type ClassDecl struct {
	Name          string   `toml:"name"`
	Bases         []string `toml:"bases"`
	Attrs         []string `toml:"attrs"`
	InstanceAttrs []string `toml:"instance"`
}

// FunctionDecl declares a callable's keyword-accessible parameters. The
// context slot is implicit and not listed. The last Defaults parameters
// have default values.
type FunctionDecl struct {
	Name     string   `toml:"name"`
	Params   []string `toml:"params"`
	Defaults int      `toml:"defaults"`
}

// Decls is the input to Number: everything a program declares.
type Decls struct {
	Classes   []ClassDecl    `toml:"class"`
	Functions []FunctionDecl `toml:"function"`
}

// ParseDecls decodes declarations in TOML form, e.g.:
//
//	[[class]]
//	name = "Point"
//	bases = ["object"]
//	attrs = ["norm"]
//	instance = ["x", "y"]
//
//	[[function]]
//	name = "Point.norm"
//	params = ["scale"]
//	defaults = 1
func ParseDecls(data []byte) (*Decls, error) {
	var d Decls
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("tables: parse declarations: %w", err)
	}
	return &d, nil
}

// LoadDecls reads and parses a TOML declaration file.
func LoadDecls(path string) (*Decls, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tables: cannot read %s: %w", path, err)
	}
	return ParseDecls(data)
}

// WithBuiltins returns a copy of d whose classes and functions are preceded
// by the runtime's builtin declarations.
func (d *Decls) WithBuiltins() *Decls {
	b := Builtins()
	return &Decls{
		Classes:   append(b.Classes, d.Classes...),
		Functions: append(b.Functions, d.Functions...),
	}
}
