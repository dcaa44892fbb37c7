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

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode encodes images canonically so that numbering the same
// declarations always produces the same bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("tables: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Symbol is a numbered name: an attribute or parameter name together with
// its position and code.
type Symbol struct {
	Name string `cbor:"1,keyasint"`
	Pos  int    `cbor:"2,keyasint"`
	Code uint32 `cbor:"3,keyasint"`
}

// Param is one entry of a parameter table. Code is the parameter name's
// code and Pos is the argument slot the parameter occupies. Unused entries
// are zero.
type Param struct {
	Code uint32 `cbor:"1,keyasint"`
	Pos  int    `cbor:"2,keyasint"`
}

// Class is a numbered class: its type attribute position and code and its
// flattened class and instance tables.
type Class struct {
	Name     string   `cbor:"1,keyasint"`
	Bases    []string `cbor:"2,keyasint,omitempty"`
	Pos      int      `cbor:"3,keyasint"`
	Code     uint32   `cbor:"4,keyasint"`
	Class    []uint32 `cbor:"5,keyasint"`
	Instance []uint32 `cbor:"6,keyasint"`
}

// Function is a numbered callable signature.
type Function struct {
	Name   string  `cbor:"1,keyasint"`
	Min    int     `cbor:"2,keyasint"`
	Max    int     `cbor:"3,keyasint"`
	Params []Param `cbor:"4,keyasint,omitempty"`
}

// Image is the complete set of tables for a program.
type Image struct {
	Attrs     []Symbol   `cbor:"1,keyasint"`
	Params    []Symbol   `cbor:"2,keyasint"`
	Classes   []Class    `cbor:"3,keyasint"`
	Functions []Function `cbor:"4,keyasint"`

	attrIndex  map[string]int
	paramIndex map[string]int
	classIndex map[string]int
	funcIndex  map[string]int
}

func (img *Image) reindex() {
	img.attrIndex = make(map[string]int, len(img.Attrs))
	for i, s := range img.Attrs {
		img.attrIndex[s.Name] = i
	}
	img.paramIndex = make(map[string]int, len(img.Params))
	for i, s := range img.Params {
		img.paramIndex[s.Name] = i
	}
	img.classIndex = make(map[string]int, len(img.Classes))
	for i, c := range img.Classes {
		img.classIndex[c.Name] = i
	}
	img.funcIndex = make(map[string]int, len(img.Functions))
	for i, fn := range img.Functions {
		img.funcIndex[fn.Name] = i
	}
}

// Attr returns the numbering of the attribute name.
func (img *Image) Attr(name string) (Symbol, bool) {
	i, ok := img.attrIndex[name]
	if !ok {
		return Symbol{}, false
	}
	return img.Attrs[i], true
}

// Param returns the numbering of the parameter name.
func (img *Image) Param(name string) (Symbol, bool) {
	i, ok := img.paramIndex[name]
	if !ok {
		return Symbol{}, false
	}
	return img.Params[i], true
}

// Class returns the numbered class with the given name.
func (img *Image) Class(name string) (*Class, bool) {
	i, ok := img.classIndex[name]
	if !ok {
		return nil, false
	}
	return &img.Classes[i], true
}

// Function returns the numbered signature with the given name.
func (img *Image) Function(name string) (*Function, bool) {
	i, ok := img.funcIndex[name]
	if !ok {
		return nil, false
	}
	return &img.Functions[i], true
}

// Names returns the attribute names present in table, indexed by position.
// Empty positions yield "".
func (img *Image) Names(table []uint32) []string {
	byCode := make(map[uint32]string, len(img.Attrs))
	for _, s := range img.Attrs {
		byCode[s.Code] = s.Name
	}
	names := make([]string, len(table))
	for pos, code := range table {
		if code != 0 {
			names[pos] = byCode[code]
		}
	}
	return names
}

// Marshal serializes img to canonical CBOR.
func Marshal(img *Image) ([]byte, error) {
	return cborEncMode.Marshal(img)
}

// Unmarshal deserializes an image from CBOR bytes.
func Unmarshal(data []byte) (*Image, error) {
	var img Image
	if err := cbor.Unmarshal(data, &img); err != nil {
		return nil, fmt.Errorf("tables: unmarshal image: %w", err)
	}
	img.reindex()
	return &img, nil
}

// ReadImage loads an image written by WriteImage.
func ReadImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tables: cannot read %s: %w", path, err)
	}
	return Unmarshal(data)
}

// WriteImage writes img to path as CBOR.
func WriteImage(path string, img *Image) error {
	data, err := Marshal(img)
	if err != nil {
		return fmt.Errorf("tables: marshal image: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("tables: cannot write %s: %w", path, err)
	}
	return nil
}
