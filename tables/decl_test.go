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
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const pointDecls = `
[[class]]
name = "Point"
bases = ["object"]
attrs = ["norm"]
instance = ["x", "y"]

[[function]]
name = "Point.norm"
params = ["scale"]
defaults = 1
`

func TestParseDecls(t *testing.T) {
	d, err := ParseDecls([]byte(pointDecls))
	if err != nil {
		t.Fatalf("ParseDecls() failed: %v", err)
	}
	want := &Decls{
		Classes:   []ClassDecl{{Name: "Point", Bases: []string{"object"}, Attrs: []string{"norm"}, InstanceAttrs: []string{"x", "y"}}},
		Functions: []FunctionDecl{{Name: "Point.norm", Params: []string{"scale"}, Defaults: 1}},
	}
	if !reflect.DeepEqual(d, want) {
		t.Errorf("ParseDecls() = %+v, want %+v", d, want)
	}
}

func TestParseDeclsInvalid(t *testing.T) {
	if _, err := ParseDecls([]byte("[[class]\nname = ")); err == nil {
		t.Errorf("ParseDecls() succeeded on malformed TOML")
	}
}

func TestLoadDecls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decls.toml")
	if err := os.WriteFile(path, []byte(pointDecls), 0644); err != nil {
		t.Fatal(err)
	}
	d, err := LoadDecls(path)
	if err != nil {
		t.Fatalf("LoadDecls() failed: %v", err)
	}
	if len(d.Classes) != 1 || d.Classes[0].Name != "Point" {
		t.Errorf("LoadDecls() classes = %+v, want Point", d.Classes)
	}
	if _, err := LoadDecls(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("LoadDecls() succeeded on a missing file")
	}
}

func TestWithBuiltins(t *testing.T) {
	d := &Decls{Classes: []ClassDecl{{Name: "Point", Bases: []string{"object"}}}}
	all := d.WithBuiltins()
	b := Builtins()
	if got, want := len(all.Classes), len(b.Classes)+1; got != want {
		t.Fatalf("WithBuiltins() has %d classes, want %d", got, want)
	}
	if all.Classes[0].Name != "object" || all.Classes[len(all.Classes)-1].Name != "Point" {
		t.Errorf("WithBuiltins() does not put builtins first")
	}
	if len(d.Classes) != 1 {
		t.Errorf("WithBuiltins() modified its receiver")
	}
}
