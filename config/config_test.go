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

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := `
[heap]
limit = 4096

[log]
verbosity = 2
path = "lichen.log"

[program]
image = "hello.cbor"
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Heap.Limit != 4096 {
		t.Errorf("heap limit = %d, want 4096", c.Heap.Limit)
	}
	if c.Log.Verbosity != 2 {
		t.Errorf("log verbosity = %d, want 2", c.Log.Verbosity)
	}
	if c.Log.Path != "lichen.log" {
		t.Errorf("log path = %q, want lichen.log", c.Log.Path)
	}
	abs, _ := filepath.Abs(dir)
	if want := filepath.Join(abs, "hello.cbor"); c.ImagePath() != want {
		t.Errorf("image path = %q, want %q", c.ImagePath(), want)
	}
}

func TestParseDefaults(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c.Heap.Limit != 0 {
		t.Errorf("heap limit = %d, want 0", c.Heap.Limit)
	}
	if c.Program.Image != DefaultImage {
		t.Errorf("image = %q, want %q", c.Program.Image, DefaultImage)
	}
	if got := c.ImagePath(); got != DefaultImage {
		t.Errorf("image path = %q, want %q", got, DefaultImage)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"[heap]\nlimit = -1\n",
		"[heap\n",
		"[heap]\nlimit = \"lots\"\n",
	}
	for _, cas := range cases {
		if _, err := Parse([]byte(cas)); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", cas)
		}
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte("[program]\nimage = \"p.cbor\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	c, err := FindAndLoad(nested)
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if c == nil {
		t.Fatal("FindAndLoad found nothing")
	}
	if c.Program.Image != "p.cbor" {
		t.Errorf("image = %q, want p.cbor", c.Program.Image)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load of empty dir succeeded, want error")
	}
}
