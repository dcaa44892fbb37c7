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

// Package config handles lichen.toml runtime configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// FileName is the name of the configuration file.
const FileName = "lichen.toml"

// DefaultImage is the program image used when none is configured.
const DefaultImage = "program.cbor"

// Config represents a lichen.toml file.
type Config struct {
	Heap    Heap    `toml:"heap"`
	Log     Log     `toml:"log"`
	Program Program `toml:"program"`

	// Dir is the directory containing the lichen.toml file (set at load time).
	Dir string `toml:"-"`
}

// Heap configures the allocator.
type Heap struct {
	// Limit is the total number of bytes the allocator may hand out. 0
	// means unlimited.
	Limit int64 `toml:"limit"`
}

// Log configures logging.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	Path      string `toml:"path"`
}

// Program locates the program image.
type Program struct {
	Image string `toml:"image"`
}

// Parse decodes configuration from TOML data and applies defaults.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	if c.Heap.Limit < 0 {
		return nil, fmt.Errorf("heap limit must not be negative, got %d", c.Heap.Limit)
	}
	if c.Program.Image == "" {
		c.Program.Image = DefaultImage
	}
	return &c, nil
}

// Load parses the lichen.toml file in the given directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}
	return c, nil
}

// FindAndLoad walks up from startDir to find a lichen.toml file, then loads
// and returns it. Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return Load(dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// ImagePath returns the program image path, resolved against Dir.
func (c *Config) ImagePath() string {
	if filepath.IsAbs(c.Program.Image) || c.Dir == "" {
		return c.Program.Image
	}
	return filepath.Join(c.Dir, c.Program.Image)
}

// Apply configures logging. An empty log path logs to stderr.
func (c *Config) Apply() {
	var path *string
	if c.Log.Path != "" {
		p := c.Log.Path
		if !filepath.IsAbs(p) && c.Dir != "" {
			p = filepath.Join(c.Dir, p)
		}
		path = &p
	}
	commonlog.Configure(c.Log.Verbosity, path)
}
