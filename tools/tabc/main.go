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

// tabc numbers the classes and functions declared in a TOML file together
// with the runtime's builtins and writes the resulting program image.
//
// usage: tabc [-o OUTPUT] [-go PACKAGE] DECLS
//
// By default the image is written as CBOR to program.cbor, ready to be
// loaded by lichen.LoadProgram. With -go, Go source declaring the position
// and code of every attribute and parameter is written instead, for use by
// generated code:
//
//	const (
//		AttrXPos  = 3
//		AttrXCode = 41
//	)
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"unicode"

	"github.com/tliron/commonlog"

	"github.com/mahmoudimus/lichen-lang/config"
	"github.com/mahmoudimus/lichen-lang/tables"
)

var log = commonlog.GetLogger("lichen.tabc")

const fileTemplate = `// Code generated by tabc from %[2]s. DO NOT EDIT.

package %[1]s

// Attribute positions and codes.
const (
%[3]s)

// Parameter positions and codes.
const (
%[4]s)

// Type attribute positions and codes of classes.
const (
%[5]s)
`

const symbolTemplate = "\t%[1]sPos = %[2]d\n\t%[1]sCode = %[3]d\n"

func main() {
	output := flag.String("o", "", "output file (default program.cbor, or stdout with -go)")
	goPackage := flag.String("go", "", "write Go constants in this package instead of a CBOR image")
	verbosity := flag.Int("v", 0, "log verbosity")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: tabc [-o OUTPUT] [-go PACKAGE] DECLS")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	(&config.Config{Log: config.Log{Verbosity: *verbosity}}).Apply()
	if err := run(flag.Arg(0), *output, *goPackage); err != nil {
		log.Errorf("%s", err)
		os.Exit(2)
	}
}

func run(declsPath, output, goPackage string) error {
	decls, err := tables.LoadDecls(declsPath)
	if err != nil {
		return err
	}
	img, err := tables.Number(decls.WithBuiltins())
	if err != nil {
		return err
	}
	log.Infof("numbered %d attributes, %d parameters, %d classes and %d functions",
		len(img.Attrs), len(img.Params), len(img.Classes), len(img.Functions))
	if goPackage == "" {
		if output == "" {
			output = config.DefaultImage
		}
		if err := tables.WriteImage(output, img); err != nil {
			return err
		}
		log.Noticef("wrote %s", output)
		return nil
	}
	src, err := generateGo(img, goPackage, declsPath)
	if err != nil {
		return err
	}
	if output == "" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(output, src, 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", output, err)
	}
	log.Noticef("wrote %s", output)
	return nil
}

// generateGo renders the constants of img as formatted Go source.
func generateGo(img *tables.Image, pkg, source string) ([]byte, error) {
	var attrs, params, types bytes.Buffer
	// Distinct names can share a Go name, e.g. "norm_sq" and "normSq".
	seen := map[string]string{}
	write := func(buf *bytes.Buffer, ident, name string, s tables.Symbol) error {
		if other, ok := seen[ident]; ok {
			return fmt.Errorf("%s and %s both map to the Go name %s", other, name, ident)
		}
		seen[ident] = name
		buf.WriteString(fmt.Sprintf(symbolTemplate, ident, s.Pos, s.Code))
		return nil
	}
	for _, s := range img.Attrs {
		var err error
		if class, ok := strings.CutPrefix(s.Name, tables.TypeAttr("")); ok {
			err = write(&types, "Type"+goName(class), s.Name, s)
		} else {
			err = write(&attrs, "Attr"+goName(s.Name), s.Name, s)
		}
		if err != nil {
			return nil, err
		}
	}
	for _, s := range img.Params {
		if err := write(&params, "Param"+goName(s.Name), "parameter "+s.Name, s); err != nil {
			return nil, err
		}
	}
	src := fmt.Sprintf(fileTemplate, pkg, source, attrs.Bytes(), params.Bytes(), types.Bytes())
	formatted, err := format.Source([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("generated invalid Go source: %w", err)
	}
	return formatted, nil
}

// goName turns an attribute or parameter name into an exported Go
// identifier fragment: "__class__" becomes "Class_" and "norm_sq" becomes
// "NormSq". Dunder names keep a trailing underscore so that they never
// collide with the plain name.
func goName(name string) string {
	dunder := strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__") && len(name) > 4
	var b strings.Builder
	upper := true
	for _, r := range strings.Trim(name, "_") {
		switch {
		case r == '_' || !(unicode.IsLetter(r) || unicode.IsDigit(r)):
			upper = true
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	if dunder {
		b.WriteByte('_')
	}
	return b.String()
}
