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
	"sort"
)

// flatClass is a class with inheritance resolved into plain name sets.
type flatClass struct {
	decl     *ClassDecl
	class    []string
	instance []string
}

// Number assigns a (position, code) pair to every attribute and parameter
// name in d and builds the tables of every class and function.
//
// Codes are unique per name. Positions are shared only between names that
// never appear in the same table, so equal (position, code) pairs always
// denote the same name. ClassAttr is numbered first and always gets
// position 0.
func Number(d *Decls) (*Image, error) {
	flat, err := flatten(d.Classes)
	if err != nil {
		return nil, err
	}
	var attrSets [][]string
	for _, c := range flat {
		attrSets = append(attrSets, c.class, c.instance)
	}
	attrs := numberNames(attrSets, ClassAttr)

	var paramSets [][]string
	seen := map[string]bool{}
	for i := range d.Functions {
		fn := &d.Functions[i]
		if seen[fn.Name] {
			return nil, fmt.Errorf("tables: function %s declared twice", fn.Name)
		}
		seen[fn.Name] = true
		if fn.Defaults < 0 || fn.Defaults > len(fn.Params) {
			return nil, fmt.Errorf("tables: function %s has %d defaults for %d params", fn.Name, fn.Defaults, len(fn.Params))
		}
		if dup := firstDuplicate(fn.Params); dup != "" {
			return nil, fmt.Errorf("tables: function %s has duplicate param %s", fn.Name, dup)
		}
		paramSets = append(paramSets, fn.Params)
	}
	params := numberNames(paramSets, "")

	img := &Image{Attrs: symbols(attrs), Params: symbols(params)}
	for _, c := range flat {
		typ := attrs[TypeAttr(c.decl.Name)]
		img.Classes = append(img.Classes, Class{
			Name:     c.decl.Name,
			Bases:    c.decl.Bases,
			Pos:      typ.Pos,
			Code:     typ.Code,
			Class:    buildTable(attrs, c.class),
			Instance: buildTable(attrs, c.instance),
		})
	}
	for _, fn := range d.Functions {
		max := len(fn.Params) + 1
		img.Functions = append(img.Functions, Function{
			Name:   fn.Name,
			Min:    max - fn.Defaults,
			Max:    max,
			Params: buildParams(params, fn.Params),
		})
	}
	img.reindex()
	return img, nil
}

// flatten resolves bases so each class carries every inherited name. The
// class set holds ClassAttr, the type attributes of the class and its
// ancestors and all class attributes; the instance set holds ClassAttr and
// all instance attributes.
func flatten(decls []ClassDecl) ([]*flatClass, error) {
	byName := make(map[string]*ClassDecl, len(decls))
	for i := range decls {
		d := &decls[i]
		if d.Name == "" {
			return nil, fmt.Errorf("tables: class %d has no name", i)
		}
		if _, ok := byName[d.Name]; ok {
			return nil, fmt.Errorf("tables: class %s declared twice", d.Name)
		}
		byName[d.Name] = d
	}
	var result []*flatClass
	for i := range decls {
		d := &decls[i]
		ancestors, err := linearize(byName, d, map[string]bool{})
		if err != nil {
			return nil, err
		}
		class := []string{ClassAttr}
		instance := []string{ClassAttr}
		for _, a := range ancestors {
			class = append(class, TypeAttr(a.Name))
			class = append(class, a.Attrs...)
			instance = append(instance, a.InstanceAttrs...)
		}
		result = append(result, &flatClass{d, dedupe(class), dedupe(instance)})
	}
	return result, nil
}

// linearize returns d followed by its ancestors, depth first, without
// repeats.
func linearize(byName map[string]*ClassDecl, d *ClassDecl, visiting map[string]bool) ([]*ClassDecl, error) {
	if visiting[d.Name] {
		return nil, fmt.Errorf("tables: cycle in bases of %s", d.Name)
	}
	visiting[d.Name] = true
	defer delete(visiting, d.Name)
	result := []*ClassDecl{d}
	for _, name := range d.Bases {
		base, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("tables: class %s has unknown base %s", d.Name, name)
		}
		inherited, err := linearize(byName, base, visiting)
		if err != nil {
			return nil, err
		}
		result = append(result, inherited...)
	}
	return result, nil
}

// numberNames codes names in sorted order starting at 1 and colours
// positions greedily so that names sharing a set never share a position.
func numberNames(sets [][]string, pinned string) map[string]Symbol {
	neighbours := map[string]map[string]bool{}
	for _, set := range sets {
		for _, a := range set {
			if neighbours[a] == nil {
				neighbours[a] = map[string]bool{}
			}
			for _, b := range set {
				if a != b {
					neighbours[a][b] = true
				}
			}
		}
	}
	names := make([]string, 0, len(neighbours))
	for name := range neighbours {
		names = append(names, name)
	}
	sort.Strings(names)
	result := make(map[string]Symbol, len(names))
	for i, name := range names {
		result[name] = Symbol{Name: name, Code: uint32(i + 1), Pos: -1}
	}
	order := append([]string(nil), names...)
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if (a == pinned) != (b == pinned) {
			return a == pinned
		}
		return len(neighbours[a]) > len(neighbours[b])
	})
	for _, name := range order {
		used := map[int]bool{}
		for other := range neighbours[name] {
			if p := result[other].Pos; p >= 0 {
				used[p] = true
			}
		}
		pos := 0
		for used[pos] {
			pos++
		}
		s := result[name]
		s.Pos = pos
		result[name] = s
	}
	return result
}

func buildTable(attrs map[string]Symbol, names []string) []uint32 {
	size := 0
	for _, name := range names {
		if p := attrs[name].Pos; p >= size {
			size = p + 1
		}
	}
	table := make([]uint32, size)
	for _, name := range names {
		s := attrs[name]
		table[s.Pos] = s.Code
	}
	return table
}

// buildParams lays out a parameter table indexed by parameter position.
// Slot 0 is the context so declared parameters start at slot 1.
func buildParams(params map[string]Symbol, names []string) []Param {
	size := 0
	for _, name := range names {
		if p := params[name].Pos; p >= size {
			size = p + 1
		}
	}
	table := make([]Param, size)
	for i, name := range names {
		s := params[name]
		table[s.Pos] = Param{Code: s.Code, Pos: i + 1}
	}
	return table
}

func symbols(m map[string]Symbol) []Symbol {
	result := make([]Symbol, 0, len(m))
	for _, s := range m {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := names[:0:0]
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}
	return result
}

func firstDuplicate(names []string) string {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return name
		}
		seen[name] = true
	}
	return ""
}
