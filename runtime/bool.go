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

// GetBool returns True if v is true, False otherwise.
func (p *Program) GetBool(v bool) *Object {
	if v {
		return p.True
	}
	return p.False
}

// IsTrue reports whether o is the True singleton.
func (p *Program) IsTrue(o Attr) bool {
	return o.Is(RefAttr(p.True))
}
