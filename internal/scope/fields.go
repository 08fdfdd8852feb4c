// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package scope

import (
	"slices"

	"fillmore-labs.com/uselesspostfix/internal/syntax"
)

// Fields is a stack of class scopes holding the names of declared fields.
//
// Entering a class pushes the names of all properties declared directly in its body,
// leaving it pops them again. Lookups see the fields of all enclosing classes.
//
// A file scoped stack never forgets names: after [Fields.Pop] the fields of a class stay
// registered until the end of the file.
type Fields struct {
	names      []string
	marks      []int
	fileScoped bool
}

// NewFields creates an empty field registry for the traversal of one file.
func NewFields(fileScoped bool) *Fields {
	return &Fields{fileScoped: fileScoped}
}

// Push enters class c and registers its fields.
func (s *Fields) Push(c *syntax.ClassDecl) {
	s.marks = append(s.marks, len(s.names))

	for _, p := range c.Properties() {
		if name := p.Name(); name != "" {
			s.names = append(s.names, name)
		}
	}
}

// Pop leaves the innermost class.
func (s *Fields) Pop() {
	n := len(s.marks) - 1
	if n < 0 {
		return
	}

	if !s.fileScoped {
		s.names = s.names[:s.marks[n]]
	}

	s.marks = s.marks[:n]
}

// Registered reports whether name is a visible field.
func (s *Fields) Registered(name string) bool {
	return slices.Contains(s.names, name)
}
