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

package syntax

import "go/token"

// File is the syntax tree of one source file together with its source text.
type File struct {
	Decls []Node

	handle *token.File
	src    []byte
}

// NewFile registers a source file of the given name with the file set.
// Positions of nodes added to the file are obtained with [File.Pos].
func NewFile(fset *token.FileSet, name string, src []byte) *File {
	handle := fset.AddFile(name, -1, len(src))
	handle.SetLinesForContent(src)

	return &File{handle: handle, src: src}
}

// Name returns the file name.
func (f *File) Name() string { return f.handle.Name() }

// Source returns the source text of the file.
func (f *File) Source() []byte { return f.src }

// Handle returns the [token.File] of this file.
func (f *File) Handle() *token.File { return f.handle }

// Pos returns the position of a byte offset in the source.
func (f *File) Pos(offset int) token.Pos {
	return f.handle.Pos(offset)
}

// Position returns the line and column information of a position.
func (f *File) Position(pos token.Pos) token.Position {
	return f.handle.PositionFor(pos, false)
}

// Text returns the source text covered by n, or "" when n is nil or lies outside of this file.
func (f *File) Text(n Node) string {
	if n == nil {
		return ""
	}

	start, end, ok := f.offsets(n.Pos(), n.End())
	if !ok {
		return ""
	}

	return string(f.src[start:end])
}

// LineText returns the complete source line containing pos, without the line terminator.
func (f *File) LineText(pos token.Pos) string {
	if !f.contains(pos) {
		return ""
	}

	line := f.handle.Line(pos)
	start := f.handle.Offset(f.handle.LineStart(line))

	end := len(f.src)
	if line < f.handle.LineCount() {
		end = f.handle.Offset(f.handle.LineStart(line+1)) - 1
	}

	if end > start && f.src[end-1] == '\r' {
		end--
	}

	return string(f.src[start:end])
}

func (f *File) offsets(pos, end token.Pos) (int, int, bool) {
	if !f.contains(pos) || !f.contains(end) || end < pos {
		return 0, 0, false
	}

	return f.handle.Offset(pos), f.handle.Offset(end), true
}

func (f *File) contains(pos token.Pos) bool {
	base := f.handle.Base()

	return base <= int(pos) && int(pos) <= base+f.handle.Size()
}
