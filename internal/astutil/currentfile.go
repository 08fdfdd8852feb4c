// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package astutil

import (
	"bufio"
	"bytes"
	"go/token"
	"regexp"
	"strings"

	"fillmore-labs.com/uselesspostfix/internal/syntax"
)

// Linter names accepted in nolint directives.
const (
	linterName = "uselesspostfix"
	ruleName   = "uselesspostfixexpression"
)

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *syntax.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a *[syntax.File].
func NewCurrentFile(file *syntax.File) CurrentFile {
	if file == nil || file.Handle() == nil {
		return CurrentFile{}
	}

	return CurrentFile{file, isGenerated(file.Source())}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file.
func (c CurrentFile) Valid() bool {
	return c.file != nil
}

// File returns the syntax tree.
func (c CurrentFile) File() *syntax.File {
	return c.file
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

var generatedPattern = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

// isGenerated reports whether the leading comment lines contain the
// "// Code generated ... DO NOT EDIT." marker.
func isGenerated(src []byte) bool {
	lines := bufio.NewScanner(bytes.NewReader(src))
	for lines.Scan() {
		line := strings.TrimSpace(lines.Text())

		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, "//"):
			if generatedPattern.MatchString(line) {
				return true
			}

		default:
			return false
		}
	}

	return false
}

// NoLintComment checks if the line of pos ends with a //nolint:uselesspostfix comment
// or carries a @Suppress("UselessPostfixExpression") annotation.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	line := c.file.LineText(pos)

	if HasSuppressAnnotation(line) {
		return true
	}

	for i := strings.Index(line, "//"); i >= 0; {
		if CommentHasNoLint(line[i:]) {
			return true
		}

		next := strings.Index(line[i+2:], "//")
		if next < 0 {
			break
		}

		i += 2 + next
	}

	return false
}

var suppressPattern = regexp.MustCompile(`@Suppress\(([^)]*)\)`)

// HasSuppressAnnotation checks if the text contains a @Suppress annotation naming the rule.
func HasSuppressAnnotation(text string) bool {
	for _, m := range suppressPattern.FindAllStringSubmatch(text, -1) {
		for arg := range strings.SplitSeq(m[1], ",") {
			switch strings.Trim(strings.TrimSpace(arg), `"`) {
			case "UselessPostfixExpression", "all":
				return true
			}
		}
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:uselesspostfix` directive.
func CommentHasNoLint(comment string) bool {
	matches := nolintPattern.FindStringSubmatch(comment)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		switch strings.ToLower(strings.TrimSpace(linter)) {
		case linterName, ruleName, "all":
			return true
		}
	}

	return false
}
