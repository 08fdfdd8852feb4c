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

// Package detect finds postfix increments and decrements whose result is discarded.
//
// Two shapes are reported:
//
//	return x++      // returns the old value of a local
//	x = x++         // assigns the old value back
//
// Returning the postfix of a field directly is exempt, since the side effect on the field
// outlives the function. Postfix expressions nested one level into a return value are always
// reported, as are nested ones in an assignment back to the same identifier.
package detect

import (
	"iter"

	"fillmore-labs.com/uselesspostfix/internal/config"
	"fillmore-labs.com/uselesspostfix/internal/rule"
	"fillmore-labs.com/uselesspostfix/internal/scope"
	"fillmore-labs.com/uselesspostfix/internal/syntax"
)

// Detector checks syntax trees. It holds no per-file state and can be shared between goroutines.
type Detector struct {
	fileScoped bool
}

// New creates a [Detector] with the given behavior.
func New(behavior config.Behavior) Detector {
	return Detector{fileScoped: !behavior.Enabled(config.ClassScopedFields)}
}

// Check returns all diagnostics for file in source order.
func (d Detector) Check(file *syntax.File) []rule.Diagnostic {
	var diagnostics []rule.Diagnostic
	for diagnostic := range d.All(file) {
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

// All yields the diagnostics for file in source order.
func (d Detector) All(file *syntax.File) iter.Seq[rule.Diagnostic] {
	return func(yield func(rule.Diagnostic) bool) {
		if file == nil {
			return
		}

		p := pass{
			file:   file,
			fields: scope.NewFields(d.fileScoped),
			yield:  yield,
		}

		syntax.WalkFile(file, p.visit)
	}
}

// pass holds the state of a single file traversal.
type pass struct {
	file    *syntax.File
	fields  *scope.Fields
	yield   func(rule.Diagnostic) bool
	stopped bool
}

func (p *pass) visit(n syntax.Node, push bool) bool {
	if p.stopped {
		return false
	}

	switch n := n.(type) {
	case *syntax.ClassDecl:
		if push {
			p.fields.Push(n)
		} else {
			p.fields.Pop()
		}

		return true

	case *syntax.ReturnExpr:
		if push {
			p.checkReturn(n)
		}

		return false // operands are checked one level deep only

	case *syntax.BinaryExpr:
		if push {
			p.checkReassign(n)
		}

		return false

	default:
		return true
	}
}

// emit reports a discarded postfix expression.
func (p *pass) emit(postfix *syntax.PostfixExpr) {
	if p.stopped {
		return
	}

	if !p.yield(rule.UselessPostfixExpression.At(postfix)) {
		p.stopped = true
	}
}

// postfixChildren yields the postfix expressions among the immediate children of e.
func postfixChildren(e syntax.Expr) iter.Seq[*syntax.PostfixExpr] {
	return func(yield func(*syntax.PostfixExpr) bool) {
		for _, child := range syntax.Children(e) {
			postfix, ok := child.(*syntax.PostfixExpr)
			if !ok {
				continue
			}

			if !yield(postfix) {
				return
			}
		}
	}
}
