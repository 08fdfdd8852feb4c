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

// Package testsource builds syntax trees together with their source text in tests.
//
// A tree is written as nested fragments. Strings are literal source text, fragments are
// child nodes; the source of a node is the concatenation of its parts. Positions are
// computed from the layout, so tests never have to count offsets:
//
//	file := testsource.File(t,
//		Func("fun ", Ident("f"), "(): Int ",
//			Block("{ ", Return("return ", Postfix(Ident("x"), "++")), " }")))
//
// A nil part stands for an absent operand.
package testsource

import (
	"go/token"
	"strings"
	"testing"

	"fillmore-labs.com/uselesspostfix/internal/syntax"
)

const filename = "Test.kt"

type kind uint8

const (
	kindClass kind = iota
	kindProperty
	kindFunc
	kindBlock
	kindReturn
	kindBinary
	kindPostfix
	kindIdent
	kindCall
	kindOpaque
)

// Fragment is a node of a tree under construction.
type Fragment struct {
	kind  kind
	parts []any
}

// Class is a class declaration. An [Ident] fragment names the class, other fragments form the body.
func Class(parts ...any) Fragment { return Fragment{kindClass, parts} }

// Property is a property declaration. The first fragment is the name, the second the initial value.
func Property(parts ...any) Fragment { return Fragment{kindProperty, parts} }

// Func is a function declaration. An [Ident] fragment names the function, the next fragment is the body.
func Func(parts ...any) Fragment { return Fragment{kindFunc, parts} }

// Block is a statement list.
func Block(parts ...any) Fragment { return Fragment{kindBlock, parts} }

// Return is a return statement with an optional result fragment.
func Return(parts ...any) Fragment { return Fragment{kindReturn, parts} }

// Binary is a binary expression. The first two fragments are the operands, the text
// between them is the operator.
func Binary(parts ...any) Fragment { return Fragment{kindBinary, parts} }

// Postfix is a postfix expression. The first fragment is the operand, the following text the operator.
func Postfix(parts ...any) Fragment { return Fragment{kindPostfix, parts} }

// Ident is an identifier.
func Ident(name string) Fragment { return Fragment{kindIdent, []any{name}} }

// Call is a function call. The first fragment is the callee, the remaining fragments are arguments.
func Call(parts ...any) Fragment { return Fragment{kindCall, parts} }

// Opaque is any other expression. All fragments become children.
func Opaque(parts ...any) Fragment { return Fragment{kindOpaque, parts} }

// File lays out the top-level parts and returns the resulting file.
func File(tb testing.TB, parts ...any) *syntax.File {
	tb.Helper()

	return FileSet(tb, token.NewFileSet(), parts...)
}

// FileSet is like [File], but registers the file in fset.
func FileSet(tb testing.TB, fset *token.FileSet, parts ...any) *syntax.File {
	tb.Helper()

	var src strings.Builder
	render(tb, &src, parts)

	f := syntax.NewFile(fset, filename, []byte(src.String()))

	b := builder{tb: tb, file: f}
	for _, n := range b.parts(parts) {
		if n != nil {
			f.Decls = append(f.Decls, n)
		}
	}

	return f
}

func render(tb testing.TB, src *strings.Builder, parts []any) {
	tb.Helper()

	for _, part := range parts {
		switch part := part.(type) {
		case string:
			src.WriteString(part) // ignore error

		case Fragment:
			render(tb, src, part.parts)

		case nil:

		default:
			tb.Fatalf("Unexpected part %T", part)
		}
	}
}

// builder creates nodes in the same order render wrote the text.
type builder struct {
	tb     testing.TB
	file   *syntax.File
	offset int
}

type layout struct {
	span     syntax.Span
	children []syntax.Node // nil entries for absent operands
	text     []textPart
}

type textPart struct {
	pos  token.Pos
	text string
}

// parts lays out a part list and returns the child nodes, nil for absent ones.
func (b *builder) parts(parts []any) []syntax.Node {
	l := b.layout(parts)

	return l.children
}

func (b *builder) layout(parts []any) layout {
	var l layout

	l.span.From = b.file.Pos(b.offset)

	for _, part := range parts {
		switch part := part.(type) {
		case string:
			l.text = append(l.text, textPart{b.file.Pos(b.offset), part})
			b.offset += len(part)

		case Fragment:
			l.children = append(l.children, b.node(part))

		case nil:
			l.children = append(l.children, nil)
		}
	}

	l.span.To = b.file.Pos(b.offset)

	return l
}

func (b *builder) node(f Fragment) syntax.Node {
	l := b.layout(f.parts)

	switch f.kind {
	case kindClass:
		c := &syntax.ClassDecl{Span: l.span}

		for _, child := range l.children {
			if id, ok := child.(*syntax.Ident); ok && c.Name == nil {
				c.Name = id

				continue
			}

			if child != nil {
				c.Body = append(c.Body, child)
			}
		}

		return c

	case kindProperty:
		p := &syntax.PropertyDecl{Span: l.span}
		p.Ident, _ = l.child(0).(*syntax.Ident)
		p.Value = b.expr(l.child(1))

		return p

	case kindFunc:
		fn := &syntax.FuncDecl{Span: l.span}

		i := 0
		if id, ok := l.child(0).(*syntax.Ident); ok {
			fn.Name = id
			i++
		}

		fn.Body = l.child(i)

		return fn

	case kindBlock:
		blk := &syntax.Block{Span: l.span}

		for _, child := range l.children {
			if child != nil {
				blk.Stmts = append(blk.Stmts, child)
			}
		}

		return blk

	case kindReturn:
		return &syntax.ReturnExpr{Span: l.span, Result: b.expr(l.child(0))}

	case kindBinary:
		return &syntax.BinaryExpr{
			Span: l.span,
			X:    b.expr(l.child(0)),
			Op:   l.operator(),
			Y:    b.expr(l.child(1)),
		}

	case kindPostfix:
		op := l.lastText()

		return &syntax.PostfixExpr{
			Span:  l.span,
			X:     b.expr(l.child(0)),
			OpPos: op.pos + token.Pos(len(op.text)-len(strings.TrimLeft(op.text, " "))),
			Op:    strings.TrimSpace(op.text),
		}

	case kindIdent:
		return &syntax.Ident{Span: l.span, Name: b.file.Text(l.span)}

	case kindCall:
		call := &syntax.CallExpr{Span: l.span, Fun: b.expr(l.child(0))}
		for i := 1; i < len(l.children); i++ {
			if arg := b.expr(l.child(i)); arg != nil {
				call.Args = append(call.Args, arg)
			}
		}

		return call

	case kindOpaque:
		o := &syntax.OpaqueExpr{Span: l.span}
		for i := range l.children {
			if child := b.expr(l.child(i)); child != nil {
				o.Children = append(o.Children, child)
			}
		}

		return o

	default:
		b.tb.Fatalf("Unknown fragment kind %d", f.kind)

		return nil
	}
}

func (b *builder) expr(n syntax.Node) syntax.Expr {
	if n == nil {
		return nil
	}

	e, ok := n.(syntax.Expr)
	if !ok {
		b.tb.Fatalf("Node %T is not an expression", n)
	}

	return e
}

func (l layout) child(i int) syntax.Node {
	if i >= len(l.children) {
		return nil
	}

	return l.children[i]
}

func (l layout) operator() string {
	var op strings.Builder
	for _, t := range l.text {
		op.WriteString(t.text) // ignore error
	}

	return strings.TrimSpace(op.String())
}

func (l layout) lastText() textPart {
	if len(l.text) == 0 {
		return textPart{pos: l.span.To}
	}

	return l.text[len(l.text)-1]
}
