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

// Node is implemented by all nodes of the syntax tree.
type Node interface {
	Pos() token.Pos // position of first character belonging to the node
	End() token.Pos // position of first character immediately after the node
}

// Expr is implemented by all expression nodes.
//
// The set of expressions is closed: [ReturnExpr], [BinaryExpr], [PostfixExpr],
// [Ident], [CallExpr] and [OpaqueExpr].
type Expr interface {
	Node
	exprNode()
}

// Span is a half-open source range. It implements [Node] and is embedded in all node types.
type Span struct {
	From, To token.Pos
}

// Pos implements [Node].
func (s Span) Pos() token.Pos { return s.From }

// End implements [Node].
func (s Span) End() token.Pos { return s.To }

type (
	// ClassDecl is a class-like declaration. Body holds properties, functions,
	// nested classes and other members in source order.
	ClassDecl struct {
		Span
		Name *Ident
		Body []Node
	}

	// PropertyDecl declares a property. Declared directly in a [ClassDecl] body it is a field,
	// inside a [Block] a local variable.
	PropertyDecl struct {
		Span
		Ident *Ident
		Value Expr // or nil
	}

	// FuncDecl is a function or method declaration.
	FuncDecl struct {
		Span
		Name *Ident
		Body Node // *Block, an Expr for expression bodies, or nil
	}

	// Block is a braced statement list.
	Block struct {
		Span
		Stmts []Node
	}
)

type (
	// ReturnExpr is a return statement, optionally holding the returned expression.
	ReturnExpr struct {
		Span
		Result Expr // or nil
	}

	// BinaryExpr is any binary expression, including assignments.
	BinaryExpr struct {
		Span
		X  Expr // left operand, or nil
		Op string
		Y  Expr // right operand, or nil
	}

	// PostfixExpr is a postfix increment or decrement.
	PostfixExpr struct {
		Span
		X     Expr // operand, or nil
		OpPos token.Pos
		Op    string // "++" or "--"
	}

	// Ident is an identifier.
	Ident struct {
		Span
		Name string
	}

	// CallExpr is a function call.
	CallExpr struct {
		Span
		Fun  Expr // or nil
		Args []Expr
	}

	// OpaqueExpr stands for all other expression kinds. Only its source text
	// and its child expressions are known.
	OpaqueExpr struct {
		Span
		Children []Expr
	}
)

func (*ReturnExpr) exprNode()  {}
func (*BinaryExpr) exprNode()  {}
func (*PostfixExpr) exprNode() {}
func (*Ident) exprNode()       {}
func (*CallExpr) exprNode()    {}
func (*OpaqueExpr) exprNode()  {}

// Name returns the declared property name, or "" when the name is missing.
func (p *PropertyDecl) Name() string {
	if p.Ident == nil {
		return ""
	}

	return p.Ident.Name
}

// Properties returns the properties declared directly in the class body.
func (c *ClassDecl) Properties() []*PropertyDecl {
	var props []*PropertyDecl

	for _, member := range c.Body {
		if p, ok := member.(*PropertyDecl); ok {
			props = append(props, p)
		}
	}

	return props
}

// FirstChild returns the leading child of the postfix expression: its operand when present,
// the operator token otherwise.
func (p *PostfixExpr) FirstChild() Node {
	if p.X != nil {
		return p.X
	}

	return Span{From: p.OpPos, To: p.OpPos + token.Pos(len(p.Op))}
}

// Children returns the immediate child expressions of e, skipping absent operands.
func Children(e Expr) []Expr {
	switch e := e.(type) {
	case nil:
		return nil

	case *ReturnExpr:
		return appendPresent(nil, e.Result)

	case *BinaryExpr:
		return appendPresent(nil, e.X, e.Y)

	case *PostfixExpr:
		return appendPresent(nil, e.X)

	case *Ident:
		return nil

	case *CallExpr:
		return appendPresent(appendPresent(nil, e.Fun), e.Args...)

	case *OpaqueExpr:
		return appendPresent(nil, e.Children...)

	default:
		panic("syntax: unexpected expression type")
	}
}

func appendPresent(children []Expr, exprs ...Expr) []Expr {
	for _, e := range exprs {
		if e != nil {
			children = append(children, e)
		}
	}

	return children
}
