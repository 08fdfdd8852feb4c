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

package treeio

import (
	"fmt"
	"go/token"
	"strings"

	"fillmore-labs.com/uselesspostfix/internal/syntax"
)

// expr converts an expression. Absent expressions convert to nil.
func (c converter) expr(n *node) (syntax.Expr, error) {
	if n == nil {
		return nil, nil
	}

	span, err := c.span(n)
	if err != nil {
		return nil, err
	}

	switch n.Kind {
	case KindClass, KindProperty, KindFunction, KindBlock:
		return nil, fmt.Errorf("%s node at offset %d: %w", n.Kind, n.Start, ErrNotExpression)

	case KindReturn:
		e := &syntax.ReturnExpr{Span: span}
		e.Result, err = c.expr(n.Result)

		return e, err

	case KindBinary:
		e := &syntax.BinaryExpr{Span: span, Op: n.Op}
		if e.X, err = c.expr(n.X); err != nil {
			return nil, err
		}

		e.Y, err = c.expr(n.Y)

		return e, err

	case KindPostfix:
		return c.postfix(n, span)

	case KindIdent:
		return &syntax.Ident{Span: span, Name: c.file.Text(span)}, nil

	case KindCall:
		e := &syntax.CallExpr{Span: span}
		if e.Fun, err = c.expr(n.Fun); err != nil {
			return nil, err
		}

		e.Args, err = c.exprs(n.Args)

		return e, err

	default:
		e := &syntax.OpaqueExpr{Span: span}
		e.Children, err = c.exprs(n.Children)

		return e, err
	}
}

// postfix converts a postfix expression. The operator defaults to the last two
// characters of the expression source.
func (c converter) postfix(n *node, span syntax.Span) (*syntax.PostfixExpr, error) {
	x, err := c.expr(n.X)
	if err != nil {
		return nil, err
	}

	text := strings.TrimRight(c.file.Text(span), " \t\r\n")

	op := n.Op
	if op == "" {
		op = text[max(len(text)-2, 0):]
	}

	opPos := span.From + token.Pos(max(len(text)-len(op), 0))

	return &syntax.PostfixExpr{Span: span, X: x, OpPos: opPos, Op: op}, nil
}

func (c converter) exprs(ns []*node) ([]syntax.Expr, error) {
	var exprs []syntax.Expr

	for _, n := range ns {
		e, err := c.expr(n)
		if err != nil {
			return nil, err
		}

		if e != nil {
			exprs = append(exprs, e)
		}
	}

	return exprs, nil
}
