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

// Package treeio reads syntax trees exported by a parser as JSON.
//
// A document holds the file name, the complete source text and the top-level declarations:
//
//	{
//	  "name": "Counter.kt",
//	  "source": "fun f() { return x++ }",
//	  "decls": [
//	    {"kind": "function", "start": 0, "end": 22,
//	     "name": {"kind": "ident", "start": 4, "end": 5},
//	     "body": {"kind": "block", "start": 8, "end": 22, "stmts": [
//	       {"kind": "return", "start": 10, "end": 20,
//	        "result": {"kind": "postfix", "start": 17, "end": 20,
//	                   "x": {"kind": "ident", "start": 17, "end": 18}}}]}}
//	  ]
//	}
//
// Offsets are byte offsets into the source. Identifier names and operators default to
// the source text they cover. Nodes of unknown kinds are kept as opaque expressions.
package treeio

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"

	"github.com/segmentio/encoding/json"

	"fillmore-labs.com/uselesspostfix/internal/syntax"
)

var (
	// ErrInvalidSpan is returned for nodes with offsets outside of the source text.
	ErrInvalidSpan = errors.New("invalid span")

	// ErrNotExpression is returned when a declaration appears in expression position.
	ErrNotExpression = errors.New("not an expression")
)

// Node kinds of the wire format.
const (
	KindClass    = "class"
	KindProperty = "property"
	KindFunction = "function"
	KindBlock    = "block"
	KindReturn   = "return"
	KindBinary   = "binary"
	KindPostfix  = "postfix"
	KindIdent    = "ident"
	KindCall     = "call"
)

type document struct {
	Name   string  `json:"name"`
	Source string  `json:"source"`
	Decls  []*node `json:"decls"`
}

type node struct {
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`

	Name    *node   `json:"name,omitempty"`
	Members []*node `json:"members,omitempty"`
	Value   *node   `json:"value,omitempty"`
	Body    *node   `json:"body,omitempty"`
	Stmts   []*node `json:"stmts,omitempty"`
	Result  *node   `json:"result,omitempty"`
	X       *node   `json:"x,omitempty"`
	Y       *node   `json:"y,omitempty"`
	Op      string  `json:"op,omitempty"`
	Fun     *node   `json:"fun,omitempty"`
	Args    []*node `json:"args,omitempty"`

	Children []*node `json:"children,omitempty"`
}

// ReadFile reads a tree document from a file.
func ReadFile(fset *token.FileSet, path string) (*syntax.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := Decode(fset, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return file, nil
}

// Decode reads a tree document and registers its source with fset.
func Decode(fset *token.FileSet, r io.Reader) (*syntax.File, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding tree: %w", err)
	}

	file := syntax.NewFile(fset, doc.Name, []byte(doc.Source))

	c := converter{file: file, size: len(doc.Source)}
	for _, decl := range doc.Decls {
		n, err := c.node(decl)
		if err != nil {
			return nil, err
		}

		if n != nil {
			file.Decls = append(file.Decls, n)
		}
	}

	return file, nil
}

type converter struct {
	file *syntax.File
	size int
}

func (c converter) span(n *node) (syntax.Span, error) {
	if n.Start < 0 || n.End < n.Start || n.End > c.size {
		return syntax.Span{}, fmt.Errorf("%s node [%d:%d] in source of length %d: %w", n.Kind, n.Start, n.End, c.size, ErrInvalidSpan)
	}

	return syntax.Span{From: c.file.Pos(n.Start), To: c.file.Pos(n.End)}, nil
}

// node converts a declaration, statement or expression. Absent nodes convert to nil.
func (c converter) node(n *node) (syntax.Node, error) {
	if n == nil {
		return nil, nil
	}

	switch n.Kind {
	case KindClass:
		return c.class(n)

	case KindProperty:
		return c.property(n)

	case KindFunction:
		return c.function(n)

	case KindBlock:
		return c.block(n)

	default:
		e, err := c.expr(n)
		if e == nil || err != nil {
			return nil, err
		}

		return e, nil
	}
}

func (c converter) class(n *node) (*syntax.ClassDecl, error) {
	span, err := c.span(n)
	if err != nil {
		return nil, err
	}

	decl := &syntax.ClassDecl{Span: span}

	if decl.Name, err = c.ident(n.Name); err != nil {
		return nil, err
	}

	if decl.Body, err = c.nodes(n.Members); err != nil {
		return nil, err
	}

	return decl, nil
}

func (c converter) property(n *node) (*syntax.PropertyDecl, error) {
	span, err := c.span(n)
	if err != nil {
		return nil, err
	}

	decl := &syntax.PropertyDecl{Span: span}

	if decl.Ident, err = c.ident(n.Name); err != nil {
		return nil, err
	}

	if decl.Value, err = c.expr(n.Value); err != nil {
		return nil, err
	}

	return decl, nil
}

func (c converter) function(n *node) (*syntax.FuncDecl, error) {
	span, err := c.span(n)
	if err != nil {
		return nil, err
	}

	decl := &syntax.FuncDecl{Span: span}

	if decl.Name, err = c.ident(n.Name); err != nil {
		return nil, err
	}

	if decl.Body, err = c.node(n.Body); err != nil {
		return nil, err
	}

	return decl, nil
}

func (c converter) block(n *node) (*syntax.Block, error) {
	span, err := c.span(n)
	if err != nil {
		return nil, err
	}

	stmts, err := c.nodes(n.Stmts)
	if err != nil {
		return nil, err
	}

	return &syntax.Block{Span: span, Stmts: stmts}, nil
}

func (c converter) nodes(ns []*node) ([]syntax.Node, error) {
	var nodes []syntax.Node

	for _, n := range ns {
		converted, err := c.node(n)
		if err != nil {
			return nil, err
		}

		if converted != nil {
			nodes = append(nodes, converted)
		}
	}

	return nodes, nil
}

func (c converter) ident(n *node) (*syntax.Ident, error) {
	if n == nil {
		return nil, nil
	}

	span, err := c.span(n)
	if err != nil {
		return nil, err
	}

	return &syntax.Ident{Span: span, Name: c.file.Text(span)}, nil
}
