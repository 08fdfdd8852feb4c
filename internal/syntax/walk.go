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

// Walk traverses the tree rooted at n in depth-first, source order.
//
// f is called with push=true when a node is entered. If that call returns true,
// Walk visits the children and calls f with push=false when leaving the node.
// The return value of the push=false call is ignored.
func Walk(n Node, f func(n Node, push bool) bool) {
	if n == nil || !f(n, true) {
		return
	}

	for _, child := range nodeChildren(n) {
		Walk(child, f)
	}

	f(n, false)
}

// WalkFile traverses all top-level declarations of a file using [Walk].
func WalkFile(file *File, f func(n Node, push bool) bool) {
	for _, decl := range file.Decls {
		Walk(decl, f)
	}
}

func nodeChildren(n Node) []Node {
	switch n := n.(type) {
	case *ClassDecl:
		return appendNodes(appendNodes(nil, n.Name), n.Body...)

	case *PropertyDecl:
		return appendNodes(appendNodes(nil, n.Ident), n.Value)

	case *FuncDecl:
		return appendNodes(appendNodes(nil, n.Name), n.Body)

	case *Block:
		return appendNodes(nil, n.Stmts...)

	case Expr:
		children := Children(n)

		nodes := make([]Node, 0, len(children))
		for _, c := range children {
			nodes = append(nodes, c)
		}

		return nodes

	default:
		return nil
	}
}

// appendNodes appends all present nodes. Typed nil pointers are filtered, since optional
// fields like [ClassDecl.Name] are stored as pointers.
func appendNodes[N Node](nodes []Node, children ...N) []Node {
	for _, c := range children {
		if isNil(c) {
			continue
		}

		nodes = append(nodes, c)
	}

	return nodes
}

func isNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true

	case *Ident:
		return n == nil

	case *Block:
		return n == nil

	default:
		return false
	}
}
