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

package detect

import "fillmore-labs.com/uselesspostfix/internal/syntax"

// checkReassign reports postfix expressions on the right side of a binary expression
// that start with the text of the left side, like
//
//	x = x++
//	x = foo(x++)
func (p *pass) checkReassign(bin *syntax.BinaryExpr) {
	if bin.X == nil {
		return
	}

	left := p.file.Text(bin.X)

	if postfix, ok := bin.Y.(*syntax.PostfixExpr); ok {
		p.checkReassigned(postfix, left)
	}

	for postfix := range postfixChildren(bin.Y) {
		p.checkReassigned(postfix, left)
	}
}

func (p *pass) checkReassigned(postfix *syntax.PostfixExpr, left string) {
	if p.file.Text(postfix.FirstChild()) == left {
		p.emit(postfix)
	}
}
