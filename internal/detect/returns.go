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

// checkReturn reports postfix expressions whose value is returned.
//
// A directly returned postfix is exempt when its operand names a field of an enclosing class.
// Postfix expressions one level below the returned expression are reported without exemption.
func (p *pass) checkReturn(ret *syntax.ReturnExpr) {
	if postfix, ok := ret.Result.(*syntax.PostfixExpr); ok && !p.isFieldPostfix(postfix) {
		p.emit(postfix)
	}

	for postfix := range postfixChildren(ret.Result) {
		p.emit(postfix)
	}
}

// isFieldPostfix reports whether the operand text of postfix is a registered field name.
func (p *pass) isFieldPostfix(postfix *syntax.PostfixExpr) bool {
	if postfix.X == nil {
		return false
	}

	return p.fields.Registered(p.file.Text(postfix.X))
}
