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

package rule

import "go/token"

// Issue describes what a rule reports.
type Issue struct {
	ID          string
	Severity    Severity
	Description string
}

// UselessPostfixExpression is reported for postfix increments and decrements whose
// result is thrown away.
var UselessPostfixExpression = Issue{
	ID:          "UselessPostfixExpression",
	Severity:    Defect,
	Description: "The incremented or decremented value is unused. This value is replaced with the original value.",
}

// Range is a source range, usually a syntax node.
type Range interface {
	Pos() token.Pos
	End() token.Pos
}

// Diagnostic is a finding of an [Issue] at a source range.
type Diagnostic struct {
	RuleID   string
	Severity Severity
	Message  string
	Pos, End token.Pos
}

// At creates a [Diagnostic] for this issue anchored at rng.
func (i Issue) At(rng Range) Diagnostic {
	return Diagnostic{
		RuleID:   i.ID,
		Severity: i.Severity,
		Message:  i.Description,
		Pos:      rng.Pos(),
		End:      rng.End(),
	}
}
