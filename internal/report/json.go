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

package report

import (
	"io"

	"github.com/segmentio/encoding/json"

	"fillmore-labs.com/uselesspostfix/internal/rule"
)

type jsonDiagnostic struct {
	File      string        `json:"file"`
	Line      int           `json:"line"`
	Column    int           `json:"column"`
	EndLine   int           `json:"endLine"`
	EndColumn int           `json:"endColumn"`
	Rule      string        `json:"rule"`
	Severity  rule.Severity `json:"severity"`
	Message   string        `json:"message"`
}

func writeJSON(w io.Writer, reports []Report) error {
	diagnostics := make([]jsonDiagnostic, 0, Count(reports))

	for _, r := range reports {
		for _, d := range r.Diagnostics {
			pos := r.Position(d)

			diagnostics = append(diagnostics, jsonDiagnostic{
				File:      pos.Start.Filename,
				Line:      pos.Start.Line,
				Column:    pos.Start.Column,
				EndLine:   pos.End.Line,
				EndColumn: pos.End.Column,
				Rule:      d.RuleID,
				Severity:  d.Severity,
				Message:   d.Message,
			})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(diagnostics)
}
