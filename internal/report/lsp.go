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
	"go/token"
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/segmentio/encoding/json"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"fillmore-labs.com/uselesspostfix/internal/rule"
)

// source is the diagnostic source reported to language clients.
const source = "uselesspostfix"

// LSP converts a report into the parameters of a textDocument/publishDiagnostics notification.
func LSP(r Report) protocol.PublishDiagnosticsParams {
	params := protocol.PublishDiagnosticsParams{
		URI:         uri.File(r.File.Name()),
		Diagnostics: make([]protocol.Diagnostic, 0, len(r.Diagnostics)),
	}

	for _, d := range r.Diagnostics {
		params.Diagnostics = append(params.Diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: r.lspPosition(d.Pos),
				End:   r.lspPosition(d.End),
			},
			Severity: lspSeverity(d.Severity),
			Code:     d.RuleID,
			Source:   source,
			Message:  d.Message,
			Tags:     []protocol.DiagnosticTag{protocol.DiagnosticTagUnnecessary},
		})
	}

	return params
}

// lspPosition converts a position into a zero-based line and UTF-16 character offset.
func (r Report) lspPosition(pos token.Pos) protocol.Position {
	p := r.File.Position(pos)
	if !p.IsValid() {
		return protocol.Position{}
	}

	line := r.File.LineText(pos)
	prefix := line[:min(p.Column-1, len(line))]

	var character uint32
	for len(prefix) > 0 {
		ch, size := utf8.DecodeRuneInString(prefix)
		prefix = prefix[size:]

		if n := utf16.RuneLen(ch); n > 0 {
			character += uint32(n)
		} else {
			character++
		}
	}

	return protocol.Position{Line: uint32(p.Line - 1), Character: character}
}

func lspSeverity(s rule.Severity) protocol.DiagnosticSeverity {
	switch s {
	case rule.Defect, rule.Security:
		return protocol.DiagnosticSeverityError

	case rule.Warning, rule.Performance:
		return protocol.DiagnosticSeverityWarning

	case rule.Style, rule.Minor:
		return protocol.DiagnosticSeverityHint

	default:
		return protocol.DiagnosticSeverityInformation
	}
}

func writeLSP(w io.Writer, reports []Report) error {
	enc := json.NewEncoder(w)

	for _, r := range reports {
		if err := enc.Encode(LSP(r)); err != nil {
			return err
		}
	}

	return nil
}
