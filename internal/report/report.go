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

package report

import (
	"context"
	"go/token"
	"runtime/trace"

	"fillmore-labs.com/uselesspostfix/internal/astutil"
	"fillmore-labs.com/uselesspostfix/internal/config"
	"fillmore-labs.com/uselesspostfix/internal/rule"
	"fillmore-labs.com/uselesspostfix/internal/syntax"
)

// Report holds the diagnostics of one file.
type Report struct {
	File        *syntax.File
	Diagnostics []rule.Diagnostic
}

// Position is a resolved source location of a diagnostic.
type Position struct {
	Start, End token.Position
}

// Position resolves the source range of a diagnostic.
func (r Report) Position(d rule.Diagnostic) Position {
	return Position{Start: r.File.Position(d.Pos), End: r.File.Position(d.End)}
}

// ProcessDiagnostics filters the diagnostics of a file before they are handed to a sink.
//
// With [config.HonorSuppressions] enabled, diagnostics on lines with a nolint directive are dropped.
func ProcessDiagnostics(ctx context.Context, currentFile astutil.CurrentFile, diagnostics []rule.Diagnostic, behavior config.Behavior) Report {
	defer trace.StartRegion(ctx, "Report").End()

	r := Report{File: currentFile.File()}

	if !behavior.Enabled(config.HonorSuppressions) {
		r.Diagnostics = diagnostics

		return r
	}

	for _, d := range diagnostics {
		if currentFile.NoLintComment(d.Pos) {
			continue
		}

		r.Diagnostics = append(r.Diagnostics, d)
	}

	return r
}

// Count returns the total number of diagnostics in all reports.
func Count(reports []Report) int {
	n := 0
	for _, r := range reports {
		n += len(r.Diagnostics)
	}

	return n
}
