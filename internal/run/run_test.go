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

package run_test

import (
	"context"
	"errors"
	"go/token"
	"testing"

	"fillmore-labs.com/uselesspostfix/internal/config"
	. "fillmore-labs.com/uselesspostfix/internal/run"
	"fillmore-labs.com/uselesspostfix/internal/syntax"
	"fillmore-labs.com/uselesspostfix/internal/testsource"
)

func files(t *testing.T, n int, header string) []*syntax.File {
	t.Helper()

	fset := token.NewFileSet()

	result := make([]*syntax.File, 0, n)
	for i := range n {
		// File i contains i+1 reassignments.
		parts := []any{header}
		for range i + 1 {
			parts = append(parts, testsource.Binary(testsource.Ident("x"), " = ", testsource.Postfix(testsource.Ident("x"), "++")), "\n")
		}

		result = append(result, testsource.FileSet(t, fset, parts...))
	}

	return result
}

func TestRun(t *testing.T) {
	t.Parallel()

	const n = 16

	r := DefaultOptions()

	reports, err := r.Run(context.Background(), files(t, n, ""))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(reports) != n {
		t.Fatalf("Got %d reports, want %d", len(reports), n)
	}

	for i, rep := range reports {
		if got := len(rep.Diagnostics); got != i+1 {
			t.Errorf("Report %d has %d diagnostics, want %d", i, got, i+1)
		}
	}
}

func TestRunGenerated(t *testing.T) {
	t.Parallel()

	const header = "// Code generated by test. DO NOT EDIT.\n"

	tests := []struct {
		name      string
		generated bool
		want      int
	}{
		{"skip", false, 0},
		{"include", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := DefaultOptions()
			r.Behavior.Set(config.IncludeGenerated, tt.generated)

			rep, err := r.CheckFile(context.Background(), files(t, 1, header)[0])
			if err != nil {
				t.Fatalf("CheckFile failed: %v", err)
			}

			if rep.File == nil {
				t.Error("Report without file")
			}

			if got := len(rep.Diagnostics); got != tt.want {
				t.Errorf("Got %d diagnostics, want %d", got, tt.want)
			}
		})
	}
}

func TestRunInvalidFile(t *testing.T) {
	t.Parallel()

	_, err := DefaultOptions().Run(context.Background(), []*syntax.File{nil})
	if !errors.Is(err, ErrInvalidFile) {
		t.Errorf("Run() error = %v, want %v", err, ErrInvalidFile)
	}
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DefaultOptions().Run(ctx, files(t, 2, ""))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want %v", err, context.Canceled)
	}
}
