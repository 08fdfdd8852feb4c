// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

package analyzer_test

import (
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	. "fillmore-labs.com/uselesspostfix/analyzer"
	"fillmore-labs.com/uselesspostfix/analyzer/level"
	"fillmore-labs.com/uselesspostfix/internal/rule"
	"fillmore-labs.com/uselesspostfix/internal/syntax"
	ts "fillmore-labs.com/uselesspostfix/internal/testsource"
)

// sample holds a field "count" in class A, a local "count" returned from class B,
// a reassignment and a suppressed return.
func sample(t *testing.T, header string) *syntax.File {
	t.Helper()

	inc := func(name string) ts.Fragment { return ts.Postfix(ts.Ident(name), "++") }
	property := func(name string) ts.Fragment { return ts.Property("val ", ts.Ident(name), " = ", ts.Opaque("0")) }

	return ts.File(t,
		header,
		ts.Class("class ", ts.Ident("A"), " {\n  ", property("count"), "\n}"), "\n",
		ts.Class("class ", ts.Ident("B"), " {\n  ",
			ts.Func("fun ", ts.Ident("f"), "() ", ts.Block("{\n    ",
				property("count"), "\n    ",
				ts.Binary(ts.Ident("x"), " = ", inc("x")), "\n    ",
				ts.Return("return ", inc("count")), " // nolint:uselesspostfix\n  }")),
			"\n}"),
	)
}

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		options Option
		want    []string
	}{
		{
			name: "Default",
			want: []string{"x++"},
		},
		{
			name:    "NoSuppress",
			options: WithSuppressions(false),
			want:    []string{"x++"},
		},
		{
			name:    "ClassScope",
			options: Options{WithSuppressions(false), WithFieldScope(level.FieldScopeClass)},
			want:    []string{"x++", "count++"},
		},
		{
			name:    "ClassScopeSuppressed",
			options: WithFieldScope(level.FieldScopeClass),
			want:    []string{"x++"},
		},
		{
			name:   "Generated",
			header: "// Code generated by hand. DO NOT EDIT.\n",
			want:   nil,
		},
		{
			name:    "IncludeGenerated",
			header:  "// Code generated by hand. DO NOT EDIT.\n",
			options: Options{WithGenerated(true), nil},
			want:    []string{"x++"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file := sample(t, tt.header)

			reports, err := New(tt.options).Run(t.Context(), []*syntax.File{file})
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if len(reports) != 1 {
				t.Fatalf("Got %d reports, want 1", len(reports))
			}

			if got := texts(file, reports[0].Diagnostics); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Run() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	file := sample(t, "")
	a := New(WithFieldScope(level.FieldScopeClass))

	want := []string{"x++", "count++"}

	if got := texts(file, a.Check(file)); !reflect.DeepEqual(got, want) {
		t.Errorf("Check() = %q, want %q", got, want)
	}

	var all []rule.Diagnostic
	for d := range a.All(file) {
		all = append(all, d)
	}

	if got := texts(file, all); !reflect.DeepEqual(got, want) {
		t.Errorf("All() = %q, want %q", got, want)
	}

	if got := a.Issue(); got != rule.UselessPostfixExpression {
		t.Errorf("Issue() = %+v, want %+v", got, rule.UselessPostfixExpression)
	}
}

func TestCheckFile(t *testing.T) {
	t.Parallel()

	file := sample(t, "")

	rep, err := New(WithSuppressions(false)).CheckFile(t.Context(), file)
	if err != nil {
		t.Fatalf("CheckFile failed: %v", err)
	}

	if rep.File != file {
		t.Error("Report for a different file")
	}

	if got, want := texts(file, rep.Diagnostics), []string{"x++"}; !reflect.DeepEqual(got, want) {
		t.Errorf("CheckFile() = %q, want %q", got, want)
	}

	if _, err := New().CheckFile(t.Context(), nil); err == nil {
		t.Error("Expected error for nil file")
	}
}

func TestFlags(t *testing.T) {
	t.Parallel()

	file := sample(t, "")

	a := New()
	if got, want := a.Flags.Lookup("field-scope").Value.String(), "file"; got != want {
		t.Errorf("Default field-scope = %q, want %q", got, want)
	}

	if err := a.Flags.Parse([]string{"-field-scope=class", "-suppress=false"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got, want := a.Flags.Lookup("field-scope").Value.String(), "class"; got != want {
		t.Errorf("field-scope = %q, want %q", got, want)
	}

	reports, err := a.Run(t.Context(), []*syntax.File{file})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got, want := texts(file, reports[0].Diagnostics), []string{"x++", "count++"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Run() = %q, want %q", got, want)
	}

	if err := a.Flags.Set("field-scope", "package"); err == nil {
		t.Error("Expected error for unknown field scope")
	}
}

func TestConfigure(t *testing.T) {
	t.Parallel()

	file := sample(t, "")

	a := New()
	a.Configure(WithSuppressions(false), WithFieldScope(level.FieldScopeClass))

	if got, want := a.Flags.Lookup("suppress").Value.String(), "false"; got != want {
		t.Errorf("suppress = %q, want %q", got, want)
	}

	reports, err := a.Run(t.Context(), []*syntax.File{file})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got, want := len(reports[0].Diagnostics), 2; got != want {
		t.Errorf("Got %d diagnostics, want %d", got, want)
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{
		WithFieldScope(level.FieldScopeClass),
		Options{WithGenerated(true)},
		nil,
		WithSuppressions(false),
	}

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	}))
	logger.LogAttrs(t.Context(), slog.LevelInfo, "configured", opts.LogAttr())

	const want = "level=INFO msg=configured options.field-scope=class options.generated=true options.nil=<nil> options.suppress=false\n"
	if got := buf.String(); got != want {
		t.Errorf("Log output = %q, want %q", got, want)
	}
}

func texts(file *syntax.File, diagnostics []rule.Diagnostic) []string {
	var texts []string
	for _, d := range diagnostics {
		texts = append(texts, strings.TrimSpace(file.Text(syntax.Span{From: d.Pos, To: d.End})))
	}

	return texts
}
