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

package analyzer

import (
	"context"
	"flag"
	"iter"

	"fillmore-labs.com/uselesspostfix/internal/detect"
	"fillmore-labs.com/uselesspostfix/internal/report"
	"fillmore-labs.com/uselesspostfix/internal/rule"
	"fillmore-labs.com/uselesspostfix/internal/run"
	"fillmore-labs.com/uselesspostfix/internal/syntax"
)

// Public API constants for the uselesspostfix rule.
const (
	name = "uselesspostfix"
	doc  = `uselesspostfix detects postfix increments and decrements whose result is discarded`
	url  = "https://pkg.go.dev/fillmore-labs.com/uselesspostfix"
)

// Rule is a configured UselessPostfixExpression detector.
type Rule struct {
	Name string
	Doc  string
	URL  string

	// Flags defines the command line flags of the rule. They are bound to the rule's options.
	Flags flag.FlagSet

	options *run.Options
}

// New creates a new instance of the uselesspostfix rule.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the rule into other tools. For command-line use, the
// pre-configured [Analyzer] variable is typically sufficient.
func New(opts ...Option) *Rule {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &Rule{
		Name:    name,
		Doc:     doc,
		URL:     url,
		options: r,
	}

	registerFlags(r, &a.Flags)

	return a
}

// Analyzer is a pre-configured *[Rule] for detecting useless postfix expressions.
var Analyzer = New()

// Issue returns the issue reported by this rule.
func (a *Rule) Issue() rule.Issue { return rule.UselessPostfixExpression }

// Configure applies additional options.
func (a *Rule) Configure(opts ...Option) { Options(opts).apply(a.options) }

// All yields the diagnostics of a single file in source order, without filtering suppressed lines.
func (a *Rule) All(file *syntax.File) iter.Seq[rule.Diagnostic] {
	return detect.New(a.options.Behavior).All(file)
}

// Check returns the diagnostics of a single file in source order, without filtering suppressed lines.
func (a *Rule) Check(file *syntax.File) []rule.Diagnostic {
	return detect.New(a.options.Behavior).Check(file)
}

// CheckFile checks a single file. Generated files and suppressed diagnostics are handled as configured.
func (a *Rule) CheckFile(ctx context.Context, file *syntax.File) (report.Report, error) {
	return a.options.CheckFile(ctx, file)
}

// Run checks all files and returns one report per file in input order.
// Generated files and suppressed diagnostics are handled as configured.
func (a *Rule) Run(ctx context.Context, files []*syntax.File) ([]report.Report, error) {
	return a.options.Run(ctx, files)
}
