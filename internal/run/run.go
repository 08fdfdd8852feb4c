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

package run

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"runtime/trace"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/uselesspostfix/internal/astutil"
	"fillmore-labs.com/uselesspostfix/internal/config"
	"fillmore-labs.com/uselesspostfix/internal/detect"
	"fillmore-labs.com/uselesspostfix/internal/report"
	"fillmore-labs.com/uselesspostfix/internal/syntax"
)

// ErrInvalidFile is returned for files without source information.
var ErrInvalidFile = errors.New("invalid file")

// Run checks all files and returns one report per file, in input order.
//
// Files are checked concurrently; every file gets its own field registry.
func (r *Options) Run(ctx context.Context, files []*syntax.File) ([]report.Report, error) {
	ctx, task := trace.NewTask(ctx, "UselessPostfix")
	defer task.End()

	d := detect.New(r.Behavior)
	reports := make([]report.Report, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rep, err := r.check(ctx, d, file)
			if err != nil {
				return fmt.Errorf("file %d: %w", i, err)
			}

			reports[i] = rep

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// CheckFile checks a single file.
func (r *Options) CheckFile(ctx context.Context, file *syntax.File) (report.Report, error) {
	return r.check(ctx, detect.New(r.Behavior), file)
}

func (r *Options) check(ctx context.Context, d detect.Detector, file *syntax.File) (report.Report, error) {
	currentFile := astutil.NewCurrentFile(file)
	if !currentFile.Valid() {
		return report.Report{}, ErrInvalidFile
	}

	trace.Log(ctx, "file", file.Name())

	// Skip generated files
	if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
		return report.Report{File: file}, nil
	}

	region := trace.StartRegion(ctx, "Detect")
	diagnostics := d.Check(file)
	region.End()

	return report.ProcessDiagnostics(ctx, currentFile, diagnostics, r.Behavior), nil
}
