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

// Command uselesspostfix reports postfix increments and decrements whose result is discarded.
//
// Usage:
//
//	uselesspostfix [flags] tree.json...
//
// Each argument is a syntax tree exported by a parser as JSON. The exit code is 0 when no
// diagnostics were reported, 1 when there were findings and 2 on usage or input errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"go/token"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	uselesspostfix "fillmore-labs.com/uselesspostfix/analyzer"
	"fillmore-labs.com/uselesspostfix/internal/report"
	"fillmore-labs.com/uselesspostfix/internal/settings"
	"fillmore-labs.com/uselesspostfix/internal/syntax"
	"fillmore-labs.com/uselesspostfix/internal/treeio"
)

// Exit codes.
const (
	exitOK       = 0
	exitFindings = 1
	exitError    = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

type command struct {
	rule    *uselesspostfix.Rule
	flags   *flag.FlagSet
	config  string
	format  report.Format
	verbose bool
}

func newCommand(stderr io.Writer) *command {
	c := &command{
		rule:  uselesspostfix.New(),
		flags: flag.NewFlagSet("uselesspostfix", flag.ContinueOnError),
	}

	fs := c.flags
	fs.SetOutput(stderr)

	c.rule.Flags.VisitAll(func(f *flag.Flag) { fs.Var(f.Value, f.Name, f.Usage) })
	fs.StringVar(&c.config, "config", "", "detekt configuration `file` (YAML or TOML)")
	fs.TextVar(&c.format, "format", report.FormatText, "output `format`: text, json or lsp")
	fs.BoolVar(&c.verbose, "v", false, "log progress to stderr")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "%s\n\nUsage: uselesspostfix [flags] tree.json...\n\nFlags:\n", c.rule.Doc)
		fs.PrintDefaults()
	}

	return c
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c := newCommand(stderr)

	if err := c.flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitError
	}

	logger := newLogger(stderr, c.verbose)
	defer func() { _ = logger.Sync() }()

	if c.flags.NArg() == 0 {
		c.flags.Usage()

		return exitError
	}

	active, err := c.configure()
	if err != nil {
		logger.Error("Can't load configuration", zap.String("path", c.config), zap.Error(err))
		fmt.Fprintf(stderr, "uselesspostfix: %v\n", err)

		return exitError
	}

	if !active {
		logger.Info("Rule disabled by configuration", zap.String("path", c.config))

		return exitOK
	}

	fset := token.NewFileSet()
	files := make([]*syntax.File, 0, c.flags.NArg())

	for _, path := range c.flags.Args() {
		file, err := treeio.ReadFile(fset, path)
		if err != nil {
			logger.Error("Can't read tree", zap.String("path", path), zap.Error(err))
			fmt.Fprintf(stderr, "uselesspostfix: %v\n", err)

			return exitError
		}

		logger.Debug("Read tree", zap.String("path", path), zap.String("file", file.Name()), zap.Int("decls", len(file.Decls)))
		files = append(files, file)
	}

	reports, err := c.rule.Run(ctx, files)
	if err != nil {
		logger.Error("Check failed", zap.Error(err))
		fmt.Fprintf(stderr, "uselesspostfix: %v\n", err)

		return exitError
	}

	if err := report.Write(stdout, c.format, reports); err != nil {
		logger.Error("Can't write report", zap.Stringer("format", c.format), zap.Error(err))

		return exitError
	}

	n := report.Count(reports)
	logger.Info("Done", zap.Int("files", len(files)), zap.Int("diagnostics", n))

	if n > 0 {
		return exitFindings
	}

	return exitOK
}

// configure applies the configuration file. Flags given on the command line take precedence.
func (c *command) configure() (active bool, err error) {
	if c.config == "" {
		return true, nil
	}

	s, err := settings.Load(c.config)
	if err != nil {
		return false, err
	}

	explicit := make(map[string]string)

	c.flags.Visit(func(f *flag.Flag) {
		if c.rule.Flags.Lookup(f.Name) != nil {
			explicit[f.Name] = f.Value.String()
		}
	})

	c.rule.Configure(s.Options()...)

	for name, value := range explicit {
		if err := c.rule.Flags.Set(name, value); err != nil {
			return false, err
		}
	}

	return s.Enabled(), nil
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""

	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zap.DebugLevel))
}
