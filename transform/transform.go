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

package transform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"runtime/trace"

	"fillmore-labs.com/aftertest/internal/astutil"
	"fillmore-labs.com/aftertest/internal/config"
	"fillmore-labs.com/aftertest/internal/container"
	"fillmore-labs.com/aftertest/internal/diag"
	"fillmore-labs.com/aftertest/internal/directive"
	"fillmore-labs.com/aftertest/internal/rewrite"
)

type (
	// Diagnostic is a problem found during the transform.
	Diagnostic = diag.Diagnostic

	// Spec is a resolved cleanup directive.
	Spec = directive.Spec

	// Container is a test file split into items.
	Container = container.Container

	// Edit replaces a range of the original source with the injected statement.
	Edit = rewrite.Edit
)

// ErrNoPackageClause is returned for sources without a package clause.
var ErrNoPackageClause = errors.New("missing package clause")

// Result is the outcome of a transform.
type Result struct {
	// Applied reports whether a directive applied to the file. When false, the file was left
	// alone and Output is the original source.
	Applied bool

	// Spec is the resolved directive.
	Spec Spec

	// Container is the rewritten file.
	Container *Container

	// Edits transform the original source into the rewritten one.
	Edits []Edit

	// Output is the rewritten source, formatted when [Config.Format] is set.
	Output []byte

	// Diagnostics are all problems found, ordered by position.
	Diagnostics []Diagnostic

	changed bool
}

// Changed reports whether Output differs from the original source.
func (r Result) Changed() bool {
	return r.changed
}

// Source parses src and transforms it. The returned error is only non-nil when src can't be
// split into items at all. Syntax errors inside declarations are not fatal: the affected test
// functions are reported and dropped.
func Source(ctx context.Context, filename string, src []byte, cfg Config) (Result, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution|parser.AllErrors)
	if file == nil || file.Name == nil || !file.Package.IsValid() {
		if err == nil {
			err = ErrNoPackageClause
		}

		return Result{Output: src}, fmt.Errorf("%s: %w", filename, err)
	}

	return File(ctx, fset, file, src, cfg)
}

// File transforms the syntax tree file with source src.
func File(ctx context.Context, fset *token.FileSet, file *ast.File, src []byte, cfg Config) (Result, error) {
	ctx, task := trace.NewTask(ctx, "AfterTest")
	defer task.End()

	behavior := cfg.behavior()

	currentFile := astutil.NewCurrentFile(fset, file)
	if !currentFile.Valid() {
		return Result{Output: src}, container.ErrNoPosition
	}

	trace.Log(ctx, "file", currentFile.Name())

	// Skip generated files and files opting out
	if currentFile.Generated() && !behavior.Enabled(config.IncludeGenerated) || currentFile.NoLint() {
		return Result{Output: src}, nil
	}

	var col diag.Collector

	// Stage 1: Select and parse the cleanup directive
	d, ok := selectDirective(ctx, file, currentFile.Name(), cfg.Cleanup, &col)
	if !ok {
		return Result{Output: src}, nil
	}

	spec := parseDirective(ctx, d, &col)

	// Stage 2: Split the file into items and check it is a test file
	c, err := container.New(fset, file, src, behavior)
	if err != nil {
		return Result{Output: src}, err
	}

	container.Validate(c, &col)

	// Stage 3: Inject the cleanup call into all test functions
	r := rewrite.Rewriter{Deferred: behavior.Enabled(config.Deferred)}
	rewritten := r.Rewrite(ctx, c, spec, &col)

	output := rewritten.Container.Bytes()
	if behavior.Enabled(config.Format) {
		output = formatSource(ctx, output)
	}

	return Result{
		Applied:     true,
		Spec:        spec,
		Container:   rewritten.Container,
		Edits:       rewritten.Edits,
		Output:      output,
		Diagnostics: col.Diagnostics(),
		changed:     !bytes.Equal(output, src),
	}, nil
}

// selectDirective returns the directive comment of file, or the default for test files without one.
func selectDirective(ctx context.Context, file *ast.File, filename, fallback string, col *diag.Collector) (directive.Comment, bool) {
	defer trace.StartRegion(ctx, "SelectDirective").End()

	if d, ok := directive.Select(directive.Comments(file), col); ok {
		return d, true
	}

	if fallback == "" || !container.IsTestFile(filename) {
		return directive.Comment{}, false
	}

	return directive.Default(fallback), true
}

// parseDirective resolves the directive text.
func parseDirective(ctx context.Context, d directive.Comment, col *diag.Collector) directive.Spec {
	defer trace.StartRegion(ctx, "ParseDirective").End()

	return directive.Parse(d, col)
}

// formatSource returns src formatted by gofmt, or src when it can't be formatted.
func formatSource(ctx context.Context, src []byte) []byte {
	defer trace.StartRegion(ctx, "Format").End()

	formatted, err := format.Source(src)
	if err != nil {
		return src
	}

	return formatted
}

// ParseSpec resolves a directive text on its own, as it would be read from a directive comment.
func ParseSpec(text string) (Spec, []Diagnostic) {
	var col diag.Collector
	spec := directive.Parse(directive.Default(text), &col)

	return spec, col.Diagnostics()
}
