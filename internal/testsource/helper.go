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

// Package testsource provides utilities for parsing Go source files in tests.
//
// It handles the boilerplate of setting up a file set and parsing a complete file
// with comments, as the transform expects it.
package testsource

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"
)

const mode = parser.ParseComments | parser.SkipObjectResolution

// Parse parses src as the file filename and fails the test on syntax errors.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
func Parse(tb testing.TB, filename, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, mode)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// ParsePartial parses src like [Parse], but accepts syntax errors as long as the
// package clause is intact. Use it for sources with deliberately broken declarations.
func ParsePartial(tb testing.TB, filename, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, mode|parser.AllErrors)
	if err == nil {
		tb.Fatalf("Expected syntax errors in %q", src)
	}

	if f == nil || f.Name == nil || !f.Package.IsValid() {
		tb.Fatalf("Failed to parse package clause of %q: %v", src, err)
	}

	return fset, f
}

// FuncDecl returns the function declaration named name, failing the test when there is none.
func FuncDecl(tb testing.TB, f *ast.File, name string) *ast.FuncDecl {
	tb.Helper()

	for _, decl := range f.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Name.Name == name {
			return fn
		}
	}

	tb.Fatalf("Can't find function %s", name)

	return nil
}
