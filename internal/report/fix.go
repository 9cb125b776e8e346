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
	"bytes"
	"fmt"
	"go/ast"
	"go/printer"
	"go/scanner"
	"go/token"
	"slices"
	"strings"

	"fillmore-labs.com/aftertest/transform"
)

var rawcfg = &printer.Config{Mode: printer.RawFormat}

// missingMessage constructs the diagnostic message for a test function without cleanup call.
func missingMessage(edit transform.Edit) string {
	where := "end with"
	if IsDeferred(edit.Stmt) {
		where = "start with"
	}

	return fmt.Sprintf("Test function %s should %s %s (at:cln)", edit.Func.Name.Name, where, edit.Stmt)
}

// IsDeferred reports whether stmt is a deferred call.
func IsDeferred(stmt string) bool {
	return strings.HasPrefix(stmt, "defer ")
}

// hasCleanup reports whether the body of fn already ends with stmt, or starts with it when stmt is deferred.
//
// Statements are compared token by token, ignoring semicolons.
func hasCleanup(fset *token.FileSet, fn *ast.FuncDecl, stmt string) bool {
	list := fn.Body.List
	if len(list) == 0 {
		return false
	}

	candidate := list[len(list)-1]
	if IsDeferred(stmt) {
		candidate = list[0]
	}

	var buf bytes.Buffer
	if err := rawcfg.Fprint(&buf, fset, candidate); err != nil {
		return false
	}

	return slices.Equal(tokens(buf.String()), tokens(stmt))
}

// tokens returns the Go tokens of s without comments and semicolons.
// Literals keep their source text.
func tokens(s string) []string {
	fset := token.NewFileSet()
	handle := fset.AddFile("", fset.Base(), len(s))

	var sc scanner.Scanner
	sc.Init(handle, []byte(s), func(token.Position, string) {}, 0)

	var list []string

	for {
		_, tok, lit := sc.Scan()
		switch tok {
		case token.EOF:
			return list

		case token.SEMICOLON:
			continue
		}

		if lit == "" {
			lit = tok.String()
		}

		list = append(list, lit)
	}
}
