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

package container

import (
	"go/ast"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"fillmore-labs.com/aftertest/internal/astutil"
	"fillmore-labs.com/aftertest/internal/config"
)

// Kind is the kind of a test function.
type Kind uint8

const (
	// Test is a TestXxx(*testing.T) function.
	Test Kind = iota

	// Benchmark is a BenchmarkXxx(*testing.B) function.
	Benchmark

	// Fuzz is a FuzzXxx(*testing.F) function.
	Fuzz
)

// kinds describes the name prefix and the testing parameter type of each [Kind].
var kinds = [...]struct {
	prefix, param string
	option        config.Config // 0 when always enabled
}{
	Test:      {"Test", "T", 0},
	Benchmark: {"Benchmark", "B", config.Benchmarks},
	Fuzz:      {"Fuzz", "F", config.Fuzz},
}

// String returns the name prefix of the kind.
func (k Kind) String() string {
	if int(k) >= len(kinds) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kinds[k].prefix
}

// classifier recognizes test functions the way "go test" does, without type information.
type classifier struct {
	testing  string // local name of the "testing" package, "" for a dot import
	imported bool   // "testing" is imported
	behavior config.Behavior
}

// newClassifier returns a classifier for the imports of file.
func newClassifier(file *ast.File, behavior config.Behavior) classifier {
	c := classifier{behavior: behavior}

	for _, spec := range file.Imports {
		if path, err := strconv.Unquote(spec.Path.Value); err != nil || path != "testing" {
			continue
		}

		switch {
		case spec.Name == nil:
			c.testing, c.imported = "testing", true

		case spec.Name.Name == "_":
			// blank import

		case spec.Name.Name == ".":
			c.testing, c.imported = "", true

		default:
			c.testing, c.imported = spec.Name.Name, true
		}
	}

	return c
}

// classify reports the kind of a test function. Functions opted out with a
// nolint comment are not test functions.
func (c classifier) classify(fn *ast.FuncDecl) (Kind, bool) {
	if !c.imported || fn.Recv != nil || fn.Body == nil || fn.Type.TypeParams != nil || fn.Type.Results != nil {
		return 0, false
	}

	for k, d := range kinds {
		if d.option != 0 && !c.behavior.Enabled(d.option) {
			continue
		}

		if !isTest(fn.Name.Name, d.prefix) || !c.testingParam(fn.Type.Params, d.param) {
			continue
		}

		if astutil.DocHasNoLint(fn.Doc) {
			return 0, false
		}

		return Kind(k), true
	}

	return 0, false
}

// testingParam reports whether params is a single parameter of type *testing.<typ>.
func (c classifier) testingParam(params *ast.FieldList, typ string) bool {
	if params == nil || len(params.List) != 1 || len(params.List[0].Names) > 1 {
		return false
	}

	star, ok := params.List[0].Type.(*ast.StarExpr)
	if !ok {
		return false
	}

	switch x := star.X.(type) {
	case *ast.Ident:
		return c.testing == "" && x.Name == typ

	case *ast.SelectorExpr:
		pkg, ok := x.X.(*ast.Ident)

		return ok && c.testing != "" && pkg.Name == c.testing && x.Sel.Name == typ

	default:
		return false
	}
}

// isTest tells whether name looks like a test (or benchmark, fuzz target): it is
// prefix followed by nothing or by a character that is not a lower-case letter.
func isTest(name, prefix string) bool {
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok {
		return false
	}

	if rest == "" {
		return true
	}

	r, _ := utf8.DecodeRuneInString(rest)

	return !unicode.IsLower(r)
}
