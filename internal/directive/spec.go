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

package directive

import (
	"go/ast"
	"strings"
)

// Spec is a resolved cleanup directive: exactly one of [None], [NamedCall],
// [CallExpression] or [ClosureExpression].
type Spec interface {
	// Invocation returns the Go expression invoking the cleanup, or "" for [None].
	Invocation() string

	isSpec()
}

// None is the unresolved directive. Test functions are left without a cleanup call.
type None struct{}

// NamedCall calls a function without arguments.
type NamedCall struct {
	Name string // identifier or qualified identifier
}

// CallExpression calls a function with the given arguments.
type CallExpression struct {
	Name     string   // identifier or qualified identifier
	Args     []string // argument expressions as written
	Ellipsis bool     // the last argument is followed by "..."
}

// ClosureExpression invokes a function literal.
type ClosureExpression struct {
	Params  *ast.FieldList
	Results *ast.FieldList // nil when the literal has no results
	Body    *ast.BlockStmt
	Source  string // the function literal as written
}

func (None) isSpec()              {}
func (NamedCall) isSpec()         {}
func (CallExpression) isSpec()    {}
func (ClosureExpression) isSpec() {}

// Invocation implements [Spec].
func (None) Invocation() string { return "" }

// Invocation implements [Spec].
func (s NamedCall) Invocation() string { return s.Name + "()" }

// Invocation implements [Spec].
func (s CallExpression) Invocation() string {
	var b strings.Builder

	b.WriteString(s.Name) // ignore error
	b.WriteByte('(')      // ignore error

	for i, arg := range s.Args {
		if i > 0 {
			b.WriteString(", ") // ignore error
		}

		b.WriteString(arg) // ignore error
	}

	if s.Ellipsis {
		b.WriteString("...") // ignore error
	}

	b.WriteByte(')') // ignore error

	return b.String()
}

// Invocation implements [Spec].
func (s ClosureExpression) Invocation() string { return s.Source + "()" }

// Describe returns a short human-readable description of the resolved form.
func Describe(s Spec) string {
	switch s := s.(type) {
	case NamedCall:
		return "function " + s.Name

	case CallExpression:
		return "call " + s.Invocation()

	case ClosureExpression:
		return "function literal " + s.Source

	default:
		return "none"
	}
}
