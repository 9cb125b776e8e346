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

package analyzer

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/aftertest/internal/run"
)

// Public API constants for the aftertest analyzer.
const (
	name = "aftertest"
	url  = "https://pkg.go.dev/fillmore-labs.com/aftertest"
)

const doc = `check that test functions end with the cleanup call of an //aftertest:cleanup directive

A _test.go file names its cleanup with a file level comment:

	//aftertest:cleanup resetFixtures(t)

Every Test, and optionally Benchmark and Fuzz, function of the file must end
with that call, or start with "defer <call>" in deferred mode. Functions
missing it are reported with a suggested fix inserting the call. The
directive accepts a call expression, a bare function name called without
arguments, or a function literal called in place. A directive matching none
of these forms is reported and the file is not checked. A function or file
ending its doc comment with //nolint:aftertest is skipped.`

// New creates a new instance of the aftertest analyzer.
//
// The analyzer inspects syntax only, no type information is needed: test functions
// are recognized by name and by a *testing.T, *testing.B or *testing.F parameter
// resolved through the file's imports. [WithCleanup] supplies the call for files
// without directive, [WithDefer] switches to deferred calls and [WithBenchmarks]
// and [WithFuzz] extend the check beyond Test functions.
//
// For command-line use, the pre-configured [Analyzer] variable is typically sufficient.
func New(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      url,
		Run:      r.Run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerFlags(&a.Flags, r)

	return a
}

// Analyzer is a pre-configured *[analysis.Analyzer] checking test functions for their cleanup calls.
var Analyzer = New()
