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
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/aftertest/internal/astutil"
	"fillmore-labs.com/aftertest/transform"
)

// ProcessDiagnostics emits the diagnostics of a transform and suggests the cleanup insertions as fixes.
//
// This is the final phase of the analyzer pipeline. Transform diagnostics are reported as they are,
// with their remediation hint as related information. Every test function missing its cleanup call
// gets a diagnostic with a suggested fix inserting the call.
func ProcessDiagnostics(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, result transform.Result) {
	defer trace.StartRegion(ctx, "Report").End()

	for _, d := range result.Diagnostics {
		p.Report(convert(currentFile, d))
	}

	reportMissingCleanups(ctx, p, result.Edits)
}

// convert turns a transform diagnostic into an analysis diagnostic.
// Diagnostics without a position, like those of a default directive, are reported at the package clause.
func convert(currentFile astutil.CurrentFile, d transform.Diagnostic) analysis.Diagnostic {
	pos, end := d.Pos, d.End
	if !pos.IsValid() {
		pos, end = currentFile.Package()
	}

	if end < pos {
		end = pos
	}

	diagnostic := analysis.Diagnostic{
		Pos:      pos,
		End:      end,
		Category: d.Kind.String(),
		Message:  d.String(),
	}

	if d.Help != "" {
		diagnostic.Related = []analysis.RelatedInformation{{Pos: pos, End: end, Message: d.Help}}
	}

	return diagnostic
}

// reportMissingCleanups emits a diagnostic with a suggested fix for each test function without the cleanup call.
func reportMissingCleanups(ctx context.Context, p *analysis.Pass, edits []transform.Edit) {
	defer trace.StartRegion(ctx, "ReportMissing").End()

	for _, edit := range edits {
		if hasCleanup(p.Fset, edit.Func, edit.Stmt) {
			continue
		}

		message := missingMessage(edit)

		p.Report(analysis.Diagnostic{
			Pos:      edit.NamePos,
			End:      edit.NameEnd,
			Category: "cln",
			Message:  message,
			SuggestedFixes: []analysis.SuggestedFix{{
				Message:   "Add " + edit.Stmt,
				TextEdits: []analysis.TextEdit{{Pos: edit.Pos, End: edit.End, NewText: edit.NewText}},
			}},
		})
	}
}
