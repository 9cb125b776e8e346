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

package rewrite

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"runtime/trace"

	"fillmore-labs.com/aftertest/internal/container"
	"fillmore-labs.com/aftertest/internal/diag"
	"fillmore-labs.com/aftertest/internal/directive"
)

// Edit replaces a range of the original source of a container.
type Edit struct {
	Pos, End token.Pos     // replaced range in the original file, empty for pure insertions
	NewText  []byte        // replacement text
	NamePos  token.Pos     // function name in the original file
	NameEnd  token.Pos
	Func     *ast.FuncDecl // the test function receiving the statement
	Stmt     string        // the injected statement
}

// Result is the rewritten container together with the edits transforming the original source into it.
//
// File and Fset of the rewritten container still describe the original source.
type Result struct {
	Container *container.Container
	Edits     []Edit
}

// Rewriter injects a cleanup invocation into test functions.
type Rewriter struct {
	// Deferred injects "defer <call>" as the first statement instead of appending "<call>".
	Deferred bool
}

// Statement returns the statement injected for spec, or "" for [directive.None].
func (r Rewriter) Statement(spec directive.Spec) string {
	call := spec.Invocation()
	if call == "" || !r.Deferred {
		return call
	}

	return "defer " + call
}

// Rewrite returns a new container where every test function ends with (or, deferred, starts with)
// the cleanup invocation of spec. Other items are passed through unchanged and in order.
//
// With [directive.None] the test functions are re-synthesized without an injected call.
func (r Rewriter) Rewrite(ctx context.Context, c *container.Container, spec directive.Spec, col *diag.Collector) Result {
	defer trace.StartRegion(ctx, "Rewrite").End()

	out := &container.Container{
		Filename: c.Filename,
		Fset:     c.Fset,
		File:     c.File,
		Prologue: c.Prologue,
		Items:    make([]container.Item, 0, len(c.Items)),
	}

	stmt := r.Statement(spec)

	var (
		edits   []Edit
		pending []byte // lead of dropped items, prepended to the next one
	)

	for _, item := range c.Items {
		if len(pending) > 0 {
			item = withLead(item, concat(pending, item.Source().Lead))
			pending = nil
		}

		fn, ok := item.(container.TestFunction)
		if !ok {
			out.Items = append(out.Items, item)

			continue
		}

		text, ins, decl, err := r.inject(c, fn, stmt)
		if err != nil {
			col.Report(diag.Diagnostic{
				Kind:    diag.ItemReconstruction,
				Pos:     c.Pos(c.Offset(fn.Decl.Pos())),
				End:     fn.Src.End,
				Message: fmt.Sprintf("Can't re-synthesize test function %s: %v", fn.Name(), err),
				Help:    "fix the syntax errors in the test function, it is omitted from the output",
			})

			pending = fn.Src.Lead

			continue
		}

		if stmt != "" {
			start := c.Offset(fn.Src.Pos)
			name := fn.Decl.Name
			edits = append(edits, Edit{
				Pos:     c.Pos(start + ins.offset),
				End:     c.Pos(start + ins.end),
				NewText: ins.text,
				NamePos: c.Pos(c.Offset(name.Pos())),
				NameEnd: c.Pos(c.Offset(name.End())),
				Func:    fn.Decl,
				Stmt:    stmt,
			})
		}

		out.Items = append(out.Items, container.TestFunction{
			Src:  container.Source{Lead: fn.Src.Lead, Text: text},
			Decl: decl,
			Kind: fn.Kind,
		})
	}

	out.Epilogue = concat(pending, c.Epilogue)

	return Result{Container: out, Edits: edits}
}

// inject returns the text of fn with stmt spliced in, parsed again to verify the result.
func (r Rewriter) inject(c *container.Container, fn container.TestFunction, stmt string) ([]byte, insertion, *ast.FuncDecl, error) {
	var ins insertion

	if stmt != "" {
		var err error
		if ins, err = r.insertion(c, fn, stmt); err != nil {
			return nil, ins, nil, err
		}
	}

	text := ins.apply(fn.Src.Text)

	decl, err := resynthesize(text)
	if err != nil {
		return nil, ins, nil, err
	}

	return text, ins, decl, nil
}

// withLead returns item with a replaced lead.
func withLead(item container.Item, lead []byte) container.Item {
	switch i := item.(type) {
	case container.TestFunction:
		i.Src.Lead = lead

		return i

	case container.OtherItem:
		i.Src.Lead = lead

		return i

	default:
		return item
	}
}

// concat returns a new slice holding a followed by b, or b when a is empty.
func concat(a, b []byte) []byte {
	if len(a) == 0 {
		return b
	}

	s := make([]byte, 0, len(a)+len(b))
	s = append(s, a...)

	return append(s, b...)
}
