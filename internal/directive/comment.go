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
	"go/token"
	"strings"

	"fillmore-labs.com/aftertest/internal/diag"
)

// Prefix starts a cleanup directive comment.
const Prefix = "//aftertest:cleanup"

// Comment is the text of a cleanup directive.
type Comment struct {
	Text string    // directive text without the comment prefix
	Pos  token.Pos // position of Text, [token.NoPos] for directives not written in the source
	Node ast.Node  // comment carrying the directive, nil for directives not written in the source
}

// Default wraps a directive supplied outside of the source.
func Default(text string) Comment {
	return Comment{Text: text}
}

// Comments returns all cleanup directive comments of file in source order.
func Comments(file *ast.File) []Comment {
	var directives []Comment

	for _, g := range file.Comments {
		for _, c := range g.List {
			rest, ok := strings.CutPrefix(c.Text, Prefix)
			if !ok || rest != "" && rest[0] != ' ' && rest[0] != '\t' {
				continue // not a directive, or a different one, like "//aftertest:cleanups"
			}

			trimmed := strings.TrimLeft(rest, " \t")
			offset := len(Prefix) + len(rest) - len(trimmed)

			directives = append(directives, Comment{
				Text: strings.TrimRight(trimmed, " \t\r"),
				Pos:  c.Slash + token.Pos(offset),
				Node: c,
			})
		}
	}

	return directives
}

// Select returns the directive governing a file: the first of directives.
// Every additional directive is reported as a [diag.DuplicateDirective].
func Select(directives []Comment, c *diag.Collector) (Comment, bool) {
	if len(directives) == 0 {
		return Comment{}, false
	}

	first := directives[0]

	for _, d := range directives[1:] {
		c.Report(diag.Diagnostic{
			Kind:    diag.DuplicateDirective,
			Pos:     d.Node.Pos(),
			End:     d.Node.End(),
			Message: "Duplicate cleanup directive, only the first one is used",
			Help:    "remove all but one " + Prefix + " comment",
		})
	}

	return first, true
}
