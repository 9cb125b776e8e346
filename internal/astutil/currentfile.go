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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"strings"
)

// aftertest is the name of the linter.
const aftertest = "aftertest"

// CurrentFile holds the syntax tree of a file together with its position information.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	generated := ast.IsGenerated(file)

	return CurrentFile{file, handle, generated}
}

// Valid reports whether the file has position information.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated reports whether the file carries a "Code generated ... DO NOT EDIT." comment.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Name returns the file name as recorded in the file set.
func (c CurrentFile) Name() string {
	return c.handle.Name()
}

// Size returns the size of the file in bytes.
func (c CurrentFile) Size() int {
	return c.handle.Size()
}

// Offset returns the byte offset of pos.
func (c CurrentFile) Offset(pos token.Pos) int {
	return c.handle.Offset(pos)
}

// Pos returns the position of the byte offset.
func (c CurrentFile) Pos(offset int) token.Pos {
	return c.handle.Pos(offset)
}

// Package returns the range of the package clause.
func (c CurrentFile) Package() (pos, end token.Pos) {
	return c.file.Package, c.file.Name.End()
}

// NoLint reports whether the file opted out with a nolint comment ending its doc comment.
func (c CurrentFile) NoLint() bool {
	return DocHasNoLint(c.file.Doc)
}

// DocHasNoLint reports whether the last line of a doc comment is a nolint directive for this linter.
func DocHasNoLint(doc *ast.CommentGroup) bool {
	if doc == nil || len(doc.List) == 0 {
		return false
	}

	return CommentHasNoLint(doc.List[len(doc.List)-1])
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint reports whether comment is a nolint directive naming this linter or "all".
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == aftertest || l == "all" {
			return true
		}
	}

	return false
}
