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
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"iter"

	"fillmore-labs.com/aftertest/internal/astutil"
	"fillmore-labs.com/aftertest/internal/config"
)

var (
	// ErrNoPosition is returned for a syntax tree without position information.
	ErrNoPosition = errors.New("file without position information")

	// ErrSourceMismatch is returned when the source does not match the syntax tree.
	ErrSourceMismatch = errors.New("source does not match syntax tree")
)

// Container is a Go source file split into items.
type Container struct {
	Filename string
	Fset     *token.FileSet
	File     *ast.File

	Prologue []byte // text up to the end of the package clause
	Items    []Item
	Epilogue []byte // text after the last item
}

// New splits the source of file into items, classifying test functions according to behavior.
func New(fset *token.FileSet, file *ast.File, src []byte, behavior config.Behavior) (*Container, error) {
	currentFile := astutil.NewCurrentFile(fset, file)
	if !currentFile.Valid() {
		return nil, ErrNoPosition
	}

	if currentFile.Size() != len(src) {
		return nil, fmt.Errorf("%s: %w (%d bytes, expected %d)", currentFile.Name(), ErrSourceMismatch, len(src), currentFile.Size())
	}

	c := &Container{
		Filename: currentFile.Name(),
		Fset:     fset,
		File:     file,
		Items:    make([]Item, 0, len(file.Decls)),
	}

	classifier := newClassifier(file, behavior)

	prev := currentFile.Offset(file.Name.End())
	c.Prologue = src[:prev]

	split := splitter{fset: fset, filename: c.Filename, src: src, header: prev}
	handle, decls := fset.File(file.FileStart), file.Decls

	for len(decls) > 0 {
		decl := decls[0]
		decls = decls[1:]

		pos, end := declBounds(decl)

		start, stop := handle.Offset(pos), handle.Offset(end)
		if start < prev || stop < start {
			return nil, fmt.Errorf("%s: %w (declaration at offset %d overlaps %d)", c.Filename, ErrSourceMismatch, start, prev)
		}

		// A declaration with syntax errors might extend over the following ones
		if cut, ok := split.truncate(handle.Offset(decl.Pos()), start, stop); ok {
			stop = cut
			decls, handle = split.reparse(cut)
		}

		text := Source{Lead: src[prev:start], Text: src[start:stop], Pos: currentFile.Pos(start), End: currentFile.Pos(stop)}

		var item Item = OtherItem{Src: text, Decl: decl}

		if fn, ok := decl.(*ast.FuncDecl); ok {
			if kind, ok := classifier.classify(fn); ok {
				item = TestFunction{Src: text, Decl: fn, Kind: kind}
			}
		}

		c.Items = append(c.Items, item)
		prev = stop
	}

	c.Epilogue = src[prev:]

	return c, nil
}

// Offset returns the byte offset of pos in the source.
//
// Declarations following one with syntax errors are parsed again from a copy of the source,
// so pos may belong to another file of the file set with the same content length.
func (c *Container) Offset(pos token.Pos) int {
	handle := c.Fset.File(pos)
	if handle == nil {
		return -1
	}

	return handle.Offset(pos)
}

// Pos returns the position of a byte offset in the original file.
func (c *Container) Pos(offset int) token.Pos {
	return c.Fset.File(c.File.FileStart).Pos(offset)
}

// declBounds returns the range of a declaration, including its doc comment.
func declBounds(decl ast.Decl) (pos, end token.Pos) {
	pos, end = decl.Pos(), decl.End()

	var doc *ast.CommentGroup

	switch d := decl.(type) {
	case *ast.FuncDecl:
		doc = d.Doc

	case *ast.GenDecl:
		doc = d.Doc
	}

	if doc != nil && doc.Pos() < pos {
		pos = doc.Pos()
	}

	return pos, end
}

// Bytes returns the source text of the container.
func (c *Container) Bytes() []byte {
	size := len(c.Prologue) + len(c.Epilogue)
	for _, item := range c.Items {
		src := item.Source()
		size += len(src.Lead) + len(src.Text)
	}

	var buf bytes.Buffer
	buf.Grow(size)

	buf.Write(c.Prologue) // ignore error

	for _, item := range c.Items {
		src := item.Source()
		buf.Write(src.Lead) // ignore error
		buf.Write(src.Text) // ignore error
	}

	buf.Write(c.Epilogue) // ignore error

	return buf.Bytes()
}

// TestFunctions iterates over the test functions of the container.
func (c *Container) TestFunctions() iter.Seq[TestFunction] {
	return func(yield func(TestFunction) bool) {
		for _, item := range c.Items {
			fn, ok := item.(TestFunction)
			if !ok {
				continue
			}

			if !yield(fn) {
				return
			}
		}
	}
}
