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
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"strings"
)

// boundary is a top-level declaration keyword starting a line.
type boundary struct {
	keyword int // offset of the keyword
	start   int // offset of the doc comment above the keyword, or keyword
}

// boundaries scans src for declaration keywords in the first column.
//
// The go/parser does not resynchronize on "func", so a declaration with syntax errors
// may extend over the following declarations. These offsets bound it to its own text.
func boundaries(src []byte) []boundary {
	fset := token.NewFileSet()
	handle := fset.AddFile("", fset.Base(), len(src))

	var s scanner.Scanner
	s.Init(handle, src, func(token.Position, string) {}, scanner.ScanComments)

	var (
		bounds   []boundary
		doc      = -1 // start of the comment group directly above the current line
		docLine  int  // last line of that comment group
		prevLine int  // line of the last token that is not a comment
	)

	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			return bounds
		}

		p := handle.PositionFor(pos, false)

		switch {
		case tok == token.SEMICOLON && lit == "\n":
			continue

		case tok == token.COMMENT:
			switch {
			case p.Line == prevLine:
				doc = -1

			case doc < 0 || p.Line > docLine+1:
				doc = p.Offset
			}

			docLine = p.Line + strings.Count(lit, "\n")

			continue
		}

		if p.Column == 1 && declKeyword(tok) {
			start := p.Offset
			if doc >= 0 && docLine == p.Line-1 {
				start = doc
			}

			bounds = append(bounds, boundary{keyword: p.Offset, start: start})
		}

		doc, prevLine = -1, p.Line
	}
}

func declKeyword(tok token.Token) bool {
	switch tok {
	case token.FUNC, token.TYPE, token.VAR, token.CONST, token.IMPORT:
		return true

	default:
		return false
	}
}

// splitter bounds declarations with syntax errors and recovers the declarations following them.
type splitter struct {
	fset     *token.FileSet
	filename string
	src      []byte
	header   int // end of the package clause
	bounds   []boundary
	scanned  bool
}

// truncate returns the end of a declaration spanning src[start:stop] that extends over a later
// declaration keyword. Well-formed declarations are never truncated.
func (s *splitter) truncate(keyword, start, stop int) (int, bool) {
	if !s.scanned {
		s.bounds, s.scanned = boundaries(s.src), true
	}

	for _, b := range s.bounds {
		if b.keyword <= keyword {
			continue
		}

		if b.keyword >= stop || wellFormed(s.src[start:stop]) {
			return 0, false
		}

		cut := max(b.start, keyword)

		return start + len(bytes.TrimRight(s.src[start:cut], " \t\r\n")), true
	}

	return 0, false
}

// reparse parses the source after offset again, returning the declarations found there.
//
// The text before offset is blanked, so positions in the returned declarations have the same
// offsets as in the original source. The new file is added to the file set.
func (s *splitter) reparse(offset int) ([]ast.Decl, *token.File) {
	blanked := bytes.Clone(s.src)
	for i := s.header; i < offset; i++ {
		if blanked[i] != '\n' {
			blanked[i] = ' '
		}
	}

	const mode = parser.ParseComments | parser.SkipObjectResolution | parser.AllErrors

	f, _ := parser.ParseFile(s.fset, s.filename, blanked, mode)
	if f == nil || f.Name == nil {
		return nil, nil
	}

	handle := s.fset.File(f.FileStart)
	if handle == nil || handle.Size() != len(s.src) {
		return nil, nil
	}

	var decls []ast.Decl

	for _, decl := range f.Decls {
		if pos, _ := declBounds(decl); handle.Offset(pos) >= offset {
			decls = append(decls, decl)
		}
	}

	return decls, handle
}

// wellFormed reports whether text parses as a sequence of declarations.
func wellFormed(text []byte) bool {
	const header = "package p\n\n"

	src := make([]byte, 0, len(header)+len(text))
	src = append(src, header...)
	src = append(src, text...)

	_, err := parser.ParseFile(token.NewFileSet(), "", src, parser.SkipObjectResolution)

	return err == nil
}
