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
	"bytes"
	"errors"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"

	"fillmore-labs.com/aftertest/internal/container"
)

var (
	// errNotAFunction is returned when the re-synthesized text is not a single function declaration.
	errNotAFunction = errors.New("not a single function declaration")

	// errMalformedBody is returned for a function body without matching braces.
	errMalformedBody = errors.New("malformed function body")
)

// insertion replaces the blanks text[offset:end] of a test function with new text.
type insertion struct {
	offset, end int
	text        []byte
}

// apply returns a copy of text with the insertion. The zero insertion returns text.
func (i insertion) apply(text []byte) []byte {
	if len(i.text) == 0 {
		return text
	}

	out := make([]byte, 0, len(text)-(i.end-i.offset)+len(i.text))
	out = append(out, text[:i.offset]...)
	out = append(out, i.text...)

	return append(out, text[i.end:]...)
}

// insertion computes where and how stmt is added to the body of fn, keeping the result gofmt clean
// for gofmt clean input.
func (r Rewriter) insertion(c *container.Container, fn container.TestFunction, stmt string) (insertion, error) {
	body := fn.Decl.Body
	if !body.Lbrace.IsValid() || !body.Rbrace.IsValid() {
		return insertion{}, errMalformedBody
	}

	text := fn.Src.Text
	start := c.Offset(fn.Src.Pos)
	lbrace := c.Offset(body.Lbrace) - start
	rbrace := c.Offset(body.Rbrace) - start

	if lbrace < 0 || rbrace <= lbrace || rbrace >= len(text) || text[lbrace] != '{' || text[rbrace] != '}' {
		return insertion{}, errMalformedBody
	}

	indent := lastLineIndent(fn.Src.Lead)

	var buf bytes.Buffer

	if r.Deferred {
		at := lbrace + 1
		rest := restOfLine(text[at:])
		trailing := bytes.TrimSpace(rest)

		// Keep a line comment after the opening brace on its line
		if len(trailing) == 0 || bytes.HasPrefix(trailing, []byte("//")) {
			at += len(rest)

			buf.WriteByte('\n')   // ignore error
			buf.Write(indent)     // ignore error
			buf.WriteByte('\t')   // ignore error
			buf.WriteString(stmt) // ignore error

			return insertion{offset: at, end: at, text: buf.Bytes()}, nil
		}

		// Move the code following the opening brace to its own line
		end := at + len(rest) - len(bytes.TrimLeft(rest, " \t"))

		buf.WriteByte('\n')   // ignore error
		buf.Write(indent)     // ignore error
		buf.WriteByte('\t')   // ignore error
		buf.WriteString(stmt) // ignore error
		buf.WriteByte('\n')   // ignore error
		buf.Write(indent)     // ignore error

		if end != rbrace {
			buf.WriteByte('\t') // ignore error
		}

		return insertion{offset: at, end: end, text: buf.Bytes()}, nil
	}

	// The closing brace starts its own line: insert a new line before it
	if lineStart := bytes.LastIndexByte(text[:rbrace], '\n') + 1; lineStart > lbrace && isBlank(text[lineStart:rbrace]) {
		buf.Write(indent)     // ignore error
		buf.WriteByte('\t')   // ignore error
		buf.WriteString(stmt) // ignore error
		buf.WriteByte('\n')   // ignore error

		return insertion{offset: lineStart, end: lineStart, text: buf.Bytes()}, nil
	}

	// Replace the blanks before the closing brace
	at := lbrace + 1 + len(bytes.TrimRight(text[lbrace+1:rbrace], " \t"))

	buf.WriteByte('\n')   // ignore error
	buf.Write(indent)     // ignore error
	buf.WriteByte('\t')   // ignore error
	buf.WriteString(stmt) // ignore error
	buf.WriteByte('\n')   // ignore error
	buf.Write(indent)     // ignore error

	return insertion{offset: at, end: rbrace, text: buf.Bytes()}, nil
}

// resynthesize parses the text of a rewritten function declaration.
func resynthesize(text []byte) (*ast.FuncDecl, error) {
	const header = "package p\n\n"

	src := make([]byte, 0, len(header)+len(text))
	src = append(src, header...)
	src = append(src, text...)

	f, err := parser.ParseFile(token.NewFileSet(), "", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		var list scanner.ErrorList
		if errors.As(err, &list) && len(list) > 0 {
			return nil, errors.New(list[0].Msg)
		}

		return nil, err
	}

	if len(f.Decls) != 1 {
		return nil, errNotAFunction
	}

	fn, ok := f.Decls[0].(*ast.FuncDecl)
	if !ok || fn.Body == nil {
		return nil, errNotAFunction
	}

	return fn, nil
}

// lastLineIndent returns the whitespace ending lead after its last newline.
func lastLineIndent(lead []byte) []byte {
	line := lead[bytes.LastIndexByte(lead, '\n')+1:]
	if !isBlank(line) {
		return nil
	}

	return line
}

// restOfLine returns text up to the first newline.
func restOfLine(text []byte) []byte {
	if i := bytes.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}

	return text
}

// isBlank reports whether text consists of spaces and tabs only.
func isBlank(text []byte) bool {
	return len(bytes.Trim(text, " \t")) == 0
}
