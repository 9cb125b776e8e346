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
	"go/scanner"
	"go/token"
)

// lexeme is a scanned token together with its byte range in the directive text.
type lexeme struct {
	tok        token.Token
	start, end int
}

// scan splits text into Go tokens. It reports false on any lexical error.
func scan(text string) ([]lexeme, bool) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(text))

	errs := 0

	var s scanner.Scanner
	s.Init(file, []byte(text), func(token.Position, string) { errs++ }, 0)

	var lexemes []lexeme

	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		if tok == token.SEMICOLON && lit == "\n" {
			continue // automatically inserted
		}

		start := file.Offset(pos)

		size := len(lit)
		if size == 0 {
			size = len(tok.String())
		}

		lexemes = append(lexemes, lexeme{tok: tok, start: start, end: start + size})
	}

	return lexemes, errs == 0
}

// cursor walks the lexemes of one trial parse. Every alternative starts with a fresh cursor,
// so a failed alternative never affects the next one.
type cursor struct {
	text    string
	lexemes []lexeme
	i       int
}

// done reports whether all lexemes have been consumed.
func (c *cursor) done() bool { return c.i >= len(c.lexemes) }

// peek returns the current token without consuming it, or [token.EOF].
func (c *cursor) peek() token.Token {
	if c.done() {
		return token.EOF
	}

	return c.lexemes[c.i].tok
}

// accept consumes the current lexeme if it is tok.
func (c *cursor) accept(tok token.Token) (lexeme, bool) {
	if c.peek() != tok {
		return lexeme{}, false
	}

	l := c.lexemes[c.i]
	c.i++

	return l, true
}

// next consumes the current lexeme.
func (c *cursor) next() lexeme {
	l := c.lexemes[c.i]
	c.i++

	return l
}

// last returns the final lexeme of the input.
func (c *cursor) last() lexeme { return c.lexemes[len(c.lexemes)-1] }

// skipToEnd consumes all remaining lexemes.
func (c *cursor) skipToEnd() { c.i = len(c.lexemes) }

// source returns the directive text between two lexemes, inclusive.
func (c *cursor) source(from, to lexeme) string { return c.text[from.start:to.end] }
