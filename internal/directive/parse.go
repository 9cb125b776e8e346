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
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"fillmore-labs.com/aftertest/internal/diag"
)

const grammarHelp = "use a function name (reset), a call (reset(t)) or a function literal (func() { reset() })"

// alternative is one trial parse. It reports whether its form matches a prefix of the input.
type alternative func(c *cursor) (Spec, bool)

// alternatives lists the accepted forms in order of precedence.
var alternatives = [...]alternative{
	callExpression,
	bareName,
	closure,
}

// Parse resolves the directive text d into a [Spec].
//
// Each form is tried in order on the complete input and only accepted when it consumes every token.
// When no form matches, a [diag.SpecGrammar] diagnostic is reported and [None] is returned.
func Parse(d Comment, c *diag.Collector) Spec {
	text := strings.TrimSpace(d.Text)

	if text == "" {
		c.Report(diag.Diagnostic{
			Kind:    diag.SpecGrammar,
			Pos:     d.Pos,
			End:     d.Pos,
			Message: "Missing cleanup function",
			Help:    grammarHelp,
		})

		return None{}
	}

	if spec, ok := resolve(text); ok {
		return spec
	}

	end := token.NoPos
	if d.Pos.IsValid() {
		end = d.Pos + token.Pos(len(d.Text))
	}

	c.Report(diag.Diagnostic{
		Kind:    diag.SpecGrammar,
		Pos:     d.Pos,
		End:     end,
		Message: fmt.Sprintf("Expected cleanup function name, call expression or function literal, got %q", text),
		Help:    grammarHelp,
	})

	return None{}
}

// resolve tries all alternatives in order.
func resolve(text string) (Spec, bool) {
	lexemes, ok := scan(text)
	if !ok || len(lexemes) == 0 {
		return None{}, false
	}

	for _, alt := range alternatives {
		c := cursor{text: text, lexemes: lexemes}

		if spec, ok := alt(&c); ok && c.done() {
			return spec, true
		}
	}

	return None{}, false
}

// bareName parses an identifier or qualified identifier.
func bareName(c *cursor) (Spec, bool) {
	name, ok := qualifiedName(c)
	if !ok {
		return nil, false
	}

	return NamedCall{Name: name}, true
}

// callExpression parses name '(' argument-list ')'.
func callExpression(c *cursor) (Spec, bool) {
	name, ok := qualifiedName(c)
	if !ok {
		return nil, false
	}

	if _, ok := c.accept(token.LPAREN); !ok {
		return nil, false
	}

	args, ellipsis, ok := argumentList(c)
	if !ok {
		return nil, false
	}

	return CallExpression{Name: name, Args: args, Ellipsis: ellipsis}, true
}

// closure parses a function literal. The literal has to end the input.
func closure(c *cursor) (Spec, bool) {
	first, ok := c.accept(token.FUNC)
	if !ok || c.last().tok != token.RBRACE {
		return nil, false
	}

	last := c.last()
	c.skipToEnd()

	src := c.source(first, last)

	expr, err := parser.ParseExpr(src)
	if err != nil {
		return nil, false
	}

	lit, ok := expr.(*ast.FuncLit)
	if !ok {
		return nil, false
	}

	return ClosureExpression{
		Params:  lit.Type.Params,
		Results: lit.Type.Results,
		Body:    lit.Body,
		Source:  src,
	}, true
}

// qualifiedName parses identifier { '.' identifier }.
func qualifiedName(c *cursor) (string, bool) {
	first, ok := c.accept(token.IDENT)
	if !ok {
		return "", false
	}

	last := first

	for c.peek() == token.PERIOD {
		c.next()

		id, ok := c.accept(token.IDENT)
		if !ok {
			return "", false
		}

		last = id
	}

	return c.source(first, last), true
}

// argumentList parses the arguments of a call up to and including the closing parenthesis.
// Arguments are split at top-level commas and each one must be a valid Go expression.
func argumentList(c *cursor) (args []string, ellipsis bool, ok bool) {
	var (
		depth int
		first = -1 // index of the first lexeme of the current argument
	)

	finish := func(last int) bool {
		if first < 0 {
			return false
		}

		arg := c.source(c.lexemes[first], c.lexemes[last])
		if _, err := parser.ParseExpr(arg); err != nil {
			return false
		}

		args = append(args, arg)
		first = -1

		return true
	}

	for !c.done() {
		i := c.i
		l := c.next()

		switch l.tok {
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++

		case token.RBRACK, token.RBRACE:
			depth--
			if depth < 0 {
				return nil, false, false
			}

		case token.RPAREN:
			if depth > 0 {
				depth--

				break
			}

			if first >= 0 && !finish(i-1) {
				return nil, false, false
			}

			return args, ellipsis, true

		case token.COMMA:
			if depth > 0 {
				break
			}

			if ellipsis || !finish(i-1) {
				return nil, false, false
			}

			continue

		case token.ELLIPSIS:
			if depth > 0 {
				break
			}

			if ellipsis || !finish(i-1) {
				return nil, false, false
			}

			ellipsis = true

			if _, ok := c.accept(token.COMMA); ok && c.peek() != token.RPAREN {
				return nil, false, false
			}

			continue
		}

		if ellipsis {
			return nil, false, false // only a closing parenthesis may follow "..."
		}

		if first < 0 {
			first = i
		}
	}

	return nil, false, false
}
