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

package astutil_test

import (
	"go/ast"
	"testing"

	. "fillmore-labs.com/aftertest/internal/astutil"
	"fillmore-labs.com/aftertest/internal/testsource"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"//nolint:aftertest", true},
		{"//nolint:all", true},
		{"//nolint:errcheck,AfterTest", true},
		{"// nolint:aftertest // explanation", true},
		{"//nolint:errcheck", false},
		{"// aftertest", false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(&ast.Comment{Text: tt.text}); got != tt.want {
			t.Errorf("CommentHasNoLint(%q) = %t, want %t", tt.text, got, tt.want)
		}
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	const src = `// Code generated by test. DO NOT EDIT.

//nolint:aftertest
package a

func f() {}
`

	fset, f := testsource.Parse(t, "a_test.go", src)

	c := NewCurrentFile(fset, f)
	if !c.Valid() {
		t.Fatal("Invalid current file")
	}

	if !c.Generated() || !c.NoLint() {
		t.Errorf("Generated() = %t, NoLint() = %t, want both", c.Generated(), c.NoLint())
	}

	if got, want := c.Name(), "a_test.go"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}

	if got, want := c.Size(), len(src); got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}

	pos, end := c.Package()
	if got, want := fset.Position(pos).Line, 4; got != want {
		t.Errorf("Package clause on line %d, want %d", got, want)
	}

	if got, want := c.Offset(end), len(src)-len("\n\nfunc f() {}\n"); got != want {
		t.Errorf("Package clause ends at %d, want %d", got, want)
	}
}

func TestCurrentFileInvalid(t *testing.T) {
	t.Parallel()

	if NewCurrentFile(nil, nil).Valid() {
		t.Error("Current file of nil file is valid")
	}
}
