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
	"go/ast"
	"go/token"
)

// Source is the verbatim text of an item.
type Source struct {
	Lead []byte    // text between the previous item, or the package clause, and this one
	Text []byte    // the item, including its doc comment
	Pos  token.Pos // start of Text in the original file, [token.NoPos] for rewritten items
	End  token.Pos // end of Text in the original file, [token.NoPos] for rewritten items
}

// Item is a top-level declaration: exactly one of [TestFunction] or [OtherItem].
type Item interface {
	// Source returns the text of the item.
	Source() Source

	isItem()
}

// TestFunction is a function run by the go test runner as a test case.
//
// Decl of a rewritten test function is detached: it is parsed from the rewritten text
// and its positions do not belong to the file set of the container.
type TestFunction struct {
	Src  Source
	Decl *ast.FuncDecl
	Kind Kind
}

// OtherItem is any other declaration. It is passed through unchanged.
type OtherItem struct {
	Src  Source
	Decl ast.Decl
}

func (TestFunction) isItem() {}
func (OtherItem) isItem()    {}

// Source implements [Item].
func (f TestFunction) Source() Source { return f.Src }

// Source implements [Item].
func (o OtherItem) Source() Source { return o.Src }

// Name returns the name of the test function.
func (f TestFunction) Name() string { return f.Decl.Name.Name }
