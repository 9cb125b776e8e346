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

package diag

// Kind classifies a [Diagnostic].
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// SpecGrammar indicates a cleanup directive matching none of the accepted forms:
	// a function name, a call expression or a function literal.
	SpecGrammar Kind = iota // spc

	// MissingMarker indicates a directive in a file that is not a test file.
	MissingMarker // mrk

	// ItemReconstruction indicates a test function that could not be re-synthesized
	// after injecting the cleanup call. The function is dropped from the output.
	ItemReconstruction // itm

	// DuplicateDirective indicates an additional cleanup directive in the same file.
	// Only the first directive is used.
	DuplicateDirective // dup
)
