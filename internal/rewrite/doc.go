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

// Package rewrite injects cleanup calls into the test functions of a [container.Container].
//
// The injected statement is spliced into the verbatim text of each test function, which is then
// parsed again. Everything else, including comments and formatting, is passed through unchanged.
// A test function that can't be parsed after the splice is dropped from the output and reported
// as a [diag.ItemReconstruction], without affecting the remaining items.
package rewrite
